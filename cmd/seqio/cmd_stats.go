package main

import (
	"fmt"
	"io"
	"os"

	"github.com/TuftsBCB/seqio/seq"
	"github.com/spf13/cobra"
)

type stats struct {
	records  int
	residues int
	scored   int
	scoreSum float64
	shortest int
	longest  int
}

func (s *stats) add(rec seq.Record) error {
	n := rec.Len()
	if s.records == 0 || n < s.shortest {
		s.shortest = n
	}
	if n > s.longest {
		s.longest = n
	}
	s.records++
	s.residues += n
	if rec.HasScores() {
		s.scored += len(rec.Scores)
		s.scoreSum += rec.MeanScore() * float64(len(rec.Scores))
	}
	return nil
}

func (s *stats) print(w io.Writer, name string) {
	fmt.Fprintf(w, "file\t%s\n", name)
	fmt.Fprintf(w, "records\t%d\n", s.records)
	fmt.Fprintf(w, "residues\t%d\n", s.residues)
	fmt.Fprintf(w, "shortest\t%d\n", s.shortest)
	fmt.Fprintf(w, "longest\t%d\n", s.longest)
	if s.scored > 0 {
		fmt.Fprintf(w, "mean score\t%.2f\n", s.scoreSum/float64(s.scored))
	}
}

func newStatsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "stats <file>",
		Short: "Count the records and residues of a FASTA or FASTQ file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := &stats{}
			if err := opts.each(args[0], s.add); err != nil {
				return fmt.Errorf("stats %s: %w", args[0], err)
			}
			s.print(os.Stdout, args[0])
			return nil
		},
	}
}
