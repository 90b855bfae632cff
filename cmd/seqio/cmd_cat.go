package main

import (
	"fmt"
	"io"
	"os"

	"github.com/TuftsBCB/seqio/fasta"
	"github.com/TuftsBCB/seqio/fastq"
	"github.com/TuftsBCB/seqio/seq"
	"github.com/spf13/cobra"
)

// recordWriter writes each record in the format it was read in.
type recordWriter struct {
	fa *fasta.Writer
	fq *fastq.Writer
}

func newRecordWriter(w io.Writer, columns, offset int) *recordWriter {
	rw := &recordWriter{
		fa: fasta.NewWriter(w),
		fq: fastq.NewWriter(w),
	}
	rw.fa.Columns = columns
	rw.fq.Offset = offset
	return rw
}

// Write writes rec as FASTQ if it has scores and as FASTA otherwise. A
// single input never mixes the two.
func (rw *recordWriter) Write(rec seq.Record) error {
	if rec.HasScores() {
		return rw.fq.Write(rec)
	}
	return rw.fa.Write(rec)
}

func (rw *recordWriter) Flush() error {
	if err := rw.fa.Flush(); err != nil {
		return err
	}
	return rw.fq.Flush()
}

func newCatCmd(opts *options) *cobra.Command {
	var columns int

	cmd := &cobra.Command{
		Use:   "cat <file>",
		Short: "Print the records of a FASTA or FASTQ file in normalized form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := newRecordWriter(os.Stdout, columns, opts.offset)
			if err := opts.each(args[0], w.Write); err != nil {
				w.Flush()
				return fmt.Errorf("cat %s: %w", args[0], err)
			}
			return w.Flush()
		},
	}

	cmd.Flags().IntVarP(&columns, "columns", "c", defaultColumns,
		"wrap FASTA sequences at this many columns (0 disables wrapping)")

	return cmd
}
