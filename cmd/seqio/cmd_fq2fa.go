package main

import (
	"fmt"
	"io"
	"os"

	"github.com/TuftsBCB/seqio/fasta"
	"github.com/spf13/cobra"
)

func newFq2faCmd(opts *options) *cobra.Command {
	var columns int
	var output string

	cmd := &cobra.Command{
		Use:   "fq2fa <file>",
		Short: "Convert a FASTQ (or FASTA) file to FASTA, dropping scores",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var out io.Writer = os.Stdout
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("create output: %w", err)
				}
				defer f.Close()
				out = f
			}

			w := fasta.NewWriter(out)
			w.Columns = columns
			if err := opts.each(args[0], w.Write); err != nil {
				return fmt.Errorf("fq2fa %s: %w", args[0], err)
			}
			if err := w.Flush(); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&columns, "columns", "c", defaultColumns,
		"wrap sequences at this many columns (0 disables wrapping)")
	cmd.Flags().StringVarP(&output, "output", "o", "",
		"output `filename` (default standard output)")

	return cmd
}
