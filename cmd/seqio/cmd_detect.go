package main

import (
	"fmt"
	"io"
	"os"

	"github.com/TuftsBCB/seqio/buffer"
	"github.com/TuftsBCB/seqio/sniff"
	"github.com/spf13/cobra"
)

// detect writes "path<TAB>format" to out for each recognized file. Files that
// cannot be read or recognized are reported on errOut. It returns the number
// of such failures.
func detect(out, errOut io.Writer, paths []string, bufferSize int) int {
	failed := 0
	for _, path := range paths {
		b, err := buffer.Open(path, bufferSize)
		if err != nil {
			fmt.Fprintln(errOut, err)
			failed++
			continue
		}
		format, err := sniff.Detect(b)
		b.Close()
		if err != nil {
			fmt.Fprintf(errOut, "%s: %s\n", path, err)
			failed++
			continue
		}
		fmt.Fprintf(out, "%s\t%s\n", path, format)
	}
	return failed
}

func newDetectCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "detect <file>...",
		Short: "Print whether each file is FASTA or FASTQ",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			failed := detect(os.Stdout, os.Stderr, args, opts.bufferSize)
			if failed > 0 {
				return fmt.Errorf("%d of %d files not recognized", failed, len(args))
			}
			return nil
		},
	}
}
