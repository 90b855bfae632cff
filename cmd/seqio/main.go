// Command seqio reads FASTA and FASTQ files and converts between them. The
// format of each input is detected from its content.
//
//	USAGE: seqio <command> [options] FILE
//
// Commands:
//
//	cat     re-emit records in their own format
//	fq2fa   write records as FASTA
//	stats   print record, residue and score counts
//	detect  print the detected format
//
// A FILE of "-" reads standard input.
package main

import (
	"os"

	"github.com/TuftsBCB/seqio/seq"
	"github.com/TuftsBCB/seqio/sniff"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

var log = commonlog.GetLogger("seqio")

// defaultColumns is the FASTA wrap width of every command that writes FASTA.
const defaultColumns = 60

type options struct {
	bufferSize int
	offset     int
	verbose    int
}

func (o *options) seqOptions() []seq.Option {
	return []seq.Option{
		seq.WithBufferSize(o.bufferSize),
		seq.WithQualityOffset(o.offset),
	}
}

// open returns a reader for path, or for standard input if path is "-".
func (o *options) open(path string) (seq.Reader, error) {
	if path == "-" {
		return sniff.NewReader(os.Stdin, o.seqOptions()...)
	}
	return sniff.Open(path, o.seqOptions()...)
}

// each calls fn for every record of the named input.
func (o *options) each(path string, fn func(seq.Record) error) error {
	r, err := o.open(path)
	if err != nil {
		return err
	}
	defer r.Close()

	n := 0
	for r.HasNext() {
		rec, err := r.Next()
		if err != nil {
			return err
		}
		if err := fn(rec); err != nil {
			return err
		}
		n++
	}
	log.Infof("%s: read %d records", path, n)
	return nil
}

func main() {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:          "seqio",
		Short:        "Read, convert and summarize FASTA/FASTQ files",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			commonlog.Configure(opts.verbose, nil)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.IntVar(&opts.bufferSize, "buffer-size", seq.DefaultBufferSize,
		"bytes read from the input per refill")
	flags.IntVar(&opts.offset, "offset", seq.DefaultQualityOffset,
		"FASTQ quality encoding offset")
	flags.CountVarP(&opts.verbose, "verbose", "v",
		"log more (repeat for debug output)")

	rootCmd.AddCommand(newCatCmd(opts))
	rootCmd.AddCommand(newFq2faCmd(opts))
	rootCmd.AddCommand(newStatsCmd(opts))
	rootCmd.AddCommand(newDetectCmd(opts))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
