// Package sniff opens a sequence file without knowing its format in advance.
// The first byte that is not whitespace decides: '>' means FASTA and '@'
// means FASTQ.
package sniff

import (
	"io"

	"github.com/TuftsBCB/seqio/buffer"
	"github.com/TuftsBCB/seqio/fasta"
	"github.com/TuftsBCB/seqio/fastq"
	"github.com/TuftsBCB/seqio/seq"
	"github.com/tliron/commonlog"
)

func logger() commonlog.Logger {
	return commonlog.GetLogger("seqio.sniff")
}

// Detect consumes leading whitespace from b and reports the format that its
// first significant byte announces. On success that byte is rewound, so the
// next read from b returns it.
//
// A *seq.FormatError is returned if the byte is neither '>' nor '@', or if b
// holds nothing but whitespace.
func Detect(b *buffer.Buffer) (seq.Format, error) {
	c, err := b.SkipBlank()
	if err == io.EOF {
		return seq.Unknown, &seq.FormatError{Msg: seq.MsgNotSequenceFile}
	} else if err != nil {
		return seq.Unknown, err
	}

	var format seq.Format
	switch c {
	case seq.FASTA.Delimiter():
		format = seq.FASTA
	case seq.FASTQ.Delimiter():
		format = seq.FASTQ
	default:
		return seq.Unknown, &seq.FormatError{
			Msg:  seq.MsgNotSequenceFile,
			Line: b.Line(),
		}
	}
	b.Rewind(1)
	return format, nil
}

// Open opens the named file and returns a FASTA or FASTQ reader for it,
// depending on its content. The buffer used for detection is handed to the
// reader, so no input is read twice.
func Open(path string, opts ...seq.Option) (seq.Reader, error) {
	conf := seq.NewConfig(opts...)
	b, err := buffer.Open(path, conf.BufferSize)
	if err != nil {
		return nil, err
	}
	r, err := fromBuffer(b, conf)
	if err != nil {
		b.Close()
		return nil, err
	}
	return r, nil
}

// NewReader is like Open but reads from r.
func NewReader(r io.Reader, opts ...seq.Option) (seq.Reader, error) {
	conf := seq.NewConfig(opts...)
	return fromBuffer(buffer.New(r, conf.BufferSize), conf)
}

func fromBuffer(b *buffer.Buffer, conf seq.Config) (seq.Reader, error) {
	format, err := Detect(b)
	if err != nil {
		return nil, err
	}
	logger().Debugf("%s: detected %s", describe(b), format)

	switch format {
	case seq.FASTQ:
		return fastq.FromBuffer(b, conf.QualityOffset), nil
	default:
		return fasta.FromBuffer(b), nil
	}
}

func describe(b *buffer.Buffer) string {
	if b.Name() == "" {
		return "stream"
	}
	return b.Name()
}
