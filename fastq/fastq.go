// Package fastq reads and writes FASTQ files.
//
// Each record is four fields: a header line led by '@', the sequence, a
// comment line led by '+' and the quality line. Quality bytes are decoded
// into scores by subtracting an encoding offset, 33 (Phred+33) by default.
package fastq

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/TuftsBCB/seqio/buffer"
	"github.com/TuftsBCB/seqio/seq"
	"github.com/valyala/bytebufferpool"
)

const (
	delimiter = '@'
	separator = '+'
)

// A Reader reads records from FASTQ encoded input.
//
// It is NOT safe to use a Reader from multiple goroutines.
type Reader struct {
	buf    *buffer.Buffer
	offset int
}

// Open opens the named file for reading.
func Open(path string, opts ...seq.Option) (*Reader, error) {
	conf := seq.NewConfig(opts...)
	b, err := buffer.Open(path, conf.BufferSize)
	if err != nil {
		return nil, err
	}
	return FromBuffer(b, conf.QualityOffset), nil
}

// NewReader returns a Reader that reads from r.
func NewReader(r io.Reader, opts ...seq.Option) *Reader {
	conf := seq.NewConfig(opts...)
	return FromBuffer(buffer.New(r, conf.BufferSize), conf.QualityOffset)
}

// FromBuffer returns a Reader that takes ownership of b and decodes quality
// bytes with the given offset.
func FromBuffer(b *buffer.Buffer, offset int) *Reader {
	return &Reader{buf: b, offset: offset}
}

// Offset returns the quality encoding offset.
func (r *Reader) Offset() int {
	return r.offset
}

// HasNext reports whether there is input left to read a record from.
func (r *Reader) HasNext() bool {
	return !r.buf.EOF()
}

// Next reads the next record. HasNext must be checked first.
//
// The sequence ends at the first '+' that begins a line and may span several
// lines. The quality field is the single line after the comment line, so an
// '@' in it, including a leading one, is a quality byte.
//
// A *seq.FormatError is returned if the record is malformed. After any error
// the Reader must not be used again.
func (r *Reader) Next() (seq.Record, error) {
	c, err := r.buf.SkipBlank()
	if err == io.EOF || (err == nil && c != delimiter) {
		return seq.Record{}, r.errorf(seq.MsgNotFastq)
	} else if err != nil {
		return seq.Record{}, err
	}

	name := bytebufferpool.Get()
	defer bytebufferpool.Put(name)
	if err := r.buf.ReadLine(name); err != nil {
		return seq.Record{}, err
	}
	if name.Len() == 0 {
		return seq.Record{}, r.errorf(seq.MsgMissingName)
	}

	residues := bytebufferpool.Get()
	defer bytebufferpool.Put(residues)
	if err := r.readSequence(residues); err != nil {
		return seq.Record{}, err
	}

	if err := r.buf.SkipLine(); err != nil {
		return seq.Record{}, err
	}

	quals := bytebufferpool.Get()
	defer bytebufferpool.Put(quals)
	if err := r.readQuality(quals); err != nil {
		return seq.Record{}, err
	}
	if quals.Len() == 0 {
		return seq.Record{}, r.errorf(seq.MsgMissingScores)
	}
	if quals.Len() != residues.Len() {
		return seq.Record{}, r.errorf(seq.MsgLengthMismatch)
	}

	scores := make([]int8, quals.Len())
	for i, q := range quals.B {
		scores[i] = int8(int(q) - r.offset)
	}
	return seq.Record{
		Name:     name.String(),
		Sequence: residues.String(),
		Scores:   scores,
	}, nil
}

// readSequence accumulates residues up to and including the '+' that starts
// the comment line.
func (r *Reader) readSequence(w *bytebufferpool.ByteBuffer) error {
	for {
		lineStart := r.buf.AtLineStart()
		c, err := r.buf.ReadByte()
		if err == io.EOF {
			if w.Len() == 0 {
				return r.errorf(seq.MsgMissingSequence)
			}
			return r.errorf(seq.MsgMissingScores)
		} else if err != nil {
			return err
		}

		if c == separator && lineStart {
			if w.Len() == 0 {
				return r.errorf(seq.MsgMissingSequence)
			}
			return nil
		}
		if buffer.IsResidue(c) {
			w.WriteByte(c)
		}
	}
}

// readQuality accumulates the quality bytes of one line. The line
// terminator is consumed.
func (r *Reader) readQuality(w *bytebufferpool.ByteBuffer) error {
	for {
		c, err := r.buf.ReadByte()
		if err == io.EOF {
			return nil
		} else if err != nil {
			return err
		}

		if buffer.IsNewline(c) {
			return nil
		}
		if buffer.IsResidue(c) {
			w.WriteByte(c)
		}
	}
}

func (r *Reader) errorf(msg string) error {
	return &seq.FormatError{Msg: msg, Line: r.buf.Line()}
}

// Read reads the next record, returning io.EOF when there are no more.
func (r *Reader) Read() (seq.Record, error) {
	if !r.HasNext() {
		return seq.Record{}, io.EOF
	}
	return r.Next()
}

// ReadAll reads all remaining records. Processing stops at the first error.
func (r *Reader) ReadAll() ([]seq.Record, error) {
	return seq.ReadAll(r)
}

// Close closes the underlying file.
func (r *Reader) Close() error {
	return r.buf.Close()
}

// ErrNoScores is returned when writing a record without quality scores.
var ErrNoScores = errors.New("fastq: record has no scores")

// A Writer writes records to a FASTQ encoded file. Sequence and quality are
// each written on a single line and the comment line is left empty.
type Writer struct {
	// Added to each score to obtain its quality byte. Defaults to 33.
	Offset int
	buf    *bufio.Writer
}

// NewWriter creates a Writer that writes to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{
		Offset: seq.DefaultQualityOffset,
		buf:    bufio.NewWriter(w),
	}
}

// Write writes a single record. You may need to call Flush in order for the
// changes to be written.
func (w *Writer) Write(rec seq.Record) error {
	if !rec.HasScores() {
		return ErrNoScores
	}
	if len(rec.Scores) != len(rec.Sequence) {
		return fmt.Errorf("fastq: record '%s': %s", rec.Name,
			seq.MsgLengthMismatch)
	}
	_, err := fmt.Fprintf(w.buf, "@%s\n%s\n+\n%s\n",
		rec.Name, rec.Sequence, rec.Quality(w.Offset))
	return err
}

// WriteAll writes records and calls Flush.
func (w *Writer) WriteAll(records []seq.Record) error {
	for _, rec := range records {
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return w.Flush()
}

// Flush writes any buffered data to the underlying io.Writer.
func (w *Writer) Flush() error {
	return w.buf.Flush()
}
