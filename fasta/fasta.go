package fasta

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/TuftsBCB/seqio/buffer"
	"github.com/TuftsBCB/seqio/seq"
	"github.com/valyala/bytebufferpool"
)

const delimiter = '>'

// FormatCols returns the FASTA string corresponding to this record with the
// sequence wrapped at the number of columns given.
//
// If cols is <= 0, then no wrapping is done.
func FormatCols(rec seq.Record, cols int) string {
	if cols <= 0 || len(rec.Sequence) == 0 {
		return fmt.Sprintf(">%s\n%s", rec.Name, rec.Sequence)
	}

	wrapped := make([]string, 1+((len(rec.Sequence)-1)/cols))
	for i := range wrapped {
		start := cols * i
		end := start + cols
		if end > len(rec.Sequence) {
			end = len(rec.Sequence)
		}
		wrapped[i] = rec.Sequence[start:end]
	}
	return fmt.Sprintf(">%s\n%s", rec.Name, strings.Join(wrapped, "\n"))
}

// A Reader reads records from FASTA encoded input.
//
// It is NOT safe to use a Reader from multiple goroutines.
type Reader struct {
	buf *buffer.Buffer
}

// Open opens the named file for reading. Only seq.WithBufferSize applies to
// FASTA readers.
func Open(path string, opts ...seq.Option) (*Reader, error) {
	conf := seq.NewConfig(opts...)
	b, err := buffer.Open(path, conf.BufferSize)
	if err != nil {
		return nil, err
	}
	return FromBuffer(b), nil
}

// NewReader returns a Reader that reads from r.
func NewReader(r io.Reader, opts ...seq.Option) *Reader {
	conf := seq.NewConfig(opts...)
	return FromBuffer(buffer.New(r, conf.BufferSize))
}

// FromBuffer returns a Reader that takes ownership of b. The next unread
// byte of b should be the '>' of the first entry, or whitespace preceding
// it.
func FromBuffer(b *buffer.Buffer) *Reader {
	return &Reader{buf: b}
}

// HasNext reports whether there is input left to read an entry from.
func (r *Reader) HasNext() bool {
	return !r.buf.EOF()
}

// Next reads the next entry. HasNext must be checked first.
//
// A *seq.FormatError is returned if the entry is malformed. After any error
// the Reader must not be used again.
func (r *Reader) Next() (seq.Record, error) {
	c, err := r.buf.SkipBlank()
	if err == io.EOF || (err == nil && c != delimiter) {
		return seq.Record{}, r.errorf(seq.MsgMissingHeader)
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
	if residues.Len() == 0 {
		return seq.Record{}, r.errorf(seq.MsgMissingSequence)
	}

	return seq.Record{Name: name.String(), Sequence: residues.String()}, nil
}

// readSequence accumulates residues until the start of the next entry or the
// end of input. A '>' that begins a line is rewound so that the next call to
// Next sees it.
func (r *Reader) readSequence(w *bytebufferpool.ByteBuffer) error {
	for {
		lineStart := r.buf.AtLineStart()
		c, err := r.buf.ReadByte()
		if err == io.EOF {
			return nil
		} else if err != nil {
			return err
		}

		if c == delimiter && lineStart {
			r.buf.Rewind(1)
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

// Read reads the next entry, returning io.EOF when there are no more. It is
// a convenience for loops that prefer the io.Reader style to HasNext/Next.
func (r *Reader) Read() (seq.Record, error) {
	if !r.HasNext() {
		return seq.Record{}, io.EOF
	}
	return r.Next()
}

// ReadAll will read all entries in the FASTA input and return them as a slice.
// If an error is encountered, processing is stopped, and the error is
// returned.
func (r *Reader) ReadAll() ([]seq.Record, error) {
	return seq.ReadAll(r)
}

// Close closes the underlying file.
func (r *Reader) Close() error {
	return r.buf.Close()
}

// A Writer writes records to a FASTA encoded file.
//
// The 'Columns' corresponds to the number of columns at which a sequence is
// wrapped. If it's <= 0, then no wrapping will be used.
//
// The header text is never wrapped.
type Writer struct {
	// The number of columns to wrap a sequence at. By default, this
	// is set to 60. A value <= 0 will result in no wrapping.
	Columns int
	buf     *bufio.Writer
}

// NewWriter creates a new FASTA writer that can write FASTA records to
// an io.Writer.
func NewWriter(w io.Writer) *Writer {
	return &Writer{
		Columns: 60,
		buf:     bufio.NewWriter(w),
	}
}

// Flush writes any buffered data to the underlying io.Writer.
func (w *Writer) Flush() error {
	return w.buf.Flush()
}

// Write writes a single FASTA record to the underlying io.Writer. Scores,
// if any, are dropped.
//
// You may need to call Flush in order for the changes to be written.
func (w *Writer) Write(rec seq.Record) error {
	if _, err := w.buf.WriteString(FormatCols(rec, w.Columns)); err != nil {
		return err
	}
	return w.buf.WriteByte('\n')
}

// WriteAll writes a slice of FASTA records to the underlying io.Writer, and
// calls Flush.
func (w *Writer) WriteAll(records []seq.Record) error {
	for _, rec := range records {
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return w.Flush()
}
