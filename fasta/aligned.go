package fasta

import (
	"io"

	"github.com/TuftsBCB/seqio/seq"
)

// An AlignedReader reads aligned FASTA input: all sequences must be the same
// length, '-' indicates a gap, and the n'th residue of any sequence is the
// n'th column in the alignment.
type AlignedReader struct {
	*Reader
	seqLen int // set after the first read
}

func NewAlignedReader(r *Reader) *AlignedReader {
	return &AlignedReader{
		Reader: r,
		seqLen: -1,
	}
}

// Next reads the next entry and checks that its length matches the entries
// read before it.
//
// See (*Reader).Next for more details.
func (r *AlignedReader) Next() (seq.Record, error) {
	rec, err := r.Reader.Next()
	if err != nil {
		return seq.Record{}, err
	}
	if r.seqLen == -1 {
		r.seqLen = len(rec.Sequence)
	} else if r.seqLen != len(rec.Sequence) {
		return seq.Record{}, seq.Errorf(r.buf.Line(),
			"sequence '%s' has length %d, but other sequences have length %d",
			rec.Name, len(rec.Sequence), r.seqLen)
	}
	return rec, nil
}

// Read is like Next but returns io.EOF at the end of input.
func (r *AlignedReader) Read() (seq.Record, error) {
	if !r.HasNext() {
		return seq.Record{}, io.EOF
	}
	return r.Next()
}

// ReadAll will read all entries in the aligned FASTA input and return them as
// a slice.
// If an error is encountered, processing is stopped, and the error is
// returned.
// All entries have the same sequence length, otherwise an error occurs.
func (r *AlignedReader) ReadAll() ([]seq.Record, error) {
	return seq.ReadAll(r)
}

// An AlignedWriter writes records to an aligned FASTA encoded file.
//
// See the exported fields of Writer for options that can be set.
type AlignedWriter struct {
	*Writer
	seqLen int
}

// NewAlignedWriter creates a new aligned FASTA writer that can write FASTA
// records to an io.Writer.
func NewAlignedWriter(w io.Writer) *AlignedWriter {
	return &AlignedWriter{
		Writer: NewWriter(w),
		seqLen: -1,
	}
}

// Write writes a single alignment record to the underlying io.Writer.
//
// An error is returned if the length of the sequence is not the same length
// as other sequences that have already been written.
//
// You may need to call Flush in order for the changes to be written.
func (w *AlignedWriter) Write(rec seq.Record) error {
	if w.seqLen == -1 {
		w.seqLen = len(rec.Sequence)
	} else if w.seqLen != len(rec.Sequence) {
		return seq.Errorf(0,
			"sequence '%s' has length %d, but other sequences have length %d",
			rec.Name, len(rec.Sequence), w.seqLen)
	}
	return w.Writer.Write(rec)
}

// WriteAll writes a slice of aligned FASTA records to the underlying
// io.Writer, and calls Flush.
func (w *AlignedWriter) WriteAll(records []seq.Record) error {
	for _, rec := range records {
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return w.Flush()
}
