package seq

import "io"

// Format identifies a sequence file format.
type Format int

const (
	Unknown Format = iota
	FASTA
	FASTQ
)

func (f Format) String() string {
	switch f {
	case FASTA:
		return "fasta"
	case FASTQ:
		return "fastq"
	}
	return "unknown"
}

// Delimiter returns the byte that starts every record header in the format,
// or 0 for Unknown.
func (f Format) Delimiter() byte {
	switch f {
	case FASTA:
		return '>'
	case FASTQ:
		return '@'
	}
	return 0
}

// A Reader is a pull-based source of records.
//
// HasNext must be checked before every call to Next. Once Next returns an
// error the Reader must not be used again, other than to Close it.
type Reader interface {
	HasNext() bool
	Next() (Record, error)
	io.Closer
}

// ReadAll drains r and returns all of its records. Processing stops at the
// first error.
func ReadAll(r Reader) ([]Record, error) {
	records := make([]Record, 0, 100)
	for r.HasNext() {
		rec, err := r.Next()
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}
