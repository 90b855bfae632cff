package seq

import "fmt"

// Messages carried by FormatError. Callers may compare FormatError.Msg
// against these.
const (
	MsgNotSequenceFile = "file not in FASTA or FASTQ format"
	MsgNotFastq        = "file not in FASTQ format"
	MsgMissingHeader   = "missing header delimiter"
	MsgMissingName     = "missing sequence name"
	MsgMissingSequence = "missing sequence"
	MsgMissingScores   = "missing scores"
	MsgLengthMismatch  = "sequence/score length mismatch"
)

// An IOError is returned when a file cannot be opened or read.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("read error: %s", e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// A FormatError is returned when input violates the FASTA or FASTQ grammar.
// Line is the 1-based line of the input on which the problem was found, or
// 0 if unknown.
type FormatError struct {
	Msg  string
	Line int
}

func (e *FormatError) Error() string {
	if e.Line <= 0 {
		return e.Msg
	}
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

// Errorf returns a *FormatError for the given line.
func Errorf(line int, format string, v ...interface{}) *FormatError {
	return &FormatError{Msg: fmt.Sprintf(format, v...), Line: line}
}
