/*
Package buffer provides a fixed-capacity read window over a file or stream.

A Buffer hands out one byte at a time and refills its window from the
underlying input whenever the window is used up, so a parser can lex a file
byte by byte without a system call per byte and without loading the whole
file. The last byte handed out is always kept, even across a refill, which
gives parsers one byte of lookback (PrevByte) and lets them un-read a
delimiter they have just read (Rewind).

A Buffer is not safe for use by multiple goroutines.
*/
package buffer

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/TuftsBCB/seqio/seq"
	"github.com/tliron/commonlog"
)

// logger is looked up on use so that a backend installed after this package
// is initialized still takes effect.
func logger() commonlog.Logger {
	return commonlog.GetLogger("seqio.buffer")
}

// A Buffer is a refillable byte window over an input.
//
// The window lives in buf[0:end]. When a refill happens, the byte that was
// read last is copied to buf[0] and new input is loaded after it, so that
// buf[pos-1] is always the previously returned byte whenever pos > 0.
type Buffer struct {
	name   string
	src    io.Reader
	closer io.Closer

	buf []byte
	pos int
	end int

	// Bytes of input not yet loaded into the window, or -1 when the input
	// length is not known in advance.
	remaining int64

	err  error
	line int
}

// Open opens the named file and loads its first window of at most capacity
// bytes. A capacity below 1 selects seq.DefaultBufferSize.
//
// Failing to open the file results in a *seq.IOError.
func Open(path string, capacity int) (*Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &seq.IOError{Path: path, Err: err}
	}
	b := newBuffer(path, f, capacity)
	b.closer = f

	// A regular file of known size lets end-of-file be detected without
	// another read. Size zero is left unknown: some special files report
	// zero but still have content.
	if info, err := f.Stat(); err == nil && info.Mode().IsRegular() && info.Size() > 0 {
		b.remaining = info.Size()
	}
	b.fill()
	if b.err != nil {
		f.Close()
		return nil, b.err
	}
	return b, nil
}

// New returns a Buffer reading from r. Nothing is read until the first call
// to ReadByte or EOF.
//
// If r is an io.Closer, Close closes it.
func New(r io.Reader, capacity int) *Buffer {
	b := newBuffer("", r, capacity)
	if c, ok := r.(io.Closer); ok {
		b.closer = c
	}
	return b
}

func newBuffer(name string, r io.Reader, capacity int) *Buffer {
	if capacity < 1 {
		capacity = seq.DefaultBufferSize
	}
	return &Buffer{
		name:      name,
		src:       r,
		buf:       make([]byte, capacity+1),
		remaining: -1,
		line:      1,
	}
}

// fill loads the next window. It reports whether any new bytes are
// available. Read failures are kept in b.err.
func (b *Buffer) fill() bool {
	if b.err != nil || b.remaining == 0 {
		return false
	}

	keep := 0
	if b.end > 0 {
		b.buf[0] = b.buf[b.end-1]
		keep = 1
	}
	n, err := io.ReadAtLeast(b.src, b.buf[keep:keep+b.Cap()], 1)
	if err != nil && err != io.EOF {
		b.err = &seq.IOError{Path: b.name, Err: err}
		return false
	}
	if n == 0 {
		b.remaining = 0
		return false
	}

	b.pos, b.end = keep, keep+n
	if b.remaining > 0 {
		b.remaining -= int64(n)
		if b.remaining < 0 {
			b.remaining = 0
		}
	}
	if log := logger(); log.AllowLevel(commonlog.Debug) {
		log.Debugf("loaded %d bytes from %s (line %d)", n, b.describe(), b.line)
	}
	return true
}

func (b *Buffer) describe() string {
	if b.name == "" {
		return "stream"
	}
	return b.name
}

// ReadByte returns the next byte of input, refilling the window if needed.
// It returns io.EOF once all input has been consumed, or a *seq.IOError if
// the input could not be read.
func (b *Buffer) ReadByte() (byte, error) {
	if b.pos == b.end && !b.fill() {
		if b.err != nil {
			return 0, b.err
		}
		return 0, io.EOF
	}
	c := b.buf[b.pos]
	b.pos++
	if c == '\n' {
		b.line++
	}
	return c, nil
}

// PrevByte returns the byte most recently returned by ReadByte. It returns
// false at the start of input, and after a Rewind that moved back past the
// retained lookback byte.
func (b *Buffer) PrevByte() (byte, bool) {
	if b.pos == 0 {
		return 0, false
	}
	return b.buf[b.pos-1], true
}

// Rewind moves back n bytes so that they are returned again by subsequent
// reads. At least one byte can always be rewound after a successful
// ReadByte, even if a refill happened in between.
//
// Rewinding more bytes than the window retains is a programming error and
// panics.
func (b *Buffer) Rewind(n int) {
	if n < 0 || n > b.pos {
		panic(fmt.Sprintf("buffer: cannot rewind %d bytes (%d available)",
			n, b.pos))
	}
	for i := b.pos - n; i < b.pos; i++ {
		if b.buf[i] == '\n' {
			b.line--
		}
	}
	b.pos -= n
}

// UnreadByte un-reads the last byte. Together with ReadByte it makes a
// Buffer an io.ByteScanner.
func (b *Buffer) UnreadByte() error {
	if b.pos == 0 {
		return bufio.ErrInvalidUnreadByte
	}
	b.Rewind(1)
	return nil
}

// EOF reports whether all input has been consumed. It may block to load the
// next window.
//
// If loading failed, EOF returns false so that the following ReadByte
// reports the error.
func (b *Buffer) EOF() bool {
	if b.pos < b.end || b.fill() {
		return false
	}
	return b.err == nil
}

// Err returns the read error encountered, if any.
func (b *Buffer) Err() error {
	return b.err
}

// Cap returns the window capacity in bytes.
func (b *Buffer) Cap() int {
	return len(b.buf) - 1
}

// Remaining returns the number of unread bytes, counting both the window and
// input not yet loaded. It returns -1 if the input length is unknown and
// the input has not been exhausted yet.
func (b *Buffer) Remaining() int64 {
	if b.remaining < 0 {
		return -1
	}
	return int64(b.end-b.pos) + b.remaining
}

// Line returns the 1-based line number of the next unread byte.
func (b *Buffer) Line() int {
	return b.line
}

// Name returns the path the buffer was opened on, or "" for streams.
func (b *Buffer) Name() string {
	return b.name
}

// Close releases the underlying input.
func (b *Buffer) Close() error {
	if b.closer == nil {
		return nil
	}
	err := b.closer.Close()
	b.closer = nil
	return err
}
