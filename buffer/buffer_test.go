package buffer

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/TuftsBCB/seqio/seq"
)

func writeFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input")
	if err := os.WriteFile(path, []byte(contents), 0666); err != nil {
		t.Fatalf("%s", err)
	}
	return path
}

func drain(t *testing.T, b *Buffer) string {
	t.Helper()
	var sb strings.Builder
	for {
		c, err := b.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("%s", err)
		}
		sb.WriteByte(c)
	}
	return sb.String()
}

func TestReadByte(t *testing.T) {
	expected := "foo\nbarz\n"
	path := writeFile(t, expected)

	for _, capacity := range []int{1, 2, 3, 4, 9, 20} {
		b, err := Open(path, capacity)
		if err != nil {
			t.Fatalf("%s", err)
		}
		if got := drain(t, b); got != expected {
			t.Fatalf("capacity %d: expected %q, got %q", capacity, expected, got)
		}
		if !b.EOF() {
			t.Fatalf("capacity %d: expected EOF after draining", capacity)
		}
		b.Close()

		s := New(strings.NewReader(expected), capacity)
		if got := drain(t, s); got != expected {
			t.Fatalf("stream capacity %d: expected %q, got %q",
				capacity, expected, got)
		}
	}
}

func TestDefaultCapacity(t *testing.T) {
	b := New(strings.NewReader("x"), 0)
	if b.Cap() != seq.DefaultBufferSize {
		t.Fatalf("expected capacity %d, got %d", seq.DefaultBufferSize, b.Cap())
	}
}

func TestOpenMissing(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "blefh"), 16)
	var ioErr *seq.IOError
	if !errors.As(err, &ioErr) {
		t.Fatalf("expected *seq.IOError, got %T (%v)", err, err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected error to wrap os.ErrNotExist, got %v", err)
	}
}

func TestEOF(t *testing.T) {
	b, err := Open(writeFile(t, ""), 4)
	if err != nil {
		t.Fatalf("%s", err)
	}
	defer b.Close()
	if !b.EOF() {
		t.Fatalf("empty file should be at EOF")
	}
	if _, err := b.ReadByte(); err != io.EOF {
		t.Fatalf("expected io.EOF, got %v", err)
	}

	s := New(strings.NewReader("ab"), 1)
	for i := 0; i < 2; i++ {
		if s.EOF() {
			t.Fatalf("unexpected EOF after %d bytes", i)
		}
		s.ReadByte()
	}
	if !s.EOF() {
		t.Fatalf("expected EOF after 2 bytes")
	}
}

func TestRemaining(t *testing.T) {
	b, err := Open(writeFile(t, "abcdef"), 4)
	if err != nil {
		t.Fatalf("%s", err)
	}
	defer b.Close()

	if n := b.Remaining(); n != 6 {
		t.Fatalf("expected 6 remaining, got %d", n)
	}
	for i := 5; i >= 0; i-- {
		b.ReadByte()
		if n := b.Remaining(); n != int64(i) {
			t.Fatalf("expected %d remaining, got %d", i, n)
		}
	}
	b.Rewind(1)
	if n := b.Remaining(); n != 1 {
		t.Fatalf("expected rewind to restore a byte, got %d remaining", n)
	}

	if n := New(strings.NewReader("abc"), 4).Remaining(); n != -1 {
		t.Fatalf("stream length should be unknown, got %d", n)
	}
}

func TestPrevByte(t *testing.T) {
	b := New(strings.NewReader("abcde"), 2)
	if _, ok := b.PrevByte(); ok {
		t.Fatalf("expected no previous byte at start")
	}
	for _, want := range "abcde" {
		c, err := b.ReadByte()
		if err != nil {
			t.Fatalf("%s", err)
		}
		prev, ok := b.PrevByte()
		if !ok || prev != c || c != byte(want) {
			t.Fatalf("read %q, previous %q (%v), want %q", c, prev, ok, want)
		}
	}
}

func TestRewindAcrossRefill(t *testing.T) {
	b := New(strings.NewReader("abcde"), 2)
	b.ReadByte()
	b.ReadByte()

	// The window holds "ab"; reading 'c' forces a refill.
	if c, _ := b.ReadByte(); c != 'c' {
		t.Fatalf("expected 'c', got %q", c)
	}
	b.Rewind(1)
	if c, _ := b.ReadByte(); c != 'c' {
		t.Fatalf("expected 'c' after rewind, got %q", c)
	}

	// The byte before the refill is retained too.
	b.Rewind(2)
	if got := drain(t, b); got != "bcde" {
		t.Fatalf("expected \"bcde\", got %q", got)
	}
}

func TestRewindFirstByteOfWindow(t *testing.T) {
	b := New(strings.NewReader("ab>c"), 2)
	b.ReadByte()
	b.ReadByte()
	if c, _ := b.ReadByte(); c != '>' {
		t.Fatalf("expected '>', got %q", c)
	}
	if prev, _ := b.PrevByte(); prev != '>' {
		t.Fatalf("expected previous byte '>', got %q", prev)
	}
	b.Rewind(1)
	if prev, _ := b.PrevByte(); prev != 'b' {
		t.Fatalf("expected previous byte 'b' after rewind, got %q", prev)
	}
	if got := drain(t, b); got != ">c" {
		t.Fatalf("expected \">c\", got %q", got)
	}
}

func TestRewindTooFar(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected rewind past the start to panic")
		}
	}()
	b := New(strings.NewReader("abc"), 8)
	b.ReadByte()
	b.Rewind(2)
}

func TestUnreadByte(t *testing.T) {
	var _ io.ByteScanner = (*Buffer)(nil)

	b := New(strings.NewReader("xy"), 8)
	if err := b.UnreadByte(); err == nil {
		t.Fatalf("expected an error unreading at start")
	}
	b.ReadByte()
	if err := b.UnreadByte(); err != nil {
		t.Fatalf("%s", err)
	}
	if got := drain(t, b); got != "xy" {
		t.Fatalf("expected \"xy\", got %q", got)
	}
}

func TestLine(t *testing.T) {
	b := New(strings.NewReader("a\nb\n\nc"), 3)
	lines := []int{1, 2, 2, 3, 4, 4}
	for i, want := range lines {
		b.ReadByte()
		if b.Line() != want {
			t.Fatalf("after byte %d: expected line %d, got %d", i, want, b.Line())
		}
	}
	b.Rewind(3)
	if b.Line() != 2 {
		t.Fatalf("expected rewind to line 2, got %d", b.Line())
	}
}

type failingReader struct{}

func (failingReader) Read(p []byte) (int, error) {
	return 0, errors.New("device unplugged")
}

func TestReadError(t *testing.T) {
	b := New(failingReader{}, 4)
	if b.EOF() {
		t.Fatalf("a pending read error should not look like EOF")
	}
	_, err := b.ReadByte()
	var ioErr *seq.IOError
	if !errors.As(err, &ioErr) {
		t.Fatalf("expected *seq.IOError, got %T (%v)", err, err)
	}
	if b.Err() != err {
		t.Fatalf("expected Err to return the read error")
	}
}

func TestLexHelpers(t *testing.T) {
	b := New(strings.NewReader(" \t\r\n>name line\r\nrest"), 3)
	c, err := b.SkipBlank()
	if err != nil || c != '>' {
		t.Fatalf("expected '>', got %q (%v)", c, err)
	}
	var sb strings.Builder
	if err := b.ReadLine(&sb); err != nil {
		t.Fatalf("%s", err)
	}
	if sb.String() != "name line" {
		t.Fatalf("expected \"name line\", got %q", sb.String())
	}
	if b.AtLineStart() != true {
		t.Fatalf("expected to be at a line start after ReadLine")
	}
	if err := b.SkipLine(); err != nil {
		t.Fatalf("%s", err)
	}
	if got := drain(t, b); got != "rest" {
		t.Fatalf("expected \"rest\", got %q", got)
	}
	if _, err := b.SkipBlank(); err != io.EOF {
		t.Fatalf("expected io.EOF, got %v", err)
	}
}

func TestIsResidue(t *testing.T) {
	for c := 0; c < 256; c++ {
		want := c >= 33 && c <= 126
		if IsResidue(byte(c)) != want {
			t.Fatalf("IsResidue(%d) != %v", c, want)
		}
	}
}
