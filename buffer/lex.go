package buffer

import "io"

// IsResidue reports whether c may appear in a sequence or quality line, i.e.
// whether it is printable ASCII other than space (33 to 126 inclusive).
func IsResidue(c byte) bool {
	return c >= '!' && c <= '~'
}

// IsNewline reports whether c terminates a line.
func IsNewline(c byte) bool {
	return c == '\n' || c == '\r'
}

// IsBlank reports whether c is ASCII whitespace.
func IsBlank(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

// AtLineStart reports whether the next unread byte begins a line.
func (b *Buffer) AtLineStart() bool {
	c, ok := b.PrevByte()
	return !ok || IsNewline(c)
}

// SkipBlank consumes whitespace and returns the first other byte. It returns
// io.EOF if the input ends first.
func (b *Buffer) SkipBlank() (byte, error) {
	for {
		c, err := b.ReadByte()
		if err != nil {
			return 0, err
		}
		if !IsBlank(c) {
			return c, nil
		}
	}
}

// ReadLine copies bytes to w up to the next line terminator, which is
// consumed but not copied. Reaching the end of input also ends the line.
func (b *Buffer) ReadLine(w io.ByteWriter) error {
	for {
		c, err := b.ReadByte()
		if err == io.EOF {
			return nil
		} else if err != nil {
			return err
		}
		if IsNewline(c) {
			return nil
		}
		if err := w.WriteByte(c); err != nil {
			return err
		}
	}
}

// SkipLine consumes bytes up to and including the next line terminator.
func (b *Buffer) SkipLine() error {
	for {
		c, err := b.ReadByte()
		if err == io.EOF {
			return nil
		} else if err != nil {
			return err
		}
		if IsNewline(c) {
			return nil
		}
	}
}
