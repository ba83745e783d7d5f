package buffer

import (
	"errors"
	"fmt"
)

// ErrInvalidPosition reports a line or column outside the buffer.
// Callers treat it as a programming defect, not a user error.
var ErrInvalidPosition = errors.New("invalid position")

// Buffer is an ordered sequence of lines in file order.
// An empty buffer (no lines) is distinct from one holding a single empty line.
type Buffer struct {
	lines []*Line
}

// New creates an empty buffer
func New() *Buffer {
	return &Buffer{}
}

// FromLines creates a buffer with one line per element, copying each
func FromLines(lines [][]byte) *Buffer {
	b := &Buffer{lines: make([]*Line, 0, len(lines))}
	for _, text := range lines {
		b.lines = append(b.lines, NewLine(text))
	}
	return b
}

// Len returns the line count
func (b *Buffer) Len() int {
	return len(b.lines)
}

// Line returns the line at index, nil if out of range
func (b *Buffer) Line(index int) *Line {
	if index < 0 || index >= len(b.lines) {
		return nil
	}
	return b.lines[index]
}

// InsertLine inserts a new line holding a copy of text at index, 0 <= index <= Len()
func (b *Buffer) InsertLine(index int, text []byte) error {
	if index < 0 || index > len(b.lines) {
		return fmt.Errorf("insert line %d of %d: %w", index, len(b.lines), ErrInvalidPosition)
	}
	b.lines = append(b.lines, nil)
	copy(b.lines[index+1:], b.lines[index:])
	b.lines[index] = NewLine(text)
	return nil
}

// DeleteLine removes the line at index
func (b *Buffer) DeleteLine(index int) error {
	if index < 0 || index >= len(b.lines) {
		return fmt.Errorf("delete line %d of %d: %w", index, len(b.lines), ErrInvalidPosition)
	}
	copy(b.lines[index:], b.lines[index+1:])
	b.lines[len(b.lines)-1] = nil
	b.lines = b.lines[:len(b.lines)-1]
	return nil
}

// InsertChar inserts ch into line index before col, col clamped to [0, size]
func (b *Buffer) InsertChar(index, col int, ch byte) error {
	l, err := b.at(index)
	if err != nil {
		return err
	}
	l.insertByte(col, ch)
	return nil
}

// DeleteChar removes the byte at col of line index. An out of range col is a no-op.
func (b *Buffer) DeleteChar(index, col int) error {
	l, err := b.at(index)
	if err != nil {
		return err
	}
	l.deleteByte(col)
	return nil
}

// Join appends other to the end of line index
func (b *Buffer) Join(index int, other []byte) error {
	l, err := b.at(index)
	if err != nil {
		return err
	}
	l.appendBytes(other)
	return nil
}

// Truncate cuts line index down to n logical bytes
func (b *Buffer) Truncate(index, n int) error {
	l, err := b.at(index)
	if err != nil {
		return err
	}
	l.truncate(n)
	return nil
}

// Bytes serializes the buffer, each line followed by '\n'
func (b *Buffer) Bytes() []byte {
	size := 0
	for _, l := range b.lines {
		size += l.Size() + 1
	}
	out := make([]byte, 0, size)
	for _, l := range b.lines {
		out = append(out, l.text...)
		out = append(out, '\n')
	}
	return out
}

func (b *Buffer) at(index int) (*Line, error) {
	if index < 0 || index >= len(b.lines) {
		return nil, fmt.Errorf("line %d of %d: %w", index, len(b.lines), ErrInvalidPosition)
	}
	return b.lines[index], nil
}
