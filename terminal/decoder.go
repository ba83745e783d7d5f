// @focus: #sys { io } #input { parse }
package terminal

import (
	"errors"
	"fmt"
	"io"
)

// maxLookahead bounds the bytes read after ESC: '[' + digit + '~'
const maxLookahead = 3

// escState is the position within an escape sequence
type escState uint8

const (
	escStart    escState = iota // After ESC, awaiting '[' or 'O'
	escCSI                      // After ESC [, awaiting final or digit
	escCSIParam                 // After ESC [ N, awaiting '~'
	escSS3                      // After ESC O, awaiting final
)

// Decoder turns raw terminal bytes into key events.
// The reader is expected to return (0, nil) or (0, io.EOF) when its read timeout expires.
type Decoder struct {
	r   io.Reader
	one [1]byte
}

// NewDecoder creates a decoder over r
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: r}
}

// ReadKey reads one key. It returns KeyNone when the read timeout expires with no
// input so the caller can redraw on a steady cadence.
func (d *Decoder) ReadKey() (Event, error) {
	b, ok, err := d.readByte()
	if err != nil {
		return Event{}, err
	}
	if !ok {
		return Event{Key: KeyNone}, nil
	}
	if b != ByteEscape {
		return Event{Key: KeyByte, Byte: b}, nil
	}
	return d.decodeEscape()
}

// decodeEscape walks the sequence following ESC. Timeout or any unmatched byte
// degrades to a plain Escape.
func (d *Decoder) decodeEscape() (Event, error) {
	state := escStart
	var param byte

	for i := 0; i < maxLookahead; i++ {
		b, ok, err := d.readByte()
		if err != nil {
			return Event{}, err
		}
		if !ok {
			return Event{Key: KeyEscape}, nil
		}

		switch state {
		case escStart:
			switch b {
			case '[':
				state = escCSI
			case 'O':
				state = escSS3
			default:
				return Event{Key: KeyEscape}, nil
			}

		case escCSI:
			if b >= '0' && b <= '9' {
				param = b
				state = escCSIParam
				continue
			}
			return lookup(csiMap, b), nil

		case escCSIParam:
			if b != '~' {
				return Event{Key: KeyEscape}, nil
			}
			return lookup(tildeMap, param), nil

		case escSS3:
			return lookup(ss3Map, b), nil
		}
	}
	return Event{Key: KeyEscape}, nil
}

// readByte reads a single byte, ok=false on timeout
func (d *Decoder) readByte() (byte, bool, error) {
	n, err := d.r.Read(d.one[:])
	if n == 1 {
		return d.one[0], true, nil
	}
	if err == nil || errors.Is(err, io.EOF) {
		return 0, false, nil
	}
	return 0, false, fmt.Errorf("%w: %w", ErrRead, err)
}
