package render

import (
	"fmt"
	"strconv"

	"github.com/lixenwraith/vipad/terminal"
)

const (
	bannerFormat = "Vipad editor -- version %s"
	bannerAuthor = "by lixenwraith."
	fillerMarker = '~'
)

// Renderer builds full-screen frames as a single VT100 byte stream
type Renderer struct {
	buf []byte // Optimization: scratch reused across frames
}

// NewRenderer creates a renderer with a scratch buffer sized for a typical screen
func NewRenderer() *Renderer {
	return &Renderer{buf: make([]byte, 0, 8192)}
}

// Frame renders v and returns the bytes to write in one call.
// The returned slice is only valid until the next Frame call.
func (r *Renderer) Frame(v View) []byte {
	b := r.buf[:0]

	b = append(b, terminal.SeqCursorHide...)
	b = append(b, terminal.SeqCursorHome...)

	b = r.appendRows(b, v)
	b = appendStatusBar(b, v)
	b = appendCommandBar(b, v)

	x := v.CursorX - v.Viewport.ColOffset
	y := v.CursorY - v.Viewport.RowOffset
	b = terminal.AppendCursorPos(b, max(x, 0), max(y, 0))
	b = append(b, terminal.SeqCursorShow...)

	r.buf = b
	return b
}

// appendRows draws each visible text row: gutter and text for buffer lines, filler past the end
func (r *Renderer) appendRows(b []byte, v View) []byte {
	rows := VisibleRows(v.Rows)
	count := 0
	if v.Buffer != nil {
		count = v.Buffer.Len()
	}

	for y := 0; y < rows; y++ {
		fileRow := y + v.Viewport.RowOffset
		if fileRow < count {
			b = appendTextRow(b, v, fileRow)
		} else {
			b = append(b, fillerMarker)
			if count == 0 {
				switch y {
				case rows / 3:
					b = appendCentered(b, fmt.Sprintf(bannerFormat, v.Version), v.Cols)
				case rows/3 + 1:
					b = appendCentered(b, bannerAuthor, v.Cols)
				}
			}
		}
		b = append(b, terminal.SeqEraseLine...)
		b = append(b, terminal.SeqCRLF...)
	}
	return b
}

// appendTextRow writes the right-justified line number, a separator, and the visible slice of the line.
// A number wider than the gutter widens the prefix; text is clipped so the row never wraps.
func appendTextRow(b []byte, v View, fileRow int) []byte {
	start := len(b)
	num := strconv.Itoa(fileRow + 1)
	for i := len(num); i < v.GutterWidth; i++ {
		b = append(b, ' ')
	}
	b = append(b, num...)
	b = append(b, ' ')
	prefix := len(b) - start

	render := v.Buffer.Line(fileRow).Render()
	off := v.Viewport.ColOffset
	if off >= len(render) {
		return b
	}
	visible := render[off:]
	if width := v.Cols - prefix; len(visible) > width {
		visible = visible[:max(width, 0)]
	}
	return append(b, visible...)
}

// appendCentered centers text after the filler marker, clipped to the screen width
func appendCentered(b []byte, text string, cols int) []byte {
	room := max(cols-1, 0)
	if len(text) > room {
		text = text[:room]
	}
	margin := (cols - len(text)) / 2
	margin = min(margin, room-len(text))
	for i := 0; i < margin; i++ {
		b = append(b, ' ')
	}
	return append(b, text...)
}

// appendStatusBar draws the inverted filename and position bar
func appendStatusBar(b []byte, v View) []byte {
	name := v.Filename
	if name == "" {
		name = NoNamePlaceholder
	}
	count := 0
	if v.Buffer != nil {
		count = v.Buffer.Len()
	}
	ts := TextStart(v.GutterWidth)
	right := fmt.Sprintf("Ln%d,Col%d  %d lines", v.CursorY+1, v.CursorX+1-ts, count)

	b = append(b, terminal.SeqInverse...)
	start := len(b)
	b = append(b, name...)
	for i := len(name) + len(right); i < v.Cols; i++ {
		b = append(b, ' ')
	}
	b = append(b, right...)
	if len(b)-start > v.Cols {
		b = b[:start+max(v.Cols, 0)]
	}
	b = append(b, terminal.SeqSGRReset...)
	return append(b, terminal.SeqCRLF...)
}

// appendCommandBar draws the mode label and a status message younger than MessageTimeout
func appendCommandBar(b []byte, v View) []byte {
	b = append(b, terminal.SeqEraseLine...)
	start := len(b)
	b = append(b, v.Mode...)
	if v.Message != "" && v.Now.Sub(v.MessageTime) < MessageTimeout {
		b = append(b, v.Message...)
	}
	if len(b)-start > v.Cols {
		b = b[:start+max(v.Cols, 0)]
	}
	return b
}
