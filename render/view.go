package render

import (
	"time"

	"github.com/lixenwraith/vipad/buffer"
)

// Screen layout constants
const (
	BarRows           = 2 // Status bar + command bar
	MessageTimeout    = 5 * time.Second
	NoNamePlaceholder = "[No Name]"
)

// View is the editor state snapshot a frame is built from
type View struct {
	Buffer *buffer.Buffer

	// Terminal dimensions
	Rows int
	Cols int

	// Cursor in screen-independent coordinates: X is a rendered column including the gutter, Y a line index
	CursorX int
	CursorY int

	Viewport    Viewport
	GutterWidth int

	Filename string // Empty when untitled
	Mode     string // Mode label for the command bar

	Message     string
	MessageTime time.Time
	Now         time.Time

	Version string // Shown in the empty-buffer banner
}

// TextStart returns the first rendered column after the gutter
func TextStart(gutterWidth int) int {
	return gutterWidth + 1
}

// VisibleRows returns the number of text rows above the bars
func VisibleRows(rows int) int {
	return max(rows-BarRows, 0)
}

// VisibleCols returns the number of text columns right of the gutter
func VisibleCols(cols, gutterWidth int) int {
	return max(cols-TextStart(gutterWidth), 0)
}
