package terminal

import "strconv"

// Pre-allocated ANSI sequences
var (
	SeqClearScreen = []byte("\x1b[2J")
	SeqCursorHome  = []byte("\x1b[H")
	SeqEraseLine   = []byte("\x1b[K")
	SeqCRLF        = []byte("\r\n")
	SeqRIS         = []byte("\x1bc") // Reset to Initial State (emergency)

	// Cursor control
	SeqCursorHide = []byte("\x1b[?25l")
	SeqCursorShow = []byte("\x1b[?25h")
	seqCursorPos  = []byte("\x1b[") // followed by row;colH

	// Attributes
	SeqInverse  = []byte("\x1b[7m")
	SeqSGRReset = []byte("\x1b[m")

	// Device status report: request and the far move used before it for size discovery
	seqCursorReport = []byte("\x1b[6n")
	seqCursorFar    = []byte("\x1b[999C\x1b[999B")
)

// AppendCursorPos appends a cursor positioning sequence (0-indexed input)
func AppendCursorPos(buf []byte, x, y int) []byte {
	buf = append(buf, seqCursorPos...)
	buf = strconv.AppendInt(buf, int64(y+1), 10)
	buf = append(buf, ';')
	buf = strconv.AppendInt(buf, int64(x+1), 10)
	return append(buf, 'H')
}
