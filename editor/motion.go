package editor

import "github.com/lixenwraith/vipad/terminal"

// motion is a single-step cursor movement
type motion uint8

const (
	motionLeft motion = iota
	motionRight
	motionUp
	motionDown
	motionBack // Left that wraps to the previous line end
)

func move(m motion) action {
	return func(e *Editor, _ terminal.Event) error {
		e.step(m)
		return nil
	}
}

func page(m motion) action {
	return func(e *Editor, _ terminal.Event) error {
		e.pageMove(m)
		return nil
	}
}

// lastCol returns the last column the navigation cursor may occupy on the current line
func (e *Editor) lastCol() int {
	ts := e.textStart()
	line := e.currentLine()
	if line == nil {
		return ts
	}
	return ts + max(line.RenderSize()-1, 0)
}

// step moves the cursor one cell, then reconciles the column against the target line
func (e *Editor) step(m motion) {
	ts := e.textStart()
	switch m {
	case motionLeft:
		if e.cur.X > ts {
			e.cur.X--
		}
		e.cur.PrefX = e.cur.X
	case motionRight:
		if e.cur.X < e.lastCol() {
			e.cur.X++
		}
		e.cur.PrefX = e.cur.X
	case motionUp:
		if e.cur.Y > 0 {
			e.cur.Y--
		}
	case motionDown:
		if e.cur.Y < e.buf.Len()-1 {
			e.cur.Y++
		}
	case motionBack:
		if e.cur.X > ts {
			e.cur.X--
		} else if e.cur.Y > 0 {
			e.cur.Y--
			e.cur.X = ts + e.currentLine().RenderSize()
		}
		e.cur.PrefX = e.cur.X
	}
	e.reconcile()
}

// reconcile restores the sticky column when the line is long enough, otherwise snaps to its end
func (e *Editor) reconcile() {
	ts := e.textStart()
	line := e.currentLine()
	if line == nil {
		e.cur.X = ts
		return
	}
	end := ts + line.RenderSize()
	switch {
	case e.cur.PrefX < ts:
		e.cur.X = ts
	case e.cur.PrefX < end:
		e.cur.X = e.cur.PrefX
	case line.RenderSize() == 0:
		e.cur.X = ts
	default:
		e.cur.X = end - 1
	}
}

// pageMove jumps to the screen edge and then steps a full screen so length clamping applies per line
func (e *Editor) pageMove(m motion) {
	rows := e.visibleRows()
	if m == motionDown {
		e.cur.Y = min(e.viewport.RowOffset+rows-1, e.buf.Len()-1)
	} else {
		e.cur.Y = e.viewport.RowOffset
	}
	e.cur.Y = max(e.cur.Y, 0)
	for i := 0; i < rows; i++ {
		e.step(m)
	}
	e.reconcile()
}

func (e *Editor) lineStart(terminal.Event) error {
	e.cur.X = e.textStart()
	e.cur.PrefX = e.cur.X
	e.viewport.ColOffset = 0
	return nil
}

func (e *Editor) lineEnd(terminal.Event) error {
	e.cur.X = e.lastCol()
	e.cur.PrefX = e.cur.X
	return nil
}
