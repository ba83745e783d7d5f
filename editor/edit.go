package editor

import (
	"errors"
	"io/fs"

	"github.com/lixenwraith/vipad/terminal"
)

func (e *Editor) quit(terminal.Event) error {
	return ErrQuit
}

func (e *Editor) toInsertion() {
	if e.mode != ModeInsertion {
		e.log.Debug("mode change", "from", e.mode.String(), "to", ModeInsertion.String())
	}
	e.mode = ModeInsertion
}

// toNavigation leaves Insertion and pulls a past-the-end cursor back onto the last character
func (e *Editor) toNavigation() {
	if e.mode != ModeNavigation {
		e.log.Debug("mode change", "from", e.mode.String(), "to", ModeNavigation.String())
	}
	e.mode = ModeNavigation
	e.cur.X = min(max(e.cur.X, e.textStart()), e.lastCol())
}

func (e *Editor) leaveInsertion(terminal.Event) error {
	e.toNavigation()
	return nil
}

// ensureLine gives an empty buffer its first line before an insertion
func (e *Editor) ensureLine() error {
	if e.buf.Len() > 0 {
		return nil
	}
	e.cur.Y = 0
	return e.buf.InsertLine(0, nil)
}

// logicalCol maps the cursor's rendered column to a byte index in the current line
func (e *Editor) logicalCol() int {
	line := e.currentLine()
	if line == nil {
		return 0
	}
	return line.RenderToLogical(e.cur.X - e.textStart())
}

func (e *Editor) insertHere(terminal.Event) error {
	if !e.loaded {
		return nil
	}
	e.toInsertion()
	return nil
}

// appendAfter starts inserting after the character under the cursor, which for a tab is past its whole span
func (e *Editor) appendAfter(terminal.Event) error {
	e.toInsertion()
	ts := e.textStart()
	e.cur.X = ts
	if line := e.currentLine(); line != nil {
		e.cur.X += min(line.LogicalToRender(e.logicalCol()+1), line.RenderSize())
	}
	e.cur.PrefX = e.cur.X
	return nil
}

func (e *Editor) appendLineEnd(terminal.Event) error {
	e.toInsertion()
	e.cur.X = e.textStart()
	if line := e.currentLine(); line != nil {
		e.cur.X += line.RenderSize()
	}
	e.cur.PrefX = e.cur.X
	return nil
}

// openBelow inserts an empty line after the current one and starts inserting on it
func (e *Editor) openBelow(terminal.Event) error {
	if e.buf.Len() == 0 {
		if err := e.buf.InsertLine(0, nil); err != nil {
			return err
		}
	} else {
		if err := e.buf.InsertLine(e.cur.Y+1, nil); err != nil {
			return err
		}
		e.cur.Y++
	}
	e.cur.X = e.textStart()
	e.cur.PrefX = e.cur.X
	e.toInsertion()
	return nil
}

// openAbove inserts an empty line before the current one and starts inserting on it
func (e *Editor) openAbove(terminal.Event) error {
	if err := e.buf.InsertLine(e.cur.Y, nil); err != nil {
		return err
	}
	e.cur.X = e.textStart()
	e.cur.PrefX = e.cur.X
	e.toInsertion()
	return nil
}

func (e *Editor) joinNext(terminal.Event) error {
	if !e.loaded || e.cur.Y >= e.buf.Len()-1 {
		return nil
	}
	next := e.buf.Line(e.cur.Y + 1)
	if err := e.buf.Join(e.cur.Y, next.Text()); err != nil {
		return err
	}
	return e.buf.DeleteLine(e.cur.Y + 1)
}

// deleteUnderCursor removes the byte under the cursor and returns to Navigation
func (e *Editor) deleteUnderCursor(terminal.Event) error {
	if !e.loaded {
		return nil
	}
	if line := e.currentLine(); line != nil {
		col := e.logicalCol()
		if err := e.buf.DeleteChar(e.cur.Y, col); err != nil {
			return err
		}
		e.cur.X = e.textStart() + line.LogicalToRender(col)
	}
	e.toNavigation()
	e.cur.PrefX = e.cur.X
	return nil
}

// insertPrintable inserts any byte that is not a control character. Tab, Enter and Backspace have their own bindings.
func (e *Editor) insertPrintable(ev terminal.Event) error {
	if ev.Byte < 0x20 || ev.Byte == terminal.ByteBackspace {
		return nil
	}
	return e.insertByte(ev)
}

// insertByte inserts the event byte before the cursor and advances past it
func (e *Editor) insertByte(ev terminal.Event) error {
	if err := e.ensureLine(); err != nil {
		return err
	}
	col := e.logicalCol()
	if err := e.buf.InsertChar(e.cur.Y, col, ev.Byte); err != nil {
		return err
	}
	e.cur.X = e.textStart() + e.currentLine().LogicalToRender(col+1)
	e.cur.PrefX = e.cur.X
	return nil
}

// splitLine breaks the line at the cursor. At the text start the whole line moves down
// below a new empty line. The tail is inserted before the head is truncated.
func (e *Editor) splitLine(terminal.Event) error {
	if err := e.ensureLine(); err != nil {
		return err
	}
	ts := e.textStart()
	if e.cur.X <= ts {
		if err := e.buf.InsertLine(e.cur.Y, nil); err != nil {
			return err
		}
	} else {
		col := e.logicalCol()
		tail := e.currentLine().Text()[col:]
		if err := e.buf.InsertLine(e.cur.Y+1, tail); err != nil {
			return err
		}
		if err := e.buf.Truncate(e.cur.Y, col); err != nil {
			return err
		}
	}
	e.cur.Y++
	e.cur.X = ts
	e.cur.PrefX = ts
	return nil
}

// backspace deletes the byte before the cursor, or joins the line onto the previous one at its start
func (e *Editor) backspace(terminal.Event) error {
	line := e.currentLine()
	if line == nil {
		return nil
	}
	ts := e.textStart()
	if e.cur.X <= ts {
		if e.cur.Y == 0 {
			return nil
		}
		prev := e.buf.Line(e.cur.Y - 1)
		joinAt := ts + prev.RenderSize()
		if err := e.buf.Join(e.cur.Y-1, line.Text()); err != nil {
			return err
		}
		if err := e.buf.DeleteLine(e.cur.Y); err != nil {
			return err
		}
		e.cur.Y--
		e.cur.X = joinAt
		e.cur.PrefX = joinAt
		return nil
	}

	// The byte whose rendered span covers the column left of the cursor
	col := line.RenderToLogical(e.cur.X - ts - 1)
	if err := e.buf.DeleteChar(e.cur.Y, col); err != nil {
		return err
	}
	e.cur.X = ts + line.LogicalToRender(col)
	e.cur.PrefX = e.cur.X
	return nil
}

// save writes the buffer to its file and reports the outcome in the command bar
func (e *Editor) save(terminal.Event) error {
	if !e.loaded {
		e.setMessage("no file name")
		return nil
	}

	data := e.buf.Bytes()
	n, err := e.store.Save(e.filename, data)
	if err != nil {
		e.log.Warn("save failed", "path", e.filename, "error", err)
		e.setMessage("can't save! I/O error: %s", saveCause(err))
		return nil
	}
	e.log.Info("file saved", "path", e.filename, "lines", e.buf.Len(), "bytes", n)
	e.setMessage("%dL, %dC written", e.buf.Len(), n)
	return nil
}

// saveCause reduces a save error to the operating system's description when available
func saveCause(err error) string {
	var pe *fs.PathError
	if errors.As(err, &pe) {
		return pe.Err.Error()
	}
	return err.Error()
}
