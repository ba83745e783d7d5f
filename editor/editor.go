// Package editor implements the modal editing state machine and the
// refresh/read/dispatch main loop.
package editor

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/lixenwraith/vipad/buffer"
	"github.com/lixenwraith/vipad/render"
	"github.com/lixenwraith/vipad/terminal"
)

// Version is reported in the empty-buffer banner and by the command line
const Version = "0.0.1"

const startupMessage = "type <CTRL-Q> to quit"

// ErrQuit is returned by Dispatch when the user asked to exit
var ErrQuit = errors.New("quit")

// Screen is the output side of the terminal session
type Screen interface {
	Write(p []byte) (int, error)
	QuerySize() (rows, cols int, err error)
}

// KeySource yields decoded key events; KeyNone means the read timed out
type KeySource interface {
	ReadKey() (terminal.Event, error)
}

// Store loads and saves whole files
type Store interface {
	Load(path string) ([][]byte, error)
	Save(path string, data []byte) (int, error)
}

// ResizeSource reports pending terminal size changes without blocking
type ResizeSource interface {
	Pending() bool
}

// Cursor is the editing position. X is a rendered column that includes the gutter,
// Y a line index. PrefX is the sticky column restored by vertical moves.
type Cursor struct {
	X     int
	Y     int
	PrefX int
}

// Editor owns the buffer, cursor, viewport and mode for the process lifetime
type Editor struct {
	screen   Screen
	keys     KeySource
	store    Store
	resize   ResizeSource
	renderer *render.Renderer
	log      *slog.Logger
	now      func() time.Time

	buf      *buffer.Buffer
	cur      Cursor
	viewport render.Viewport
	mode     Mode
	tables   [2]*keyTable

	rows   int
	cols   int
	gutter int

	filename string
	loaded   bool

	message     string
	messageTime time.Time
}

// New creates an editor with an empty untitled buffer sized to the screen
func New(screen Screen, keys KeySource, store Store, log *slog.Logger) (*Editor, error) {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	e := &Editor{
		screen:   screen,
		keys:     keys,
		store:    store,
		renderer: render.NewRenderer(),
		log:      log,
		now:      time.Now,
		buf:      buffer.New(),
		mode:     ModeNavigation,
	}
	e.tables[ModeNavigation] = navigationTable()
	e.tables[ModeInsertion] = insertionTable()

	if err := e.updateSize(); err != nil {
		return nil, err
	}
	e.cur.X = e.textStart()
	e.cur.PrefX = e.cur.X
	e.setMessage(startupMessage)
	return e, nil
}

// SetResizeSource makes Refresh re-query the screen size when r reports a change
func (e *Editor) SetResizeSource(r ResizeSource) {
	e.resize = r
}

// Open loads path into the buffer and fixes the gutter width from its line count
func (e *Editor) Open(path string) error {
	lines, err := e.store.Load(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}

	e.buf = buffer.FromLines(lines)
	e.filename = path
	e.loaded = true
	e.gutter = len(strconv.Itoa(e.buf.Len()))
	e.viewport = render.Viewport{}
	e.cur = Cursor{X: e.textStart(), PrefX: e.textStart()}

	e.log.Info("file loaded", "path", path, "lines", e.buf.Len())
	return nil
}

// Mode returns the active mode
func (e *Editor) Mode() Mode { return e.mode }

// Cursor returns the cursor position
func (e *Editor) Cursor() Cursor { return e.cur }

// Buffer returns the text buffer
func (e *Editor) Buffer() *buffer.Buffer { return e.buf }

// Viewport returns the viewport computed by the last Refresh
func (e *Editor) Viewport() render.Viewport { return e.viewport }

// TextStart returns the first text column after the gutter
func (e *Editor) TextStart() int { return e.textStart() }

// Run alternates refresh, key read and dispatch until the user quits or a fatal error occurs.
// On quit the screen is cleared and Run returns nil.
func (e *Editor) Run() error {
	for {
		if err := e.Refresh(); err != nil {
			return err
		}
		ev, err := e.keys.ReadKey()
		if err != nil {
			return err
		}
		if err := e.Dispatch(ev); err != nil {
			if errors.Is(err, ErrQuit) {
				e.log.Info("quit requested")
				return e.clearScreen()
			}
			return err
		}
	}
}

// Dispatch applies one key event through the active mode's table.
// Position errors are logged and the edit dropped; only ErrQuit is returned.
func (e *Editor) Dispatch(ev terminal.Event) error {
	if ev.Key == terminal.KeyNone {
		return nil
	}
	act := e.tables[e.mode].lookup(ev)
	if act == nil {
		return nil
	}
	err := act(e, ev)
	if errors.Is(err, buffer.ErrInvalidPosition) {
		e.log.Error("edit dropped", "key", ev.String(), "mode", e.mode.String(), "error", err)
		return nil
	}
	return err
}

// Refresh recomputes the viewport and writes one complete frame
func (e *Editor) Refresh() error {
	if e.resize != nil && e.resize.Pending() {
		if err := e.updateSize(); err != nil {
			return err
		}
		e.log.Debug("terminal resized", "rows", e.rows, "cols", e.cols)
	}

	e.viewport = render.Scroll(e.viewport, e.cur.X, e.cur.Y, e.textStart(),
		render.VisibleRows(e.rows), render.VisibleCols(e.cols, e.gutter))

	frame := e.renderer.Frame(e.view())
	if _, err := e.screen.Write(frame); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	return nil
}

func (e *Editor) view() render.View {
	return render.View{
		Buffer:      e.buf,
		Rows:        e.rows,
		Cols:        e.cols,
		CursorX:     e.cur.X,
		CursorY:     e.cur.Y,
		Viewport:    e.viewport,
		GutterWidth: e.gutter,
		Filename:    e.filename,
		Mode:        e.mode.Label(),
		Message:     e.message,
		MessageTime: e.messageTime,
		Now:         e.now(),
		Version:     Version,
	}
}

func (e *Editor) updateSize() error {
	rows, cols, err := e.screen.QuerySize()
	if err != nil {
		return err
	}
	e.rows, e.cols = rows, cols
	return nil
}

func (e *Editor) clearScreen() error {
	out := make([]byte, 0, len(terminal.SeqClearScreen)+len(terminal.SeqCursorHome))
	out = append(out, terminal.SeqClearScreen...)
	out = append(out, terminal.SeqCursorHome...)
	_, err := e.screen.Write(out)
	return err
}

func (e *Editor) setMessage(format string, args ...any) {
	e.message = fmt.Sprintf(format, args...)
	e.messageTime = e.now()
}

func (e *Editor) textStart() int {
	return render.TextStart(e.gutter)
}

func (e *Editor) visibleRows() int {
	return render.VisibleRows(e.rows)
}

// currentLine returns the line under the cursor, nil for an empty buffer
func (e *Editor) currentLine() *buffer.Line {
	return e.buf.Line(e.cur.Y)
}
