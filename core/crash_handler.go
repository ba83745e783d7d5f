package core

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime/debug"

	"github.com/fatih/color"

	"github.com/lixenwraith/vipad/terminal"
)

// Restorer returns the terminal to the attributes it had before raw mode
type Restorer interface {
	Exit() error
}

// CrashHandler owns every fatal exit path: the terminal is always restored before anything is printed
type CrashHandler struct {
	restorer Restorer
	out      io.Writer // Terminal output
	errOut   io.Writer // Diagnostics
	log      *slog.Logger
	cleanups []func()

	// Injected for tests
	exit  func(int)
	reset func(io.Writer)
}

// NewCrashHandler creates a handler that restores r, clears out and reports to errOut
func NewCrashHandler(r Restorer, out, errOut io.Writer, log *slog.Logger) *CrashHandler {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &CrashHandler{
		restorer: r,
		out:      out,
		errOut:   errOut,
		log:      log,
		exit:     os.Exit,
		reset:    terminal.EmergencyReset,
	}
}

// OnExit registers fn to run just before a fatal exit, newest first.
// Deferred calls in the caller never run once the process exits here.
func (h *CrashHandler) OnExit(fn func()) {
	h.cleanups = append(h.cleanups, fn)
}

// terminate runs the registered cleanups and exits with code
func (h *CrashHandler) terminate(code int) {
	for i := len(h.cleanups) - 1; i >= 0; i-- {
		h.cleanups[i]()
	}
	h.cleanups = nil
	h.exit(code)
}

// restore leaves raw mode, falling back to an emergency reset if the saved attributes can't be applied
func (h *CrashHandler) restore() {
	if h.restorer != nil {
		err := h.restorer.Exit()
		if err == nil {
			return
		}
		h.log.Error("terminal restore failed", "error", err)
	}
	h.reset(h.out)
}

// Fatal restores the terminal, clears the screen, prints err in red and exits with status 1
func (h *CrashHandler) Fatal(err error) {
	h.log.Error("fatal", "error", err)
	h.restore()

	h.out.Write(terminal.SeqClearScreen)
	h.out.Write(terminal.SeqCursorHome)
	syncWriter(h.out)

	color.New(color.FgRed).Fprintf(h.errOut, "vipad: %v\n", err)
	syncWriter(h.errOut)

	h.terminate(1)
}

// HandleCrash is the panic handler: it restores the terminal and prints the stack trace.
// Use from a deferred recover.
func (h *CrashHandler) HandleCrash(r any) {
	if r == nil {
		return
	}
	h.log.Error("panic", "value", fmt.Sprint(r))

	// Restore terminal to sane state immediately
	h.restore()
	syncWriter(h.out)

	color.New(color.FgRed).Fprintf(h.errOut, "\r\nCRASH DETECTED: %v\r\n", r)
	fmt.Fprintf(h.errOut, "Stack Trace:\r\n%s\r\n", debug.Stack())
	syncWriter(h.errOut)

	h.terminate(1)
}

func syncWriter(w io.Writer) {
	if f, ok := w.(*os.File); ok {
		f.Sync()
	}
}
