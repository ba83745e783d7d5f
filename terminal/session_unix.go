//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package terminal

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// Session owns raw mode on the controlling terminal.
// Exit must run on every exit path; it is safe to call more than once.
type Session struct {
	in    *os.File
	out   *os.File
	inFd  int
	outFd int
	vtime uint8
	log   *slog.Logger

	orig *unix.Termios
}

// NewSession creates a session over in/out, usually os.Stdin and os.Stdout
func NewSession(in, out *os.File, readTimeout time.Duration, log *slog.Logger) *Session {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Session{
		in:    in,
		out:   out,
		inFd:  int(in.Fd()),
		outFd: int(out.Fd()),
		vtime: deciseconds(readTimeout),
		log:   log,
	}
}

// deciseconds clamps a timeout into [MinReadTimeout, MaxReadTimeout] as VTIME units
func deciseconds(d time.Duration) uint8 {
	return uint8(ClampReadTimeout(d) / (100 * time.Millisecond))
}

// Enter captures the current attributes and switches to raw mode with a read timeout
func (s *Session) Enter() error {
	if s.orig != nil {
		return nil
	}
	if !term.IsTerminal(s.inFd) {
		return fmt.Errorf("%w: stdin is not a terminal", ErrTerminal)
	}

	orig, err := unix.IoctlGetTermios(s.inFd, ioctlReadTermios)
	if err != nil {
		return fmt.Errorf("%w: get attributes: %w", ErrTerminal, err)
	}

	raw := *orig
	// No break-to-SIGINT, CR-to-NL, parity check, 8th bit strip, or software flow control
	raw.Iflag &^= unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON
	// No "\n" to "\r\n" output translation
	raw.Oflag &^= unix.OPOST
	raw.Cflag |= unix.CS8
	// No echo, line buffering, signal keys (Ctrl-C, Ctrl-Z) or Ctrl-V
	raw.Lflag &^= unix.ECHO | unix.ICANON | unix.ISIG | unix.IEXTEN
	// Return from read after VTIME even with no data
	raw.Cc[unix.VMIN] = 0
	raw.Cc[unix.VTIME] = s.vtime

	if err := unix.IoctlSetTermios(s.inFd, ioctlWriteTermiosFlush, &raw); err != nil {
		return fmt.Errorf("%w: set attributes: %w", ErrTerminal, err)
	}
	s.orig = orig
	s.log.Debug("terminal raw mode entered", "vtime", s.vtime)
	return nil
}

// Exit restores the attributes captured by Enter
func (s *Session) Exit() error {
	if s.orig == nil {
		return nil
	}
	if err := unix.IoctlSetTermios(s.inFd, ioctlWriteTermiosFlush, s.orig); err != nil {
		return fmt.Errorf("%w: restore attributes: %w", ErrTerminal, err)
	}
	s.orig = nil
	s.log.Debug("terminal attributes restored")
	return nil
}

// Raw reports whether raw mode is active
func (s *Session) Raw() bool {
	return s.orig != nil
}

// Read reads raw input. A read timeout or an interrupted read returns (0, nil).
func (s *Session) Read(p []byte) (int, error) {
	n, err := unix.Read(s.inFd, p)
	if err != nil {
		if errors.Is(err, unix.EAGAIN) || errors.Is(err, unix.EINTR) {
			return 0, nil
		}
		return 0, err
	}
	if n < 0 {
		n = 0
	}
	return n, nil
}

// Write writes raw bytes to the terminal output
func (s *Session) Write(p []byte) (int, error) {
	return s.out.Write(p)
}

// QuerySize returns the terminal rows and columns, asking the kernel first and
// falling back to a cursor position report
func (s *Session) QuerySize() (rows, cols int, err error) {
	ws, ioctlErr := unix.IoctlGetWinsize(s.outFd, unix.TIOCGWINSZ)
	if ioctlErr == nil && ws.Col != 0 {
		return int(ws.Row), int(ws.Col), nil
	}
	if ioctlErr == nil {
		ioctlErr = errors.New("zero width")
	}

	s.log.Debug("winsize ioctl unavailable, using cursor report", "error", ioctlErr)
	rows, cols, err = queryCursorSize(s)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: size discovery: ioctl: %v; cursor report: %w", ErrTerminal, ioctlErr, err)
	}
	return rows, cols, nil
}
