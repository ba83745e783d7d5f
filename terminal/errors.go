package terminal

import "errors"

var (
	// ErrTerminal reports a failure to get or set terminal attributes, or to discover its size
	ErrTerminal = errors.New("terminal error")

	// ErrRead reports an unrecoverable read from the terminal (anything but a timeout)
	ErrRead = errors.New("terminal read error")
)
