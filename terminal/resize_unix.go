//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package terminal

import (
	"os"
	"os/signal"

	"golang.org/x/sys/unix"
)

// ResizeWatcher records SIGWINCH for the caller's loop to poll; it starts no goroutine
type ResizeWatcher struct {
	sigCh chan os.Signal
}

// WatchResize begins listening for SIGWINCH
func WatchResize() *ResizeWatcher {
	w := &ResizeWatcher{sigCh: make(chan os.Signal, 1)}
	signal.Notify(w.sigCh, unix.SIGWINCH)
	return w
}

// Pending reports, without blocking, whether a resize arrived since the last call
func (w *ResizeWatcher) Pending() bool {
	select {
	case <-w.sigCh:
		return true
	default:
		return false
	}
}

// Stop stops signal delivery
func (w *ResizeWatcher) Stop() {
	signal.Stop(w.sigCh)
}
