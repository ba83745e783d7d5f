// Package terminal owns the raw terminal session and the key decoder.
//
// Features:
//   - Raw (non-canonical) mode with a short read timeout so callers can redraw without input
//   - Window size discovery via ioctl, falling back to a cursor position report
//   - Escape sequence decoding into typed keys with a bounded lookahead
//   - SIGWINCH notification polled from the caller's loop
//   - Best-effort terminal restoration on crash
//
// This package bypasses terminfo/termcap entirely, emitting direct ANSI sequences.
// Target environments: Linux, macOS, BSDs with xterm-compatible terminals.
package terminal
