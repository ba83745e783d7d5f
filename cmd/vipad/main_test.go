package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/creack/pty"
	"github.com/hinshun/vt10x"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vipad/config"
	"github.com/lixenwraith/vipad/editor"
	"github.com/lixenwraith/vipad/terminal"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())
	return out.String()
}

func TestUsageForMultipleFiles(t *testing.T) {
	out := execute(t, "a.txt", "b.txt")
	require.Contains(t, out, "Usage:")
	require.Contains(t, out, "vipad [file]")
}

func TestVersionFlag(t *testing.T) {
	require.Contains(t, execute(t, "--version"), editor.Version)
}

func TestHelpListsFlags(t *testing.T) {
	out := execute(t, "--help")
	for _, flag := range []string{"--debug", "--log-file", "--read-timeout"} {
		require.Contains(t, out, flag)
	}
}

// ptyScreen mirrors everything the program writes into an emulated terminal
type ptyScreen struct {
	mu   sync.Mutex
	term vt10x.Terminal
}

func (s *ptyScreen) pump(ptmx *os.File) {
	buf := make([]byte, 4096)
	for {
		n, err := ptmx.Read(buf)
		if n > 0 {
			s.mu.Lock()
			s.term.Write(buf[:n])
			s.mu.Unlock()
		}
		if err != nil {
			return
		}
	}
}

func (s *ptyScreen) waitFor(t *testing.T, text string) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		s.mu.Lock()
		screen := s.term.String()
		s.mu.Unlock()
		if strings.Contains(screen, text) {
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %q", text)
}

func TestRunEditsFileThroughPTY(t *testing.T) {
	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skipf("pty unavailable: %v", err)
	}
	defer ptmx.Close()
	defer tty.Close()
	require.NoError(t, pty.Setsize(ptmx, &pty.Winsize{Rows: 24, Cols: 80}))

	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("ab\ncd\n"), 0644))

	screen := &ptyScreen{term: vt10x.New(vt10x.WithSize(80, 24))}
	go screen.pump(ptmx)

	done := make(chan error, 1)
	go func() {
		cfg := config.Config{ReadTimeout: terminal.DefaultReadTimeout}
		done <- run(cfg, []string{path}, tty, tty, tty)
	}()

	// Keys sent before raw mode is set would be flushed
	screen.waitFor(t, "-- NORMAL --")
	screen.waitFor(t, "notes.txt")

	_, err = ptmx.Write([]byte("jA!"))
	require.NoError(t, err)
	screen.waitFor(t, "2 cd!")
	screen.waitFor(t, "-- INSERT --")

	_, err = ptmx.Write([]byte{terminal.ByteEscape})
	require.NoError(t, err)
	screen.waitFor(t, "-- NORMAL --")

	_, err = ptmx.Write([]byte{terminal.Ctrl('s')})
	require.NoError(t, err)
	screen.waitFor(t, "2L, 7C written")

	_, err = ptmx.Write([]byte{terminal.Ctrl('q')})
	require.NoError(t, err)

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("editor did not quit")
	}

	saved, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "ab\ncd!\n", string(saved))
}
