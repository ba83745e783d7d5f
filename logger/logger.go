package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Options selects whether and where to log
type Options struct {
	Debug bool   // Debug level; also enables logging
	Path  string // Log file; enables logging at Info level when set without Debug
}

// DefaultPath returns ~/.config/vipad/vipad.log, falling back to the temp dir without a home
func DefaultPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = os.TempDir()
	}
	return filepath.Join(homeDir, ".config", "vipad", "vipad.log")
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New builds the application logger. With logging disabled every record is
// discarded, since the terminal is raw and nothing may reach stdout or stderr.
// The returned closer releases the log file.
func New(opts Options) (*slog.Logger, io.Closer, error) {
	if !opts.Debug && opts.Path == "" {
		return slog.New(slog.DiscardHandler), nopCloser{}, nil
	}

	path := opts.Path
	if path == "" {
		path = DefaultPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, nil, err
	}

	level := slog.LevelInfo
	if opts.Debug {
		level = slog.LevelDebug
	}

	// Use lumberjack for log rotation
	writer := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     7, // days
		Compress:   true,
	}

	handler := slog.NewJSONHandler(writer, &slog.HandlerOptions{Level: level})
	log := slog.New(handler).With("pid", os.Getpid())
	log.Debug("logger initialized", "path", path)
	return log, writer, nil
}
