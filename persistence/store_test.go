package persistence

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadStripsLineEndings(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{"unix", "abc\n\nde\n", []string{"abc", "", "de"}},
		{"crlf", "abc\r\nde\r\n", []string{"abc", "de"}},
		{"no trailing newline", "abc\nde", []string{"abc", "de"}},
		{"empty file", "", nil},
		{"single blank line", "\n", []string{""}},
		{"tabs kept", "\tx\n", []string{"\tx"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "f.txt")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}

			lines, err := NewFileStore().Load(path)
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if len(lines) != len(tt.want) {
				t.Fatalf("got %d lines, want %d", len(lines), len(tt.want))
			}
			for i, w := range tt.want {
				if string(lines[i]) != w {
					t.Errorf("line %d = %q, want %q", i, lines[i], w)
				}
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := NewFileStore().Load(filepath.Join(t.TempDir(), "missing.txt"))
	if !errors.Is(err, ErrIO) {
		t.Errorf("expected ErrIO, got %v", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected wrapped ErrNotExist, got %v", err)
	}
}

func TestSaveCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "new.txt")

	n, err := NewFileStore().Save(path, []byte("abc\n\nde\n"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if n != 8 {
		t.Errorf("wrote %d bytes, want 8", n)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm&0600 != 0600 {
		t.Errorf("file mode %v lacks owner read/write", perm)
	}
}

func TestSaveTruncatesLongerFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f.txt")
	if err := os.WriteFile(path, []byte("a much longer previous content\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := NewFileStore().Save(path, []byte("short\n")); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "short\n" {
		t.Errorf("file = %q, want %q", got, "short\n")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f.txt")
	content := "abc\n\nde\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	store := NewFileStore()
	lines, err := store.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	var data []byte
	for _, l := range lines {
		data = append(data, l...)
		data = append(data, '\n')
	}
	if _, err := store.Save(path, data); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, _ := os.ReadFile(path)
	if string(got) != content {
		t.Errorf("round trip = %q, want %q", got, content)
	}
}

func TestSaveIntoMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope", "f.txt")
	if _, err := NewFileStore().Save(path, []byte("x\n")); !errors.Is(err, ErrIO) {
		t.Errorf("expected ErrIO, got %v", err)
	}
}
