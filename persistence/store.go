package persistence

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrIO classifies open, read and write failures on the backing file
var ErrIO = errors.New("i/o error")

// FileMode is the permission used when Save creates a file
const FileMode = 0644

// FileStore loads and saves whole text files line by line
type FileStore struct{}

// NewFileStore creates a file store
func NewFileStore() *FileStore {
	return &FileStore{}
}

// Load reads path into lines with trailing "\n" and "\r" stripped
func (s *FileStore) Load(path string) ([][]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
	defer f.Close()

	lines, err := readLines(f)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", ErrIO, path, err)
	}
	return lines, nil
}

// readLines splits r on '\n'; a final line without a terminator is kept
func readLines(r io.Reader) ([][]byte, error) {
	br := bufio.NewReader(r)
	var lines [][]byte
	for {
		line, err := br.ReadBytes('\n')
		if len(line) > 0 {
			lines = append(lines, trimEOL(line))
		}
		if err == io.EOF {
			return lines, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

func trimEOL(line []byte) []byte {
	n := len(line)
	for n > 0 && (line[n-1] == '\n' || line[n-1] == '\r') {
		n--
	}
	return line[:n]
}

// Save writes data to path, creating it if absent and truncating it to exactly len(data).
// It returns the number of bytes written.
func (s *FileStore) Save(path string, data []byte) (int, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, FileMode)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrIO, err)
	}

	if err := f.Truncate(int64(len(data))); err != nil {
		f.Close()
		return 0, fmt.Errorf("%w: %w", ErrIO, err)
	}
	n, err := f.WriteAt(data, 0)
	if err != nil {
		f.Close()
		return n, fmt.Errorf("%w: %w", ErrIO, err)
	}
	if err := f.Close(); err != nil {
		return n, fmt.Errorf("%w: %w", ErrIO, err)
	}
	return n, nil
}
