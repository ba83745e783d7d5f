package terminal

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// maxReportLen bounds the cursor position report read
const maxReportLen = 32

// queryCursorSize moves the cursor to the far bottom-right (the terminal clamps it),
// requests a cursor position report and parses the reply as the screen size.
func queryCursorSize(rw io.ReadWriter) (rows, cols int, err error) {
	if _, err := rw.Write(seqCursorFar); err != nil {
		return 0, 0, err
	}
	if _, err := rw.Write(seqCursorReport); err != nil {
		return 0, 0, err
	}

	var reply [maxReportLen]byte
	var one [1]byte
	n := 0
	for n < len(reply) {
		rn, err := rw.Read(one[:])
		if rn != 1 {
			if err != nil && !errors.Is(err, io.EOF) {
				return 0, 0, err
			}
			break
		}
		if one[0] == 'R' {
			break
		}
		reply[n] = one[0]
		n++
	}
	return parseCursorReport(reply[:n])
}

// parseCursorReport parses "ESC [ rows ; cols" (the trailing 'R' already stripped)
func parseCursorReport(reply []byte) (rows, cols int, err error) {
	if len(reply) < 2 || reply[0] != ByteEscape || reply[1] != '[' {
		return 0, 0, fmt.Errorf("malformed cursor report %q", reply)
	}
	rowPart, colPart, ok := bytes.Cut(reply[2:], []byte{';'})
	if !ok {
		return 0, 0, fmt.Errorf("malformed cursor report %q", reply)
	}
	rows, err = strconv.Atoi(string(rowPart))
	if err != nil {
		return 0, 0, fmt.Errorf("cursor report rows: %w", err)
	}
	cols, err = strconv.Atoi(string(colPart))
	if err != nil {
		return 0, 0, fmt.Errorf("cursor report cols: %w", err)
	}
	if rows <= 0 || cols <= 0 {
		return 0, 0, fmt.Errorf("cursor report out of range %dx%d", rows, cols)
	}
	return rows, cols, nil
}
