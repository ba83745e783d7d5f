package buffer

// TabStop is the rendered column multiple a tab advances to
const TabStop = 8

// Line holds the logical bytes of one text line and their rendered form.
// render is derived from text after every mutation and never written directly.
type Line struct {
	text   []byte
	render []byte
}

// NewLine creates a line owning a copy of text
func NewLine(text []byte) *Line {
	l := &Line{text: append([]byte(nil), text...)}
	l.update()
	return l
}

// Text returns the logical bytes. The slice is owned by the line.
func (l *Line) Text() []byte {
	return l.text
}

// Render returns the rendered bytes (tabs expanded). The slice is owned by the line.
func (l *Line) Render() []byte {
	return l.render
}

// Size returns the logical length
func (l *Line) Size() int {
	return len(l.text)
}

// RenderSize returns the rendered length
func (l *Line) RenderSize() int {
	return len(l.render)
}

// update re-derives render from text
func (l *Line) update() {
	l.render = expandTabs(l.render[:0], l.text)
}

// insertByte inserts ch before col, col clamped to [0, size]
func (l *Line) insertByte(col int, ch byte) {
	col = clamp(col, 0, len(l.text))
	l.text = append(l.text, 0)
	copy(l.text[col+1:], l.text[col:])
	l.text[col] = ch
	l.update()
}

// deleteByte removes the byte at col, reports false if col is out of range
func (l *Line) deleteByte(col int) bool {
	if col < 0 || col >= len(l.text) {
		return false
	}
	l.text = append(l.text[:col], l.text[col+1:]...)
	l.update()
	return true
}

func (l *Line) appendBytes(b []byte) {
	l.text = append(l.text, b...)
	l.update()
}

func (l *Line) truncate(n int) {
	l.text = l.text[:clamp(n, 0, len(l.text))]
	l.update()
}

// RenderToLogical maps a rendered column to the index of the logical byte
// whose rendered span covers it. Columns past the end map to Size().
func (l *Line) RenderToLogical(rx int) int {
	cur := 0
	for i, c := range l.text {
		w := 1
		if c == '\t' {
			w = TabStop - cur%TabStop
		}
		if cur+w > rx {
			return i
		}
		cur += w
	}
	return len(l.text)
}

// LogicalToRender maps a logical index, clamped to [0, Size()], to the
// rendered column where that byte starts.
func (l *Line) LogicalToRender(cx int) int {
	cx = clamp(cx, 0, len(l.text))
	rx := 0
	for _, c := range l.text[:cx] {
		if c == '\t' {
			rx += TabStop - rx%TabStop
		} else {
			rx++
		}
	}
	return rx
}

// expandTabs appends the rendered form of src to dst
func expandTabs(dst, src []byte) []byte {
	for _, c := range src {
		if c != '\t' {
			dst = append(dst, c)
			continue
		}
		dst = append(dst, ' ')
		for len(dst)%TabStop != 0 {
			dst = append(dst, ' ')
		}
	}
	return dst
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
