package render

// Viewport is the top-left logical position currently on screen
type Viewport struct {
	RowOffset int
	ColOffset int // Rendered columns, relative to the text start
}

// Scroll returns vp moved just enough that the cursor lies inside it.
// cx is measured including the gutter; rows and cols are the visible text extent.
func Scroll(vp Viewport, cx, cy, textStart, rows, cols int) Viewport {
	rows = max(rows, 1)
	cols = max(cols, 1)

	if cy < vp.RowOffset {
		vp.RowOffset = cy
	}
	if cy >= vp.RowOffset+rows {
		vp.RowOffset = cy - rows + 1
	}

	rel := max(cx-textStart, 0)
	if rel < vp.ColOffset {
		vp.ColOffset = rel
	}
	if rel >= vp.ColOffset+cols {
		vp.ColOffset = rel - cols + 1
	}
	return vp
}
