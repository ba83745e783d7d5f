package buffer

import (
	"bytes"
	"strings"
	"testing"
)

func TestExpandTabs(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"no tabs", "abc", "abc"},
		{"leading tab", "\tx", strings.Repeat(" ", 8) + "x"},
		{"tab after one char", "a\tb", "a" + strings.Repeat(" ", 7) + "b"},
		{"tab on stop", "12345678\tx", "12345678" + strings.Repeat(" ", 8) + "x"},
		{"two tabs", "\t\t", strings.Repeat(" ", 16)},
		{"tab after seven", "1234567\t|", "1234567 |"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLine([]byte(tt.in))
			if got := string(l.Render()); got != tt.want {
				t.Errorf("render of %q = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestLineRenderInvariantUnderEdits(t *testing.T) {
	l := NewLine([]byte("a\tb"))
	ops := []func(){
		func() { l.insertByte(0, '\t') },
		func() { l.insertByte(99, 'z') },
		func() { l.deleteByte(1) },
		func() { l.insertByte(-5, 'q') },
		func() { l.deleteByte(l.Size()) },
		func() { l.insertByte(2, '\t') },
		func() { l.deleteByte(0) },
	}

	for i, op := range ops {
		op()
		if l.RenderSize() < l.Size() {
			t.Fatalf("step %d: render size %d < size %d", i, l.RenderSize(), l.Size())
		}
		first := expandTabs(nil, l.Text())
		second := expandTabs(nil, l.Text())
		if !bytes.Equal(first, second) || !bytes.Equal(first, l.Render()) {
			t.Fatalf("step %d: render not stable: %q %q %q", i, first, second, l.Render())
		}
	}
}

func TestTabWidthFollowsColumn(t *testing.T) {
	for prefix := 0; prefix < 20; prefix++ {
		text := strings.Repeat("x", prefix) + "\t"
		l := NewLine([]byte(text))
		wantSpaces := TabStop - prefix%TabStop
		if got := l.RenderSize() - prefix; got != wantSpaces {
			t.Errorf("prefix %d: tab expanded to %d spaces, want %d", prefix, got, wantSpaces)
		}
	}
}

func TestInsertByteClampsColumn(t *testing.T) {
	l := NewLine([]byte("bc"))
	l.insertByte(-3, 'a')
	l.insertByte(100, 'd')
	if got := string(l.Text()); got != "abcd" {
		t.Errorf("got %q, want %q", got, "abcd")
	}
}

func TestDeleteByteOutOfRange(t *testing.T) {
	l := NewLine([]byte("ab"))
	if l.deleteByte(2) || l.deleteByte(-1) {
		t.Error("expected out of range delete to report false")
	}
	if got := string(l.Text()); got != "ab" {
		t.Errorf("text changed to %q", got)
	}
}

func TestRenderLogicalMapping(t *testing.T) {
	l := NewLine([]byte("a\tbc"))
	// render: "a" + 7 spaces + "bc", tab spans columns 1..7

	toLogical := []struct {
		rx   int
		want int
	}{
		{0, 0}, {1, 1}, {4, 1}, {7, 1}, {8, 2}, {9, 3}, {10, 4}, {50, 4},
	}
	for _, tt := range toLogical {
		if got := l.RenderToLogical(tt.rx); got != tt.want {
			t.Errorf("RenderToLogical(%d) = %d, want %d", tt.rx, got, tt.want)
		}
	}

	toRender := []struct {
		cx   int
		want int
	}{
		{-1, 0}, {0, 0}, {1, 1}, {2, 8}, {3, 9}, {4, 10}, {9, 10},
	}
	for _, tt := range toRender {
		if got := l.LogicalToRender(tt.cx); got != tt.want {
			t.Errorf("LogicalToRender(%d) = %d, want %d", tt.cx, got, tt.want)
		}
	}
}

func TestNewLineCopiesInput(t *testing.T) {
	src := []byte("abc")
	l := NewLine(src)
	src[0] = 'X'
	if got := string(l.Text()); got != "abc" {
		t.Errorf("line aliases its input: %q", got)
	}
}
