package editor

import "github.com/lixenwraith/vipad/terminal"

// action handles one key event; ErrQuit ends the main loop
type action func(e *Editor, ev terminal.Event) error

// keyTable binds special keys and literal bytes for one mode.
// fallback handles literal bytes with no explicit binding; nil ignores them.
type keyTable struct {
	keys     map[terminal.Key]action
	bytes    map[byte]action
	fallback action
}

func (t *keyTable) lookup(ev terminal.Event) action {
	if ev.Key == terminal.KeyByte {
		if a, ok := t.bytes[ev.Byte]; ok {
			return a
		}
		return t.fallback
	}
	return t.keys[ev.Key]
}

// Keys available in every mode
var globalBytes = map[byte]action{
	terminal.Ctrl('s'): (*Editor).save,
	terminal.Ctrl('q'): (*Editor).quit,
}

func navigationTable() *keyTable {
	t := &keyTable{
		keys: map[terminal.Key]action{
			terminal.KeyUp:       move(motionUp),
			terminal.KeyDown:     move(motionDown),
			terminal.KeyLeft:     move(motionLeft),
			terminal.KeyRight:    move(motionRight),
			terminal.KeyHome:     (*Editor).lineStart,
			terminal.KeyEnd:      (*Editor).lineEnd,
			terminal.KeyPageUp:   page(motionUp),
			terminal.KeyPageDown: page(motionDown),
			terminal.KeyInsert:   (*Editor).insertHere,
			terminal.KeyDelete:   (*Editor).deleteUnderCursor,
			terminal.KeyEscape:   noop,
		},
		bytes: map[byte]action{
			'h':                    move(motionLeft),
			'j':                    move(motionDown),
			'k':                    move(motionUp),
			'l':                    move(motionRight),
			terminal.ByteEnter:     move(motionDown),
			terminal.ByteBackspace: move(motionBack),
			terminal.Ctrl('h'):     move(motionBack),
			'0':                    (*Editor).lineStart,
			'$':                    (*Editor).lineEnd,
			'i':                    (*Editor).insertHere,
			'a':                    (*Editor).appendAfter,
			'A':                    (*Editor).appendLineEnd,
			'o':                    (*Editor).openBelow,
			'O':                    (*Editor).openAbove,
			'J':                    (*Editor).joinNext,
			terminal.Ctrl('l'):     noop,
		},
	}
	for b, a := range globalBytes {
		t.bytes[b] = a
	}
	return t
}

func insertionTable() *keyTable {
	t := &keyTable{
		keys: map[terminal.Key]action{
			terminal.KeyUp:     move(motionUp),
			terminal.KeyDown:   move(motionDown),
			terminal.KeyLeft:   move(motionLeft),
			terminal.KeyRight:  move(motionRight),
			terminal.KeyEscape: (*Editor).leaveInsertion,
			terminal.KeyDelete: (*Editor).deleteUnderCursor,
		},
		bytes: map[byte]action{
			terminal.ByteEnter:     (*Editor).splitLine,
			terminal.ByteBackspace: (*Editor).backspace,
			terminal.Ctrl('h'):     (*Editor).backspace,
			terminal.ByteTab:       (*Editor).insertByte,
		},
		fallback: (*Editor).insertPrintable,
	}
	for b, a := range globalBytes {
		t.bytes[b] = a
	}
	return t
}

func noop(*Editor, terminal.Event) error { return nil }
