package terminal

import "fmt"

// keyToName maps Key constants to canonical names used in logs
var keyToName = map[Key]string{
	KeyNone:     "none",
	KeyEscape:   "escape",
	KeyUp:       "up",
	KeyDown:     "down",
	KeyLeft:     "left",
	KeyRight:    "right",
	KeyHome:     "home",
	KeyEnd:      "end",
	KeyPageUp:   "page_up",
	KeyPageDown: "page_down",
	KeyInsert:   "insert",
	KeyDelete:   "delete",
}

// String returns the canonical key name
func (k Key) String() string {
	if name, ok := keyToName[k]; ok {
		return name
	}
	if k == KeyByte {
		return "byte"
	}
	return fmt.Sprintf("key(%d)", uint8(k))
}

// String describes the event, naming control bytes as ctrl_x
func (e Event) String() string {
	if e.Key != KeyByte {
		return e.Key.String()
	}
	switch {
	case e.Byte == ByteBackspace:
		return "backspace"
	case e.Byte == ByteEscape:
		return "escape_byte"
	case e.Byte < 0x20:
		return "ctrl_" + string(rune(e.Byte+'a'-1))
	default:
		return fmt.Sprintf("%q", e.Byte)
	}
}
