// @focus: #sys { io } #input { keys }
package terminal

// Key represents a decoded input key
type Key uint8

const (
	KeyNone Key = iota // No input arrived before the read timeout
	KeyByte            // Literal byte, printable or control (check Event.Byte)

	KeyEscape

	// Navigation
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown

	// Editing
	KeyInsert
	KeyDelete
)

// Literal byte values with editor meaning
const (
	ByteEscape    byte = 0x1b
	ByteEnter     byte = '\r'
	ByteNewline   byte = '\n'
	ByteTab       byte = '\t'
	ByteBackspace byte = 0x7f
)

// Ctrl returns the byte produced by Ctrl plus the given letter
func Ctrl(b byte) byte {
	return b & 0x1f
}

// Event is a tagged key value: Key, plus Byte when Key is KeyByte
type Event struct {
	Key  Key
	Byte byte
}

// IsByte reports whether the event is the literal byte b
func (e Event) IsByte(b byte) bool {
	return e.Key == KeyByte && e.Byte == b
}

// escapeSequence maps the final byte of a sequence to a key
type escapeSequence struct {
	final byte
	key   Key
}

// CSI sequences with a letter final: ESC [ X
var csiSequences = []escapeSequence{
	{'A', KeyUp},
	{'B', KeyDown},
	{'C', KeyRight},
	{'D', KeyLeft},
	{'H', KeyHome},
	{'F', KeyEnd},
}

// CSI sequences with one digit parameter and '~' final: ESC [ N ~
var tildeSequences = []escapeSequence{
	{'1', KeyHome},
	{'2', KeyInsert},
	{'3', KeyDelete},
	{'4', KeyEnd},
	{'5', KeyPageUp},
	{'6', KeyPageDown},
	{'7', KeyHome},
	{'8', KeyEnd},
}

// SS3 sequences: ESC O X
var ss3Sequences = []escapeSequence{
	{'A', KeyUp},
	{'B', KeyDown},
	{'C', KeyRight},
	{'D', KeyLeft},
	{'H', KeyHome},
	{'F', KeyEnd},
}

var (
	csiMap   = buildSequenceMap(csiSequences)
	tildeMap = buildSequenceMap(tildeSequences)
	ss3Map   = buildSequenceMap(ss3Sequences)
)

func buildSequenceMap(seqs []escapeSequence) map[byte]Key {
	m := make(map[byte]Key, len(seqs))
	for _, s := range seqs {
		m[s.final] = s.key
	}
	return m
}

// lookup resolves a final byte, degrading to Escape when unknown
func lookup(m map[byte]Key, b byte) Event {
	if k, ok := m[b]; ok {
		return Event{Key: k}
	}
	return Event{Key: KeyEscape}
}
