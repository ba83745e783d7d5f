package editor

// Mode selects the active key table
type Mode uint8

const (
	ModeNavigation Mode = iota
	ModeInsertion
)

// String returns the mode name used in logs
func (m Mode) String() string {
	switch m {
	case ModeNavigation:
		return "navigation"
	case ModeInsertion:
		return "insertion"
	default:
		return "unknown"
	}
}

// Label returns the command bar label including its trailing padding
func (m Mode) Label() string {
	if m == ModeInsertion {
		return "-- INSERT --  "
	}
	return "-- NORMAL --  "
}
