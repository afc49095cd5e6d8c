package picker

// SessionState tracks whether the picker is open and whether the year list
// is showing. The year list is only reachable from OpenGrid.
type SessionState int

const (
	Closed SessionState = iota
	OpenGrid
	OpenYearPicker
)

// IsOpen reports whether the grid is showing
func (s SessionState) IsOpen() bool {
	return s != Closed
}

func (s SessionState) String() string {
	switch s {
	case Closed:
		return "closed"
	case OpenGrid:
		return "open"
	case OpenYearPicker:
		return "open-year-picker"
	default:
		return "unknown"
	}
}
