// Package picker implements the date selection state machine: a pending
// selection edited while the picker is open, the committed value handed to
// the host, month navigation and the session open state.
package picker

import (
	"fmt"
	"strings"

	"github.com/pluqqy/datepick/pkg/calendar"
)

// Mode selects between picking one date and picking a range
type Mode int

const (
	Single Mode = iota
	Range
)

func (m Mode) String() string {
	switch m {
	case Single:
		return "single"
	case Range:
		return "range"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode parses "single" or "range"
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "single", "":
		return Single, nil
	case "range":
		return Range, nil
	}
	return Single, fmt.Errorf("invalid mode: %s (must be: single or range)", s)
}

// MarshalText encodes the mode by name
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText decodes a mode name
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Value is a committed value or a pending selection. Single mode only uses
// Start. In Range mode End is either zero or on/after Start, and End is never
// set without Start.
type Value struct {
	Mode  Mode          `json:"mode" yaml:"mode"`
	Start calendar.Date `json:"start,omitzero" yaml:"start,omitempty"`
	End   calendar.Date `json:"end,omitzero" yaml:"end,omitempty"`
}

// SingleValue returns a Single mode value holding d
func SingleValue(d calendar.Date) Value {
	return Value{Mode: Single, Start: d}
}

// RangeValue returns a normalized Range mode value
func RangeValue(start, end calendar.Date) Value {
	return Value{Mode: Range, Start: start, End: end}.Normalize()
}

// Normalize returns v with the ordering invariant restored: an inverted range
// is swapped, an End without a Start becomes the Start, and Single mode drops
// End.
func (v Value) Normalize() Value {
	if v.Mode == Single {
		if v.Start.IsZero() {
			v.Start = v.End
		}
		v.End = calendar.Date{}
		return v
	}
	if v.Start.IsZero() {
		v.Start, v.End = v.End, calendar.Date{}
	}
	if !v.End.IsZero() && v.End.Before(v.Start) {
		v.Start, v.End = v.End, v.Start
	}
	return v
}

// Date returns the selected date of a Single mode value
func (v Value) Date() calendar.Date {
	return v.Start
}

// IsEmpty reports whether nothing is selected
func (v Value) IsEmpty() bool {
	return v.Start.IsZero() && v.End.IsZero()
}

// IsComplete reports whether a range has both ends, or a single value has
// its date.
func (v Value) IsComplete() bool {
	if v.Mode == Single {
		return !v.Start.IsZero()
	}
	return !v.Start.IsZero() && !v.End.IsZero()
}

// Contains reports whether d is part of the selection. A range with only a
// start contains just that start.
func (v Value) Contains(d calendar.Date) bool {
	switch {
	case v.Start.IsZero():
		return false
	case v.Mode == Range && !v.End.IsZero():
		return d.Between(v.Start, v.End)
	default:
		return d == v.Start
	}
}

func (v Value) String() string {
	switch {
	case v.IsEmpty():
		return ""
	case v.Mode == Single:
		return v.Start.String()
	case v.End.IsZero():
		return v.Start.String() + " -"
	default:
		return v.Start.String() + " - " + v.End.String()
	}
}
