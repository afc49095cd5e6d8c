package picker

import "github.com/pluqqy/datepick/pkg/calendar"

// EndPrompt is appended to a range that has a start but no end yet
const EndPrompt = "Select end date"

// CellState is a grid cell tagged for rendering
type CellState struct {
	calendar.Cell
	Selectable bool
	Disabled   bool
	Selected   bool
	RangeStart bool
	RangeEnd   bool
	Today      bool
}

// Snapshot is a read-only view of the picker handed to the presentation layer
type Snapshot struct {
	Mode    Mode
	Visible calendar.Month
	Title   string
	Cells   []CellState
	Pending Value
	Display string
	Session SessionState
	MinYear int
	MaxYear int
}

// Snapshot returns the current presentation state
func (p *Picker) Snapshot() Snapshot {
	minYear, maxYear := p.nav.Bounds()
	month := p.nav.Month()
	return Snapshot{
		Mode:    p.mode,
		Visible: month,
		Title:   p.formatter.Format(month.First(), calendar.TitlePattern),
		Cells:   p.cells(),
		Pending: p.pending,
		Display: p.DisplayString(),
		Session: p.session,
		MinYear: minYear,
		MaxYear: maxYear,
	}
}

func (p *Picker) cells() []CellState {
	today := p.clock.Today()
	grid := calendar.BuildGrid(p.nav.Month())
	out := make([]CellState, len(grid))
	for i, c := range grid {
		cs := CellState{
			Cell:       c,
			Selectable: calendar.IsSelectable(c, p.policy, today),
			Disabled:   p.policy.IsDisabled(c.Date, today),
			Selected:   p.pending.Contains(c.Date),
			Today:      c.Date == today,
		}
		if p.mode == Range && !p.pending.Start.IsZero() {
			cs.RangeStart = c.Date == p.pending.Start
			cs.RangeEnd = c.Date == p.pending.End
		}
		out[i] = cs
	}
	return out
}

// DisplayString renders the pending selection: one formatted date, a
// "start - end" range, "start - Select end date" for a range without an
// end, or "" when nothing is pending.
func (p *Picker) DisplayString() string {
	return displayString(p.pending, p.formatter, p.pattern)
}

func displayString(v Value, f calendar.Formatter, pattern string) string {
	switch {
	case v.Start.IsZero():
		return ""
	case v.Mode == Single:
		return f.Format(v.Start, pattern)
	case v.End.IsZero():
		return f.Format(v.Start, pattern) + " - " + EndPrompt
	default:
		return f.Format(v.Start, pattern) + " - " + f.Format(v.End, pattern)
	}
}

// FormatValue renders v the same way the display string renders a pending
// selection.
func FormatValue(v Value, f calendar.Formatter, pattern string) string {
	if f == nil {
		f = calendar.PatternFormatter{}
	}
	return displayString(v, f, calendar.NormalizePattern(pattern))
}

// FormatCommitted renders a committed value for output outside the picker. A
// range committed without an end renders as "start -"; the end prompt only
// belongs to a selection in progress.
func FormatCommitted(v Value, f calendar.Formatter, pattern string) string {
	if f == nil {
		f = calendar.PatternFormatter{}
	}
	pattern = calendar.NormalizePattern(pattern)
	if v.Mode == Range && !v.Start.IsZero() && v.End.IsZero() {
		return f.Format(v.Start, pattern) + " -"
	}
	return displayString(v, f, pattern)
}
