package picker

import "github.com/pluqqy/datepick/pkg/calendar"

// Default bounds of the year list
const (
	DefaultMinYear = 1900
	DefaultMaxYear = 2090
)

// Navigator owns the visible month. It never touches the selection.
type Navigator struct {
	month   calendar.Month
	minYear int
	maxYear int
}

// NewNavigator returns a navigator showing month with the default year bounds
func NewNavigator(month calendar.Month) *Navigator {
	return &Navigator{month: month, minYear: DefaultMinYear, maxYear: DefaultMaxYear}
}

// Month returns the visible month
func (n *Navigator) Month() calendar.Month {
	return n.month
}

// NextMonth advances the visible month by one
func (n *Navigator) NextMonth() {
	n.month = n.month.Next()
}

// PrevMonth moves the visible month back by one
func (n *Navigator) PrevMonth() {
	n.month = n.month.Prev()
}

// Step moves forward for a positive direction and back for a negative one
func (n *Navigator) Step(direction int) bool {
	switch {
	case direction > 0:
		n.NextMonth()
	case direction < 0:
		n.PrevMonth()
	default:
		return false
	}
	return true
}

// SelectYear jumps to year keeping the month component. Years outside the
// bounds are ignored and false is returned.
func (n *Navigator) SelectYear(year int) bool {
	if !n.InBounds(year) {
		return false
	}
	n.month = n.month.WithYear(year)
	return true
}

// InBounds reports whether year may be offered by the year list
func (n *Navigator) InBounds(year int) bool {
	return year >= n.minYear && year <= n.maxYear
}

// Bounds returns the inclusive year interval
func (n *Navigator) Bounds() (minYear, maxYear int) {
	return n.minYear, n.maxYear
}

// Years lists every offered year in ascending order
func (n *Navigator) Years() []int {
	years := make([]int, 0, n.maxYear-n.minYear+1)
	for y := n.minYear; y <= n.maxYear; y++ {
		years = append(years, y)
	}
	return years
}

func (n *Navigator) setBounds(minYear, maxYear int) {
	if minYear > maxYear {
		minYear, maxYear = maxYear, minYear
	}
	n.minYear, n.maxYear = minYear, maxYear
}
