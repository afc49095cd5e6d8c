package calendar

import (
	"fmt"
	"time"

	"cloudeng.io/datetime"
)

// Month identifies a displayed month of a specific year
type Month struct {
	Year  int
	Month time.Month
}

// MonthOf returns the month containing d
func MonthOf(d Date) Month {
	return Month{Year: d.Year, Month: d.Month}
}

// DaysInMonth returns the number of days in the given month, leap years included
func DaysInMonth(year int, month time.Month) int {
	return int(datetime.DaysInMonth(year, datetime.Month(month)))
}

// ParseMonthName parses a month given as a number (1-12) or as a name or
// prefix of a name ("mar", "March").
func ParseMonthName(s string) (time.Month, error) {
	if s == "" {
		return 0, fmt.Errorf("invalid month: empty")
	}
	var m datetime.Month
	if err := m.Parse(s); err != nil {
		return 0, fmt.Errorf("invalid month %q: %w", s, err)
	}
	return time.Month(m), nil
}

// First returns the first day of m
func (m Month) First() Date {
	return Date{Year: m.Year, Month: m.Month, Day: 1}
}

// Last returns the last day of m
func (m Month) Last() Date {
	return Date{Year: m.Year, Month: m.Month, Day: DaysInMonth(m.Year, m.Month)}
}

// Contains reports whether d falls within m
func (m Month) Contains(d Date) bool {
	return d.Year == m.Year && d.Month == m.Month
}

// Next returns the following month
func (m Month) Next() Month {
	return m.add(1)
}

// Prev returns the preceding month
func (m Month) Prev() Month {
	return m.add(-1)
}

func (m Month) add(n int) Month {
	// Anchor on day 1 so that month overflow (Jan 31 + 1 month) never applies.
	return MonthOf(DateOf(m.First().Time().AddDate(0, n, 0)))
}

// WithYear returns m moved to year, keeping the month component
func (m Month) WithYear(year int) Month {
	return Month{Year: year, Month: m.Month}
}

// Before reports whether m is an earlier month than other
func (m Month) Before(other Month) bool {
	return m.First().Before(other.First())
}

// String returns the month title, e.g. "March 2024"
func (m Month) String() string {
	return fmt.Sprintf("%s %d", m.Month, m.Year)
}
