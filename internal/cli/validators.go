package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pluqqy/datepick/pkg/calendar"
	"github.com/pluqqy/datepick/pkg/picker"
)

// ValidateOutputFormat validates the output format flag
func ValidateOutputFormat(format string) error {
	validFormats := []string{"text", "json", "yaml"}
	for _, valid := range validFormats {
		if format == valid {
			return nil
		}
	}
	return fmt.Errorf("invalid output format: %s (must be: text, json, or yaml)", format)
}

// ValidateMode validates a selection mode flag
func ValidateMode(mode string) error {
	_, err := picker.ParseMode(mode)
	return err
}

// ParseDateArg parses a YYYY-MM-DD argument. "today" resolves against clock.
func ParseDateArg(s string, clock calendar.Clock) (calendar.Date, error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "today") {
		return clock.Today(), nil
	}
	d, err := calendar.ParseDate(s)
	if err != nil {
		return calendar.Date{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD): %w", s, err)
	}
	return d, nil
}

// ParseDateList parses a comma-separated list of dates. Empty entries are
// skipped.
func ParseDateList(s string) ([]calendar.Date, error) {
	var dates []calendar.Date
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		d, err := calendar.ParseDate(part)
		if err != nil {
			return nil, fmt.Errorf("invalid date %q in list: %w", part, err)
		}
		dates = append(dates, d)
	}
	return dates, nil
}

// ParseValueArg parses a --value flag. Range values are written
// "start..end"; either side may be empty.
func ParseValueArg(s string, mode picker.Mode) (picker.Value, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return picker.Value{Mode: mode}, nil
	}

	if mode == picker.Single {
		d, err := calendar.ParseDate(s)
		if err != nil {
			return picker.Value{}, fmt.Errorf("invalid value %q: %w", s, err)
		}
		return picker.SingleValue(d), nil
	}

	startStr, endStr, _ := strings.Cut(s, "..")
	var start, end calendar.Date
	var err error
	if startStr = strings.TrimSpace(startStr); startStr != "" {
		if start, err = calendar.ParseDate(startStr); err != nil {
			return picker.Value{}, fmt.Errorf("invalid range start %q: %w", startStr, err)
		}
	}
	if endStr = strings.TrimSpace(endStr); endStr != "" {
		if end, err = calendar.ParseDate(endStr); err != nil {
			return picker.Value{}, fmt.Errorf("invalid range end %q: %w", endStr, err)
		}
	}
	return picker.RangeValue(start, end), nil
}

// ParseMonthArg parses a month given as a number (1-12) or a name
// ("March", "mar").
func ParseMonthArg(s string) (time.Month, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		if n < 1 || n > 12 {
			return 0, fmt.Errorf("invalid month: %d (must be 1-12)", n)
		}
		return time.Month(n), nil
	}
	m, err := calendar.ParseMonthName(s)
	if err != nil {
		return 0, fmt.Errorf("invalid month: %s", s)
	}
	return m, nil
}

// ParseYearArg parses a year within the picker's navigable bounds
func ParseYearArg(s string, minYear, maxYear int) (int, error) {
	y, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid year: %s", s)
	}
	if y < minYear || y > maxYear {
		return 0, fmt.Errorf("year %d out of range (%d-%d)", y, minYear, maxYear)
	}
	return y, nil
}
