package testhelpers

import (
	"github.com/pluqqy/datepick/pkg/calendar"
	"github.com/pluqqy/datepick/pkg/models"
	"github.com/pluqqy/datepick/pkg/picker"
)

// Common test data
var (
	// FixedToday is a Saturday; June 2024 starts on it, so the grid opens
	// with six leading May days.
	FixedToday = calendar.MustParseDate("2024-06-01")

	// March 2024 starts on a Friday and has 31 days
	March2024 = calendar.Month{Year: 2024, Month: 3}

	// Holidays used by disabled-date fixtures
	Holidays = []calendar.Date{
		calendar.MustParseDate("2024-12-25"),
		calendar.MustParseDate("2024-12-26"),
	}
)

// Day parses a YYYY-MM-DD literal, panicking on error
func Day(s string) calendar.Date {
	return calendar.MustParseDate(s)
}

// NewTestPicker returns a picker whose clock is fixed at today
func NewTestPicker(mode picker.Mode, today calendar.Date, opts ...picker.Option) *picker.Picker {
	base := []picker.Option{picker.WithClock(calendar.FixedClock(today))}
	return picker.New(mode, append(base, opts...)...)
}

// TestUISettings returns UI settings without help or icon so rendered views
// stay short and predictable
func TestUISettings() models.UISettings {
	ui := models.DefaultSettings().UI
	ui.Icon = ""
	ui.ShowHelp = false
	ui.Mouse = true
	return ui
}
