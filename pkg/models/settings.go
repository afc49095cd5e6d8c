package models

import (
	"fmt"

	"github.com/pluqqy/datepick/pkg/calendar"
	"github.com/pluqqy/datepick/pkg/picker"
)

// Settings represents the application configuration
type Settings struct {
	Picker PickerSettings `yaml:"picker"`
	UI     UISettings     `yaml:"ui"`
	Log    LogSettings    `yaml:"log"`
}

// PickerSettings controls selection behavior
type PickerSettings struct {
	Mode          string   `yaml:"mode"` // "single" or "range"
	DateFormat    string   `yaml:"date_format"`
	DisableFuture bool     `yaml:"disable_future"`
	DisabledDates []string `yaml:"disabled_dates,omitempty"` // "2006-01-02"
	MinYear       int      `yaml:"min_year"`
	MaxYear       int      `yaml:"max_year"`
}

// UISettings controls UI preferences
type UISettings struct {
	Placeholder string `yaml:"placeholder"`
	Icon        string `yaml:"icon"`
	ShowHelp    bool   `yaml:"show_help"`
	Mouse       bool   `yaml:"mouse"`
}

// LogSettings controls the debug log file
type LogSettings struct {
	Path       string `yaml:"path"` // empty disables logging
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	Compress   bool   `yaml:"compress"`
}

// DefaultSettings returns the default configuration
func DefaultSettings() *Settings {
	return &Settings{
		Picker: PickerSettings{
			Mode:          picker.Single.String(),
			DateFormat:    calendar.DefaultPattern,
			DisableFuture: false,
			MinYear:       picker.DefaultMinYear,
			MaxYear:       picker.DefaultMaxYear,
		},
		UI: UISettings{
			Placeholder: "Select date",
			Icon:        "📅",
			ShowHelp:    true,
			Mouse:       true,
		},
		Log: LogSettings{
			Path:       "",
			MaxSizeMB:  5,
			MaxBackups: 3,
			MaxAgeDays: 28,
			Compress:   true,
		},
	}
}

// SelectionMode parses the configured mode
func (p PickerSettings) SelectionMode() (picker.Mode, error) {
	return picker.ParseMode(p.Mode)
}

// Policy builds the disabled-date policy from the configured dates
func (p PickerSettings) Policy() (calendar.DisabledPolicy, error) {
	dates := make([]calendar.Date, 0, len(p.DisabledDates))
	for _, s := range p.DisabledDates {
		d, err := calendar.ParseDate(s)
		if err != nil {
			return calendar.DisabledPolicy{}, fmt.Errorf("disabled_dates: %w", err)
		}
		dates = append(dates, d)
	}
	return calendar.NewDisabledPolicy(p.DisableFuture, dates...), nil
}

// Validate checks the settings for values the picker cannot use
func (s *Settings) Validate() error {
	if _, err := s.Picker.SelectionMode(); err != nil {
		return err
	}
	if _, err := s.Picker.Policy(); err != nil {
		return err
	}
	if s.Picker.MinYear > s.Picker.MaxYear {
		return fmt.Errorf("min_year %d is after max_year %d", s.Picker.MinYear, s.Picker.MaxYear)
	}
	return nil
}

// PickerOptions converts the settings into picker options
func (s *Settings) PickerOptions() ([]picker.Option, error) {
	policy, err := s.Picker.Policy()
	if err != nil {
		return nil, err
	}
	opts := []picker.Option{
		picker.WithPolicy(policy),
		picker.WithPattern(s.Picker.DateFormat),
	}
	if s.Picker.MinYear != 0 || s.Picker.MaxYear != 0 {
		opts = append(opts, picker.WithYearBounds(s.Picker.MinYear, s.Picker.MaxYear))
	}
	return opts, nil
}
