package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/pluqqy/datepick/pkg/calendar"
	"github.com/pluqqy/datepick/pkg/picker"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	require.NoError(t, s.Validate())

	mode, err := s.Picker.SelectionMode()
	require.NoError(t, err)
	assert.Equal(t, picker.Single, mode)
	assert.Equal(t, calendar.DefaultPattern, s.Picker.DateFormat)
	assert.Equal(t, "Select date", s.UI.Placeholder)
	assert.Empty(t, s.Log.Path)
}

func TestSettings_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(s *Settings)
		wantErr string
	}{
		{
			name:    "unknown mode",
			mutate:  func(s *Settings) { s.Picker.Mode = "week" },
			wantErr: "invalid mode",
		},
		{
			name:    "bad disabled date",
			mutate:  func(s *Settings) { s.Picker.DisabledDates = []string{"2024-13-01"} },
			wantErr: "disabled_dates",
		},
		{
			name:    "inverted year bounds",
			mutate:  func(s *Settings) { s.Picker.MinYear, s.Picker.MaxYear = 2000, 1999 },
			wantErr: "min_year",
		},
		{
			name:   "range mode with disabled dates",
			mutate: func(s *Settings) { s.Picker.Mode = "range"; s.Picker.DisabledDates = []string{"2024-01-01"} },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultSettings()
			tt.mutate(s)
			err := s.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestPickerSettings_Policy(t *testing.T) {
	p := PickerSettings{DisableFuture: true, DisabledDates: []string{"2024-01-02", "2024-01-01"}}
	policy, err := p.Policy()
	require.NoError(t, err)

	assert.True(t, policy.DisableFuture)
	assert.Equal(t, []calendar.Date{
		calendar.MustParseDate("2024-01-01"),
		calendar.MustParseDate("2024-01-02"),
	}, policy.Dates())
}

func TestSettings_YAML(t *testing.T) {
	in := `
picker:
  mode: range
  date_format: dd/mm/yyyy
  disable_future: true
  disabled_dates: ["2024-12-25"]
ui:
  placeholder: Pick a day
`
	s := DefaultSettings()
	require.NoError(t, yaml.Unmarshal([]byte(in), s))

	assert.Equal(t, "range", s.Picker.Mode)
	assert.True(t, s.Picker.DisableFuture)
	assert.Equal(t, "Pick a day", s.UI.Placeholder)
	assert.Equal(t, picker.DefaultMaxYear, s.Picker.MaxYear, "unset keys keep their defaults")

	opts, err := s.PickerOptions()
	require.NoError(t, err)
	p := picker.New(picker.Range, append(opts, picker.WithClock(calendar.FixedClock(calendar.MustParseDate("2024-12-30"))))...)
	p.Open()
	assert.False(t, p.PickDay(calendar.MustParseDate("2024-12-25")))
	assert.True(t, p.PickDay(calendar.MustParseDate("2024-12-24")))
	assert.Equal(t, "24/12/2024 - Select end date", p.DisplayString())
}
