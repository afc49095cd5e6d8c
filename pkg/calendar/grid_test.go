package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildGrid_Completeness(t *testing.T) {
	for year := 1900; year <= 2090; year++ {
		for month := time.January; month <= time.December; month++ {
			m := Month{Year: year, Month: month}
			cells := BuildGrid(m)

			require.Len(t, cells, GridDays, "grid for %s", m)
			assert.Equal(t, WeekStart, cells[0].Date.Weekday(), "grid for %s must start on a Sunday", m)

			inMonth := 0
			for i, c := range cells {
				if i > 0 {
					require.Equal(t, cells[i-1].Date.AddDays(1), c.Date, "gap in grid for %s at %d", m, i)
				}
				assert.Equal(t, m.Contains(c.Date), c.InCurrentMonth, "flag for %s in %s", c.Date, m)
				if c.InCurrentMonth {
					inMonth++
				}
			}
			assert.Equal(t, DaysInMonth(year, month), inMonth, "in-month days for %s", m)
		}
	}
}

func TestBuildGrid_Boundaries(t *testing.T) {
	tests := []struct {
		name      string
		month     Month
		wantFirst string
		wantLast  string
	}{
		{
			name:      "month starting on a Friday",
			month:     Month{Year: 2024, Month: time.March},
			wantFirst: "2024-02-25",
			wantLast:  "2024-04-06",
		},
		{
			name:      "month starting on a Sunday",
			month:     Month{Year: 2024, Month: time.September},
			wantFirst: "2024-09-01",
			wantLast:  "2024-10-12",
		},
		{
			name:      "february of a non leap year starting on Sunday",
			month:     Month{Year: 2015, Month: time.February},
			wantFirst: "2015-02-01",
			wantLast:  "2015-03-14",
		},
		{
			name:      "leap february",
			month:     Month{Year: 2024, Month: time.February},
			wantFirst: "2024-01-28",
			wantLast:  "2024-03-09",
		},
		{
			name:      "year boundary",
			month:     Month{Year: 2023, Month: time.December},
			wantFirst: "2023-11-26",
			wantLast:  "2024-01-06",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cells := BuildGrid(tt.month)
			assert.Equal(t, tt.wantFirst, cells[0].Date.String())
			assert.Equal(t, tt.wantLast, cells[len(cells)-1].Date.String())
		})
	}
}

func TestBuildGrid_Deterministic(t *testing.T) {
	m := Month{Year: 2024, Month: time.June}
	assert.Equal(t, BuildGrid(m), BuildGrid(m))
}

func TestWeeks(t *testing.T) {
	rows := Weeks(BuildGrid(Month{Year: 2024, Month: time.March}))
	require.Len(t, rows, GridWeeks)
	for _, row := range rows {
		assert.Len(t, row, 7)
		assert.Equal(t, time.Sunday, row[0].Date.Weekday())
	}
}
