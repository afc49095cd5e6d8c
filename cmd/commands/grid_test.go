package commands

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	th "github.com/pluqqy/datepick/pkg/tui/testhelpers"
)

func TestGridCommand_Text(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		contains []string
		excludes []string
	}{
		{
			name: "current month",
			args: []string{"grid"},
			contains: []string{
				"June 2024\n",
				" Su  Mo  Tu  We  Th  Fr  Sa\n",
				"  ·   ·   ·   ·   ·   ·   1\n",
				"  2   3   4   5   6   7   8\n",
				" 30   ·   ·   ·   ·   ·   ·\n",
			},
			excludes: []string{"* disabled"},
		},
		{
			name: "month by name",
			args: []string{"grid", "march", "2024"},
			contains: []string{
				"March 2024\n",
				"  ·   ·   ·   ·   ·   1   2\n",
				" 31   ·   ·   ·   ·   ·   ·\n",
			},
		},
		{
			name: "month by number keeps current year",
			args: []string{"grid", "2"},
			contains: []string{
				"February 2024\n",
				" 25  26  27  28  29   ·   ·\n",
			},
		},
		{
			name: "disabled days are marked",
			args: []string{"grid", "3", "2024", "--disabled", "2024-03-10"},
			contains: []string{
				" 10* 11  12  13  14  15  16\n",
				"* disabled\n",
			},
		},
		{
			name: "future days are marked",
			args: []string{"grid", "--disable-future"},
			contains: []string{
				"  2*  3*  4*  5*  6*  7*  8*\n",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupProject(t)

			out, err := execute(t, tt.args...)
			require.NoError(t, err)
			for _, want := range tt.contains {
				assert.Contains(t, out, want)
			}
			for _, unwanted := range tt.excludes {
				assert.NotContains(t, out, unwanted)
			}
		})
	}
}

func TestGridCommand_Days(t *testing.T) {
	setupProject(t)

	out, err := execute(t, "grid", "12", "2024", "--disabled", "2024-12-25", "--days")
	require.NoError(t, err)

	lines := th.ViewLines(out)
	require.Len(t, lines, 2+31+1, "header, rule, one row per day and the trailing newline")
	assert.Equal(t, "DATE        WEEKDAY  SELECTABLE", lines[0])
	assert.Equal(t, "2024-12-01  Sun      yes", lines[2])
	assert.Equal(t, "2024-12-25  Wed      no", lines[26])
}

func TestGridCommand_JSON(t *testing.T) {
	setupProject(t)

	out, err := execute(t, "grid", "3", "2024", "-o", "json")
	require.NoError(t, err)

	var result GridResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, "March 2024", result.Title)
	assert.Equal(t, 2024, result.Year)
	assert.Equal(t, 3, result.Month)
	require.Len(t, result.Weeks, 6)

	first := result.Weeks[0][0]
	assert.Equal(t, th.Day("2024-02-25"), first.Date)
	assert.False(t, first.InMonth)
	assert.False(t, first.Selectable, "boundary days are never selectable")

	friday := result.Weeks[0][5]
	assert.Equal(t, th.Day("2024-03-01"), friday.Date)
	assert.True(t, friday.Selectable)
}

func TestGridCommand_InvalidArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{name: "month out of range", args: []string{"grid", "13"}, wantErr: "invalid month: 13"},
		{name: "unknown month", args: []string{"grid", "smarch"}, wantErr: "invalid month: smarch"},
		{name: "year out of bounds", args: []string{"grid", "1", "1800"}, wantErr: "year 1800 out of range"},
		{name: "too many args", args: []string{"grid", "1", "2024", "x"}, wantErr: "accepts at most 2 arg(s)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupProject(t)

			_, err := execute(t, tt.args...)
			th.AssertErrorContains(t, err, tt.wantErr)
		})
	}
}
