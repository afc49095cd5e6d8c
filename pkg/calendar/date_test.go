package calendar

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate(" 2024-03-15 ")
	require.NoError(t, err)
	assert.Equal(t, Date{Year: 2024, Month: time.March, Day: 15}, d)

	_, err = ParseDate("2024-02-30")
	assert.True(t, errors.Is(err, ErrInvalidDate))

	_, err = ParseDate("15/03/2024")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestDate_Compare(t *testing.T) {
	a := MustParseDate("2024-03-10")
	b := MustParseDate("2024-03-20")

	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.False(t, a.After(a))
	assert.Equal(t, 0, a.Compare(a))
	assert.True(t, MustParseDate("2023-12-31").Before(MustParseDate("2024-01-01")))
	assert.True(t, MustParseDate("2024-03-15").Between(a, b))
	assert.True(t, a.Between(a, b))
	assert.False(t, MustParseDate("2024-03-21").Between(a, b))
}

func TestDate_AddDaysAcrossDST(t *testing.T) {
	// Days are computed in UTC so local DST transitions never skip a day.
	d := MustParseDate("2024-03-09")
	assert.Equal(t, "2024-03-10", d.AddDays(1).String())
	assert.Equal(t, "2024-03-11", d.AddDays(2).String())
	assert.Equal(t, "2024-02-29", MustParseDate("2024-03-01").AddDays(-1).String())
}

func TestDate_Zero(t *testing.T) {
	var d Date
	assert.True(t, d.IsZero())
	assert.Equal(t, "", d.String())
	assert.False(t, NewDate(2024, time.January, 1).IsZero())
}

func TestDate_NewDateNormalizes(t *testing.T) {
	assert.Equal(t, "2024-02-01", NewDate(2024, time.January, 32).String())
}

func TestDate_TextRoundTrip(t *testing.T) {
	var d Date
	require.NoError(t, d.UnmarshalText([]byte("2024-07-04")))
	out, err := d.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "2024-07-04", string(out))

	require.NoError(t, d.UnmarshalText(nil))
	assert.True(t, d.IsZero())
}

func TestMonth_Navigation(t *testing.T) {
	jan := Month{Year: 2024, Month: time.January}
	assert.Equal(t, Month{Year: 2023, Month: time.December}, jan.Prev())
	assert.Equal(t, Month{Year: 2024, Month: time.February}, jan.Next())
	assert.Equal(t, Month{Year: 2025, Month: time.January}, Month{Year: 2024, Month: time.December}.Next())
	assert.Equal(t, Month{Year: 1999, Month: time.January}, jan.WithYear(1999))
	assert.Equal(t, "January 2024", jan.String())
	assert.Equal(t, 29, Month{Year: 2024, Month: time.February}.Last().Day)
	assert.Equal(t, 28, Month{Year: 1900, Month: time.February}.Last().Day)
}

func TestParseMonthName(t *testing.T) {
	tests := []struct {
		in   string
		want time.Month
	}{
		{"3", time.March},
		{"12", time.December},
		{"mar", time.March},
		{"September", time.September},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			m, err := ParseMonthName(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, m)
		})
	}

	_, err := ParseMonthName("13")
	assert.Error(t, err)
}
