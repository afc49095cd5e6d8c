package calendar

import "time"

const (
	// GridWeeks is the number of week rows in every grid
	GridWeeks = 6
	// GridDays is the number of cells in every grid
	GridDays = GridWeeks * 7
	// WeekStart is the first column of the grid
	WeekStart = time.Sunday
)

// Weekdays are the column headers of the grid, starting at WeekStart
var Weekdays = [7]string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}

// Cell is one day shown in a month grid
type Cell struct {
	Date           Date
	InCurrentMonth bool
}

// BuildGrid returns the GridDays cells needed to render m as a 7-column week
// grid. The grid starts on the Sunday on or before the first of the month and
// runs chronologically; days from the adjacent months fill the first and last
// rows and are flagged as not in the current month. The fixed size keeps the
// grid height constant from one month to the next.
func BuildGrid(m Month) []Cell {
	first := m.First()
	last := m.Last()
	start := first.AddDays(-daysSinceWeekStart(first))

	cells := make([]Cell, 0, GridDays)
	day := start
	for i := 0; i < GridDays; i++ {
		cells = append(cells, Cell{
			Date:           day,
			InCurrentMonth: day.Between(first, last),
		})
		day = day.AddDays(1)
	}
	return cells
}

// Weeks splits a grid into its rows
func Weeks(cells []Cell) [][]Cell {
	var rows [][]Cell
	for i := 0; i < len(cells); i += 7 {
		end := min(i+7, len(cells))
		rows = append(rows, cells[i:end])
	}
	return rows
}

func daysSinceWeekStart(d Date) int {
	return (int(d.Weekday()) - int(WeekStart) + 7) % 7
}
