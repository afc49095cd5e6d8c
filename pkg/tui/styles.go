package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/pluqqy/datepick/pkg/picker"
)

// Color constants
const (
	ColorActive   = "170" // Purple/magenta for active elements
	ColorInactive = "240" // Gray for inactive elements
	ColorSelected = "236" // Dark gray for background selection
	ColorNormal   = "245" // Light gray for normal text
	ColorDim      = "241" // Dimmer gray
	ColorVeryDim  = "238" // Boundary days
	ColorWarning  = "214" // Orange/yellow for today
	ColorDanger   = "196" // Red for errors
	ColorWhite    = "255" // White
	ColorDark     = "235" // Dark for contrast
	ColorPrimary  = "33"  // Blue for primary actions
	ColorRange    = "60"  // Muted purple for days inside a range
)

// Layout constants
const (
	CellWidth   = 4
	GridWidth   = CellWidth * 7
	PopupMargin = 2 // border + padding on each side
)

// Common styles
var (
	// Popup border around the grid
	PopupStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(ColorActive)).
			Padding(0, 1)

	DisabledInputStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorVeryDim))

	InputStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorWhite))

	FocusedInputStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorActive)).
				Bold(true)

	// Placeholder style
	PlaceholderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorDim)).
				Italic(true)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorWhite))

	ArrowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorActive)).
			Bold(true)

	WeekdayStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorDim))

	// Day cell styles, in increasing precedence
	DayStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorNormal))

	OutsideDayStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorVeryDim))

	DisabledDayStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorVeryDim)).
				Strikethrough(true)

	TodayStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorWarning)).
			Bold(true)

	InRangeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorWhite)).
			Background(lipgloss.Color(ColorRange))

	SelectedDayStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorWhite)).
				Background(lipgloss.Color(ColorActive)).
				Bold(true)

	CursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorDark)).
			Background(lipgloss.Color(ColorWhite)).
			Bold(true)

	// Footer buttons
	ButtonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorNormal)).
			Padding(0, 1)

	PrimaryButtonStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorWhite)).
				Background(lipgloss.Color(ColorPrimary)).
				Padding(0, 1).
				Bold(true)

	HelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorDim))

	// Error style
	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorDanger))
)

// CellStyle picks the style for a grid cell. The cursor wins over every
// other state.
func CellStyle(cell picker.CellState, mode picker.Mode, cursor bool) lipgloss.Style {
	switch {
	case cursor:
		return CursorStyle
	case !cell.InCurrentMonth:
		return OutsideDayStyle
	case cell.Disabled:
		return DisabledDayStyle
	case cell.RangeStart || cell.RangeEnd:
		return SelectedDayStyle
	case cell.Selected && mode == picker.Range:
		return InRangeStyle
	case cell.Selected:
		return SelectedDayStyle
	case cell.Today:
		return TodayStyle
	default:
		return DayStyle
	}
}

// YearStyle picks the style for an entry in the year list
func YearStyle(visible, cursor bool) lipgloss.Style {
	switch {
	case cursor:
		return CursorStyle
	case visible:
		return SelectedDayStyle
	default:
		return DayStyle
	}
}
