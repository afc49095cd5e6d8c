package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/pluqqy/datepick/pkg/calendar"
	"github.com/pluqqy/datepick/pkg/picker"
)

const (
	titleDecoration = " ▼"
	yearCellWidth   = GridWidth / yearColumns
	popupTop        = 1 // popup starts on the line after the input
	popupWidth      = GridWidth + 2*PopupMargin
	popupHeight     = yearRows + 2 + 2 // body + title + footer + borders
	footerRow       = yearRows + 1
	okWidth         = 4 // " OK "
	cancelWidth     = 8 // " Cancel "
)

// View renders the input line and, while open, the popup
func (d *DatePicker) View() string {
	snap := d.picker.Snapshot()

	var b strings.Builder
	b.WriteString(d.renderInput(snap))

	if snap.Session.IsOpen() {
		b.WriteString("\n")
		b.WriteString(d.renderPopup(snap))
	}

	if d.ShowHelp && !d.Disabled {
		b.WriteString("\n")
		b.WriteString(d.renderHelp(snap))
	}

	return b.String()
}

func (d *DatePicker) renderInput(snap picker.Snapshot) string {
	var text string
	style := InputStyle
	switch {
	case snap.Display == "":
		text = PlaceholderStyle.Render(d.Placeholder)
	case snap.Session.IsOpen():
		text = FocusedInputStyle.Render(snap.Display)
	default:
		text = InputStyle.Render(snap.Display)
	}
	if d.Disabled {
		style = DisabledInputStyle
		text = DisabledInputStyle.Render(ansi.Strip(text))
	}

	line := text
	if d.Icon != "" {
		line = style.Render(d.Icon) + " " + text
	}
	if d.width > 0 && ansi.StringWidth(line) > d.width {
		line = ansi.Truncate(line, d.width, "…")
	}
	return line
}

func (d *DatePicker) renderPopup(snap picker.Snapshot) string {
	lines := make([]string, 0, yearRows+2)
	lines = append(lines, d.renderTitle(snap))
	if snap.Session == picker.OpenYearPicker {
		lines = append(lines, d.renderYears(snap)...)
	} else {
		lines = append(lines, d.renderGrid(snap)...)
	}
	lines = append(lines, renderFooter())
	return PopupStyle.Render(strings.Join(lines, "\n"))
}

func (d *DatePicker) renderTitle(snap picker.Snapshot) string {
	title := TitleStyle.Render(snap.Title + titleDecoration)
	middle := lipgloss.PlaceHorizontal(GridWidth-4, lipgloss.Center, title)
	return ArrowStyle.Render("‹") + " " + middle + " " + ArrowStyle.Render("›")
}

func (d *DatePicker) renderGrid(snap picker.Snapshot) []string {
	lines := make([]string, 0, calendar.GridWeeks+1)

	var header strings.Builder
	for _, wd := range calendar.Weekdays {
		header.WriteString(WeekdayStyle.Render(fmt.Sprintf(" %2s ", wd)))
	}
	lines = append(lines, header.String())

	for w := 0; w < calendar.GridWeeks; w++ {
		var row strings.Builder
		for _, cell := range snap.Cells[w*7 : w*7+7] {
			cursor := cell.InCurrentMonth && cell.Date == d.cursor
			style := CellStyle(cell, snap.Mode, cursor)
			row.WriteString(style.Render(fmt.Sprintf(" %2d ", cell.Date.Day)))
		}
		lines = append(lines, row.String())
	}
	return lines
}

func (d *DatePicker) renderYears(snap picker.Snapshot) []string {
	start := d.yearWindowStart()
	lines := make([]string, 0, yearRows)
	for r := 0; r < yearRows; r++ {
		var row strings.Builder
		for c := 0; c < yearColumns; c++ {
			y := start + r*yearColumns + c
			if y > snap.MaxYear {
				row.WriteString(strings.Repeat(" ", yearCellWidth))
				continue
			}
			style := YearStyle(y == snap.Visible.Year, y == d.yearCursor)
			row.WriteString(style.Render(fmt.Sprintf(" %4d  ", y)))
		}
		lines = append(lines, row.String())
	}
	return lines
}

// yearWindowStart returns the first year shown so that the cursor row stays
// near the middle of the list
func (d *DatePicker) yearWindowStart() int {
	minYear, maxYear := d.picker.Navigator().Bounds()
	totalRows := (maxYear-minYear)/yearColumns + 1
	top := (d.yearCursor-minYear)/yearColumns - yearRows/2
	if top > totalRows-yearRows {
		top = totalRows - yearRows
	}
	if top < 0 {
		top = 0
	}
	return minYear + top*yearColumns
}

func renderFooter() string {
	buttons := ButtonStyle.Render("Cancel") + " " + PrimaryButtonStyle.Render("OK")
	return lipgloss.PlaceHorizontal(GridWidth, lipgloss.Right, buttons)
}

func (d *DatePicker) renderHelp(snap picker.Snapshot) string {
	if !snap.Session.IsOpen() {
		return HelpStyle.Render(d.help.ShortHelpView([]key.Binding{d.keys.Open}))
	}
	return d.help.View(d.keys)
}

type area int

const (
	areaNone area = iota
	areaOutside
	areaInput
	areaPrev
	areaNext
	areaTitle
	areaDay
	areaYear
	areaOK
	areaCancel
)

type hit struct {
	area area
	date calendar.Date
	year int
}

// hitTest maps a position relative to the input line onto the widget
func (d *DatePicker) hitTest(x, y int) hit {
	snap := d.picker.Snapshot()
	open := snap.Session.IsOpen()

	if y == 0 && x >= 0 && x < ansi.StringWidth(d.renderInput(snap)) {
		return hit{area: areaInput}
	}
	if !open {
		return hit{area: areaNone}
	}
	if x < 0 || x >= popupWidth || y < popupTop || y >= popupTop+popupHeight {
		return hit{area: areaOutside}
	}

	cx := x - PopupMargin
	cy := y - popupTop - 1
	if cx < 0 || cx >= GridWidth || cy < 0 || cy > footerRow {
		return hit{area: areaNone}
	}

	switch {
	case cy == 0:
		switch {
		case cx < 2:
			return hit{area: areaPrev}
		case cx >= GridWidth-2:
			return hit{area: areaNext}
		default:
			return hit{area: areaTitle}
		}
	case cy == footerRow:
		switch {
		case cx >= GridWidth-okWidth:
			return hit{area: areaOK}
		case cx >= GridWidth-okWidth-1-cancelWidth && cx < GridWidth-okWidth-1:
			return hit{area: areaCancel}
		}
		return hit{area: areaNone}
	case snap.Session == picker.OpenYearPicker:
		y := d.yearWindowStart() + (cy-1)*yearColumns + cx/yearCellWidth
		if y > snap.MaxYear {
			return hit{area: areaNone}
		}
		return hit{area: areaYear, year: y}
	case cy == 1:
		return hit{area: areaNone} // weekday header
	default:
		idx := (cy-2)*7 + cx/CellWidth
		cell := snap.Cells[idx]
		if !cell.InCurrentMonth {
			return hit{area: areaNone}
		}
		return hit{area: areaDay, date: cell.Date}
	}
}
