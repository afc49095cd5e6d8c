package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pluqqy/datepick/pkg/calendar"
	"github.com/pluqqy/datepick/pkg/models"
	"github.com/pluqqy/datepick/pkg/picker"
)

// ValueChangedMsg is sent when the user commits a selection
type ValueChangedMsg struct {
	Value   picker.Value
	Display string
}

// DismissedMsg is sent when the picker closes through Cancel or through OK
// with nothing selected
type DismissedMsg struct{}

// Year list geometry
const (
	yearColumns = 4
	yearRows    = calendar.GridWeeks + 1
)

// DatePicker is the terminal presentation of a picker.Picker. It turns key,
// mouse and focus messages into picker events and renders the picker's
// snapshot.
type DatePicker struct {
	picker *picker.Picker
	keys   KeyMap
	help   help.Model

	cursor     calendar.Date
	yearCursor int

	Disabled    bool
	Placeholder string
	Icon        string
	ShowHelp    bool
	Mouse       bool

	width   int
	originX int
	originY int
}

// NewDatePicker wraps p using the UI preferences in ui
func NewDatePicker(p *picker.Picker, ui models.UISettings) *DatePicker {
	d := &DatePicker{
		picker:      p,
		keys:        DefaultKeyMap(),
		help:        help.New(),
		Placeholder: ui.Placeholder,
		Icon:        ui.Icon,
		ShowHelp:    ui.ShowHelp,
		Mouse:       ui.Mouse,
	}
	d.resetCursor()
	return d
}

// Picker returns the wrapped state machine
func (d *DatePicker) Picker() *picker.Picker {
	return d.picker
}

// Cursor returns the highlighted day in the grid
func (d *DatePicker) Cursor() calendar.Date {
	return d.cursor
}

// YearCursor returns the highlighted year in the year list
func (d *DatePicker) YearCursor() int {
	return d.yearCursor
}

// KeyMap returns the active bindings
func (d *DatePicker) KeyMap() KeyMap {
	return d.keys
}

// SetWidth sets the width available for the input line and help
func (d *DatePicker) SetWidth(width int) {
	d.width = width
	d.help.Width = width
}

// SetOrigin sets the screen position of the input line, used to map mouse
// clicks onto the widget
func (d *DatePicker) SetOrigin(x, y int) {
	d.originX, d.originY = x, y
}

// Update routes a Bubble Tea message to the picker
func (d *DatePicker) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		_, cmd := d.HandleInput(msg)
		return cmd
	case tea.MouseMsg:
		_, cmd := d.HandleMouse(msg)
		return cmd
	case tea.BlurMsg:
		d.dispatch(picker.ClosedByOutsideInteraction{})
	case tea.WindowSizeMsg:
		d.SetWidth(msg.Width)
	}
	return nil
}

// HandleInput processes key presses. It reports whether the key was used.
func (d *DatePicker) HandleInput(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch d.picker.Session() {
	case picker.Closed:
		return d.handleClosedInput(msg)
	case picker.OpenYearPicker:
		return d.handleYearInput(msg)
	default:
		return d.handleGridInput(msg)
	}
}

func (d *DatePicker) handleClosedInput(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch {
	case key.Matches(msg, d.keys.Open),
		key.Matches(msg, d.keys.Confirm),
		key.Matches(msg, d.keys.Pick),
		key.Matches(msg, d.keys.Down):
		return d.open(), nil
	}
	return false, nil
}

func (d *DatePicker) handleGridInput(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch {
	case key.Matches(msg, d.keys.Left):
		d.moveCursor(-1)
	case key.Matches(msg, d.keys.Right):
		d.moveCursor(1)
	case key.Matches(msg, d.keys.Up):
		d.moveCursor(-7)
	case key.Matches(msg, d.keys.Down):
		d.moveCursor(7)
	case key.Matches(msg, d.keys.PrevMonth):
		d.dispatch(picker.MonthStepped{Direction: picker.Prev})
	case key.Matches(msg, d.keys.NextMonth):
		d.dispatch(picker.MonthStepped{Direction: picker.Next})
	case key.Matches(msg, d.keys.Today):
		d.jumpTo(d.picker.Today())
	case key.Matches(msg, d.keys.Pick):
		d.dispatch(picker.DayPicked{Date: d.cursor})
	case key.Matches(msg, d.keys.Confirm):
		return true, d.confirm()
	case key.Matches(msg, d.keys.Cancel):
		return true, d.cancel()
	case key.Matches(msg, d.keys.YearPicker):
		d.toggleYearPicker()
	case key.Matches(msg, d.keys.Open):
		d.dispatch(picker.Opened{})
	default:
		return false, nil
	}
	return true, nil
}

func (d *DatePicker) handleYearInput(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch {
	case key.Matches(msg, d.keys.Left):
		d.moveYearCursor(-1)
	case key.Matches(msg, d.keys.Right):
		d.moveYearCursor(1)
	case key.Matches(msg, d.keys.Up):
		d.moveYearCursor(-yearColumns)
	case key.Matches(msg, d.keys.Down):
		d.moveYearCursor(yearColumns)
	case key.Matches(msg, d.keys.Pick), key.Matches(msg, d.keys.Confirm):
		d.dispatch(picker.YearPicked{Year: d.yearCursor})
	case key.Matches(msg, d.keys.YearPicker):
		d.toggleYearPicker()
	case key.Matches(msg, d.keys.Cancel):
		return true, d.cancel()
	case key.Matches(msg, d.keys.Open):
		d.dispatch(picker.Opened{})
	default:
		return false, nil
	}
	return true, nil
}

// HandleMouse processes left clicks. Clicks outside the widget close it.
func (d *DatePicker) HandleMouse(msg tea.MouseMsg) (bool, tea.Cmd) {
	if !d.Mouse || msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return false, nil
	}

	hit := d.hitTest(msg.X-d.originX, msg.Y-d.originY)
	switch hit.area {
	case areaInput:
		return d.open(), nil
	case areaOutside:
		return d.dispatch(picker.ClosedByOutsideInteraction{}), nil
	case areaPrev:
		d.dispatch(picker.MonthStepped{Direction: picker.Prev})
	case areaNext:
		d.dispatch(picker.MonthStepped{Direction: picker.Next})
	case areaTitle:
		d.toggleYearPicker()
	case areaDay:
		d.cursor = hit.date
		d.dispatch(picker.DayPicked{Date: hit.date})
	case areaYear:
		d.yearCursor = hit.year
		d.dispatch(picker.YearPicked{Year: hit.year})
	case areaOK:
		return true, d.confirm()
	case areaCancel:
		return true, d.cancel()
	default:
		return false, nil
	}
	return true, nil
}

// Open shows the grid, or hides it when already shown
func (d *DatePicker) Open() bool {
	return d.open()
}

func (d *DatePicker) open() bool {
	if d.Disabled {
		return false
	}
	wasOpen := d.picker.Session().IsOpen()
	changed := d.dispatch(picker.Opened{})
	if !wasOpen && d.picker.Session().IsOpen() {
		d.resetCursor()
	}
	return changed
}

func (d *DatePicker) confirm() tea.Cmd {
	v, ok := d.picker.Confirm()
	if !ok {
		return func() tea.Msg { return DismissedMsg{} }
	}
	display := d.picker.DisplayString()
	return func() tea.Msg {
		return ValueChangedMsg{Value: v, Display: display}
	}
}

func (d *DatePicker) cancel() tea.Cmd {
	d.dispatch(picker.Cancelled{})
	return func() tea.Msg { return DismissedMsg{} }
}

func (d *DatePicker) toggleYearPicker() {
	d.dispatch(picker.YearPickerToggled{})
	if d.picker.Session() == picker.OpenYearPicker {
		d.yearCursor = d.picker.Visible().Year
		d.moveYearCursor(0)
	}
}

func (d *DatePicker) dispatch(ev picker.Event) bool {
	changed := d.picker.Dispatch(ev)
	d.syncCursor()
	return changed
}

// resetCursor places the cursor on the pending selection, today, or the
// first of the visible month, whichever is visible first.
func (d *DatePicker) resetCursor() {
	visible := d.picker.Visible()
	pending := d.picker.Pending()
	for _, c := range []calendar.Date{pending.End, pending.Start, d.picker.Today()} {
		if !c.IsZero() && visible.Contains(c) {
			d.cursor = c
			return
		}
	}
	d.cursor = visible.First()
}

// syncCursor keeps the cursor inside the visible month, preserving the day
// where the month has one.
func (d *DatePicker) syncCursor() {
	visible := d.picker.Visible()
	if visible.Contains(d.cursor) {
		return
	}
	day := d.cursor.Day
	if last := calendar.DaysInMonth(visible.Year, visible.Month); day > last {
		day = last
	}
	if day < 1 {
		day = 1
	}
	d.cursor = calendar.Date{Year: visible.Year, Month: visible.Month, Day: day}
}

func (d *DatePicker) moveCursor(days int) {
	target := d.cursor.AddDays(days)
	visible := d.picker.Visible()
	switch {
	case target.Before(visible.First()):
		d.picker.Dispatch(picker.MonthStepped{Direction: picker.Prev})
	case target.After(visible.Last()):
		d.picker.Dispatch(picker.MonthStepped{Direction: picker.Next})
	}
	d.cursor = target
	d.syncCursor()
}

// jumpTo steps the visible month until it contains target
func (d *DatePicker) jumpTo(target calendar.Date) {
	visible := d.picker.Visible()
	steps := (target.Year-visible.Year)*12 + int(target.Month) - int(visible.Month)
	dir := picker.Next
	if steps < 0 {
		dir, steps = picker.Prev, -steps
	}
	for i := 0; i < steps; i++ {
		d.picker.Dispatch(picker.MonthStepped{Direction: dir})
	}
	d.cursor = target
	d.syncCursor()
}

func (d *DatePicker) moveYearCursor(delta int) {
	minYear, maxYear := d.picker.Navigator().Bounds()
	y := d.yearCursor + delta
	if y < minYear {
		y = minYear
	}
	if y > maxYear {
		y = maxYear
	}
	d.yearCursor = y
}
