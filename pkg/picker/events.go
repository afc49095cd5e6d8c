package picker

import "github.com/pluqqy/datepick/pkg/calendar"

// Direction of a month step
type Direction int

const (
	Prev Direction = -1
	Next Direction = 1
)

// Event is a user gesture forwarded by a presentation layer
type Event interface {
	event()
}

// DayPicked is a click on a grid day
type DayPicked struct {
	Date calendar.Date
}

// MonthStepped is a press of the previous or next month control
type MonthStepped struct {
	Direction Direction
}

// YearPicked is a choice from the year list
type YearPicked struct {
	Year int
}

// Confirmed is a press of the OK control
type Confirmed struct{}

// Cancelled is a press of the Cancel control
type Cancelled struct{}

// Opened is a press of the input or its icon
type Opened struct{}

// ClosedByOutsideInteraction is a click or focus loss outside the widget
type ClosedByOutsideInteraction struct{}

// YearPickerToggled is a press of the month title
type YearPickerToggled struct{}

func (DayPicked) event()                  {}
func (MonthStepped) event()               {}
func (YearPicked) event()                 {}
func (Confirmed) event()                  {}
func (Cancelled) event()                  {}
func (Opened) event()                     {}
func (ClosedByOutsideInteraction) event() {}
func (YearPickerToggled) event()          {}

// Dispatch applies ev and reports whether any state changed. Events are
// applied strictly in the order Dispatch is called.
func (p *Picker) Dispatch(ev Event) bool {
	switch ev := ev.(type) {
	case DayPicked:
		return p.PickDay(ev.Date)
	case MonthStepped:
		return p.StepMonth(ev.Direction)
	case YearPicked:
		return p.SelectYear(ev.Year)
	case Confirmed:
		before := p.session
		_, committed := p.Confirm()
		return committed || before != p.session
	case Cancelled:
		return p.Cancel()
	case Opened:
		return p.Open()
	case ClosedByOutsideInteraction:
		return p.CloseOutside()
	case YearPickerToggled:
		return p.ToggleYearPicker()
	default:
		p.logger.Printf("ignored unknown event %T", ev)
		return false
	}
}
