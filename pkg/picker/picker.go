package picker

import (
	"io"
	"log"

	"github.com/pluqqy/datepick/pkg/calendar"
)

// ChangeFunc receives every committed value. It is invoked once per
// confirmed commit and never on cancel, open or navigation.
type ChangeFunc func(Value)

// Picker is the selection state machine of one date picker instance. It
// keeps the pending selection separate from the committed value and only
// hands a value to the host on Confirm. All transitions are synchronous; a
// Picker must not be used from multiple goroutines.
type Picker struct {
	mode      Mode
	committed Value
	pending   Value
	session   SessionState
	nav       *Navigator
	monthSet  bool

	policy    calendar.DisabledPolicy
	clock     calendar.Clock
	formatter calendar.Formatter
	pattern   string

	onChange  ChangeFunc
	observers []func(Snapshot)
	logger    *log.Logger
}

// Option configures a Picker
type Option func(*Picker)

// WithValue sets the initial committed value. The value is normalized and
// coerced to the picker's mode.
func WithValue(v Value) Option {
	return func(p *Picker) {
		p.committed = p.ingest(v)
	}
}

// WithPolicy sets the disabled-date policy
func WithPolicy(policy calendar.DisabledPolicy) Option {
	return func(p *Picker) {
		p.policy = policy
	}
}

// WithClock replaces the system clock used for "today"
func WithClock(clock calendar.Clock) Option {
	return func(p *Picker) {
		if clock != nil {
			p.clock = clock
		}
	}
}

// WithChangeCallback registers the host's change callback
func WithChangeCallback(fn ChangeFunc) Option {
	return func(p *Picker) {
		p.onChange = fn
	}
}

// WithFormatter replaces the display formatter
func WithFormatter(f calendar.Formatter) Option {
	return func(p *Picker) {
		if f != nil {
			p.formatter = f
		}
	}
}

// WithPattern sets the display pattern used for the pending display string
func WithPattern(pattern string) Option {
	return func(p *Picker) {
		if pattern != "" {
			p.pattern = calendar.NormalizePattern(pattern)
		}
	}
}

// WithYearBounds sets the inclusive year interval offered by the year list
func WithYearBounds(minYear, maxYear int) Option {
	return func(p *Picker) {
		p.nav.setBounds(minYear, maxYear)
	}
}

// WithVisibleMonth overrides the initially displayed month
func WithVisibleMonth(m calendar.Month) Option {
	return func(p *Picker) {
		p.nav.month = m
		p.monthSet = true
	}
}

// WithLogger logs commits, cancels and ignored gestures to logger
func WithLogger(logger *log.Logger) Option {
	return func(p *Picker) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithObserver registers fn to receive a snapshot after every state change
func WithObserver(fn func(Snapshot)) Option {
	return func(p *Picker) {
		if fn != nil {
			p.observers = append(p.observers, fn)
		}
	}
}

// New returns a closed picker for mode
func New(mode Mode, opts ...Option) *Picker {
	p := &Picker{
		mode:      mode,
		committed: Value{Mode: mode},
		nav:       NewNavigator(calendar.Month{}),
		clock:     calendar.SystemClock{},
		formatter: calendar.PatternFormatter{},
		pattern:   calendar.DefaultPattern,
		logger:    log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.pending = p.committed
	if !p.monthSet {
		p.nav.month = p.initialMonth()
	}
	return p
}

func (p *Picker) initialMonth() calendar.Month {
	if !p.committed.Start.IsZero() {
		return calendar.MonthOf(p.committed.Start)
	}
	return calendar.MonthOf(p.clock.Today())
}

func (p *Picker) ingest(v Value) Value {
	v.Mode = p.mode
	return v.Normalize()
}

// Mode returns the fixed selection mode
func (p *Picker) Mode() Mode {
	return p.mode
}

// Pending returns the uncommitted selection
func (p *Picker) Pending() Value {
	return p.pending
}

// Committed returns the last committed value
func (p *Picker) Committed() Value {
	return p.committed
}

// Session returns the open state
func (p *Picker) Session() SessionState {
	return p.session
}

// Visible returns the displayed month
func (p *Picker) Visible() calendar.Month {
	return p.nav.Month()
}

// Navigator exposes the year bounds and year list
func (p *Picker) Navigator() *Navigator {
	return p.nav
}

// Policy returns the disabled-date policy
func (p *Picker) Policy() calendar.DisabledPolicy {
	return p.policy
}

// Today returns the clock's current day
func (p *Picker) Today() calendar.Date {
	return p.clock.Today()
}

// IsSelectable reports whether d can be picked in the visible month
func (p *Picker) IsSelectable(d calendar.Date) bool {
	cell := calendar.Cell{Date: d, InCurrentMonth: p.nav.Month().Contains(d)}
	return calendar.IsSelectable(cell, p.policy, p.clock.Today())
}

// SetValue ingests a new committed value supplied by the host. The pending
// selection follows it only while the picker is closed.
func (p *Picker) SetValue(v Value) bool {
	v = p.ingest(v)
	before := p.state()
	p.committed = v
	if !p.session.IsOpen() {
		p.pending = v
	}
	return p.changed(before)
}

// PickDay applies a day pick to the pending selection. Picks while closed or
// on days that are not selectable are ignored. It reports whether the
// pending selection changed.
func (p *Picker) PickDay(d calendar.Date) bool {
	if !p.session.IsOpen() {
		p.logger.Printf("ignored pick of %s: picker closed", d)
		return false
	}
	if !p.IsSelectable(d) {
		p.logger.Printf("ignored pick of %s: not selectable", d)
		return false
	}
	before := p.state()
	p.pending = nextSelection(p.mode, p.pending, d)
	return p.changed(before)
}

// nextSelection is the pick transition. In Range mode a pick after a
// complete range starts a new range; a pick before the start becomes the
// new start and the old start becomes the end.
func nextSelection(mode Mode, v Value, d calendar.Date) Value {
	if mode == Single {
		return SingleValue(d)
	}
	switch {
	case v.Start.IsZero() || !v.End.IsZero():
		return Value{Mode: Range, Start: d}
	case d.Before(v.Start):
		return Value{Mode: Range, Start: d, End: v.Start}
	default:
		return Value{Mode: Range, Start: v.Start, End: d}
	}
}

// Confirm commits the pending selection and closes the picker. Single mode
// commits only a set date; Range mode commits a complete range or a range
// with only a start. Nothing is committed when the selection is empty, but
// the picker still closes. Confirm is ignored while closed.
func (p *Picker) Confirm() (Value, bool) {
	if !p.session.IsOpen() {
		return Value{}, false
	}
	p.session = Closed
	v := p.pending
	if v.Start.IsZero() {
		p.notify()
		return Value{}, false
	}
	p.committed = v
	p.logger.Printf("commit %s value %s", p.mode, v)
	if p.onChange != nil {
		p.onChange(v)
	}
	p.notify()
	return v, true
}

// Cancel discards the pending selection, restores it from the committed
// value and closes the picker. The change callback is not invoked.
func (p *Picker) Cancel() bool {
	before := p.state()
	p.pending = p.committed
	p.session = Closed
	if p.changed(before) {
		p.logger.Printf("cancelled, pending reverted to %q", p.pending)
		return true
	}
	return false
}

// Open opens the grid, re-deriving the pending selection from the committed
// value. Calling Open on an open picker closes it without reverting the
// pending selection.
func (p *Picker) Open() bool {
	before := p.state()
	if p.session.IsOpen() {
		p.session = Closed
	} else {
		p.session = OpenGrid
		p.pending = p.committed
	}
	return p.changed(before)
}

// CloseOutside closes the grid and the year list after an interaction
// outside the widget. Nothing is emitted and the pending selection is kept.
func (p *Picker) CloseOutside() bool {
	before := p.state()
	p.session = Closed
	return p.changed(before)
}

// ToggleYearPicker shows or hides the year list. Ignored while closed.
func (p *Picker) ToggleYearPicker() bool {
	before := p.state()
	switch p.session {
	case OpenGrid:
		p.session = OpenYearPicker
	case OpenYearPicker:
		p.session = OpenGrid
	}
	return p.changed(before)
}

// NextMonth shows the following month
func (p *Picker) NextMonth() bool {
	return p.StepMonth(Next)
}

// PrevMonth shows the preceding month
func (p *Picker) PrevMonth() bool {
	return p.StepMonth(Prev)
}

// StepMonth moves the visible month one step in direction
func (p *Picker) StepMonth(direction Direction) bool {
	before := p.state()
	p.nav.Step(int(direction))
	return p.changed(before)
}

// SelectYear shows the visible month in year and closes the year list.
// Years outside the navigator bounds are ignored.
func (p *Picker) SelectYear(year int) bool {
	if !p.nav.InBounds(year) {
		p.logger.Printf("ignored year %d: out of bounds", year)
		return false
	}
	before := p.state()
	p.nav.SelectYear(year)
	if p.session == OpenYearPicker {
		p.session = OpenGrid
	}
	return p.changed(before)
}

type machineState struct {
	pending   Value
	committed Value
	session   SessionState
	month     calendar.Month
}

func (p *Picker) state() machineState {
	return machineState{
		pending:   p.pending,
		committed: p.committed,
		session:   p.session,
		month:     p.nav.Month(),
	}
}

func (p *Picker) changed(before machineState) bool {
	if p.state() == before {
		return false
	}
	p.notify()
	return true
}

func (p *Picker) notify() {
	if len(p.observers) == 0 {
		return
	}
	snap := p.Snapshot()
	for _, fn := range p.observers {
		fn(snap)
	}
}
