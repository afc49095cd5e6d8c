package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/wordwrap"

	"github.com/pluqqy/datepick/pkg/picker"
)

// App is the full-screen program behind `datepick pick`. It quits once the
// picker commits or is dismissed.
type App struct {
	picker    *DatePicker
	width     int
	height    int
	startOpen bool
	statusMsg string

	result    picker.Value
	committed bool
	quitting  bool
}

// NewApp wraps d. When startOpen is set the grid is shown immediately.
func NewApp(d *DatePicker, startOpen bool) *App {
	return &App{
		picker:    d,
		startOpen: startOpen,
	}
}

func (a *App) Init() tea.Cmd {
	if a.startOpen {
		a.picker.Open()
	}
	return nil
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.picker.SetWidth(msg.Width)
		return a, nil

	case tea.KeyMsg:
		// Global keybindings
		if msg.Type == tea.KeyCtrlC {
			a.quitting = true
			return a, tea.Quit
		}
		if msg.String() == "q" && !a.picker.Picker().Session().IsOpen() {
			a.quitting = true
			return a, tea.Quit
		}

	case ValueChangedMsg:
		a.result = msg.Value
		a.committed = true
		a.quitting = true
		return a, tea.Quit

	case DismissedMsg:
		a.quitting = true
		return a, tea.Quit

	case StatusMsg:
		a.statusMsg = string(msg)
		return a, nil
	}

	return a, a.picker.Update(msg)
}

func (a *App) View() string {
	if a.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(a.picker.View())

	if status := a.status(); status != "" {
		b.WriteString("\n")
		if a.width > 0 {
			status = wordwrap.String(status, a.width)
		}
		b.WriteString(HelpStyle.Render(status))
	}
	return b.String()
}

func (a *App) status() string {
	if a.statusMsg != "" {
		return a.statusMsg
	}
	p := a.picker.Picker()
	if p.Mode() == picker.Range && p.Session().IsOpen() {
		pending := p.Pending()
		switch {
		case pending.Start.IsZero():
			return "Pick the first day of the range with space, then the last."
		case pending.End.IsZero():
			return "Pick the last day of the range. Picking a day before the start swaps the two."
		}
	}
	return ""
}

// Result returns the committed value and whether the user committed one
func (a *App) Result() (picker.Value, bool) {
	return a.result, a.committed
}

// StatusMsg replaces the status line
type StatusMsg string
