package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap holds the picker's key bindings. It satisfies help.KeyMap.
type KeyMap struct {
	Open       key.Binding
	Left       key.Binding
	Right      key.Binding
	Up         key.Binding
	Down       key.Binding
	PrevMonth  key.Binding
	NextMonth  key.Binding
	Pick       key.Binding
	Confirm    key.Binding
	Cancel     key.Binding
	YearPicker key.Binding
	Today      key.Binding
}

// DefaultKeyMap returns the standard bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Open: key.NewBinding(
			key.WithKeys("o", "tab"),
			key.WithHelp("o/tab", "open/close"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "prev day"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next day"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "prev week"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next week"),
		),
		PrevMonth: key.NewBinding(
			key.WithKeys("pgup", "["),
			key.WithHelp("[", "prev month"),
		),
		NextMonth: key.NewBinding(
			key.WithKeys("pgdown", "]"),
			key.WithHelp("]", "next month"),
		),
		Pick: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "pick"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "ok"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		YearPicker: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "years"),
		),
		Today: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "today"),
		),
	}
}

// ShortHelp returns the bindings shown in the one-line footer
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pick, k.Confirm, k.Cancel, k.PrevMonth, k.NextMonth, k.YearPicker}
}

// FullHelp returns every binding grouped by column
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.PrevMonth, k.NextMonth, k.YearPicker, k.Today},
		{k.Pick, k.Confirm, k.Cancel, k.Open},
	}
}
