package testhelpers

import (
	tea "github.com/charmbracelet/bubbletea"
)

var namedKeys = map[string]tea.KeyType{
	"enter":  tea.KeyEnter,
	"esc":    tea.KeyEsc,
	"tab":    tea.KeyTab,
	"space":  tea.KeySpace,
	"up":     tea.KeyUp,
	"down":   tea.KeyDown,
	"left":   tea.KeyLeft,
	"right":  tea.KeyRight,
	"pgup":   tea.KeyPgUp,
	"pgdown": tea.KeyPgDown,
	"ctrl+c": tea.KeyCtrlC,
}

// Key builds a key message. Named keys ("enter", "esc", "left") map to their
// key type; anything else is sent as runes.
func Key(name string) tea.KeyMsg {
	if kt, ok := namedKeys[name]; ok {
		return tea.KeyMsg{Type: kt}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(name)}
}

// Keys builds a sequence of key messages
func Keys(names ...string) []tea.KeyMsg {
	msgs := make([]tea.KeyMsg, len(names))
	for i, n := range names {
		msgs[i] = Key(n)
	}
	return msgs
}

// LeftClick builds a left-button press at x, y
func LeftClick(x, y int) tea.MouseMsg {
	return tea.MouseMsg{
		X:      x,
		Y:      y,
		Button: tea.MouseButtonLeft,
		Action: tea.MouseActionPress,
	}
}

// RunCmd executes cmd and returns its message, or nil for a nil command
func RunCmd(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}
