package quiz

import "charm.land/bubbles/v2/key"

// KeyMap defines the quiz screen bindings.
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Submit key.Binding
	Quit   key.Binding
}

// DefaultKeyMap returns the default quiz bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("Enter", "Answer")),
		Quit:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("Esc", "Quit")),
	}
}

// optionIndex maps "1".."9" to a zero-based option index.
func optionIndex(k string) (int, bool) {
	if len(k) != 1 || k[0] < '1' || k[0] > '9' {
		return 0, false
	}
	return int(k[0] - '1'), true
}
