package termhost

import "github.com/charmbracelet/bubbles/key"

// KeyMap is the set of bindings the Model responds to.
type KeyMap struct {
	Next  key.Binding
	Prev  key.Binding
	First key.Binding
	Last  key.Binding
	Jump  key.Binding
	Quit  key.Binding
}

// DefaultKeyMap returns arrow, vi and digit bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next:  key.NewBinding(key.WithKeys("right", "l", "tab"), key.WithHelp("→/l", "next")),
		Prev:  key.NewBinding(key.WithKeys("left", "h", "shift+tab"), key.WithHelp("←/h", "prev")),
		First: key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "first")),
		Last:  key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "last")),
		Jump: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "tap tab"),
		),
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Prev, k.Next, k.First, k.Last}, {k.Jump, k.Quit}}
}
