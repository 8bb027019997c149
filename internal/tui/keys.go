package tui

import "github.com/charmbracelet/bubbles/key"

// Keys are the timer's key bindings.
type Keys struct {
	Pause key.Binding
	Skip  key.Binding
	Quit  key.Binding
}

var keys = Keys{
	Pause: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "pause/resume"),
	),
	Skip: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "skip"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
