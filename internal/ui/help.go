package ui

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap describes the key bindings for the help views. Dispatch itself is
// done by the input handler.
type KeyMap struct {
	Focus  key.Binding
	Submit key.Binding
	Clear  key.Binding
	Blur   key.Binding
	Pager  key.Binding
	Help   key.Binding
	Quit   key.Binding
}

// DefaultKeyMap returns the bindings the input handler implements
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Focus: key.NewBinding(
			key.WithKeys("/", "i"),
			key.WithHelp("/", "focus search"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "look up word"),
		),
		Clear: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear search"),
		),
		Blur: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "leave search field"),
		),
		Pager: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "all definitions in pager"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Focus, k.Submit, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Focus, k.Submit, k.Clear, k.Blur},
		{k.Pager, k.Help, k.Quit},
	}
}
