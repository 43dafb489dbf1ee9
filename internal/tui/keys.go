package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit    key.Binding
	Restart key.Binding
	Confirm key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", "quit"),
		),
		Restart: key.NewBinding(
			key.WithKeys("tab", "ctrl+r"),
			key.WithHelp("tab", "restart"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "new passage"),
		),
	}
}

func (k keyMap) typingHelp() []key.Binding {
	return []key.Binding{k.Restart, k.Quit}
}

func (k keyMap) resultsHelp() []key.Binding {
	return []key.Binding{k.Confirm, k.Restart, k.Quit}
}
