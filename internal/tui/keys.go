package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Submit key.Binding
	Remove key.Binding
	Focus  key.Binding
	Quit   key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add")),
		Remove: key.NewBinding(key.WithKeys("enter", "d", "delete"), key.WithHelp("d/click", "remove")),
		Focus:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "input/list")),
		Quit:   key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "quit")),
	}
}

func (k keyMap) bindings() []key.Binding {
	return []key.Binding{k.Submit, k.Remove, k.Focus, k.Quit}
}
