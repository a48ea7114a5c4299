package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	submit  key.Binding
	refresh key.Binding
	up      key.Binding
	down    key.Binding
	copy    key.Binding
	info    key.Binding
	back    key.Binding
	quit    key.Binding
}

var keys = keyMap{
	submit:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
	refresh: key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "reload")),
	up:      key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
	down:    key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
	copy:    key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "copy")),
	info:    key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "about")),
	back:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "quit")),
	quit:    key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
}

func helpLine(bindings ...key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+": "+h.Desc)
	}
	return joinHelp(parts)
}
