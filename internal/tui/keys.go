package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up      key.Binding
	down    key.Binding
	enter   key.Binding
	esc     key.Binding
	submit  key.Binding
	remove  key.Binding
	copy    key.Binding
	version key.Binding
	quit    key.Binding
}

var keys = keyMap{
	up:      key.NewBinding(key.WithKeys("up", "k")),
	down:    key.NewBinding(key.WithKeys("down", "j")),
	enter:   key.NewBinding(key.WithKeys("enter")),
	esc:     key.NewBinding(key.WithKeys("esc")),
	submit:  key.NewBinding(key.WithKeys("ctrl+s")),
	remove:  key.NewBinding(key.WithKeys("backspace")),
	copy:    key.NewBinding(key.WithKeys("c")),
	version: key.NewBinding(key.WithKeys("v")),
	quit:    key.NewBinding(key.WithKeys("ctrl+c")),
}
