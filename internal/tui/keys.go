package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up      key.Binding
	down    key.Binding
	enter   key.Binding
	tab     key.Binding
	backtab key.Binding
	toggle  key.Binding
	refresh key.Binding
	logout  key.Binding
	info    key.Binding
	esc     key.Binding
	quit    key.Binding
	forceQ  key.Binding
}

var keys = keyMap{
	up:      key.NewBinding(key.WithKeys("up", "k")),
	down:    key.NewBinding(key.WithKeys("down", "j")),
	enter:   key.NewBinding(key.WithKeys("enter")),
	tab:     key.NewBinding(key.WithKeys("tab", "down")),
	backtab: key.NewBinding(key.WithKeys("shift+tab", "up")),
	toggle:  key.NewBinding(key.WithKeys(" ")),
	refresh: key.NewBinding(key.WithKeys("r")),
	logout:  key.NewBinding(key.WithKeys("l")),
	info:    key.NewBinding(key.WithKeys("?")),
	esc:     key.NewBinding(key.WithKeys("esc")),
	quit:    key.NewBinding(key.WithKeys("q")),
	forceQ:  key.NewBinding(key.WithKeys("ctrl+c")),
}
