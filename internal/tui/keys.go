package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	next   key.Binding
	prev   key.Binding
	submit key.Binding
	cancel key.Binding
	copy   key.Binding
}

var keys = keyMap{
	next:   key.NewBinding(key.WithKeys("tab", "down")),
	prev:   key.NewBinding(key.WithKeys("shift+tab", "up")),
	submit: key.NewBinding(key.WithKeys("enter")),
	cancel: key.NewBinding(key.WithKeys("esc", "ctrl+c")),
	copy:   key.NewBinding(key.WithKeys("ctrl+y")),
}
