package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	save   key.Binding
	revert key.Binding
	copy   key.Binding
	quit   key.Binding
}

var keys = keyMap{
	save:   key.NewBinding(key.WithKeys("ctrl+s")),
	revert: key.NewBinding(key.WithKeys("ctrl+r")),
	copy:   key.NewBinding(key.WithKeys("ctrl+y")),
	quit:   key.NewBinding(key.WithKeys("ctrl+c")),
}
