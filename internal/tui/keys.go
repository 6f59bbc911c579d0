package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Next   key.Binding
	Back   key.Binding
	Toggle key.Binding
	Up     key.Binding
	Down   key.Binding
	Quit   key.Binding
}

var keys = keyMap{
	Next:   key.NewBinding(key.WithKeys("enter", "right")),
	Back:   key.NewBinding(key.WithKeys("esc", "left")),
	Toggle: key.NewBinding(key.WithKeys(" ", "space")),
	Up:     key.NewBinding(key.WithKeys("up", "shift+tab")),
	Down:   key.NewBinding(key.WithKeys("down", "tab")),
	Quit:   key.NewBinding(key.WithKeys("ctrl+c")),
}

// formKeys are the only keys a step with text inputs claims; everything else
// is typed into the focused input. Arrow keys move the text cursor there.
var formKeys = keyMap{
	Next: key.NewBinding(key.WithKeys("enter")),
	Back: key.NewBinding(key.WithKeys("esc")),
	Up:   key.NewBinding(key.WithKeys("up", "shift+tab")),
	Down: key.NewBinding(key.WithKeys("down", "tab")),
	Quit: keys.Quit,
}
