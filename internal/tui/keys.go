package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up       key.Binding
	down     key.Binding
	left     key.Binding
	right    key.Binding
	enter    key.Binding
	esc      key.Binding
	keep     key.Binding
	stage    key.Binding
	restore  key.Binding
	discard  key.Binding
	gallery  key.Binding
	bin      key.Binding
	settings key.Binding
	refresh  key.Binding
	copy     key.Binding
	upgrade  key.Binding
	purchase key.Binding
	reset    key.Binding
	quit     key.Binding
	yes      key.Binding
	no       key.Binding
}

var keys = keyMap{
	up:       key.NewBinding(key.WithKeys("up", "k")),
	down:     key.NewBinding(key.WithKeys("down", "j")),
	left:     key.NewBinding(key.WithKeys("left", "h")),
	right:    key.NewBinding(key.WithKeys("right", "l")),
	enter:    key.NewBinding(key.WithKeys("enter")),
	esc:      key.NewBinding(key.WithKeys("esc")),
	keep:     key.NewBinding(key.WithKeys(" ")),
	stage:    key.NewBinding(key.WithKeys("d")),
	restore:  key.NewBinding(key.WithKeys("u")),
	discard:  key.NewBinding(key.WithKeys("x")),
	gallery:  key.NewBinding(key.WithKeys("g")),
	bin:      key.NewBinding(key.WithKeys("b")),
	settings: key.NewBinding(key.WithKeys("s")),
	refresh:  key.NewBinding(key.WithKeys("r")),
	copy:     key.NewBinding(key.WithKeys("c")),
	upgrade:  key.NewBinding(key.WithKeys("u")),
	purchase: key.NewBinding(key.WithKeys("p")),
	reset:    key.NewBinding(key.WithKeys("0")),
	quit:     key.NewBinding(key.WithKeys("q", "ctrl+c")),
	yes:      key.NewBinding(key.WithKeys("y")),
	no:       key.NewBinding(key.WithKeys("n")),
}
