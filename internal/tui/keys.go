package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	left      key.Binding
	right     key.Binding
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	backtab   key.Binding
	viewMain  key.Binding
	viewMe    key.Binding
	viewFind  key.Binding
	viewPeers key.Binding
	quit      key.Binding
	logout    key.Binding
	newItem   key.Binding
	refresh   key.Binding
	delete    key.Binding
	copy      key.Binding
	version   key.Binding
	submit    key.Binding
	visible   key.Binding
	yes       key.Binding
	no        key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	left:      key.NewBinding(key.WithKeys("left", "h")),
	right:     key.NewBinding(key.WithKeys("right", "l")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab")),
	viewMain:  key.NewBinding(key.WithKeys("1")),
	viewMe:    key.NewBinding(key.WithKeys("2")),
	viewFind:  key.NewBinding(key.WithKeys("3")),
	viewPeers: key.NewBinding(key.WithKeys("4")),
	quit:      key.NewBinding(key.WithKeys("q", "ctrl+c")),
	logout:    key.NewBinding(key.WithKeys("L")),
	newItem:   key.NewBinding(key.WithKeys("n")),
	refresh:   key.NewBinding(key.WithKeys("r")),
	delete:    key.NewBinding(key.WithKeys("d")),
	copy:      key.NewBinding(key.WithKeys("c")),
	version:   key.NewBinding(key.WithKeys("v")),
	submit:    key.NewBinding(key.WithKeys("ctrl+s")),
	visible:   key.NewBinding(key.WithKeys("ctrl+p")),
	yes:       key.NewBinding(key.WithKeys("y")),
	no:        key.NewBinding(key.WithKeys("n", "esc")),
}
