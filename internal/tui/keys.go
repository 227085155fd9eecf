// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	quit      key.Binding
	forceQuit key.Binding
	logout    key.Binding
	search    key.Binding
	refresh   key.Binding
	keyFile   key.Binding
	whoAmI    key.Binding
	buildInfo key.Binding
	copy      key.Binding
}

// text inputs swallow printable keys, so screens with an input only react to
// forceQuit, enter, esc and tab
var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab")),
	quit:      key.NewBinding(key.WithKeys("q", "ctrl+c")),
	forceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
	logout:    key.NewBinding(key.WithKeys("l")),
	search:    key.NewBinding(key.WithKeys("/")),
	refresh:   key.NewBinding(key.WithKeys("r")),
	keyFile:   key.NewBinding(key.WithKeys("f")),
	whoAmI:    key.NewBinding(key.WithKeys("w")),
	buildInfo: key.NewBinding(key.WithKeys("v")),
	copy:      key.NewBinding(key.WithKeys("c")),
}
