// Copyright 2026 The Rollcall Authors
// SPDX-License-Identifier: Apache-2.0

package console

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the console's key bindings.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding

	// Tab switching.
	TabOverview   key.Binding
	TabStudents   key.Binding
	TabAttendance key.Binding
	TabGatePasses key.Binding
	TabVisitors   key.Binding
	TabUsers      key.Binding
	TabSecurity   key.Binding

	Refresh key.Binding

	// Filter.
	FilterActivate key.Binding
	FilterClear    key.Binding

	Quit key.Binding
}

// DefaultKeyMap is the built-in binding set: vim-style j/k next to
// arrow keys, number keys for tabs.
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("pgup", "ctrl+u"),
		key.WithHelp("pgup", "page up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("pgdown", "ctrl+d"),
		key.WithHelp("pgdn", "page down"),
	),
	TabOverview: key.NewBinding(
		key.WithKeys("1"),
		key.WithHelp("1", "overview"),
	),
	TabStudents: key.NewBinding(
		key.WithKeys("2"),
		key.WithHelp("2", "students"),
	),
	TabAttendance: key.NewBinding(
		key.WithKeys("3"),
		key.WithHelp("3", "attendance"),
	),
	TabGatePasses: key.NewBinding(
		key.WithKeys("4"),
		key.WithHelp("4", "gate passes"),
	),
	TabVisitors: key.NewBinding(
		key.WithKeys("5"),
		key.WithHelp("5", "visitors"),
	),
	TabUsers: key.NewBinding(
		key.WithKeys("6"),
		key.WithHelp("6", "users"),
	),
	TabSecurity: key.NewBinding(
		key.WithKeys("0"),
		key.WithHelp("0", "gate"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "refresh"),
	),
	FilterActivate: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "filter"),
	),
	FilterClear: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "clear filter"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
