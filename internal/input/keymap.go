// Package input turns backend events and held-key state into per-frame
// commands and directions.
package input

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/vovakirdan/bounce/internal/core"
	"github.com/vovakirdan/bounce/internal/media"
)

// KeyMap holds the key bindings. Binding keys are media.Key names.
type KeyMap struct {
	Quit    key.Binding
	Cancel  key.Binding
	Trigger key.Binding
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
}

// DefaultKeyMap returns the fixed bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "exit"),
		),
		Trigger: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "new color + sound"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑/w", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "move down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "move left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "move right"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Trigger, k.Cancel, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Trigger, k.Cancel, k.Quit},
	}
}

// directionBindings pairs each direction with its binding.
func (k KeyMap) directionBindings() []struct {
	dir     core.Direction
	binding key.Binding
} {
	return []struct {
		dir     core.Direction
		binding key.Binding
	}{
		{core.DirUp, k.Up},
		{core.DirDown, k.Down},
		{core.DirLeft, k.Left},
		{core.DirRight, k.Right},
	}
}

// BindingKeys resolves the key names of a binding to media keys, dropping
// names no backend reports.
func BindingKeys(b key.Binding) []media.Key {
	var keys []media.Key
	for _, name := range b.Keys() {
		if k := media.ParseKey(name); k != media.KeyUnknown {
			keys = append(keys, k)
		}
	}
	return keys
}
