package input

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/vovakirdan/bounce/internal/core"
	"github.com/vovakirdan/bounce/internal/media"
)

// Source is the part of a media backend the dispatcher reads.
type Source interface {
	PollEvent() (media.Event, bool)
	KeyHeld(k media.Key) bool
}

type heldBinding struct {
	dir  core.Direction
	keys []media.Key
}

// Dispatcher reads discrete events and held-key state from a Source.
type Dispatcher struct {
	src  Source
	keys KeyMap
	held []heldBinding
}

// NewDispatcher creates a dispatcher using the given bindings.
func NewDispatcher(src Source, keys KeyMap) *Dispatcher {
	d := &Dispatcher{src: src, keys: keys}
	for _, db := range keys.directionBindings() {
		if !db.binding.Enabled() {
			continue
		}
		d.held = append(d.held, heldBinding{dir: db.dir, keys: BindingKeys(db.binding)})
	}
	return d
}

// KeyMap returns the bindings in use.
func (d *Dispatcher) KeyMap() KeyMap {
	return d.keys
}

// PollEvents drains every pending event and returns the resulting
// commands in arrival order. Events that map to no command are dropped.
func (d *Dispatcher) PollEvents() []core.Command {
	var cmds []core.Command
	for {
		ev, ok := d.src.PollEvent()
		if !ok {
			return cmds
		}
		if cmd := d.translate(ev); cmd != core.CommandNone {
			cmds = append(cmds, cmd)
		}
	}
}

func (d *Dispatcher) translate(ev media.Event) core.Command {
	switch ev.Kind {
	case media.EventQuit:
		return core.CommandQuit
	case media.EventKeyDown:
		switch {
		case key.Matches(ev.Key, d.keys.Quit):
			return core.CommandQuit
		case key.Matches(ev.Key, d.keys.Cancel):
			return core.CommandCancel
		case key.Matches(ev.Key, d.keys.Trigger):
			return core.CommandTrigger
		}
	}
	return core.CommandNone
}

// SampleDirections returns every direction with at least one bound key
// currently held. Opposite directions are reported together.
func (d *Dispatcher) SampleDirections() core.Direction {
	dirs := core.DirNone
	for _, hb := range d.held {
		for _, k := range hb.keys {
			if d.src.KeyHeld(k) {
				dirs |= hb.dir
				break
			}
		}
	}
	return dirs
}
