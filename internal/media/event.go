package media

import "strings"

// EventKind distinguishes the events the program reacts to.
type EventKind int

const (
	EventOther EventKind = iota
	EventQuit
	EventKeyDown
)

// Event is a single input event drained from the backend queue.
type Event struct {
	Kind   EventKind
	Key    Key
	Repeat bool // Key auto-repeat
}

// QuitEvent returns a window close request.
func QuitEvent() Event {
	return Event{Kind: EventQuit}
}

// KeyDownEvent returns a key press.
func KeyDownEvent(k Key) Event {
	return Event{Kind: EventKeyDown, Key: k}
}

// Key is a backend-neutral physical key.
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeySpace
	KeyEnter
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyW
	KeyA
	KeyS
	KeyD
	KeyQ
	KeyCtrlC
)

// keyNames are the canonical names used by key bindings. They match the
// strings bubbletea reports for the same keys.
var keyNames = map[Key]string{
	KeyEscape: "esc",
	KeySpace:  " ",
	KeyEnter:  "enter",
	KeyUp:     "up",
	KeyDown:   "down",
	KeyLeft:   "left",
	KeyRight:  "right",
	KeyW:      "w",
	KeyA:      "a",
	KeyS:      "s",
	KeyD:      "d",
	KeyQ:      "q",
	KeyCtrlC:  "ctrl+c",
}

var keysByName = func() map[string]Key {
	m := make(map[string]Key, len(keyNames)+1)
	for k, name := range keyNames {
		m[name] = k
	}
	m["space"] = KeySpace
	return m
}()

// String returns the binding name of the key.
func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParseKey returns the key with the given binding name, case-insensitive
// for single letters. Unknown names map to KeyUnknown.
func ParseKey(name string) Key {
	if k, ok := keysByName[name]; ok {
		return k
	}
	if k, ok := keysByName[strings.ToLower(name)]; ok && len(name) == 1 {
		return k
	}
	return KeyUnknown
}
