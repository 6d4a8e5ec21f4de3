package core

// Command is a discrete intent derived from a key press or window event.
// The dispatcher produces commands; the frame driver applies them.
type Command int

const (
	CommandNone    Command = iota
	CommandQuit            // Window close request, Ctrl+C
	CommandCancel          // Escape
	CommandTrigger         // Space - recolor and play the action sound
)

// String returns a human-readable name for the command.
func (c Command) String() string {
	switch c {
	case CommandNone:
		return "None"
	case CommandQuit:
		return "Quit"
	case CommandCancel:
		return "Cancel"
	case CommandTrigger:
		return "Trigger"
	default:
		return "Unknown"
	}
}

// Stops reports whether the command ends the frame loop.
func (c Command) Stops() bool {
	return c == CommandQuit || c == CommandCancel
}

// Direction is a set of held directional inputs sampled for one frame.
// Opposite directions may be set together.
type Direction uint8

const (
	DirUp Direction = 1 << iota
	DirDown
	DirLeft
	DirRight
)

// DirNone is the empty direction set.
const DirNone Direction = 0

// Has returns true if every direction in d is held.
func (d Direction) Has(dir Direction) bool {
	return d&dir == dir
}

// String lists the held directions, e.g. "up+left".
func (d Direction) String() string {
	if d == DirNone {
		return "none"
	}
	names := []struct {
		dir  Direction
		name string
	}{
		{DirUp, "up"},
		{DirDown, "down"},
		{DirLeft, "left"},
		{DirRight, "right"},
	}
	s := ""
	for _, n := range names {
		if d.Has(n.dir) {
			if s != "" {
				s += "+"
			}
			s += n.name
		}
	}
	return s
}
