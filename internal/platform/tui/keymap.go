package tui

import (
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/bounce/internal/media"
)

// DefaultKeyHold is how long a key counts as held after its last press
// when no hold time is configured.
const DefaultKeyHold = 150 * time.Millisecond

// KeyMapper translates Bubble Tea key messages to media events and keeps
// the queue the frame driver drains. Terminals report presses and
// auto-repeats but no releases, so a key is held while its last press is
// younger than the hold time.
type KeyMapper struct {
	mu        sync.Mutex
	hold      time.Duration
	now       func() time.Time
	queue     []media.Event
	lastPress map[media.Key]time.Time
}

// NewKeyMapper creates a key mapper. A non-positive hold uses
// DefaultKeyHold.
func NewKeyMapper(hold time.Duration) *KeyMapper {
	if hold <= 0 {
		hold = DefaultKeyHold
	}
	return &KeyMapper{
		hold:      hold,
		now:       time.Now,
		lastPress: make(map[media.Key]time.Time),
	}
}

// MapKey translates a key message to a media key.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) media.Key {
	return media.ParseKey(msg.String())
}

// Press queues a key press and refreshes its held state. A press that
// arrives while the key is still held is marked as a repeat.
func (km *KeyMapper) Press(msg tea.KeyMsg) {
	k := km.MapKey(msg)

	km.mu.Lock()
	defer km.mu.Unlock()

	now := km.now()
	ev := media.KeyDownEvent(k)
	if k != media.KeyUnknown {
		if last, ok := km.lastPress[k]; ok && now.Sub(last) < km.hold {
			ev.Repeat = true
		}
		km.lastPress[k] = now
	}
	km.queue = append(km.queue, ev)
}

// PushQuit queues a quit request.
func (km *KeyMapper) PushQuit() {
	km.mu.Lock()
	defer km.mu.Unlock()
	km.queue = append(km.queue, media.QuitEvent())
}

// Next pops the oldest queued event.
func (km *KeyMapper) Next() (media.Event, bool) {
	km.mu.Lock()
	defer km.mu.Unlock()
	if len(km.queue) == 0 {
		return media.Event{}, false
	}
	ev := km.queue[0]
	km.queue = km.queue[1:]
	return ev, true
}

// Held reports whether k was pressed within the hold time.
func (km *KeyMapper) Held(k media.Key) bool {
	km.mu.Lock()
	defer km.mu.Unlock()
	last, ok := km.lastPress[k]
	return ok && km.now().Sub(last) < km.hold
}

// Reset drops queued events and held state.
func (km *KeyMapper) Reset() {
	km.mu.Lock()
	defer km.mu.Unlock()
	km.queue = nil
	km.lastPress = make(map[media.Key]time.Time)
}
