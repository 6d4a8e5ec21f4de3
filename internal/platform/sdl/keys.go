package sdl

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/vovakirdan/bounce/internal/media"
)

// scancodes locate held keys in the keyboard state array. Both input modes
// use physical key positions, so bindings do not move with the layout.
var scancodes = map[media.Key]sdl.Scancode{
	media.KeyEscape: sdl.SCANCODE_ESCAPE,
	media.KeySpace:  sdl.SCANCODE_SPACE,
	media.KeyEnter:  sdl.SCANCODE_RETURN,
	media.KeyUp:     sdl.SCANCODE_UP,
	media.KeyDown:   sdl.SCANCODE_DOWN,
	media.KeyLeft:   sdl.SCANCODE_LEFT,
	media.KeyRight:  sdl.SCANCODE_RIGHT,
	media.KeyW:      sdl.SCANCODE_W,
	media.KeyA:      sdl.SCANCODE_A,
	media.KeyS:      sdl.SCANCODE_S,
	media.KeyD:      sdl.SCANCODE_D,
	media.KeyQ:      sdl.SCANCODE_Q,
}

var keysByScancode = func() map[sdl.Scancode]media.Key {
	m := make(map[sdl.Scancode]media.Key, len(scancodes)+1)
	for k, sc := range scancodes {
		m[sc] = k
	}
	m[sdl.SCANCODE_KP_ENTER] = media.KeyEnter
	return m
}()

// translateKey maps an SDL scancode to a media key. ctrl reports whether a
// control modifier was down.
func translateKey(sc sdl.Scancode, ctrl bool) media.Key {
	if sc == sdl.SCANCODE_C && ctrl {
		return media.KeyCtrlC
	}
	if k, ok := keysByScancode[sc]; ok {
		return k
	}
	return media.KeyUnknown
}
