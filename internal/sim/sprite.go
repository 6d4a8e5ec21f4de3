package sim

import "github.com/vovakirdan/bounce/internal/core"

// Sprite is the keyboard-driven element. It has no velocity of its own:
// each frame it moves by Step along every held direction.
type Sprite struct {
	Rect core.FRect
	Step float32
}

// NewSprite places a sprite of the given size at the origin.
func NewSprite(w, h, step float32) *Sprite {
	return &Sprite{Rect: core.NewFRect(0, 0, w, h), Step: step}
}

// Advance applies the held directions. Opposite directions cancel and the
// position is never clamped.
func (s *Sprite) Advance(dirs core.Direction) {
	if dirs.Has(core.DirLeft) {
		s.Rect.X -= s.Step
	}
	if dirs.Has(core.DirRight) {
		s.Rect.X += s.Step
	}
	if dirs.Has(core.DirUp) {
		s.Rect.Y -= s.Step
	}
	if dirs.Has(core.DirDown) {
		s.Rect.Y += s.Step
	}
}
