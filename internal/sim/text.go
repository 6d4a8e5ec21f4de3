package sim

import "github.com/vovakirdan/bounce/internal/core"

// Bounce is the set of axes whose velocity was reflected in one frame.
type Bounce uint8

const (
	BounceX Bounce = 1 << iota
	BounceY
)

// BounceNone means no edge was hit.
const BounceNone Bounce = 0

// Has reports whether axis is in the set.
func (b Bounce) Has(axis Bounce) bool {
	return b&axis == axis
}

// Count returns the number of bounced axes (0, 1 or 2).
func (b Bounce) Count() int {
	n := 0
	if b.Has(BounceX) {
		n++
	}
	if b.Has(BounceY) {
		n++
	}
	return n
}

func (b Bounce) String() string {
	switch b {
	case BounceNone:
		return "none"
	case BounceX:
		return "x"
	case BounceY:
		return "y"
	case BounceX | BounceY:
		return "x+y"
	default:
		return "invalid"
	}
}

// TextMover is the text element moving at constant speed and reflecting
// off the window edges.
type TextMover struct {
	Rect   core.FRect
	VX, VY float32
	Speed  float32
}

// NewTextMover places an element of the given size at the origin moving
// down and right at speed.
func NewTextMover(w, h, speed float32) *TextMover {
	return &TextMover{
		Rect:  core.NewFRect(0, 0, w, h),
		VX:    speed,
		VY:    speed,
		Speed: speed,
	}
}

// Advance moves the element by its velocity and then reflects each axis
// that is past an edge. The reflection only flips the velocity, so the
// element may sit outside the bounds for one frame before coming back.
// Every branch taken is reported, even when the velocity already points
// inward.
func (t *TextMover) Advance(boundsW, boundsH float32) Bounce {
	t.Rect.X += t.VX
	t.Rect.Y += t.VY

	bounced := BounceNone
	if t.Rect.X < 0 {
		t.VX = t.Speed
		bounced |= BounceX
	} else if t.Rect.Right() > boundsW {
		t.VX = -t.Speed
		bounced |= BounceX
	}
	if t.Rect.Y < 0 {
		t.VY = t.Speed
		bounced |= BounceY
	} else if t.Rect.Bottom() > boundsH {
		t.VY = -t.Speed
		bounced |= BounceY
	}
	return bounced
}
