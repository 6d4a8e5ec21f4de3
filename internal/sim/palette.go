// Package sim holds the per-frame simulation state: the clear color, the
// bouncing text element and the keyboard-driven sprite. Nothing here touches
// a media backend; the frame driver feeds inputs in and reads positions out.
package sim

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/bounce/internal/core"
)

// Palette owns the clear color and the generator it is drawn from.
type Palette struct {
	rng   *rand.Rand
	seed  int64
	color core.Color
}

// NewPalette seeds the generator once. A zero seed uses the current time.
// The initial color is opaque black.
func NewPalette(seed int64) *Palette {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Palette{
		rng:   rand.New(rand.NewSource(seed)),
		seed:  seed,
		color: core.ColorBlack,
	}
}

// Seed returns the effective seed.
func (p *Palette) Seed() int64 {
	return p.seed
}

// Color returns the current clear color.
func (p *Palette) Color() core.Color {
	return p.color
}

// Resample draws a new opaque color, each channel uniform in [0, 255].
func (p *Palette) Resample() core.Color {
	p.color = core.Color{
		R: uint8(p.rng.Intn(256)),
		G: uint8(p.rng.Intn(256)),
		B: uint8(p.rng.Intn(256)),
		A: 255,
	}
	return p.color
}
