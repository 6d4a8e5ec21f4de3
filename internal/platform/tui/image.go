package tui

import (
	"fmt"
	"image"
	_ "image/png"
	"os"

	"github.com/vovakirdan/bounce/internal/media"
)

// decodeImage reads an image file in any registered format.
func decodeImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

// Surface is a decoded image held in memory.
type Surface struct {
	img image.Image
}

var _ media.Surface = (*Surface)(nil)

// Size returns the image size in pixels.
func (s *Surface) Size() (int, int) {
	if s.img == nil {
		return 0, 0
	}
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

// Free drops the image.
func (s *Surface) Free() { s.img = nil }

// Texture is an image ready to be composed onto the canvas.
type Texture struct {
	img image.Image
}

var _ media.Texture = (*Texture)(nil)

// Size returns the logical texture size.
func (t *Texture) Size() (float32, float32, error) {
	if t.img == nil {
		return 0, 0, fmt.Errorf("tui: texture destroyed")
	}
	b := t.img.Bounds()
	return float32(b.Dx()), float32(b.Dy()), nil
}

// Destroy drops the image.
func (t *Texture) Destroy() error {
	t.img = nil
	return nil
}
