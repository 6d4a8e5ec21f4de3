package tui

import (
	"fmt"
	"image"
	"os"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"

	"github.com/vovakirdan/bounce/internal/core"
	"github.com/vovakirdan/bounce/internal/media"
)

// textDPI makes one point one pixel.
const textDPI = 72

// Font is a parsed TrueType font at a fixed point size.
type Font struct {
	ttf  *truetype.Font
	size float64
}

var _ media.Font = (*Font)(nil)

// openFont parses a TrueType file.
func openFont(path string, size int) (*Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	ttf, err := freetype.ParseFont(data)
	if err != nil {
		return nil, fmt.Errorf("parse font %s: %w", path, err)
	}
	return &Font{ttf: ttf, size: float64(size)}, nil
}

// Render rasterizes text onto a transparent surface sized to the text's
// advance width and the font's line height.
func (f *Font) Render(text string, c core.Color) (media.Surface, error) {
	if f.ttf == nil {
		return nil, fmt.Errorf("tui: font closed")
	}

	face := truetype.NewFace(f.ttf, &truetype.Options{
		Size:    f.size,
		DPI:     textDPI,
		Hinting: font.HintingFull,
	})
	defer face.Close()

	metrics := face.Metrics()
	w := font.MeasureString(face, text).Ceil()
	h := (metrics.Ascent + metrics.Descent).Ceil()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("tui: text %q has no extent", text)
	}

	rgba := image.NewRGBA(image.Rect(0, 0, w, h))

	ctx := freetype.NewContext()
	ctx.SetDPI(textDPI)
	ctx.SetFont(f.ttf)
	ctx.SetFontSize(f.size)
	ctx.SetHinting(font.HintingFull)
	ctx.SetClip(rgba.Bounds())
	ctx.SetDst(rgba)
	ctx.SetSrc(image.NewUniform(c.NRGBA()))

	if _, err := ctx.DrawString(text, freetype.Pt(0, metrics.Ascent.Ceil())); err != nil {
		return nil, err
	}
	return &Surface{img: rgba}, nil
}

// Close drops the parsed font.
func (f *Font) Close() { f.ttf = nil }
