package tui

import (
	"fmt"
	"image"
	"math"

	xdraw "golang.org/x/image/draw"

	"github.com/vovakirdan/bounce/internal/core"
	"github.com/vovakirdan/bounce/internal/media"
)

// frameSink receives every presented frame.
type frameSink interface {
	show(frame string)
}

// Renderer composes textures onto a pixel canvas two pixel rows per
// terminal row, then presents it as half-block cells. Draw calls use
// logical window coordinates that are scaled to the canvas.
type Renderer struct {
	target  *image.RGBA
	screen  *core.Screen
	painter *Painter
	sink    frameSink
	color   core.Color
	sx, sy  float32
	bounds  core.FRect
}

var _ media.Renderer = (*Renderer)(nil)

// NewRenderer creates a renderer mapping a logicalW x logicalH window onto
// cols x rows terminal cells.
func NewRenderer(logicalW, logicalH, cols, rows int, painter *Painter, sink frameSink) *Renderer {
	cols = max(cols, 1)
	rows = max(rows, 1)
	screen := core.NewScreen(cols, rows)
	return &Renderer{
		target:  image.NewRGBA(image.Rect(0, 0, cols, screen.PixelHeight())),
		screen:  screen,
		painter: painter,
		sink:    sink,
		color:   core.ColorBlack,
		sx:      float32(cols) / float32(logicalW),
		sy:      float32(screen.PixelHeight()) / float32(logicalH),
		bounds:  core.NewFRect(0, 0, float32(logicalW), float32(logicalH)),
	}
}

func (r *Renderer) LoadTexture(path string) (media.Texture, error) {
	img, err := decodeImage(path)
	if err != nil {
		return nil, err
	}
	return &Texture{img: img}, nil
}

func (r *Renderer) TextureFromSurface(s media.Surface) (media.Texture, error) {
	src, ok := s.(*Surface)
	if !ok {
		return nil, fmt.Errorf("tui: foreign surface %T", s)
	}
	if src.img == nil {
		return nil, fmt.Errorf("tui: surface already freed")
	}
	return &Texture{img: src.img}, nil
}

func (r *Renderer) SetDrawColor(c core.Color) error {
	r.color = c
	return nil
}

// Clear fills the canvas with the draw color.
func (r *Renderer) Clear() error {
	xdraw.Draw(r.target, r.target.Bounds(), image.NewUniform(r.color.NRGBA()), image.Point{}, xdraw.Src)
	return nil
}

// Copy scales the texture into dst, or over the whole canvas when dst is
// nil. Parts outside the canvas are clipped; a dst entirely outside the
// window draws nothing.
func (r *Renderer) Copy(t media.Texture, dst *core.FRect) error {
	tex, ok := t.(*Texture)
	if !ok {
		return fmt.Errorf("tui: foreign texture %T", t)
	}
	if tex.img == nil {
		return fmt.Errorf("tui: texture destroyed")
	}
	rect := r.target.Bounds()
	if dst != nil {
		if !dst.Intersects(r.bounds) {
			return nil
		}
		rect = r.toCanvas(*dst)
	}
	xdraw.NearestNeighbor.Scale(r.target, rect, tex.img, tex.img.Bounds(), xdraw.Over, nil)
	return nil
}

// toCanvas converts a logical rectangle to canvas pixels, never narrower
// than one pixel.
func (r *Renderer) toCanvas(f core.FRect) image.Rectangle {
	s := f.Scale(r.sx, r.sy)
	x0 := int(math.Floor(float64(s.X)))
	y0 := int(math.Floor(float64(s.Y)))
	x1 := int(math.Ceil(float64(s.Right())))
	y1 := int(math.Ceil(float64(s.Bottom())))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return image.Rect(x0, y0, x1, y1)
}

// Present converts the canvas to cells and hands the frame to the sink.
func (r *Renderer) Present() {
	for y := 0; y < r.screen.Height(); y++ {
		for x := 0; x < r.screen.Width(); x++ {
			r.screen.SetPixels(x, y, pixel(r.target, x, y*2), pixel(r.target, x, y*2+1))
		}
	}
	if r.sink != nil {
		r.sink.show(r.painter.RenderScreen(r.screen))
	}
}

func (r *Renderer) Destroy() error {
	r.sink = nil
	return nil
}

// Screen returns the cell buffer of the last presented frame.
func (r *Renderer) Screen() *core.Screen {
	return r.screen
}

func pixel(img *image.RGBA, x, y int) core.Color {
	c := img.RGBAAt(x, y)
	return core.Opaque(c.R, c.G, c.B)
}
