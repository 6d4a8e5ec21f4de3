package tui

import (
	"image"
	"image/color"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/bounce/internal/core"
)

// plainPainter styles through a renderer with no color support, so the
// output is the bare cell runes.
func plainPainter() *Painter {
	return NewPainter(lipgloss.NewRenderer(io.Discard))
}

type recordSink struct {
	frames []string
}

func (s *recordSink) show(frame string) {
	s.frames = append(s.frames, frame)
}

func solid(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestRenderScreenPlain(t *testing.T) {
	s := core.NewScreen(4, 2)
	s.Set(0, 0, core.Cell{Rune: 'S', Fg: core.ColorWhite, Bg: core.ColorBlack})
	s.SetPixels(3, 1, core.ColorWhite, core.ColorBlack)

	got := plainPainter().RenderScreen(s)
	if got != s.String() {
		t.Errorf("RenderScreen() = %q, expected %q", got, s.String())
	}
}

func TestPainterStyleCache(t *testing.T) {
	p := plainPainter()
	for i := 0; i < maxCachedStyles+10; i++ {
		p.style(core.Opaque(uint8(i), uint8(i>>8), 0), core.ColorBlack)
	}
	if len(p.styles) > maxCachedStyles {
		t.Errorf("style cache holds %d entries, expected at most %d", len(p.styles), maxCachedStyles)
	}
}

func TestRendererComposesFrame(t *testing.T) {
	sink := &recordSink{}
	// 800x600 onto 200x75 cells = 200x150 pixels, a quarter scale
	r := NewRenderer(800, 600, 200, 75, plainPainter(), sink)

	red := &Texture{img: solid(10, 10, color.RGBA{255, 0, 0, 255})}

	if err := r.SetDrawColor(core.Opaque(0, 0, 255)); err != nil {
		t.Fatal(err)
	}
	if err := r.Clear(); err != nil {
		t.Fatal(err)
	}
	if err := r.Copy(red, &core.FRect{X: 0, Y: 0, W: 400, H: 300}); err != nil {
		t.Fatalf("Copy() failed: %v", err)
	}
	r.Present()

	if len(sink.frames) != 1 {
		t.Fatalf("sink got %d frames, expected 1", len(sink.frames))
	}

	red0, blue := core.Opaque(255, 0, 0), core.Opaque(0, 0, 255)
	tests := []struct {
		x, y     int
		top, bot core.Color
	}{
		{0, 0, red0, red0},
		{99, 36, red0, red0},
		{0, 37, red0, blue}, // 300 logical rows end on pixel row 75
		{100, 0, blue, blue},
		{0, 74, blue, blue},
	}
	s := r.Screen()
	for _, tc := range tests {
		cell := s.Get(tc.x, tc.y)
		if cell.Rune != core.HalfBlock {
			t.Errorf("cell (%d,%d) rune = %q, expected half block", tc.x, tc.y, cell.Rune)
		}
		if cell.Fg != tc.top || cell.Bg != tc.bot {
			t.Errorf("cell (%d,%d) = %v/%v, expected %v/%v", tc.x, tc.y, cell.Fg, cell.Bg, tc.top, tc.bot)
		}
	}
}

func TestRendererClipsOutside(t *testing.T) {
	r := NewRenderer(800, 600, 200, 75, plainPainter(), nil)
	green := &Texture{img: solid(4, 4, color.RGBA{0, 255, 0, 255})}

	if err := r.Clear(); err != nil {
		t.Fatal(err)
	}
	// Entirely off canvas on the left, partially off on the right
	if err := r.Copy(green, &core.FRect{X: -100, Y: 0, W: 40, H: 40}); err != nil {
		t.Fatalf("Copy() failed: %v", err)
	}
	if err := r.Copy(green, &core.FRect{X: 780, Y: 0, W: 100, H: 8}); err != nil {
		t.Fatalf("Copy() failed: %v", err)
	}
	r.Present()

	s := r.Screen()
	if c := s.Get(0, 0); c.Fg != core.ColorBlack {
		t.Errorf("cell (0,0) = %v, expected black", c.Fg)
	}
	if c := s.Get(199, 0); c.Fg != core.Opaque(0, 255, 0) {
		t.Errorf("cell (199,0) = %v, expected green", c.Fg)
	}
}

func TestRendererFullCopy(t *testing.T) {
	sink := &recordSink{}
	r := NewRenderer(800, 600, 8, 2, plainPainter(), sink)
	white := &Texture{img: solid(3, 3, color.RGBA{255, 255, 255, 255})}

	if err := r.Copy(white, nil); err != nil {
		t.Fatalf("Copy() failed: %v", err)
	}
	r.Present()

	expected := strings.Repeat(string(core.HalfBlock), 8) + "\n" + strings.Repeat(string(core.HalfBlock), 8)
	if sink.frames[0] != expected {
		t.Errorf("frame = %q, expected %q", sink.frames[0], expected)
	}
	for y := 0; y < 2; y++ {
		for x := 0; x < 8; x++ {
			if c := r.Screen().Get(x, y); c.Fg != core.ColorWhite || c.Bg != core.ColorWhite {
				t.Fatalf("cell (%d,%d) = %v/%v, expected white", x, y, c.Fg, c.Bg)
			}
		}
	}
}

func TestRendererDestroyedTexture(t *testing.T) {
	r := NewRenderer(800, 600, 10, 10, plainPainter(), nil)
	tex := &Texture{img: solid(2, 2, color.RGBA{1, 2, 3, 255})}
	if err := tex.Destroy(); err != nil {
		t.Fatal(err)
	}
	if err := r.Copy(tex, nil); err == nil {
		t.Error("Copy() of a destroyed texture should fail")
	}
	if _, _, err := tex.Size(); err == nil {
		t.Error("Size() of a destroyed texture should fail")
	}
}
