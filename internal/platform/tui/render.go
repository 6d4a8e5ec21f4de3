package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/bounce/internal/core"
)

// maxCachedStyles bounds the style cache; the clear color changes at
// random, so the set of color pairs is open ended.
const maxCachedStyles = 4096

// Painter converts Screen buffers to styled strings.
type Painter struct {
	renderer *lipgloss.Renderer
	styles   map[[2]core.Color]lipgloss.Style
}

// NewPainter creates a painter that styles through r. A nil r uses the
// default lipgloss renderer.
func NewPainter(r *lipgloss.Renderer) *Painter {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &Painter{
		renderer: r,
		styles:   make(map[[2]core.Color]lipgloss.Style),
	}
}

// style returns the style for a foreground/background pair.
func (p *Painter) style(fg, bg core.Color) lipgloss.Style {
	key := [2]core.Color{fg, bg}
	if s, ok := p.styles[key]; ok {
		return s
	}
	if len(p.styles) >= maxCachedStyles {
		p.styles = make(map[[2]core.Color]lipgloss.Style)
	}
	s := p.renderer.NewStyle().
		Foreground(lipgloss.Color(fg.Hex())).
		Background(lipgloss.Color(bg.Hex()))
	p.styles[key] = s
	return s
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func (p *Painter) RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*4 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same colors for efficiency
		x := 0
		for x < s.Width() {
			cell := s.Get(x, y)
			fg, bg := cell.Fg, cell.Bg

			// Collect consecutive cells with same colors
			var run strings.Builder
			for x < s.Width() {
				cell = s.Get(x, y)
				if cell.Fg != fg || cell.Bg != bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(p.style(fg, bg).Render(run.String()))
		}
	}
	return sb.String()
}
