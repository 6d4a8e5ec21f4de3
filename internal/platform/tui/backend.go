// Package tui implements the media backend in a terminal. The window is a
// Bubble Tea program on the alternate screen, frames are drawn with
// half-block cells styled by lipgloss, text is rasterized with freetype and
// audio plays through the beep speaker.
package tui

import (
	"errors"
	"os"
	"time"

	"golang.org/x/term"

	"github.com/vovakirdan/bounce/internal/core"
	"github.com/vovakirdan/bounce/internal/media"
	"github.com/vovakirdan/bounce/internal/registry"
)

// ID is the registry ID of this backend.
const ID = "tui"

// statusRows is the number of terminal rows under the canvas.
const statusRows = 1

func init() {
	registry.Register(ID, New)
}

var (
	errNotTerminal = errors.New("tui: stdout is not a terminal")
	errNoDisplay   = errors.New("tui: display not initialized")
	errNoText      = errors.New("tui: text not initialized")
	errNoAudio     = errors.New("tui: audio not initialized")
)

// Backend drives a terminal.
type Backend struct {
	keys  *KeyMapper
	theme Theme
	audio audioDevice

	display    bool
	text       bool
	cols, rows int
}

// New creates the backend. Nothing is initialized until InitDisplay.
func New(opts media.Options) media.Backend {
	return &Backend{
		keys:  NewKeyMapper(opts.KeyHold),
		theme: DefaultTheme(),
	}
}

var _ media.Backend = (*Backend)(nil)

func (b *Backend) ID() string    { return ID }
func (b *Backend) Title() string { return "Terminal (bubbletea, half-block pixels)" }

// InitDisplay checks that stdout is a terminal and reads its size.
func (b *Backend) InitDisplay() error {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return errNotTerminal
	}
	w, h, err := term.GetSize(fd)
	if err != nil {
		return err
	}
	b.cols = max(w, 1)
	b.rows = max(h-statusRows, 1)
	b.display = true
	return nil
}

func (b *Backend) QuitDisplay() {
	b.display = false
	b.keys.Reset()
}

func (b *Backend) InitText() error {
	b.text = true
	return nil
}

func (b *Backend) QuitText() { b.text = false }

func (b *Backend) InitAudio(spec core.AudioSpec) error {
	return b.audio.init(spec)
}

func (b *Backend) QuitAudio() { b.audio.close() }
func (b *Backend) HaltAudio() { b.audio.halt() }

// CreateWindow starts the Bubble Tea program.
func (b *Backend) CreateWindow(title string, width, height int) (media.Window, error) {
	if !b.display {
		return nil, errNoDisplay
	}
	return openWindow(title, width, height, b.cols, b.rows, b.keys, b.theme), nil
}

func (b *Backend) LoadSurface(path string) (media.Surface, error) {
	img, err := decodeImage(path)
	if err != nil {
		return nil, err
	}
	return &Surface{img: img}, nil
}

func (b *Backend) OpenFont(path string, size int) (media.Font, error) {
	if !b.text {
		return nil, errNoText
	}
	return openFont(path, size)
}

func (b *Backend) LoadSound(path string) (media.Sound, error) {
	if !b.audio.open {
		return nil, errNoAudio
	}
	return loadSound(&b.audio, path)
}

func (b *Backend) LoadMusic(path string) (media.Music, error) {
	if !b.audio.open {
		return nil, errNoAudio
	}
	return loadMusic(&b.audio, path)
}

func (b *Backend) PollEvent() (media.Event, bool) {
	return b.keys.Next()
}

func (b *Backend) KeyHeld(k media.Key) bool {
	return b.keys.Held(k)
}

func (b *Backend) Delay(d time.Duration) {
	time.Sleep(d)
}
