// Package sdl implements the media backend on SDL2 through go-sdl2: a native
// window with a hardware renderer, SDL_image decoding, SDL_ttf text and
// SDL_mixer audio.
package sdl

import (
	"fmt"
	"runtime"
	"time"

	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/mix"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"

	"github.com/vovakirdan/bounce/internal/core"
	"github.com/vovakirdan/bounce/internal/media"
	"github.com/vovakirdan/bounce/internal/registry"
)

// ID is the registry ID of this backend.
const ID = "sdl"

func init() {
	// SDL must be driven from the main OS thread.
	runtime.LockOSThread()
	registry.Register(ID, New)
}

// Backend drives SDL2.
type Backend struct{}

// New creates the backend. Nothing is initialized until InitDisplay.
func New(opts media.Options) media.Backend {
	return &Backend{}
}

var _ media.Backend = (*Backend)(nil)

func (b *Backend) ID() string    { return ID }
func (b *Backend) Title() string { return "SDL2 window (go-sdl2)" }

// InitDisplay starts SDL video and the PNG loader.
func (b *Backend) InitDisplay() error {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return err
	}
	if err := img.Init(img.INIT_PNG); err != nil {
		sdl.Quit()
		return err
	}
	return nil
}

func (b *Backend) QuitDisplay() {
	img.Quit()
	sdl.Quit()
}

func (b *Backend) InitText() error { return ttf.Init() }
func (b *Backend) QuitText()       { ttf.Quit() }

// InitAudio starts the audio subsystem and opens the mixer device.
func (b *Backend) InitAudio(spec core.AudioSpec) error {
	if err := sdl.InitSubSystem(sdl.INIT_AUDIO); err != nil {
		return err
	}
	if err := mix.Init(mix.INIT_OGG); err != nil {
		sdl.QuitSubSystem(sdl.INIT_AUDIO)
		return err
	}
	if err := mix.OpenAudio(spec.Frequency, mix.DEFAULT_FORMAT, spec.Channels, spec.ChunkSize); err != nil {
		mix.Quit()
		sdl.QuitSubSystem(sdl.INIT_AUDIO)
		return err
	}
	return nil
}

func (b *Backend) QuitAudio() {
	mix.CloseAudio()
	mix.Quit()
	sdl.QuitSubSystem(sdl.INIT_AUDIO)
}

// HaltAudio stops every channel and the music stream.
func (b *Backend) HaltAudio() {
	mix.HaltChannel(-1)
	mix.HaltMusic()
}

func (b *Backend) CreateWindow(title string, width, height int) (media.Window, error) {
	win, err := sdl.CreateWindow(title,
		int32(sdl.WINDOWPOS_CENTERED),
		int32(sdl.WINDOWPOS_CENTERED),
		int32(width), int32(height), uint32(sdl.WINDOW_SHOWN))
	if err != nil {
		return nil, err
	}
	return &Window{win: win}, nil
}

func (b *Backend) LoadSurface(path string) (media.Surface, error) {
	s, err := img.Load(path)
	if err != nil {
		return nil, err
	}
	return &Surface{s: s}, nil
}

func (b *Backend) OpenFont(path string, size int) (media.Font, error) {
	f, err := ttf.OpenFont(path, size)
	if err != nil {
		return nil, err
	}
	return &Font{f: f}, nil
}

func (b *Backend) LoadSound(path string) (media.Sound, error) {
	c, err := mix.LoadWAV(path)
	if err != nil {
		return nil, err
	}
	return &Sound{c: c}, nil
}

func (b *Backend) LoadMusic(path string) (media.Music, error) {
	m, err := mix.LoadMUS(path)
	if err != nil {
		return nil, err
	}
	return &Music{m: m}, nil
}

// PollEvent returns the next queued event. Events other than quit and key
// presses come back as media.EventOther.
func (b *Backend) PollEvent() (media.Event, bool) {
	e := sdl.PollEvent()
	if e == nil {
		return media.Event{}, false
	}
	switch t := e.(type) {
	case *sdl.QuitEvent:
		return media.QuitEvent(), true
	case *sdl.KeyboardEvent:
		if t.Type != sdl.KEYDOWN {
			break
		}
		ctrl := sdl.GetModState()&sdl.KMOD_CTRL != 0
		return media.Event{
			Kind:   media.EventKeyDown,
			Key:    translateKey(t.Keysym.Scancode, ctrl),
			Repeat: t.Repeat != 0,
		}, true
	}
	return media.Event{Kind: media.EventOther}, true
}

// KeyHeld reads the keyboard state array, current as of the last
// PollEvent.
func (b *Backend) KeyHeld(k media.Key) bool {
	sc, ok := scancodes[k]
	if !ok {
		return false
	}
	state := sdl.GetKeyboardState()
	return int(sc) < len(state) && state[sc] != 0
}

func (b *Backend) Delay(d time.Duration) {
	sdl.Delay(uint32(d / time.Millisecond))
}

// Window wraps an SDL window.
type Window struct {
	win *sdl.Window
}

func (w *Window) SetIcon(icon media.Surface) error {
	s, ok := icon.(*Surface)
	if !ok {
		return fmt.Errorf("sdl: foreign surface %T", icon)
	}
	w.win.SetIcon(s.s)
	return nil
}

func (w *Window) CreateRenderer() (media.Renderer, error) {
	r, err := sdl.CreateRenderer(w.win, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		return nil, err
	}
	return &Renderer{r: r}, nil
}

func (w *Window) Destroy() error {
	return w.win.Destroy()
}

// Renderer wraps an SDL renderer.
type Renderer struct {
	r *sdl.Renderer
}

func (r *Renderer) LoadTexture(path string) (media.Texture, error) {
	t, err := img.LoadTexture(r.r, path)
	if err != nil {
		return nil, err
	}
	return &Texture{t: t}, nil
}

func (r *Renderer) TextureFromSurface(s media.Surface) (media.Texture, error) {
	src, ok := s.(*Surface)
	if !ok {
		return nil, fmt.Errorf("sdl: foreign surface %T", s)
	}
	t, err := r.r.CreateTextureFromSurface(src.s)
	if err != nil {
		return nil, err
	}
	return &Texture{t: t}, nil
}

func (r *Renderer) SetDrawColor(c core.Color) error {
	return r.r.SetDrawColor(c.R, c.G, c.B, c.A)
}

func (r *Renderer) Clear() error {
	return r.r.Clear()
}

func (r *Renderer) Copy(t media.Texture, dst *core.FRect) error {
	tex, ok := t.(*Texture)
	if !ok {
		return fmt.Errorf("sdl: foreign texture %T", t)
	}
	if dst == nil {
		return r.r.Copy(tex.t, nil, nil)
	}
	return r.r.CopyF(tex.t, nil, &sdl.FRect{X: dst.X, Y: dst.Y, W: dst.W, H: dst.H})
}

func (r *Renderer) Present() {
	r.r.Present()
}

func (r *Renderer) Destroy() error {
	return r.r.Destroy()
}

// Texture wraps an SDL texture.
type Texture struct {
	t *sdl.Texture
}

func (t *Texture) Size() (float32, float32, error) {
	_, _, w, h, err := t.t.Query()
	if err != nil {
		return 0, 0, err
	}
	return float32(w), float32(h), nil
}

func (t *Texture) Destroy() error {
	return t.t.Destroy()
}

// Surface wraps an SDL surface.
type Surface struct {
	s *sdl.Surface
}

func (s *Surface) Size() (int, int) { return int(s.s.W), int(s.s.H) }
func (s *Surface) Free()            { s.s.Free() }

// Font wraps an SDL_ttf font.
type Font struct {
	f *ttf.Font
}

func (f *Font) Render(text string, c core.Color) (media.Surface, error) {
	s, err := f.f.RenderUTF8Blended(text, sdl.Color{R: c.R, G: c.G, B: c.B, A: c.A})
	if err != nil {
		return nil, err
	}
	return &Surface{s: s}, nil
}

func (f *Font) Close() { f.f.Close() }

// Sound wraps a mixer chunk.
type Sound struct {
	c *mix.Chunk
}

// Play starts the chunk once on the first free channel.
func (s *Sound) Play() error {
	_, err := s.c.Play(-1, 0)
	return err
}

func (s *Sound) Free() { s.c.Free() }

// Music wraps a mixer music stream.
type Music struct {
	m *mix.Music
}

func (m *Music) PlayLoop() error { return m.m.Play(-1) }
func (m *Music) Free()           { m.m.Free() }
