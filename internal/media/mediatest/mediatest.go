// Package mediatest provides an in-memory media backend for tests. Every
// acquisition and release is appended to an instrumented call log, failures
// can be injected by step name, and input can be scripted per frame.
package mediatest

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/vovakirdan/bounce/internal/core"
	"github.com/vovakirdan/bounce/internal/media"
)

// Default sizes reported for decoded images.
const (
	DefaultSurfaceW = 64
	DefaultSurfaceH = 64
	GlyphW          = 40 // Per rendered character
	GlyphH          = 90
)

// Backend is a scripted media.Backend.
type Backend struct {
	mu sync.Mutex

	// Log holds every acquisition and release in call order, e.g.
	// "init:display", "load:images/background.png", "destroy:window".
	Log []string

	// Played lists the paths of sounds and music started, in order.
	Played []string

	// Delays records every pacing delay.
	Delays []time.Duration

	// Renderer is the last renderer created.
	Renderer *Renderer

	// Sizes overrides the reported size of a surface or texture by id.
	Sizes map[string][2]int

	failOn    map[string]error
	queue     []media.Event
	script    map[int][]media.Event
	held      map[media.Key]bool
	heldAt    map[int][]media.Key
	frame     int
	audioOpen bool
}

// New creates an empty backend.
func New() *Backend {
	return &Backend{
		Sizes:  make(map[string][2]int),
		failOn: make(map[string]error),
		script: make(map[int][]media.Event),
		held:   make(map[media.Key]bool),
		heldAt: make(map[int][]media.Key),
	}
}

var _ media.Backend = (*Backend)(nil)

// Fail makes the named step return err. Step names are the acquisition
// entries of Log, e.g. "create:renderer" or "load:sounds/SDL.ogg".
func (b *Backend) Fail(step string, err error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failOn[step] = err
}

// Push queues events for the next PollEvent calls.
func (b *Backend) Push(events ...media.Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.queue = append(b.queue, events...)
}

// At queues events to become pending when the given frame starts. Frame 0
// is the first frame; a frame ends with its Delay call.
func (b *Backend) At(frame int, events ...media.Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.script[frame] = append(b.script[frame], events...)
}

// Hold marks keys as held until Unhold.
func (b *Backend) Hold(keys ...media.Key) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, k := range keys {
		b.held[k] = true
	}
}

// Unhold releases held keys.
func (b *Backend) Unhold(keys ...media.Key) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, k := range keys {
		delete(b.held, k)
	}
}

// HoldAt replaces the held key set when the given frame starts.
func (b *Backend) HoldAt(frame int, keys ...media.Key) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.heldAt[frame] = append([]media.Key{}, keys...)
}

// Frame returns the number of completed frames (Delay calls).
func (b *Backend) Frame() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.frame
}

// Calls returns the log entries starting with prefix, prefix removed.
func (b *Backend) Calls(prefix string) []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	var out []string
	for _, entry := range b.Log {
		if strings.HasPrefix(entry, prefix) {
			out = append(out, strings.TrimPrefix(entry, prefix))
		}
	}
	return out
}

// Count returns how many log entries equal entry.
func (b *Backend) Count(entry string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	n := 0
	for _, e := range b.Log {
		if e == entry {
			n++
		}
	}
	return n
}

// PlayCount returns how many times path was played.
func (b *Backend) PlayCount(path string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	n := 0
	for _, p := range b.Played {
		if p == path {
			n++
		}
	}
	return n
}

// step records an acquisition and returns the injected error, if any.
func (b *Backend) step(entry string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err, ok := b.failOn[entry]; ok {
		return err
	}
	b.Log = append(b.Log, entry)
	return nil
}

func (b *Backend) record(entry string) {
	b.mu.Lock()
	b.Log = append(b.Log, entry)
	b.mu.Unlock()
}

func (b *Backend) size(id string, w, h int) (int, int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if s, ok := b.Sizes[id]; ok {
		return s[0], s[1]
	}
	return w, h
}

func (b *Backend) ID() string    { return "fake" }
func (b *Backend) Title() string { return "In-memory test backend" }

func (b *Backend) InitDisplay() error { return b.step("init:display") }
func (b *Backend) QuitDisplay()       { b.record("quit:display") }
func (b *Backend) InitText() error    { return b.step("init:text") }
func (b *Backend) QuitText()          { b.record("quit:text") }

func (b *Backend) InitAudio(spec core.AudioSpec) error {
	if err := b.step("init:audio"); err != nil {
		return err
	}
	b.mu.Lock()
	b.audioOpen = true
	b.mu.Unlock()
	return nil
}

func (b *Backend) QuitAudio() {
	b.mu.Lock()
	b.audioOpen = false
	b.mu.Unlock()
	b.record("quit:audio")
}

func (b *Backend) HaltAudio() { b.record("halt:audio") }

func (b *Backend) CreateWindow(title string, width, height int) (media.Window, error) {
	if err := b.step("create:window"); err != nil {
		return nil, err
	}
	return &Window{b: b, Title: title, W: width, H: height}, nil
}

func (b *Backend) LoadSurface(path string) (media.Surface, error) {
	if err := b.step("load:" + path); err != nil {
		return nil, err
	}
	w, h := b.size(path, DefaultSurfaceW, DefaultSurfaceH)
	return &Surface{b: b, ID: path, W: w, H: h}, nil
}

func (b *Backend) OpenFont(path string, size int) (media.Font, error) {
	if err := b.step("open:" + path); err != nil {
		return nil, err
	}
	return &Font{b: b, Path: path, PointSize: size}, nil
}

func (b *Backend) LoadSound(path string) (media.Sound, error) {
	if err := b.step("load:" + path); err != nil {
		return nil, err
	}
	return &Sound{b: b, Path: path}, nil
}

func (b *Backend) LoadMusic(path string) (media.Music, error) {
	if err := b.step("load:" + path); err != nil {
		return nil, err
	}
	return &Music{b: b, Path: path}, nil
}

func (b *Backend) PollEvent() (media.Event, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if scripted, ok := b.script[b.frame]; ok {
		b.queue = append(b.queue, scripted...)
		delete(b.script, b.frame)
	}
	if len(b.queue) == 0 {
		return media.Event{}, false
	}
	ev := b.queue[0]
	b.queue = b.queue[1:]
	return ev, true
}

func (b *Backend) KeyHeld(k media.Key) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if keys, ok := b.heldAt[b.frame]; ok {
		b.held = make(map[media.Key]bool, len(keys))
		for _, hk := range keys {
			b.held[hk] = true
		}
		delete(b.heldAt, b.frame)
	}
	return b.held[k]
}

func (b *Backend) Delay(d time.Duration) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.Delays = append(b.Delays, d)
	b.frame++
}

// Window is a fake window.
type Window struct {
	b     *Backend
	Title string
	W, H  int
	Icon  string
}

func (w *Window) SetIcon(icon media.Surface) error {
	if err := w.b.step("set:icon"); err != nil {
		return err
	}
	if s, ok := icon.(*Surface); ok {
		w.Icon = s.ID
	}
	return nil
}

func (w *Window) CreateRenderer() (media.Renderer, error) {
	if err := w.b.step("create:renderer"); err != nil {
		return nil, err
	}
	r := &Renderer{b: w.b, W: w.W, H: w.H, Color: core.ColorBlack}
	w.b.mu.Lock()
	w.b.Renderer = r
	w.b.mu.Unlock()
	return r, nil
}

func (w *Window) Destroy() error {
	w.b.record("destroy:window")
	return nil
}

// Renderer is a fake draw context. Ops holds the draw calls of every frame
// since the last Present; Frames holds the completed frames.
type Renderer struct {
	b      *Backend
	W, H   int
	Color  core.Color
	Ops    []string
	Frames [][]string
}

func (r *Renderer) LoadTexture(path string) (media.Texture, error) {
	if err := r.b.step("load:" + path); err != nil {
		return nil, err
	}
	w, h := r.b.size(path, DefaultSurfaceW, DefaultSurfaceH)
	return &Texture{b: r.b, ID: path, W: w, H: h}, nil
}

func (r *Renderer) TextureFromSurface(s media.Surface) (media.Texture, error) {
	src, ok := s.(*Surface)
	if !ok {
		return nil, fmt.Errorf("mediatest: foreign surface %T", s)
	}
	id := "texture(" + src.ID + ")"
	if err := r.b.step("create:" + id); err != nil {
		return nil, err
	}
	w, h := r.b.size(id, src.W, src.H)
	return &Texture{b: r.b, ID: id, W: w, H: h}, nil
}

func (r *Renderer) SetDrawColor(c core.Color) error {
	r.Color = c
	return nil
}

func (r *Renderer) Clear() error {
	r.Ops = append(r.Ops, "clear "+r.Color.Hex())
	return nil
}

func (r *Renderer) Copy(t media.Texture, dst *core.FRect) error {
	tex, ok := t.(*Texture)
	if !ok {
		return fmt.Errorf("mediatest: foreign texture %T", t)
	}
	if dst == nil {
		r.Ops = append(r.Ops, "copy "+tex.ID+" full")
		return nil
	}
	r.Ops = append(r.Ops, fmt.Sprintf("copy %s %g,%g %gx%g", tex.ID, dst.X, dst.Y, dst.W, dst.H))
	return nil
}

func (r *Renderer) Present() {
	r.Ops = append(r.Ops, "present")
	r.Frames = append(r.Frames, r.Ops)
	r.Ops = nil
}

func (r *Renderer) Destroy() error {
	r.b.record("destroy:renderer")
	return nil
}

// Texture is a fake texture.
type Texture struct {
	b    *Backend
	ID   string
	W, H int
}

func (t *Texture) Size() (float32, float32, error) {
	return float32(t.W), float32(t.H), nil
}

func (t *Texture) Destroy() error {
	t.b.record("destroy:" + t.ID)
	return nil
}

// Surface is a fake decoded image.
type Surface struct {
	b    *Backend
	ID   string
	W, H int
}

func (s *Surface) Size() (int, int) { return s.W, s.H }
func (s *Surface) Free()            { s.b.record("free:" + s.ID) }

// Font is a fake font. Rendered surfaces are GlyphW x GlyphH per rune.
type Font struct {
	b         *Backend
	Path      string
	PointSize int
}

func (f *Font) Render(text string, c core.Color) (media.Surface, error) {
	id := "text:" + text
	if err := f.b.step("render:" + id); err != nil {
		return nil, err
	}
	w, h := f.b.size(id, GlyphW*len([]rune(text)), GlyphH)
	return &Surface{b: f.b, ID: id, W: w, H: h}, nil
}

func (f *Font) Close() { f.b.record("close:" + f.Path) }

// Sound is a fake sound effect.
type Sound struct {
	b    *Backend
	Path string
}

func (s *Sound) Play() error {
	s.b.mu.Lock()
	defer s.b.mu.Unlock()
	if !s.b.audioOpen {
		return fmt.Errorf("mediatest: audio device closed")
	}
	s.b.Played = append(s.b.Played, s.Path)
	return nil
}

func (s *Sound) Free() { s.b.record("free:" + s.Path) }

// Music is a fake music stream.
type Music struct {
	b    *Backend
	Path string
}

func (m *Music) PlayLoop() error {
	if err := m.b.step("play:" + m.Path); err != nil {
		return err
	}
	m.b.mu.Lock()
	m.b.Played = append(m.b.Played, m.Path)
	m.b.mu.Unlock()
	return nil
}

func (m *Music) Free() { m.b.record("free:" + m.Path) }
