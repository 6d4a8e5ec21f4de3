// Package media defines the narrow capability interfaces the program uses to
// reach its external multimedia services: display, 2D drawing, image and
// font decoding, audio playback and input. Implementations live under
// internal/platform.
package media

import (
	"time"

	"github.com/vovakirdan/bounce/internal/core"
)

// Backend is the set of services a media implementation provides.
// Subsystem Init calls are paired with Quit calls; the lifecycle manager
// owns the ordering.
type Backend interface {
	// ID returns a unique identifier for the backend (e.g. "sdl").
	ID() string

	// Title returns a human-readable description.
	Title() string

	InitDisplay() error
	QuitDisplay()

	InitText() error
	QuitText()

	// InitAudio initializes the mixer and opens the output device.
	InitAudio(spec core.AudioSpec) error
	// QuitAudio closes the device and shuts the mixer down.
	QuitAudio()
	// HaltAudio stops every playing channel and the music stream.
	HaltAudio()

	CreateWindow(title string, width, height int) (Window, error)

	// LoadSurface decodes an image into CPU memory.
	LoadSurface(path string) (Surface, error)
	OpenFont(path string, size int) (Font, error)
	LoadSound(path string) (Sound, error)
	LoadMusic(path string) (Music, error)

	// PollEvent returns the next pending event, or false when the queue
	// is empty. It never blocks.
	PollEvent() (Event, bool)

	// KeyHeld reports whether a key is currently held down. This is the
	// instantaneous keyboard state, independent of the event queue.
	KeyHeld(k Key) bool

	// Delay blocks the calling goroutine for d.
	Delay(d time.Duration)
}

// Window is a top-level display surface.
type Window interface {
	SetIcon(icon Surface) error
	CreateRenderer() (Renderer, error)
	Destroy() error
}

// Renderer is a draw context bound to one window.
type Renderer interface {
	LoadTexture(path string) (Texture, error)
	TextureFromSurface(s Surface) (Texture, error)

	// SetDrawColor sets the color used by Clear.
	SetDrawColor(c core.Color) error
	Clear() error

	// Copy draws the whole texture into dst. A nil dst covers the full
	// render target.
	Copy(t Texture, dst *core.FRect) error
	Present()

	Destroy() error
}

// Texture is an image uploaded to a renderer.
type Texture interface {
	Size() (w, h float32, err error)
	Destroy() error
}

// Surface is a decoded image in CPU memory.
type Surface interface {
	Size() (w, h int)
	Free()
}

// Font is an opened font face at a fixed point size.
type Font interface {
	// Render rasterizes text into a new surface owned by the caller.
	Render(text string, c core.Color) (Surface, error)
	Close()
}

// Sound is a decoded short clip.
type Sound interface {
	// Play starts the clip once on any free channel without blocking and
	// without interrupting other playing sounds.
	Play() error
	Free()
}

// Music is a streamable track.
type Music interface {
	// PlayLoop starts the track looping forever.
	PlayLoop() error
	Free()
}

// Options carries backend-specific settings from the configuration file.
type Options struct {
	// KeyHold is how long a key counts as held after its last press on
	// backends that do not report key releases.
	KeyHold time.Duration
}
