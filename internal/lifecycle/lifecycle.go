// Package lifecycle orders the initialization of the media subsystems and
// the acquisition of every resource, and tears them down in exact reverse
// order on every exit path.
package lifecycle

import (
	"errors"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bounce/internal/core"
	"github.com/vovakirdan/bounce/internal/media"
	"github.com/vovakirdan/bounce/internal/resource"
)

// Resource names as they appear on the release list.
const (
	ResDisplay     = "display"
	ResText        = "text"
	ResAudio       = "audio"
	ResWindow      = "window"
	ResRenderer    = "renderer"
	ResIcon        = "icon"
	ResBackground  = "background"
	ResTextImage   = "text-image"
	ResSprite      = "sprite"
	ResActionSound = "action-sound"
	ResBounceSound = "bounce-sound"
	ResMusic       = "music"
)

// ErrAlreadyInitialized is returned when Initialize runs twice.
var ErrAlreadyInitialized = errors.New("lifecycle: already initialized")

// Manager acquires subsystems and resources through a media backend and
// records each on an explicit release list.
type Manager struct {
	backend media.Backend
	cfg     core.RuntimeConfig
	logger  *log.Logger
	stack   *resource.Stack

	window   media.Window
	renderer media.Renderer
	icon     media.Surface
	audio    bool
	assets   *Assets

	initialized bool
	torndown    bool
}

// New creates a manager. Nothing is acquired until Initialize.
func New(backend media.Backend, cfg core.RuntimeConfig, logger *log.Logger) *Manager {
	m := &Manager{
		backend: backend,
		cfg:     cfg,
		logger:  logger,
	}
	m.stack = resource.NewStack(func(name string, err error) {
		m.logger.Warn("release failed", "resource", name, "error", err)
	})
	return m
}

// Initialize brings up the display, text and audio subsystems, creates the
// window and its draw context and sets the window icon, in that order.
// On failure nothing further is acquired; Teardown still releases what was.
func (m *Manager) Initialize() error {
	if m.initialized {
		return ErrAlreadyInitialized
	}
	m.initialized = true
	b := m.backend

	if err := b.InitDisplay(); err != nil {
		return &media.InitializationError{Step: "display", Err: err}
	}
	m.stack.Push(ResDisplay, func() error {
		b.QuitDisplay()
		return nil
	})

	if err := b.InitText(); err != nil {
		return &media.InitializationError{Step: "text", Err: err}
	}
	m.stack.Push(ResText, func() error {
		b.QuitText()
		return nil
	})

	if m.cfg.Audio {
		if err := b.InitAudio(m.cfg.AudioSpec); err != nil {
			return &media.InitializationError{Step: "audio", Err: err}
		}
		m.audio = true
		m.stack.Push(ResAudio, func() error {
			m.audio = false
			b.QuitAudio()
			return nil
		})
		m.logger.Debug("audio device open",
			"frequency", m.cfg.AudioSpec.Frequency,
			"channels", m.cfg.AudioSpec.Channels)
	}

	window, err := b.CreateWindow(m.cfg.Title, m.cfg.Width, m.cfg.Height)
	if err != nil {
		return &media.InitializationError{Step: "window", Err: err}
	}
	m.window = window
	m.stack.Push(ResWindow, window.Destroy)

	renderer, err := window.CreateRenderer()
	if err != nil {
		return &media.InitializationError{Step: "renderer", Err: err}
	}
	m.renderer = renderer
	m.stack.Push(ResRenderer, renderer.Destroy)

	icon, err := b.LoadSurface(IconPath)
	if err != nil {
		return &media.InitializationError{Step: "icon", Err: err}
	}
	m.icon = icon
	m.stack.Push(ResIcon, func() error {
		icon.Free()
		return nil
	})
	if err := window.SetIcon(icon); err != nil {
		return &media.InitializationError{Step: "icon", Err: err}
	}

	m.logger.Info("window created",
		"backend", b.ID(),
		"title", m.cfg.Title,
		"width", m.cfg.Width,
		"height", m.cfg.Height)
	return nil
}

// LoadAssets decodes the background, the glyph atlas, the sprite and, with
// audio, both sound effects and the music track. The font is only held
// while the atlas is rendered.
func (m *Manager) LoadAssets() (*Assets, error) {
	if m.renderer == nil {
		return nil, &media.AssetLoadError{Asset: "background", Path: BackgroundPath,
			Err: errors.New("no renderer")}
	}
	a := &Assets{}

	background, err := m.renderer.LoadTexture(BackgroundPath)
	if err != nil {
		return nil, &media.AssetLoadError{Asset: "background", Path: BackgroundPath, Err: err}
	}
	a.Background = background
	m.stack.Push(ResBackground, background.Destroy)

	if err := m.loadText(a); err != nil {
		return nil, err
	}

	sprite, err := m.renderer.TextureFromSurface(m.icon)
	if err != nil {
		return nil, &media.AssetLoadError{Asset: "sprite", Path: IconPath, Err: err}
	}
	a.Sprite = sprite
	m.stack.Push(ResSprite, sprite.Destroy)
	if a.SpriteW, a.SpriteH, err = sprite.Size(); err != nil {
		return nil, &media.AssetLoadError{Asset: "sprite", Path: IconPath, Err: err}
	}

	if m.audio {
		if err := m.loadAudio(a); err != nil {
			return nil, err
		}
	}

	m.assets = a
	m.logger.Info("assets loaded",
		"text", [2]float32{a.TextW, a.TextH},
		"sprite", [2]float32{a.SpriteW, a.SpriteH},
		"audio", m.audio)
	return a, nil
}

// loadText renders the fixed string into the glyph atlas texture.
func (m *Manager) loadText(a *Assets) error {
	font, err := m.backend.OpenFont(FontPath, core.TextSize)
	if err != nil {
		return &media.AssetLoadError{Asset: "font", Path: FontPath, Err: err}
	}
	defer font.Close()

	surface, err := font.Render(core.TextString, core.TextColor)
	if err != nil {
		return &media.AssetLoadError{Asset: "text", Path: FontPath, Err: err}
	}
	defer surface.Free()

	w, h := surface.Size()
	a.TextW, a.TextH = float32(w), float32(h)

	text, err := m.renderer.TextureFromSurface(surface)
	if err != nil {
		return &media.AssetLoadError{Asset: "text", Path: FontPath, Err: err}
	}
	a.Text = text
	m.stack.Push(ResTextImage, text.Destroy)
	return nil
}

func (m *Manager) loadAudio(a *Assets) error {
	action, err := m.backend.LoadSound(ActionSoundPath)
	if err != nil {
		return &media.AssetLoadError{Asset: "action-sound", Path: ActionSoundPath, Err: err}
	}
	a.ActionSound = action
	m.stack.Push(ResActionSound, func() error {
		action.Free()
		return nil
	})

	bounce, err := m.backend.LoadSound(BounceSoundPath)
	if err != nil {
		return &media.AssetLoadError{Asset: "bounce-sound", Path: BounceSoundPath, Err: err}
	}
	a.BounceSound = bounce
	m.stack.Push(ResBounceSound, func() error {
		bounce.Free()
		return nil
	})

	music, err := m.backend.LoadMusic(MusicPath)
	if err != nil {
		return &media.AssetLoadError{Asset: "music", Path: MusicPath, Err: err}
	}
	a.Music = music
	m.stack.Push(ResMusic, func() error {
		music.Free()
		return nil
	})
	return nil
}

// Renderer returns the draw context, nil before Initialize succeeds.
func (m *Manager) Renderer() media.Renderer {
	return m.renderer
}

// AudioReady reports whether the audio subsystem is initialized.
func (m *Manager) AudioReady() bool {
	return m.audio
}

// Acquired returns the names of the resources currently held, in
// acquisition order.
func (m *Manager) Acquired() []string {
	return m.stack.Names()
}

// Teardown stops all playback, then releases every held resource and
// subsystem in reverse acquisition order. It is safe after a failed or
// partial initialization and on repeated calls. It returns the release
// order.
func (m *Manager) Teardown() []string {
	if m.torndown {
		return nil
	}
	m.torndown = true

	if m.audio {
		m.backend.HaltAudio()
	}

	order := m.stack.ReleaseAll()
	for _, name := range order {
		m.logger.Debug("released", "resource", name)
	}

	m.window = nil
	m.renderer = nil
	m.icon = nil
	m.assets = nil
	return order
}
