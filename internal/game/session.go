// Package game drives one application session: it initializes the media
// stack through the lifecycle manager, runs the fixed-cadence frame loop and
// tears everything down on every exit path.
package game

import (
	"errors"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bounce/internal/core"
	"github.com/vovakirdan/bounce/internal/input"
	"github.com/vovakirdan/bounce/internal/lifecycle"
	"github.com/vovakirdan/bounce/internal/media"
	"github.com/vovakirdan/bounce/internal/sim"
)

// Phase is the run state of a session.
type Phase int

const (
	PhaseNew     Phase = iota // Created, nothing acquired
	PhaseReady                // Init succeeded
	PhaseRunning              // Inside Run
	PhaseStopped              // Terminal
)

func (p Phase) String() string {
	switch p {
	case PhaseNew:
		return "new"
	case PhaseReady:
		return "ready"
	case PhaseRunning:
		return "running"
	case PhaseStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// ErrNotReady is returned by Run before a successful Init or after the
// session stopped.
var ErrNotReady = errors.New("game: session not ready")

// State is a point-in-time view of the session for tests and logging.
type State struct {
	Phase    Phase
	Frame    int
	Bounces  int
	Triggers int
	Color    core.Color
	Text     core.FRect
	TextVX   float32
	TextVY   float32
	Sprite   core.FRect
}

// Session owns the lifecycle manager, and through it every acquired
// resource, together with the input dispatcher and simulation state.
type Session struct {
	backend media.Backend
	cfg     core.RuntimeConfig
	logger  *log.Logger

	life     *lifecycle.Manager
	assets   *lifecycle.Assets
	renderer media.Renderer
	input    *input.Dispatcher

	palette *sim.Palette
	text    *sim.TextMover
	sprite  *sim.Sprite

	phase    Phase
	running  bool
	frame    int
	bounces  int
	triggers int
	closed   bool
}

// New creates a session. Nothing is acquired until Init.
func New(backend media.Backend, cfg core.RuntimeConfig, logger *log.Logger) *Session {
	return &Session{
		backend: backend,
		cfg:     cfg,
		logger:  logger,
		life:    lifecycle.New(backend, cfg, logger),
		input:   input.NewDispatcher(backend, input.DefaultKeyMap()),
	}
}

// Init acquires every subsystem and asset, seeds the palette and places
// both elements at the origin. On failure the caller must still Close.
func (s *Session) Init() error {
	if err := s.life.Initialize(); err != nil {
		return err
	}
	assets, err := s.life.LoadAssets()
	if err != nil {
		return err
	}
	s.assets = assets
	s.renderer = s.life.Renderer()

	s.palette = sim.NewPalette(s.cfg.Seed)
	s.text = sim.NewTextMover(assets.TextW, assets.TextH, core.TextSpeed)
	s.sprite = sim.NewSprite(assets.SpriteW, assets.SpriteH, core.SpriteStep)

	if err := s.renderer.SetDrawColor(s.palette.Color()); err != nil {
		s.logger.Debug("set draw color failed", "error", err)
	}

	s.phase = PhaseReady
	s.logger.Debug("session ready", "seed", s.palette.Seed(), "audio", s.life.AudioReady())
	return nil
}

// Run starts the music, if loaded, and executes frames until a quit or
// cancel command, or until MaxFrames frames have run.
func (s *Session) Run() error {
	if s.phase != PhaseReady {
		return ErrNotReady
	}

	if s.assets.Music != nil {
		if err := s.assets.Music.PlayLoop(); err != nil {
			s.phase = PhaseStopped
			return &media.PlaybackError{Err: err}
		}
	}

	s.phase = PhaseRunning
	s.running = true
	for s.running {
		s.Tick()
		if s.cfg.MaxFrames > 0 && s.frame >= s.cfg.MaxFrames {
			s.logger.Debug("frame limit reached", "frames", s.frame)
			s.running = false
		}
	}
	s.phase = PhaseStopped
	return nil
}

// Tick executes one frame: drain input, advance the simulation, render and
// wait the fixed frame delay. A stop command clears the run flag but the
// rest of the frame still runs.
func (s *Session) Tick() {
	for _, cmd := range s.input.PollEvents() {
		switch {
		case cmd.Stops():
			s.logger.Debug("stop requested", "command", cmd, "frame", s.frame)
			s.running = false
		case cmd == core.CommandTrigger:
			s.trigger()
		}
	}

	bounced := s.text.Advance(float32(s.cfg.Width), float32(s.cfg.Height))
	for i := 0; i < bounced.Count(); i++ {
		s.play(s.assets.BounceSound)
	}
	s.bounces += bounced.Count()

	s.sprite.Advance(s.input.SampleDirections())

	s.draw()
	s.backend.Delay(s.cfg.FrameDelay)
	s.frame++
}

func (s *Session) trigger() {
	s.triggers++
	color := s.palette.Resample()
	if err := s.renderer.SetDrawColor(color); err != nil {
		s.logger.Debug("set draw color failed", "error", err)
	}
	s.play(s.assets.ActionSound)
}

func (s *Session) play(sound media.Sound) {
	if sound == nil {
		return
	}
	if err := sound.Play(); err != nil {
		s.logger.Debug("sound play failed", "error", err)
	}
}

// draw renders the frame: clear, background, text, sprite, present.
func (s *Session) draw() {
	r := s.renderer
	if err := r.Clear(); err != nil {
		s.logger.Debug("clear failed", "error", err)
	}
	if err := r.Copy(s.assets.Background, nil); err != nil {
		s.logger.Debug("draw background failed", "error", err)
	}
	text := s.text.Rect
	if err := r.Copy(s.assets.Text, &text); err != nil {
		s.logger.Debug("draw text failed", "error", err)
	}
	sprite := s.sprite.Rect
	if err := r.Copy(s.assets.Sprite, &sprite); err != nil {
		s.logger.Debug("draw sprite failed", "error", err)
	}
	r.Present()
}

// State returns a snapshot of the session.
func (s *Session) State() State {
	st := State{
		Phase:    s.phase,
		Frame:    s.frame,
		Bounces:  s.bounces,
		Triggers: s.triggers,
	}
	if s.palette != nil {
		st.Color = s.palette.Color()
	}
	if s.text != nil {
		st.Text = s.text.Rect
		st.TextVX, st.TextVY = s.text.VX, s.text.VY
	}
	if s.sprite != nil {
		st.Sprite = s.sprite.Rect
	}
	return st
}

// Close stops playback and releases everything in reverse acquisition
// order. It is safe to call more than once and after a failed Init.
func (s *Session) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.running = false
	s.phase = PhaseStopped
	s.life.Teardown()
	s.assets = nil
	s.renderer = nil
	s.logger.Info("session closed",
		"frames", s.frame,
		"bounces", s.bounces,
		"triggers", s.triggers)
}

// Play runs a complete session: Init, Run, Close. Close runs on every
// path. It returns the first error.
func Play(backend media.Backend, cfg core.RuntimeConfig, logger *log.Logger) error {
	s := New(backend, cfg, logger)
	defer s.Close()

	if err := s.Init(); err != nil {
		return err
	}
	return s.Run()
}
