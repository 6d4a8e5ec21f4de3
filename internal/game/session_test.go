package game

import (
	"errors"
	"io"
	"reflect"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bounce/internal/core"
	"github.com/vovakirdan/bounce/internal/lifecycle"
	"github.com/vovakirdan/bounce/internal/media"
	"github.com/vovakirdan/bounce/internal/media/mediatest"
	"github.com/vovakirdan/bounce/internal/sim"
)

func testConfig(frames int) core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.Seed = 12345
	cfg.MaxFrames = frames
	return cfg
}

func quiet() *log.Logger {
	return log.New(io.Discard)
}

func TestPlayRendersFrames(t *testing.T) {
	b := mediatest.New()
	if err := Play(b, testConfig(3), quiet()); err != nil {
		t.Fatalf("Play() failed: %v", err)
	}

	if b.Frame() != 3 {
		t.Errorf("Frame() = %d, expected 3", b.Frame())
	}
	for i, d := range b.Delays {
		if d != core.FrameDelay {
			t.Errorf("delay %d = %v, expected %v", i, d, core.FrameDelay)
		}
	}

	frames := b.Renderer.Frames
	if len(frames) != 3 {
		t.Fatalf("rendered %d frames, expected 3", len(frames))
	}
	expected := []string{
		"clear #000000",
		"copy " + lifecycle.BackgroundPath + " full",
		"copy texture(text:SDL) 3,3 120x90",
		"copy texture(" + lifecycle.IconPath + ") 0,0 64x64",
		"present",
	}
	if !reflect.DeepEqual(frames[0], expected) {
		t.Errorf("frame 0 = %v, expected %v", frames[0], expected)
	}
	if frames[2][2] != "copy texture(text:SDL) 9,9 120x90" {
		t.Errorf("frame 2 text op = %q", frames[2][2])
	}

	if len(b.Played) == 0 || b.Played[0] != lifecycle.MusicPath {
		t.Errorf("Played = %v, expected music first", b.Played)
	}
	if b.PlayCount(lifecycle.MusicPath) != 1 {
		t.Errorf("music started %d times, expected 1", b.PlayCount(lifecycle.MusicPath))
	}
	if b.Count("quit:display") != 1 {
		t.Error("display should be released exactly once")
	}
}

func TestStopCommands(t *testing.T) {
	tests := []struct {
		name  string
		event media.Event
	}{
		{"escape", media.KeyDownEvent(media.KeyEscape)},
		{"ctrl+c", media.KeyDownEvent(media.KeyCtrlC)},
		{"window close", media.QuitEvent()},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := mediatest.New()
			b.At(2, tc.event)

			if err := Play(b, testConfig(0), quiet()); err != nil {
				t.Fatalf("Play() failed: %v", err)
			}
			// The frame that saw the stop still completes
			if b.Frame() != 3 {
				t.Errorf("Frame() = %d, expected 3", b.Frame())
			}
			if len(b.Renderer.Frames) != 3 {
				t.Errorf("rendered %d frames, expected 3", len(b.Renderer.Frames))
			}
		})
	}
}

func TestTriggerResamplesColor(t *testing.T) {
	b := mediatest.New()
	b.At(0, media.KeyDownEvent(media.KeySpace))
	b.At(1, media.KeyDownEvent(media.KeySpace), media.KeyDownEvent(media.KeySpace))
	cfg := testConfig(3)

	s := New(b, cfg, quiet())
	defer s.Close()
	if err := s.Init(); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}
	if err := s.Run(); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	ref := sim.NewPalette(cfg.Seed)
	first := ref.Resample()
	ref.Resample()
	third := ref.Resample()

	frames := b.Renderer.Frames
	if frames[0][0] != "clear "+first.Hex() {
		t.Errorf("frame 0 clear = %q, expected %q", frames[0][0], "clear "+first.Hex())
	}
	if frames[1][0] != "clear "+third.Hex() {
		t.Errorf("frame 1 clear = %q, expected %q", frames[1][0], "clear "+third.Hex())
	}
	if frames[2][0] != frames[1][0] {
		t.Errorf("frame 2 clear = %q, expected unchanged %q", frames[2][0], frames[1][0])
	}

	st := s.State()
	if st.Triggers != 3 {
		t.Errorf("Triggers = %d, expected 3", st.Triggers)
	}
	if st.Color != third {
		t.Errorf("Color = %v, expected %v", st.Color, third)
	}
	if b.PlayCount(lifecycle.ActionSoundPath) != 3 {
		t.Errorf("action sound played %d times, expected 3", b.PlayCount(lifecycle.ActionSoundPath))
	}
}

func TestSpriteFollowsHeldKeys(t *testing.T) {
	tests := []struct {
		name      string
		held      []media.Key
		expectedX float32
		expectedY float32
	}{
		{"none", nil, 0, 0},
		{"right", []media.Key{media.KeyRight}, 5, 0},
		{"d and s", []media.Key{media.KeyD, media.KeyS}, 5, 5},
		{"left and right", []media.Key{media.KeyLeft, media.KeyRight}, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := mediatest.New()
			b.Hold(tc.held...)

			s := New(b, testConfig(1), quiet())
			defer s.Close()
			if err := s.Init(); err != nil {
				t.Fatalf("Init() failed: %v", err)
			}
			if err := s.Run(); err != nil {
				t.Fatalf("Run() failed: %v", err)
			}

			st := s.State()
			if st.Sprite.X != tc.expectedX || st.Sprite.Y != tc.expectedY {
				t.Errorf("sprite = (%v,%v), expected (%v,%v)",
					st.Sprite.X, st.Sprite.Y, tc.expectedX, tc.expectedY)
			}
		})
	}
}

func TestBounceSoundPerAxis(t *testing.T) {
	b := mediatest.New()
	// Large enough to overflow both axes on the first move
	b.Sizes["text:SDL"] = [2]int{799, 599}

	s := New(b, testConfig(1), quiet())
	defer s.Close()
	if err := s.Init(); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}
	if err := s.Run(); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	if got := b.PlayCount(lifecycle.BounceSoundPath); got != 2 {
		t.Errorf("bounce sound played %d times, expected 2", got)
	}
	st := s.State()
	if st.Bounces != 2 {
		t.Errorf("Bounces = %d, expected 2", st.Bounces)
	}
	if st.TextVX != -core.TextSpeed || st.TextVY != -core.TextSpeed {
		t.Errorf("text velocity = (%v,%v), expected (-3,-3)", st.TextVX, st.TextVY)
	}
	// Overshoot is drawn before the next move corrects it
	if st.Text.X != 3 || st.Text.Y != 3 {
		t.Errorf("text = (%v,%v), expected (3,3)", st.Text.X, st.Text.Y)
	}
}

func TestBounceSoundWhileOutsideEdge(t *testing.T) {
	b := mediatest.New()
	s := New(b, testConfig(0), quiet())
	defer s.Close()
	if err := s.Init(); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}
	s.text.Rect.X = -2
	s.text.VX = -core.TextSpeed

	tests := []struct {
		x       float32
		vx      float32
		bounces int
	}{
		{-5, core.TextSpeed, 1}, // moves out, reflects
		{-2, core.TextSpeed, 2}, // still outside, branch taken again
		{1, core.TextSpeed, 2},  // back inside
	}
	for i, tc := range tests {
		s.Tick()
		st := s.State()
		if st.Text.X != tc.x || st.TextVX != tc.vx {
			t.Errorf("frame %d text x = %v vx = %v, expected %v, %v", i, st.Text.X, st.TextVX, tc.x, tc.vx)
		}
		if got := b.PlayCount(lifecycle.BounceSoundPath); got != tc.bounces {
			t.Errorf("frame %d bounce sound played %d times, expected %d", i, got, tc.bounces)
		}
	}
}

func TestMusicFailure(t *testing.T) {
	cause := errors.New("no device")
	b := mediatest.New()
	b.Fail("play:"+lifecycle.MusicPath, cause)

	err := Play(b, testConfig(5), quiet())

	var playErr *media.PlaybackError
	if !errors.As(err, &playErr) {
		t.Fatalf("Play() = %v, expected PlaybackError", err)
	}
	if !errors.Is(err, cause) {
		t.Errorf("error %v should wrap the cause", err)
	}
	if b.Frame() != 0 {
		t.Errorf("Frame() = %d, expected no frames", b.Frame())
	}
	if b.Count("quit:display") != 1 || b.Count("halt:audio") != 1 {
		t.Errorf("teardown incomplete: %v", b.Log)
	}
}

func TestInitFailure(t *testing.T) {
	cause := errors.New("no gpu")
	b := mediatest.New()
	b.Fail("create:renderer", cause)

	err := Play(b, testConfig(5), quiet())

	var initErr *media.InitializationError
	if !errors.As(err, &initErr) {
		t.Fatalf("Play() = %v, expected InitializationError", err)
	}
	if initErr.Step != "renderer" {
		t.Errorf("Step = %q, expected %q", initErr.Step, "renderer")
	}
	if b.Frame() != 0 {
		t.Errorf("Frame() = %d, expected no frames", b.Frame())
	}

	expected := []string{"destroy:window", "quit:audio", "quit:text", "quit:display"}
	var got []string
	for _, entry := range b.Log {
		switch entry {
		case "destroy:window", "quit:audio", "quit:text", "quit:display":
			got = append(got, entry)
		}
	}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("releases = %v, expected %v", got, expected)
	}
}

func TestAudioDisabled(t *testing.T) {
	b := mediatest.New()
	b.At(0, media.KeyDownEvent(media.KeySpace))
	b.Sizes["text:SDL"] = [2]int{799, 599}
	cfg := testConfig(2)
	cfg.Audio = false

	if err := Play(b, cfg, quiet()); err != nil {
		t.Fatalf("Play() failed: %v", err)
	}
	if len(b.Played) != 0 {
		t.Errorf("Played = %v, expected nothing", b.Played)
	}
	if b.Frame() != 2 {
		t.Errorf("Frame() = %d, expected 2", b.Frame())
	}
}

func TestSessionPhases(t *testing.T) {
	b := mediatest.New()
	s := New(b, testConfig(1), quiet())

	if err := s.Run(); !errors.Is(err, ErrNotReady) {
		t.Errorf("Run() before Init = %v, expected ErrNotReady", err)
	}
	if s.State().Phase != PhaseNew {
		t.Errorf("Phase = %v, expected %v", s.State().Phase, PhaseNew)
	}

	if err := s.Init(); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}
	if s.State().Phase != PhaseReady {
		t.Errorf("Phase = %v, expected %v", s.State().Phase, PhaseReady)
	}
	if err := s.Run(); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if s.State().Phase != PhaseStopped {
		t.Errorf("Phase = %v, expected %v", s.State().Phase, PhaseStopped)
	}
	if err := s.Run(); !errors.Is(err, ErrNotReady) {
		t.Errorf("Run() after stop = %v, expected ErrNotReady", err)
	}

	s.Close()
	s.Close()
	if b.Count("quit:display") != 1 {
		t.Errorf("display released %d times, expected 1", b.Count("quit:display"))
	}
}
