package core

import "time"

// Fixed program constants. They are part of the build, not of the
// configuration file.
const (
	WindowTitle  = "Sound Effects and Music"
	WindowWidth  = 800
	WindowHeight = 600

	TextString = "SDL"
	TextSize   = 80
	TextSpeed  = 3

	SpriteStep = 5

	FrameDelay = 16 * time.Millisecond
)

// TextColor is the color the glyph atlas is rendered with.
var TextColor = ColorWhite

// AudioSpec describes the audio output device configuration.
type AudioSpec struct {
	Frequency int // Sample rate in Hz
	Channels  int // 1 = mono, 2 = stereo
	ChunkSize int // Samples per mixing chunk
}

// DefaultAudioSpec is the fixed device configuration.
var DefaultAudioSpec = AudioSpec{
	Frequency: 44100,
	Channels:  2,
	ChunkSize: 2048,
}

// RuntimeConfig contains configuration passed to a session at startup.
type RuntimeConfig struct {
	Title      string        // Window title
	Width      int           // Window width in pixels
	Height     int           // Window height in pixels
	FrameDelay time.Duration // Fixed sleep after each frame
	Seed       int64         // Color RNG seed, 0 = time based
	Audio      bool          // Whether the audio subsystem is used at all
	AudioSpec  AudioSpec     // Output device configuration
	MaxFrames  int           // Stop after this many frames, 0 = unlimited
}

// DefaultConfig returns a RuntimeConfig with the fixed program settings.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		Title:      WindowTitle,
		Width:      WindowWidth,
		Height:     WindowHeight,
		FrameDelay: FrameDelay,
		Seed:       0, // 0 means use current time in the session
		Audio:      true,
		AudioSpec:  DefaultAudioSpec,
	}
}
