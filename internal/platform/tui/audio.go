package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"

	"github.com/vovakirdan/bounce/internal/core"
	"github.com/vovakirdan/bounce/internal/media"
)

// resampleQuality is passed to beep.Resample when a file's rate differs
// from the device rate.
const resampleQuality = 4

// audioDevice is the speaker opened at a fixed sample rate. The speaker is
// process-wide; there is at most one open device.
type audioDevice struct {
	rate beep.SampleRate
	open bool
}

func (d *audioDevice) init(spec core.AudioSpec) error {
	d.rate = beep.SampleRate(spec.Frequency)
	if err := speaker.Init(d.rate, spec.ChunkSize); err != nil {
		return err
	}
	d.open = true
	return nil
}

func (d *audioDevice) close() {
	if !d.open {
		return
	}
	speaker.Clear()
	speaker.Close()
	d.open = false
}

// halt stops every playing stream.
func (d *audioDevice) halt() {
	if d.open {
		speaker.Clear()
	}
}

// play starts s on the speaker, resampled to the device rate.
func (d *audioDevice) play(s beep.Streamer, rate beep.SampleRate) error {
	if !d.open {
		return fmt.Errorf("tui: audio device closed")
	}
	if rate != d.rate {
		s = beep.Resample(resampleQuality, rate, d.rate, s)
	}
	speaker.Play(s)
	return nil
}

// decodeAudio opens a streaming decoder picked by file extension.
func decodeAudio(path string) (beep.StreamSeekCloser, beep.Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, beep.Format{}, err
	}

	var (
		s      beep.StreamSeekCloser
		format beep.Format
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ogg":
		s, format, err = vorbis.Decode(f)
	case ".wav":
		s, format, err = wav.Decode(f)
	default:
		err = fmt.Errorf("unsupported audio format %q", filepath.Ext(path))
	}
	if err != nil {
		f.Close()
		return nil, beep.Format{}, fmt.Errorf("decode %s: %w", path, err)
	}
	return s, format, nil
}

// Sound is a sound effect decoded into memory. Every Play starts an
// independent streamer over the buffer, so plays overlap.
type Sound struct {
	dev *audioDevice
	buf *beep.Buffer
}

var _ media.Sound = (*Sound)(nil)

func loadSound(dev *audioDevice, path string) (*Sound, error) {
	s, format, err := decodeAudio(path)
	if err != nil {
		return nil, err
	}
	defer s.Close()

	buf := beep.NewBuffer(format)
	buf.Append(s)
	return &Sound{dev: dev, buf: buf}, nil
}

// Duration returns the length of the decoded sound.
func (s *Sound) Duration() time.Duration {
	if s.buf == nil {
		return 0
	}
	return s.buf.Format().SampleRate.D(s.buf.Len())
}

func (s *Sound) Play() error {
	if s.buf == nil {
		return fmt.Errorf("tui: sound freed")
	}
	return s.dev.play(s.buf.Streamer(0, s.buf.Len()), s.buf.Format().SampleRate)
}

func (s *Sound) Free() { s.buf = nil }

// Music is a track streamed from disk.
type Music struct {
	dev    *audioDevice
	stream beep.StreamSeekCloser
	format beep.Format
}

var _ media.Music = (*Music)(nil)

func loadMusic(dev *audioDevice, path string) (*Music, error) {
	s, format, err := decodeAudio(path)
	if err != nil {
		return nil, err
	}
	return &Music{dev: dev, stream: s, format: format}, nil
}

// PlayLoop starts the track and repeats it forever.
func (m *Music) PlayLoop() error {
	if m.stream == nil {
		return fmt.Errorf("tui: music freed")
	}
	return m.dev.play(beep.Loop(-1, m.stream), m.format.SampleRate)
}

// Free closes the stream. The speaker is locked so a playing loop is not
// read while its decoder closes.
func (m *Music) Free() {
	if m.stream == nil {
		return
	}
	if m.dev.open {
		speaker.Lock()
		defer speaker.Unlock()
	}
	m.stream.Close()
	m.stream = nil
}
