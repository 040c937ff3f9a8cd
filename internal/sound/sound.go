// Package sound plays the alert cue on phase entry.
package sound

import (
	"bytes"
	_ "embed"
	"fmt"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
)

//go:embed alert.wav
var alertWAV []byte

// Decode loads the embedded alert into memory.
func Decode() (*beep.Buffer, error) {
	streamer, format, err := wav.Decode(bytes.NewReader(alertWAV))
	if err != nil {
		return nil, fmt.Errorf("decode alert: %w", err)
	}
	defer streamer.Close()
	buffer := beep.NewBuffer(format)
	buffer.Append(streamer)
	return buffer, nil
}

// Player plays the alert through the default audio device. The device is
// opened lazily on the first Play; if that fails the error is reported once
// and later plays are silent.
type Player struct {
	volume float64

	once     sync.Once
	mu       sync.Mutex
	buffer   *beep.Buffer
	initErr  error
	reported bool

	initSpeaker func(sr beep.SampleRate, bufferSize int) error
	play        func(s ...beep.Streamer)
}

type Option func(*Player)

// WithOutput replaces the speaker, for tests and alternative backends.
func WithOutput(init func(sr beep.SampleRate, bufferSize int) error, play func(s ...beep.Streamer)) Option {
	return func(p *Player) {
		p.initSpeaker = init
		p.play = play
	}
}

// NewPlayer creates a player. Volume is in the exponential base-2 scale of
// effects.Volume: 0 is unchanged, -1 is half as loud.
func NewPlayer(volume float64, opts ...Option) *Player {
	p := &Player{
		volume:      volume,
		initSpeaker: speaker.Init,
		play:        speaker.Play,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Player) init() {
	buffer, err := Decode()
	if err != nil {
		p.initErr = err
		return
	}
	sr := buffer.Format().SampleRate
	if err := p.initSpeaker(sr, sr.N(time.Second/10)); err != nil {
		p.initErr = fmt.Errorf("open speaker: %w", err)
		return
	}
	p.buffer = buffer
}

// Play starts the alert and returns immediately.
func (p *Player) Play() error {
	p.once.Do(p.init)
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.initErr != nil {
		if p.reported {
			return nil
		}
		p.reported = true
		return p.initErr
	}
	streamer := p.buffer.Streamer(0, p.buffer.Len())
	p.play(&effects.Volume{
		Streamer: streamer,
		Base:     2,
		Volume:   p.volume,
		Silent:   false,
	})
	return nil
}

// Silent never makes a sound.
type Silent struct{}

func (Silent) Play() error { return nil }
