package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-dodge/internal/core"
)

// Player reacts to game events with sound.
type Player interface {
	Play(kind core.EventKind)
	Close()
}

// Nop is a silent Player.
type Nop struct{}

// Play does nothing.
func (Nop) Play(core.EventKind) {}

// Close does nothing.
func (Nop) Close() {}

// Speaker plays cues on the default audio device through one mixer.
type Speaker struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	volume float64
	closed bool
}

// NewSpeaker opens the audio device. Volume is linear in [0, 1].
func NewSpeaker(volume float64) (*Speaker, error) {
	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("audio: cannot open output device: %w", err)
	}
	s := &Speaker{mixer: &beep.Mixer{}, volume: volume}
	speaker.Play(s.mixer)
	return s, nil
}

// Play queues the cue for kind. Unknown kinds are ignored.
func (s *Speaker) Play(kind core.EventKind) {
	tones, ok := CueFor(kind)
	if !ok {
		return
	}
	stream, err := Build(tones, SampleRate, s.volume)
	if err != nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	speaker.Lock()
	s.mixer.Add(stream)
	speaker.Unlock()
}

// Close stops playback and releases the device.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	speaker.Clear()
	speaker.Close()
}
