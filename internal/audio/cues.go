// Package audio plays short synthesized cues for game events.
package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/vovakirdan/tui-dodge/internal/core"
)

// SampleRate is the output rate for every cue.
const SampleRate = beep.SampleRate(44100)

// Tone is a single sine note.
type Tone struct {
	Freq     float64
	Duration time.Duration
}

// cues maps event kinds to note sequences. Kinds without an entry are silent.
var cues = map[core.EventKind][]Tone{
	core.EventStarted:       {{660, 60 * time.Millisecond}},
	core.EventShieldOn:      {{660, 80 * time.Millisecond}, {990, 120 * time.Millisecond}},
	core.EventShieldBlocked: {{440, 60 * time.Millisecond}},
	core.EventShieldOff:     {{990, 80 * time.Millisecond}, {660, 120 * time.Millisecond}},
	core.EventSpeedUp:       {{523.25, 50 * time.Millisecond}, {659.25, 50 * time.Millisecond}, {783.99, 80 * time.Millisecond}},
	core.EventCrash:         {{220, 180 * time.Millisecond}, {110, 320 * time.Millisecond}},
}

// CueFor returns the notes played for an event kind.
func CueFor(kind core.EventKind) ([]Tone, bool) {
	tones, ok := cues[kind]
	return tones, ok
}

// Build renders a note sequence into a finite streamer at the given volume
// (0 is silent, 1 is full scale).
func Build(tones []Tone, rate beep.SampleRate, volume float64) (beep.Streamer, error) {
	parts := make([]beep.Streamer, 0, len(tones))
	for _, t := range tones {
		sine, err := generators.SineTone(rate, t.Freq)
		if err != nil {
			return nil, fmt.Errorf("audio: tone %.0fHz: %w", t.Freq, err)
		}
		parts = append(parts, beep.Take(rate.N(t.Duration), sine))
	}
	return withVolume(beep.Seq(parts...), volume), nil
}

// withVolume scales a stream linearly; effects.Volume works in log space.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
