package engine

import (
	"time"

	"github.com/vovakirdan/tui-dodge/internal/core"
)

// Pacer holds a loop to a fixed frame interval. Deadlines advance by whole
// intervals, so a slow frame is made up by the next one; a loop that falls a
// full interval behind resynchronises instead of bursting.
type Pacer struct {
	clock    core.Clock
	interval time.Duration
	next     time.Time
}

// NewPacer creates a pacer for the given frame rate.
func NewPacer(clock core.Clock, fps int) *Pacer {
	if fps <= 0 {
		fps = core.DefaultTickRate
	}
	p := &Pacer{
		clock:    clock,
		interval: time.Second / time.Duration(fps),
	}
	p.Reset()
	return p
}

// Interval returns the frame interval.
func (p *Pacer) Interval() time.Duration {
	return p.interval
}

// Reset starts counting from now.
func (p *Pacer) Reset() {
	p.next = p.clock.Now().Add(p.interval)
}

// Wait sleeps until the end of the current frame.
func (p *Pacer) Wait() {
	now := p.clock.Now()
	if now.Before(p.next) {
		p.clock.Sleep(p.next.Sub(now))
		p.next = p.next.Add(p.interval)
		return
	}
	p.next = now.Add(p.interval)
}
