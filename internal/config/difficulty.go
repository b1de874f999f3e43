package config

// DifficultyManager owns the global block fall speed and raises it as the
// score grows, according to the configured StepPolicy.
type DifficultyManager struct {
	cfg       DifficultyConfig
	initial   float64
	speed     float64
	level     int // Multiples of Every already stepped, for once-per-crossing
	stepCount int
}

// NewDifficultyManager creates a manager starting at the given fall speed.
func NewDifficultyManager(cfg DifficultyConfig, initialSpeed float64) *DifficultyManager {
	d := &DifficultyManager{cfg: cfg, initial: initialSpeed}
	d.Reset()
	return d
}

// Reset returns to the initial speed.
func (d *DifficultyManager) Reset() {
	d.speed = d.initial
	d.level = 0
	d.stepCount = 0
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Every > 0
}

// Policy returns the active step policy.
func (d *DifficultyManager) Policy() StepPolicy {
	return d.cfg.Policy
}

// Speed returns the current block fall speed.
func (d *DifficultyManager) Speed() float64 {
	return d.speed
}

// Steps returns how many times the speed has been raised.
func (d *DifficultyManager) Steps() int {
	return d.stepCount
}

// Update is called once at the end of every frame with the current score.
// It returns true if the fall speed was raised this frame.
//
// Once-per-crossing steps once for every multiple of Every the score has
// reached since the last call, so a jump from 9 to 11 still counts.
// Every-frame steps on each frame the score sits on a positive multiple.
func (d *DifficultyManager) Update(score int) bool {
	if !d.IsEnabled() || score <= 0 {
		return false
	}

	if d.cfg.Policy == StepEveryFrame {
		if score%d.cfg.Every != 0 {
			return false
		}
		return d.step()
	}

	level := score / d.cfg.Every
	stepped := false
	for d.level < level {
		d.level++
		if d.step() {
			stepped = true
		}
	}
	return stepped
}

// step raises the speed by one increment, respecting MaxSpeed.
func (d *DifficultyManager) step() bool {
	if d.cfg.MaxSpeed > 0 && d.speed >= d.cfg.MaxSpeed {
		return false
	}

	d.speed += d.cfg.Increment
	if d.cfg.MaxSpeed > 0 && d.speed > d.cfg.MaxSpeed {
		d.speed = d.cfg.MaxSpeed
	}
	d.stepCount++
	return true
}
