package config

import (
	"math"
	"time"

	"github.com/vovakirdan/jly-arcade/internal/core"
)

// Ramp tracks the spawn interval and base speed as they tighten over a game.
// Each Advance moves both one step towards their clamp: the interval shrinks
// towards MinIntervalMS and the speed grows towards MaxSpeed. Neither ever
// crosses its clamp.
type Ramp struct {
	cfg      Spawn
	interval time.Duration
	speed    float64
	steps    int
}

// NewRamp creates a ramp at its starting values.
func NewRamp(cfg Spawn) *Ramp {
	r := &Ramp{cfg: cfg}
	r.Reset()
	return r
}

// Reset returns the ramp to its starting values.
func (r *Ramp) Reset() {
	r.interval = Millis(r.cfg.IntervalMS)
	r.speed = r.cfg.BaseSpeed
	r.steps = 0
}

// Advance applies one ramp step.
func (r *Ramp) Advance() {
	floor := Millis(r.cfg.MinIntervalMS)
	r.interval = max(floor, r.interval-Millis(r.cfg.IntervalStepMS))
	r.speed = math.Min(r.cfg.MaxSpeed, r.speed+r.cfg.SpeedStep)
	r.steps++
}

// Interval returns the current spawn interval.
func (r *Ramp) Interval() time.Duration {
	return r.interval
}

// Speed returns the current base speed.
func (r *Ramp) Speed() float64 {
	return r.speed
}

// Steps returns how many times the ramp has advanced since Reset.
func (r *Ramp) Steps() int {
	return r.steps
}

// Level returns how far the ramp has progressed (0.0 to 1.0).
// A ramp with nothing to tighten stays at 0.
func (r *Ramp) Level() float64 {
	speedSpan := r.cfg.MaxSpeed - r.cfg.BaseSpeed
	if speedSpan > 0 {
		return core.ClampF((r.speed-r.cfg.BaseSpeed)/speedSpan, 0, 1)
	}
	intervalSpan := float64(r.cfg.IntervalMS - r.cfg.MinIntervalMS)
	if intervalSpan > 0 {
		done := float64(Millis(r.cfg.IntervalMS)-r.interval) / float64(time.Millisecond)
		return core.ClampF(done/intervalSpan, 0, 1)
	}
	return 0
}
