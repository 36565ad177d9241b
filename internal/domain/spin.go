package domain

import (
	"math"
	"time"
)

const (
	// SpinDuration is how long a spin animates, measured in wall-clock time.
	SpinDuration = 5 * time.Second

	minTurns   = 3.0
	turnsRange = 2.0
)

// Spin is an in-flight spin animation. It is a value: Advance does not mutate it.
type Spin struct {
	StartedAt time.Time
	From      float64
	To        float64
	Duration  time.Duration
}

// Frame is one animation step.
type Frame struct {
	Progress float64
	Eased    float64
	Rotation float64
	Done     bool
}

// StartSpin moves an idle, non-empty wheel into the spinning state. The
// target is 3 to 5 full turns past the current rotation.
func StartSpin(w Wheel, rng RNG, now time.Time) (Spin, Wheel, error) {
	if w.Spinning {
		return Spin{}, w, ErrSpinInProgress
	}
	if w.Empty() {
		return Spin{}, w, ErrEmptyWheel
	}

	turns := minTurns + rng.Float64()*turnsRange
	s := Spin{
		StartedAt: now,
		From:      w.Rotation,
		To:        w.Rotation + FullTurn*turns,
		Duration:  SpinDuration,
	}
	w.Spinning = true
	return s, w, nil
}

// Progress is the linear fraction of the duration elapsed at now, clamped to [0, 1].
func (s Spin) Progress(now time.Time) float64 {
	if s.Duration <= 0 {
		return 1
	}
	p := float64(now.Sub(s.StartedAt)) / float64(s.Duration)
	return math.Max(0, math.Min(p, 1))
}

// Advance computes the frame at now and applies it to w. Once progress
// reaches 1 the returned wheel is idle at the target rotation.
func (s Spin) Advance(w Wheel, now time.Time) (Wheel, Frame) {
	p := s.Progress(now)
	eased := EaseOutCubic(p)
	f := Frame{
		Progress: p,
		Eased:    eased,
		Rotation: s.From + (s.To-s.From)*eased,
		Done:     p >= 1,
	}
	w.Rotation = f.Rotation
	if f.Done {
		w.Spinning = false
	}
	return w, f
}

// EaseOutCubic decelerates towards the end: 1 - (1-p)^3.
func EaseOutCubic(p float64) float64 {
	return 1 - math.Pow(1-p, 3)
}
