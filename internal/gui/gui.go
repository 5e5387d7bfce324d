// Package gui shows the generation stack in a raylib window with solid
// cubes. The window itself needs the raylib build tag; without it Run
// returns ErrUnavailable and only the headless pieces remain.
package gui

import (
	"errors"
	"time"
)

const (
	WindowWidth  = 1280
	WindowHeight = 720
	TargetFPS    = 60
)

var ErrUnavailable = errors.New("gui: built without the raylib tag")

type Options struct {
	Title string
	Theme string
}

// FixedStep fires at a steady period from inside a render loop by
// accumulating frame time.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedStep fires on the first call and every period after that. A
// non-positive period fires on every call.
func NewFixedStep(period time.Duration) *FixedStep {
	if period < 0 {
		period = 0
	}
	return &FixedStep{step: period, accumulator: period}
}

// ShouldStep reports whether one period has elapsed by now. At most one
// step is released per call so a stalled frame does not burst.
func (f *FixedStep) ShouldStep(now time.Time) bool {
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		if f.accumulator > f.step {
			f.accumulator = f.step
		}
		return true
	}
	return false
}

// Reset drops accumulated time, used when resuming from pause.
func (f *FixedStep) Reset(now time.Time) {
	f.accumulator = 0
	f.last = now
}
