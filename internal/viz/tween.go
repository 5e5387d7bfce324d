package viz

import (
	"time"

	"github.com/fogleman/ease"
)

// Tween interpolates a scalar from one value to another over a fixed
// duration with an easing curve.
type Tween struct {
	From, To float64
	Start    time.Time
	Duration time.Duration
	Ease     func(float64) float64
}

// NewTween starts a quadratic ease-out tween at start.
func NewTween(from, to float64, start time.Time, d time.Duration) *Tween {
	return &Tween{From: from, To: to, Start: start, Duration: d, Ease: ease.OutQuad}
}

// Progress returns the linear progress in [0, 1] at now.
func (t *Tween) Progress(now time.Time) float64 {
	if t.Duration <= 0 {
		return 1
	}
	p := float64(now.Sub(t.Start)) / float64(t.Duration)
	switch {
	case p < 0:
		return 0
	case p > 1:
		return 1
	}
	return p
}

// Value returns the eased value at now. It equals To once the tween is done.
func (t *Tween) Value(now time.Time) float64 {
	p := t.Progress(now)
	if p >= 1 {
		return t.To
	}
	e := p
	if t.Ease != nil {
		e = t.Ease(p)
	}
	return t.From + (t.To-t.From)*e
}

func (t *Tween) Done(now time.Time) bool { return t.Progress(now) >= 1 }
