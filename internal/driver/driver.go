package driver

import (
	"context"
	"log/slog"
	"time"

	"github.com/san-kum/gol3d/internal/life"
	"github.com/san-kum/gol3d/internal/metrics"
)

// Renderer is the presentation collaborator fed by the driver.
type Renderer interface {
	// CreateLayer materializes one marker per live cell of g at the given
	// height, laid out on a lattice centred on the origin.
	CreateLayer(g life.Grid, height float64)
	// MoveViewpoint glides the camera toward targetHeight over d.
	MoveViewpoint(targetHeight float64, d time.Duration)
}

// Discard is a Renderer that draws nothing, for headless runs.
var Discard Renderer = discard{}

type discard struct{}

func (discard) CreateLayer(life.Grid, float64)        {}
func (discard) MoveViewpoint(float64, time.Duration) {}

// Generation is a grid together with its index in the run.
type Generation struct {
	Grid  life.Grid
	Index int
}

// StopReason explains why a driver stopped scheduling generations.
type StopReason string

const (
	ReasonNone      StopReason = ""
	ReasonConverged StopReason = "converged"
	ReasonMaxGens   StopReason = "max-generations"
	ReasonCanceled  StopReason = "canceled"
)

// Driver owns the evolving grid, its history window and the lifetime of the
// generation scheduler. It is not safe for concurrent use; every call must
// come from the goroutine that runs the scheduler.
type Driver struct {
	cur       Generation
	history   life.History
	renderer  Renderer
	observers []metrics.Observer
	log       *slog.Logger

	period  time.Duration
	lead    float64
	tween   time.Duration
	maxGens int

	stopped bool
	reason  StopReason
}

// New creates a driver for seed and renders it as layer 0.
func New(seed life.Grid, r Renderer, opts ...Option) *Driver {
	d := &Driver{
		cur:      Generation{Grid: seed},
		renderer: r,
		log:      slog.Default(),
		period:   DefaultPeriod,
		lead:     DefaultCameraLead,
		tween:    DefaultTween,
	}
	for _, opt := range opts {
		opt(d)
	}

	for _, o := range d.observers {
		o.Observe(0, seed)
	}
	d.renderer.CreateLayer(seed, 0)
	d.log.Debug("seeded", "width", seed.Width(), "height", seed.Height(), "population", seed.Population())
	return d
}

// Tick runs one scheduler firing. It reports whether further ticks should be
// scheduled; a stopped driver ignores the call and returns false.
func (d *Driver) Tick() bool {
	if d.stopped {
		return false
	}

	d.cur.Index++
	d.history.Push(d.cur.Grid)
	d.cur.Grid = life.Next(d.cur.Grid)

	for _, o := range d.observers {
		o.Observe(d.cur.Index, d.cur.Grid)
	}

	height := float64(d.cur.Index)
	d.renderer.CreateLayer(d.cur.Grid, height)
	d.renderer.MoveViewpoint(height+d.lead, d.tween)
	d.log.Debug("generation", "index", d.cur.Index, "population", d.cur.Grid.Population())

	switch {
	case d.history.Converged(d.cur.Grid):
		d.stop(ReasonConverged)
	case d.maxGens > 0 && d.cur.Index >= d.maxGens:
		d.stop(ReasonMaxGens)
	}
	return !d.stopped
}

// Stop halts scheduling. Calling it more than once is harmless.
func (d *Driver) Stop() {
	d.stop(ReasonCanceled)
}

func (d *Driver) stop(reason StopReason) {
	if d.stopped {
		return
	}
	d.stopped = true
	d.reason = reason
	d.log.Info("stopped", "reason", string(reason), "generation", d.cur.Index, "population", d.cur.Grid.Population())
}

func (d *Driver) Stopped() bool      { return d.stopped }
func (d *Driver) Reason() StopReason { return d.reason }

// Generation returns the most recently produced generation.
func (d *Driver) Generation() Generation { return d.cur }

// Period is the interval between scheduler firings.
func (d *Driver) Period() time.Duration { return d.period }

// Run fires Tick every period until the driver stops itself or ctx is done.
// A period of zero or less ticks back to back. Run returns nil when the
// driver stopped on its own and ctx.Err() on cancellation.
func (d *Driver) Run(ctx context.Context) error {
	if d.period <= 0 {
		for d.Tick() {
			select {
			case <-ctx.Done():
				d.Stop()
				return ctx.Err()
			default:
			}
		}
		return nil
	}

	ticker := time.NewTicker(d.period)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			d.Stop()
			return ctx.Err()
		case <-ticker.C:
			if !d.Tick() {
				return nil
			}
		}
	}
}
