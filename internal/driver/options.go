package driver

import (
	"log/slog"
	"time"

	"github.com/san-kum/gol3d/internal/metrics"
)

const (
	DefaultPeriod     = 100 * time.Millisecond
	DefaultCameraLead = 10.0
	DefaultTween      = time.Second
)

// Option configures a Driver.
type Option func(*Driver)

// WithPeriod sets the interval between generations used by Run.
func WithPeriod(p time.Duration) Option {
	return func(d *Driver) { d.period = p }
}

// WithCameraLead sets how far above the newest layer the camera aims.
func WithCameraLead(lead float64) Option {
	return func(d *Driver) { d.lead = lead }
}

// WithTween sets the duration of each camera glide.
func WithTween(t time.Duration) Option {
	return func(d *Driver) { d.tween = t }
}

// WithMaxGenerations stops the driver after n generations; 0 means no cap.
func WithMaxGenerations(n int) Option {
	return func(d *Driver) { d.maxGens = n }
}

func WithLogger(l *slog.Logger) Option {
	return func(d *Driver) {
		if l != nil {
			d.log = l
		}
	}
}

// WithObserver attaches a metric that sees every generation.
func WithObserver(o metrics.Observer) Option {
	return func(d *Driver) { d.observers = append(d.observers, o) }
}
