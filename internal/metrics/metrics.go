package metrics

import "github.com/san-kum/gol3d/internal/life"

// Observer receives every generation the driver produces, starting with the
// seed at generation 0.
type Observer interface {
	Name() string
	Observe(gen int, g life.Grid)
	Value() float64
	Reset()
}

// Defaults returns the observers gol3d attaches to every run.
func Defaults() (*Population, *Churn, *Bounds) {
	return NewPopulation(), NewChurn(), NewBounds()
}
