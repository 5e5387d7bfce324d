package metrics

import "github.com/san-kum/gol3d/internal/life"

// Population tracks live-cell counts per generation.
type Population struct {
	series []float64
	peak   int
	peakAt int
}

func NewPopulation() *Population {
	return &Population{series: make([]float64, 0, 256)}
}

func (p *Population) Name() string { return "population" }

func (p *Population) Observe(gen int, g life.Grid) {
	n := g.Population()
	p.series = append(p.series, float64(n))
	if len(p.series) == 1 || n > p.peak {
		p.peak, p.peakAt = n, gen
	}
}

// Value is the latest population.
func (p *Population) Value() float64 {
	if len(p.series) == 0 {
		return 0
	}
	return p.series[len(p.series)-1]
}

// Peak returns the highest population seen and the generation it occurred.
func (p *Population) Peak() (int, int) { return p.peak, p.peakAt }

// Series returns the population history, oldest first. The slice is shared;
// callers must not modify it.
func (p *Population) Series() []float64 { return p.series }

// Tail returns at most n of the most recent samples.
func (p *Population) Tail(n int) []float64 {
	if n <= 0 || len(p.series) <= n {
		return p.series
	}
	return p.series[len(p.series)-n:]
}

func (p *Population) Reset() {
	p.series = p.series[:0]
	p.peak, p.peakAt = 0, 0
}
