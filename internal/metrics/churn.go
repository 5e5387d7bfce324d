package metrics

import "github.com/san-kum/gol3d/internal/life"

// Churn counts births and deaths between consecutive generations.
type Churn struct {
	prev   life.Grid
	births int
	deaths int
	total  int
}

func NewChurn() *Churn { return &Churn{} }

func (c *Churn) Name() string { return "churn" }

func (c *Churn) Observe(gen int, g life.Grid) {
	c.births, c.deaths = 0, 0
	if !c.prev.IsZero() && c.prev.Width() == g.Width() && c.prev.Height() == g.Height() {
		for r := 0; r < g.Height(); r++ {
			for col := 0; col < g.Width(); col++ {
				was, is := c.prev.Alive(r, col), g.Alive(r, col)
				switch {
				case is && !was:
					c.births++
				case was && !is:
					c.deaths++
				}
			}
		}
		c.total += c.births + c.deaths
	}
	c.prev = g
}

// Last returns the births and deaths of the most recent step.
func (c *Churn) Last() (births, deaths int) { return c.births, c.deaths }

// Value is the cumulative number of cell flips.
func (c *Churn) Value() float64 { return float64(c.total) }

func (c *Churn) Reset() { *c = Churn{} }
