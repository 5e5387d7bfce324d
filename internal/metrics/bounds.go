package metrics

import "github.com/san-kum/gol3d/internal/life"

// Bounds tracks the bounding box of every live cell seen during a run.
type Bounds struct {
	MinRow, MaxRow int
	MinCol, MaxCol int
	valid          bool
}

func NewBounds() *Bounds { return &Bounds{} }

func (b *Bounds) Name() string { return "bounds" }

func (b *Bounds) Observe(gen int, g life.Grid) {
	for _, c := range g.LiveCells() {
		if !b.valid {
			b.MinRow, b.MaxRow, b.MinCol, b.MaxCol = c.Row, c.Row, c.Col, c.Col
			b.valid = true
			continue
		}
		b.MinRow, b.MaxRow = min(b.MinRow, c.Row), max(b.MaxRow, c.Row)
		b.MinCol, b.MaxCol = min(b.MinCol, c.Col), max(b.MaxCol, c.Col)
	}
}

// Size returns the height and width of the box, or zeros if nothing lived.
func (b *Bounds) Size() (int, int) {
	if !b.valid {
		return 0, 0
	}
	return b.MaxRow - b.MinRow + 1, b.MaxCol - b.MinCol + 1
}

// Value is the area of the box.
func (b *Bounds) Value() float64 {
	h, w := b.Size()
	return float64(h * w)
}

func (b *Bounds) Reset() { *b = Bounds{} }
