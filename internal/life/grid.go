package life

import (
	"strings"
)

const (
	Dead  uint8 = 0
	Alive uint8 = 1
)

// Grid is a rectangular matrix of binary cells stored in row-major order.
// The zero Grid has no cells and stands for "no grid yet".
type Grid struct {
	w, h  int
	cells []uint8
}

// NewGrid validates rows and copies them into a Grid.
func NewGrid(rows [][]uint8) (Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return Grid{}, ErrEmptyGrid
	}
	w := len(rows[0])
	g := Blank(len(rows), w)
	for r, row := range rows {
		if len(row) != w {
			return Grid{}, &CellError{Row: r, Col: -1, Wrapped: ErrNotRectangular}
		}
		for c, v := range row {
			if v != Dead && v != Alive {
				return Grid{}, &CellError{Row: r, Col: c, Wrapped: ErrInvalidCell}
			}
			g.cells[r*w+c] = v
		}
	}
	return g, nil
}

// MustGrid is NewGrid for literal seeds; it panics on invalid input.
func MustGrid(rows [][]uint8) Grid {
	g, err := NewGrid(rows)
	if err != nil {
		panic(err)
	}
	return g
}

// Blank returns an all-dead grid of h rows by w columns. Sizes below 1 are
// clamped to 1.
func Blank(h, w int) Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return Grid{w: w, h: h, cells: make([]uint8, w*h)}
}

// Parse reads the textual form produced by String: one line per row, '#'
// or 'O' or '1' for live cells and '.' or '0' or ' ' for dead ones. Blank
// leading and trailing lines are ignored.
func Parse(text string) (Grid, error) {
	lines := strings.Split(strings.Trim(text, "\n"), "\n")
	rows := make([][]uint8, 0, len(lines))
	for r, line := range lines {
		line = strings.TrimRight(line, "\r")
		row := make([]uint8, 0, len(line))
		for c, ch := range line {
			switch ch {
			case '#', 'O', '1':
				row = append(row, Alive)
			case '.', '0', ' ':
				row = append(row, Dead)
			default:
				return Grid{}, &CellError{Row: r, Col: c, Wrapped: ErrInvalidCell}
			}
		}
		rows = append(rows, row)
	}
	return NewGrid(rows)
}

func (g Grid) Width() int  { return g.w }
func (g Grid) Height() int { return g.h }

// IsZero reports whether g is the zero Grid.
func (g Grid) IsZero() bool { return len(g.cells) == 0 }

// Alive reports whether the cell at (row, col) is live. Coordinates outside
// the grid are dead.
func (g Grid) Alive(row, col int) bool {
	if row < 0 || row >= g.h || col < 0 || col >= g.w {
		return false
	}
	return g.cells[row*g.w+col] == Alive
}

// Cells returns a copy of the row-major cell data.
func (g Grid) Cells() []uint8 {
	out := make([]uint8, len(g.cells))
	copy(out, g.cells)
	return out
}

// Rows returns a copy of the grid as a slice of rows.
func (g Grid) Rows() [][]uint8 {
	rows := make([][]uint8, g.h)
	for r := range rows {
		rows[r] = make([]uint8, g.w)
		copy(rows[r], g.cells[r*g.w:(r+1)*g.w])
	}
	return rows
}

// Population counts live cells.
func (g Grid) Population() int {
	n := 0
	for _, c := range g.cells {
		n += int(c)
	}
	return n
}

// Equal reports whether g and o have the same dimensions and cells.
func (g Grid) Equal(o Grid) bool {
	if g.w != o.w || g.h != o.h || len(g.cells) != len(o.cells) {
		return false
	}
	for i, c := range g.cells {
		if o.cells[i] != c {
			return false
		}
	}
	return true
}

// Cell is a live-cell coordinate.
type Cell struct {
	Row, Col int
}

// LiveCells lists live cells in row-major order.
func (g Grid) LiveCells() []Cell {
	out := make([]Cell, 0, g.Population())
	for i, c := range g.cells {
		if c == Alive {
			out = append(out, Cell{Row: i / g.w, Col: i % g.w})
		}
	}
	return out
}

func (g Grid) String() string {
	var b strings.Builder
	b.Grow((g.w + 1) * g.h)
	for r := 0; r < g.h; r++ {
		for c := 0; c < g.w; c++ {
			if g.cells[r*g.w+c] == Alive {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
