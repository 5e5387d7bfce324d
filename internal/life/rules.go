package life

// Survives reports the B3/S23 outcome for a cell with the given number of
// live Moore neighbours.
func Survives(alive bool, neighbors int) bool {
	return (alive && neighbors == 2) || neighbors == 3
}

// Neighbors counts live cells in the Moore neighbourhood of (row, col).
// Cells beyond the edge count as dead.
func (g Grid) Neighbors(row, col int) int {
	n := 0
	for dr := -1; dr <= 1; dr++ {
		r := row + dr
		if r < 0 || r >= g.h {
			continue
		}
		for dc := -1; dc <= 1; dc++ {
			c := col + dc
			if (dr == 0 && dc == 0) || c < 0 || c >= g.w {
				continue
			}
			n += int(g.cells[r*g.w+c])
		}
	}
	return n
}

// Next returns the successor of g. Every cell is evaluated against g, never
// against the partially built result, and the boundary does not wrap.
func Next(g Grid) Grid {
	if g.IsZero() {
		return g
	}
	next := Grid{w: g.w, h: g.h, cells: make([]uint8, len(g.cells))}
	for r := 0; r < g.h; r++ {
		for c := 0; c < g.w; c++ {
			idx := r*g.w + c
			if Survives(g.cells[idx] == Alive, g.Neighbors(r, c)) {
				next.cells[idx] = Alive
			}
		}
	}
	return next
}

// Pad frames g with dead cells: colPad columns on the left and right of
// every row, then rowPad full rows above and below. Negative widths count
// as zero.
func Pad(g Grid, rowPad, colPad int) Grid {
	rowPad, colPad = max(rowPad, 0), max(colPad, 0)
	w, h := g.w+2*colPad, g.h+2*rowPad
	out := Grid{w: w, h: h, cells: make([]uint8, w*h)}
	for r := 0; r < g.h; r++ {
		dst := (r+rowPad)*w + colPad
		copy(out.cells[dst:dst+g.w], g.cells[r*g.w:(r+1)*g.w])
	}
	return out
}

// PadUniform pads n dead cells on every side.
func PadUniform(g Grid, n int) Grid {
	return Pad(g, n, n)
}

// ReferenceRowPadding is the fixed number of rows PadReference adds above
// and below, whatever the column padding.
const ReferenceRowPadding = 5

// PadReference pads n columns on each side but always ReferenceRowPadding
// rows, the layout of the classic browser visualization.
func PadReference(g Grid, n int) Grid {
	return Pad(g, ReferenceRowPadding, n)
}
