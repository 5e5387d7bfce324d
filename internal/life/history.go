package life

// HasConverged reports whether current repeats either of the two previous
// generations, i.e. the automaton reached a fixed point or a period-2
// cycle. Longer periods are not detected.
func HasConverged(current, prev, prevPrev Grid) bool {
	if current.IsZero() {
		return false
	}
	return current.Equal(prev) || current.Equal(prevPrev)
}

// History keeps the two most recently superseded generations.
type History struct {
	Prev     Grid
	PrevPrev Grid
}

// Push records g as the newest previous generation, discarding the oldest.
func (h *History) Push(g Grid) {
	h.PrevPrev = h.Prev
	h.Prev = g
}

// Converged is HasConverged against the recorded window.
func (h *History) Converged(current Grid) bool {
	return HasConverged(current, h.Prev, h.PrevPrev)
}

// Len reports how many generations the window currently holds.
func (h *History) Len() int {
	switch {
	case h.PrevPrev.IsZero() && h.Prev.IsZero():
		return 0
	case h.PrevPrev.IsZero():
		return 1
	}
	return 2
}

// Reset empties the window.
func (h *History) Reset() {
	*h = History{}
}
