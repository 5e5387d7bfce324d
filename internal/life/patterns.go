package life

import (
	"fmt"
	"math/rand/v2"
	"sort"
)

// Pattern is a named seed grid.
type Pattern struct {
	Name        string
	Description string
	Grid        Grid
}

var patterns = map[string]Pattern{}

func register(name, desc, text string) {
	g, err := Parse(text)
	if err != nil {
		panic(fmt.Sprintf("pattern %s: %v", name, err))
	}
	patterns[name] = Pattern{Name: name, Description: desc, Grid: g}
}

func init() {
	patterns["reference"] = Pattern{
		Name:        "reference",
		Description: "seed of the classic browser demo",
		Grid: MustGrid([][]uint8{
			{1, 1, 1, 0},
			{1, 0, 0, 0},
			{0, 1, 0, 0},
		}),
	}
	register("block", "2x2 still life", `
....
.##.
.##.
....`)
	register("blinker", "period-2 oscillator", `
.....
..#..
..#..
..#..
.....`)
	register("toad", "period-2 oscillator", `
......
......
..###.
.###..
......
......`)
	register("beacon", "period-2 oscillator", `
......
.##...
.##...
...##.
...##.
......`)
	register("glider", "diagonal spaceship", `
.#.
..#
###`)
	register("rpentomino", "methuselah, settles after 1103 generations", `
.##
##.
.#.`)
	register("acorn", "methuselah, 5206 generations", `
.#.....
...#...
##..###`)
	register("diehard", "vanishes after 130 generations", `
......#.
##......
.#...###`)
	patterns["empty"] = Pattern{Name: "empty", Description: "single dead cell", Grid: Blank(1, 1)}
}

// LookupPattern returns the named pattern.
func LookupPattern(name string) (Pattern, error) {
	p, ok := patterns[name]
	if !ok {
		return Pattern{}, fmt.Errorf("%w: %q", ErrUnknownPattern, name)
	}
	return p, nil
}

// MustPattern returns the named pattern's grid or panics.
func MustPattern(name string) Grid {
	p, err := LookupPattern(name)
	if err != nil {
		panic(err)
	}
	return p.Grid
}

// Patterns lists registered patterns sorted by name.
func Patterns() []Pattern {
	out := make([]Pattern, 0, len(patterns))
	for _, p := range patterns {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Random fills an h by w grid, each cell alive with probability density.
// The same seed always yields the same grid.
func Random(h, w int, density float64, seed int64) Grid {
	g := Blank(h, w)
	r := rand.New(rand.NewPCG(uint64(seed), 0))
	for i := range g.cells {
		if r.Float64() < density {
			g.cells[i] = Alive
		}
	}
	return g
}
