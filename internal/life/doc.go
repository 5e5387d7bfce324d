// Package life implements the Game of Life automaton that gol3d stacks into
// layers of cubes.
//
// The package is small and pure:
//
//   - [Grid]: immutable rectangular matrix of binary cells
//   - [Next]: one synchronous B3/S23 step with dead-cell boundaries
//   - [Pad], [PadUniform], [PadReference]: dead-cell framing of a seed grid
//   - [HasConverged] and [History]: fixed-point and period-2 detection
//   - [Pattern]: named seed grids
//
// # Example
//
//	seed := life.PadUniform(life.MustPattern("glider"), 10)
//	var hist life.History
//	cur := seed
//	for {
//		hist.Push(cur)
//		cur = life.Next(cur)
//		if hist.Converged(cur) {
//			break
//		}
//	}
//
// # Thread Safety
//
// Grid values are never mutated after construction, so they can be shared
// freely. History is a plain value owned by a single caller.
package life
