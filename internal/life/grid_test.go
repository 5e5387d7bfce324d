package life_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/gol3d/internal/life"
)

var _ = Describe("Grid", func() {
	It("rejects empty input", func() {
		_, err := life.NewGrid(nil)
		Expect(err).To(MatchError(life.ErrEmptyGrid))
		_, err = life.NewGrid([][]uint8{{}})
		Expect(err).To(MatchError(life.ErrEmptyGrid))
	})

	It("rejects ragged rows", func() {
		_, err := life.NewGrid([][]uint8{{1, 0}, {1}})
		Expect(err).To(MatchError(life.ErrNotRectangular))
	})

	It("rejects non-binary cells", func() {
		_, err := life.NewGrid([][]uint8{{1, 2}})
		Expect(err).To(MatchError(life.ErrInvalidCell))
	})

	It("copies its input", func() {
		rows := [][]uint8{{1, 0}, {0, 1}}
		g := life.MustGrid(rows)
		rows[0][0] = 0
		Expect(g.Alive(0, 0)).To(BeTrue())

		out := g.Rows()
		out[1][1] = 0
		Expect(g.Alive(1, 1)).To(BeTrue())
	})

	It("treats out-of-range coordinates as dead", func() {
		g := life.MustGrid([][]uint8{{1}})
		Expect(g.Alive(-1, 0)).To(BeFalse())
		Expect(g.Alive(0, 1)).To(BeFalse())
	})

	It("parses its own string form", func() {
		g := life.Random(7, 11, 0.5, 3)
		back, err := life.Parse(g.String())
		Expect(err).NotTo(HaveOccurred())
		Expect(back.Equal(g)).To(BeTrue())
	})

	It("lists live cells in row-major order", func() {
		g := life.MustPattern("glider")
		Expect(g.LiveCells()).To(Equal([]life.Cell{
			{Row: 0, Col: 1}, {Row: 1, Col: 2}, {Row: 2, Col: 0}, {Row: 2, Col: 1}, {Row: 2, Col: 2},
		}))
	})

	It("looks up registered patterns", func() {
		_, err := life.LookupPattern("nope")
		Expect(err).To(MatchError(life.ErrUnknownPattern))
		Expect(life.Patterns()).NotTo(BeEmpty())
		for _, p := range life.Patterns() {
			Expect(p.Grid.IsZero()).To(BeFalse(), p.Name)
		}
	})

	It("builds the same random grid for the same seed", func() {
		Expect(life.Random(9, 9, 0.3, 42).Equal(life.Random(9, 9, 0.3, 42))).To(BeTrue())
	})
})
