package life_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/gol3d/internal/life"
)

var _ = Describe("Next", func() {
	It("keeps the dimensions of every grid", func() {
		grids := []life.Grid{life.Blank(1, 1), life.Blank(3, 7), life.Random(17, 9, 0.4, 7)}
		for _, p := range life.Patterns() {
			grids = append(grids, p.Grid)
		}
		for _, g := range grids {
			n := life.Next(g)
			Expect(n.Width()).To(Equal(g.Width()))
			Expect(n.Height()).To(Equal(g.Height()))
		}
	})

	It("maps an all-dead grid to itself", func() {
		g := life.Blank(6, 4)
		Expect(life.Next(g).Equal(g)).To(BeTrue())
	})

	It("keeps the block still life fixed", func() {
		block := life.MustPattern("block")
		Expect(life.Next(block).Equal(block)).To(BeTrue())
	})

	It("returns the blinker after two steps", func() {
		blinker := life.MustPattern("blinker")
		once := life.Next(blinker)
		Expect(once.Equal(blinker)).To(BeFalse())
		Expect(once.String()).To(Equal(".....\n.....\n.###.\n.....\n.....\n"))
		Expect(life.Next(once).Equal(blinker)).To(BeTrue())
	})

	It("does not mutate its input", func() {
		g := life.MustPattern("glider")
		before := g.Cells()
		_ = life.Next(g)
		Expect(g.Cells()).To(Equal(before))
	})

	It("treats cells past the edge as dead instead of wrapping", func() {
		// A horizontal blinker on the top edge only keeps its centre column.
		g := life.MustGrid([][]uint8{
			{1, 1, 1},
			{0, 0, 0},
		})
		Expect(life.Next(g).String()).To(Equal(".#.\n.#.\n"))
	})

	Context("with the reference seed", func() {
		It("matches the hand-computed successor", func() {
			seed := life.MustPattern("reference")
			want := life.MustGrid([][]uint8{
				{1, 1, 0, 0},
				{1, 0, 1, 0},
				{0, 0, 0, 0},
			})
			Expect(life.Next(seed).Equal(want)).To(BeTrue())
		})

		It("grows into the padding when framed", func() {
			seed := life.PadUniform(life.MustPattern("reference"), 1)
			want := life.MustGrid([][]uint8{
				{0, 0, 1, 0, 0, 0},
				{0, 1, 1, 0, 0, 0},
				{0, 1, 0, 1, 0, 0},
				{0, 0, 0, 0, 0, 0},
				{0, 0, 0, 0, 0, 0},
			})
			Expect(life.Next(seed).Equal(want)).To(BeTrue())
		})
	})

	DescribeTable("Survives",
		func(alive bool, neighbors int, want bool) {
			Expect(life.Survives(alive, neighbors)).To(Equal(want))
		},
		Entry("live, lonely", true, 1, false),
		Entry("live, two", true, 2, true),
		Entry("live, three", true, 3, true),
		Entry("live, crowded", true, 4, false),
		Entry("dead, two", false, 2, false),
		Entry("dead, three", false, 3, true),
		Entry("dead, four", false, 4, false),
	)
})

var _ = Describe("Pad", func() {
	seed := life.MustPattern("reference")

	It("grows each side by exactly the padding", func() {
		p := life.Pad(seed, 2, 3)
		Expect(p.Height()).To(Equal(seed.Height() + 4))
		Expect(p.Width()).To(Equal(seed.Width() + 6))
	})

	It("keeps live cells in place relative to each other and adds only dead cells", func() {
		p := life.PadUniform(seed, 4)
		Expect(p.Population()).To(Equal(seed.Population()))
		for r := 0; r < seed.Height(); r++ {
			for c := 0; c < seed.Width(); c++ {
				Expect(p.Alive(r+4, c+4)).To(Equal(seed.Alive(r, c)))
			}
		}
	})

	It("replicates the fixed five-row framing of the reference layout", func() {
		p := life.PadReference(seed, 100)
		Expect(p.Height()).To(Equal(seed.Height() + 2*life.ReferenceRowPadding))
		Expect(p.Width()).To(Equal(seed.Width() + 200))
		Expect(p.Alive(5, 100)).To(BeTrue())
	})

	It("treats negative widths as zero", func() {
		Expect(life.Pad(seed, -1, -3).Equal(seed)).To(BeTrue())
	})
})
