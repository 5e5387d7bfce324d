package life_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/gol3d/internal/life"
)

var _ = Describe("HasConverged", func() {
	a := life.MustPattern("blinker")
	b := life.Next(a)
	c := life.Blank(5, 5)

	It("detects a repeat of the previous generation", func() {
		Expect(life.HasConverged(a, a, c)).To(BeTrue())
	})

	It("detects a repeat of the generation before that", func() {
		Expect(life.HasConverged(a, b, a)).To(BeTrue())
	})

	It("is false when current differs from both", func() {
		Expect(life.HasConverged(a, b, c)).To(BeFalse())
	})

	It("never matches an absent generation", func() {
		Expect(life.HasConverged(a, life.Grid{}, life.Grid{})).To(BeFalse())
	})
})

var _ = Describe("History", func() {
	var h life.History

	BeforeEach(func() {
		h.Reset()
	})

	It("holds at most two generations", func() {
		g0 := life.MustPattern("glider")
		g1 := life.Next(g0)
		g2 := life.Next(g1)

		Expect(h.Len()).To(Equal(0))
		h.Push(g0)
		Expect(h.Len()).To(Equal(1))
		h.Push(g1)
		h.Push(g2)
		Expect(h.Len()).To(Equal(2))
		Expect(h.Prev.Equal(g2)).To(BeTrue())
		Expect(h.PrevPrev.Equal(g1)).To(BeTrue())
	})

	It("reports a blinker as converged on its second step", func() {
		cur := life.MustPattern("blinker")
		h.Push(cur)
		cur = life.Next(cur)
		Expect(h.Converged(cur)).To(BeFalse())
		h.Push(cur)
		cur = life.Next(cur)
		Expect(h.Converged(cur)).To(BeTrue())
	})
})
