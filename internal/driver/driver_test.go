package driver_test

import (
	"context"
	"io"
	"log/slog"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/gol3d/internal/driver"
	"github.com/san-kum/gol3d/internal/life"
	"github.com/san-kum/gol3d/internal/metrics"
)

type layer struct {
	grid   life.Grid
	height float64
}

type move struct {
	target float64
	dur    time.Duration
}

type recorder struct {
	layers []layer
	moves  []move
}

func (r *recorder) CreateLayer(g life.Grid, height float64) {
	r.layers = append(r.layers, layer{grid: g, height: height})
}

func (r *recorder) MoveViewpoint(target float64, d time.Duration) {
	r.moves = append(r.moves, move{target: target, dur: d})
}

var quiet = slog.New(slog.NewTextHandler(io.Discard, nil))

var _ = Describe("Driver", func() {
	var rec *recorder

	BeforeEach(func() {
		rec = &recorder{}
	})

	It("renders the seed as layer 0 on creation", func() {
		seed := life.MustPattern("glider")
		d := driver.New(seed, rec, driver.WithLogger(quiet))
		Expect(rec.layers).To(HaveLen(1))
		Expect(rec.layers[0].height).To(Equal(0.0))
		Expect(rec.layers[0].grid.Equal(seed)).To(BeTrue())
		Expect(rec.moves).To(BeEmpty())
		Expect(d.Generation().Index).To(Equal(0))
		Expect(d.Period()).To(Equal(100 * time.Millisecond))
	})

	It("stacks each generation one unit higher and leads the camera", func() {
		seed := life.PadUniform(life.MustPattern("glider"), 8)
		d := driver.New(seed, rec, driver.WithLogger(quiet), driver.WithCameraLead(10), driver.WithTween(time.Second))

		Expect(d.Tick()).To(BeTrue())
		Expect(d.Tick()).To(BeTrue())

		Expect(rec.layers).To(HaveLen(3))
		Expect(rec.layers[1].height).To(Equal(1.0))
		Expect(rec.layers[2].height).To(Equal(2.0))
		Expect(rec.layers[2].grid.Equal(life.Next(life.Next(seed)))).To(BeTrue())
		Expect(rec.moves).To(Equal([]move{{11, time.Second}, {12, time.Second}}))
	})

	It("stops on the first tick for a still life", func() {
		d := driver.New(life.MustPattern("block"), rec, driver.WithLogger(quiet))
		Expect(d.Tick()).To(BeFalse())
		Expect(d.Stopped()).To(BeTrue())
		Expect(d.Reason()).To(Equal(driver.ReasonConverged))
		Expect(d.Generation().Index).To(Equal(1))
	})

	It("stops on the second tick for a period-2 oscillator", func() {
		d := driver.New(life.MustPattern("blinker"), rec, driver.WithLogger(quiet))
		Expect(d.Tick()).To(BeTrue())
		Expect(d.Tick()).To(BeFalse())
		Expect(d.Reason()).To(Equal(driver.ReasonConverged))
	})

	It("stops immediately when every cell is dead", func() {
		d := driver.New(life.Blank(4, 4), rec, driver.WithLogger(quiet))
		Expect(d.Tick()).To(BeFalse())
		Expect(d.Reason()).To(Equal(driver.ReasonConverged))
	})

	It("ignores ticks and repeated stops once stopped", func() {
		d := driver.New(life.MustPattern("glider"), rec, driver.WithLogger(quiet))
		d.Stop()
		d.Stop()
		Expect(d.Tick()).To(BeFalse())
		Expect(rec.layers).To(HaveLen(1))
		Expect(d.Reason()).To(Equal(driver.ReasonCanceled))
	})

	It("honours a generation cap", func() {
		seed := life.PadUniform(life.MustPattern("glider"), 20)
		d := driver.New(seed, rec, driver.WithLogger(quiet), driver.WithMaxGenerations(3))
		for d.Tick() {
		}
		Expect(d.Generation().Index).To(Equal(3))
		Expect(d.Reason()).To(Equal(driver.ReasonMaxGens))
	})

	It("feeds observers every generation including the seed", func() {
		pop := metrics.NewPopulation()
		d := driver.New(life.MustPattern("blinker"), rec, driver.WithLogger(quiet), driver.WithObserver(pop))
		for d.Tick() {
		}
		Expect(pop.Series()).To(Equal([]float64{3, 3, 3}))
	})

	Describe("Run", func() {
		It("returns nil once the automaton converges", func() {
			d := driver.New(life.MustPattern("toad"), rec, driver.WithLogger(quiet), driver.WithPeriod(time.Millisecond))
			Expect(d.Run(context.Background())).To(Succeed())
			Expect(d.Reason()).To(Equal(driver.ReasonConverged))
			Expect(d.Generation().Index).To(Equal(2))
		})

		It("runs back to back without a period", func() {
			d := driver.New(life.MustPattern("beacon"), rec, driver.WithLogger(quiet), driver.WithPeriod(0))
			Expect(d.Run(context.Background())).To(Succeed())
			Expect(d.Generation().Index).To(Equal(2))
			Expect(rec.layers).To(HaveLen(3))
		})

		It("returns the context error when cancelled", func() {
			seed := life.PadUniform(life.MustPattern("glider"), 200)
			d := driver.New(seed, rec, driver.WithLogger(quiet), driver.WithPeriod(time.Millisecond))
			ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
			defer cancel()
			Expect(d.Run(ctx)).To(MatchError(context.DeadlineExceeded))
			Expect(d.Stopped()).To(BeTrue())
			Expect(d.Reason()).To(Equal(driver.ReasonCanceled))
		})
	})
})
