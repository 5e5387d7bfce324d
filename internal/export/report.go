// Package export writes the outcome of a run to files: a JSON report of
// the generations and SVG drawings of the stack and population curve.
package export

import (
	"encoding/json"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/san-kum/gol3d/internal/driver"
	"github.com/san-kum/gol3d/internal/life"
	"github.com/san-kum/gol3d/internal/metrics"
)

type Report struct {
	Seed        string    `json:"seed"`
	Width       int       `json:"width"`
	Height      int       `json:"height"`
	Generations int       `json:"generations"`
	Stopped     string    `json:"stopped"`
	Population  []float64 `json:"population"`
	Peak        int       `json:"peak"`
	PeakAt      int       `json:"peak_at"`
	CellFlips   int       `json:"cell_flips"`
	Final       []string  `json:"final"`
}

// NewReport summarizes a finished driver. pop and churn must have observed
// the whole run.
func NewReport(seed string, drv *driver.Driver, pop *metrics.Population, churn *metrics.Churn) Report {
	gen := drv.Generation()
	peak, peakAt := pop.Peak()
	return Report{
		Seed:        seed,
		Width:       gen.Grid.Width(),
		Height:      gen.Grid.Height(),
		Generations: gen.Index,
		Stopped:     string(drv.Reason()),
		Population:  pop.Series(),
		Peak:        peak,
		PeakAt:      peakAt,
		CellFlips:   int(churn.Value()),
		Final:       gridLines(gen.Grid),
	}
}

func gridLines(g life.Grid) []string {
	return strings.Split(strings.TrimSuffix(g.String(), "\n"), "\n")
}

func WriteJSON(w io.Writer, r Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(r), "encode report")
}

// WriteFile calls write with path opened for writing; "-" means stdout.
func WriteFile(path string, write func(io.Writer) error) error {
	if path == "-" {
		return write(os.Stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return errors.Wrapf(f.Close(), "close %s", path)
}
