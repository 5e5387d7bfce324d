package export

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/gol3d/internal/driver"
	"github.com/san-kum/gol3d/internal/life"
	"github.com/san-kum/gol3d/internal/metrics"
	"github.com/san-kum/gol3d/internal/viz"
)

func TestCanvasToSVG(t *testing.T) {
	c := viz.NewCanvas(2, 1)
	c.Set(0, 0)
	c.Set(3, 3)

	svg := CanvasToSVG(c, 2, "#00ff00")
	if !strings.HasPrefix(svg, "<?xml") || !strings.HasSuffix(svg, "</svg>") {
		t.Fatalf("malformed svg: %s", svg)
	}
	if n := strings.Count(svg, "<circle"); n != 2 {
		t.Errorf("expected 2 circles, got %d", n)
	}
	if !strings.Contains(svg, `width="8" height="8"`) {
		t.Errorf("unexpected size in %s", svg)
	}
	if CanvasToSVG(nil, 1, "#fff") != "" {
		t.Error("nil canvas should give empty output")
	}
}

func TestSeriesToSVG(t *testing.T) {
	if SeriesToSVG([]float64{1}, 100, 50, "#fff") != "" {
		t.Error("single sample should give empty output")
	}
	svg := SeriesToSVG([]float64{3, 3, 3}, 100, 50, "#fff")
	if strings.Count(svg, " L") != 2 {
		t.Errorf("expected 2 line segments in %s", svg)
	}
	if !strings.Contains(svg, "M0.0,") || !strings.Contains(svg, "L100.0,") {
		t.Errorf("path should span the full width: %s", svg)
	}
}

func TestStackSnapshot(t *testing.T) {
	scene := viz.NewScene(0)
	driver.New(life.PadUniform(life.MustPattern("block"), 1), scene).Tick()

	var buf bytes.Buffer
	if err := StackSnapshot(&buf, scene, 40, 20, "#00ff00"); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "<circle") {
		t.Error("snapshot of a non-empty stack drew nothing")
	}
	if scene.Animating() {
		t.Error("snapshot left the camera glide running")
	}
}

func TestReport(t *testing.T) {
	pop, churn, _ := metrics.Defaults()
	drv := driver.New(life.PadUniform(life.MustPattern("blinker"), 0), driver.Discard,
		driver.WithObserver(pop), driver.WithObserver(churn))
	for drv.Tick() {
	}

	r := NewReport("blinker", drv, pop, churn)
	if r.Generations != 2 || r.Stopped != "converged" {
		t.Errorf("unexpected outcome: %d generations, stopped %q", r.Generations, r.Stopped)
	}
	if len(r.Population) != 3 || r.Peak != 3 {
		t.Errorf("unexpected population data: %v peak %d", r.Population, r.Peak)
	}
	if r.CellFlips != 8 {
		t.Errorf("expected 8 cell flips, got %d", r.CellFlips)
	}
	if len(r.Final) != 5 || r.Final[1] != "..#.." || r.Final[2] != "..#.." {
		t.Errorf("unexpected final grid %q", r.Final)
	}

	var buf bytes.Buffer
	if err := WriteJSON(&buf, r); err != nil {
		t.Fatal(err)
	}
	var back Report
	if err := json.Unmarshal(buf.Bytes(), &back); err != nil {
		t.Fatalf("report is not valid json: %v", err)
	}
	if back.Seed != "blinker" || back.Generations != 2 {
		t.Errorf("decoded report mismatch: %+v", back)
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	err := WriteFile(path, func(w io.Writer) error {
		_, err := io.WriteString(w, "stack")
		return err
	})
	if err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "stack" {
		t.Errorf("got %q", data)
	}
	if err := WriteFile(filepath.Join(t.TempDir(), "missing", "x"), func(io.Writer) error { return nil }); err == nil {
		t.Error("expected error for missing directory")
	}
}
