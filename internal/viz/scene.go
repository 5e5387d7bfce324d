package viz

import (
	"time"

	"github.com/san-kum/gol3d/internal/life"
)

const (
	CubeSize = 1.0
	Spacing  = 1.0

	// Cubes smaller than this many pixels on screen are drawn as a dot.
	minCubePixels = 3.0
)

// Layer is one rendered generation: the centres of its cubes at a common
// height.
type Layer struct {
	Height float64
	Cubes  []Vec3
}

// Scene collects cube layers and animates the camera that looks at them.
// It implements driver.Renderer.
type Scene struct {
	Camera *Camera

	layers    []Layer
	maxLayers int
	tween     *Tween
	now       func() time.Time
}

// NewScene returns an empty scene keeping at most maxLayers layers; zero or
// less keeps all of them.
func NewScene(maxLayers int) *Scene {
	return &Scene{
		Camera:    NewCamera(),
		maxLayers: maxLayers,
		now:       time.Now,
	}
}

// SetClock replaces the time source used to start camera glides.
func (s *Scene) SetClock(now func() time.Time) { s.now = now }

// LayerOf converts the live cells of g to cube centres at height. The grid
// is centred on the origin with columns along X and rows along Z.
func LayerOf(g life.Grid, height float64) Layer {
	w, h := float64(g.Width())*Spacing, float64(g.Height())*Spacing
	live := g.LiveCells()
	cubes := make([]Vec3, len(live))
	for i, c := range live {
		cubes[i] = Vec3{
			X: float64(c.Col)*Spacing - w/2,
			Y: height,
			Z: float64(c.Row)*Spacing - h/2,
		}
	}
	return Layer{Height: height, Cubes: cubes}
}

func (s *Scene) CreateLayer(g life.Grid, height float64) {
	s.layers = append(s.layers, LayerOf(g, height))
	if s.maxLayers > 0 && len(s.layers) > s.maxLayers {
		s.layers = s.layers[len(s.layers)-s.maxLayers:]
	}
}

// MoveViewpoint starts a glide of the camera height from wherever it is now
// toward targetHeight. A newer glide replaces one still in progress.
func (s *Scene) MoveViewpoint(targetHeight float64, d time.Duration) {
	s.tween = NewTween(s.Camera.Height, targetHeight, s.now(), d)
}

// Update advances the camera glide to now.
func (s *Scene) Update(now time.Time) {
	if s.tween == nil {
		return
	}
	s.Camera.Height = s.tween.Value(now)
	if s.tween.Done(now) {
		s.tween = nil
	}
}

// Settle jumps the camera to the end of any glide in progress.
func (s *Scene) Settle() {
	if s.tween != nil {
		s.Camera.Height = s.tween.To
		s.tween = nil
	}
}

// Animating reports whether a camera glide is in progress.
func (s *Scene) Animating() bool { return s.tween != nil }

// Layers returns the retained layers, oldest first.
func (s *Scene) Layers() []Layer { return s.layers }

// CubeCount returns the number of cubes across retained layers.
func (s *Scene) CubeCount() int {
	n := 0
	for _, l := range s.layers {
		n += len(l.Cubes)
	}
	return n
}

// Render draws every retained layer onto c.
func (s *Scene) Render(c *Canvas) {
	c.Clear()
	sw, sh := c.PixelSize()
	v := s.Camera.view(sw, sh)
	for _, l := range s.layers {
		for _, p := range l.Cubes {
			drawCube(c, v, p, CubeSize, minCubePixels)
		}
	}
}
