package viz

import (
	"math"
)

type Vec3 struct {
	X, Y, Z float64
}

// Vec3 methods.
func (v Vec3) Add(o Vec3) Vec3      { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3      { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }
func (v Vec3) Length() float64      { return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z) }
func (v Vec3) Normalize() Vec3 {
	if l := v.Length(); l != 0 {
		return v.Scale(1 / l)
	}
	return Vec3{}
}
func (v Vec3) Dot(o Vec3) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{v.Y*o.Z - v.Z*o.Y, v.Z*o.X - v.X*o.Z, v.X*o.Y - v.Y*o.X}
}

const maxPitch = 1.55

// Camera orbits a target on the vertical axis. Height is the camera's own Y
// coordinate; the point it looks at sits below it so that the viewing
// direction does not change as the camera glides up.
type Camera struct {
	Target   Vec3
	Height   float64
	Yaw      float64
	Pitch    float64
	Distance float64
	FOV      float64
	Near     float64
}

// NewCamera places the camera at (15, 10, 10) looking at the origin.
func NewCamera() *Camera {
	return NewCameraAt(Vec3{15, 10, 10}, Vec3{})
}

// NewCameraAt places the camera at pos looking at target.
func NewCameraAt(pos, target Vec3) *Camera {
	off := pos.Sub(target)
	dist := off.Length()
	if dist == 0 {
		off, dist = Vec3{0, 0, 1}, 1
	}
	return &Camera{
		Target:   Vec3{target.X, 0, target.Z},
		Height:   pos.Y,
		Yaw:      math.Atan2(off.Z, off.X),
		Pitch:    math.Asin(off.Y / dist),
		Distance: dist,
		FOV:      75 * math.Pi / 180,
		Near:     0.1,
	}
}

func (c *Camera) offset() Vec3 {
	cp := math.Cos(c.Pitch)
	return Vec3{
		c.Distance * cp * math.Cos(c.Yaw),
		c.Distance * math.Sin(c.Pitch),
		c.Distance * cp * math.Sin(c.Yaw),
	}
}

// Position returns the camera's world position.
func (c *Camera) Position() Vec3 {
	return c.LookAt().Add(c.offset())
}

// LookAt returns the world point at the centre of the view.
func (c *Camera) LookAt() Vec3 {
	return Vec3{c.Target.X, c.Height - c.Distance*math.Sin(c.Pitch), c.Target.Z}
}

// Orbit rotates the camera around its look-at point, keeping its height.
func (c *Camera) Orbit(dYaw, dPitch float64) {
	c.Yaw += dYaw
	c.Pitch = math.Max(-maxPitch, math.Min(maxPitch, c.Pitch+dPitch))
}

func (c *Camera) ZoomIn()  { c.Distance = math.Max(2, c.Distance/1.2) }
func (c *Camera) ZoomOut() { c.Distance = math.Min(2000, c.Distance*1.2) }

// view holds the camera basis for one frame.
type view struct {
	eye, right, up, fwd Vec3
	focal               float64
	near                float64
	cx, cy              float64
}

func (c *Camera) view(sw, sh int) view {
	eye := c.Position()
	fwd := c.LookAt().Sub(eye).Normalize()
	right := fwd.Cross(Vec3{0, 1, 0}).Normalize()
	up := right.Cross(fwd)
	return view{
		eye:   eye,
		right: right,
		up:    up,
		fwd:   fwd,
		focal: float64(sh) / 2 / math.Tan(c.FOV/2),
		near:  c.Near,
		cx:    float64(sw) / 2,
		cy:    float64(sh) / 2,
	}
}

// offscreen reports whether a projected point is far enough outside the
// screen that drawing toward it is wasted work.
func (v view) offscreen(x, y float64) bool {
	w, h := 2*v.cx, 2*v.cy
	return x < -w || x > 2*w || y < -h || y > 2*h
}

// project maps a world point to screen space. ok is false for points behind
// the near plane.
func (v view) project(p Vec3) (x, y, depth float64, ok bool) {
	rel := p.Sub(v.eye)
	depth = rel.Dot(v.fwd)
	if depth < v.near {
		return 0, 0, depth, false
	}
	s := v.focal / depth
	return v.cx + rel.Dot(v.right)*s, v.cy - rel.Dot(v.up)*s, depth, true
}

// Project converts a world point to integer screen coordinates for a screen
// of sw by sh pixels. visible is false when the point is behind the camera
// or off screen.
func (c *Camera) Project(p Vec3, sw, sh int) (int, int, float64, bool) {
	x, y, d, ok := c.view(sw, sh).project(p)
	sx, sy := int(math.Round(x)), int(math.Round(y))
	return sx, sy, d, ok && sx >= 0 && sx < sw && sy >= 0 && sy < sh
}

var cubeCorners = [8]Vec3{
	{-1, -1, -1}, {1, -1, -1}, {1, 1, -1}, {-1, 1, -1},
	{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1},
}

var cubeEdges = [12][2]int{
	{0, 1}, {1, 2}, {2, 3}, {3, 0}, {4, 5}, {5, 6}, {6, 7}, {7, 4}, {0, 4}, {1, 5}, {2, 6}, {3, 7},
}

// drawCube draws a wireframe cube of edge size centred on p, or a single dot
// when the cube would cover fewer than minPixels on screen.
func drawCube(c *Canvas, v view, p Vec3, size, minPixels float64) {
	cx, cy, depth, ok := v.project(p)
	if !ok || v.offscreen(cx, cy) {
		return
	}
	if size*v.focal/depth < minPixels {
		c.Set(int(cx), int(cy))
		return
	}
	var px, py [8]int
	half := size / 2
	for i, k := range cubeCorners {
		x, y, _, ok := v.project(p.Add(k.Scale(half)))
		if !ok || v.offscreen(x, y) {
			return
		}
		px[i], py[i] = int(x), int(y)
	}
	for _, e := range cubeEdges {
		c.DrawLine(px[e[0]], py[e[0]], px[e[1]], py[e[1]])
	}
}
