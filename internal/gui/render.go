//go:build raylib

package gui

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/gol3d/internal/viz"
)

type palette struct {
	bg, cube, wire, title, text, muted color.RGBA
}

func newPalette(t viz.Theme) palette {
	return palette{
		bg:    rl.NewColor(10, 10, 10, 255),
		cube:  rgba(string(t.Cubes), 255),
		wire:  rl.NewColor(0, 0, 0, 255),
		title: rgba(string(t.Title), 255),
		text:  rgba(string(t.Text), 255),
		muted: rgba(string(t.Muted), 255),
	}
}

func rgba(hex string, alpha uint8) color.RGBA {
	r, g, b := viz.ParseHex(hex)
	return rl.NewColor(uint8(r), uint8(g), uint8(b), alpha)
}

func vec3(v viz.Vec3) rl.Vector3 {
	return rl.NewVector3(float32(v.X), float32(v.Y), float32(v.Z))
}

// shade darkens older layers so the newest generation stands out.
func shade(c color.RGBA, age, span int) color.RGBA {
	if span <= 1 {
		return c
	}
	f := 1 - 0.6*float32(age)/float32(span-1)
	return rl.NewColor(uint8(float32(c.R)*f), uint8(float32(c.G)*f), uint8(float32(c.B)*f), c.A)
}

func (a *App) drawLayers() {
	layers := a.scene.Layers()
	size := float32(viz.CubeSize)
	for i, l := range layers {
		col := shade(a.pal.cube, len(layers)-1-i, len(layers))
		for _, p := range l.Cubes {
			pos := vec3(p)
			rl.DrawCube(pos, size, size, size, col)
			rl.DrawCubeWires(pos, size, size, size, a.pal.wire)
		}
	}
}
