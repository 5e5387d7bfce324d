//go:build !raylib

package gui

import (
	"github.com/san-kum/gol3d/internal/driver"
	"github.com/san-kum/gol3d/internal/viz"
)

// Run always fails in builds without the raylib tag.
func Run(*driver.Driver, *viz.Scene, Options) error {
	return ErrUnavailable
}
