// Package viz renders stacked Game of Life generations in the terminal.
//
// The package implements the driver's rendering collaborator and a Bubble
// Tea program around it:
//
//   - [Scene]: cube layers plus a [Camera] whose height glides with a [Tween]
//   - [Canvas]: Braille-based pixel canvas the scene is rasterized onto
//   - [Model]: live view with a generation timer and an independent frame loop
//   - Theme selection with 5 built-in color schemes
//
// # Key Bindings
//
//	Space   - Pause/Resume generations
//	N       - Step once while paused
//	Arrows  - Orbit the camera
//	+/-     - Zoom
//	T       - Cycle color themes
//	?       - Show help overlay
package viz
