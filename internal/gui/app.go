//go:build raylib

package gui

import (
	"fmt"
	"math"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/gol3d/internal/driver"
	"github.com/san-kum/gol3d/internal/viz"
)

const orbitStep = 0.03

type App struct {
	drv    *driver.Driver
	scene  *viz.Scene
	step   *FixedStep
	title  string
	theme  viz.Theme
	pal    palette
	paused bool
	camera rl.Camera3D
}

func initWindow(title string) {
	rl.SetConfigFlags(rl.FlagMsaa4xHint)
	rl.InitWindow(WindowWidth, WindowHeight, title)
	rl.SetTargetFPS(TargetFPS)
	rl.SetExitKey(0)
}

// Run opens the window and blocks until it is closed. Generations advance
// at the driver's period from inside the render loop.
func Run(drv *driver.Driver, scene *viz.Scene, opts Options) error {
	if opts.Title == "" {
		opts.Title = "gol3d"
	}
	initWindow(opts.Title)
	defer rl.CloseWindow()

	a := NewApp(drv, scene, opts)
	a.RunLoop()
	drv.Stop()
	return nil
}

func NewApp(drv *driver.Driver, scene *viz.Scene, opts Options) *App {
	theme := viz.GetTheme(opts.Theme)
	a := &App{
		drv:   drv,
		scene: scene,
		step:  NewFixedStep(drv.Period()),
		title: opts.Title,
		theme: theme,
		pal:   newPalette(theme),
	}
	a.syncCamera()
	return a
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() {
		if rl.IsKeyPressed(rl.KeyQ) || rl.IsKeyPressed(rl.KeyEscape) {
			return
		}
		a.Update(time.Now())
		a.Draw()
	}
}

func (a *App) Update(now time.Time) {
	switch {
	case rl.IsKeyPressed(rl.KeySpace):
		a.paused = !a.paused
		if !a.paused {
			a.step.Reset(now)
		}
	case rl.IsKeyPressed(rl.KeyN) && a.paused:
		a.drv.Tick()
	case rl.IsKeyPressed(rl.KeyT):
		a.theme = viz.NextTheme(a.theme)
		a.pal = newPalette(a.theme)
	}

	cam := a.scene.Camera
	if rl.IsKeyDown(rl.KeyLeft) {
		cam.Orbit(-orbitStep, 0)
	}
	if rl.IsKeyDown(rl.KeyRight) {
		cam.Orbit(orbitStep, 0)
	}
	if rl.IsKeyDown(rl.KeyUp) {
		cam.Orbit(0, orbitStep)
	}
	if rl.IsKeyDown(rl.KeyDown) {
		cam.Orbit(0, -orbitStep)
	}
	if wheel := rl.GetMouseWheelMove(); wheel > 0 {
		cam.ZoomIn()
	} else if wheel < 0 {
		cam.ZoomOut()
	}

	if !a.paused && !a.drv.Stopped() && a.step.ShouldStep(now) {
		a.drv.Tick()
	}
	a.scene.Update(now)
	a.syncCamera()
}

func (a *App) syncCamera() {
	c := a.scene.Camera
	a.camera = rl.NewCamera3D(
		vec3(c.Position()),
		vec3(c.LookAt()),
		rl.NewVector3(0, 1, 0),
		float32(c.FOV*180/math.Pi),
		rl.CameraPerspective,
	)
}

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(a.pal.bg)

	rl.BeginMode3D(a.camera)
	a.drawLayers()
	rl.EndMode3D()

	a.drawHUD()
	rl.EndDrawing()
}

func (a *App) drawHUD() {
	gen := a.drv.Generation()
	rl.DrawText(a.title, 30, 30, 24, a.pal.title)
	rl.DrawText(fmt.Sprintf("generation %d  population %d  cubes %d",
		gen.Index, gen.Grid.Population(), a.scene.CubeCount()), 30, 62, 16, a.pal.text)

	status, col := "RUNNING", a.pal.title
	switch {
	case a.drv.Stopped():
		status, col = "STOPPED: "+string(a.drv.Reason()), a.pal.muted
	case a.paused:
		status, col = "PAUSED", a.pal.muted
	}
	rl.DrawText(status, WindowWidth-260, 30, 16, col)

	rl.DrawText("[SPACE] PAUSE  [N] STEP  [ARROWS] ORBIT  [WHEEL] ZOOM  [T] THEME  [Q] QUIT",
		420, WindowHeight-40, 14, a.pal.muted)
	rl.DrawFPS(30, WindowHeight-40)
}
