package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/gol3d/internal/driver"
	"github.com/san-kum/gol3d/internal/metrics"
)

const (
	width  = 80
	height = 24

	graphSamples = 120
	orbitStep    = 0.08
)

// GenerationMsg fires the generation timer. Seq identifies the timer chain
// so that a stale chain left over from a pause/resume is dropped.
type GenerationMsg struct {
	Seq int
	At  time.Time
}

// FrameMsg fires the render loop.
type FrameMsg time.Time

// Options tune the live view.
type Options struct {
	Title string
	FPS   int
	Theme string
}

// Model is the Bubble Tea program state. The generation timer and the frame
// loop are two independent tea.Tick chains; the first stops re-arming once
// the driver stops, the second runs until the program quits.
type Model struct {
	drv    *driver.Driver
	scene  *Scene
	canvas *Canvas
	pop    *metrics.Population
	churn  *metrics.Churn

	title  string
	theme  Theme
	styles styles
	frame  time.Duration

	genSeq   int
	paused   bool
	showHelp bool
	frames   int
}

// NewModel wires a driver and the scene it renders into into a live view.
// pop and churn must be observers registered on drv.
func NewModel(drv *driver.Driver, scene *Scene, pop *metrics.Population, churn *metrics.Churn, opts Options) Model {
	fps := opts.FPS
	if fps <= 0 {
		fps = 30
	}
	theme := GetTheme(opts.Theme)
	m := Model{
		drv:    drv,
		scene:  scene,
		canvas: NewCanvas(width-panelWidth-6, height-2),
		pop:    pop,
		churn:  churn,
		title:  opts.Title,
		theme:  theme,
		styles: newStyles(theme),
		frame:  time.Second / time.Duration(fps),
	}
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.generationTick(), m.frameTick())
}

func (m Model) generationTick() tea.Cmd {
	seq, period := m.genSeq, m.drv.Period()
	if period <= 0 {
		period = time.Millisecond
	}
	return tea.Tick(period, func(t time.Time) tea.Msg { return GenerationMsg{Seq: seq, At: t} })
}

func (m Model) frameTick() tea.Cmd {
	return tea.Tick(m.frame, func(t time.Time) tea.Msg { return FrameMsg(t) })
}

// Update handles input, generation ticks and frame ticks.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.canvas.Resize(msg.Width-panelWidth-6, msg.Height-2)
	case GenerationMsg:
		if msg.Seq != m.genSeq || m.paused {
			return m, nil
		}
		if m.drv.Tick() {
			return m, m.generationTick()
		}
		return m, nil
	case FrameMsg:
		m.frames++
		m.scene.Update(time.Time(msg))
		m.scene.Render(m.canvas)
		return m, m.frameTick()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		m.drv.Stop()
		return m, tea.Quit
	case " ":
		m.paused = !m.paused
		if !m.paused && !m.drv.Stopped() {
			m.genSeq++
			return m, m.generationTick()
		}
	case "n":
		if m.paused {
			m.drv.Tick()
		}
	case "left", "h":
		m.scene.Camera.Orbit(-orbitStep, 0)
	case "right", "l":
		m.scene.Camera.Orbit(orbitStep, 0)
	case "up", "k":
		m.scene.Camera.Orbit(0, orbitStep)
	case "down", "j":
		m.scene.Camera.Orbit(0, -orbitStep)
	case "+", "=":
		m.scene.Camera.ZoomIn()
	case "-", "_":
		m.scene.Camera.ZoomOut()
	case "t":
		m.theme = NextTheme(m.theme)
		m.styles = newStyles(m.theme)
	case "?":
		m.showHelp = !m.showHelp
	}
	return m, nil
}

// Paused reports whether the generation timer is held.
func (m Model) Paused() bool { return m.paused }

func (m Model) status() string {
	switch {
	case m.drv.Stopped() && m.drv.Reason() == driver.ReasonConverged:
		return m.styles.converged.Render("CONVERGED")
	case m.drv.Stopped():
		return m.styles.converged.Render("STOPPED (" + strings.ToUpper(string(m.drv.Reason())) + ")")
	case m.paused:
		return m.styles.paused.Render("PAUSED")
	}
	return m.styles.running.Render(AnimatedSpinner(m.frames) + " RUNNING")
}

func (m Model) row(label, value string) string {
	return m.styles.label.Render(label) + m.styles.value.Render(value) + "\n"
}

// View renders the canvas next to the stats panel.
func (m Model) View() string {
	gen := m.drv.Generation()

	var s strings.Builder
	s.WriteString(GradientText(strings.ToUpper(m.title), m.theme.Title, m.theme.TitleEnd) + "\n\n")
	s.WriteString(m.status() + "\n\n")
	s.WriteString(m.row("Generation", fmt.Sprintf("%d", gen.Index)))
	s.WriteString(m.row("Population", fmt.Sprintf("%d", gen.Grid.Population())))
	if m.churn != nil {
		b, d := m.churn.Last()
		s.WriteString(m.row("Births", fmt.Sprintf("%d", b)))
		s.WriteString(m.row("Deaths", fmt.Sprintf("%d", d)))
	}
	s.WriteString(m.row("Grid", fmt.Sprintf("%dx%d", gen.Grid.Width(), gen.Grid.Height())))
	s.WriteString(m.row("Layers", fmt.Sprintf("%d", len(m.scene.Layers()))))
	s.WriteString(m.row("Camera Y", fmt.Sprintf("%.2f", m.scene.Camera.Height)))

	if m.pop != nil {
		if data := m.pop.Tail(graphSamples); len(data) > 1 {
			chart := asciigraph.Plot(data, asciigraph.Height(5), asciigraph.Width(panelWidth-12), asciigraph.Caption("population"))
			s.WriteString(m.styles.graph.Render(chart) + "\n")
		}
	}

	s.WriteString(m.styles.help.Render("SP:Pause N:Step Q:Quit\n←→↑↓:Orbit +/-:Zoom T:Theme ?:Help"))

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		m.styles.canvas.Render(m.canvas.String()),
		m.styles.panel.Render(s.String()),
	)
	if m.showHelp {
		return m.styles.overlay.Render(helpText) + "\n" + body
	}
	return body
}

const helpText = `KEYBOARD SHORTCUTS

Space    pause/resume generations
N        single generation while paused
←/→ h/l  orbit around the stack
↑/↓ k/j  tilt the camera
+ / -    zoom in / out
T        cycle themes
Q        quit
?        toggle this help`

// Run starts the live view on the terminal's alternate screen and blocks
// until the user quits.
func Run(m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
