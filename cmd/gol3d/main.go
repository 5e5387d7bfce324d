package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/san-kum/gol3d/internal/config"
	"github.com/san-kum/gol3d/internal/driver"
	"github.com/san-kum/gol3d/internal/export"
	"github.com/san-kum/gol3d/internal/gui"
	"github.com/san-kum/gol3d/internal/life"
	"github.com/san-kum/gol3d/internal/metrics"
	"github.com/san-kum/gol3d/internal/viz"
)

// Headless runs without a cap stop here so period-3+ oscillators, which
// never converge, still terminate.
const headlessGenerationLimit = 10000

var (
	configFile       string
	preset           string
	interval         time.Duration
	rowPad           int
	colPad           int
	referencePadding bool
	cameraLead       float64
	tween            time.Duration
	fps              int
	theme            string
	maxGens          int
	random           string
	density          float64
	seed             int64
	logLevel         string

	jsonOut  string
	svgOut   string
	chartOut string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "gol3d [pattern]",
		Short:        "Conway's Game of Life stacked into 3D, one layer per generation",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE:         runLive,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.DurationVar(&interval, "interval", config.DefaultInterval, "time between generations")
	pf.IntVar(&rowPad, "row-pad", config.DefaultRowPadding, "dead rows added above and below the seed")
	pf.IntVar(&colPad, "col-pad", config.DefaultColPadding, "dead columns added left and right of the seed")
	pf.BoolVar(&referencePadding, "reference-padding", false, "always pad exactly 5 rows, whatever --row-pad says")
	pf.Float64Var(&cameraLead, "camera-lead", config.DefaultCameraLead, "layers the camera stays above the newest generation")
	pf.DurationVar(&tween, "tween", config.DefaultTween, "camera glide duration")
	pf.IntVar(&fps, "fps", config.DefaultFPS, "frame rate for the terminal view")
	pf.StringVar(&theme, "theme", config.DefaultTheme, "colour theme ("+strings.Join(viz.ThemeNames(), ", ")+")")
	pf.IntVar(&maxGens, "max-gens", 0, "stop after this many generations (0 = until converged)")
	pf.StringVar(&random, "random", "", "random seed grid of size WxH instead of a pattern")
	pf.Float64Var(&density, "density", config.DefaultDensity, "live cell density for --random")
	pf.Int64Var(&seed, "seed", 0, "random generator seed for --random")
	pf.StringVar(&logLevel, "log-level", "", "debug, info, warn or error")

	liveCmd := &cobra.Command{
		Use:   "live [pattern]",
		Short: "watch the stack grow in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLive,
	}

	runCmd := &cobra.Command{
		Use:   "run [pattern]",
		Short: "run headless until convergence and print a summary",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runHeadless,
	}
	runCmd.Flags().StringVar(&jsonOut, "json", "", "write a JSON report to this path (- for stdout)")
	runCmd.Flags().StringVar(&svgOut, "svg", "", "write an SVG snapshot of the final stack")
	runCmd.Flags().StringVar(&chartOut, "chart-svg", "", "write the population curve as SVG")

	guiCmd := &cobra.Command{
		Use:   "gui [pattern]",
		Short: "open a raylib window (build with -tags raylib)",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runGUI,
	}

	patternsCmd := &cobra.Command{
		Use:   "patterns",
		Short: "list seed patterns",
		RunE:  listPatterns,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list presets",
		RunE:  listPresets,
	}

	rootCmd.AddCommand(liveCmd, runCmd, guiCmd, patternsCmd, presetsCmd)
	return rootCmd
}

// resolveConfig layers defaults, preset, config file, positional pattern and
// explicitly set flags, in that order.
func resolveConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, errors.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}
	if configFile != "" {
		loaded, err := config.LoadOver(configFile, cfg)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if len(args) > 0 {
		cfg.Pattern = args[0]
		cfg.Random.Width, cfg.Random.Height = 0, 0
	}

	flags := cmd.Flags()
	if flags.Changed("interval") {
		cfg.Interval = interval
	}
	if flags.Changed("row-pad") {
		cfg.RowPadding = rowPad
	}
	if flags.Changed("col-pad") {
		cfg.ColPadding = colPad
	}
	if referencePadding {
		cfg.RowPadding = life.ReferenceRowPadding
	}
	if flags.Changed("camera-lead") {
		cfg.CameraLead = cameraLead
	}
	if flags.Changed("tween") {
		cfg.Tween = tween
	}
	if flags.Changed("fps") {
		cfg.FPS = fps
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}
	if flags.Changed("max-gens") {
		cfg.MaxGenerations = maxGens
	}
	if flags.Changed("random") {
		w, h, err := parseSize(random)
		if err != nil {
			return nil, err
		}
		cfg.Random.Width, cfg.Random.Height = w, h
	}
	if flags.Changed("density") {
		cfg.Random.Density = density
	}
	if flags.Changed("seed") {
		cfg.Random.Seed = seed
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func parseSize(s string) (w, h int, err error) {
	if _, err := fmt.Sscanf(strings.ToLower(s), "%dx%d", &w, &h); err != nil {
		return 0, 0, errors.Wrapf(err, "invalid size %q, want WxH", s)
	}
	if w <= 0 || h <= 0 {
		return 0, 0, errors.Errorf("invalid size %q, want positive WxH", s)
	}
	return w, h, nil
}

// newLogger writes text logs to stderr. Terminal views default to warn so
// routine messages do not tear the screen.
func newLogger(fallback slog.Level) (*slog.Logger, error) {
	level := fallback
	if logLevel != "" {
		if err := level.UnmarshalText([]byte(logLevel)); err != nil {
			return nil, errors.Wrapf(err, "log level %q", logLevel)
		}
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger, nil
}

func seedName(cfg *config.Config) string {
	if cfg.Random.Enabled() {
		return fmt.Sprintf("random %dx%d", cfg.Random.Width, cfg.Random.Height)
	}
	return cfg.Pattern
}

func driverOptions(cfg *config.Config, log *slog.Logger, observers ...metrics.Observer) []driver.Option {
	opts := []driver.Option{
		driver.WithPeriod(cfg.Interval),
		driver.WithCameraLead(cfg.CameraLead),
		driver.WithTween(cfg.Tween),
		driver.WithMaxGenerations(cfg.MaxGenerations),
		driver.WithLogger(log),
	}
	for _, o := range observers {
		opts = append(opts, driver.WithObserver(o))
	}
	return opts
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	log, err := newLogger(slog.LevelWarn)
	if err != nil {
		return err
	}
	grid, err := cfg.Seed()
	if err != nil {
		return err
	}

	pop, churn, bounds := metrics.Defaults()
	scene := viz.NewScene(cfg.MaxLayers)
	drv := driver.New(grid, scene, driverOptions(cfg, log, pop, churn, bounds)...)

	model := viz.NewModel(drv, scene, pop, churn, viz.Options{
		Title: "gol3d :: " + seedName(cfg),
		FPS:   cfg.FPS,
		Theme: cfg.Theme,
	})
	return viz.Run(model)
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	log, err := newLogger(slog.LevelInfo)
	if err != nil {
		return err
	}
	grid, err := cfg.Seed()
	if err != nil {
		return err
	}

	scene := viz.NewScene(cfg.MaxLayers)
	drv := driver.New(grid, scene, driverOptions(cfg, log)...)
	return gui.Run(drv, scene, gui.Options{
		Title: "gol3d :: " + seedName(cfg),
		Theme: cfg.Theme,
	})
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	if !cmd.Flags().Changed("interval") {
		cfg.Interval = 0
	}
	if cfg.MaxGenerations == 0 {
		cfg.MaxGenerations = headlessGenerationLimit
	}
	log, err := newLogger(slog.LevelInfo)
	if err != nil {
		return err
	}
	grid, err := cfg.Seed()
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer cancel()

	pop, churn, bounds := metrics.Defaults()
	var scene *viz.Scene
	renderer := driver.Discard
	if svgOut != "" {
		scene = viz.NewScene(cfg.MaxLayers)
		renderer = scene
	}
	drv := driver.New(grid, renderer, driverOptions(cfg, log, pop, churn, bounds)...)

	start := time.Now()
	runErr := drv.Run(ctx)
	elapsed := time.Since(start)
	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		return runErr
	}

	if err := writeExports(cfg, drv, scene, pop, churn); err != nil {
		return err
	}
	if jsonOut == "-" {
		return nil
	}

	gen := drv.Generation()
	peak, peakAt := pop.Peak()
	bh, bw := bounds.Size()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "seed\t%s\n", seedName(cfg))
	fmt.Fprintf(w, "grid\t%dx%d\n", grid.Width(), grid.Height())
	fmt.Fprintf(w, "generations\t%d\n", gen.Index)
	fmt.Fprintf(w, "stopped\t%s\n", drv.Reason())
	fmt.Fprintf(w, "population\t%d\n", gen.Grid.Population())
	fmt.Fprintf(w, "peak\t%d (generation %d)\n", peak, peakAt)
	fmt.Fprintf(w, "cell flips\t%.0f\n", churn.Value())
	fmt.Fprintf(w, "bounding box\t%dx%d\n", bw, bh)
	fmt.Fprintf(w, "elapsed\t%s\n", elapsed.Round(time.Microsecond))
	w.Flush()

	if series := pop.Series(); len(series) > 1 {
		fmt.Println()
		fmt.Println(asciigraph.Plot(series,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption("population"),
		))
	}
	return nil
}

func writeExports(cfg *config.Config, drv *driver.Driver, scene *viz.Scene, pop *metrics.Population, churn *metrics.Churn) error {
	if jsonOut != "" {
		report := export.NewReport(seedName(cfg), drv, pop, churn)
		if err := export.WriteFile(jsonOut, func(w io.Writer) error { return export.WriteJSON(w, report) }); err != nil {
			return err
		}
	}
	th := viz.GetTheme(cfg.Theme)
	if svgOut != "" {
		err := export.WriteFile(svgOut, func(w io.Writer) error {
			return export.StackSnapshot(w, scene, 160, 60, string(th.Cubes))
		})
		if err != nil {
			return err
		}
	}
	if chartOut != "" {
		err := export.WriteFile(chartOut, func(w io.Writer) error {
			_, err := io.WriteString(w, export.SeriesToSVG(pop.Series(), 800, 300, string(th.Title)))
			return err
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func listPatterns(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tSIZE\tCELLS\tDESCRIPTION")
	for _, p := range life.Patterns() {
		fmt.Fprintf(w, "%s\t%dx%d\t%d\t%s\n", p.Name, p.Grid.Width(), p.Grid.Height(), p.Grid.Population(), p.Description)
	}
	return w.Flush()
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tSEED\tINTERVAL\tTHEME")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", name, seedName(p), p.Interval, p.Theme)
	}
	return w.Flush()
}
