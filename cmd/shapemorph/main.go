package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/shapemorph/internal/config"
	"github.com/san-kum/shapemorph/internal/engine"
	"github.com/san-kum/shapemorph/internal/export"
	"github.com/san-kum/shapemorph/internal/gui"
	"github.com/san-kum/shapemorph/internal/storage"
	"github.com/san-kum/shapemorph/internal/viz"
	"github.com/spf13/cobra"
)

var (
	dataDir    string
	configFile string
	preset     string
	logLevel   string
	logFile    string
	// record
	frames   int
	every    int
	gifPath  string
	gifScale int
	svgPath  string
	runName  string
	noSave   bool
	// window
	watch bool
	// tui
	theme  string
	tuiGIF string
	// export
	outPath string
)

// raylib must run on the main OS thread.
func init() {
	runtime.LockOSThread()
}

func main() {
	rootCmd := &cobra.Command{
		Use:           "shapemorph",
		Short:         "sphere to torus point cloud morph",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runWindow,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&dataDir, "data", ".shapemorph", "data directory")
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	pf.StringVar(&logFile, "log-file", "", "append logs to this file instead of stderr")

	windowCmd := &cobra.Command{
		Use:   "window",
		Short: "run the morph in a raylib window",
		RunE:  runWindow,
	}
	windowCmd.Flags().BoolVar(&watch, "watch", false, "restart the morph when the --config file changes")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "run the morph in the terminal",
		RunE:  runTUI,
	}
	tuiCmd.Flags().StringVar(&theme, "theme", "cyberpunk", "color theme")
	tuiCmd.Flags().StringVar(&tuiGIF, "gif", "shapemorph.gif", "gif path for the record key")

	recordCmd := &cobra.Command{
		Use:   "record",
		Short: "render frames headless and store the run",
		RunE:  runRecord,
	}
	recordCmd.Flags().IntVar(&frames, "frames", 600, "number of frames to render")
	recordCmd.Flags().IntVar(&every, "every", 2, "capture every n-th frame into the gif")
	recordCmd.Flags().StringVar(&gifPath, "gif", "", "write an animated gif")
	recordCmd.Flags().IntVar(&gifScale, "gif-scale", 2, "gif upscale factor")
	recordCmd.Flags().StringVar(&svgPath, "svg", "", "write the last frame as svg")
	recordCmd.Flags().StringVar(&runName, "name", "", "run name (defaults to the preset)")
	recordCmd.Flags().BoolVar(&noSave, "no-save", false, "do not store the run")

	runsCmd := &cobra.Command{
		Use:   "runs",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot the morph factor of a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export a stored run as json",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return storage.New(dataDir).ExportJSON(args[0], outPath)
		},
	}
	exportCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, p := range config.ListPresets() {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "config file helpers",
	}
	configInitCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write the effective config as yaml",
		Args:  cobra.MaximumNArgs(1),
		RunE:  initConfig,
	}
	configCmd.AddCommand(configInitCmd)

	rootCmd.AddCommand(windowCmd, tuiCmd, recordCmd, runsCmd, plotCmd, exportCmd, presetsCmd, configCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// setupLogging installs the default slog handler. With quiet set and no
// --log-file, logs are dropped so they cannot corrupt a full screen program.
func setupLogging(quiet bool) (func(), error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(logLevel)); err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", logLevel, err)
	}

	var w io.Writer = os.Stderr
	closeFn := func() {}
	switch {
	case logFile != "":
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return nil, err
		}
		w, closeFn = f, func() { f.Close() }
	case quiet:
		w = io.Discard
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
	return closeFn, nil
}

func loadConfig() (*config.Config, error) {
	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		return cfg, cfg.Validate()
	}
	if preset != "" {
		cfg := config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		return cfg, nil
	}
	return config.DefaultConfig(), nil
}

func setup(quiet bool) (*engine.Engine, func(), error) {
	closeLog, err := setupLogging(quiet)
	if err != nil {
		return nil, nil, err
	}
	cfg, err := loadConfig()
	if err != nil {
		closeLog()
		return nil, nil, err
	}
	eng, err := engine.New(cfg)
	if err != nil {
		closeLog()
		return nil, nil, err
	}
	return eng, closeLog, nil
}

func interrupted(err error) bool {
	return errors.Is(err, context.Canceled)
}

func runWindow(cmd *cobra.Command, args []string) error {
	eng, closeLog, err := setup(false)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	var updates <-chan *config.Config
	if watch {
		if configFile == "" {
			return fmt.Errorf("--watch needs --config")
		}
		if updates, err = config.Watch(ctx, configFile); err != nil {
			return err
		}
	}

	sc := eng.Config().Screen
	win := gui.Open("shapemorph", sc.Width, sc.Height, sc.Scale, sc.FPS)
	defer win.Close()
	eng.AddObserver(win)

	for {
		next, err := runUntilReload(ctx, eng, win, updates)
		if next == nil || win.ShouldClose() {
			if err != nil && !interrupted(err) {
				return err
			}
			return nil
		}

		// The window keeps its size and rate for the whole session.
		next.Screen = sc
		reloaded, err := engine.New(next)
		if err != nil {
			slog.Error("reload failed, keeping current config", "err", err)
			continue
		}
		eng = reloaded
		eng.AddObserver(win)
	}
}

// runUntilReload runs eng until it stops on its own or a new config arrives.
func runUntilReload(ctx context.Context, eng *engine.Engine, win *gui.Window, updates <-chan *config.Config) (*config.Config, error) {
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	reload := make(chan *config.Config, 1)
	go func() {
		select {
		case next, ok := <-updates:
			if ok {
				reload <- next
			}
			cancel()
		case <-runCtx.Done():
		}
	}()

	err := eng.Run(runCtx, win, win)
	cancel()
	select {
	case next := <-reload:
		return next, nil
	default:
		return nil, err
	}
}

func runTUI(cmd *cobra.Command, args []string) error {
	eng, closeLog, err := setup(true)
	if err != nil {
		return err
	}
	defer closeLog()

	return viz.Run(eng, viz.Options{
		Theme:    theme,
		GIFPath:  tuiGIF,
		GIFScale: 2,
	})
}

func runRecord(cmd *cobra.Command, args []string) error {
	if frames < 1 {
		return fmt.Errorf("--frames must be positive, got %d", frames)
	}
	eng, closeLog, err := setup(false)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg := eng.Config()
	trace := engine.NewTrace(0)
	eng.AddObserver(trace)

	var g *export.GIFRecorder
	if gifPath != "" {
		palette := export.MorphPalette(eng.Background(), eng.Pair().From().Color, eng.Pair().To().Color)
		g = export.NewGIFRecorder(palette, gifScale, export.DelayFor(cfg.Screen.FPS)*every)
	}
	rec := export.NewRecorder(frames, g, every)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()
	if err := eng.Run(ctx, rec, engine.NewFixedClock(cfg.Screen.FPS)); err != nil && !interrupted(err) {
		return err
	}

	var outputs []string
	if g != nil {
		if err := g.Save(gifPath); err != nil {
			return fmt.Errorf("write gif: %w", err)
		}
		slog.Info("gif written", "path", gifPath, "frames", g.Len())
		outputs = append(outputs, gifPath)
	}
	if svgPath != "" {
		svg := export.FrameToSVG(eng.Buffer(), eng.Background(), float64(cfg.Screen.Scale))
		if err := os.WriteFile(svgPath, []byte(svg), 0644); err != nil {
			return fmt.Errorf("write svg: %w", err)
		}
		slog.Info("svg written", "path", svgPath)
		outputs = append(outputs, svgPath)
	}

	fmt.Printf("rendered %d frames, %d direction flips\n", rec.Frames(), trace.Flips())
	if noSave {
		return nil
	}

	name := runName
	if name == "" {
		name = preset
	}
	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(storage.RunMetadata{
		Name:     name,
		Vertices: eng.Pair().Len(),
		Flips:    trace.Flips(),
		Outputs:  outputs,
		Config:   cfg,
	}, trace.Samples)
	if err != nil {
		return err
	}
	fmt.Printf("saved run: %s\n", runID)
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tFRAMES\tVERTICES\tFLIPS\tROTATION")

	for _, run := range runs {
		rotation := "-"
		if run.Config != nil {
			rotation = run.Config.Rotation.Mode + "/" + run.Config.Rotation.Kind
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%s\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Frames,
			run.Vertices,
			run.Flips,
			rotation,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	trace, err := st.LoadTrace(runID)
	if err != nil {
		return err
	}

	if len(trace) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("frames: %d\n", len(trace))
	fmt.Printf("flips: %d\n\n", meta.Flips)

	factors := make([]float64, len(trace))
	holds := make([]float64, len(trace))
	for i, s := range trace {
		factors[i] = s.Morph.Factor
		holds[i] = s.Morph.Hold
	}

	fmt.Println(asciigraph.Plot(factors,
		asciigraph.Height(10), asciigraph.Width(70),
		asciigraph.LowerBound(0), asciigraph.UpperBound(1),
		asciigraph.Caption("morph factor vs frame")))
	fmt.Println()
	fmt.Println(asciigraph.Plot(holds,
		asciigraph.Height(6), asciigraph.Width(70),
		asciigraph.Caption("hold vs frame")))

	return nil
}

func initConfig(cmd *cobra.Command, args []string) error {
	path := "shapemorph.yaml"
	if len(args) > 0 {
		path = args[0]
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := config.Save(path, cfg); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}
