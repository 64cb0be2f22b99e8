package main

import (
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/isoline/internal/config"
	"github.com/san-kum/isoline/internal/viz"
	"github.com/spf13/cobra"
)

var (
	dataDir    string
	configFile string
	preset     string
	verbose    bool

	fieldKind string
	seed      int64
	frames    int
	threshold float64
	spacing   float64
	numSource int
	saddle    string
	width     float64
	height    float64

	outFile   string
	renderOut string
	asJSON    bool
	noSave    bool
	runs      int
	withSrcs  bool
)

var (
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(18)
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "isoline",
		Short: "marching squares over moving metaballs",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.SetPrefix("isoline: ")
			log.SetFlags(0)
			if !verbose {
				log.SetOutput(io.Discard)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if preset == "" && configFile == "" {
				_, err := tea.NewProgram(viz.NewMenu(), tea.WithAltScreen()).Run()
				return err
			}
			return runLive(cmd, args)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&dataDir, "data", ".isoline", "data directory")
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.BoolVarP(&verbose, "verbose", "v", false, "log diagnostics to stderr")
	pf.StringVar(&fieldKind, "field", "metaballs", "scalar field (metaballs, heart, linear)")
	pf.Int64Var(&seed, "seed", 1, "random seed for source spawning")
	pf.IntVar(&frames, "frames", config.DefaultFrames, "number of frames")
	pf.Float64Var(&threshold, "threshold", config.DefaultThreshold, "iso value")
	pf.Float64Var(&spacing, "spacing", config.DefaultSpacing, "grid spacing in view units")
	pf.IntVar(&numSource, "sources", config.DefaultSources, "number of metaballs")
	pf.StringVar(&saddle, "saddle", "independent", "saddle mode (independent, center)")
	pf.Float64Var(&width, "width", config.DefaultWidth, "view width")
	pf.Float64Var(&height, "height", config.DefaultHeight, "view height")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run headless and store the result",
		Args:  cobra.NoArgs,
		RunE:  runHeadless,
	}
	runCmd.Flags().BoolVar(&asJSON, "json", false, "write the result as JSON to stdout")
	runCmd.Flags().BoolVar(&noSave, "no-save", false, "do not store the run")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run with live terminal visualization",
		Args:  cobra.NoArgs,
		RunE:  runLive,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot per-frame series of a run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().StringVarP(&outFile, "out", "o", "", "write a PNG/SVG plot instead of terminal graphs")

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "summary statistics and dominant periods",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "export the final frame of a run as SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().StringVarP(&outFile, "out", "o", "", "output file (default <run_id>.svg)")

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "run without storing and draw the last frame",
		Args:  cobra.NoArgs,
		RunE:  renderFrame,
	}
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "contour.png", "output file (.png, .svg, .pdf)")
	renderCmd.Flags().BoolVar(&withSrcs, "show-sources", false, "print the braille frame with source centers")

	reportCmd := &cobra.Command{
		Use:   "report [run_id]",
		Short: "write an interactive HTML report of a run",
		Args:  cobra.ExactArgs(1),
		RunE:  reportRun,
	}
	reportCmd.Flags().StringVarP(&outFile, "out", "o", "", "output file (default <run_id>.html)")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "measure frame throughput for every preset",
		Args:  cobra.NoArgs,
		RunE:  benchPresets,
	}

	ensembleCmd := &cobra.Command{
		Use:   "ensemble",
		Short: "run consecutive seeds in parallel and compare metrics",
		Args:  cobra.NoArgs,
		RunE:  runEnsemble,
	}
	ensembleCmd.Flags().IntVar(&runs, "runs", 4, "number of seeds")

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "grid search over config parameters",
		Args:  cobra.NoArgs,
		RunE:  runSweep,
	}
	sweepCmd.Flags().StringArrayVar(&sweepRanges, "param", nil, "name=v1,v2 or name=start:stop:step (repeatable)")
	sweepCmd.Flags().StringVar(&sweepMetric, "metric", "segments_mean", "metric to optimize")
	sweepCmd.Flags().BoolVar(&sweepMax, "maximize", false, "pick the largest value instead of the smallest")

	rootCmd.AddCommand(runCmd, liveCmd, listCmd, plotCmd, analyzeCmd, exportSVGCmd,
		renderCmd, reportCmd, presetsCmd, benchCmd, ensembleCmd, sweepCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig resolves preset, then config file, then explicitly set flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		log.Printf("preset %s", preset)
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
		log.Printf("config %s", configFile)
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("frames") {
		cfg.Frames = frames
	}
	if flags.Changed("threshold") {
		cfg.Threshold = threshold
	}
	if flags.Changed("spacing") {
		cfg.Grid.Spacing = spacing
	}
	if flags.Changed("sources") {
		cfg.Sources.Count = numSource
	}
	if flags.Changed("saddle") {
		cfg.Saddle = saddle
	}
	if flags.Changed("width") {
		cfg.View.Width = width
	}
	if flags.Changed("height") {
		cfg.View.Height = height
	}
	// after the view so field defaults fit the final view
	if flags.Changed("field") {
		cfg.SetField(fieldKind)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cols, rows := cfg.GridSize()
	log.Printf("field=%s grid=%dx%d seed=%d saddle=%s", cfg.Field, cols, rows, cfg.Seed, cfg.SaddleMode())
	return cfg, nil
}

func runName(cfg *config.Config) string {
	if preset != "" {
		return preset
	}
	return cfg.Field
}

func printRow(label string, value any) {
	fmt.Println(labelStyle.Render(label) + valueStyle.Render(fmt.Sprint(value)))
}
