package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/isoline/internal/analysis"
	"github.com/san-kum/isoline/internal/config"
	"github.com/san-kum/isoline/internal/engine"
	"github.com/san-kum/isoline/internal/export"
	"github.com/san-kum/isoline/internal/metrics"
	"github.com/san-kum/isoline/internal/storage"
	"github.com/san-kum/isoline/internal/viz"
	"github.com/spf13/cobra"
)

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	eng, err := engine.New(cfg)
	if err != nil {
		return err
	}
	for _, m := range metrics.Default() {
		eng.AddMetric(m)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	result, err := eng.Run(ctx, cfg.Frames)
	if err != nil {
		return err
	}
	log.Printf("%d frames in %v", result.Frames, time.Since(start))

	if asJSON {
		return storage.ExportJSON(os.Stdout, cfg, result)
	}

	fmt.Println(titleStyle.Render(strings.ToUpper(runName(cfg))))
	printRow("frames", result.Frames)
	printRow("final segments", len(result.Final.Segments))
	printRow("degenerate edges", result.Degenerate)
	for _, m := range metrics.Default() {
		printRow(m.Name(), fmt.Sprintf("%.4f", result.Metrics[m.Name()]))
	}

	if noSave {
		return nil
	}
	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(cfg, result)
	if err != nil {
		return err
	}
	printRow("run", runID)
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	eng, err := engine.New(cfg)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(viz.NewModel(eng, runName(cfg)), tea.WithAltScreen()).Run()
	return err
}

func renderFrame(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	eng, err := engine.New(cfg)
	if err != nil {
		return err
	}

	res, err := eng.Run(cmd.Context(), cfg.Frames)
	if err != nil {
		return err
	}
	f := res.Final

	c := viz.NewCanvas(80, 24)
	viz.DrawFrame(c, viz.NewViewport(eng.Bounds(), c), f, viz.Layers{Sources: withSrcs})
	fmt.Print(c.String())

	title := fmt.Sprintf("%s frame %d", runName(cfg), f.Index)
	if err := export.ContourPlot(renderOut, title, f.Segments, eng.Bounds()); err != nil {
		return err
	}
	printRow("segments", len(f.Segments))
	printRow("written", renderOut)
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tFIELD\tGRID\tSOURCES\tSADDLE\tFRAMES")
	for _, name := range config.ListPresets() {
		cfg := config.GetPreset(name)
		cols, rows := cfg.GridSize()
		fmt.Fprintf(w, "%s\t%s\t%dx%d\t%d\t%s\t%d\n",
			name, cfg.Field, cols, rows, cfg.Sources.Count, cfg.SaddleMode(), cfg.Frames)
	}
	return w.Flush()
}

func benchPresets(cmd *cobra.Command, args []string) error {
	const benchFrames = 200

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PRESET\tCELLS\tFRAMES\tTIME\tFRAMES/SEC\tSEGMENTS")

	for _, name := range config.ListPresets() {
		eng, err := engine.New(config.GetPreset(name))
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		g := eng.Tracer().Grid()
		cells := (g.Cols() - 1) * (g.Rows() - 1)

		start := time.Now()
		res, err := eng.Run(cmd.Context(), benchFrames)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		elapsed := time.Since(start)

		fmt.Fprintf(w, "%s\t%d\t%d\t%v\t%.0f\t%.1f\n",
			name, cells, res.Frames, elapsed.Round(time.Millisecond),
			float64(res.Frames)/elapsed.Seconds(), analysis.Summarize(res.Segments).Mean)
	}
	return w.Flush()
}

func runEnsemble(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	ens := engine.NewEnsemble(cfg, runs, cfg.Seed, metrics.Default)
	results, err := ens.Run(cmd.Context(), cfg.Frames)
	if err != nil {
		return err
	}

	names := make([]string, 0)
	for _, m := range metrics.Default() {
		names = append(names, m.Name())
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SEED\t"+strings.ToUpper(strings.Join(names, "\t")))
	columns := make(map[string][]float64)
	for i, res := range results {
		row := []string{fmt.Sprint(cfg.Seed + int64(i))}
		for _, n := range names {
			v := res.Metrics[n]
			columns[n] = append(columns[n], v)
			row = append(row, fmt.Sprintf("%.3f", v))
		}
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Println()
	for _, n := range names {
		printRow(n, analysis.Summarize(columns[n]))
	}
	return nil
}

func defaultOut(runID, ext string) string {
	if outFile != "" {
		return outFile
	}
	return filepath.Clean(runID + ext)
}
