package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/isoline/internal/analysis"
	"github.com/san-kum/isoline/internal/config"
	"github.com/san-kum/isoline/internal/engine"
	"github.com/san-kum/isoline/internal/export"
	"github.com/san-kum/isoline/internal/storage"
	"github.com/spf13/cobra"
)

type namedSeries struct {
	name string
	data []float64
}

func loadRun(runID string) (*storage.RunMetadata, []namedSeries, error) {
	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return nil, nil, err
	}
	series, err := st.LoadFrames(runID)
	if err != nil {
		return nil, nil, err
	}
	if len(series.Segments) == 0 {
		return nil, nil, fmt.Errorf("run %s has no frames", runID)
	}
	return meta, []namedSeries{
		{"segments", series.Segments},
		{"length", series.Lengths},
		{"above fraction", series.Above},
	}, nil
}

func runConfig(meta *storage.RunMetadata) *config.Config {
	if meta.Config != nil {
		return meta.Config
	}
	return config.DefaultConfig()
}

func listRuns(cmd *cobra.Command, args []string) error {
	runs, err := storage.New(dataDir).List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tFIELD\tTIME\tFRAMES\tSEED\tSADDLE\tSEGMENTS")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%s\t%.1f\n",
			run.ID,
			run.Field,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Frames,
			run.Seed,
			run.Saddle,
			run.Metrics["segments_mean"],
		)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	meta, series, err := loadRun(args[0])
	if err != nil {
		return err
	}

	if outFile != "" {
		data := make(map[string][]float64, len(series))
		for _, s := range series[:2] {
			data[s.name] = s.data
		}
		if err := export.SeriesPlot(outFile, meta.ID, data); err != nil {
			return err
		}
		printRow("written", outFile)
		return nil
	}

	fmt.Println(titleStyle.Render(meta.ID))
	printRow("field", meta.Field)
	printRow("frames", meta.Frames)
	fmt.Println()

	for _, s := range series {
		fmt.Println(asciigraph.Plot(s.data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(s.name),
		))
		fmt.Println()
	}
	return nil
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	meta, series, err := loadRun(args[0])
	if err != nil {
		return err
	}

	fmt.Println(titleStyle.Render(meta.ID))
	for _, s := range series {
		fmt.Println()
		printRow(s.name, analysis.Summarize(s.data))
		period := analysis.DominantPeriod(s.data)
		if period == 0 {
			printRow("dominant period", "none")
			continue
		}
		printRow("dominant period", fmt.Sprintf("%.1f frames", period))
	}

	ps := analysis.PowerSpectrum(series[0].data)
	if len(ps) > 2 {
		fmt.Println()
		fmt.Println(asciigraph.Plot(ps[1:],
			asciigraph.Height(8),
			asciigraph.Width(60),
			asciigraph.Caption("segment count spectrum"),
		))
	}
	return nil
}

func exportSVG(cmd *cobra.Command, args []string) error {
	runID := args[0]
	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	segs, err := st.LoadSegments(runID)
	if err != nil {
		return err
	}

	svg := export.FrameSVG(engine.Frame{Index: meta.Frames, Segments: segs}, runConfig(meta).Bounds(), export.DefaultSVGStyle)
	path := defaultOut(runID, ".svg")
	if err := os.WriteFile(path, []byte(svg), 0644); err != nil {
		return err
	}
	printRow("segments", len(segs))
	printRow("written", path)
	return nil
}

func reportRun(cmd *cobra.Command, args []string) error {
	runID := args[0]
	meta, series, err := loadRun(runID)
	if err != nil {
		return err
	}
	segs, err := storage.New(dataDir).LoadSegments(runID)
	if err != nil {
		return err
	}

	r := export.Report{
		Title:    meta.ID,
		Subtitle: fmt.Sprintf("field=%s seed=%d saddle=%s", meta.Field, meta.Seed, meta.Saddle),
		Series:   make(map[string][]float64, len(series)),
		Segments: segs,
		Bounds:   runConfig(meta).Bounds(),
	}
	for _, s := range series {
		r.Series[s.name] = s.data
		r.Order = append(r.Order, s.name)
	}

	path := defaultOut(runID, ".html")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := export.WriteReport(f, r); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	printRow("written", path)
	return nil
}
