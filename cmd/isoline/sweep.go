package main

import (
	"fmt"
	"log"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/san-kum/isoline/internal/engine"
	"github.com/san-kum/isoline/internal/metrics"
	"github.com/san-kum/isoline/internal/optim"
	"github.com/spf13/cobra"
)

var (
	sweepRanges []string
	sweepMetric string
	sweepMax    bool
)

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if len(sweepRanges) == 0 {
		return fmt.Errorf("no --param given (available: %s)", strings.Join(optim.ParamNames(), ", "))
	}
	if _, err := metrics.New(sweepMetric); err != nil {
		return err
	}

	names := make([]string, 0, len(sweepRanges))
	ranges := make([][]float64, 0, len(sweepRanges))
	for _, spec := range sweepRanges {
		name, vals, err := optim.ParseRange(spec)
		if err != nil {
			return err
		}
		names = append(names, name)
		ranges = append(ranges, vals)
	}

	gs, err := optim.NewGridSearch(names, ranges)
	if err != nil {
		return err
	}
	log.Printf("sweeping %d combinations over %d frames", gs.Size(), cfg.Frames)

	newMetric := func() engine.Metric {
		m, _ := metrics.New(sweepMetric)
		return m
	}
	points, err := gs.Search(cmd.Context(), cfg, cfg.Frames, newMetric)
	if err != nil {
		return err
	}

	keys := append([]string(nil), names...)
	sort.Strings(keys)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, strings.ToUpper(strings.Join(keys, "\t"))+"\t"+strings.ToUpper(sweepMetric))
	for _, p := range points {
		row := make([]string, 0, len(keys)+1)
		for _, k := range keys {
			row = append(row, fmt.Sprintf("%g", p.Params[k]))
		}
		if p.Err != nil {
			log.Printf("%v: %v", p.Params, p.Err)
			row = append(row, "error")
		} else {
			row = append(row, fmt.Sprintf("%.4f", p.Value))
		}
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	best, ok := optim.Best(points, !sweepMax)
	if !ok {
		return fmt.Errorf("every combination failed")
	}
	fmt.Println()
	for _, k := range keys {
		printRow(k, fmt.Sprintf("%g", best.Params[k]))
	}
	printRow(sweepMetric, fmt.Sprintf("%.4f", best.Value))
	return nil
}
