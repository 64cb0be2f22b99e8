package engine

import (
	"context"
	"fmt"

	"github.com/san-kum/isoline/internal/config"
	"golang.org/x/sync/errgroup"
)

// Ensemble runs the same configuration under consecutive seeds.
type Ensemble struct {
	cfg        *config.Config
	runs       int
	seedStart  int64
	newMetrics func() []Metric
}

// NewEnsemble builds an ensemble of runs engines seeded seedStart,
// seedStart+1, and so on. newMetrics may be nil; when set it is called once
// per run so no metric is shared across goroutines.
func NewEnsemble(cfg *config.Config, runs int, seedStart int64, newMetrics func() []Metric) *Ensemble {
	return &Ensemble{cfg: cfg, runs: runs, seedStart: seedStart, newMetrics: newMetrics}
}

// Run returns one result per seed, in seed order. The first failing run
// cancels the rest.
func (e *Ensemble) Run(ctx context.Context, frames int) ([]*Result, error) {
	if e.runs <= 0 {
		return nil, fmt.Errorf("ensemble: runs must be positive, got %d", e.runs)
	}

	results := make([]*Result, e.runs)
	g, ctx := errgroup.WithContext(ctx)

	for i := 0; i < e.runs; i++ {
		g.Go(func() error {
			cfg := e.cfg.Clone()
			cfg.Seed = e.seedStart + int64(i)

			eng, err := New(cfg)
			if err != nil {
				return fmt.Errorf("seed %d: %w", cfg.Seed, err)
			}
			if e.newMetrics != nil {
				for _, m := range e.newMetrics() {
					eng.AddMetric(m)
				}
			}

			res, err := eng.Run(ctx, frames)
			if err != nil {
				return fmt.Errorf("seed %d: %w", cfg.Seed, err)
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
