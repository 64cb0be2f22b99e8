package engine

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/san-kum/isoline/internal/config"
	"github.com/san-kum/isoline/internal/contour"
	"github.com/san-kum/isoline/internal/field"
	"github.com/san-kum/isoline/internal/motion"
	"gonum.org/v1/gonum/spatial/r2"
)

type Engine struct {
	cfg       *config.Config
	bounds    r2.Box
	sources   []field.PointSource
	initial   []field.PointSource
	moving    bool
	tracer    *contour.Tracer
	frame     int
	metrics   []Metric
	observers []Observer
}

// New validates cfg and spawns its sources from cfg.Seed.
func New(cfg *config.Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	var sources []field.PointSource
	if cfg.Field == "metaballs" {
		rng := rand.New(rand.NewSource(cfg.Seed))
		sources = motion.Spawn(rng, cfg.Sources.Count, cfg.Bounds(), cfg.Ranges())
	}
	return NewWithSources(cfg, sources)
}

// NewWithSources builds an engine around explicit sources instead of a
// random spawn. The engine keeps its own copy.
func NewWithSources(cfg *config.Config, sources []field.PointSource) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	e := &Engine{
		cfg:     cfg.Clone(),
		bounds:  cfg.Bounds(),
		sources: motion.Clone(sources),
		initial: motion.Clone(sources),
		moving:  cfg.Field == "metaballs",
	}

	fld, err := field.New(cfg.Field, cfg.FieldParams(e.sources))
	if err != nil {
		return nil, err
	}
	cols, rows := cfg.GridSize()
	grid, err := contour.NewGrid(cols, rows, cfg.Grid.Spacing, contour.Point{})
	if err != nil {
		return nil, fmt.Errorf("build grid: %w", err)
	}
	sampler := contour.Sampler{
		Field:     fld,
		ScaleX:    cfg.Grid.ScaleX,
		ScaleY:    cfg.Grid.ScaleY,
		Threshold: cfg.Threshold,
	}
	e.tracer = contour.NewTracer(grid, sampler, contour.WithSaddleMode(cfg.SaddleMode()))
	return e, nil
}

func (e *Engine) AddMetric(m Metric)     { e.metrics = append(e.metrics, m) }
func (e *Engine) AddObserver(o Observer) { e.observers = append(e.observers, o) }

func (e *Engine) Config() *config.Config       { return e.cfg }
func (e *Engine) Bounds() r2.Box               { return e.bounds }
func (e *Engine) FrameIndex() int              { return e.frame }
func (e *Engine) Tracer() *contour.Tracer      { return e.tracer }
func (e *Engine) Sources() []field.PointSource { return motion.Clone(e.sources) }

func (e *Engine) SetSaddleMode(m contour.SaddleMode) {
	e.tracer.SetSaddleMode(m)
	e.cfg.Saddle = m.String()
}

// Step runs one full cycle: advance, resample, trace.
func (e *Engine) Step() Frame {
	if e.moving {
		motion.Advance(e.sources, e.bounds)
	}
	e.frame++
	return e.Snapshot()
}

// Snapshot resamples and traces the current state without moving anything.
func (e *Engine) Snapshot() Frame {
	e.tracer.Resample()
	segs := e.tracer.Trace()
	return Frame{
		Index:    e.frame,
		Points:   e.tracer.Grid().Points(),
		Segments: segs,
		Sources:  motion.Clone(e.sources),
		Stats:    e.tracer.Stats(),
	}
}

// Reset puts the sources back where they spawned. The field keeps reading
// the same backing slice.
func (e *Engine) Reset() {
	copy(e.sources, e.initial)
	e.frame = 0
}

// Run steps the engine frames times, feeding metrics and observers after
// every frame. A canceled context stops the run between frames and returns
// the partial result.
func (e *Engine) Run(ctx context.Context, frames int) (*Result, error) {
	if frames <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNoFrames, frames)
	}

	result := &Result{
		Segments:       make([]float64, 0, frames),
		Lengths:        make([]float64, 0, frames),
		AboveFractions: make([]float64, 0, frames),
		Metrics:        make(map[string]float64),
	}

	for _, m := range e.metrics {
		m.Reset()
	}

	for i := 0; i < frames; i++ {
		select {
		case <-ctx.Done():
			return result, &FrameError{Frame: e.frame, Wrapped: ctx.Err()}
		default:
		}

		f := e.Step()
		for _, m := range e.metrics {
			m.Observe(f)
		}
		for _, obs := range e.observers {
			obs.OnFrame(f)
		}
		result.record(f)
	}

	for _, m := range e.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, nil
}
