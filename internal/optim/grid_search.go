package optim

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/san-kum/isoline/internal/config"
	"github.com/san-kum/isoline/internal/engine"
)

var ErrUnknownParam = errors.New("optim: unknown parameter")

// Setter writes one swept value into a config.
type Setter func(cfg *config.Config, v float64)

var setters = map[string]Setter{
	"threshold":  func(c *config.Config, v float64) { c.Threshold = v },
	"spacing":    func(c *config.Config, v float64) { c.Grid.Spacing = v },
	"sources":    func(c *config.Config, v float64) { c.Sources.Count = int(v) },
	"min_radius": func(c *config.Config, v float64) { c.Sources.MinRadius = v },
	"max_radius": func(c *config.Config, v float64) { c.Sources.MaxRadius = v },
	"max_speed":  func(c *config.Config, v float64) { c.Sources.MaxSpeed = v },
}

func ParamNames() []string {
	names := make([]string, 0, len(setters))
	for name := range setters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Point is one evaluated combination. Err is set when the combination
// produced an invalid config or a failed run.
type Point struct {
	Params map[string]float64
	Value  float64
	Err    error
}

type GridSearch struct {
	paramNames []string
	ranges     [][]float64
}

func NewGridSearch(params []string, ranges [][]float64) (*GridSearch, error) {
	if len(params) != len(ranges) {
		return nil, fmt.Errorf("optim: %d params but %d ranges", len(params), len(ranges))
	}
	for i, name := range params {
		if _, ok := setters[name]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownParam, name)
		}
		if len(ranges[i]) == 0 {
			return nil, fmt.Errorf("optim: empty range for %s", name)
		}
	}
	return &GridSearch{paramNames: params, ranges: ranges}, nil
}

// Size is the number of combinations Search will run.
func (g *GridSearch) Size() int {
	n := 1
	for _, r := range g.ranges {
		n *= len(r)
	}
	return n
}

// Search runs every combination on a copy of base for frames frames and
// records the metric newMetric builds. Combinations are visited in
// row-major order of the ranges.
func (g *GridSearch) Search(
	ctx context.Context,
	base *config.Config,
	frames int,
	newMetric func() engine.Metric,
) ([]Point, error) {
	points := make([]Point, 0, g.Size())
	err := g.searchRecursive(ctx, 0, make(map[string]float64), func(params map[string]float64) {
		points = append(points, g.evaluate(ctx, base, frames, params, newMetric))
	})
	return points, err
}

func (g *GridSearch) searchRecursive(
	ctx context.Context,
	depth int,
	current map[string]float64,
	visit func(map[string]float64),
) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if depth == len(g.paramNames) {
		visit(current)
		return nil
	}

	name := g.paramNames[depth]
	for _, val := range g.ranges[depth] {
		next := make(map[string]float64, len(current)+1)
		for k, v := range current {
			next[k] = v
		}
		next[name] = val
		if err := g.searchRecursive(ctx, depth+1, next, visit); err != nil {
			return err
		}
	}
	return nil
}

func (g *GridSearch) evaluate(
	ctx context.Context,
	base *config.Config,
	frames int,
	params map[string]float64,
	newMetric func() engine.Metric,
) Point {
	cfg := base.Clone()
	for name, v := range params {
		setters[name](cfg, v)
	}

	p := Point{Params: params, Value: math.NaN()}
	eng, err := engine.New(cfg)
	if err != nil {
		p.Err = err
		return p
	}
	m := newMetric()
	eng.AddMetric(m)

	res, err := eng.Run(ctx, frames)
	if err != nil {
		p.Err = err
		return p
	}
	p.Value = res.Metrics[m.Name()]
	return p
}

// Best returns the lowest (or highest) successful point.
func Best(points []Point, minimize bool) (Point, bool) {
	var best Point
	found := false
	for _, p := range points {
		if p.Err != nil {
			continue
		}
		if !found || (minimize && p.Value < best.Value) || (!minimize && p.Value > best.Value) {
			best, found = p, true
		}
	}
	return best, found
}
