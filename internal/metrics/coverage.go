package metrics

import (
	"github.com/san-kum/isoline/internal/engine"
	"gonum.org/v1/gonum/stat"
)

// Coverage is the mean fraction of grid points classified Above.
type Coverage struct {
	name      string
	fractions []float64
}

func NewCoverage() *Coverage {
	return &Coverage{name: "above_fraction"}
}

func (c *Coverage) Name() string { return c.name }

func (c *Coverage) Observe(f engine.Frame) {
	c.fractions = append(c.fractions, f.AboveFraction())
}

func (c *Coverage) Value() float64 {
	if len(c.fractions) == 0 {
		return 0
	}
	return stat.Mean(c.fractions, nil)
}

func (c *Coverage) Reset() {
	c.fractions = c.fractions[:0]
}

// Degeneracy is the fraction of frames in which at least one crossing was
// dropped for a degenerate edge.
type Degeneracy struct {
	name    string
	hits    int
	samples int
}

func NewDegeneracy() *Degeneracy {
	return &Degeneracy{name: "degenerate_rate"}
}

func (d *Degeneracy) Name() string { return d.name }

func (d *Degeneracy) Observe(f engine.Frame) {
	d.samples++
	if f.Stats.Degenerate > 0 {
		d.hits++
	}
}

func (d *Degeneracy) Value() float64 {
	if d.samples == 0 {
		return 0
	}
	return float64(d.hits) / float64(d.samples)
}

func (d *Degeneracy) Reset() {
	d.hits = 0
	d.samples = 0
}
