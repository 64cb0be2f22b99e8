package field

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// PointSource is a single metaball.
type PointSource struct {
	Position r2.Vec
	Velocity r2.Vec
	Radius   float64
}

// Metaballs sums radius/distance over its sources. The slice is shared with
// the caller so the motion integrator can move sources between samples.
type Metaballs struct {
	Sources []PointSource
}

func NewMetaballs(sources []PointSource) *Metaballs {
	return &Metaballs{Sources: sources}
}

// Value returns +Inf when (x, y) coincides with a source position.
func (m *Metaballs) Value(x, y float64) float64 {
	sum := 0.0
	for _, s := range m.Sources {
		d := math.Hypot(x-s.Position.X, y-s.Position.Y)
		if d == 0 {
			return math.Inf(1)
		}
		sum += s.Radius / d
	}
	return sum
}
