// Package motion moves metaball sources between frames.
package motion

import (
	"math/rand"

	"github.com/san-kum/isoline/internal/field"
	"gonum.org/v1/gonum/spatial/r2"
)

// Advance moves every source by its velocity, then reflects any velocity
// component that carries the source's rim past a wall of bounds. Sources do
// not interact.
func Advance(sources []field.PointSource, bounds r2.Box) {
	for i := range sources {
		s := &sources[i]
		s.Position = r2.Add(s.Position, s.Velocity)
		s.Velocity.X = reflect(s.Position.X, s.Velocity.X, s.Radius, bounds.Min.X, bounds.Max.X)
		s.Velocity.Y = reflect(s.Position.Y, s.Velocity.Y, s.Radius, bounds.Min.Y, bounds.Max.Y)
	}
}

func reflect(p, v, r, lo, hi float64) float64 {
	if (v < 0 && p-r < lo) || (v > 0 && p+r >= hi) {
		return -v
	}
	return v
}

type Ranges struct {
	MinRadius float64
	MaxRadius float64
	MaxSpeed  float64
}

// Spawn places n sources uniformly inside bounds inset by each radius.
// Radii are uniform in [MinRadius, MaxRadius); each velocity component has
// a magnitude in [1, MaxSpeed] and a random sign.
func Spawn(rng *rand.Rand, n int, bounds r2.Box, r Ranges) []field.PointSource {
	sources := make([]field.PointSource, n)
	for i := range sources {
		radius := r.MinRadius
		if r.MaxRadius > r.MinRadius {
			radius += rng.Float64() * (r.MaxRadius - r.MinRadius)
		}
		sources[i] = field.PointSource{
			Position: r2.Vec{
				X: place(rng, bounds.Min.X, bounds.Max.X, radius),
				Y: place(rng, bounds.Min.Y, bounds.Max.Y, radius),
			},
			Velocity: r2.Vec{X: speed(rng, r.MaxSpeed), Y: speed(rng, r.MaxSpeed)},
			Radius:   radius,
		}
	}
	return sources
}

func place(rng *rand.Rand, lo, hi, radius float64) float64 {
	if hi-lo <= 2*radius {
		return (lo + hi) / 2
	}
	return lo + radius + rng.Float64()*(hi-lo-2*radius)
}

func speed(rng *rand.Rand, max float64) float64 {
	v := 1.0
	if max > 1 {
		v += rng.Float64() * (max - 1)
	}
	if rng.Intn(2) == 0 {
		return -v
	}
	return v
}

// Clone copies sources so a spawn can be replayed after Advance mutates them.
func Clone(sources []field.PointSource) []field.PointSource {
	c := make([]field.PointSource, len(sources))
	copy(c, sources)
	return c
}
