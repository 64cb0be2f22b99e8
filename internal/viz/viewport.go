package viz

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Viewport maps a box in view coordinates onto a dot raster. Y grows down
// in both spaces.
type Viewport struct {
	World r2.Box
	Dots  struct{ W, H int }
}

func NewViewport(world r2.Box, c *Canvas) Viewport {
	v := Viewport{World: world}
	v.Dots.W, v.Dots.H = c.DotsWide(), c.DotsHigh()
	return v
}

// Map returns the dot under p. Points outside World map outside the raster.
func (v Viewport) Map(p r2.Vec) (int, int) {
	size := v.World.Size()
	if size.X <= 0 || size.Y <= 0 {
		return -1, -1
	}
	x := (p.X - v.World.Min.X) / size.X * float64(v.Dots.W)
	y := (p.Y - v.World.Min.Y) / size.Y * float64(v.Dots.H)
	return int(math.Floor(x)), int(math.Floor(y))
}

// Scale is the number of dots per view unit along x.
func (v Viewport) Scale() float64 {
	w := v.World.Size().X
	if w <= 0 {
		return 0
	}
	return float64(v.Dots.W) / w
}
