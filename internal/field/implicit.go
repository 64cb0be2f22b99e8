package field

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Heart is the implicit curve ((x-cx)^2 + (y-cy)^2 - 1)^3 - (x-cx)^2 (y-cy)^3.
// It is negative inside the curve and grows quickly outside it.
type Heart struct {
	Center r2.Vec
}

func (h Heart) Value(x, y float64) float64 {
	dx, dy := x-h.Center.X, y-h.Center.Y
	return math.Pow(dx*dx+dy*dy-1, 3) - dx*dx*dy*dy*dy
}

type Linear struct {
	A, B, C float64
}

func (l Linear) Value(x, y float64) float64 {
	return l.A*x + l.B*y + l.C
}
