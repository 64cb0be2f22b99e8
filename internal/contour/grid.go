package contour

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"
)

// Grid is a cols x rows lattice of sample points. Positions are fixed at
// construction; classifications are rewritten by every Sample pass.
type Grid struct {
	cols, rows int
	spacing    float64
	origin     Point
	points     []GridPoint
}

func NewGrid(cols, rows int, spacing float64, origin Point) (*Grid, error) {
	if cols < 2 || rows < 2 || !(spacing > 0) {
		return nil, fmt.Errorf("%w: cols=%d rows=%d spacing=%g", ErrInvalidGrid, cols, rows, spacing)
	}
	g := &Grid{
		cols:    cols,
		rows:    rows,
		spacing: spacing,
		origin:  origin,
		points:  make([]GridPoint, cols*rows),
	}
	for i := 0; i < cols; i++ {
		for j := 0; j < rows; j++ {
			g.points[i*rows+j].Pos = r2.Add(origin, Point{X: float64(i) * spacing, Y: float64(j) * spacing})
		}
	}
	return g, nil
}

func (g *Grid) Cols() int             { return g.cols }
func (g *Grid) Rows() int             { return g.rows }
func (g *Grid) Spacing() float64      { return g.spacing }
func (g *Grid) Origin() Point         { return g.origin }
func (g *Grid) At(i, j int) GridPoint { return g.points[i*g.rows+j] }

// Sample reclassifies every point against s. It always completes the whole
// lattice before returning, so no cell can observe a stale corner.
func (g *Grid) Sample(s Sampler) {
	for k := range g.points {
		g.points[k].Class = s.Classify(s.Value(g.points[k].Pos))
	}
}

// Points returns a copy of the classified lattice in column-major order.
func (g *Grid) Points() []GridPoint {
	out := make([]GridPoint, len(g.points))
	copy(out, g.points)
	return out
}

// Cell returns the square whose lowest-index corner is (i, j), ordered
// (i,j) → (i,j+1) → (i+1,j+1) → (i+1,j).
func (g *Grid) Cell(i, j int) Cell {
	return Cell{g.At(i, j), g.At(i, j+1), g.At(i+1, j+1), g.At(i+1, j)}
}

func (g *Grid) AboveCount() int {
	n := 0
	for _, p := range g.points {
		if p.Class == Above {
			n++
		}
	}
	return n
}
