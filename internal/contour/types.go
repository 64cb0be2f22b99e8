package contour

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"
)

type Point = r2.Vec

type Classification bool

const (
	Below Classification = false
	Above Classification = true
)

func (c Classification) String() string {
	if c == Above {
		return "above"
	}
	return "below"
}

type GridPoint struct {
	Pos   Point
	Class Classification
}

// Cell holds four grid points in cyclic order, so corner k neighbors
// corners k-1 and k+1 modulo 4.
type Cell [4]GridPoint

func (c Cell) Sum() int {
	n := 0
	for _, p := range c {
		if p.Class == Above {
			n++
		}
	}
	return n
}

func (c Cell) Center() Point {
	return r2.Scale(0.5, r2.Add(c[0].Pos, c[2].Pos))
}

func prev(k int) int { return (k + 3) & 3 }
func next(k int) int { return (k + 1) & 3 }

type Segment struct {
	P1, P2 Point
}

func (s Segment) Length() float64 {
	return r2.Norm(r2.Sub(s.P2, s.P1))
}

func (s Segment) String() string {
	return fmt.Sprintf("(%.3f,%.3f)-(%.3f,%.3f)", s.P1.X, s.P1.Y, s.P2.X, s.P2.Y)
}

type Case int

const (
	CaseNone Case = iota
	CaseCorner
	CaseInverseCorner
	CaseEdge
	CaseSaddle
)

var caseNames = [...]string{"none", "corner", "inverse-corner", "edge", "saddle"}

func (c Case) String() string {
	if c < 0 || int(c) >= len(caseNames) {
		return fmt.Sprintf("case(%d)", int(c))
	}
	return caseNames[c]
}

type SaddleMode int

const (
	// SaddleIndependent isolates each above corner of a saddle cell.
	SaddleIndependent SaddleMode = iota
	// SaddleCenter samples the cell center and isolates the below corners
	// instead when the center is above.
	SaddleCenter
)

func (m SaddleMode) String() string {
	if m == SaddleCenter {
		return "center"
	}
	return "independent"
}

func ParseSaddleMode(s string) (SaddleMode, error) {
	switch s {
	case "", "independent":
		return SaddleIndependent, nil
	case "center":
		return SaddleCenter, nil
	}
	return SaddleIndependent, fmt.Errorf("%w: %q", ErrUnknownSaddleMode, s)
}
