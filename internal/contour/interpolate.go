package contour

import "math"

// Interpolate returns the point on edge a-b where the sampled field crosses
// the threshold, assuming the field is linear along the edge. Both ends are
// re-evaluated rather than trusted from the last classification pass.
func Interpolate(s Sampler, a, b GridPoint) (Point, error) {
	sameX, sameY := a.Pos.X == b.Pos.X, a.Pos.Y == b.Pos.Y
	if sameX == sameY {
		return Point{}, ErrNotAdjacent
	}
	if a.Class == b.Class {
		return Point{}, ErrSameClass
	}

	v1, v2 := s.Value(a.Pos), s.Value(b.Pos)
	var t float64
	switch inf1, inf2 := math.IsInf(v1, 0), math.IsInf(v2, 0); {
	case inf1 && inf2:
		return Point{}, ErrDegenerateEdge
	case inf1 || inf2:
		// a source on the grid point; the linear model has no crossing to
		// solve for, so take the edge midpoint
		t = 0.5
	case v1 == v2:
		return Point{}, ErrDegenerateEdge
	default:
		t = (s.Threshold - v1) / (v2 - v1)
	}
	if math.IsNaN(t) {
		return Point{}, ErrDegenerateEdge
	}
	t = math.Max(0, math.Min(1, t))

	if sameX {
		return Point{X: a.Pos.X, Y: a.Pos.Y + t*(b.Pos.Y-a.Pos.Y)}, nil
	}
	return Point{X: a.Pos.X + t*(b.Pos.X-a.Pos.X), Y: a.Pos.Y}, nil
}
