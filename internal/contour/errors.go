package contour

import "errors"

var (
	// ErrInvalidGrid indicates grid dimensions that cannot form a single cell.
	ErrInvalidGrid = errors.New("contour: grid needs at least 2x2 points and positive spacing")

	// ErrDegenerateEdge indicates equal field values at both ends of an edge.
	ErrDegenerateEdge = errors.New("contour: degenerate edge (equal endpoint values)")

	// ErrNotAdjacent indicates interpolation between points sharing no axis.
	ErrNotAdjacent = errors.New("contour: edge endpoints share no axis")

	// ErrSameClass indicates interpolation along an edge with no crossing.
	ErrSameClass = errors.New("contour: edge endpoints have the same classification")

	ErrUnknownSaddleMode = errors.New("contour: unknown saddle mode")
)
