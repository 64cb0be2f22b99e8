package contour

// Field is anything that maps a 2-D coordinate to a scalar value.
type Field interface {
	Value(x, y float64) float64
}

// Sampler evaluates Field at coordinates scaled by ScaleX and ScaleY and
// classifies the result against Threshold.
type Sampler struct {
	Field     Field
	ScaleX    float64
	ScaleY    float64
	Threshold float64
}

func (s Sampler) Value(p Point) float64 {
	return s.Field.Value(p.X*s.ScaleX, p.Y*s.ScaleY)
}

// Classify reports Above for values at or over the threshold. +Inf (a sample
// sitting exactly on a point source) is Above; NaN is Below.
func (s Sampler) Classify(v float64) Classification {
	return Classification(v >= s.Threshold)
}

func (s Sampler) Point(p Point) GridPoint {
	return GridPoint{Pos: p, Class: s.Classify(s.Value(p))}
}
