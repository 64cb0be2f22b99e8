package metrics

import (
	"github.com/san-kum/isoline/internal/engine"
	"gonum.org/v1/gonum/stat"
)

// SegmentCount is the mean number of segments per frame.
type SegmentCount struct {
	name   string
	counts []float64
}

func NewSegmentCount() *SegmentCount {
	return &SegmentCount{name: "segments_mean"}
}

func (s *SegmentCount) Name() string { return s.name }

func (s *SegmentCount) Observe(f engine.Frame) {
	s.counts = append(s.counts, float64(len(f.Segments)))
}

func (s *SegmentCount) Value() float64 {
	if len(s.counts) == 0 {
		return 0
	}
	return stat.Mean(s.counts, nil)
}

func (s *SegmentCount) Reset() {
	s.counts = s.counts[:0]
}

// Variability is the sample standard deviation of the per-frame segment
// count. It is zero for a static field.
type Variability struct {
	name   string
	counts []float64
}

func NewVariability() *Variability {
	return &Variability{name: "segments_stddev"}
}

func (v *Variability) Name() string { return v.name }

func (v *Variability) Observe(f engine.Frame) {
	v.counts = append(v.counts, float64(len(f.Segments)))
}

func (v *Variability) Value() float64 {
	if len(v.counts) < 2 {
		return 0
	}
	return stat.StdDev(v.counts, nil)
}

func (v *Variability) Reset() {
	v.counts = v.counts[:0]
}
