package metrics

import (
	"github.com/san-kum/isoline/internal/engine"
	"gonum.org/v1/gonum/stat"
)

// ContourLength is the mean total isoline length per frame, in view units.
type ContourLength struct {
	name    string
	lengths []float64
}

func NewContourLength() *ContourLength {
	return &ContourLength{name: "length_mean"}
}

func (c *ContourLength) Name() string { return c.name }

func (c *ContourLength) Observe(f engine.Frame) {
	c.lengths = append(c.lengths, f.Length())
}

func (c *ContourLength) Value() float64 {
	if len(c.lengths) == 0 {
		return 0
	}
	return stat.Mean(c.lengths, nil)
}

func (c *ContourLength) Reset() {
	c.lengths = c.lengths[:0]
}
