package analysis

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

type Summary struct {
	Samples int
	Mean    float64
	StdDev  float64
	Min     float64
	Max     float64
}

func Summarize(data []float64) Summary {
	s := Summary{Samples: len(data)}
	if len(data) == 0 {
		return s
	}
	s.Mean, s.StdDev = stat.MeanStdDev(data, nil)
	if len(data) < 2 {
		s.StdDev = 0
	}
	s.Min = floats.Min(data)
	s.Max = floats.Max(data)
	return s
}

func (s Summary) String() string {
	return fmt.Sprintf("n=%d mean=%.3f sd=%.3f min=%.3f max=%.3f", s.Samples, s.Mean, s.StdDev, s.Min, s.Max)
}
