package metrics

import (
	"errors"
	"fmt"

	"github.com/san-kum/isoline/internal/engine"
)

var ErrUnknownMetric = errors.New("metrics: unknown metric")

// Default returns a fresh instance of every metric, in report order.
func Default() []engine.Metric {
	return []engine.Metric{
		NewSegmentCount(),
		NewVariability(),
		NewContourLength(),
		NewCoverage(),
		NewDegeneracy(),
	}
}

// New returns a fresh metric by name.
func New(name string) (engine.Metric, error) {
	for _, m := range Default() {
		if m.Name() == name {
			return m, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownMetric, name)
}
