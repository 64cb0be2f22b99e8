package optim

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// maxRangeValues bounds a single start:stop:step expansion.
const maxRangeValues = 1_000_000

// ParseRange reads "name=v1,v2,..." or "name=start:stop:step" (stop
// inclusive).
func ParseRange(spec string) (string, []float64, error) {
	name, body, ok := strings.Cut(spec, "=")
	if !ok || name == "" || body == "" {
		return "", nil, fmt.Errorf("optim: range %q is not name=values", spec)
	}

	if parts := strings.Split(body, ":"); len(parts) == 3 {
		var v [3]float64
		for i, s := range parts {
			f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
			if err != nil {
				return "", nil, fmt.Errorf("optim: range %q: %w", spec, err)
			}
			v[i] = f
		}
		start, stop, step := v[0], v[1], v[2]
		if !finite(start) || !finite(stop) || !finite(step) {
			return "", nil, fmt.Errorf("optim: range %q must be finite", spec)
		}
		if !(step > 0) || stop < start {
			return "", nil, fmt.Errorf("optim: range %q needs start <= stop and step > 0", spec)
		}
		n := math.Floor((stop-start)/step+1e-9) + 1
		if n > maxRangeValues {
			return "", nil, fmt.Errorf("optim: range %q expands to more than %d values", spec, maxRangeValues)
		}
		vals := make([]float64, int(n))
		for i := range vals {
			vals[i] = start + float64(i)*step
		}
		return name, vals, nil
	}

	var vals []float64
	for _, s := range strings.Split(body, ",") {
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return "", nil, fmt.Errorf("optim: range %q: %w", spec, err)
		}
		if !finite(f) {
			return "", nil, fmt.Errorf("optim: range %q must be finite", spec)
		}
		vals = append(vals, f)
	}
	return name, vals, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
