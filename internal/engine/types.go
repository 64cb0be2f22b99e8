package engine

import (
	"errors"
	"fmt"

	"github.com/san-kum/isoline/internal/contour"
	"github.com/san-kum/isoline/internal/field"
)

var ErrNoFrames = errors.New("engine: frame count must be positive")

// Frame is everything a renderer needs for one cycle. Slices are copies and
// stay valid after the engine moves on.
type Frame struct {
	Index    int
	Points   []contour.GridPoint
	Segments []contour.Segment
	Sources  []field.PointSource
	Stats    contour.Stats
}

func (f Frame) Length() float64 {
	total := 0.0
	for _, s := range f.Segments {
		total += s.Length()
	}
	return total
}

func (f Frame) AboveFraction() float64 {
	if len(f.Points) == 0 {
		return 0
	}
	n := 0
	for _, p := range f.Points {
		if p.Class == contour.Above {
			n++
		}
	}
	return float64(n) / float64(len(f.Points))
}

type Observer interface {
	OnFrame(f Frame)
}

type ObserverFunc func(Frame)

func (fn ObserverFunc) OnFrame(f Frame) { fn(f) }

type Metric interface {
	Name() string
	Observe(f Frame)
	Value() float64
	Reset()
}

type Result struct {
	Frames         int
	Segments       []float64
	Lengths        []float64
	AboveFractions []float64
	Degenerate     int
	Metrics        map[string]float64
	Final          Frame
}

func (r *Result) record(f Frame) {
	r.Frames++
	r.Segments = append(r.Segments, float64(len(f.Segments)))
	r.Lengths = append(r.Lengths, f.Length())
	r.AboveFractions = append(r.AboveFractions, f.AboveFraction())
	r.Degenerate += f.Stats.Degenerate
	r.Final = f
}

// FrameError reports the frame a run stopped at.
type FrameError struct {
	Frame   int
	Wrapped error
}

func (e *FrameError) Error() string {
	return fmt.Sprintf("frame %d: %v", e.Frame, e.Wrapped)
}

func (e *FrameError) Unwrap() error {
	return e.Wrapped
}
