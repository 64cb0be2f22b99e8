package metrics

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/isoline/internal/contour"
	"github.com/san-kum/isoline/internal/engine"
	"gonum.org/v1/gonum/spatial/r2"
)

func frameWith(n int, length float64) engine.Frame {
	segs := make([]contour.Segment, n)
	for i := range segs {
		segs[i] = contour.Segment{P1: r2.Vec{}, P2: r2.Vec{X: length / float64(n)}}
	}
	return engine.Frame{Segments: segs}
}

func TestSegmentCount(t *testing.T) {
	m := NewSegmentCount()
	if m.Value() != 0 {
		t.Errorf("expected 0 before any frame, got %f", m.Value())
	}

	m.Observe(frameWith(2, 1))
	m.Observe(frameWith(4, 1))
	if m.Value() != 3 {
		t.Errorf("expected mean 3, got %f", m.Value())
	}

	m.Reset()
	if m.Value() != 0 {
		t.Error("expected zero after reset")
	}
}

func TestVariability(t *testing.T) {
	m := NewVariability()
	m.Observe(frameWith(5, 1))
	if m.Value() != 0 {
		t.Errorf("single frame should give 0, got %f", m.Value())
	}

	m.Observe(frameWith(5, 1))
	if m.Value() != 0 {
		t.Errorf("constant counts should give 0, got %f", m.Value())
	}

	m.Reset()
	m.Observe(frameWith(2, 1))
	m.Observe(frameWith(4, 1))
	want := math.Sqrt(2)
	if math.Abs(m.Value()-want) > 1e-12 {
		t.Errorf("expected %f, got %f", want, m.Value())
	}
}

func TestContourLength(t *testing.T) {
	m := NewContourLength()
	m.Observe(frameWith(4, 10))
	m.Observe(frameWith(2, 20))
	if math.Abs(m.Value()-15) > 1e-9 {
		t.Errorf("expected mean length 15, got %f", m.Value())
	}
}

func TestCoverage(t *testing.T) {
	f := engine.Frame{Points: []contour.GridPoint{
		{Class: contour.Above},
		{Class: contour.Below},
		{Class: contour.Below},
		{Class: contour.Below},
	}}

	m := NewCoverage()
	m.Observe(f)
	m.Observe(engine.Frame{})
	if m.Value() != 0.125 {
		t.Errorf("expected 0.125, got %f", m.Value())
	}
}

func TestDegeneracy(t *testing.T) {
	m := NewDegeneracy()
	m.Observe(engine.Frame{Stats: contour.Stats{Degenerate: 2}})
	m.Observe(engine.Frame{})
	m.Observe(engine.Frame{})
	m.Observe(engine.Frame{Stats: contour.Stats{Degenerate: 1}})
	if m.Value() != 0.5 {
		t.Errorf("expected 0.5, got %f", m.Value())
	}
}

func TestDefaultNamesUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, m := range Default() {
		if seen[m.Name()] {
			t.Errorf("duplicate metric name %q", m.Name())
		}
		seen[m.Name()] = true
	}
	if len(seen) != 5 {
		t.Errorf("expected 5 metrics, got %d", len(seen))
	}
}

func TestNewByName(t *testing.T) {
	m, err := New("length_mean")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := m.(*ContourLength); !ok {
		t.Errorf("expected *ContourLength, got %T", m)
	}

	if _, err := New("energy"); !errors.Is(err, ErrUnknownMetric) {
		t.Errorf("expected ErrUnknownMetric, got %v", err)
	}
}
