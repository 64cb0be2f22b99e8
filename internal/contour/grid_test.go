package contour

import (
	"errors"
	"math"
	"testing"
)

type fieldFunc func(x, y float64) float64

func (f fieldFunc) Value(x, y float64) float64 { return f(x, y) }

func TestNewGrid_Invalid(t *testing.T) {
	tests := []struct {
		name       string
		cols, rows int
		spacing    float64
	}{
		{"single column", 1, 5, 1},
		{"single row", 5, 1, 1},
		{"zero spacing", 5, 5, 0},
		{"negative spacing", 5, 5, -2},
		{"nan spacing", 5, 5, math.NaN()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewGrid(tt.cols, tt.rows, tt.spacing, Point{})
			if !errors.Is(err, ErrInvalidGrid) {
				t.Errorf("expected ErrInvalidGrid, got %v", err)
			}
		})
	}
}

func TestGrid_Positions(t *testing.T) {
	g, err := NewGrid(4, 3, 2.5, Point{X: 10, Y: -5})
	if err != nil {
		t.Fatalf("new grid: %v", err)
	}

	p := g.At(3, 2).Pos
	if p.X != 17.5 || p.Y != 0 {
		t.Errorf("expected (17.5, 0), got (%v, %v)", p.X, p.Y)
	}
	if len(g.Points()) != 12 {
		t.Errorf("expected 12 points, got %d", len(g.Points()))
	}
}

func TestGrid_CellIsCyclic(t *testing.T) {
	g, _ := NewGrid(5, 5, 1, Point{})

	for i := 0; i < g.Cols()-1; i++ {
		for j := 0; j < g.Rows()-1; j++ {
			c := g.Cell(i, j)
			for k := 0; k < 4; k++ {
				a, b := c[k].Pos, c[next(k)].Pos
				dx, dy := math.Abs(a.X-b.X), math.Abs(a.Y-b.Y)
				if !(dx == 0 && dy == 1) && !(dx == 1 && dy == 0) {
					t.Fatalf("cell (%d,%d): corners %d and %d are not neighbors", i, j, k, next(k))
				}
			}
			if c[0].Pos.X == c[2].Pos.X || c[0].Pos.Y == c[2].Pos.Y {
				t.Fatalf("cell (%d,%d): corners 0 and 2 are not diagonal", i, j)
			}
		}
	}
}

func TestGrid_Sample(t *testing.T) {
	g, _ := NewGrid(3, 3, 1, Point{})
	s := Sampler{Field: fieldFunc(func(x, y float64) float64 { return x }), ScaleX: 1, ScaleY: 1, Threshold: 1}

	g.Sample(s)

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := Classification(i >= 1)
			if got := g.At(i, j).Class; got != want {
				t.Errorf("point (%d,%d): expected %s, got %s", i, j, want, got)
			}
		}
	}
	if g.AboveCount() != 6 {
		t.Errorf("expected 6 above, got %d", g.AboveCount())
	}

	// reclassification replaces every value from the previous pass
	s.Threshold = 10
	g.Sample(s)
	if g.AboveCount() != 0 {
		t.Errorf("expected 0 above after raising threshold, got %d", g.AboveCount())
	}
}

func TestSampler_Scale(t *testing.T) {
	var gotX, gotY float64
	s := Sampler{
		Field:     fieldFunc(func(x, y float64) float64 { gotX, gotY = x, y; return 0 }),
		ScaleX:    1.0 / 256,
		ScaleY:    1.0 / 160,
		Threshold: 1,
	}

	s.Value(Point{X: 512, Y: 320})

	if gotX != 2 || gotY != 2 {
		t.Errorf("expected scaled (2, 2), got (%v, %v)", gotX, gotY)
	}
}

func TestSampler_Classify(t *testing.T) {
	s := Sampler{Threshold: 1}
	tests := []struct {
		name string
		v    float64
		want Classification
	}{
		{"below", 0.5, Below},
		{"equal", 1, Above},
		{"above", 3, Above},
		{"coincident source", math.Inf(1), Above},
		{"nan", math.NaN(), Below},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.Classify(tt.v); got != tt.want {
				t.Errorf("Classify(%v) = %s, want %s", tt.v, got, tt.want)
			}
		})
	}
}
