package contour

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// bilinear builds a field over the unit cell that is 2 at above corners and
// 0 at below corners, so every crossing sits exactly on an edge midpoint for
// threshold 1.
func bilinear(c Cell) Sampler {
	v := func(k int) float64 {
		if c[k].Class == Above {
			return 2
		}
		return 0
	}
	v00, v01, v11, v10 := v(0), v(1), v(2), v(3)
	return Sampler{
		Field: fieldFunc(func(x, y float64) float64 {
			return v00*(1-x)*(1-y) + v10*x*(1-y) + v01*(1-x)*y + v11*x*y
		}),
		ScaleX:    1,
		ScaleY:    1,
		Threshold: 1,
	}
}

func traceMask(mask int, opts ...Option) []Segment {
	c := cellFromMask(mask)
	return NewTracer(nil, bilinear(c), opts...).TraceCell(c)
}

func onCellEdge(p Point) bool {
	if p.X < 0 || p.X > 1 || p.Y < 0 || p.Y > 1 {
		return false
	}
	onBorder := p.X == 0 || p.X == 1 || p.Y == 0 || p.Y == 1
	atCorner := (p.X == 0 || p.X == 1) && (p.Y == 0 || p.Y == 1)
	return onBorder && !atCorner
}

func TestTraceCell_SegmentCounts(t *testing.T) {
	for mask := 0; mask < 16; mask++ {
		want := map[Case]int{CaseNone: 0, CaseCorner: 1, CaseInverseCorner: 1, CaseEdge: 1, CaseSaddle: 2}[Classify(cellFromMask(mask))]

		segs := traceMask(mask)
		if len(segs) != want {
			t.Errorf("mask %04b: expected %d segments, got %d", mask, want, len(segs))
		}
		for _, s := range segs {
			if !onCellEdge(s.P1) || !onCellEdge(s.P2) {
				t.Errorf("mask %04b: segment %v leaves the cell edges", mask, s)
			}
		}
	}
}

func TestTraceCell_Corner(t *testing.T) {
	segs := traceMask(0b0001)

	want := []Segment{{P1: Point{X: 0.5, Y: 0}, P2: Point{X: 0, Y: 0.5}}}
	if diff := cmp.Diff(want, segs); diff != "" {
		t.Errorf("corner segment mismatch (-want +got):\n%s", diff)
	}
}

func TestTraceCell_InverseCorner(t *testing.T) {
	// corner 2 is the only one below
	segs := traceMask(0b1011)

	want := []Segment{{P1: Point{X: 0.5, Y: 1}, P2: Point{X: 1, Y: 0.5}}}
	if diff := cmp.Diff(want, segs); diff != "" {
		t.Errorf("inverse corner mismatch (-want +got):\n%s", diff)
	}
}

func TestTraceCell_EdgeUsesOuterEdges(t *testing.T) {
	tests := []struct {
		name string
		mask int
		want Segment
	}{
		{"left column", 0b0011, Segment{P1: Point{X: 0.5, Y: 0}, P2: Point{X: 0.5, Y: 1}}},
		{"wraps around", 0b1001, Segment{P1: Point{X: 0, Y: 0.5}, P2: Point{X: 1, Y: 0.5}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			segs := traceMask(tt.mask)
			if diff := cmp.Diff([]Segment{tt.want}, segs); diff != "" {
				t.Errorf("edge segment mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTraceCell_SaddleIsolatesEachAboveCorner(t *testing.T) {
	// corners 0 and 2 above, 1 and 3 below
	segs := traceMask(0b0101)

	want := []Segment{
		{P1: Point{X: 0.5, Y: 0}, P2: Point{X: 0, Y: 0.5}},
		{P1: Point{X: 0.5, Y: 1}, P2: Point{X: 1, Y: 0.5}},
	}
	if diff := cmp.Diff(want, segs); diff != "" {
		t.Fatalf("saddle mismatch (-want +got):\n%s", diff)
	}

	// neither segment may bridge the two above corners
	for _, s := range segs {
		if math.Abs(s.P1.X-s.P2.X) == 1 || math.Abs(s.P1.Y-s.P2.Y) == 1 {
			t.Errorf("segment %v spans the cell", s)
		}
	}
}

func TestTraceCell_SaddleCenterMode(t *testing.T) {
	// bilinear center value is exactly the threshold, so the center counts as above
	segs := traceMask(0b0101, WithSaddleMode(SaddleCenter))

	want := []Segment{
		{P1: Point{X: 0, Y: 0.5}, P2: Point{X: 0.5, Y: 1}},
		{P1: Point{X: 1, Y: 0.5}, P2: Point{X: 0.5, Y: 0}},
	}
	if diff := cmp.Diff(want, segs); diff != "" {
		t.Errorf("center saddle mismatch (-want +got):\n%s", diff)
	}
}

func TestTraceCell_DegenerateEdgeSkipped(t *testing.T) {
	// the field is flat, so the classes below cannot be honored by interpolation
	c := cellFromMask(0b0001)
	s := Sampler{Field: fieldFunc(func(x, y float64) float64 { return 1 }), ScaleX: 1, ScaleY: 1, Threshold: 1}
	tr := NewTracer(nil, s)

	segs := tr.TraceCell(c)

	if len(segs) != 0 {
		t.Errorf("expected degenerate segment to be skipped, got %v", segs)
	}
	if tr.Stats().Degenerate != 2 || tr.Stats().Skipped != 1 {
		t.Errorf("unexpected stats %+v", tr.Stats())
	}
}

func inverseDistance(cx, cy, r float64) Sampler {
	return Sampler{
		Field: fieldFunc(func(x, y float64) float64 {
			return r / math.Hypot(x-cx, y-cy)
		}),
		ScaleX:    1,
		ScaleY:    1,
		Threshold: 1,
	}
}

func TestTrace_Circle(t *testing.T) {
	tests := []struct {
		name         string
		cx, cy, r    float64
		spacing      float64
		size         int
		minDistRatio float64
	}{
		{"source on grid", 50, 50, 10, 10, 11, 0.95},
		{"source off grid", 53, 47, 20, 5, 21, 0.975},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := NewGrid(tt.size, tt.size, tt.spacing, Point{})
			if err != nil {
				t.Fatalf("new grid: %v", err)
			}
			tr := NewTracer(g, inverseDistance(tt.cx, tt.cy, tt.r))
			tr.Resample()
			segs := tr.Trace()

			if len(segs) == 0 {
				t.Fatal("expected a contour")
			}
			lo, hi := tt.r*tt.minDistRatio, tt.r*(2-tt.minDistRatio)
			for _, s := range segs {
				for _, p := range []Point{s.P1, s.P2} {
					d := math.Hypot(p.X-tt.cx, p.Y-tt.cy)
					if d < lo || d > hi {
						t.Errorf("endpoint %v at distance %.3f, want [%.2f, %.2f]", p, d, lo, hi)
					}
				}
			}
			if tr.Stats().Segments != len(segs) {
				t.Errorf("stats report %d segments, traced %d", tr.Stats().Segments, len(segs))
			}
		})
	}
}

func TestTrace_Idempotent(t *testing.T) {
	g, _ := NewGrid(30, 20, 4, Point{})
	tr := NewTracer(g, inverseDistance(61, 37, 18))
	tr.Resample()

	first := tr.Trace()
	second := tr.Trace()

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("trace not idempotent (-first +second):\n%s", diff)
	}
}

func TestTrace_StatsCoverAllCells(t *testing.T) {
	g, _ := NewGrid(12, 9, 5, Point{})
	tr := NewTracer(g, inverseDistance(27, 21, 9))
	tr.Resample()
	tr.Trace()

	total := 0
	for _, n := range tr.Stats().Cases {
		total += n
	}
	if total != 11*8 {
		t.Errorf("expected %d classified cells, got %d", 11*8, total)
	}
}
