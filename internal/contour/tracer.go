package contour

type Stats struct {
	Cases      [5]int
	Segments   int
	Degenerate int
	Skipped    int
}

func (s Stats) Count(c Case) int { return s.Cases[c] }

type Option func(*Tracer)

func WithSaddleMode(m SaddleMode) Option {
	return func(t *Tracer) { t.saddle = m }
}

// Tracer sweeps every cell of the grid it owns and collects the resulting
// segments. It holds no state across passes apart from the grid and the
// statistics of the most recent Trace.
type Tracer struct {
	grid    *Grid
	sampler Sampler
	saddle  SaddleMode
	stats   Stats
}

func NewTracer(g *Grid, s Sampler, opts ...Option) *Tracer {
	t := &Tracer{grid: g, sampler: s}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *Tracer) Grid() *Grid                { return t.grid }
func (t *Tracer) Sampler() Sampler           { return t.sampler }
func (t *Tracer) SaddleMode() SaddleMode     { return t.saddle }
func (t *Tracer) SetSaddleMode(m SaddleMode) { t.saddle = m }
func (t *Tracer) Stats() Stats               { return t.stats }

// Resample reclassifies the whole grid from the current field state.
func (t *Tracer) Resample() {
	t.grid.Sample(t.sampler)
}

// Trace sweeps the (cols-1) x (rows-1) cells column by column and returns
// every emitted segment. Calling it twice without a Resample in between
// yields the same segments.
func (t *Tracer) Trace() []Segment {
	t.stats = Stats{}
	var segs []Segment
	for i := 0; i < t.grid.cols-1; i++ {
		for j := 0; j < t.grid.rows-1; j++ {
			segs = t.appendCell(segs, t.grid.Cell(i, j))
		}
	}
	t.stats.Segments = len(segs)
	return segs
}

// TraceCell returns the 0, 1 or 2 segments for a single cell.
func (t *Tracer) TraceCell(c Cell) []Segment {
	return t.appendCell(nil, c)
}

func (t *Tracer) appendCell(segs []Segment, c Cell) []Segment {
	kind := Classify(c)
	t.stats.Cases[kind]++
	switch kind {
	case CaseCorner, CaseEdge:
		return t.isolate(segs, c, Above)
	case CaseInverseCorner:
		return t.isolate(segs, c, Below)
	case CaseSaddle:
		if t.saddle == SaddleCenter && t.sampler.Point(c.Center()).Class == Above {
			return t.isolate(segs, c, Below)
		}
		return t.isolate(segs, c, Above)
	}
	return segs
}

// isolate walks the corners of the given class in index order and
// interpolates toward each differing cyclic neighbor, previous first.
// Consecutive crossings pair into segments: one corner with two crossings
// (corner cases, saddle), or two corners with one crossing each (edge case).
func (t *Tracer) isolate(segs []Segment, c Cell, class Classification) []Segment {
	var ends [4]Point
	var bad [4]bool
	n := 0
	for k := 0; k < 4; k++ {
		if c[k].Class != class {
			continue
		}
		for _, nb := range [2]int{prev(k), next(k)} {
			if c[nb].Class == class {
				continue
			}
			p, err := Interpolate(t.sampler, c[k], c[nb])
			if err != nil {
				t.stats.Degenerate++
				bad[n] = true
			}
			ends[n] = p
			n++
		}
	}
	for i := 0; i+1 < n; i += 2 {
		if bad[i] || bad[i+1] {
			t.stats.Skipped++
			continue
		}
		segs = append(segs, Segment{P1: ends[i], P2: ends[i+1]})
	}
	return segs
}
