package viz

import (
	"math"

	"github.com/san-kum/isoline/internal/contour"
	"github.com/san-kum/isoline/internal/engine"
)

type Layers struct {
	Points  bool
	Sources bool
}

// DrawFrame clears c and plots f through v. Segments are always drawn.
func DrawFrame(c *Canvas, v Viewport, f engine.Frame, l Layers) {
	c.Clear()

	if l.Points {
		for _, p := range f.Points {
			if p.Class == contour.Above {
				c.Set(v.Map(p.Pos))
			}
		}
	}

	for _, s := range f.Segments {
		x0, y0 := v.Map(s.P1)
		x1, y1 := v.Map(s.P2)
		c.Line(x0, y0, x1, y1)
	}

	if l.Sources {
		scale := v.Scale()
		for _, s := range f.Sources {
			x, y := v.Map(s.Position)
			r := int(math.Round(s.Radius * scale / 4))
			c.Disc(x, y, max(r, 1))
		}
	}
}
