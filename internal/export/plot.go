package export

import (
	"fmt"
	"image/color"
	"sort"

	"github.com/san-kum/isoline/internal/contour"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var palette = []color.Color{
	color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 255},
	color.RGBA{R: 0xff, G: 0x7f, B: 0x0e, A: 255},
	color.RGBA{R: 0x2c, G: 0xa0, B: 0x2c, A: 255},
	color.RGBA{R: 0xd6, G: 0x27, B: 0x28, A: 255},
}

// SeriesPlot writes a line per named series against frame number. The
// output format follows the file extension.
func SeriesPlot(path, title string, series map[string][]float64) error {
	if len(series) == 0 {
		return fmt.Errorf("plot %s: no series", path)
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "frame"

	names := make([]string, 0, len(series))
	for name := range series {
		names = append(names, name)
	}
	sort.Strings(names)

	for i, name := range names {
		data := series[name]
		pts := make(plotter.XYs, len(data))
		for j, v := range data {
			pts[j] = plotter.XY{X: float64(j + 1), Y: v}
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("plot %s: %w", name, err)
		}
		line.Width = vg.Points(1)
		line.Color = palette[i%len(palette)]
		p.Add(line)
		p.Legend.Add(name, line)
	}

	return p.Save(10*vg.Inch, 4*vg.Inch, path)
}

// ContourPlot draws segments in view coordinates. The y axis is inverted
// so the picture matches the terminal and SVG output.
func ContourPlot(path, title string, segs []contour.Segment, bounds r2.Box) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Min, p.X.Max = bounds.Min.X, bounds.Max.X
	p.Y.Min, p.Y.Max = -bounds.Max.Y, -bounds.Min.Y
	p.Y.Label.Text = "-y"

	for _, s := range segs {
		line, err := plotter.NewLine(plotter.XYs{
			{X: s.P1.X, Y: -s.P1.Y},
			{X: s.P2.X, Y: -s.P2.Y},
		})
		if err != nil {
			return fmt.Errorf("plot segment %v: %w", s, err)
		}
		line.Width = vg.Points(1)
		line.Color = palette[0]
		p.Add(line)
	}

	size := bounds.Size()
	w := 8 * vg.Inch
	h := w
	if size.X > 0 {
		h = vg.Length(float64(w) * size.Y / size.X)
	}
	return p.Save(w, h, path)
}
