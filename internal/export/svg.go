package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/isoline/internal/engine"
	"github.com/san-kum/isoline/internal/viz"
	"gonum.org/v1/gonum/spatial/r2"
)

type SVGStyle struct {
	Background  string
	Stroke      string
	StrokeWidth float64
	Sources     string
}

var DefaultSVGStyle = SVGStyle{
	Background:  "#0a0a0a",
	Stroke:      "#00ffff",
	StrokeWidth: 1.5,
}

// FrameSVG draws the frame's segments in view coordinates. Sources are
// drawn as hollow circles of their radius when style.Sources is set.
func FrameSVG(f engine.Frame, bounds r2.Box, style SVGStyle) string {
	size := bounds.Size()

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%g" height="%g" viewBox="%g %g %g %g">
<rect x="%g" y="%g" width="%g" height="%g" fill="%s"/>
<g stroke="%s" stroke-width="%g" stroke-linecap="round">
`, size.X, size.Y, bounds.Min.X, bounds.Min.Y, size.X, size.Y,
		bounds.Min.X, bounds.Min.Y, size.X, size.Y, style.Background,
		style.Stroke, style.StrokeWidth)

	for _, s := range f.Segments {
		fmt.Fprintf(&sb, "<line x1=\"%.2f\" y1=\"%.2f\" x2=\"%.2f\" y2=\"%.2f\"/>\n", s.P1.X, s.P1.Y, s.P2.X, s.P2.Y)
	}
	sb.WriteString("</g>\n")

	if style.Sources != "" && len(f.Sources) > 0 {
		fmt.Fprintf(&sb, "<g fill=\"none\" stroke=\"%s\" stroke-dasharray=\"4 4\">\n", style.Sources)
		for _, src := range f.Sources {
			fmt.Fprintf(&sb, "<circle cx=\"%.2f\" cy=\"%.2f\" r=\"%.2f\"/>\n", src.Position.X, src.Position.Y, src.Radius)
		}
		sb.WriteString("</g>\n")
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}

// CanvasSVG renders every lit braille dot as a circle, scale pixels apart.
func CanvasSVG(c *viz.Canvas, scale float64) string {
	if c == nil {
		return ""
	}
	w := float64(c.DotsWide()) * scale
	h := float64(c.DotsHigh()) * scale

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<g fill="#00ff00">
`, w, h, w, h)

	r := scale * 0.4
	for y := 0; y < c.DotsHigh(); y++ {
		for x := 0; x < c.DotsWide(); x++ {
			if c.IsSet(x, y) {
				fmt.Fprintf(&sb, "<circle cx=\"%.1f\" cy=\"%.1f\" r=\"%.1f\"/>\n",
					float64(x)*scale+scale/2, float64(y)*scale+scale/2, r)
			}
		}
	}

	sb.WriteString("</g>\n</svg>\n")
	return sb.String()
}
