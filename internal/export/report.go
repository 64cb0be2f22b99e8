package export

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/san-kum/isoline/internal/contour"
	"gonum.org/v1/gonum/spatial/r2"
)

// Report is the input to an HTML report: per-frame series plus the final
// contour.
type Report struct {
	Title    string
	Subtitle string
	Series   map[string][]float64
	Order    []string
	Segments []contour.Segment
	Bounds   r2.Box
}

// WriteReport renders an interactive HTML page with a line chart per series
// and a scatter of the final contour's segment endpoints, y flipped so the
// picture is upright.
func WriteReport(w io.Writer, r Report) error {
	page := components.NewPage()
	page.PageTitle = r.Title

	for _, name := range r.Order {
		data, ok := r.Series[name]
		if !ok {
			return fmt.Errorf("report: unknown series %q", name)
		}
		page.AddCharts(seriesChart(r, name, data))
	}

	if len(r.Segments) > 0 {
		page.AddCharts(contourChart(r))
	}

	return page.Render(w)
}

func seriesChart(r Report, name string, data []float64) *charts.Line {
	frames := make([]int, len(data))
	points := make([]opts.LineData, len(data))
	for i, v := range data {
		frames[i] = i + 1
		points[i] = opts.LineData{Value: v}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Theme: "dark", Width: "900px", Height: "320px"}),
		charts.WithTitleOpts(opts.Title{Title: name, Subtitle: r.Subtitle}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "frame", NameLocation: "middle", NameGap: 25}),
	)
	line.SetXAxis(frames).AddSeries(name, points)
	return line
}

func contourChart(r Report) *charts.Scatter {
	data := make([]opts.ScatterData, 0, 2*len(r.Segments))
	for _, s := range r.Segments {
		data = append(data,
			opts.ScatterData{Value: []interface{}{s.P1.X, -s.P1.Y}},
			opts.ScatterData{Value: []interface{}{s.P2.X, -s.P2.Y}},
		)
	}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Theme: "dark", Width: "900px", Height: "600px"}),
		charts.WithTitleOpts(opts.Title{Title: "final contour", Subtitle: fmt.Sprintf("segments=%d", len(r.Segments))}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Min: r.Bounds.Min.X, Max: r.Bounds.Max.X, Name: "x"}),
		charts.WithYAxisOpts(opts.YAxis{Min: -r.Bounds.Max.Y, Max: -r.Bounds.Min.Y, Name: "-y"}),
	)
	scatter.AddSeries("contour", data, charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 3}))
	return scatter
}
