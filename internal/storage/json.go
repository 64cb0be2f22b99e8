package storage

import (
	"io"

	"github.com/san-kum/isoline/internal/config"
	"github.com/san-kum/isoline/internal/contour"
	"github.com/san-kum/isoline/internal/engine"
)

// ExportData is the self-contained JSON dump of a run.
type ExportData struct {
	Field          string             `json:"field"`
	Seed           int64              `json:"seed"`
	Frames         int                `json:"frames"`
	Saddle         string             `json:"saddle"`
	Segments       []float64          `json:"segments"`
	Lengths        []float64          `json:"lengths"`
	AboveFractions []float64          `json:"above_fractions"`
	Degenerate     int                `json:"degenerate"`
	Metrics        map[string]float64 `json:"metrics"`
	Final          [][4]float64       `json:"final_segments"`
}

func ExportJSON(w io.Writer, cfg *config.Config, result *engine.Result) error {
	data := ExportData{
		Field:          cfg.Field,
		Seed:           cfg.Seed,
		Frames:         result.Frames,
		Saddle:         cfg.Saddle,
		Segments:       result.Segments,
		Lengths:        result.Lengths,
		AboveFractions: result.AboveFractions,
		Degenerate:     result.Degenerate,
		Metrics:        result.Metrics,
		Final:          flatten(result.Final.Segments),
	}
	return encodeJSON(w, data)
}

func flatten(segs []contour.Segment) [][4]float64 {
	out := make([][4]float64, len(segs))
	for i, s := range segs {
		out[i] = [4]float64{s.P1.X, s.P1.Y, s.P2.X, s.P2.Y}
	}
	return out
}
