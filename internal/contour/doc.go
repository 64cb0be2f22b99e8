// Package contour extracts iso-level line segments from a scalar field
// sampled on a regular grid (marching squares).
//
// The pieces, leaves first:
//
//   - [Sampler]: evaluates a field at scaled coordinates and classifies values
//   - [Grid]: the fixed lattice of [GridPoint]s, reclassified on every pass
//   - [Classify]: maps a [Cell] to one of the five drawing cases
//   - [Interpolate]: finds the threshold crossing on a cell edge
//   - [Tracer]: owns a grid and sweeps every cell into [Segment]s
//
// # Example
//
//	g, _ := contour.NewGrid(64, 40, 16, contour.Point{})
//	tr := contour.NewTracer(g, contour.Sampler{Field: balls, ScaleX: 1, ScaleY: 1, Threshold: 1})
//	tr.Resample()
//	segs := tr.Trace()
//
// # Saddle Cells
//
// When two diagonal corners are above the threshold the contour is
// ambiguous. The default [SaddleIndependent] mode isolates each above corner
// with its own segment and never consults the cell center.
package contour
