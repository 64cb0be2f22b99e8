// Package analysis looks at per-frame series recorded by a run.
//
//   - [PowerSpectrum]: magnitude spectrum of a mean-removed series
//   - [DominantPeriod]: the strongest oscillation, in frames
//   - [Summarize]: mean, spread and range
//
// # Periodicity
//
// Metaballs bouncing in a box make the segment count oscillate. The
// dominant period is a quick read on how fast the picture changes:
//
//	period := analysis.DominantPeriod(result.Segments)
package analysis
