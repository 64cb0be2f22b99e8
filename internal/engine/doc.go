// Package engine runs the per-frame contouring cycle.
//
// One frame is: advance the sources, resample the grid, trace every cell.
// [Engine] owns all mutable state (sources and grid) and is driven by a
// host loop, either [Engine.Step] from a renderer or [Engine.Run] for a
// fixed number of frames:
//
//	eng, _ := engine.New(config.DefaultConfig())
//	eng.AddMetric(metrics.NewSegmentCount())
//	result, _ := eng.Run(ctx, 300)
//
// # Thread Safety
//
// Engine instances are NOT thread-safe. [Ensemble] runs several seeds in
// parallel, one engine per goroutine with nothing shared between them.
package engine
