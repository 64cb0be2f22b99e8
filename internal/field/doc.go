// Package field provides the scalar fields the contour tracer samples.
//
//   - [Metaballs]: sum of radius/distance over moving [PointSource]s
//   - [Heart]: a fixed decorative implicit curve
//   - [Linear]: a plane, mostly useful as a reference field
//
// Every type implements [Field]; [New] builds one by name.
package field
