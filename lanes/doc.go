// Package lanes provides fixed-width SIMD lane vectors.
//
// A Vec is a homogeneous tuple of N scalars, where N is fixed at compile time by
// the backing array type ([4]T, [8]T or [16]T). All arithmetic is lane-wise:
// lane i of a result depends only on lane i of the operands. The only
// cross-lane operation is HorizontalSum, which adds lanes strictly left to
// right so that floating point reductions are reproducible for a given width.
//
// The width is a performance knob; the distance kernels pick one to match the
// active instruction set and handle the tail with scalar code.
//
//	a := lanes.MustFromSlice[float32, [8]float32](x)
//	b := lanes.MustFromSlice[float32, [8]float32](y)
//	d := a.Sub(b)
//	sum := d.Mul(d).HorizontalSum()
package lanes
