// Package number defines the numeric capability hierarchy used by the distance
// kernels.
//
// The hierarchy is expressed as type constraints plus generic operations:
//
//   - Number: every fixed-width integer and IEEE float type
//   - Int: integers (ordered, comparable, usable as map keys)
//   - IInt: signed integers
//   - UInt: unsigned integers, with lossless widening to int64/uint64
//   - Float: float32 and float64, with roots, logarithms, sigmoid, erf and
//     per-type constants
//
// Derived operations (InvSqrt, Fort) are written once in terms of the primitive
// ones, so a kernel only needs the constraint to get the whole capability set.
//
// float32 math is routed through github.com/chewxy/math32 to avoid a round trip
// through float64 where the library has a native implementation.
package number
