package distance

import (
	"fmt"

	"github.com/hupe1980/distances/internal/simd"
	"github.com/hupe1980/distances/lanes"
	"github.com/hupe1980/distances/number"
)

// EuclideanSqLanes is the lane form of EuclideanSq. A holds input lanes and B
// accumulator lanes; both must have the same width.
func EuclideanSqLanes[T number.Number, U number.Float, A lanes.Array[T], B lanes.Array[U]](x, y []T) (U, error) {
	if err := checkLanes[T, U, A, B](x, y); err != nil {
		return 0, err
	}
	return euclideanSqLanes[T, U, A, B](x, y), nil
}

// EuclideanLanes is the lane form of Euclidean.
func EuclideanLanes[T number.Number, U number.Float, A lanes.Array[T], B lanes.Array[U]](x, y []T) (U, error) {
	d, err := EuclideanSqLanes[T, U, A, B](x, y)
	if err != nil {
		return 0, err
	}
	return number.Sqrt(d), nil
}

// CosineLanes is the lane form of Cosine.
func CosineLanes[T number.Number, U number.Float, A lanes.Array[T], B lanes.Array[U]](x, y []T) (U, error) {
	if err := checkLanes[T, U, A, B](x, y); err != nil {
		return 0, err
	}
	xy, xx, yy := dotNormsLanes[T, U, A, B](x, y)
	return cosineFrom(xy, xx, yy), nil
}

// CosineNormedLanes is the lane form of CosineNormed.
func CosineNormedLanes[T number.Number, U number.Float, A lanes.Array[T], B lanes.Array[U]](x, y []T) (U, error) {
	if err := checkLanes[T, U, A, B](x, y); err != nil {
		return 0, err
	}
	return 1 - dotLanes[T, U, A, B](x, y), nil
}

// EuclideanSqSIMD runs EuclideanSqLanes at the width chosen by simd.LaneWidth.
func EuclideanSqSIMD[T number.Number, U number.Float](x, y []T) (U, error) {
	return mustLaneKernels[T, U](simd.LaneWidth()).EuclideanSq(x, y)
}

// EuclideanSIMD runs EuclideanLanes at the width chosen by simd.LaneWidth.
func EuclideanSIMD[T number.Number, U number.Float](x, y []T) (U, error) {
	return mustLaneKernels[T, U](simd.LaneWidth()).Euclidean(x, y)
}

// CosineSIMD runs CosineLanes at the width chosen by simd.LaneWidth.
func CosineSIMD[T number.Number, U number.Float](x, y []T) (U, error) {
	return mustLaneKernels[T, U](simd.LaneWidth()).Cosine(x, y)
}

// CosineNormedSIMD runs CosineNormedLanes at the width chosen by simd.LaneWidth.
func CosineNormedSIMD[T number.Number, U number.Float](x, y []T) (U, error) {
	return mustLaneKernels[T, U](simd.LaneWidth()).CosineNormed(x, y)
}

// LaneKernels returns the lane kernels for a width of 4, 8 or 16.
func LaneKernels[T number.Number, U number.Float](width int) (Kernels[T, U], error) {
	switch width {
	case 4:
		return laneKernels[T, U, [4]T, [4]U](), nil
	case 8:
		return laneKernels[T, U, [8]T, [8]U](), nil
	case 16:
		return laneKernels[T, U, [16]T, [16]U](), nil
	default:
		return Kernels[T, U]{}, fmt.Errorf("%w: %d lanes", ErrLaneWidth, width)
	}
}

// mustLaneKernels is for widths already validated by internal/simd.
func mustLaneKernels[T number.Number, U number.Float](width int) Kernels[T, U] {
	k, err := LaneKernels[T, U](width)
	if err != nil {
		panic(err)
	}
	return k
}

func laneKernels[T number.Number, U number.Float, A lanes.Array[T], B lanes.Array[U]]() Kernels[T, U] {
	return Kernels[T, U]{
		EuclideanSq:  EuclideanSqLanes[T, U, A, B],
		Euclidean:    EuclideanLanes[T, U, A, B],
		Cosine:       CosineLanes[T, U, A, B],
		CosineNormed: CosineNormedLanes[T, U, A, B],
	}
}

func checkLanes[T number.Number, U number.Float, A lanes.Array[T], B lanes.Array[U]](x, y []T) error {
	var (
		in  lanes.Vec[T, A]
		acc lanes.Vec[U, B]
	)
	if in.Lanes() != acc.Lanes() {
		return fmt.Errorf("%w: %d != %d", ErrLaneWidth, in.Lanes(), acc.Lanes())
	}
	return Validate(x, y)
}

// widen loads N elements of s and converts them to the accumulator type.
func widen[T number.Number, U number.Float, A lanes.Array[T], B lanes.Array[U]](s []T) lanes.Vec[U, B] {
	return lanes.Convert[T, U, A, B](lanes.Load[T, A](s))
}

// Each lane kernel accumulates len(x)/N full chunks with fused multiply-add,
// reduces the accumulator left to right, and adds the scalar remainder.

func euclideanSqLanes[T number.Number, U number.Float, A lanes.Array[T], B lanes.Array[U]](x, y []T) U {
	var acc lanes.Vec[U, B]
	n := acc.Lanes()
	full := len(x) / n * n
	for i := 0; i < full; i += n {
		d := widen[T, U, A, B](x[i:]).Sub(widen[T, U, A, B](y[i:]))
		acc = lanes.MulAdd(d, d, acc)
	}
	return acc.HorizontalSum() + euclideanSq[T, U](x[full:], y[full:])
}

func dotLanes[T number.Number, U number.Float, A lanes.Array[T], B lanes.Array[U]](x, y []T) U {
	var acc lanes.Vec[U, B]
	n := acc.Lanes()
	full := len(x) / n * n
	for i := 0; i < full; i += n {
		acc = lanes.MulAdd(widen[T, U, A, B](x[i:]), widen[T, U, A, B](y[i:]), acc)
	}
	return acc.HorizontalSum() + dot[T, U](x[full:], y[full:])
}

func dotNormsLanes[T number.Number, U number.Float, A lanes.Array[T], B lanes.Array[U]](x, y []T) (U, U, U) {
	var xy, xx, yy lanes.Vec[U, B]
	n := xy.Lanes()
	full := len(x) / n * n
	for i := 0; i < full; i += n {
		a := widen[T, U, A, B](x[i:])
		b := widen[T, U, A, B](y[i:])
		xy = lanes.MulAdd(a, b, xy)
		xx = lanes.MulAdd(a, a, xx)
		yy = lanes.MulAdd(b, b, yy)
	}
	rxy, rxx, ryy := dotNorms[T, U](x[full:], y[full:])
	return xy.HorizontalSum() + rxy, xx.HorizontalSum() + rxx, yy.HorizontalSum() + ryy
}
