package distance

import (
	"unsafe"

	"github.com/viterin/vek"
	"github.com/viterin/vek/vek32"

	"github.com/hupe1980/distances/number"
)

// AcceleratedKernels returns kernels backed by vek's assembly routines. They
// fall back to vek's own Go code when simd.Accelerated reports false.
func AcceleratedKernels[T number.Float]() Kernels[T, T] {
	return Kernels[T, T]{
		EuclideanSq:  EuclideanSqAccelerated[T],
		Euclidean:    EuclideanAccelerated[T],
		Cosine:       CosineAccelerated[T],
		CosineNormed: CosineNormedAccelerated[T],
	}
}

// EuclideanSqAccelerated is the accelerated form of EuclideanSq.
func EuclideanSqAccelerated[T number.Float](x, y []T) (T, error) {
	d, err := EuclideanAccelerated(x, y)
	if err != nil {
		return 0, err
	}
	return d * d, nil
}

// EuclideanAccelerated is the accelerated form of Euclidean.
func EuclideanAccelerated[T number.Float](x, y []T) (T, error) {
	if err := Validate(x, y); err != nil {
		return 0, err
	}
	if is32(x) {
		return T(vek32.Distance(f32(x), f32(y))), nil
	}
	return T(vek.Distance(f64(x), f64(y))), nil
}

// CosineAccelerated is the accelerated form of Cosine.
func CosineAccelerated[T number.Float](x, y []T) (T, error) {
	if err := Validate(x, y); err != nil {
		return 0, err
	}
	var xy, nx, ny T
	if is32(x) {
		a, b := f32(x), f32(y)
		xy, nx, ny = T(vek32.Dot(a, b)), T(vek32.Norm(a)), T(vek32.Norm(b))
	} else {
		a, b := f64(x), f64(y)
		xy, nx, ny = T(vek.Dot(a, b)), T(vek.Norm(a)), T(vek.Norm(b))
	}
	return cosineFrom(xy, nx*nx, ny*ny), nil
}

// CosineNormedAccelerated is the accelerated form of CosineNormed.
func CosineNormedAccelerated[T number.Float](x, y []T) (T, error) {
	if err := Validate(x, y); err != nil {
		return 0, err
	}
	if is32(x) {
		return 1 - T(vek32.Dot(f32(x), f32(y))), nil
	}
	return 1 - T(vek.Dot(f64(x), f64(y))), nil
}

func is32[T number.Float](_ []T) bool {
	var zero T
	return unsafe.Sizeof(zero) == 4
}

// f32 and f64 reinterpret a slice of a named float type as its underlying
// type. Callers must have checked the width with is32.

func f32[T number.Float](s []T) []float32 {
	return unsafe.Slice((*float32)(unsafe.Pointer(unsafe.SliceData(s))), len(s))
}

func f64[T number.Float](s []T) []float64 {
	return unsafe.Slice((*float64)(unsafe.Pointer(unsafe.SliceData(s))), len(s))
}
