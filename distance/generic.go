package distance

import (
	"iter"
	"math"

	"github.com/hupe1980/distances/number"
)

// EuclideanSq returns Σ (x_i − y_i)², accumulated in U.
func EuclideanSq[T number.Number, U number.Float](x, y []T) (U, error) {
	if err := Validate(x, y); err != nil {
		return 0, err
	}
	return euclideanSq[T, U](x, y), nil
}

// Euclidean returns the L2 distance between x and y.
func Euclidean[T number.Number, U number.Float](x, y []T) (U, error) {
	d, err := EuclideanSq[T, U](x, y)
	if err != nil {
		return 0, err
	}
	return number.Sqrt(d), nil
}

// Cosine returns 1 − x·y / (‖x‖‖y‖), in [0, 2].
//
// A zero-norm operand yields NaN.
func Cosine[T number.Number, U number.Float](x, y []T) (U, error) {
	if err := Validate(x, y); err != nil {
		return 0, err
	}
	dot, xx, yy := dotNorms[T, U](x, y)
	return cosineFrom(dot, xx, yy), nil
}

// CosineNormed returns 1 − x·y. Both inputs must already have unit L2 norm;
// this is not checked and other inputs give meaningless results.
func CosineNormed[T number.Number, U number.Float](x, y []T) (U, error) {
	if err := Validate(x, y); err != nil {
		return 0, err
	}
	return 1 - dot[T, U](x, y), nil
}

// AbsDiffs yields |x_i − y_i| for each index of the shorter input.
func AbsDiffs[T number.Number](x, y []T) iter.Seq[T] {
	return func(yield func(T) bool) {
		n := min(len(x), len(y))
		for i := 0; i < n; i++ {
			if !yield(number.AbsDiff(x[i], y[i])) {
				return
			}
		}
	}
}

func euclideanSq[T number.Number, U number.Float](x, y []T) U {
	var sum U
	for i := range x {
		d := U(x[i]) - U(y[i])
		sum += d * d
	}
	return sum
}

func dot[T number.Number, U number.Float](x, y []T) U {
	var sum U
	for i := range x {
		sum += U(x[i]) * U(y[i])
	}
	return sum
}

func dotNorms[T number.Number, U number.Float](x, y []T) (xy, xx, yy U) {
	for i := range x {
		a, b := U(x[i]), U(y[i])
		xy += a * b
		xx += a * a
		yy += b * b
	}
	return xy, xx, yy
}

// cosineFrom turns a dot product and squared norms into a cosine distance.
// The similarity is clamped to [-1, 1]; NaN passes through.
func cosineFrom[U number.Float](xy, xx, yy U) U {
	if xx == 0 || yy == 0 {
		return U(math.NaN())
	}
	sim := xy / (number.Sqrt(xx) * number.Sqrt(yy))
	return 1 - clampSimilarity(sim)
}

func clampSimilarity[U number.Float](sim U) U {
	switch {
	case sim > 1:
		return 1
	case sim < -1:
		return -1
	default:
		return sim
	}
}
