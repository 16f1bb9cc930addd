package dataset

import (
	"fmt"
	"math"

	"github.com/hupe1980/distances/number"
)

// Matrix is a row-major cardinality × dimensionality matrix backed by a single
// slice.
type Matrix[T number.Number] struct {
	Data []T
	Rows int
	Dim  int
}

// NewMatrix allocates a zeroed rows × dim matrix.
func NewMatrix[T number.Number](rows, dim int) Matrix[T] {
	return Matrix[T]{Data: make([]T, rows*dim), Rows: rows, Dim: dim}
}

// Row returns row i. The result aliases the matrix and is capped so appends
// cannot spill into the next row.
func (m Matrix[T]) Row(i int) []T {
	lo := i * m.Dim
	return m.Data[lo : lo+m.Dim : lo+m.Dim]
}

// Vectors returns all rows as slices sharing the backing array.
func (m Matrix[T]) Vectors() [][]T {
	out := make([][]T, m.Rows)
	for i := range out {
		out[i] = m.Row(i)
	}
	return out
}

// Validate checks that Data holds exactly Rows × Dim elements.
func (m Matrix[T]) Validate() error {
	if m.Rows < 0 || m.Dim < 0 || len(m.Data) != m.Rows*m.Dim {
		return fmt.Errorf("dataset: matrix %dx%d has %d elements", m.Rows, m.Dim, len(m.Data))
	}
	return nil
}

// Random returns a cardinality × dimensionality matrix of values drawn
// uniformly from [minVal, maxVal). Integer types are floored, so the upper
// bound is exclusive for them too; minVal == maxVal yields a constant matrix.
func Random[T number.Number](rng *RNG, cardinality, dimensionality int, minVal, maxVal T) Matrix[T] {
	m := NewMatrix[T](cardinality, dimensionality)
	lo, span := float64(minVal), float64(maxVal)-float64(minVal)
	integral := !isFloat[T]()

	rng.fill(len(m.Data), func(i int, u float64) {
		v := lo + u*span
		if integral {
			v = math.Floor(v)
		}
		m.Data[i] = T(v)
	})
	return m
}

// RandomSeeded is Random with a fresh RNG seeded with seed.
func RandomSeeded[T number.Number](seed int64, cardinality, dimensionality int, minVal, maxVal T) Matrix[T] {
	return Random(NewRNG(seed), cardinality, dimensionality, minVal, maxVal)
}

// Gaussian returns a matrix of standard normal samples.
func Gaussian[T number.Float](rng *RNG, cardinality, dimensionality int) Matrix[T] {
	m := NewMatrix[T](cardinality, dimensionality)
	rng.gaussian(len(m.Data), func(i int, g float64) {
		m.Data[i] = T(g)
	})
	return m
}

// UnitVectors returns L2-normalized Gaussian rows, uniform on the hypersphere.
func UnitVectors[T number.Float](rng *RNG, cardinality, dimensionality int) Matrix[T] {
	m := Gaussian[T](rng, cardinality, dimensionality)
	NormalizeRows(m)
	return m
}

// Normalize returns an L2-normalized copy of v. The second result is false,
// and the copy is all zeros, when v has zero norm.
func Normalize[T number.Float](v []T) ([]T, bool) {
	out := make([]T, len(v))
	copy(out, v)
	return out, NormalizeInPlace(out)
}

// NormalizeInPlace scales v to unit L2 norm. It returns false and leaves v
// unchanged when the norm is zero.
func NormalizeInPlace[T number.Float](v []T) bool {
	// Accumulate in float64 so float32 rows of 32k elements stay accurate.
	var sum float64
	for _, x := range v {
		sum += float64(x) * float64(x)
	}
	if sum == 0 {
		return false
	}
	inv := 1 / math.Sqrt(sum)
	for i, x := range v {
		v[i] = T(float64(x) * inv)
	}
	return true
}

// NormalizeRows normalizes every row in place and returns the number of
// zero rows left unchanged.
func NormalizeRows[T number.Float](m Matrix[T]) int {
	zero := 0
	for i := range m.Rows {
		if !NormalizeInPlace(m.Row(i)) {
			zero++
		}
	}
	return zero
}

func isFloat[T number.Number]() bool {
	half := 0.5
	return T(half) != 0
}
