package lanes

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hupe1980/distances/number"
)

// ErrShortSlice is returned when a slice has fewer elements than the vector has
// lanes.
var ErrShortSlice = errors.New("lanes: slice shorter than lane count")

// Array is the set of supported lane widths for element type T.
type Array[T number.Number] interface {
	[4]T | [8]T | [16]T
}

// Vec is an N-lane vector of T, with N given by the array type A.
//
// The zero value is the all-zero vector.
type Vec[T number.Number, A Array[T]] struct {
	v A
}

// Zero returns the all-zero vector.
func Zero[T number.Number, A Array[T]]() Vec[T, A] {
	return Vec[T, A]{}
}

// Splat returns a vector with every lane set to x.
func Splat[T number.Number, A Array[T]](x T) Vec[T, A] {
	var out Vec[T, A]
	for i := 0; i < len(out.v); i++ {
		out.v[i] = x
	}
	return out
}

// FromSlice loads the first N elements of s. Elements past N are ignored.
func FromSlice[T number.Number, A Array[T]](s []T) (Vec[T, A], error) {
	var out Vec[T, A]
	if len(s) < len(out.v) {
		return out, fmt.Errorf("%w: need %d, got %d", ErrShortSlice, len(out.v), len(s))
	}
	return Load[T, A](s), nil
}

// MustFromSlice is like FromSlice but panics if s is too short.
func MustFromSlice[T number.Number, A Array[T]](s []T) Vec[T, A] {
	out, err := FromSlice[T, A](s)
	if err != nil {
		panic(err)
	}
	return out
}

// Load is the unchecked counterpart of FromSlice, for loops that already
// guarantee len(s) >= N. A short slice still panics via the bounds check.
func Load[T number.Number, A Array[T]](s []T) Vec[T, A] {
	var out Vec[T, A]
	n := len(out.v)
	s = s[:n]
	for i := 0; i < n; i++ {
		out.v[i] = s[i]
	}
	return out
}

// Lanes returns N.
func (a Vec[T, A]) Lanes() int { return len(a.v) }

// Get returns lane i.
func (a Vec[T, A]) Get(i int) T { return a.v[i] }

// Array returns a copy of the lanes.
func (a Vec[T, A]) Array() A { return a.v }

// Store writes the lanes to dst, which must have at least N elements.
func (a Vec[T, A]) Store(dst []T) {
	dst = dst[:len(a.v)]
	for i := 0; i < len(a.v); i++ {
		dst[i] = a.v[i]
	}
}

// Add returns a + b.
func (a Vec[T, A]) Add(b Vec[T, A]) Vec[T, A] {
	a.AddAssign(b)
	return a
}

// Sub returns a - b.
func (a Vec[T, A]) Sub(b Vec[T, A]) Vec[T, A] {
	a.SubAssign(b)
	return a
}

// Mul returns a * b.
func (a Vec[T, A]) Mul(b Vec[T, A]) Vec[T, A] {
	a.MulAssign(b)
	return a
}

// Div returns a / b. Integer division by a zero lane panics like scalar Go
// division.
func (a Vec[T, A]) Div(b Vec[T, A]) Vec[T, A] {
	a.DivAssign(b)
	return a
}

// AddAssign sets a = a + b.
func (a *Vec[T, A]) AddAssign(b Vec[T, A]) {
	for i := 0; i < len(a.v); i++ {
		a.v[i] += b.v[i]
	}
}

// SubAssign sets a = a - b.
func (a *Vec[T, A]) SubAssign(b Vec[T, A]) {
	for i := 0; i < len(a.v); i++ {
		a.v[i] -= b.v[i]
	}
}

// MulAssign sets a = a * b.
func (a *Vec[T, A]) MulAssign(b Vec[T, A]) {
	for i := 0; i < len(a.v); i++ {
		a.v[i] *= b.v[i]
	}
}

// DivAssign sets a = a / b.
func (a *Vec[T, A]) DivAssign(b Vec[T, A]) {
	for i := 0; i < len(a.v); i++ {
		a.v[i] /= b.v[i]
	}
}

// AbsDiff returns |a - b| lane-wise, with number.AbsDiff semantics.
func (a Vec[T, A]) AbsDiff(b Vec[T, A]) Vec[T, A] {
	for i := 0; i < len(a.v); i++ {
		a.v[i] = number.AbsDiff(a.v[i], b.v[i])
	}
	return a
}

// Min returns the lane-wise minimum.
func (a Vec[T, A]) Min(b Vec[T, A]) Vec[T, A] {
	for i := 0; i < len(a.v); i++ {
		a.v[i] = min(a.v[i], b.v[i])
	}
	return a
}

// Max returns the lane-wise maximum.
func (a Vec[T, A]) Max(b Vec[T, A]) Vec[T, A] {
	for i := 0; i < len(a.v); i++ {
		a.v[i] = max(a.v[i], b.v[i])
	}
	return a
}

// HorizontalSum returns the sum of all lanes, accumulated left to right:
// ((v0 + v1) + v2) + ... + v(N-1).
func (a Vec[T, A]) HorizontalSum() T {
	var s T
	for i := 0; i < len(a.v); i++ {
		s += a.v[i]
	}
	return s
}

func (a Vec[T, A]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := 0; i < len(a.v); i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, a.v[i])
	}
	sb.WriteByte(']')
	return sb.String()
}

// MulAdd returns a*b + c lane-wise with a single rounding per lane.
func MulAdd[T number.Float, A Array[T]](a, b, c Vec[T, A]) Vec[T, A] {
	for i := 0; i < len(a.v); i++ {
		a.v[i] = number.MulAdd(a.v[i], b.v[i], c.v[i])
	}
	return a
}

// Convert converts every lane of a from T to U. A and B must have the same
// width; a mismatch panics.
func Convert[T, U number.Number, A Array[T], B Array[U]](a Vec[T, A]) Vec[U, B] {
	var out Vec[U, B]
	if len(out.v) != len(a.v) {
		panic(fmt.Sprintf("lanes: width mismatch %d != %d", len(a.v), len(out.v)))
	}
	for i := 0; i < len(a.v); i++ {
		out.v[i] = U(a.v[i])
	}
	return out
}
