package cplx

import (
	"fmt"

	"github.com/hupe1980/distances/number"
)

// Rect is a complex number in rectangular (Cartesian) form.
type Rect[T number.Float] struct {
	re, im T
}

// NewRect returns re + im·i.
func NewRect[T number.Float](re, im T) Rect[T] {
	return Rect[T]{re: re, im: im}
}

// RectFromPolar converts p to rectangular form.
func RectFromPolar[T number.Float](p Polar[T]) Rect[T] {
	return Rect[T]{
		re: p.r * number.Cos(p.theta),
		im: p.r * number.Sin(p.theta),
	}
}

// Re returns the real part.
func (z Rect[T]) Re() T { return z.re }

// Im returns the imaginary part.
func (z Rect[T]) Im() T { return z.im }

// Conj returns the complex conjugate.
func (z Rect[T]) Conj() Rect[T] {
	return Rect[T]{re: z.re, im: -z.im}
}

// Norm returns |z|.
func (z Rect[T]) Norm() T {
	return number.Hypot(z.re, z.im)
}

// Add returns z + w.
func (z Rect[T]) Add(w Rect[T]) Rect[T] {
	return Rect[T]{re: z.re + w.re, im: z.im + w.im}
}

// Mul returns z·w. Each component is computed with one fused multiply-add:
// re = a·c − b·d, im = a·d + b·c.
func (z Rect[T]) Mul(w Rect[T]) Rect[T] {
	a, b, c, d := z.re, z.im, w.re, w.im
	return Rect[T]{
		re: number.MulAdd(a, c, -(b * d)),
		im: number.MulAdd(a, d, b*c),
	}
}

// Scale returns s·z.
func (z Rect[T]) Scale(s T) Rect[T] {
	return Rect[T]{re: s * z.re, im: s * z.im}
}

// Polar converts z to polar form.
func (z Rect[T]) Polar() Polar[T] {
	return PolarFromRect(z)
}

// ApproxEqual reports whether both components of z and w are within ulps
// representable values (or one epsilon) of each other.
func (z Rect[T]) ApproxEqual(w Rect[T], ulps uint64) bool {
	return number.ApproxEqual(z.re, w.re, ulps) && number.ApproxEqual(z.im, w.im, ulps)
}

func (z Rect[T]) String() string {
	return fmt.Sprintf("(%g%+gi)", z.re, z.im)
}
