package cplx

import (
	"fmt"

	"github.com/hupe1980/distances/number"
)

// Polar is a complex number in polar form: magnitude r and angle theta in
// radians.
//
// The magnitude is not forced to be non-negative; Scale by a negative factor
// yields a negative magnitude, which still denotes the same point as
// (|r|, theta+π).
type Polar[T number.Float] struct {
	r, theta T
}

// NewPolar returns r·e^(i·theta).
func NewPolar[T number.Float](r, theta T) Polar[T] {
	return Polar[T]{r: r, theta: theta}
}

// PolarFromRect converts z to polar form.
//
// The angle is atan2(im, re), in (-π, π]. At the origin it is 0.
func PolarFromRect[T number.Float](z Rect[T]) Polar[T] {
	return Polar[T]{
		r:     z.Norm(),
		theta: number.Atan2(z.im, z.re),
	}
}

// Magnitude returns r.
func (p Polar[T]) Magnitude() T { return p.r }

// Angle returns theta.
func (p Polar[T]) Angle() T { return p.theta }

// Re returns the real part, r·cos(theta).
func (p Polar[T]) Re() T { return p.r * number.Cos(p.theta) }

// Im returns the imaginary part, r·sin(theta).
func (p Polar[T]) Im() T { return p.r * number.Sin(p.theta) }

// Conj returns the complex conjugate, which negates the angle.
func (p Polar[T]) Conj() Polar[T] {
	return Polar[T]{r: p.r, theta: -p.theta}
}

// Norm returns |p|, the magnitude.
func (p Polar[T]) Norm() T { return p.r }

// Add returns p + q. There is no closed form in polar coordinates, so both
// operands go through rectangular form.
func (p Polar[T]) Add(q Polar[T]) Polar[T] {
	return PolarFromRect(p.Rect().Add(q.Rect()))
}

// Mul returns p·q: magnitudes multiply and angles add.
func (p Polar[T]) Mul(q Polar[T]) Polar[T] {
	return Polar[T]{r: p.r * q.r, theta: p.theta + q.theta}
}

// Scale returns s·p.
func (p Polar[T]) Scale(s T) Polar[T] {
	return Polar[T]{r: s * p.r, theta: p.theta}
}

// Rect converts p to rectangular form.
func (p Polar[T]) Rect() Rect[T] {
	return RectFromPolar(p)
}

// ApproxEqual compares magnitude and angle component-wise. It does not
// normalize angles, so (1, 0) and (1, 2π) are not approximately equal.
func (p Polar[T]) ApproxEqual(q Polar[T], ulps uint64) bool {
	return number.ApproxEqual(p.r, q.r, ulps) && number.ApproxEqual(p.theta, q.theta, ulps)
}

func (p Polar[T]) String() string {
	return fmt.Sprintf("(%g∠%g)", p.r, p.theta)
}
