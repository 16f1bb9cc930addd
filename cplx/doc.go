// Package cplx provides complex numbers in two interconvertible forms.
//
// Rect holds a value as (real, imaginary) and Polar as (magnitude, angle).
// Both expose the same operations; converting between them round-trips up to
// floating point tolerance everywhere except the origin, where the angle is
// undefined and reported as 0.
//
//	z := cplx.NewRect(1.0, 1.0)
//	p := z.Polar()          // (√2, π/4)
//	w := p.Mul(p).Rect()    // (0, 2)
//
// Rect→Polar uses the two-argument arc tangent, so every quadrant maps to the
// correct angle in (-π, π].
package cplx
