package number

import (
	"math"
	"unsafe"

	"github.com/chewxy/math32"
)

// Machine epsilons: the gap between 1 and the next representable value.
const (
	Epsilon32 = 0x1p-23
	Epsilon64 = 0x1p-52
)

// sigmoidClamp bounds the sigmoid argument; exp(40) is far past the point where
// 1/(1+e^-x) rounds to 1 in either width.
const sigmoidClamp = 40

func is32[T Float]() bool {
	var zero T
	return unsafe.Sizeof(zero) == 4
}

// Epsilon returns the machine epsilon of T.
func Epsilon[T Float]() T {
	if is32[T]() {
		return T(Epsilon32)
	}
	return T(Epsilon64)
}

// Sqrt2 returns √2 rounded to T.
func Sqrt2[T Float]() T {
	return T(math.Sqrt2)
}

// Sqrt returns the square root of x. Negative inputs yield NaN.
func Sqrt[T Float](x T) T {
	if is32[T]() {
		return T(math32.Sqrt(float32(x)))
	}
	return T(math.Sqrt(float64(x)))
}

// Cbrt returns the cube root of x.
func Cbrt[T Float](x T) T {
	if is32[T]() {
		return T(math32.Cbrt(float32(x)))
	}
	return T(math.Cbrt(float64(x)))
}

// Fort returns the fourth root of x.
func Fort[T Float](x T) T {
	return Sqrt(Sqrt(x))
}

// InvSqrt returns 1/√x.
func InvSqrt[T Float](x T) T {
	return 1 / Sqrt(x)
}

// Powf returns x raised to exp.
func Powf[T Float](x, exp T) T {
	if is32[T]() {
		return T(math32.Pow(float32(x), float32(exp)))
	}
	return T(math.Pow(float64(x), float64(exp)))
}

// Exp returns e**x.
func Exp[T Float](x T) T {
	if is32[T]() {
		return T(math32.Exp(float32(x)))
	}
	return T(math.Exp(float64(x)))
}

// Sigmoid returns 1/(1+e^-x).
//
// Arguments below -40 return exactly 0 and above 40 exactly 1, which keeps the
// exponential from overflowing.
func Sigmoid[T Float](x T) T {
	switch {
	case x < -sigmoidClamp:
		return 0
	case x > sigmoidClamp:
		return 1
	default:
		return 1 / (1 + Exp(-x))
	}
}

// Ln returns the natural logarithm of x.
func Ln[T Float](x T) T {
	if is32[T]() {
		return T(math32.Log(float32(x)))
	}
	return T(math.Log(float64(x)))
}

// Log2 returns the base 2 logarithm of x.
func Log2[T Float](x T) T {
	if is32[T]() {
		return T(math32.Log2(float32(x)))
	}
	return T(math.Log2(float64(x)))
}

// Erf returns the error function of x.
func Erf[T Float](x T) T {
	if is32[T]() {
		return T(math32.Erf(float32(x)))
	}
	return T(math.Erf(float64(x)))
}

// IsPos reports whether the sign bit of x is clear. It is true for +0 and for
// NaNs with a clear sign bit.
func IsPos[T Float](x T) bool {
	return !math.Signbit(float64(x))
}

// Abs returns |x|.
func Abs[T Float](x T) T {
	if is32[T]() {
		return T(math32.Abs(float32(x)))
	}
	return T(math.Abs(float64(x)))
}

// MulAdd returns a*b + c fused in float64. Only float64 results are rounded
// once; float32 results round again on the conversion back.
func MulAdd[T Float](a, b, c T) T {
	return T(math.FMA(float64(a), float64(b), float64(c)))
}

// Hypot returns √(p² + q²) without undue overflow or underflow.
func Hypot[T Float](p, q T) T {
	if is32[T]() {
		return T(math32.Hypot(float32(p), float32(q)))
	}
	return T(math.Hypot(float64(p), float64(q)))
}

// Atan2 returns the arc tangent of y/x, using the signs of both to pick the
// quadrant.
func Atan2[T Float](y, x T) T {
	if is32[T]() {
		return T(math32.Atan2(float32(y), float32(x)))
	}
	return T(math.Atan2(float64(y), float64(x)))
}

// Sin returns the sine of the radian argument x.
func Sin[T Float](x T) T {
	if is32[T]() {
		return T(math32.Sin(float32(x)))
	}
	return T(math.Sin(float64(x)))
}

// Cos returns the cosine of the radian argument x.
func Cos[T Float](x T) T {
	if is32[T]() {
		return T(math32.Cos(float32(x)))
	}
	return T(math.Cos(float64(x)))
}

// IsNaN reports whether x is NaN.
func IsNaN[T Float](x T) bool {
	return math.IsNaN(float64(x))
}

// ApproxEqual reports whether a and b are within one epsilon of each other or
// at most ulps representable values apart.
func ApproxEqual[T Float](a, b T, ulps uint64) bool {
	if a == b {
		return true
	}
	if Abs(a-b) <= Epsilon[T]() {
		return true
	}
	return ULPDistance(a, b) <= ulps
}

// ULPDistance returns the number of representable values between a and b.
// Operands of opposite sign, or NaN operands, return math.MaxUint64.
func ULPDistance[T Float](a, b T) uint64 {
	if IsNaN(a) || IsNaN(b) || IsPos(a) != IsPos(b) {
		return math.MaxUint64
	}
	var ia, ib uint64
	if is32[T]() {
		ia = uint64(math.Float32bits(float32(a)))
		ib = uint64(math.Float32bits(float32(b)))
	} else {
		ia = math.Float64bits(float64(a))
		ib = math.Float64bits(float64(b))
	}
	if ia > ib {
		return ia - ib
	}
	return ib - ia
}
