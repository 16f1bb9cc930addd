package number

import (
	"cmp"
	"unsafe"
)

// Number is the base capability set: addition, subtraction, multiplication,
// division, identities and absolute difference.
type Number interface {
	Int | Float
}

// Int is the capability set of all integer types.
type Int interface {
	IInt | UInt
}

// IInt is the capability set of signed integer types.
type IInt interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// UInt is the capability set of unsigned integer types.
type UInt interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Float is the capability set of IEEE floating point types.
type Float interface {
	~float32 | ~float64
}

// Compare orders two integers; Int types are totally ordered and, being
// comparable, can key a map.
func Compare[T Int](a, b T) int {
	return cmp.Compare(a, b)
}

// Zero returns the additive identity.
func Zero[T Number]() T { return 0 }

// One returns the multiplicative identity.
func One[T Number]() T { return 1 }

// AbsDiff returns |a - b| without overflowing T.
//
// Unsigned operands are ordered before subtracting, so the result never wraps
// below zero. For signed integers the true difference can exceed the type's
// range (e.g. int8(127) and int8(-128)); the result saturates at MaxOf[T]().
func AbsDiff[T Number](a, b T) T {
	if a < b {
		a, b = b, a
	}
	d := a - b
	if d < 0 {
		// Only reachable for signed integers whose difference wrapped.
		return maxOf[T]()
	}
	return d
}

// Sum adds xs left to right.
func Sum[T Number](xs []T) T {
	var s T
	for _, x := range xs {
		s += x
	}
	return s
}

// MaxOf returns the largest value representable by T.
func MaxOf[T Int]() T {
	return maxOf[T]()
}

// MinOf returns the smallest value representable by T.
func MinOf[T Int]() T {
	if !signed[T]() {
		return 0
	}
	return -maxOf[T]() - 1
}

// IsSigned reports whether T is a signed integer type.
func IsSigned[T Int]() bool {
	return signed[T]()
}

func signed[T Number]() bool {
	var zero T
	return zero-1 < 0
}

func maxOf[T Number]() T {
	var zero T
	bits := unsafe.Sizeof(zero) * 8
	if signed[T]() {
		return T(uint64(1)<<(bits-1) - 1)
	}
	return T(^uint64(0) >> (64 - bits))
}
