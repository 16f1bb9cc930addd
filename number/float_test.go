package number

import (
	"math"
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
)

func TestFloatConstants(t *testing.T) {
	assert.Equal(t, float32(1.1920929e-07), Epsilon[float32]())
	assert.Equal(t, 2.220446049250313e-16, Epsilon[float64]())
	assert.Equal(t, float32(math.Sqrt2), Sqrt2[float32]())
	assert.Equal(t, math.Sqrt2, Sqrt2[float64]())

	// 1 + ε is the successor of 1.
	assert.Equal(t, math.Nextafter32(1, 2), 1+Epsilon[float32]())
	assert.Equal(t, math.Nextafter(1, 2), 1+Epsilon[float64]())
}

func TestRoots(t *testing.T) {
	assert.Equal(t, float32(3), Sqrt[float32](9))
	assert.Equal(t, 4.0, Sqrt(16.0))
	assert.True(t, math.IsNaN(Sqrt(-1.0)))
	assert.InDelta(t, 3.0, Cbrt(27.0), 1e-12)
	assert.InDelta(t, float32(-2), Cbrt[float32](-8), 1e-6)
	assert.InDelta(t, 2.0, Fort(16.0), 1e-12)
	assert.InDelta(t, 0.5, InvSqrt(4.0), 1e-12)
	assert.InDelta(t, float32(0.25), InvSqrt[float32](16), 1e-7)
}

func TestPowExpLog(t *testing.T) {
	assert.InDelta(t, 8.0, Powf(2.0, 3.0), 1e-12)
	assert.InDelta(t, float32(2), Powf[float32](4, 0.5), 1e-6)
	assert.InDelta(t, math.E, Exp(1.0), 1e-12)
	assert.InDelta(t, 1.0, Ln(math.E), 1e-12)
	assert.InDelta(t, float32(10), Log2[float32](1024), 1e-6)
	assert.InDelta(t, 0.8427007929497149, Erf(1.0), 1e-12)
	assert.InDelta(t, float32(-0.8427008), Erf[float32](-1), 1e-6)
}

func TestSigmoid(t *testing.T) {
	assert.Equal(t, 0.5, Sigmoid(0.0))
	assert.Equal(t, 0.0, Sigmoid(-40.5))
	assert.Equal(t, 1.0, Sigmoid(41.0))
	assert.Equal(t, float32(0), Sigmoid[float32](-1e30))
	assert.Equal(t, float32(1), Sigmoid[float32](1e30))

	// Monotonic and bounded inside the clamp.
	prev := Sigmoid(-40.0)
	for x := -39.5; x <= 40; x += 0.5 {
		got := Sigmoid(x)
		assert.GreaterOrEqual(t, got, prev)
		assert.GreaterOrEqual(t, got, 0.0)
		assert.LessOrEqual(t, got, 1.0)
		prev = got
	}
}

func TestSign(t *testing.T) {
	assert.True(t, IsPos(0.0))
	assert.False(t, IsPos(math.Copysign(0, -1)))
	assert.True(t, IsPos[float32](3))
	assert.False(t, IsPos[float32](-3))
	assert.Equal(t, float32(3), Abs[float32](-3))
}

func TestMulAdd(t *testing.T) {
	assert.Equal(t, 7.0, MulAdd(2.0, 3.0, 1.0))
	assert.Equal(t, float32(-5), MulAdd[float32](2, -3, 1))

	// x*x - 1 with x = 1+2^-30 is 2^-29 + 2^-60; only a single rounding keeps
	// the 2^-60 term.
	x := 1 + 0x1p-30
	assert.Equal(t, 0x1p-29+0x1p-60, MulAdd(x, x, -1))

	// float32 inputs go through the float64 FMA and are narrowed afterwards.
	a, b, c := float32(1+0x1p-12), float32(1-0x1p-12), float32(-1)
	assert.Equal(t, float32(math.FMA(float64(a), float64(b), float64(c))), MulAdd(a, b, c))
	assert.Equal(t, float32(-0x1p-24), MulAdd(a, b, c))
}

func TestFloat32UsesMath32(t *testing.T) {
	for _, x := range []float32{-8, -1, 0.5, 2, 27, 1e-20, 3e30} {
		assert.Equal(t, math32.Cbrt(x), Cbrt(x), "Cbrt(%g)", x)
		assert.Equal(t, math32.Erf(x), Erf(x), "Erf(%g)", x)
	}
}

func TestTrig(t *testing.T) {
	assert.InDelta(t, 5.0, Hypot(3.0, 4.0), 1e-12)
	assert.InDelta(t, float32(5), Hypot[float32](-3, 4), 1e-6)
	assert.InDelta(t, math.Pi/4, Atan2(1.0, 1.0), 1e-12)
	assert.InDelta(t, 3*math.Pi/4, Atan2(1.0, -1.0), 1e-12)
	assert.InDelta(t, -3*math.Pi/4, Atan2(-1.0, -1.0), 1e-12)
	assert.InDelta(t, 1.0, Sin(math.Pi/2), 1e-12)
	assert.InDelta(t, float32(-1), Cos[float32](math.Pi), 1e-6)
}

func TestApproxEqual(t *testing.T) {
	assert.True(t, ApproxEqual(1.0, 1.0, 0))
	assert.True(t, ApproxEqual(1.0, math.Nextafter(1, 2), 1))
	assert.True(t, ApproxEqual[float32](1000, math.Nextafter32(1000, 2000), 4))
	assert.False(t, ApproxEqual[float32](1000, 1000.5, 4))
	assert.False(t, ApproxEqual(math.NaN(), math.NaN(), 4))
	assert.True(t, ApproxEqual(1e-20, -1e-20, 0))

	assert.Equal(t, uint64(1), ULPDistance(1.0, math.Nextafter(1, 0)))
	assert.Equal(t, uint64(math.MaxUint64), ULPDistance(-1.0, 1.0))
}
