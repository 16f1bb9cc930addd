package lanes

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromSlice(t *testing.T) {
	t.Run("Exact", func(t *testing.T) {
		v, err := FromSlice[uint32, [4]uint32]([]uint32{1, 2, 3, 4})
		require.NoError(t, err)
		assert.Equal(t, [4]uint32{1, 2, 3, 4}, v.Array())
		assert.Equal(t, 4, v.Lanes())
	})

	t.Run("ExcessIgnored", func(t *testing.T) {
		s := make([]float32, 20)
		for i := range s {
			s[i] = float32(i)
		}
		v, err := FromSlice[float32, [16]float32](s)
		require.NoError(t, err)
		assert.Equal(t, float32(15), v.Get(15))
		assert.Equal(t, 16, v.Lanes())
	})

	t.Run("Short", func(t *testing.T) {
		_, err := FromSlice[float64, [8]float64]([]float64{1, 2, 3})
		assert.ErrorIs(t, err, ErrShortSlice)
		assert.Panics(t, func() { MustFromSlice[float64, [8]float64]([]float64{1}) })
		assert.Panics(t, func() { Load[float64, [8]float64]([]float64{1}) })
	})
}

func TestArithmetic(t *testing.T) {
	a := MustFromSlice[int32, [4]int32]([]int32{8, -6, 10, 0})
	b := MustFromSlice[int32, [4]int32]([]int32{2, 3, -5, 7})

	assert.Equal(t, [4]int32{10, -3, 5, 7}, a.Add(b).Array())
	assert.Equal(t, [4]int32{6, -9, 15, -7}, a.Sub(b).Array())
	assert.Equal(t, [4]int32{16, -18, -50, 0}, a.Mul(b).Array())
	assert.Equal(t, [4]int32{4, -2, -2, 0}, a.Div(b).Array())
	assert.Equal(t, [4]int32{6, 9, 15, 7}, a.AbsDiff(b).Array())
	assert.Equal(t, [4]int32{2, -6, -5, 0}, a.Min(b).Array())
	assert.Equal(t, [4]int32{8, 3, 10, 7}, a.Max(b).Array())

	// Operands are values; the originals are untouched.
	assert.Equal(t, [4]int32{8, -6, 10, 0}, a.Array())
}

func TestInPlace(t *testing.T) {
	a := Splat[float64, [8]float64](2)
	b := Splat[float64, [8]float64](4)

	a.AddAssign(b)
	assert.Equal(t, Splat[float64, [8]float64](6), a)
	a.MulAssign(b)
	assert.Equal(t, Splat[float64, [8]float64](24), a)
	a.SubAssign(b)
	assert.Equal(t, Splat[float64, [8]float64](20), a)
	a.DivAssign(b)
	assert.Equal(t, Splat[float64, [8]float64](5), a)
}

func TestUnsignedAbsDiff(t *testing.T) {
	a := MustFromSlice[uint32, [8]uint32]([]uint32{0, 1, 2, 3, 4, 5, 6, 7})
	b := MustFromSlice[uint32, [8]uint32]([]uint32{7, 6, 5, 4, 3, 2, 1, 0})
	assert.Equal(t, [8]uint32{7, 5, 3, 1, 1, 3, 5, 7}, a.AbsDiff(b).Array())

	c := Splat[int8, [16]int8](127)
	d := Splat[int8, [16]int8](-128)
	assert.Equal(t, Splat[int8, [16]int8](127), c.AbsDiff(d))
}

func TestHorizontalSumOrder(t *testing.T) {
	v := MustFromSlice[float32, [4]float32]([]float32{1e8, 1, -1e8, 1})
	// Left to right: (1e8 + 1) rounds to 1e8, cancels, then + 1.
	assert.Equal(t, float32(1), v.HorizontalSum())

	u := MustFromSlice[uint32, [16]uint32]([]uint32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16})
	assert.Equal(t, uint32(136), u.HorizontalSum())
	assert.Equal(t, float64(0), Zero[float64, [16]float64]().HorizontalSum())
}

func TestLaneIndependence(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	checkLaneIndependence[[4]float32](t, rng)
	checkLaneIndependence[[8]float32](t, rng)
	checkLaneIndependence[[16]float32](t, rng)
}

func checkLaneIndependence[A Array[float32]](t *testing.T, rng *rand.Rand) {
	t.Helper()
	var v Vec[float32, A]
	n := v.Lanes()
	xs := make([]float32, n)
	ys := make([]float32, n)
	zs := make([]float32, n)
	for range 50 {
		for i := range xs {
			xs[i] = rng.Float32()*20 - 10
			ys[i] = rng.Float32()*20 - 10
			zs[i] = rng.Float32()*20 - 10
		}
		a := MustFromSlice[float32, A](xs)
		b := MustFromSlice[float32, A](ys)
		c := MustFromSlice[float32, A](zs)

		add, sub, mul, div := a.Add(b), a.Sub(b), a.Mul(b), a.Div(b)
		fma := MulAdd(a, b, c)
		for i := range n {
			assert.Equal(t, xs[i]+ys[i], add.Get(i))
			assert.Equal(t, xs[i]-ys[i], sub.Get(i))
			assert.Equal(t, xs[i]*ys[i], mul.Get(i))
			assert.Equal(t, xs[i]/ys[i], div.Get(i))
			assert.InDelta(t, xs[i]*ys[i]+zs[i], fma.Get(i), 1e-4)
		}
	}
}

func TestStoreAndConvert(t *testing.T) {
	v := MustFromSlice[uint8, [16]uint8]([]uint8{255, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15})
	f := Convert[uint8, float64, [16]uint8, [16]float64](v)
	assert.Equal(t, 255.0, f.Get(0))
	assert.Equal(t, 15.0, f.Get(15))

	dst := make([]float64, 17)
	f.Store(dst)
	assert.Equal(t, 255.0, dst[0])
	assert.Equal(t, 0.0, dst[16])

	assert.Panics(t, func() {
		Convert[float32, float64, [4]float32, [8]float64](Zero[float32, [4]float32]())
	})
}

func TestString(t *testing.T) {
	v := MustFromSlice[int32, [4]int32]([]int32{1, -2, 3, 4})
	assert.Equal(t, "[1 -2 3 4]", v.String())
}
