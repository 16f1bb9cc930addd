package dataset

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandom(t *testing.T) {
	rng := NewRNG(4711)

	m := Random[float32](rng, 8, 32, -1, 1)

	require.NoError(t, m.Validate())
	assert.Equal(t, 8, m.Rows)
	assert.Equal(t, 32, m.Dim)
	assert.Len(t, m.Vectors(), 8)
	for _, v := range m.Data {
		assert.GreaterOrEqual(t, v, float32(-1))
		assert.Less(t, v, float32(1))
	}
}

func TestRandomIntegers(t *testing.T) {
	m := RandomSeeded[int8](1, 50, 20, -5, 5)
	seen := map[int8]bool{}
	for _, v := range m.Data {
		assert.GreaterOrEqual(t, v, int8(-5))
		assert.Less(t, v, int8(5))
		seen[v] = true
	}
	// 1000 draws over 10 values hit every value.
	assert.Len(t, seen, 10)

	c := RandomSeeded[uint32](1, 3, 3, 7, 7)
	for _, v := range c.Data {
		assert.Equal(t, uint32(7), v)
	}
}

func TestRandomSeededDeterministic(t *testing.T) {
	a := RandomSeeded[float64](42, 4, 16, 0, 10)
	b := RandomSeeded[float64](42, 4, 16, 0, 10)
	c := RandomSeeded[float64](43, 4, 16, 0, 10)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestReset(t *testing.T) {
	rng := NewRNG(4711)
	assert.Equal(t, int64(4711), rng.Seed())

	v1 := Random[float32](rng, 1, 10, 0, 1)
	rng.Reset()
	v2 := Random[float32](rng, 1, 10, 0, 1)

	assert.Equal(t, v1, v2)
}

func TestRNGConcurrent(t *testing.T) {
	rng := NewRNG(1)
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				_ = rng.Intn(10)
				_ = rng.Float64()
			}
		}()
	}
	wg.Wait()
}

func TestRowsAreCapped(t *testing.T) {
	m := NewMatrix[int32](2, 3)
	row := m.Row(0)
	assert.Equal(t, 3, cap(row))

	row = append(row, 99)
	assert.Equal(t, int32(0), m.Row(1)[0])

	m.Row(1)[2] = 5
	assert.Equal(t, int32(5), m.Data[5])
}

func TestNormalize(t *testing.T) {
	v := []float64{3, 4}
	n, ok := Normalize(v)
	require.True(t, ok)
	assert.InDelta(t, 0.6, n[0], 1e-15)
	assert.InDelta(t, 0.8, n[1], 1e-15)
	assert.Equal(t, []float64{3, 4}, v, "input untouched")

	zero := []float32{0, 0, 0}
	assert.False(t, NormalizeInPlace(zero))
	assert.Equal(t, []float32{0, 0, 0}, zero)
}

func TestUnitVectors(t *testing.T) {
	rng := NewRNG(4711)

	m := UnitVectors[float32](rng, 8, 4096)

	for _, vec := range m.Vectors() {
		var sum float64
		for _, val := range vec {
			sum += float64(val) * float64(val)
		}
		assert.InDelta(t, 1.0, sum, 1e-5)
	}
}

func TestNormalizeRows(t *testing.T) {
	m := Matrix[float64]{Data: []float64{0, 0, 1, 1}, Rows: 2, Dim: 2}
	assert.Equal(t, 1, NormalizeRows(m))
	assert.InDelta(t, math.Sqrt2/2, m.Data[2], 1e-15)
}

func TestValidate(t *testing.T) {
	bad := Matrix[float32]{Data: make([]float32, 5), Rows: 2, Dim: 3}
	assert.Error(t, bad.Validate())
}
