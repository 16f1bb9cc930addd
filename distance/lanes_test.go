package distance

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/distances/internal/simd"
)

func TestLaneKernelsConcrete(t *testing.T) {
	x := []float32{3, 4}
	y := []float32{0, 0}

	for _, w := range []int{4, 8, 16} {
		k, err := LaneKernels[float32, float32](w)
		require.NoError(t, err)

		// Shorter than one chunk: everything goes through the remainder.
		sq, err := k.EuclideanSq(x, y)
		require.NoError(t, err)
		assert.Equal(t, float32(25), sq)

		d, err := k.Euclidean(x, y)
		require.NoError(t, err)
		assert.Equal(t, float32(5), d)
	}

	_, err := LaneKernels[float32, float32](12)
	assert.ErrorIs(t, err, ErrLaneWidth)
}

func TestLaneWidthMismatch(t *testing.T) {
	_, err := EuclideanSqLanes[float32, float64, [4]float32, [8]float64]([]float32{1}, []float32{2})
	assert.ErrorIs(t, err, ErrLaneWidth)
}

func TestWidthIndependence(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	// Odd lengths exercise the scalar remainder at every width.
	for _, dim := range []int{1, 3, 15, 16, 17, 100, 1001} {
		x := make([]uint32, dim)
		y := make([]uint32, dim)
		for i := range x {
			x[i] = uint32(rng.Intn(1000))
			y[i] = uint32(rng.Intn(1000))
		}

		ref, err := EuclideanSq[uint32, float64](x, y)
		require.NoError(t, err)

		for _, w := range []int{4, 8, 16} {
			k, err := LaneKernels[uint32, float64](w)
			require.NoError(t, err)
			got, err := k.EuclideanSq(x, y)
			require.NoError(t, err)
			// Small integers square and sum exactly in float64.
			assert.Equal(t, ref, got, "dim=%d width=%d", dim, w)
		}
	}
}

func TestLanesMatchGeneric(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	const dim = 1000

	x := make([]float32, dim)
	y := make([]float32, dim)
	for i := range x {
		x[i] = rng.Float32()*20 - 10
		y[i] = rng.Float32()*20 - 10
	}

	generic := GenericKernels[float32, float32]()
	for _, w := range []int{4, 8, 16} {
		k, err := LaneKernels[float32, float32](w)
		require.NoError(t, err)

		for _, m := range []Metric{MetricEuclideanSq, MetricEuclidean, MetricCosine} {
			ref, err := generic.Get(m)
			require.NoError(t, err)
			cand, err := k.Get(m)
			require.NoError(t, err)

			want, _ := ref(x, y)
			got, _ := cand(x, y)
			assert.InDelta(t, want, got, 1e-3*float64(abs(got))+1e-5, "metric=%v width=%d", m, w)
		}
	}
}

func TestSIMDUsesActiveWidth(t *testing.T) {
	x := []int64{1, 2, 3, 4, 5, 6, 7, 8, 9}
	y := []int64{9, 8, 7, 6, 5, 4, 3, 2, 1}

	k, err := LaneKernels[int64, float64](simd.LaneWidth())
	require.NoError(t, err)
	want, err := k.Cosine(x, y)
	require.NoError(t, err)

	got, err := CosineSIMD[int64, float64](x, y)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func abs(f float32) float32 {
	if f < 0 {
		return -f
	}
	return f
}
