// Package distance computes distances between equal-length numeric vectors.
//
// Every metric comes in three backends that agree within a magnitude-scaled
// tolerance:
//   - Generic: element by element, any number.Number input.
//   - Lanes: full chunks through lanes.Vec plus a scalar remainder. The *SIMD
//     entry points pick the lane width from internal/simd.
//   - Accelerated: float32/float64 only, backed by assembly kernels.
//
// # Supported Metrics
//
//   - MetricEuclideanSq: Σ (x_i − y_i)²
//   - MetricEuclidean: √ of the above
//   - MetricCosine: 1 − x·y / (‖x‖‖y‖)
//   - MetricCosineNormed: 1 − x·y, for inputs that already have unit norm
//
// Integer inputs are widened to the result type before subtraction, so no
// integer overflow can occur. Empty or length-mismatched inputs return
// ErrEmpty or *ErrDimensionMismatch in every build.
//
// # Usage
//
//	d, err := distance.Euclidean[uint32, float64](x, y)
//	fn, err := distance.Provider[float32, float32](distance.MetricCosine, distance.BackendLanes)
package distance
