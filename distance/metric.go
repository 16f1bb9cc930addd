package distance

import (
	"fmt"
	"strings"

	"github.com/hupe1980/distances/number"
)

// Metric identifies a distance function.
type Metric int

const (
	MetricEuclideanSq Metric = iota
	MetricEuclidean
	MetricCosine
	MetricCosineNormed
)

// Metrics lists every supported metric.
var Metrics = []Metric{MetricEuclideanSq, MetricEuclidean, MetricCosine, MetricCosineNormed}

func (m Metric) String() string {
	switch m {
	case MetricEuclideanSq:
		return "euclidean_sq"
	case MetricEuclidean:
		return "euclidean"
	case MetricCosine:
		return "cosine"
	case MetricCosineNormed:
		return "cosine_normed"
	default:
		return fmt.Sprintf("Unknown(%d)", int(m))
	}
}

// ParseMetric parses the String form of a metric. Case and surrounding
// whitespace are ignored; "l2" and "l2sq" are accepted as aliases.
func ParseMetric(s string) (Metric, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "euclidean_sq", "l2sq":
		return MetricEuclideanSq, nil
	case "euclidean", "l2":
		return MetricEuclidean, nil
	case "cosine":
		return MetricCosine, nil
	case "cosine_normed":
		return MetricCosineNormed, nil
	default:
		return 0, fmt.Errorf("%w metric %q", ErrUnsupported, s)
	}
}

// Normalized reports whether the metric expects unit-norm inputs.
func (m Metric) Normalized() bool {
	return m == MetricCosineNormed
}

// Backend identifies a kernel implementation.
type Backend int

const (
	BackendGeneric Backend = iota
	BackendLanes
	BackendAccelerated
)

// Backends lists every backend.
var Backends = []Backend{BackendGeneric, BackendLanes, BackendAccelerated}

func (b Backend) String() string {
	switch b {
	case BackendGeneric:
		return "generic"
	case BackendLanes:
		return "lanes"
	case BackendAccelerated:
		return "accelerated"
	default:
		return fmt.Sprintf("Unknown(%d)", int(b))
	}
}

// ParseBackend parses the String form of a backend.
func ParseBackend(s string) (Backend, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "generic":
		return BackendGeneric, nil
	case "lanes", "simd":
		return BackendLanes, nil
	case "accelerated":
		return BackendAccelerated, nil
	default:
		return 0, fmt.Errorf("%w backend %q", ErrUnsupported, s)
	}
}

// Func is a distance function over T with results in U.
type Func[T number.Number, U number.Float] func(x, y []T) (U, error)

// Kernels bundles one backend's implementation of every metric.
type Kernels[T number.Number, U number.Float] struct {
	EuclideanSq  Func[T, U]
	Euclidean    Func[T, U]
	Cosine       Func[T, U]
	CosineNormed Func[T, U]
}

// Get returns the kernel for m.
func (k Kernels[T, U]) Get(m Metric) (Func[T, U], error) {
	var fn Func[T, U]
	switch m {
	case MetricEuclideanSq:
		fn = k.EuclideanSq
	case MetricEuclidean:
		fn = k.Euclidean
	case MetricCosine:
		fn = k.Cosine
	case MetricCosineNormed:
		fn = k.CosineNormed
	}
	if fn == nil {
		return nil, fmt.Errorf("%w metric: %v", ErrUnsupported, m)
	}
	return fn, nil
}

// GenericKernels returns the element-by-element kernels.
func GenericKernels[T number.Number, U number.Float]() Kernels[T, U] {
	return Kernels[T, U]{
		EuclideanSq:  EuclideanSq[T, U],
		Euclidean:    Euclidean[T, U],
		Cosine:       Cosine[T, U],
		CosineNormed: CosineNormed[T, U],
	}
}

// SIMDKernels returns the lane kernels dispatched on simd.LaneWidth.
func SIMDKernels[T number.Number, U number.Float]() Kernels[T, U] {
	return Kernels[T, U]{
		EuclideanSq:  EuclideanSqSIMD[T, U],
		Euclidean:    EuclideanSIMD[T, U],
		Cosine:       CosineSIMD[T, U],
		CosineNormed: CosineNormedSIMD[T, U],
	}
}

// BackendKernels returns all kernels of backend b for T and U. The
// accelerated backend exists only for float32 and float64 with U == T.
func BackendKernels[T number.Number, U number.Float](b Backend) (Kernels[T, U], error) {
	switch b {
	case BackendGeneric:
		return GenericKernels[T, U](), nil
	case BackendLanes:
		return SIMDKernels[T, U](), nil
	case BackendAccelerated:
		if k, ok := any(AcceleratedKernels[float32]()).(Kernels[T, U]); ok {
			return k, nil
		}
		if k, ok := any(AcceleratedKernels[float64]()).(Kernels[T, U]); ok {
			return k, nil
		}
		var (
			t T
			u U
		)
		return Kernels[T, U]{}, fmt.Errorf("%w backend %v for %T -> %T", ErrUnsupported, b, t, u)
	default:
		return Kernels[T, U]{}, fmt.Errorf("%w backend: %v", ErrUnsupported, b)
	}
}

// Provider returns the distance function for the given metric and backend.
func Provider[T number.Number, U number.Float](m Metric, b Backend) (Func[T, U], error) {
	k, err := BackendKernels[T, U](b)
	if err != nil {
		return nil, err
	}
	return k.Get(m)
}
