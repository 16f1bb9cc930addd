// Package distances computes distance metrics between numeric vectors and
// verifies that its vectorized kernels agree with a generic reference.
//
// The work is split across packages:
//
//   - number: numeric constraints and generic float operations
//   - cplx: complex numbers in rectangular and polar form
//   - lanes: fixed-width lane vectors (4, 8 or 16 lanes)
//   - distance: Euclidean, squared Euclidean, cosine and normalized cosine
//     kernels with generic, lane and accelerated backends
//   - conformance: the equivalence harness comparing backends
//   - dataset: seeded random matrices and compressed fixtures
//   - blobstore: fixture storage on local disk, MinIO or S3
//
// This package holds the structured Logger and MetricsCollector shared by the
// harness and the distcheck command.
//
// # Quick Start
//
//	d, err := distance.Euclidean[float32, float32](x, y)
//
//	report, err := conformance.Check[float32](ctx, "euclidean",
//	    distance.Euclidean[float32, float32],
//	    distance.EuclideanSIMD[float32, float32],
//	)
//	if !report.Passed() {
//	    fmt.Println(report)
//	}
package distances
