// Package conformance checks that two implementations of a distance metric
// agree.
//
// For each configured dimensionality, Check generates two seeded matrices,
// evaluates every (row of x, row of y) pair with a reference and a candidate
// kernel, and collects each pair whose difference exceeds a tolerance scaled
// by the candidate's magnitude. It never stops at the first mismatch: the
// Report lists every failing pair so a regression can be diagnosed from one
// run.
//
// Suite runs Check for every metric and candidate backend of one element
// type, always using the generic kernels as the reference.
//
// Configuration comes from functional options or from the environment:
//
//	DISTANCES_CONFORMANCE_DIMENSIONS=1000,2000,4000
//	DISTANCES_CONFORMANCE_CARDINALITY=100
//	DISTANCES_CONFORMANCE_FIXTURE_STORE=file:///tmp/fixtures
//
// Generated matrices can be cached as compressed fixtures in any
// blobstore.BlobStore (memory, local disk, MinIO or S3).
package conformance
