// Package dataset generates, normalizes and persists the random vector
// matrices used by the conformance harness and benchmarks.
//
// # Random Generation
//
//	rng := dataset.NewRNG(42)
//	m := dataset.Random[float32](rng, 100, 4096, -1, 1)
//	row := m.Row(7)
//
// # Fixtures
//
// A fixture is a matrix plus the Spec that produced it, encoded as
//
//	magic "DSTF" | version u8 | codec-name len u8 | codec name |
//	header len u32 | header | block
//
// where the header is JSON and block is the payload, optionally compressed
// with LZ4 or ZSTD. LoadOrGenerate reads a fixture from a blobstore and
// generates and stores it on a miss.
package dataset
