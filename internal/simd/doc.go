// Package simd detects CPU vector capabilities and picks the lane width used
// by the lane distance kernels.
//
// # Supported Platforms
//
//   - x86-64: AVX-512 (16 lanes), AVX2 (8 lanes)
//   - ARM64: NEON, SVE2 (4 lanes)
//   - everything else: generic (4 lanes)
//
// Set DISTANCES_SIMD to force an ISA the CPU supports, or DISTANCES_LANES to
// force a lane count of 4, 8 or 16.
package simd
