package simd

import (
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/klauspost/cpuid/v2"
	"github.com/viterin/vek/vek32"
)

// ISA represents a SIMD instruction set architecture.
type ISA uint8

const (
	// Generic represents the portable lane implementation with no wide registers.
	Generic ISA = iota
	// NEON represents ARM64 NEON (128-bit SIMD, ASIMD).
	NEON
	// SVE2 represents ARM64 SVE2 (scalable vectors, 128-2048 bit).
	SVE2
	// AVX2 represents x86-64 AVX2 (256-bit SIMD with FMA).
	AVX2
	// AVX512 represents x86-64 AVX-512 (512-bit SIMD).
	AVX512
)

// Environment variables read once at package init.
const (
	EnvISA   = "DISTANCES_SIMD"
	EnvLanes = "DISTANCES_LANES"
)

// String returns the string representation of an ISA.
func (i ISA) String() string {
	switch i {
	case Generic:
		return "generic"
	case NEON:
		return "neon"
	case SVE2:
		return "sve2"
	case AVX2:
		return "avx2"
	case AVX512:
		return "avx512"
	default:
		return "unknown"
	}
}

// ParseISA parses a string into an ISA value.
func ParseISA(s string) (ISA, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "generic":
		return Generic, true
	case "neon":
		return NEON, true
	case "sve2":
		return SVE2, true
	case "avx2":
		return AVX2, true
	case "avx512":
		return AVX512, true
	default:
		return Generic, false
	}
}

// Lanes returns the natural lane count for 32-bit elements on this ISA.
func (i ISA) Lanes() int {
	switch i {
	case AVX512:
		return 16
	case AVX2:
		return 8
	default:
		return 4
	}
}

// Package-level state, set once by the platform init.
var (
	activeISA   ISA
	laneWidth   int
	hasOverride bool

	hasASIMD    bool // ARM64 NEON
	hasSVE2     bool // ARM64 SVE2
	hasAVX2     bool // x86-64 AVX2 + FMA
	hasAVX512F  bool // x86-64 AVX-512 Foundation
	hasAVX512BW bool // x86-64 AVX-512 Byte/Word
)

// initCapabilities is called from the platform init after the feature flags
// are set.
func initCapabilities() {
	activeISA = selectISA(os.Getenv(EnvISA))
	laneWidth = selectLanes(os.Getenv(EnvLanes), activeISA)
}

func selectISA(override string) ISA {
	if override != "" {
		if isa, ok := ParseISA(override); ok {
			hasOverride = true
			if isISAAvailable(isa) {
				return isa
			}
			// Unsupported on this CPU: fall through to auto-detection.
		}
	}
	return selectBestISA()
}

func selectLanes(override string, isa ISA) int {
	if override != "" {
		if n, err := strconv.Atoi(strings.TrimSpace(override)); err == nil && ValidLanes(n) {
			hasOverride = true
			return n
		}
	}
	return isa.Lanes()
}

// ValidLanes reports whether n is a supported lane count.
func ValidLanes(n int) bool {
	return n == 4 || n == 8 || n == 16
}

// isISAAvailable checks if an ISA is supported on this CPU.
func isISAAvailable(isa ISA) bool {
	switch isa {
	case Generic:
		return true
	case NEON:
		return hasASIMD
	case SVE2:
		return hasSVE2
	case AVX2:
		return hasAVX2
	case AVX512:
		return hasAVX512F && hasAVX512BW
	default:
		return false
	}
}

// selectBestISA chooses the widest ISA the CPU supports.
func selectBestISA() ISA {
	switch runtime.GOARCH {
	case "arm64":
		// Apple Silicon runs NEON faster than its SVE2.
		if hasSVE2 && runtime.GOOS != "darwin" {
			return SVE2
		}
		if hasASIMD {
			return NEON
		}
	case "amd64":
		if hasAVX512F && hasAVX512BW {
			return AVX512
		}
		if hasAVX2 {
			return AVX2
		}
	}
	return Generic
}

// ActiveISA returns the currently active ISA.
func ActiveISA() ISA {
	return activeISA
}

// LaneWidth returns the lane count used by the dispatching kernels: 4, 8 or 16.
func LaneWidth() int {
	return laneWidth
}

// IsOverridden returns true if DISTANCES_SIMD or DISTANCES_LANES took effect
// or named a recognised value.
func IsOverridden() bool {
	return hasOverride
}

// HasASIMD returns true if ARM64 NEON is available.
func HasASIMD() bool {
	return hasASIMD
}

// HasSVE2 returns true if ARM64 SVE2 is available.
func HasSVE2() bool {
	return hasSVE2
}

// HasAVX2 returns true if x86-64 AVX2+FMA is available.
func HasAVX2() bool {
	return hasAVX2
}

// HasAVX512 returns true if x86-64 AVX-512 (F+BW) is available.
func HasAVX512() bool {
	return hasAVX512F && hasAVX512BW
}

// Accelerated reports whether the assembly kernels behind the Accelerated
// distance backend run natively on this CPU.
func Accelerated() bool {
	return vek32.Info().Acceleration
}

// CPUInfo describes the host for diagnostics.
type CPUInfo struct {
	Vendor      string
	Brand       string
	Cores       int
	ISA         ISA
	Lanes       int
	Accelerated bool
	Features    []string
}

// Info returns a snapshot of the detected capabilities.
func Info() CPUInfo {
	return CPUInfo{
		Vendor:      cpuid.CPU.VendorString,
		Brand:       cpuid.CPU.BrandName,
		Cores:       cpuid.CPU.PhysicalCores,
		ISA:         activeISA,
		Lanes:       laneWidth,
		Accelerated: Accelerated(),
		Features:    cpuid.CPU.FeatureSet(),
	}
}
