// Package conv provides checked integer conversions.
//
// Fixture headers store lengths as fixed-width integers. These helpers
// reject values that do not survive the conversion instead of silently
// truncating them.
//
// Conversions that are provably in range (loop indices, bounded counters)
// should stay plain type casts.
package conv
