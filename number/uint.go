package number

// AsI64 widens an unsigned value to int64.
//
// Values above math.MaxInt64 (only possible for 64-bit inputs) wrap, exactly as
// a Go conversion does.
func AsI64[T UInt](v T) int64 {
	return int64(v)
}

// AsU64 widens an unsigned value to uint64. The conversion is lossless.
func AsU64[T UInt](v T) uint64 {
	return uint64(v)
}
