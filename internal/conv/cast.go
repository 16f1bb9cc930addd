package conv

import (
	"errors"
	"fmt"

	"github.com/hupe1980/distances/number"
)

// ErrOverflow is matched by every error returned from this package.
var ErrOverflow = errors.New("integer overflow")

// To converts v to type R, failing when v is not representable in R.
func To[R, V number.Int](v V) (R, error) {
	r := R(v)
	if V(r) != v || (r < 0) != (v < 0) {
		var zero R
		return zero, fmt.Errorf("%w: %d cannot be converted to %T", ErrOverflow, v, zero)
	}
	return r, nil
}

// Uint32 converts a length or count to uint32.
func Uint32[V number.Int](v V) (uint32, error) {
	return To[uint32](v)
}

// Int converts a stored length or count to int.
func Int[V number.Int](v V) (int, error) {
	return To[int](v)
}
