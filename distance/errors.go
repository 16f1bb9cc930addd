package distance

import (
	"errors"
	"fmt"

	"github.com/hupe1980/distances/number"
)

var (
	// ErrEmpty is returned when an input vector has no elements.
	ErrEmpty = errors.New("distance: empty vector")

	// ErrLaneWidth is returned when a lane kernel is instantiated with
	// element and accumulator arrays of different widths.
	ErrLaneWidth = errors.New("distance: lane width mismatch")

	// ErrUnsupported is returned by Provider for metric/backend/type
	// combinations that have no kernel.
	ErrUnsupported = errors.New("distance: unsupported")
)

// ErrDimensionMismatch is returned when two vectors differ in length.
type ErrDimensionMismatch struct {
	Left  int
	Right int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("distance: dimension mismatch: %d != %d", e.Left, e.Right)
}

// Validate checks the kernel precondition: equal, nonzero length.
func Validate[T number.Number](x, y []T) error {
	if len(x) != len(y) {
		return &ErrDimensionMismatch{Left: len(x), Right: len(y)}
	}
	if len(x) == 0 {
		return ErrEmpty
	}
	return nil
}
