package quantize

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is matched by every error caused by caller input.
	ErrInvalidArgument = errors.New("quantize: invalid argument")

	// ErrInvalidOrderValue reports an order that is not an integer >= 1.
	ErrInvalidOrderValue = fmt.Errorf("%w: order must be an integer >= 1", ErrInvalidArgument)

	// ErrShapeMismatch reports an order or sample matrix whose shape does not
	// line up with the sample rows.
	ErrShapeMismatch = fmt.Errorf("%w: dimension mismatch", ErrInvalidArgument)
)

func invalidOrder(row int, n float64) error {
	if row < 0 {
		return fmt.Errorf("%w: %v", ErrInvalidOrderValue, n)
	}
	return fmt.Errorf("%w: row %d: %v", ErrInvalidOrderValue, row, n)
}
