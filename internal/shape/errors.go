package shape

import "errors"

// Library-wide error kinds. Every fallible operation in ndkit reports one
// of these sentinels, wrapped with context via fmt.Errorf and %w, and
// propagates it to the immediate caller. Nothing in the library retries or
// swallows an error.
var (
	// ErrOutOfBounds reports a coordinate outside 1..shape[k] on some axis,
	// or a linear index outside 1..NumElements.
	ErrOutOfBounds = errors.New("index out of bounds")

	// ErrShapeMismatch reports operand shapes incompatible for an operation,
	// or an element-count mismatch in a reshape.
	ErrShapeMismatch = errors.New("shape mismatch")

	// ErrInvalidRank reports a rank <= 0 where a positive rank is required.
	ErrInvalidRank = errors.New("invalid rank")

	// ErrUnsupported reports an operation invoked on a type/rank combination
	// that has no defined implementation.
	ErrUnsupported = errors.New("unsupported operation")
)
