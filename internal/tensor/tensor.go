package tensor

import "github.com/ndkit/ndkit/internal/shape"

// Tensor is the capability set every array-like type must satisfy.
// Linear indexes are 1-based and follow the column-major convention of
// package shape; rank is fixed for the lifetime of a value.
//
// Linear and SetLinear panic on an index outside 1..NumElements, the same
// contract a Go slice gives for a bad subscript. Operations that can fail
// for reasons other than a caller bug return errors instead.
type Tensor[T any] interface {
	// Dims returns the tensor's shape. Callers must not mutate it.
	Dims() shape.Shape

	// Linear returns the element at 1-based linear index i.
	Linear(i int) T

	// SetLinear stores v at 1-based linear index i.
	SetLinear(i int, v T)

	// Similar allocates an uninitialized tensor of the same element type
	// and storage family with the given shape.
	Similar(dims shape.Shape) Tensor[T]
}

// Alloc allocates a tensor of element type T for a given shape. It is how
// operations whose result element type differs from their operand's (for
// example comparisons, which produce bool tensors) receive the
// "similar with another element type" capability; dense.Of is the stock
// implementation.
type Alloc[T any] func(dims shape.Shape) Tensor[T]

// Cloner is implemented by element types that need deep copies, such as
// tensors stored inside tensors. Copy clones elements through it when
// present; plain value types are copied by assignment.
type Cloner[T any] interface {
	Clone() T
}

// NumElements returns the total number of elements of t.
func NumElements[T any](t Tensor[T]) int {
	return t.Dims().NumElements()
}

// SameShape reports whether a and b agree on every axis length.
func SameShape[T, U any](a Tensor[T], b Tensor[U]) bool {
	return a.Dims().Equal(b.Dims())
}
