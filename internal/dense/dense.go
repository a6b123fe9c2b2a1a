// Package dense provides the contiguous column-major storage type behind
// most ndkit tensors.
//
// A Dense[T] owns one flat buffer holding its elements in column-major
// linear order (axis 1 fastest). It implements the full tensor.Tensor[T]
// contract; everything above this package works the same against any other
// conforming storage.
package dense

import (
	"fmt"

	"github.com/ndkit/ndkit/internal/shape"
	"github.com/ndkit/ndkit/internal/tensor"
)

// Dense is a contiguous N-dimensional array of element type T.
type Dense[T any] struct {
	dims shape.Shape
	data []T
}

// New allocates a zero-valued dense tensor of the given shape.
func New[T any](dims shape.Shape) (*Dense[T], error) {
	if err := dims.Validate(); err != nil {
		return nil, err
	}
	return &Dense[T]{
		dims: dims.Clone(),
		data: make([]T, dims.NumElements()),
	}, nil
}

// Of allocates a zero-valued dense tensor behind the tensor contract. It
// has the tensor.Alloc signature and is the stock allocator handed to
// operations whose result element type differs from their operand's.
// Of panics on an invalid shape, which operations rule out before
// allocating.
func Of[T any](dims shape.Shape) tensor.Tensor[T] {
	d, err := New[T](dims)
	if err != nil {
		panic(err)
	}
	return d
}

// FromSlice creates a dense tensor from data interpreted in column-major
// linear order. The slice is copied.
func FromSlice[T any](data []T, dims shape.Shape) (*Dense[T], error) {
	if err := dims.Validate(); err != nil {
		return nil, err
	}
	if dims.NumElements() != len(data) {
		return nil, fmt.Errorf("%w: shape %v requires %d elements, but got %d",
			shape.ErrShapeMismatch, dims, dims.NumElements(), len(data))
	}

	d := &Dense[T]{
		dims: dims.Clone(),
		data: make([]T, len(data)),
	}
	copy(d.data, data)
	return d, nil
}

// Full allocates a dense tensor with every element set to v.
func Full[T any](dims shape.Shape, v T) (*Dense[T], error) {
	d, err := New[T](dims)
	if err != nil {
		return nil, err
	}
	for i := range d.data {
		d.data[i] = v
	}
	return d, nil
}

// Dims returns the tensor's shape.
func (d *Dense[T]) Dims() shape.Shape {
	return d.dims
}

// Linear returns the element at 1-based linear index i.
// Panics if i is outside 1..NumElements.
func (d *Dense[T]) Linear(i int) T {
	if i < 1 || i > len(d.data) {
		panic(fmt.Sprintf("dense: linear index %d out of bounds 1..%d", i, len(d.data)))
	}
	return d.data[i-1]
}

// SetLinear stores v at 1-based linear index i.
// Panics if i is outside 1..NumElements.
func (d *Dense[T]) SetLinear(i int, v T) {
	if i < 1 || i > len(d.data) {
		panic(fmt.Sprintf("dense: linear index %d out of bounds 1..%d", i, len(d.data)))
	}
	d.data[i-1] = v
}

// Similar allocates an uninitialized dense tensor of the same element type
// with the given shape.
func (d *Dense[T]) Similar(dims shape.Shape) tensor.Tensor[T] {
	return &Dense[T]{
		dims: dims.Clone(),
		data: make([]T, dims.NumElements()),
	}
}

// Data returns the underlying buffer in column-major linear order.
// Modifications to the returned slice modify the tensor.
func (d *Dense[T]) Data() []T {
	return d.data
}

// String returns a short description like "dense[3×4]".
func (d *Dense[T]) String() string {
	return fmt.Sprintf("dense[%v]", d.dims)
}
