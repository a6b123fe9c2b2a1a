// Package shape provides the dimension and linear-index algebra that every
// other package in ndkit is built on.
//
// The storage convention is column-major: axis 1 varies fastest in linear
// order, so axis k has stride equal to the product of the lengths of axes
// 1..k-1. Coordinates and linear indexes are 1-based throughout the library;
// the valid domain is 1 <= coord[k] <= shape[k] per axis and
// 1 <= linear <= NumElements. Both conventions are load-bearing: every
// stride and offset formula in ndkit derives from them.
package shape

import "fmt"

// Shape represents the dimensions of a tensor.
// Shape{3, 4} is a 3×4 matrix; len(s) is the rank.
type Shape []int

// Rank returns the number of axes.
func (s Shape) Rank() int {
	return len(s)
}

// NumElements returns the total number of elements for the shape.
// The empty (rank-0) shape has one element, and any zero-length axis
// makes the count zero.
func (s Shape) NumElements() int {
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks that every axis length is non-negative. A zero-length
// axis is a valid degenerate case: the tensor is empty, every walk over it
// is a no-op, and no coordinate on that axis is in bounds.
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim < 0 {
			return fmt.Errorf("%w: axis %d has length %d", ErrShapeMismatch, i+1, dim)
		}
	}
	return nil
}

// Equal checks if two shapes are equal axis by axis.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// Strides calculates column-major strides for the shape:
// strides[0] = 1, strides[k] = strides[k-1] * s[k-1].
func (s Shape) Strides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}

	strides[0] = 1
	for i := 1; i < len(s); i++ {
		strides[i] = strides[i-1] * s[i-1]
	}
	return strides
}

// String returns a human-readable form like "3×4×5".
func (s Shape) String() string {
	if len(s) == 0 {
		return "scalar"
	}
	out := ""
	for i, dim := range s {
		if i > 0 {
			out += "×"
		}
		out += fmt.Sprintf("%d", dim)
	}
	return out
}
