// Copyright 2026 The ndkit Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public API for ndkit's generic tensor
// substrate: the Tensor[T] contract, the dense column-major storage type,
// coordinate-translating sub-views, and the shape/linear-index algebra
// they all share.
//
// Coordinates and linear indexes are 1-based, and storage order is
// column-major (axis 1 fastest) throughout. See the ops package for the
// operation family built on this contract.
//
// Example:
//
//	a, _ := tensor.FromSlice([]float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
//	v, _ := ops.At(a, 2, 3) // row 2, column 3 → 6
package tensor

import (
	"github.com/ndkit/ndkit/internal/dense"
	"github.com/ndkit/ndkit/internal/shape"
	"github.com/ndkit/ndkit/internal/tensor"
	"github.com/ndkit/ndkit/internal/view"
)

// Shape represents the dimensions of a tensor. Shape{2, 3} is a 2×3
// matrix.
type Shape = shape.Shape

// Tensor is the capability set every array-like type must satisfy. See
// the internal contract documentation for the access conventions.
type Tensor[T any] = tensor.Tensor[T]

// Alloc allocates a tensor of element type T for a shape; Of is the stock
// dense-backed implementation.
type Alloc[T any] = tensor.Alloc[T]

// Cloner is implemented by element types needing deep copies.
type Cloner[T any] = tensor.Cloner[T]

// Dense is the contiguous column-major storage type.
type Dense[T any] = dense.Dense[T]

// Sub is a non-owning indexed view over a parent tensor.
type Sub[T any] = view.Sub[T]

// Constraint sets for the operator family.
type (
	Integer = tensor.Integer
	Float   = tensor.Float
	Complex = tensor.Complex
	Real    = tensor.Real
	Numeric = tensor.Numeric
)

// Library-wide error kinds; match with errors.Is.
var (
	ErrOutOfBounds   = shape.ErrOutOfBounds
	ErrShapeMismatch = shape.ErrShapeMismatch
	ErrInvalidRank   = shape.ErrInvalidRank
	ErrUnsupported   = shape.ErrUnsupported
)

// New allocates a zero-valued dense tensor of the given shape.
func New[T any](dims Shape) (*Dense[T], error) {
	return dense.New[T](dims)
}

// FromSlice creates a dense tensor from data in column-major linear order.
func FromSlice[T any](data []T, dims Shape) (*Dense[T], error) {
	return dense.FromSlice(data, dims)
}

// Full allocates a dense tensor with every element set to v.
func Full[T any](dims Shape, v T) (*Dense[T], error) {
	return dense.Full(dims, v)
}

// Of is the stock Alloc: a zero-valued dense tensor behind the contract.
func Of[T any](dims Shape) Tensor[T] {
	return dense.Of[T](dims)
}

// View constructs a sub-view of parent selecting indexes[k] along axis
// k+1, without copying data.
func View[T any](parent Tensor[T], indexes ...[]int) (*Sub[T], error) {
	return view.New(parent, indexes...)
}
