// Copyright 2026 The ndkit Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package ops provides the public operation family over ndkit tensors:
// multi-index access and fancy-indexing gather/scatter, elementwise
// arithmetic and comparisons, reductions over axis subsets, permutation,
// nonzero search, and scatter-accumulation.
//
// Operations returning a tensor of a different element type than their
// operands (comparisons) allocate dense results; everything else allocates
// from the operand's own storage family.
package ops

import (
	"github.com/ndkit/ndkit/internal/ops"
	"github.com/ndkit/ndkit/tensor"
)

// Index selects coordinates along one axis for Gather and Scatter: One(i)
// for a scalar coordinate, List{...} for a fancy index.
type (
	Index = ops.Index
	One   = ops.One
	List  = ops.List
)

// At returns the element at the given 1-based coordinates.
func At[T any](t tensor.Tensor[T], coords ...int) (T, error) {
	return ops.At(t, coords...)
}

// SetAt stores v at the given 1-based coordinates.
func SetAt[T any](t tensor.Tensor[T], v T, coords ...int) error {
	return ops.SetAt(t, v, coords...)
}

// Gather reads t at every combination of the per-axis selected
// coordinates; the result's shape is the per-axis selector lengths.
func Gather[T any](t tensor.Tensor[T], specs ...Index) (tensor.Tensor[T], error) {
	return ops.Gather(t, specs...)
}

// Scatter writes src into t at the selected positions, in gather order.
func Scatter[T any](t tensor.Tensor[T], src tensor.Tensor[T], specs ...Index) error {
	return ops.Scatter(t, src, specs...)
}

// ScatterValue broadcasts the scalar v to every selected position.
func ScatterValue[T any](t tensor.Tensor[T], v T, specs ...Index) error {
	return ops.ScatterValue(t, v, specs...)
}

// Reduce folds the associative op with the given identity over the region
// axes, collapsing each to length 1.
func Reduce[T any](a tensor.Tensor[T], op func(T, T) T, identity T, region ...int) (tensor.Tensor[T], error) {
	return ops.Reduce(a, op, identity, region...)
}

// Sum reduces with addition over the region.
func Sum[T tensor.Numeric](a tensor.Tensor[T], region ...int) (tensor.Tensor[T], error) {
	return ops.Sum(a, region...)
}

// Prod reduces with multiplication over the region.
func Prod[T tensor.Numeric](a tensor.Tensor[T], region ...int) (tensor.Tensor[T], error) {
	return ops.Prod(a, region...)
}

// Max reduces with the maximum over the region.
func Max[T tensor.Float](a tensor.Tensor[T], region ...int) (tensor.Tensor[T], error) {
	return ops.Max(a, region...)
}

// Min reduces with the minimum over the region.
func Min[T tensor.Float](a tensor.Tensor[T], region ...int) (tensor.Tensor[T], error) {
	return ops.Min(a, region...)
}

// Any reduces a boolean tensor with logical or over the region.
func Any(a tensor.Tensor[bool], region ...int) (tensor.Tensor[bool], error) {
	return ops.Any(a, region...)
}

// All reduces a boolean tensor with logical and over the region.
func All(a tensor.Tensor[bool], region ...int) (tensor.Tensor[bool], error) {
	return ops.All(a, region...)
}

// CumSum returns the running prefix sum along one axis.
func CumSum[T tensor.Numeric](a tensor.Tensor[T], axis int) (tensor.Tensor[T], error) {
	return ops.CumSum(a, axis)
}

// Permute reorders axes by perm, a bijection on 1..rank.
func Permute[T any](a tensor.Tensor[T], perm []int) (tensor.Tensor[T], error) {
	return ops.Permute(a, perm)
}

// IPermute applies the inverse of perm, undoing Permute with the same perm.
func IPermute[T any](a tensor.Tensor[T], perm []int) (tensor.Tensor[T], error) {
	return ops.IPermute(a, perm)
}

// Transpose swaps the axes of a vector (promoting it to a 1×n row) or
// matrix.
func Transpose[T any](a tensor.Tensor[T]) (tensor.Tensor[T], error) {
	return ops.Transpose(a)
}

// CTranspose is Transpose composed with complex conjugation.
func CTranspose[T tensor.Numeric](a tensor.Tensor[T]) (tensor.Tensor[T], error) {
	return ops.CTranspose(a)
}

// Find enumerates the positions of nonzero elements in increasing linear
// order: linear positions for a vector, one coordinate sequence per axis
// otherwise.
func Find[T comparable](a tensor.Tensor[T]) ([][]int, error) {
	return ops.Find(a)
}

// AccumArray builds an m×n matrix accumulating v[k] into (i[k], j[k]);
// duplicate pairs add.
func AccumArray[T tensor.Numeric](i, j []int, v []T, m, n int) (*tensor.Dense[T], error) {
	return ops.AccumArray(i, j, v, m, n)
}
