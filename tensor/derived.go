// Copyright 2026 The ndkit Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"iter"

	"github.com/ndkit/ndkit/internal/parallel"
	"github.com/ndkit/ndkit/internal/shape"
	"github.com/ndkit/ndkit/internal/tensor"
)

// Sub2Ind converts a 1-based coordinate tuple to its 1-based column-major
// linear index.
func Sub2Ind(dims Shape, coords ...int) (int, error) {
	return shape.Sub2Ind(dims, coords...)
}

// Ind2Sub converts a 1-based linear index back to its coordinate tuple;
// the exact inverse of Sub2Ind.
func Ind2Sub(dims Shape, linear int) ([]int, error) {
	return shape.Ind2Sub(dims, linear)
}

// Sub2IndVec applies Sub2Ind pointwise over per-axis coordinate vectors.
func Sub2IndVec(dims Shape, coords ...[]int) ([]int, error) {
	return shape.Sub2IndVec(dims, coords...)
}

// Ind2SubVec applies Ind2Sub pointwise, one output vector per axis.
func Ind2SubVec(dims Shape, linear []int) ([][]int, error) {
	return shape.Ind2SubVec(dims, linear)
}

// NumElements returns the total number of elements of t.
func NumElements[T any](t Tensor[T]) int {
	return tensor.NumElements(t)
}

// Copy allocates a similar tensor and deep-copies every element in linear
// order.
func Copy[T any](t Tensor[T]) Tensor[T] {
	return tensor.Copy(t)
}

// Fill sets every element of t to v, in place, and returns t.
func Fill[T any](t Tensor[T], v T) Tensor[T] {
	return tensor.Fill(t, v)
}

// Reshape reinterprets t's linear contents under a new shape with the same
// element count.
func Reshape[T any](t Tensor[T], dims Shape) (Tensor[T], error) {
	return tensor.Reshape(t, dims)
}

// Values returns the elements of t in increasing linear order as a lazy,
// restartable sequence.
func Values[T any](t Tensor[T]) iter.Seq[T] {
	return tensor.Values(t)
}

// Enumerate returns (linear index, element) pairs in increasing linear
// order.
func Enumerate[T any](t Tensor[T]) iter.Seq2[int, T] {
	return tensor.Enumerate(t)
}

// ParallelConfig controls the optional data-parallel path of elementwise
// operations.
type ParallelConfig = parallel.Config

// SetParallel replaces the elementwise parallel execution config.
func SetParallel(cfg ParallelConfig) {
	tensor.SetParallel(cfg)
}

// SequentialConfig returns a config that keeps every operation on the
// caller's goroutine.
func SequentialConfig() ParallelConfig {
	return parallel.Sequential()
}
