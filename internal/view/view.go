// Package view provides SubArray: a non-owning, coordinate-translating
// view over a parent tensor restricted to a per-axis index list.
package view

import (
	"fmt"

	"github.com/ndkit/ndkit/internal/shape"
	"github.com/ndkit/ndkit/internal/tensor"
)

// Sub is an indexed view over a parent tensor. It holds a reference to the
// parent (which must outlive the view) plus one 1-based index list per
// axis; its shape is the per-axis list lengths. No data is copied: every
// read and write translates view coordinates through the index lists and
// forwards to the parent's own accessors, so mutation of the parent
// through another alias is visible immediately and a view coordinate that
// maps outside the parent surfaces the parent's own bounds failure.
type Sub[T any] struct {
	parent  tensor.Tensor[T]
	indexes [][]int
	dims    shape.Shape
}

// New constructs a view of parent selecting indexes[k] along axis k+1.
// One index list is required per parent axis. The lists are copied; the
// parent's data is not. Selected coordinates are not validated here —
// they are checked by the parent at access time.
func New[T any](parent tensor.Tensor[T], indexes ...[]int) (*Sub[T], error) {
	rank := parent.Dims().Rank()
	if len(indexes) != rank {
		return nil, fmt.Errorf("%w: got %d index lists for rank %d", shape.ErrShapeMismatch, len(indexes), rank)
	}

	s := &Sub[T]{
		parent:  parent,
		indexes: make([][]int, rank),
		dims:    make(shape.Shape, rank),
	}
	for k, list := range indexes {
		s.indexes[k] = make([]int, len(list))
		copy(s.indexes[k], list)
		s.dims[k] = len(list)
	}
	return s, nil
}

// Dims returns the view's shape: the length of each axis's index list.
func (s *Sub[T]) Dims() shape.Shape {
	return s.dims
}

// Linear returns the element at 1-based view linear index i, read through
// the parent.
func (s *Sub[T]) Linear(i int) T {
	return s.parent.Linear(s.translate(i))
}

// SetLinear writes through to the parent at 1-based view linear index i.
func (s *Sub[T]) SetLinear(i int, v T) {
	s.parent.SetLinear(s.translate(i), v)
}

// Similar delegates allocation to the parent, so a materialized view lands
// in the parent's storage family.
func (s *Sub[T]) Similar(dims shape.Shape) tensor.Tensor[T] {
	return s.parent.Similar(dims)
}

// Materialize produces a dense copy of the view's contents in linear
// order, allocated from the parent's storage family.
func (s *Sub[T]) Materialize() tensor.Tensor[T] {
	return tensor.Copy[T](s)
}

// translate maps a view linear index to the parent linear index it
// addresses: view coordinates come from the view's own shape, each axis is
// mapped through its index list, and the parent coordinates are folded
// back to a linear index against the parent's shape.
func (s *Sub[T]) translate(i int) int {
	coords, err := shape.Ind2Sub(s.dims, i)
	if err != nil {
		panic(fmt.Sprintf("view: %v", err))
	}
	parentCoords := make([]int, len(coords))
	for k, c := range coords {
		parentCoords[k] = s.indexes[k][c-1]
	}
	lin, err := shape.Sub2Ind(s.parent.Dims(), parentCoords...)
	if err != nil {
		panic(fmt.Sprintf("view: %v", err))
	}
	return lin
}
