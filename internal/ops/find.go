package ops

import (
	"fmt"

	"github.com/ndkit/ndkit/internal/dense"
	"github.com/ndkit/ndkit/internal/nest"
	"github.com/ndkit/ndkit/internal/shape"
	"github.com/ndkit/ndkit/internal/tensor"
)

// findLoops is the specialization cache for the coordinate-collecting walk
// used by Find above rank 1.
var findLoops = nest.NewCache(nil)

// Find enumerates the positions of the nonzero elements of a — those that
// compare unequal to the zero value of T — in increasing linear order.
//
// For a rank-1 tensor the result is a single sequence of 1-based linear
// positions. For higher ranks it is one coordinate sequence per axis, all
// the same length. The nonzero count is established in a first full pass
// so every result sequence is allocated at its exact final length before
// the collecting pass.
func Find[T comparable](a tensor.Tensor[T]) ([][]int, error) {
	dims := a.Dims()
	rank := dims.Rank()
	if rank == 0 {
		return nil, fmt.Errorf("%w: find on rank-0 tensor", shape.ErrInvalidRank)
	}

	var zero T
	n := tensor.NumElements(a)
	count := 0
	for i := 1; i <= n; i++ {
		if a.Linear(i) != zero {
			count++
		}
	}

	if rank == 1 {
		pos := make([]int, count)
		k := 0
		for i := 1; i <= n; i++ {
			if a.Linear(i) != zero {
				pos[k] = i
				k++
			}
		}
		return [][]int{pos}, nil
	}

	loop, err := findLoops.For(rank)
	if err != nil {
		return nil, err
	}

	out := make([][]int, rank)
	for ax := range out {
		out[ax] = make([]int, count)
	}
	cursor := 0
	k := 0
	loop(dims, func(coord []int) bool {
		cursor++
		if a.Linear(cursor) != zero {
			for ax, c := range coord {
				out[ax][k] = c
			}
			k++
		}
		return true
	})
	return out, nil
}

// AccumArray builds an m×n matrix, zero-initialized, adding v[k] into
// position (i[k], j[k]) for every k. Duplicate (i, j) pairs accumulate by
// addition — the defining difference from scatter assignment, which would
// overwrite. A length-1 v broadcasts its single value to every pair.
func AccumArray[T tensor.Numeric](i, j []int, v []T, m, n int) (*dense.Dense[T], error) {
	if len(i) != len(j) {
		return nil, fmt.Errorf("%w: %d row indexes vs %d column indexes", shape.ErrShapeMismatch, len(i), len(j))
	}
	if len(v) != len(i) && len(v) != 1 {
		return nil, fmt.Errorf("%w: %d values for %d index pairs", shape.ErrShapeMismatch, len(v), len(i))
	}

	out, err := dense.New[T](shape.Shape{m, n})
	if err != nil {
		return nil, err
	}

	for k := range i {
		if i[k] < 1 || i[k] > m {
			return nil, fmt.Errorf("%w: row index %d (length %d)", shape.ErrOutOfBounds, i[k], m)
		}
		if j[k] < 1 || j[k] > n {
			return nil, fmt.Errorf("%w: column index %d (length %d)", shape.ErrOutOfBounds, j[k], n)
		}
		val := v[0]
		if len(v) > 1 {
			val = v[k]
		}
		lin := i[k] + (j[k]-1)*m
		out.SetLinear(lin, out.Linear(lin)+val)
	}
	return out, nil
}
