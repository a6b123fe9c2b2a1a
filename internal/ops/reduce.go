package ops

import (
	"fmt"
	"math"

	"github.com/ndkit/ndkit/internal/nest"
	"github.com/ndkit/ndkit/internal/shape"
	"github.com/ndkit/ndkit/internal/tensor"
)

// reduceLoops is the specialization cache for the combined outer-iteration/
// inner-fold template, keyed by source rank.
var reduceLoops = nest.NewCache(nil)

// Reduce folds the associative operator op over the axes named in region,
// starting from identity. The result has a's shape with every region axis
// collapsed to length 1. An empty region returns a copy of a unchanged;
// the full region collapses to a single value in an all-ones shape.
//
// One specialized loop nest walks the full source box in storage order
// (axis 1 fastest); each element folds into the output cell addressed by
// its kept-axis coordinates. Per output cell the accumulation is
// sequential and in increasing reduced-coordinate order, so op only needs
// to be associative, not commutative.
func Reduce[T any](a tensor.Tensor[T], op func(T, T) T, identity T, region ...int) (tensor.Tensor[T], error) {
	dims := a.Dims()
	rank := dims.Rank()

	reduced := make([]bool, rank)
	for _, ax := range region {
		if ax < 1 || ax > rank {
			return nil, fmt.Errorf("%w: axis %d out of range for rank %d", shape.ErrOutOfBounds, ax, rank)
		}
		reduced[ax-1] = true
	}
	if len(region) == 0 || rank == 0 {
		return tensor.Copy(a), nil
	}

	outDims := dims.Clone()
	for k, r := range reduced {
		if r {
			outDims[k] = 1
		}
	}
	out := a.Similar(outDims)
	tensor.Fill(out, identity)

	// Rank-2 single-axis reductions are common enough to keep as direct
	// loops; they must agree exactly with the generic nest below.
	if rank == 2 && len(region) == 1 {
		reduce2(a, out, op, region[0], dims)
		return out, nil
	}

	loop, err := reduceLoops.For(rank)
	if err != nil {
		return nil, err
	}

	outStrides := outDims.Strides()
	cursor := 0
	loop(dims, func(coord []int) bool {
		cursor++
		oi := 1
		for k, c := range coord {
			if !reduced[k] {
				oi += (c - 1) * outStrides[k]
			}
		}
		out.SetLinear(oi, op(out.Linear(oi), a.Linear(cursor)))
		return true
	})
	return out, nil
}

// reduce2 collapses one axis of a rank-2 tensor: axis 1 folds columns down
// to a 1×n row, axis 2 folds rows across to an m×1 column.
func reduce2[T any](a, out tensor.Tensor[T], op func(T, T) T, axis int, dims shape.Shape) {
	m, n := dims[0], dims[1]
	if axis == 1 {
		for j := 1; j <= n; j++ {
			acc := out.Linear(j)
			base := (j - 1) * m
			for i := 1; i <= m; i++ {
				acc = op(acc, a.Linear(base+i))
			}
			out.SetLinear(j, acc)
		}
		return
	}
	for i := 1; i <= m; i++ {
		acc := out.Linear(i)
		for j := 1; j <= n; j++ {
			acc = op(acc, a.Linear(i+(j-1)*m))
		}
		out.SetLinear(i, acc)
	}
}

// Sum reduces with addition over the region.
func Sum[T tensor.Numeric](a tensor.Tensor[T], region ...int) (tensor.Tensor[T], error) {
	return Reduce(a, func(x, y T) T { return x + y }, 0, region...)
}

// Prod reduces with multiplication over the region.
func Prod[T tensor.Numeric](a tensor.Tensor[T], region ...int) (tensor.Tensor[T], error) {
	return Reduce(a, func(x, y T) T { return x * y }, 1, region...)
}

// Max reduces with the maximum over the region.
func Max[T tensor.Float](a tensor.Tensor[T], region ...int) (tensor.Tensor[T], error) {
	return Reduce(a, func(x, y T) T { return T(math.Max(float64(x), float64(y))) }, T(math.Inf(-1)), region...)
}

// Min reduces with the minimum over the region.
func Min[T tensor.Float](a tensor.Tensor[T], region ...int) (tensor.Tensor[T], error) {
	return Reduce(a, func(x, y T) T { return T(math.Min(float64(x), float64(y))) }, T(math.Inf(1)), region...)
}

// Any reduces a boolean tensor with logical or over the region.
func Any(a tensor.Tensor[bool], region ...int) (tensor.Tensor[bool], error) {
	return Reduce(a, func(x, y bool) bool { return x || y }, false, region...)
}

// All reduces a boolean tensor with logical and over the region.
func All(a tensor.Tensor[bool], region ...int) (tensor.Tensor[bool], error) {
	return Reduce(a, func(x, y bool) bool { return x && y }, true, region...)
}

// CumSum returns the running prefix sum along one axis: every element is
// replaced by the sum of itself and all elements at lower coordinates on
// that axis. The shape is unchanged, and an empty tensor yields an empty
// result.
func CumSum[T tensor.Numeric](a tensor.Tensor[T], axis int) (tensor.Tensor[T], error) {
	dims := a.Dims()
	rank := dims.Rank()
	if axis < 1 || axis > rank {
		return nil, fmt.Errorf("%w: axis %d out of range for rank %d", shape.ErrOutOfBounds, axis, rank)
	}

	loop, err := reduceLoops.For(rank)
	if err != nil {
		return nil, err
	}

	out := a.Similar(dims.Clone())
	step := dims.Strides()[axis-1]
	cursor := 0
	loop(dims, func(coord []int) bool {
		cursor++
		v := a.Linear(cursor)
		if coord[axis-1] > 1 {
			// The predecessor on this axis is already cumulative: storage
			// order visits it before the current element.
			v += out.Linear(cursor - step)
		}
		out.SetLinear(cursor, v)
		return true
	})
	return out, nil
}
