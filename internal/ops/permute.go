package ops

import (
	"fmt"

	"github.com/ndkit/ndkit/internal/nest"
	"github.com/ndkit/ndkit/internal/shape"
	"github.com/ndkit/ndkit/internal/tensor"
)

// permuteLoops is the specialization cache for the output-shape walk
// template used by Permute.
var permuteLoops = nest.NewCache(nil)

// Permute reorders the axes of a by perm, a bijection on 1..rank:
// the result P has P[i1,...,ir] = a[i_perm[1],...,i_perm[r]] and
// Dims(P)[k] = Dims(a)[perm[k]].
//
// One loop nest over the output shape accumulates the source linear offset
// as a weighted sum of output coordinates times the permuted source
// strides. The 1-based correction offset (1 - Σ strides) is computed once
// so the total lands on a valid 1-based linear index.
func Permute[T any](a tensor.Tensor[T], perm []int) (tensor.Tensor[T], error) {
	dims := a.Dims()
	rank := dims.Rank()
	if err := checkPerm(perm, rank); err != nil {
		return nil, err
	}
	if rank == 0 {
		return tensor.Copy(a), nil
	}

	loop, err := permuteLoops.For(rank)
	if err != nil {
		return nil, err
	}

	strides := dims.Strides()
	outDims := make(shape.Shape, rank)
	pstrides := make([]int, rank)
	offset := 1
	for k, p := range perm {
		outDims[k] = dims[p-1]
		pstrides[k] = strides[p-1]
		offset -= pstrides[k]
	}

	out := a.Similar(outDims)
	cursor := 0
	loop(outDims, func(coord []int) bool {
		cursor++
		src := offset
		for k, c := range coord {
			src += c * pstrides[k]
		}
		out.SetLinear(cursor, a.Linear(src))
		return true
	})
	return out, nil
}

// IPermute is the inverse of Permute with the same perm: it applies the
// inverted permutation, so IPermute(Permute(a, perm), perm) recovers a.
func IPermute[T any](a tensor.Tensor[T], perm []int) (tensor.Tensor[T], error) {
	if err := checkPerm(perm, a.Dims().Rank()); err != nil {
		return nil, err
	}
	iperm := make([]int, len(perm))
	for k, p := range perm {
		iperm[p-1] = k + 1
	}
	return Permute(a, iperm)
}

func checkPerm(perm []int, rank int) error {
	if len(perm) != rank {
		return fmt.Errorf("%w: permutation of length %d for rank %d", shape.ErrShapeMismatch, len(perm), rank)
	}
	seen := make([]bool, rank)
	for _, p := range perm {
		if p < 1 || p > rank {
			return fmt.Errorf("%w: permutation entry %d out of range 1..%d", shape.ErrShapeMismatch, p, rank)
		}
		if seen[p-1] {
			return fmt.Errorf("%w: permutation entry %d repeated", shape.ErrShapeMismatch, p)
		}
		seen[p-1] = true
	}
	return nil
}

// Transpose is the direct index-swap special case for low ranks: a vector
// becomes a 1×n row, a matrix swaps its two axes. Higher ranks have no
// transpose; use Permute.
func Transpose[T any](a tensor.Tensor[T]) (tensor.Tensor[T], error) {
	return transposeWith(a, func(v T) T { return v })
}

// CTranspose is Transpose composed with elementwise complex conjugation.
// Real element types conjugate to themselves.
func CTranspose[T tensor.Numeric](a tensor.Tensor[T]) (tensor.Tensor[T], error) {
	return transposeWith(a, tensor.ConjValue[T])
}

func transposeWith[T any](a tensor.Tensor[T], f func(T) T) (tensor.Tensor[T], error) {
	dims := a.Dims()
	switch dims.Rank() {
	case 1:
		n := dims[0]
		out := a.Similar(shape.Shape{1, n})
		for i := 1; i <= n; i++ {
			out.SetLinear(i, f(a.Linear(i)))
		}
		return out, nil
	case 2:
		m, n := dims[0], dims[1]
		out := a.Similar(shape.Shape{n, m})
		for j := 1; j <= n; j++ {
			for i := 1; i <= m; i++ {
				out.SetLinear(j+(i-1)*n, f(a.Linear(i+(j-1)*m)))
			}
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: transpose of rank-%d tensor (use Permute)", shape.ErrUnsupported, dims.Rank())
	}
}
