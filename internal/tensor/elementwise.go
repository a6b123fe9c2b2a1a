package tensor

import (
	"fmt"

	"github.com/ndkit/ndkit/internal/parallel"
	"github.com/ndkit/ndkit/internal/shape"
)

// par gates the optional data-parallel path for elementwise maps. Each
// linear position is computed and written exactly once whether or not the
// work is split across goroutines.
var par = parallel.DefaultConfig()

// SetParallel replaces the parallel execution config for elementwise
// operations. parallel.Sequential() restores strictly single-threaded
// behavior.
func SetParallel(cfg parallel.Config) {
	par = cfg
}

// Unary applies f at every linear position of a, producing a new tensor of
// the same shape allocated by mk.
func Unary[T, R any](a Tensor[T], mk Alloc[R], f func(T) R) Tensor[R] {
	out := mk(a.Dims().Clone())
	n := NumElements(a)
	parallel.For(n, func(i int) {
		out.SetLinear(i+1, f(a.Linear(i+1)))
	}, par)
	return out
}

// UnarySame is Unary with the result allocated from a's own storage family.
func UnarySame[T any](a Tensor[T], f func(T) T) Tensor[T] {
	return Unary(a, a.Similar, f)
}

// Binary applies f positionwise over a and b, which must have identical
// shapes. The shape check is performed on every call; a mismatch reports
// ErrShapeMismatch before any element is touched.
func Binary[T, R any](a, b Tensor[T], mk Alloc[R], f func(T, T) R) (Tensor[R], error) {
	if !SameShape(a, b) {
		return nil, fmt.Errorf("%w: %v vs %v", shape.ErrShapeMismatch, a.Dims(), b.Dims())
	}

	out := mk(a.Dims().Clone())
	n := NumElements(a)
	parallel.For(n, func(i int) {
		out.SetLinear(i+1, f(a.Linear(i+1), b.Linear(i+1)))
	}, par)
	return out, nil
}

// BinarySame is Binary with the result allocated from a's storage family.
func BinarySame[T any](a, b Tensor[T], f func(T, T) T) (Tensor[T], error) {
	return Binary(a, b, a.Similar, f)
}
