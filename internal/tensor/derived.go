package tensor

import (
	"fmt"
	"iter"

	"github.com/ndkit/ndkit/internal/shape"
)

// Copy allocates a similar tensor and copies every element across in linear
// order. Elements implementing Cloner are deep-copied, so tensors of
// tensors do not end up sharing inner storage.
func Copy[T any](t Tensor[T]) Tensor[T] {
	out := t.Similar(t.Dims().Clone())
	n := NumElements(t)
	for i := 1; i <= n; i++ {
		v := t.Linear(i)
		if c, ok := any(v).(Cloner[T]); ok {
			v = c.Clone()
		}
		out.SetLinear(i, v)
	}
	return out
}

// Fill sets every element of t to v, in place, and returns t.
func Fill[T any](t Tensor[T], v T) Tensor[T] {
	n := NumElements(t)
	for i := 1; i <= n; i++ {
		t.SetLinear(i, v)
	}
	return t
}

// Reshape allocates a tensor of the new shape and copies elements across in
// linear order: contents are reinterpreted under the new shape, never
// rearranged. The element counts must match.
func Reshape[T any](t Tensor[T], dims shape.Shape) (Tensor[T], error) {
	if dims.NumElements() != NumElements(t) {
		return nil, fmt.Errorf("%w: cannot reshape %v (%d elements) to %v (%d elements)",
			shape.ErrShapeMismatch, t.Dims(), NumElements(t), dims, dims.NumElements())
	}
	if err := dims.Validate(); err != nil {
		return nil, err
	}

	out := t.Similar(dims.Clone())
	n := NumElements(t)
	for i := 1; i <= n; i++ {
		out.SetLinear(i, t.Linear(i))
	}
	return out, nil
}

// Values returns the elements of t in increasing linear order as a lazy,
// restartable sequence.
func Values[T any](t Tensor[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		n := NumElements(t)
		for i := 1; i <= n; i++ {
			if !yield(t.Linear(i)) {
				return
			}
		}
	}
}

// Enumerate returns (linear index, element) pairs in increasing linear
// order, starting at index 1.
func Enumerate[T any](t Tensor[T]) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		n := NumElements(t)
		for i := 1; i <= n; i++ {
			if !yield(i, t.Linear(i)) {
				return
			}
		}
	}
}
