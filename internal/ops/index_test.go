package ops

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ndkit/ndkit/internal/dense"
	"github.com/ndkit/ndkit/internal/shape"
	"github.com/ndkit/ndkit/internal/tensor"
)

func fromSlice[T any](t *testing.T, data []T, dims shape.Shape) tensor.Tensor[T] {
	t.Helper()
	d, err := dense.FromSlice(data, dims)
	require.NoError(t, err)
	return d
}

func counting[T tensor.Real](t *testing.T, dims shape.Shape) tensor.Tensor[T] {
	t.Helper()
	data := make([]T, dims.NumElements())
	for i := range data {
		data[i] = T(i + 1)
	}
	return fromSlice(t, data, dims)
}

func linearData[T any](tt tensor.Tensor[T]) []T {
	out := make([]T, 0, tensor.NumElements(tt))
	for v := range tensor.Values(tt) {
		out = append(out, v)
	}
	return out
}

// At must agree with the linear layout for every rank, fast path or
// generic.
func TestAt(t *testing.T) {
	shapes := []shape.Shape{{6}, {2, 3}, {2, 2, 2}, {2, 1, 2, 2}, {2, 1, 2, 1, 2}}

	for _, s := range shapes {
		t.Run(s.String(), func(t *testing.T) {
			a := counting[int](t, s)
			n := s.NumElements()
			for i := 1; i <= n; i++ {
				coords, err := shape.Ind2Sub(s, i)
				require.NoError(t, err)

				v, err := At(a, coords...)
				require.NoError(t, err)
				assert.Equal(t, i, v)
			}
		})
	}
}

func TestAtFloat(t *testing.T) {
	a := counting[float64](t, shape.Shape{2, 2})

	v, err := At(a, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, 4.0, v)
}

func TestAtErrors(t *testing.T) {
	a := counting[int](t, shape.Shape{2, 3})

	_, err := At(a, 1)
	assert.ErrorIs(t, err, shape.ErrShapeMismatch)

	_, err = At(a, 3, 1)
	assert.ErrorIs(t, err, shape.ErrOutOfBounds)

	_, err = At(a, 1, 0)
	assert.ErrorIs(t, err, shape.ErrOutOfBounds)
}

func TestSetAt(t *testing.T) {
	a := counting[int](t, shape.Shape{3, 3})

	require.NoError(t, SetAt(a, 99, 2, 3))
	v, err := At(a, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, 99, v)

	assert.ErrorIs(t, SetAt(a, 1, 4, 1), shape.ErrOutOfBounds)
}

func TestGather(t *testing.T) {
	// 3×3 with values 1..9 column-major: A[i,j] = 3*(j-1)+i.
	a := counting[int](t, shape.Shape{3, 3})

	g, err := Gather(a, List{1, 3}, List{2, 3})
	require.NoError(t, err)
	assert.Equal(t, shape.Shape{2, 2}, g.Dims())
	// Axis 1 fastest: (1,2) (3,2) (1,3) (3,3).
	assert.Equal(t, []int{4, 6, 7, 9}, linearData(g))
}

func TestGatherScalarSpecifier(t *testing.T) {
	a := counting[int](t, shape.Shape{3, 3})

	g, err := Gather(a, One(2), List{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, shape.Shape{1, 3}, g.Dims())
	assert.Equal(t, []int{2, 5, 8}, linearData(g))
}

func TestGatherRepeatedCoordinates(t *testing.T) {
	a := counting[int](t, shape.Shape{3})

	g, err := Gather(a, List{2, 2, 2})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 2, 2}, linearData(g))
}

func TestGatherErrors(t *testing.T) {
	a := counting[int](t, shape.Shape{3, 3})

	_, err := Gather(a, List{1})
	assert.ErrorIs(t, err, shape.ErrShapeMismatch)

	_, err = Gather(a, List{1, 4}, List{1})
	assert.ErrorIs(t, err, shape.ErrOutOfBounds)

	_, err = Gather(a, One(0), List{1})
	assert.ErrorIs(t, err, shape.ErrOutOfBounds)
}

func TestScatterValue(t *testing.T) {
	a := counting[int](t, shape.Shape{3, 3})

	require.NoError(t, ScatterValue(a, 0, List{1, 3}, One(2)))
	assert.Equal(t, []int{1, 2, 3, 0, 5, 0, 7, 8, 9}, linearData(a))
}

func TestScatterTensor(t *testing.T) {
	a := counting[int](t, shape.Shape{3, 3})
	src := fromSlice(t, []int{-1, -2, -3, -4}, shape.Shape{2, 2})

	require.NoError(t, Scatter(a, src, List{1, 2}, List{1, 3}))
	// Gather order: (1,1) (2,1) (1,3) (2,3).
	assert.Equal(t, []int{-1, -2, 3, 4, 5, 6, -3, -4, 9}, linearData(a))
}

func TestScatterErrors(t *testing.T) {
	a := counting[int](t, shape.Shape{3, 3})
	src := fromSlice(t, []int{1, 2, 3}, shape.Shape{3})

	assert.ErrorIs(t, Scatter(a, src, List{1, 2}, List{1, 3}), shape.ErrShapeMismatch)
	assert.ErrorIs(t, ScatterValue(a, 0, List{1, 5}, One(1)), shape.ErrOutOfBounds)
	assert.ErrorIs(t, ScatterValue(a, 0, One(1)), shape.ErrShapeMismatch)
}

// A[I,J] = X followed by Y = A[I,J] recovers X when the index vectors have
// no repeats.
func TestGatherScatterRoundTrip(t *testing.T) {
	a := counting[int](t, shape.Shape{4, 4})
	x := fromSlice(t, []int{10, 20, 30, 40, 50, 60}, shape.Shape{3, 2})

	i := List{4, 1, 2}
	j := List{3, 1}
	require.NoError(t, Scatter(a, x, i, j))

	y, err := Gather(a, i, j)
	require.NoError(t, err)
	assert.Equal(t, linearData(x), linearData(y))
}
