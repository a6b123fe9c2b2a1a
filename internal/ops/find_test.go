package ops

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ndkit/ndkit/internal/shape"
)

func TestFindVector(t *testing.T) {
	a := fromSlice(t, []float64{0, 3, 0, 0, 7, 1}, shape.Shape{6})

	got, err := Find(a)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, []int{2, 5, 6}, got[0])
}

func TestFindMatrix(t *testing.T) {
	// Column-major 3×3: nonzeros at (2,1), (1,2), (3,3).
	a := fromSlice(t, []int{0, 5, 0, 4, 0, 0, 0, 0, 9}, shape.Shape{3, 3})

	got, err := Find(a)
	require.NoError(t, err)
	require.Len(t, got, 2)
	// Increasing linear order.
	assert.Equal(t, []int{2, 1, 3}, got[0])
	assert.Equal(t, []int{1, 2, 3}, got[1])
}

// Find must report exactly the nonzero positions: reading the reported
// coordinates back gives nonzero values, and their count is nnz.
func TestFindExhaustive(t *testing.T) {
	data := []int{1, 0, 2, 0, 0, 3, 0, 4, 0, 0, 5, 0}
	a := fromSlice(t, data, shape.Shape{2, 3, 2})

	coords, err := Find(a)
	require.NoError(t, err)
	require.Len(t, coords, 3)

	nnz := 0
	for _, v := range data {
		if v != 0 {
			nnz++
		}
	}
	require.Len(t, coords[0], nnz)

	seen := map[int]bool{}
	for k := 0; k < nnz; k++ {
		v, err := At(a, coords[0][k], coords[1][k], coords[2][k])
		require.NoError(t, err)
		assert.NotZero(t, v)

		lin, err := shape.Sub2Ind(a.Dims(), coords[0][k], coords[1][k], coords[2][k])
		require.NoError(t, err)
		assert.False(t, seen[lin], "duplicate coordinate")
		seen[lin] = true
	}
}

func TestFindNoNonzeros(t *testing.T) {
	a := fromSlice(t, make([]int, 6), shape.Shape{2, 3})

	got, err := Find(a)
	require.NoError(t, err)
	assert.Empty(t, got[0])
	assert.Empty(t, got[1])
}

func TestFindBool(t *testing.T) {
	a := fromSlice(t, []bool{false, true, true, false}, shape.Shape{4})

	got, err := Find(a)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, got[0])
}

func TestAccumArray(t *testing.T) {
	got, err := AccumArray([]int{1, 2, 1}, []int{1, 2, 3}, []float64{10, 20, 30}, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, shape.Shape{2, 3}, got.Dims())
	assert.Equal(t, []float64{10, 0, 0, 20, 30, 0}, got.Data())
}

// Duplicate (i, j) pairs accumulate by addition, not overwrite.
func TestAccumArrayDuplicates(t *testing.T) {
	got, err := AccumArray([]int{1, 1}, []int{1, 1}, []int{3, 4}, 2, 2)
	require.NoError(t, err)

	v, err := At[int](got, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, 7, v)
	assert.Equal(t, []int{7, 0, 0, 0}, got.Data())
}

func TestAccumArrayScalarValue(t *testing.T) {
	got, err := AccumArray([]int{1, 2, 2}, []int{1, 1, 1}, []int{5}, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{5, 10, 0, 0}, got.Data())
}

func TestAccumArrayErrors(t *testing.T) {
	_, err := AccumArray([]int{1}, []int{1, 2}, []int{1}, 2, 2)
	assert.ErrorIs(t, err, shape.ErrShapeMismatch)

	_, err = AccumArray([]int{1, 2}, []int{1, 2}, []int{1, 2, 3}, 2, 2)
	assert.ErrorIs(t, err, shape.ErrShapeMismatch)

	_, err = AccumArray([]int{3}, []int{1}, []int{1}, 2, 2)
	assert.ErrorIs(t, err, shape.ErrOutOfBounds)

	_, err = AccumArray([]int{1}, []int{0}, []int{1}, 2, 2)
	assert.ErrorIs(t, err, shape.ErrOutOfBounds)

	_, err = AccumArray([]int{1}, []int{1}, []int{1}, 0, 2)
	assert.ErrorIs(t, err, shape.ErrShapeMismatch)
}
