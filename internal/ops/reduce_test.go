package ops

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ndkit/ndkit/internal/dense"
	"github.com/ndkit/ndkit/internal/shape"
	"github.com/ndkit/ndkit/internal/tensor"
)

func fromSliceBench(data []float64, dims shape.Shape) (tensor.Tensor[float64], error) {
	return dense.FromSlice(data, dims)
}

// A = 3×3 with A[i,j] = 3*(j-1)+i, values 1..9 column-major.
func TestSumMatrix(t *testing.T) {
	a := counting[int](t, shape.Shape{3, 3})

	rows, err := Sum(a, 1)
	require.NoError(t, err)
	assert.Equal(t, shape.Shape{1, 3}, rows.Dims())
	assert.Equal(t, []int{6, 15, 24}, linearData(rows))

	cols, err := Sum(a, 2)
	require.NoError(t, err)
	assert.Equal(t, shape.Shape{3, 1}, cols.Dims())
	assert.Equal(t, []int{12, 15, 18}, linearData(cols))

	all, err := Sum(a, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, shape.Shape{1, 1}, all.Dims())
	assert.Equal(t, []int{45}, linearData(all))
}

func TestReduceEmptyRegion(t *testing.T) {
	a := counting[int](t, shape.Shape{2, 3})

	r, err := Reduce(a, func(x, y int) int { return x + y }, 0)
	require.NoError(t, err)
	assert.Equal(t, a.Dims(), r.Dims())
	assert.Equal(t, linearData(a), linearData(r))

	// The result is a copy, not an alias.
	r.SetLinear(1, 99)
	assert.Equal(t, 1, a.Linear(1))
}

func TestReduceAllAxesEqualsLinearFold(t *testing.T) {
	a := counting[int](t, shape.Shape{2, 3, 2})

	r, err := Reduce(a, func(x, y int) int { return x + y }, 0, 1, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, shape.Shape{1, 1, 1}, r.Dims())

	want := 0
	for v := range tensor.Values(a) {
		want += v
	}
	assert.Equal(t, want, r.Linear(1))
}

func TestReduceAxisSubset(t *testing.T) {
	a := counting[int](t, shape.Shape{2, 3, 2})

	r, err := Sum(a, 2)
	require.NoError(t, err)
	assert.Equal(t, shape.Shape{2, 1, 2}, r.Dims())
	// Sum over j of A[i,j,k]: elements 1..6 then 7..12 column-major.
	assert.Equal(t, []int{9, 12, 27, 30}, linearData(r))

	r13, err := Sum(a, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, shape.Shape{1, 3, 1}, r13.Dims())
	assert.Equal(t, []int{1 + 2 + 7 + 8, 3 + 4 + 9 + 10, 5 + 6 + 11 + 12}, linearData(r13))
}

// The rank-2 fast paths must agree with the generic nest, which a rank-3
// tensor with a singleton axis exercises on the same data.
func TestRank2FastPathAgreesWithGeneric(t *testing.T) {
	a := counting[int](t, shape.Shape{3, 4})
	a3, err := tensor.Reshape(a, shape.Shape{3, 4, 1})
	require.NoError(t, err)

	fast, err := Sum(a, 1)
	require.NoError(t, err)
	generic, err := Sum(a3, 1)
	require.NoError(t, err)
	assert.Equal(t, linearData(fast), linearData(generic))

	fast2, err := Sum(a, 2)
	require.NoError(t, err)
	generic2, err := Sum(a3, 2)
	require.NoError(t, err)
	assert.Equal(t, linearData(fast2), linearData(generic2))
}

// op only needs associativity: a non-commutative fold must accumulate in
// increasing reduced-coordinate order.
func TestReduceOrderNonCommutative(t *testing.T) {
	a := counting[int](t, shape.Shape{3})

	r, err := Reduce(a, func(x, y int) int { return 10*x + y }, 0, 1)
	require.NoError(t, err)
	// ((0*10+1)*10+2)*10+3.
	assert.Equal(t, 123, r.Linear(1))
}

func TestReduceInvalidAxis(t *testing.T) {
	a := counting[int](t, shape.Shape{2, 3})

	_, err := Sum(a, 3)
	assert.ErrorIs(t, err, shape.ErrOutOfBounds)
	_, err = Sum(a, 0)
	assert.ErrorIs(t, err, shape.ErrOutOfBounds)
}

func TestProd(t *testing.T) {
	a := counting[int](t, shape.Shape{2, 2})

	p, err := Prod(a, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, 24, p.Linear(1))
}

func TestMinMax(t *testing.T) {
	a := fromSlice(t, []float64{3, -1, 4, 1, -5, 9}, shape.Shape{3, 2})

	mx, err := Max(a, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 9}, linearData(mx))

	mn, err := Min(a, 2)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, -5, 4}, linearData(mn))
}

func TestAnyAll(t *testing.T) {
	a := fromSlice(t, []bool{true, false, false, false}, shape.Shape{2, 2})

	anyR, err := Any(a, 1)
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false}, linearData(anyR))

	allR, err := All(a, 1)
	require.NoError(t, err)
	assert.Equal(t, []bool{false, false}, linearData(allR))
}

func TestCumSum(t *testing.T) {
	a := counting[int](t, shape.Shape{3, 2})

	c1, err := CumSum(a, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3, 6, 4, 9, 15}, linearData(c1))

	c2, err := CumSum(a, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 5, 7, 9}, linearData(c2))

	_, err = CumSum(a, 3)
	assert.ErrorIs(t, err, shape.ErrOutOfBounds)
}

// Degenerate inputs with a zero-length axis reduce without error: the
// source walk is empty, so reduced cells keep the identity and CumSum
// yields an empty result of the same shape.
func TestReduceEmptyTensor(t *testing.T) {
	a := fromSlice(t, []int{}, shape.Shape{0, 3})

	s, err := Sum(a, 1)
	require.NoError(t, err)
	assert.Equal(t, shape.Shape{1, 3}, s.Dims())
	assert.Equal(t, []int{0, 0, 0}, linearData(s))

	c, err := CumSum(a, 1)
	require.NoError(t, err)
	assert.Equal(t, shape.Shape{0, 3}, c.Dims())
	assert.Empty(t, linearData(c))
}

// The final cumulative entry along an axis equals the plain reduction over
// that axis.
func TestCumSumMatchesSum(t *testing.T) {
	a := counting[int](t, shape.Shape{4, 3})

	c, err := CumSum(a, 1)
	require.NoError(t, err)
	s, err := Sum(a, 1)
	require.NoError(t, err)

	for j := 1; j <= 3; j++ {
		last, err := At(c, 4, j)
		require.NoError(t, err)
		total, err := At(s, 1, j)
		require.NoError(t, err)
		assert.Equal(t, total, last)
	}
}

func BenchmarkReduce(b *testing.B) {
	data := make([]float64, 64*64*8)
	for i := range data {
		data[i] = float64(i)
	}
	a, _ := fromSliceBench(data, shape.Shape{64, 64, 8})

	b.Run("generic", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = Sum(a, 2)
		}
	})

	b.Run("rank2-fastpath", func(b *testing.B) {
		m, _ := fromSliceBench(data, shape.Shape{64, 512})
		for i := 0; i < b.N; i++ {
			_, _ = Sum(m, 1)
		}
	})
}
