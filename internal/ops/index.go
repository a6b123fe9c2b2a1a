package ops

import (
	"fmt"

	"github.com/ndkit/ndkit/internal/nest"
	"github.com/ndkit/ndkit/internal/shape"
	"github.com/ndkit/ndkit/internal/tensor"
)

// Index selects coordinates along one axis: either a single scalar
// coordinate or an ordered coordinate list (fancy index). The two variants
// are the closed set; a Gather or Scatter call takes exactly one Index per
// axis.
type Index interface {
	// count reports how many coordinates the specifier selects.
	count() int
	// coord returns the j-th selected coordinate, 1-based.
	coord(j int) int
}

// One is the scalar index specifier: it selects a single 1-based
// coordinate, keeping its axis at length 1 in the gathered result.
type One int

func (o One) count() int      { return 1 }
func (o One) coord(j int) int { return int(o) }

// List is the vector index specifier: an ordered sequence of 1-based
// coordinates for one axis. Coordinates may repeat.
type List []int

func (l List) count() int      { return len(l) }
func (l List) coord(j int) int { return l[j-1] }

// At returns the element at the given 1-based coordinates. Ranks 1 through
// 4 take a direct stride computation with no allocation; higher ranks fall
// back to the generic index algebra.
func At[T any](t tensor.Tensor[T], coords ...int) (T, error) {
	var zero T
	dims := t.Dims()
	i, err := linearOffset(dims, coords)
	if err != nil {
		return zero, err
	}
	return t.Linear(i), nil
}

// SetAt stores v at the given 1-based coordinates.
func SetAt[T any](t tensor.Tensor[T], v T, coords ...int) error {
	dims := t.Dims()
	i, err := linearOffset(dims, coords)
	if err != nil {
		return err
	}
	t.SetLinear(i, v)
	return nil
}

// linearOffset computes the 1-based linear index for a full coordinate
// tuple. The small-rank cases inline the stride formula; the coordinate
// count is static at every call site, so no specialized routine is needed.
func linearOffset(dims shape.Shape, coords []int) (int, error) {
	if len(coords) != dims.Rank() {
		return 0, fmt.Errorf("%w: got %d coordinates for rank %d", shape.ErrShapeMismatch, len(coords), dims.Rank())
	}

	switch len(coords) {
	case 1:
		if err := checkAxis(dims, coords, 0); err != nil {
			return 0, err
		}
		return coords[0], nil
	case 2:
		for k := 0; k < 2; k++ {
			if err := checkAxis(dims, coords, k); err != nil {
				return 0, err
			}
		}
		return coords[0] + (coords[1]-1)*dims[0], nil
	case 3:
		for k := 0; k < 3; k++ {
			if err := checkAxis(dims, coords, k); err != nil {
				return 0, err
			}
		}
		return coords[0] + dims[0]*((coords[1]-1)+dims[1]*(coords[2]-1)), nil
	case 4:
		for k := 0; k < 4; k++ {
			if err := checkAxis(dims, coords, k); err != nil {
				return 0, err
			}
		}
		return coords[0] + dims[0]*((coords[1]-1)+dims[1]*((coords[2]-1)+dims[2]*(coords[3]-1))), nil
	default:
		return shape.Sub2Ind(dims, coords...)
	}
}

func checkAxis(dims shape.Shape, coords []int, k int) error {
	if coords[k] < 1 || coords[k] > dims[k] {
		return fmt.Errorf("%w: coordinate %d on axis %d (length %d)", shape.ErrOutOfBounds, coords[k], k+1, dims[k])
	}
	return nil
}

// gatherLoops is the specialization cache for the selector-walk template
// shared by Gather and Scatter.
var gatherLoops = nest.NewCache(nil)

// Gather reads t at every combination of the per-axis selected coordinates
// and returns a new tensor whose shape is the per-axis selector lengths
// (scalar specifiers keep their axis at length 1). The walk ranges over
// the selector lengths, axis 1 fastest, writing the output at a
// monotonically advancing linear cursor. Selector coordinates are checked
// at the point of access, not pre-validated in bulk.
func Gather[T any](t tensor.Tensor[T], specs ...Index) (tensor.Tensor[T], error) {
	dims := t.Dims()
	if len(specs) != dims.Rank() {
		return nil, fmt.Errorf("%w: got %d index specifiers for rank %d", shape.ErrShapeMismatch, len(specs), dims.Rank())
	}

	loop, err := gatherLoops.For(dims.Rank())
	if err != nil {
		return nil, err
	}

	outDims := make(shape.Shape, len(specs))
	for k, s := range specs {
		outDims[k] = s.count()
	}
	out := t.Similar(outDims)

	strides := dims.Strides()
	cursor := 1
	var walkErr error
	loop(outDims, func(coord []int) bool {
		lin := 1
		for k, s := range specs {
			c := s.coord(coord[k])
			if c < 1 || c > dims[k] {
				walkErr = fmt.Errorf("%w: selector coordinate %d on axis %d (length %d)", shape.ErrOutOfBounds, c, k+1, dims[k])
				return false
			}
			lin += (c - 1) * strides[k]
		}
		out.SetLinear(cursor, t.Linear(lin))
		cursor++
		return true
	})
	if walkErr != nil {
		return nil, walkErr
	}
	return out, nil
}

// Scatter writes src into t at every combination of the per-axis selected
// coordinates, consuming src in the same traversal order Gather produces
// (axis 1 fastest). src must hold exactly one element per selected
// position.
func Scatter[T any](t tensor.Tensor[T], src tensor.Tensor[T], specs ...Index) error {
	selected := 1
	for _, s := range specs {
		selected *= s.count()
	}
	if tensor.NumElements(src) != selected {
		return fmt.Errorf("%w: %d selected positions, source has %d elements",
			shape.ErrShapeMismatch, selected, tensor.NumElements(src))
	}
	cursor := 0
	return scatter(t, func() T { cursor++; return src.Linear(cursor) }, specs)
}

// ScatterValue broadcasts the scalar v to every selected position.
func ScatterValue[T any](t tensor.Tensor[T], v T, specs ...Index) error {
	return scatter(t, func() T { return v }, specs)
}

func scatter[T any](t tensor.Tensor[T], next func() T, specs []Index) error {
	dims := t.Dims()
	if len(specs) != dims.Rank() {
		return fmt.Errorf("%w: got %d index specifiers for rank %d", shape.ErrShapeMismatch, len(specs), dims.Rank())
	}

	loop, err := gatherLoops.For(dims.Rank())
	if err != nil {
		return err
	}

	bounds := make([]int, len(specs))
	for k, s := range specs {
		bounds[k] = s.count()
	}

	strides := dims.Strides()
	var walkErr error
	loop(bounds, func(coord []int) bool {
		lin := 1
		for k, s := range specs {
			c := s.coord(coord[k])
			if c < 1 || c > dims[k] {
				walkErr = fmt.Errorf("%w: selector coordinate %d on axis %d (length %d)", shape.ErrOutOfBounds, c, k+1, dims[k])
				return false
			}
			lin += (c - 1) * strides[k]
		}
		t.SetLinear(lin, next())
		return true
	})
	return walkErr
}
