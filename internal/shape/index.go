package shape

import "fmt"

// Sub2Ind converts a 1-based multi-dimensional coordinate to its 1-based
// linear storage index under the column-major convention:
//
//	linear = coords[0] + Σ (coords[k]-1) * strides[k]   for k = 1..rank-1
//
// Sub2Ind and Ind2Sub are exact inverses over the domain
// 1 <= coords[k] <= s[k].
func Sub2Ind(s Shape, coords ...int) (int, error) {
	if len(s) == 0 {
		return 0, fmt.Errorf("%w: rank-0 shape has no linear index", ErrOutOfBounds)
	}
	if len(coords) != len(s) {
		return 0, fmt.Errorf("%w: got %d coordinates for rank %d", ErrShapeMismatch, len(coords), len(s))
	}

	linear := 1
	stride := 1
	for k, c := range coords {
		if c < 1 || c > s[k] {
			return 0, fmt.Errorf("%w: coordinate %d on axis %d (length %d)", ErrOutOfBounds, c, k+1, s[k])
		}
		linear += (c - 1) * stride
		stride *= s[k]
	}
	return linear, nil
}

// Ind2Sub converts a 1-based linear index back to the 1-based coordinate
// tuple it addresses, recovering axes from highest to lowest by successive
// division against the cumulative axis products.
func Ind2Sub(s Shape, linear int) ([]int, error) {
	if len(s) == 0 {
		return nil, fmt.Errorf("%w: rank-0 shape has no linear index", ErrOutOfBounds)
	}
	if linear < 1 || linear > s.NumElements() {
		return nil, fmt.Errorf("%w: linear index %d (element count %d)", ErrOutOfBounds, linear, s.NumElements())
	}

	coords := make([]int, len(s))
	rem := linear - 1
	strides := s.Strides()
	for k := len(s) - 1; k >= 0; k-- {
		coords[k] = rem/strides[k] + 1
		rem %= strides[k]
	}
	return coords, nil
}

// Sub2IndVec applies Sub2Ind pointwise: coords[k] holds one coordinate
// sequence per axis, all the same length, and the result holds one linear
// index per coordinate tuple, in input order.
func Sub2IndVec(s Shape, coords ...[]int) ([]int, error) {
	if len(coords) != len(s) {
		return nil, fmt.Errorf("%w: got %d coordinate vectors for rank %d", ErrShapeMismatch, len(coords), len(s))
	}
	n := 0
	if len(coords) > 0 {
		n = len(coords[0])
	}
	for k, c := range coords {
		if len(c) != n {
			return nil, fmt.Errorf("%w: coordinate vector %d has length %d, want %d", ErrShapeMismatch, k+1, len(c), n)
		}
	}

	out := make([]int, n)
	tuple := make([]int, len(s))
	for i := 0; i < n; i++ {
		for k := range coords {
			tuple[k] = coords[k][i]
		}
		linear, err := Sub2Ind(s, tuple...)
		if err != nil {
			return nil, err
		}
		out[i] = linear
	}
	return out, nil
}

// Ind2SubVec applies Ind2Sub pointwise, returning one coordinate sequence
// per axis, each the length of linear, in input order.
func Ind2SubVec(s Shape, linear []int) ([][]int, error) {
	out := make([][]int, len(s))
	for k := range out {
		out[k] = make([]int, len(linear))
	}
	for i, idx := range linear {
		coords, err := Ind2Sub(s, idx)
		if err != nil {
			return nil, err
		}
		for k := range coords {
			out[k][i] = coords[k]
		}
	}
	return out, nil
}
