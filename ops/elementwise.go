// Copyright 2026 The ndkit Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ops

import (
	elem "github.com/ndkit/ndkit/internal/tensor"
	"github.com/ndkit/ndkit/tensor"
)

// Elementwise operators. Tensor-tensor forms require identical shapes and
// report tensor.ErrShapeMismatch otherwise; Scalar forms broadcast one
// value against every position. Comparisons allocate dense bool results.

// Unary applies f at every linear position, allocating the result with mk.
func Unary[T, R any](a tensor.Tensor[T], mk tensor.Alloc[R], f func(T) R) tensor.Tensor[R] {
	return elem.Unary(a, mk, f)
}

// Binary applies f positionwise over two same-shaped tensors, allocating
// the result with mk.
func Binary[T, R any](a, b tensor.Tensor[T], mk tensor.Alloc[R], f func(T, T) R) (tensor.Tensor[R], error) {
	return elem.Binary(a, b, mk, f)
}

// Neg returns -a at every position.
func Neg[T tensor.Numeric](a tensor.Tensor[T]) tensor.Tensor[T] { return elem.Neg(a) }

// BitNot returns the bitwise complement at every position.
func BitNot[T tensor.Integer](a tensor.Tensor[T]) tensor.Tensor[T] { return elem.BitNot(a) }

// Not returns the logical negation of a boolean tensor.
func Not(a tensor.Tensor[bool]) tensor.Tensor[bool] { return elem.Not(a) }

// Conj returns the complex conjugate; real element types pass through.
func Conj[T tensor.Numeric](a tensor.Tensor[T]) tensor.Tensor[T] { return elem.Conj(a) }

// Real returns the real part in the operand's element type.
func Real[T tensor.Numeric](a tensor.Tensor[T]) tensor.Tensor[T] { return elem.RealPart(a) }

// Imag returns the imaginary part; the zero tensor for real element types.
func Imag[T tensor.Numeric](a tensor.Tensor[T]) tensor.Tensor[T] { return elem.Imag(a) }

// Add returns a + b positionwise.
func Add[T tensor.Numeric](a, b tensor.Tensor[T]) (tensor.Tensor[T], error) { return elem.Add(a, b) }

// Sub returns a - b positionwise.
func Sub[T tensor.Numeric](a, b tensor.Tensor[T]) (tensor.Tensor[T], error) { return elem.Sub(a, b) }

// Mul returns the elementwise product.
func Mul[T tensor.Numeric](a, b tensor.Tensor[T]) (tensor.Tensor[T], error) { return elem.Mul(a, b) }

// Div returns a / b positionwise.
func Div[T tensor.Numeric](a, b tensor.Tensor[T]) (tensor.Tensor[T], error) { return elem.Div(a, b) }

// IntDiv returns the truncating integer quotient positionwise.
func IntDiv[T tensor.Integer](a, b tensor.Tensor[T]) (tensor.Tensor[T], error) {
	return elem.IntDiv(a, b)
}

// Mod returns the remainder positionwise.
func Mod[T tensor.Integer](a, b tensor.Tensor[T]) (tensor.Tensor[T], error) { return elem.Mod(a, b) }

// Pow returns a raised to b positionwise.
func Pow[T tensor.Float](a, b tensor.Tensor[T]) (tensor.Tensor[T], error) { return elem.Pow(a, b) }

// BitAnd returns a & b positionwise.
func BitAnd[T tensor.Integer](a, b tensor.Tensor[T]) (tensor.Tensor[T], error) {
	return elem.BitAnd(a, b)
}

// BitOr returns a | b positionwise.
func BitOr[T tensor.Integer](a, b tensor.Tensor[T]) (tensor.Tensor[T], error) {
	return elem.BitOr(a, b)
}

// BitXor returns a ^ b positionwise.
func BitXor[T tensor.Integer](a, b tensor.Tensor[T]) (tensor.Tensor[T], error) {
	return elem.BitXor(a, b)
}

// And returns the logical conjunction of two boolean tensors.
func And(a, b tensor.Tensor[bool]) (tensor.Tensor[bool], error) { return elem.And(a, b) }

// Or returns the logical disjunction of two boolean tensors.
func Or(a, b tensor.Tensor[bool]) (tensor.Tensor[bool], error) { return elem.Or(a, b) }

// Eq returns a == b positionwise as a bool tensor.
func Eq[T comparable](a, b tensor.Tensor[T]) (tensor.Tensor[bool], error) {
	return elem.Eq(a, b, tensor.Of[bool])
}

// Ne returns a != b positionwise as a bool tensor.
func Ne[T comparable](a, b tensor.Tensor[T]) (tensor.Tensor[bool], error) {
	return elem.Ne(a, b, tensor.Of[bool])
}

// Lt returns a < b positionwise as a bool tensor.
func Lt[T tensor.Real](a, b tensor.Tensor[T]) (tensor.Tensor[bool], error) {
	return elem.Lt(a, b, tensor.Of[bool])
}

// Le returns a <= b positionwise as a bool tensor.
func Le[T tensor.Real](a, b tensor.Tensor[T]) (tensor.Tensor[bool], error) {
	return elem.Le(a, b, tensor.Of[bool])
}

// Gt returns a > b positionwise as a bool tensor.
func Gt[T tensor.Real](a, b tensor.Tensor[T]) (tensor.Tensor[bool], error) {
	return elem.Gt(a, b, tensor.Of[bool])
}

// Ge returns a >= b positionwise as a bool tensor.
func Ge[T tensor.Real](a, b tensor.Tensor[T]) (tensor.Tensor[bool], error) {
	return elem.Ge(a, b, tensor.Of[bool])
}

// AddScalar returns a + s at every position.
func AddScalar[T tensor.Numeric](a tensor.Tensor[T], s T) tensor.Tensor[T] {
	return elem.AddScalar(a, s)
}

// SubScalar returns a - s at every position.
func SubScalar[T tensor.Numeric](a tensor.Tensor[T], s T) tensor.Tensor[T] {
	return elem.SubScalar(a, s)
}

// ScalarSub returns s - a at every position.
func ScalarSub[T tensor.Numeric](s T, a tensor.Tensor[T]) tensor.Tensor[T] {
	return elem.ScalarSub(s, a)
}

// MulScalar returns a * s at every position.
func MulScalar[T tensor.Numeric](a tensor.Tensor[T], s T) tensor.Tensor[T] {
	return elem.MulScalar(a, s)
}

// DivScalar returns a / s at every position.
func DivScalar[T tensor.Numeric](a tensor.Tensor[T], s T) tensor.Tensor[T] {
	return elem.DivScalar(a, s)
}

// ScalarDiv returns s / a at every position.
func ScalarDiv[T tensor.Numeric](s T, a tensor.Tensor[T]) tensor.Tensor[T] {
	return elem.ScalarDiv(s, a)
}

// PowScalar returns a raised to s at every position.
func PowScalar[T tensor.Float](a tensor.Tensor[T], s T) tensor.Tensor[T] {
	return elem.PowScalar(a, s)
}

// ScalarPow returns s raised to a at every position.
func ScalarPow[T tensor.Float](s T, a tensor.Tensor[T]) tensor.Tensor[T] {
	return elem.ScalarPow(s, a)
}

// ModScalar returns a % s at every position.
func ModScalar[T tensor.Integer](a tensor.Tensor[T], s T) tensor.Tensor[T] {
	return elem.ModScalar(a, s)
}

// ScalarMod returns s % a at every position.
func ScalarMod[T tensor.Integer](s T, a tensor.Tensor[T]) tensor.Tensor[T] {
	return elem.ScalarMod(s, a)
}

// EqScalar returns a == s at every position as a bool tensor.
func EqScalar[T comparable](a tensor.Tensor[T], s T) tensor.Tensor[bool] {
	return elem.EqScalar(a, s, tensor.Of[bool])
}

// NeScalar returns a != s at every position as a bool tensor.
func NeScalar[T comparable](a tensor.Tensor[T], s T) tensor.Tensor[bool] {
	return elem.NeScalar(a, s, tensor.Of[bool])
}

// LtScalar returns a < s at every position as a bool tensor.
func LtScalar[T tensor.Real](a tensor.Tensor[T], s T) tensor.Tensor[bool] {
	return elem.LtScalar(a, s, tensor.Of[bool])
}

// LeScalar returns a <= s at every position as a bool tensor.
func LeScalar[T tensor.Real](a tensor.Tensor[T], s T) tensor.Tensor[bool] {
	return elem.LeScalar(a, s, tensor.Of[bool])
}

// GtScalar returns a > s at every position as a bool tensor.
func GtScalar[T tensor.Real](a tensor.Tensor[T], s T) tensor.Tensor[bool] {
	return elem.GtScalar(a, s, tensor.Of[bool])
}

// GeScalar returns a >= s at every position as a bool tensor.
func GeScalar[T tensor.Real](a tensor.Tensor[T], s T) tensor.Tensor[bool] {
	return elem.GeScalar(a, s, tensor.Of[bool])
}
