package tensor

import "math"

// Named elementwise operators. Tensor-tensor forms require identical
// shapes; the Scalar forms broadcast one value against every position of
// the tensor operand. Comparison operators produce bool tensors through a
// caller-supplied allocator, since the result's storage family cannot be
// derived from the operands' element type.

// Neg returns -a at every position.
func Neg[T Numeric](a Tensor[T]) Tensor[T] {
	return UnarySame(a, func(v T) T { return -v })
}

// BitNot returns the bitwise complement of every position.
func BitNot[T Integer](a Tensor[T]) Tensor[T] {
	return UnarySame(a, func(v T) T { return ^v })
}

// Not returns the logical negation of a boolean tensor.
func Not(a Tensor[bool]) Tensor[bool] {
	return UnarySame(a, func(v bool) bool { return !v })
}

// Conj returns the complex conjugate at every position. Real element types
// are fixed points: the result equals the operand.
func Conj[T Numeric](a Tensor[T]) Tensor[T] {
	return UnarySame(a, ConjValue[T])
}

// RealPart returns the real part at every position, in the operand's
// element type: complex elements keep their real component with a zero
// imaginary part, real elements pass through unchanged. Callers that want
// a float-typed extraction from a complex tensor use Unary with an
// explicit allocator and conversion.
func RealPart[T Numeric](a Tensor[T]) Tensor[T] {
	return UnarySame(a, realPart[T])
}

// Imag returns the imaginary part at every position, in the operand's
// element type. For real element types the result is the zero tensor of
// the same shape.
func Imag[T Numeric](a Tensor[T]) Tensor[T] {
	return UnarySame(a, imagPart[T])
}

// Add returns a + b positionwise.
func Add[T Numeric](a, b Tensor[T]) (Tensor[T], error) {
	return BinarySame(a, b, func(x, y T) T { return x + y })
}

// Sub returns a - b positionwise.
func Sub[T Numeric](a, b Tensor[T]) (Tensor[T], error) {
	return BinarySame(a, b, func(x, y T) T { return x - y })
}

// Mul returns the elementwise product a * b.
func Mul[T Numeric](a, b Tensor[T]) (Tensor[T], error) {
	return BinarySame(a, b, func(x, y T) T { return x * y })
}

// Div returns a / b positionwise. For integer element types this is Go's
// truncating division; see IntDiv for the explicit integer form.
func Div[T Numeric](a, b Tensor[T]) (Tensor[T], error) {
	return BinarySame(a, b, func(x, y T) T { return x / y })
}

// IntDiv returns the truncating integer quotient a / b positionwise.
func IntDiv[T Integer](a, b Tensor[T]) (Tensor[T], error) {
	return BinarySame(a, b, func(x, y T) T { return x / y })
}

// Mod returns the remainder a % b positionwise.
func Mod[T Integer](a, b Tensor[T]) (Tensor[T], error) {
	return BinarySame(a, b, func(x, y T) T { return x % y })
}

// Pow returns a raised to b positionwise.
func Pow[T Float](a, b Tensor[T]) (Tensor[T], error) {
	return BinarySame(a, b, func(x, y T) T { return T(math.Pow(float64(x), float64(y))) })
}

// BitAnd returns a & b positionwise.
func BitAnd[T Integer](a, b Tensor[T]) (Tensor[T], error) {
	return BinarySame(a, b, func(x, y T) T { return x & y })
}

// BitOr returns a | b positionwise.
func BitOr[T Integer](a, b Tensor[T]) (Tensor[T], error) {
	return BinarySame(a, b, func(x, y T) T { return x | y })
}

// BitXor returns a ^ b positionwise.
func BitXor[T Integer](a, b Tensor[T]) (Tensor[T], error) {
	return BinarySame(a, b, func(x, y T) T { return x ^ y })
}

// And returns the logical conjunction of two boolean tensors.
func And(a, b Tensor[bool]) (Tensor[bool], error) {
	return BinarySame(a, b, func(x, y bool) bool { return x && y })
}

// Or returns the logical disjunction of two boolean tensors.
func Or(a, b Tensor[bool]) (Tensor[bool], error) {
	return BinarySame(a, b, func(x, y bool) bool { return x || y })
}

// Eq returns a == b positionwise as a bool tensor.
func Eq[T comparable](a, b Tensor[T], mk Alloc[bool]) (Tensor[bool], error) {
	return Binary(a, b, mk, func(x, y T) bool { return x == y })
}

// Ne returns a != b positionwise as a bool tensor.
func Ne[T comparable](a, b Tensor[T], mk Alloc[bool]) (Tensor[bool], error) {
	return Binary(a, b, mk, func(x, y T) bool { return x != y })
}

// Lt returns a < b positionwise as a bool tensor.
func Lt[T Real](a, b Tensor[T], mk Alloc[bool]) (Tensor[bool], error) {
	return Binary(a, b, mk, func(x, y T) bool { return x < y })
}

// Le returns a <= b positionwise as a bool tensor.
func Le[T Real](a, b Tensor[T], mk Alloc[bool]) (Tensor[bool], error) {
	return Binary(a, b, mk, func(x, y T) bool { return x <= y })
}

// Gt returns a > b positionwise as a bool tensor.
func Gt[T Real](a, b Tensor[T], mk Alloc[bool]) (Tensor[bool], error) {
	return Binary(a, b, mk, func(x, y T) bool { return x > y })
}

// Ge returns a >= b positionwise as a bool tensor.
func Ge[T Real](a, b Tensor[T], mk Alloc[bool]) (Tensor[bool], error) {
	return Binary(a, b, mk, func(x, y T) bool { return x >= y })
}

// Scalar broadcast forms. The non-commutative operators come in both
// tensor-scalar and scalar-tensor directions.

// AddScalar returns a + s at every position.
func AddScalar[T Numeric](a Tensor[T], s T) Tensor[T] {
	return UnarySame(a, func(v T) T { return v + s })
}

// SubScalar returns a - s at every position.
func SubScalar[T Numeric](a Tensor[T], s T) Tensor[T] {
	return UnarySame(a, func(v T) T { return v - s })
}

// ScalarSub returns s - a at every position.
func ScalarSub[T Numeric](s T, a Tensor[T]) Tensor[T] {
	return UnarySame(a, func(v T) T { return s - v })
}

// MulScalar returns a * s at every position.
func MulScalar[T Numeric](a Tensor[T], s T) Tensor[T] {
	return UnarySame(a, func(v T) T { return v * s })
}

// DivScalar returns a / s at every position.
func DivScalar[T Numeric](a Tensor[T], s T) Tensor[T] {
	return UnarySame(a, func(v T) T { return v / s })
}

// ScalarDiv returns s / a at every position.
func ScalarDiv[T Numeric](s T, a Tensor[T]) Tensor[T] {
	return UnarySame(a, func(v T) T { return s / v })
}

// PowScalar returns a raised to s at every position.
func PowScalar[T Float](a Tensor[T], s T) Tensor[T] {
	return UnarySame(a, func(v T) T { return T(math.Pow(float64(v), float64(s))) })
}

// ScalarPow returns s raised to a at every position.
func ScalarPow[T Float](s T, a Tensor[T]) Tensor[T] {
	return UnarySame(a, func(v T) T { return T(math.Pow(float64(s), float64(v))) })
}

// ModScalar returns a % s at every position.
func ModScalar[T Integer](a Tensor[T], s T) Tensor[T] {
	return UnarySame(a, func(v T) T { return v % s })
}

// ScalarMod returns s % a at every position.
func ScalarMod[T Integer](s T, a Tensor[T]) Tensor[T] {
	return UnarySame(a, func(v T) T { return s % v })
}

// EqScalar returns a == s at every position as a bool tensor.
func EqScalar[T comparable](a Tensor[T], s T, mk Alloc[bool]) Tensor[bool] {
	return Unary(a, mk, func(v T) bool { return v == s })
}

// NeScalar returns a != s at every position as a bool tensor.
func NeScalar[T comparable](a Tensor[T], s T, mk Alloc[bool]) Tensor[bool] {
	return Unary(a, mk, func(v T) bool { return v != s })
}

// LtScalar returns a < s at every position as a bool tensor.
func LtScalar[T Real](a Tensor[T], s T, mk Alloc[bool]) Tensor[bool] {
	return Unary(a, mk, func(v T) bool { return v < s })
}

// LeScalar returns a <= s at every position as a bool tensor.
func LeScalar[T Real](a Tensor[T], s T, mk Alloc[bool]) Tensor[bool] {
	return Unary(a, mk, func(v T) bool { return v <= s })
}

// GtScalar returns a > s at every position as a bool tensor.
func GtScalar[T Real](a Tensor[T], s T, mk Alloc[bool]) Tensor[bool] {
	return Unary(a, mk, func(v T) bool { return v > s })
}

// GeScalar returns a >= s at every position as a bool tensor.
func GeScalar[T Real](a Tensor[T], s T, mk Alloc[bool]) Tensor[bool] {
	return Unary(a, mk, func(v T) bool { return v >= s })
}

// ConjValue conjugates a single value; real kinds are fixed points.
func ConjValue[T Numeric](v T) T {
	switch x := any(v).(type) {
	case complex64:
		return any(complex(real(x), -imag(x))).(T)
	case complex128:
		return any(complex(real(x), -imag(x))).(T)
	default:
		return v
	}
}

func realPart[T Numeric](v T) T {
	switch x := any(v).(type) {
	case complex64:
		return any(complex(real(x), 0)).(T)
	case complex128:
		return any(complex(real(x), 0)).(T)
	default:
		return v
	}
}

func imagPart[T Numeric](v T) T {
	switch x := any(v).(type) {
	case complex64:
		return any(complex(imag(x), 0)).(T)
	case complex128:
		return any(complex(imag(x), 0)).(T)
	default:
		var zero T
		return zero
	}
}
