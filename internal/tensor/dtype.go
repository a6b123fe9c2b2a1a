package tensor

// Constraint sets for the operator family. They mirror Go's numeric kinds;
// which operators a kind supports follows the language itself (ordering
// needs Real, bitwise needs Integer, and so on).

// Integer is the constraint for integer element types.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Float is the constraint for floating-point element types.
type Float interface {
	~float32 | ~float64
}

// Complex is the constraint for complex element types.
type Complex interface {
	~complex64 | ~complex128
}

// Real is the constraint for ordered numeric element types.
type Real interface {
	Integer | Float
}

// Numeric is the constraint for all numeric element types.
type Numeric interface {
	Integer | Float | Complex
}
