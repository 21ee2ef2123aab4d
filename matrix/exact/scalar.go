// SPDX-License-Identifier: MIT

package exact

import "math/big"

// Scalar is the set of exact scalar domains a Dense can hold: rationals
// (*big.Rat, always reduced to lowest terms) and integers (*big.Int).
// The method list is the common arithmetic surface of both types.
type Scalar[T any] interface {
	*big.Rat | *big.Int
	Set(x T) T
	SetInt64(x int64) T
	Add(x, y T) T
	Sub(x, y T) T
	Mul(x, y T) T
	Neg(x T) T
	Cmp(y T) int
	Sign() int
	String() string
}

// newScalar allocates a zero value of the domain T.
func newScalar[T Scalar[T]]() T {
	var z T
	switch any(z).(type) {
	case *big.Rat:
		return any(new(big.Rat)).(T)
	default:
		return any(new(big.Int)).(T)
	}
}

// format renders v; integral rationals print without a "/1" suffix.
func format[T Scalar[T]](v T) string {
	if r, ok := any(v).(*big.Rat); ok {
		return r.RatString()
	}

	return v.String()
}

// toFloat64 returns the float64 nearest to v.
func toFloat64[T Scalar[T]](v T) float64 {
	switch x := any(v).(type) {
	case *big.Rat:
		f, _ := x.Float64()
		return f
	case *big.Int:
		f, _ := new(big.Float).SetInt(x).Float64()
		return f
	}

	return 0
}
