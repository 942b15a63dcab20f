// Package glm provides GLSL style vectors and square matrices of arity
// 2, 3 and 4 over signed integer and floating point scalars.
package glm

import (
	"math"
	"unsafe"

	"golang.org/x/exp/constraints"
	"golang.org/x/mobile/exp/f32"
)

// Float is the set of scalars that support Sqrt. Length, Normalize,
// Distance, Determinant, Cofactor and Inverse are only available for
// vectors and matrices over a Float.
type Float interface {
	constraints.Float
}

// Numeric is the set of scalars a vector or matrix can be built from.
type Numeric interface {
	~int8 | ~int16 | ~int32 | ~int64 | Float
}

// Sqrt returns the square root of x with the semantics of the native
// square root of the underlying float type. Negative inputs yield NaN.
func Sqrt[F Float](x F) F {
	if unsafe.Sizeof(x) == 4 {
		return F(f32.Sqrt(float32(x)))
	}

	return F(math.Sqrt(float64(x)))
}
