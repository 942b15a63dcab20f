package glm

import "fmt"

type Vec4[T Numeric] [4]T

func (lhs Vec4[T]) Dot(rhs Vec4[T]) T {
	return lhs[0]*rhs[0] + lhs[1]*rhs[1] + lhs[2]*rhs[2] + lhs[3]*rhs[3]
}

func (lhs Vec4[T]) LengthSqr() T {
	return lhs.Dot(lhs)
}

func (lhs Vec4[T]) Add(rhs Vec4[T]) Vec4[T] {
	return Vec4[T]{
		lhs[0] + rhs[0],
		lhs[1] + rhs[1],
		lhs[2] + rhs[2],
		lhs[3] + rhs[3],
	}
}

func (lhs Vec4[T]) Sub(rhs Vec4[T]) Vec4[T] {
	return Vec4[T]{
		lhs[0] - rhs[0],
		lhs[1] - rhs[1],
		lhs[2] - rhs[2],
		lhs[3] - rhs[3],
	}
}

func (lhs Vec4[T]) Mul(rhs Vec4[T]) Vec4[T] {
	return Vec4[T]{
		lhs[0] * rhs[0],
		lhs[1] * rhs[1],
		lhs[2] * rhs[2],
		lhs[3] * rhs[3],
	}
}

func (lhs Vec4[T]) Div(rhs Vec4[T]) Vec4[T] {
	return Vec4[T]{
		lhs[0] / rhs[0],
		lhs[1] / rhs[1],
		lhs[2] / rhs[2],
		lhs[3] / rhs[3],
	}
}

func (lhs Vec4[T]) MulScalar(s T) Vec4[T] {
	return Vec4[T]{
		lhs[0] * s,
		lhs[1] * s,
		lhs[2] * s,
		lhs[3] * s,
	}
}

func (lhs Vec4[T]) DivScalar(s T) Vec4[T] {
	return Vec4[T]{
		lhs[0] / s,
		lhs[1] / s,
		lhs[2] / s,
		lhs[3] / s,
	}
}

func (lhs Vec4[T]) Neg() Vec4[T] {
	return Vec4[T]{-lhs[0], -lhs[1], -lhs[2], -lhs[3]}
}

// MulMat multiplies lhs as a row vector with the matrix rhs.
func (lhs Vec4[T]) MulMat(rhs Mat4[T]) Vec4[T] {
	return Vec4[T]{
		lhs[0]*rhs[0][0] + lhs[1]*rhs[1][0] + lhs[2]*rhs[2][0] + lhs[3]*rhs[3][0],
		lhs[0]*rhs[0][1] + lhs[1]*rhs[1][1] + lhs[2]*rhs[2][1] + lhs[3]*rhs[3][1],
		lhs[0]*rhs[0][2] + lhs[1]*rhs[1][2] + lhs[2]*rhs[2][2] + lhs[3]*rhs[3][2],
		lhs[0]*rhs[0][3] + lhs[1]*rhs[1][3] + lhs[2]*rhs[2][3] + lhs[3]*rhs[3][3],
	}
}

func (lhs Vec4[T]) Truncate() Vec3[T] {
	return Vec3[T]{lhs[0], lhs[1], lhs[2]}
}

func (lhs Vec4[T]) IsZero() bool {
	return lhs == Vec4[T]{}
}

func (lhs Vec4[T]) XYZ() (x, y, z T) {
	x = lhs[0]
	y = lhs[1]
	z = lhs[2]
	return
}

func (lhs Vec4[T]) XYZW() (x, y, z, w T) {
	x = lhs[0]
	y = lhs[1]
	z = lhs[2]
	w = lhs[3]
	return
}

func (lhs Vec4[T]) String() string {
	return fmt.Sprintf("Vec4(%v, %v, %v, %v)", lhs[0], lhs[1], lhs[2], lhs[3])
}
