package glm

import "fmt"

type Vec2[T Numeric] [2]T

func (lhs Vec2[T]) Dot(rhs Vec2[T]) T {
	return lhs[0]*rhs[0] + lhs[1]*rhs[1]
}

// Cross treats both vectors as lying in the z=0 plane. Only the z
// component of the result is meaningful, x and y are always zero.
func (lhs Vec2[T]) Cross(rhs Vec2[T]) Vec3[T] {
	return Vec3[T]{0, 0, lhs[0]*rhs[1] - lhs[1]*rhs[0]}
}

func (lhs Vec2[T]) Add(rhs Vec2[T]) Vec2[T] {
	return Vec2[T]{
		lhs[0] + rhs[0],
		lhs[1] + rhs[1],
	}
}

func (lhs Vec2[T]) Sub(rhs Vec2[T]) Vec2[T] {
	return Vec2[T]{
		lhs[0] - rhs[0],
		lhs[1] - rhs[1],
	}
}

func (lhs Vec2[T]) Mul(rhs Vec2[T]) Vec2[T] {
	return Vec2[T]{
		lhs[0] * rhs[0],
		lhs[1] * rhs[1],
	}
}

func (lhs Vec2[T]) Div(rhs Vec2[T]) Vec2[T] {
	return Vec2[T]{
		lhs[0] / rhs[0],
		lhs[1] / rhs[1],
	}
}

func (lhs Vec2[T]) MulScalar(s T) Vec2[T] {
	return Vec2[T]{
		lhs[0] * s,
		lhs[1] * s,
	}
}

func (lhs Vec2[T]) DivScalar(s T) Vec2[T] {
	return Vec2[T]{
		lhs[0] / s,
		lhs[1] / s,
	}
}

func (lhs Vec2[T]) Neg() Vec2[T] {
	return Vec2[T]{-lhs[0], -lhs[1]}
}

// MulMat multiplies lhs as a row vector with the matrix rhs.
func (lhs Vec2[T]) MulMat(rhs Mat2[T]) Vec2[T] {
	return Vec2[T]{
		lhs[0]*rhs[0][0] + lhs[1]*rhs[1][0],
		lhs[0]*rhs[0][1] + lhs[1]*rhs[1][1],
	}
}

func (lhs Vec2[T]) Extend(z T) Vec3[T] {
	return Vec3[T]{lhs[0], lhs[1], z}
}

func (lhs Vec2[T]) IsZero() bool {
	return lhs == Vec2[T]{}
}

func (lhs Vec2[T]) XY() (x, y T) {
	x = lhs[0]
	y = lhs[1]
	return
}

func (lhs Vec2[T]) String() string {
	return fmt.Sprintf("Vec2(%v, %v)", lhs[0], lhs[1])
}
