package glm

import "fmt"

// Mat2 is a 2x2 matrix in row major order, m[row][col].
type Mat2[T Numeric] [2]Vec2[T]

func Mat2FromRows[T Numeric](r0, r1 Vec2[T]) Mat2[T] {
	return Mat2[T]{r0, r1}
}

func Mat2FromColumns[T Numeric](c0, c1 Vec2[T]) Mat2[T] {
	return Mat2[T]{
		{c0[0], c1[0]},
		{c0[1], c1[1]},
	}
}

func IdentityMat2[T Numeric]() Mat2[T] {
	return Mat2[T]{
		{1, 0},
		{0, 1},
	}
}

func RotationMat2[F Float](angle Rad) Mat2[F] {
	s, c := sincos[F](angle)

	return Mat2[F]{
		{c, -s},
		{s, c},
	}
}

func (lhs Mat2[T]) Rows() [2]Vec2[T] {
	return lhs
}

func (lhs Mat2[T]) Columns() [2]Vec2[T] {
	return [2]Vec2[T]{
		{lhs[0][0], lhs[1][0]},
		{lhs[0][1], lhs[1][1]},
	}
}

// Transpose swaps the matrix in place along its diagonal.
func (lhs *Mat2[T]) Transpose() {
	lhs[0][1], lhs[1][0] = lhs[1][0], lhs[0][1]
}

func (lhs Mat2[T]) Add(rhs Mat2[T]) Mat2[T] {
	return Mat2[T]{
		lhs[0].Add(rhs[0]),
		lhs[1].Add(rhs[1]),
	}
}

func (lhs Mat2[T]) Sub(rhs Mat2[T]) Mat2[T] {
	return Mat2[T]{
		lhs[0].Sub(rhs[0]),
		lhs[1].Sub(rhs[1]),
	}
}

func (lhs Mat2[T]) Mul(rhs Mat2[T]) Mat2[T] {
	r := lhs.Rows()
	c := rhs.Columns()

	return Mat2[T]{
		{r[0].Dot(c[0]), r[0].Dot(c[1])},
		{r[1].Dot(c[0]), r[1].Dot(c[1])},
	}
}

// Transform multiplies the matrix with rhs as a column vector.
func (lhs Mat2[T]) Transform(rhs Vec2[T]) Vec2[T] {
	return Vec2[T]{
		lhs[0].Dot(rhs),
		lhs[1].Dot(rhs),
	}
}

func (lhs Mat2[T]) MulScalar(s T) Mat2[T] {
	return Mat2[T]{
		lhs[0].MulScalar(s),
		lhs[1].MulScalar(s),
	}
}

func (lhs Mat2[T]) DivScalar(s T) Mat2[T] {
	return Mat2[T]{
		lhs[0].DivScalar(s),
		lhs[1].DivScalar(s),
	}
}

func (lhs Mat2[T]) Neg() Mat2[T] {
	return Mat2[T]{lhs[0].Neg(), lhs[1].Neg()}
}

func (lhs Mat2[T]) IsZero() bool {
	return lhs == Mat2[T]{}
}

func (lhs Mat2[T]) determinant() T {
	return lhs[0][0]*lhs[1][1] - lhs[0][1]*lhs[1][0]
}

func (lhs Mat2[T]) cofactor() Mat2[T] {
	return Mat2[T]{
		{lhs[1][1], -lhs[0][1]},
		{-lhs[1][0], lhs[0][0]},
	}
}

func (lhs Mat2[T]) String() string {
	return fmt.Sprintf("Mat2[%v %v; %v %v]",
		lhs[0][0], lhs[0][1],
		lhs[1][0], lhs[1][1],
	)
}
