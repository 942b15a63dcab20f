package glm

import "fmt"

// Mat3 is a 3x3 matrix in row major order, m[row][col].
type Mat3[T Numeric] [3]Vec3[T]

func Mat3FromRows[T Numeric](r0, r1, r2 Vec3[T]) Mat3[T] {
	return Mat3[T]{r0, r1, r2}
}

func Mat3FromColumns[T Numeric](c0, c1, c2 Vec3[T]) Mat3[T] {
	return Mat3[T]{
		{c0[0], c1[0], c2[0]},
		{c0[1], c1[1], c2[1]},
		{c0[2], c1[2], c2[2]},
	}
}

func IdentityMat3[T Numeric]() Mat3[T] {
	return Mat3[T]{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

func TranslationMat3[T Numeric](x, y T) Mat3[T] {
	return Mat3[T]{
		{1, 0, x},
		{0, 1, y},
		{0, 0, 1},
	}
}

func RotationMat3[F Float](angle Rad) Mat3[F] {
	s, c := sincos[F](angle)

	return Mat3[F]{
		{c, -s, 0},
		{s, c, 0},
		{0, 0, 1},
	}
}

func ScaleMat3[T Numeric](x, y T) Mat3[T] {
	return Mat3[T]{
		{x, 0, 0},
		{0, y, 0},
		{0, 0, 1},
	}
}

func (lhs Mat3[T]) Translate(x, y T) Mat3[T] {
	return lhs.Mul(TranslationMat3(x, y))
}

func (lhs Mat3[T]) Scale(x, y T) Mat3[T] {
	return lhs.Mul(ScaleMat3(x, y))
}

// RotateMat3 is the rotating counterpart of Translate and Scale. It needs a
// float scalar and is therefore a function.
func RotateMat3[F Float](m Mat3[F], angle Rad) Mat3[F] {
	return m.Mul(RotationMat3[F](angle))
}

func (lhs Mat3[T]) Rows() [3]Vec3[T] {
	return lhs
}

func (lhs Mat3[T]) Columns() [3]Vec3[T] {
	return [3]Vec3[T]{
		{lhs[0][0], lhs[1][0], lhs[2][0]},
		{lhs[0][1], lhs[1][1], lhs[2][1]},
		{lhs[0][2], lhs[1][2], lhs[2][2]},
	}
}

// Transpose swaps the matrix in place along its diagonal.
func (lhs *Mat3[T]) Transpose() {
	// original
	// 00 01 02
	// 10 11 12
	// 20 21 22

	// transposed
	// 00 10 20
	// 01 11 21
	// 02 12 22

	lhs[0][1], lhs[1][0] = lhs[1][0], lhs[0][1]
	lhs[0][2], lhs[2][0] = lhs[2][0], lhs[0][2]
	lhs[1][2], lhs[2][1] = lhs[2][1], lhs[1][2]
}

func (lhs Mat3[T]) Add(rhs Mat3[T]) Mat3[T] {
	return Mat3[T]{
		lhs[0].Add(rhs[0]),
		lhs[1].Add(rhs[1]),
		lhs[2].Add(rhs[2]),
	}
}

func (lhs Mat3[T]) Sub(rhs Mat3[T]) Mat3[T] {
	return Mat3[T]{
		lhs[0].Sub(rhs[0]),
		lhs[1].Sub(rhs[1]),
		lhs[2].Sub(rhs[2]),
	}
}

func (lhs Mat3[T]) Mul(rhs Mat3[T]) Mat3[T] {
	r := lhs.Rows()
	c := rhs.Columns()

	return Mat3[T]{
		{r[0].Dot(c[0]), r[0].Dot(c[1]), r[0].Dot(c[2])},
		{r[1].Dot(c[0]), r[1].Dot(c[1]), r[1].Dot(c[2])},
		{r[2].Dot(c[0]), r[2].Dot(c[1]), r[2].Dot(c[2])},
	}
}

// Transform multiplies the matrix with rhs as a column vector.
func (lhs Mat3[T]) Transform(rhs Vec3[T]) Vec3[T] {
	return Vec3[T]{
		lhs[0].Dot(rhs),
		lhs[1].Dot(rhs),
		lhs[2].Dot(rhs),
	}
}

func (lhs Mat3[T]) MulScalar(s T) Mat3[T] {
	return Mat3[T]{
		lhs[0].MulScalar(s),
		lhs[1].MulScalar(s),
		lhs[2].MulScalar(s),
	}
}

func (lhs Mat3[T]) DivScalar(s T) Mat3[T] {
	return Mat3[T]{
		lhs[0].DivScalar(s),
		lhs[1].DivScalar(s),
		lhs[2].DivScalar(s),
	}
}

func (lhs Mat3[T]) Neg() Mat3[T] {
	return Mat3[T]{lhs[0].Neg(), lhs[1].Neg(), lhs[2].Neg()}
}

func (lhs Mat3[T]) IsZero() bool {
	return lhs == Mat3[T]{}
}

func (lhs Mat3[T]) determinant() T {
	return lhs[0][0]*lhs[1][1]*lhs[2][2] +
		lhs[0][1]*lhs[1][2]*lhs[2][0] +
		lhs[0][2]*lhs[1][0]*lhs[2][1] -
		lhs[0][0]*lhs[1][2]*lhs[2][1] -
		lhs[0][1]*lhs[1][0]*lhs[2][2] -
		lhs[0][2]*lhs[1][1]*lhs[2][0]
}

func (lhs Mat3[T]) cofactor() Mat3[T] {
	return Mat3[T]{
		{
			lhs[1][1]*lhs[2][2] - lhs[1][2]*lhs[2][1],
			lhs[0][2]*lhs[2][1] - lhs[0][1]*lhs[2][2],
			lhs[0][1]*lhs[1][2] - lhs[0][2]*lhs[1][1],
		},
		{
			lhs[1][2]*lhs[2][0] - lhs[1][0]*lhs[2][2],
			lhs[0][0]*lhs[2][2] - lhs[0][2]*lhs[2][0],
			lhs[0][2]*lhs[1][0] - lhs[0][0]*lhs[1][2],
		},
		{
			lhs[1][0]*lhs[2][1] - lhs[1][1]*lhs[2][0],
			lhs[0][1]*lhs[2][0] - lhs[0][0]*lhs[2][1],
			lhs[0][0]*lhs[1][1] - lhs[0][1]*lhs[1][0],
		},
	}
}

func (lhs Mat3[T]) String() string {
	return fmt.Sprintf("Mat3[%v %v %v; %v %v %v; %v %v %v]",
		lhs[0][0], lhs[0][1], lhs[0][2],
		lhs[1][0], lhs[1][1], lhs[1][2],
		lhs[2][0], lhs[2][1], lhs[2][2],
	)
}
