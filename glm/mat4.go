package glm

import (
	"fmt"
	"strings"
)

// Mat4 is a 4x4 matrix in row major order, m[row][col].
type Mat4[T Numeric] [4]Vec4[T]

// Mat4Of builds a matrix from a row major array literal.
func Mat4Of[T Numeric](rows [4][4]T) Mat4[T] {
	return Mat4[T]{rows[0], rows[1], rows[2], rows[3]}
}

func Mat4FromRows[T Numeric](r0, r1, r2, r3 Vec4[T]) Mat4[T] {
	return Mat4[T]{r0, r1, r2, r3}
}

func Mat4FromColumns[T Numeric](c0, c1, c2, c3 Vec4[T]) Mat4[T] {
	return Mat4[T]{
		{c0[0], c1[0], c2[0], c3[0]},
		{c0[1], c1[1], c2[1], c3[1]},
		{c0[2], c1[2], c2[2], c3[2]},
		{c0[3], c1[3], c2[3], c3[3]},
	}
}

// Mat4FromQuaternion builds the rotation matrix of the unit quaternion
// with vector part v and scalar part s.
func Mat4FromQuaternion[F Float](v Vec3[F], s F) Mat4[F] {
	x2 := v[0] + v[0]
	y2 := v[1] + v[1]
	z2 := v[2] + v[2]

	xx2 := x2 * v[0]
	xy2 := x2 * v[1]
	xz2 := x2 * v[2]

	yy2 := y2 * v[1]
	yz2 := y2 * v[2]
	zz2 := z2 * v[2]

	sy2 := y2 * s
	sz2 := z2 * s
	sx2 := x2 * s

	return Mat4[F]{
		{1 - yy2 - zz2, xy2 - sz2, xz2 + sy2, 0},
		{xy2 + sz2, 1 - xx2 - zz2, yz2 - sx2, 0},
		{xz2 - sy2, yz2 + sx2, 1 - xx2 - yy2, 0},
		{0, 0, 0, 1},
	}
}

func IdentityMat4[T Numeric]() Mat4[T] {
	return Mat4[T]{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

func TranslationMat4[T Numeric](x, y, z T) Mat4[T] {
	return Mat4[T]{
		{1, 0, 0, x},
		{0, 1, 0, y},
		{0, 0, 1, z},
		{0, 0, 0, 1},
	}
}

func RotationXMat4[F Float](angle Rad) Mat4[F] {
	s, c := sincos[F](angle)

	return Mat4[F]{
		{1, 0, 0, 0},
		{0, c, -s, 0},
		{0, s, c, 0},
		{0, 0, 0, 1},
	}
}

func RotationYMat4[F Float](angle Rad) Mat4[F] {
	s, c := sincos[F](angle)

	return Mat4[F]{
		{c, 0, s, 0},
		{0, 1, 0, 0},
		{-s, 0, c, 0},
		{0, 0, 0, 1},
	}
}

func RotationZMat4[F Float](angle Rad) Mat4[F] {
	s, c := sincos[F](angle)

	return Mat4[F]{
		{c, -s, 0, 0},
		{s, c, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

func ScaleMat4[T Numeric](x, y, z T) Mat4[T] {
	return Mat4[T]{
		{x, 0, 0, 0},
		{0, y, 0, 0},
		{0, 0, z, 0},
		{0, 0, 0, 1},
	}
}

func (lhs Mat4[T]) Scale(x, y, z T) Mat4[T] {
	return lhs.Mul(ScaleMat4(x, y, z))
}

func (lhs Mat4[T]) Translate(x, y, z T) Mat4[T] {
	return lhs.Mul(TranslationMat4(x, y, z))
}

func RotateXMat4[F Float](m Mat4[F], angle Rad) Mat4[F] {
	return m.Mul(RotationXMat4[F](angle))
}

func RotateYMat4[F Float](m Mat4[F], angle Rad) Mat4[F] {
	return m.Mul(RotationYMat4[F](angle))
}

func RotateZMat4[F Float](m Mat4[F], angle Rad) Mat4[F] {
	return m.Mul(RotationZMat4[F](angle))
}

func (lhs Mat4[T]) Rows() [4]Vec4[T] {
	return lhs
}

func (lhs Mat4[T]) Columns() [4]Vec4[T] {
	return [4]Vec4[T]{
		{lhs[0][0], lhs[1][0], lhs[2][0], lhs[3][0]},
		{lhs[0][1], lhs[1][1], lhs[2][1], lhs[3][1]},
		{lhs[0][2], lhs[1][2], lhs[2][2], lhs[3][2]},
		{lhs[0][3], lhs[1][3], lhs[2][3], lhs[3][3]},
	}
}

// Transpose swaps the matrix in place along its diagonal.
func (lhs *Mat4[T]) Transpose() {
	lhs[0][1], lhs[1][0] = lhs[1][0], lhs[0][1]
	lhs[0][2], lhs[2][0] = lhs[2][0], lhs[0][2]
	lhs[0][3], lhs[3][0] = lhs[3][0], lhs[0][3]
	lhs[1][2], lhs[2][1] = lhs[2][1], lhs[1][2]
	lhs[1][3], lhs[3][1] = lhs[3][1], lhs[1][3]
	lhs[2][3], lhs[3][2] = lhs[3][2], lhs[2][3]
}

func (lhs Mat4[T]) Add(rhs Mat4[T]) Mat4[T] {
	return Mat4[T]{
		lhs[0].Add(rhs[0]),
		lhs[1].Add(rhs[1]),
		lhs[2].Add(rhs[2]),
		lhs[3].Add(rhs[3]),
	}
}

func (lhs Mat4[T]) Sub(rhs Mat4[T]) Mat4[T] {
	return Mat4[T]{
		lhs[0].Sub(rhs[0]),
		lhs[1].Sub(rhs[1]),
		lhs[2].Sub(rhs[2]),
		lhs[3].Sub(rhs[3]),
	}
}

func (lhs Mat4[T]) Mul(rhs Mat4[T]) Mat4[T] {
	r := lhs.Rows()
	c := rhs.Columns()

	return Mat4[T]{
		{r[0].Dot(c[0]), r[0].Dot(c[1]), r[0].Dot(c[2]), r[0].Dot(c[3])},
		{r[1].Dot(c[0]), r[1].Dot(c[1]), r[1].Dot(c[2]), r[1].Dot(c[3])},
		{r[2].Dot(c[0]), r[2].Dot(c[1]), r[2].Dot(c[2]), r[2].Dot(c[3])},
		{r[3].Dot(c[0]), r[3].Dot(c[1]), r[3].Dot(c[2]), r[3].Dot(c[3])},
	}
}

// Transform multiplies the matrix with rhs as a column vector.
func (lhs Mat4[T]) Transform(rhs Vec4[T]) Vec4[T] {
	return Vec4[T]{
		lhs[0].Dot(rhs),
		lhs[1].Dot(rhs),
		lhs[2].Dot(rhs),
		lhs[3].Dot(rhs),
	}
}

func (lhs Mat4[T]) MulScalar(s T) Mat4[T] {
	return Mat4[T]{
		lhs[0].MulScalar(s),
		lhs[1].MulScalar(s),
		lhs[2].MulScalar(s),
		lhs[3].MulScalar(s),
	}
}

func (lhs Mat4[T]) DivScalar(s T) Mat4[T] {
	return Mat4[T]{
		lhs[0].DivScalar(s),
		lhs[1].DivScalar(s),
		lhs[2].DivScalar(s),
		lhs[3].DivScalar(s),
	}
}

func (lhs Mat4[T]) Neg() Mat4[T] {
	return Mat4[T]{lhs[0].Neg(), lhs[1].Neg(), lhs[2].Neg(), lhs[3].Neg()}
}

func (lhs Mat4[T]) IsZero() bool {
	return lhs == Mat4[T]{}
}

// determinant is the full 24 term Leibniz expansion, grouped by the
// entry of the last row.
func (lhs Mat4[T]) determinant() T {
	return lhs[0][3]*lhs[1][2]*lhs[2][1]*lhs[3][0] -
		lhs[0][2]*lhs[1][3]*lhs[2][1]*lhs[3][0] -
		lhs[0][3]*lhs[1][1]*lhs[2][2]*lhs[3][0] +
		lhs[0][1]*lhs[1][3]*lhs[2][2]*lhs[3][0] +
		lhs[0][2]*lhs[1][1]*lhs[2][3]*lhs[3][0] -
		lhs[0][1]*lhs[1][2]*lhs[2][3]*lhs[3][0] -
		lhs[0][3]*lhs[1][2]*lhs[2][0]*lhs[3][1] +
		lhs[0][2]*lhs[1][3]*lhs[2][0]*lhs[3][1] +
		lhs[0][3]*lhs[1][0]*lhs[2][2]*lhs[3][1] -
		lhs[0][0]*lhs[1][3]*lhs[2][2]*lhs[3][1] -
		lhs[0][2]*lhs[1][0]*lhs[2][3]*lhs[3][1] +
		lhs[0][0]*lhs[1][2]*lhs[2][3]*lhs[3][1] +
		lhs[0][3]*lhs[1][1]*lhs[2][0]*lhs[3][2] -
		lhs[0][1]*lhs[1][3]*lhs[2][0]*lhs[3][2] -
		lhs[0][3]*lhs[1][0]*lhs[2][1]*lhs[3][2] +
		lhs[0][0]*lhs[1][3]*lhs[2][1]*lhs[3][2] +
		lhs[0][1]*lhs[1][0]*lhs[2][3]*lhs[3][2] -
		lhs[0][0]*lhs[1][1]*lhs[2][3]*lhs[3][2] -
		lhs[0][2]*lhs[1][1]*lhs[2][0]*lhs[3][3] +
		lhs[0][1]*lhs[1][2]*lhs[2][0]*lhs[3][3] +
		lhs[0][2]*lhs[1][0]*lhs[2][1]*lhs[3][3] -
		lhs[0][0]*lhs[1][2]*lhs[2][1]*lhs[3][3] -
		lhs[0][1]*lhs[1][0]*lhs[2][2]*lhs[3][3] +
		lhs[0][0]*lhs[1][1]*lhs[2][2]*lhs[3][3]
}

func (lhs Mat4[T]) cofactor() Mat4[T] {
	return Mat4[T]{
		{
			lhs[1][2]*lhs[2][3]*lhs[3][1] -
				lhs[1][3]*lhs[2][2]*lhs[3][1] +
				lhs[1][3]*lhs[2][1]*lhs[3][2] -
				lhs[1][1]*lhs[2][3]*lhs[3][2] -
				lhs[1][2]*lhs[2][1]*lhs[3][3] +
				lhs[1][1]*lhs[2][2]*lhs[3][3],
			lhs[0][3]*lhs[2][2]*lhs[3][1] -
				lhs[0][2]*lhs[2][3]*lhs[3][1] -
				lhs[0][3]*lhs[2][1]*lhs[3][2] +
				lhs[0][1]*lhs[2][3]*lhs[3][2] +
				lhs[0][2]*lhs[2][1]*lhs[3][3] -
				lhs[0][1]*lhs[2][2]*lhs[3][3],
			lhs[0][2]*lhs[1][3]*lhs[3][1] -
				lhs[0][3]*lhs[1][2]*lhs[3][1] +
				lhs[0][3]*lhs[1][1]*lhs[3][2] -
				lhs[0][1]*lhs[1][3]*lhs[3][2] -
				lhs[0][2]*lhs[1][1]*lhs[3][3] +
				lhs[0][1]*lhs[1][2]*lhs[3][3],
			lhs[0][3]*lhs[1][2]*lhs[2][1] -
				lhs[0][2]*lhs[1][3]*lhs[2][1] -
				lhs[0][3]*lhs[1][1]*lhs[2][2] +
				lhs[0][1]*lhs[1][3]*lhs[2][2] +
				lhs[0][2]*lhs[1][1]*lhs[2][3] -
				lhs[0][1]*lhs[1][2]*lhs[2][3],
		},
		{
			lhs[1][3]*lhs[2][2]*lhs[3][0] -
				lhs[1][2]*lhs[2][3]*lhs[3][0] -
				lhs[1][3]*lhs[2][0]*lhs[3][2] +
				lhs[1][0]*lhs[2][3]*lhs[3][2] +
				lhs[1][2]*lhs[2][0]*lhs[3][3] -
				lhs[1][0]*lhs[2][2]*lhs[3][3],
			lhs[0][2]*lhs[2][3]*lhs[3][0] -
				lhs[0][3]*lhs[2][2]*lhs[3][0] +
				lhs[0][3]*lhs[2][0]*lhs[3][2] -
				lhs[0][0]*lhs[2][3]*lhs[3][2] -
				lhs[0][2]*lhs[2][0]*lhs[3][3] +
				lhs[0][0]*lhs[2][2]*lhs[3][3],
			lhs[0][3]*lhs[1][2]*lhs[3][0] -
				lhs[0][2]*lhs[1][3]*lhs[3][0] -
				lhs[0][3]*lhs[1][0]*lhs[3][2] +
				lhs[0][0]*lhs[1][3]*lhs[3][2] +
				lhs[0][2]*lhs[1][0]*lhs[3][3] -
				lhs[0][0]*lhs[1][2]*lhs[3][3],
			lhs[0][2]*lhs[1][3]*lhs[2][0] -
				lhs[0][3]*lhs[1][2]*lhs[2][0] +
				lhs[0][3]*lhs[1][0]*lhs[2][2] -
				lhs[0][0]*lhs[1][3]*lhs[2][2] -
				lhs[0][2]*lhs[1][0]*lhs[2][3] +
				lhs[0][0]*lhs[1][2]*lhs[2][3],
		},
		{
			lhs[1][1]*lhs[2][3]*lhs[3][0] -
				lhs[1][3]*lhs[2][1]*lhs[3][0] +
				lhs[1][3]*lhs[2][0]*lhs[3][1] -
				lhs[1][0]*lhs[2][3]*lhs[3][1] -
				lhs[1][1]*lhs[2][0]*lhs[3][3] +
				lhs[1][0]*lhs[2][1]*lhs[3][3],
			lhs[0][3]*lhs[2][1]*lhs[3][0] -
				lhs[0][1]*lhs[2][3]*lhs[3][0] -
				lhs[0][3]*lhs[2][0]*lhs[3][1] +
				lhs[0][0]*lhs[2][3]*lhs[3][1] +
				lhs[0][1]*lhs[2][0]*lhs[3][3] -
				lhs[0][0]*lhs[2][1]*lhs[3][3],
			lhs[0][1]*lhs[1][3]*lhs[3][0] -
				lhs[0][3]*lhs[1][1]*lhs[3][0] +
				lhs[0][3]*lhs[1][0]*lhs[3][1] -
				lhs[0][0]*lhs[1][3]*lhs[3][1] -
				lhs[0][1]*lhs[1][0]*lhs[3][3] +
				lhs[0][0]*lhs[1][1]*lhs[3][3],
			lhs[0][3]*lhs[1][1]*lhs[2][0] -
				lhs[0][1]*lhs[1][3]*lhs[2][0] -
				lhs[0][3]*lhs[1][0]*lhs[2][1] +
				lhs[0][0]*lhs[1][3]*lhs[2][1] +
				lhs[0][1]*lhs[1][0]*lhs[2][3] -
				lhs[0][0]*lhs[1][1]*lhs[2][3],
		},
		{
			lhs[1][2]*lhs[2][1]*lhs[3][0] -
				lhs[1][1]*lhs[2][2]*lhs[3][0] -
				lhs[1][2]*lhs[2][0]*lhs[3][1] +
				lhs[1][0]*lhs[2][2]*lhs[3][1] +
				lhs[1][1]*lhs[2][0]*lhs[3][2] -
				lhs[1][0]*lhs[2][1]*lhs[3][2],
			lhs[0][1]*lhs[2][2]*lhs[3][0] -
				lhs[0][2]*lhs[2][1]*lhs[3][0] +
				lhs[0][2]*lhs[2][0]*lhs[3][1] -
				lhs[0][0]*lhs[2][2]*lhs[3][1] -
				lhs[0][1]*lhs[2][0]*lhs[3][2] +
				lhs[0][0]*lhs[2][1]*lhs[3][2],
			lhs[0][2]*lhs[1][1]*lhs[3][0] -
				lhs[0][1]*lhs[1][2]*lhs[3][0] -
				lhs[0][2]*lhs[1][0]*lhs[3][1] +
				lhs[0][0]*lhs[1][2]*lhs[3][1] +
				lhs[0][1]*lhs[1][0]*lhs[3][2] -
				lhs[0][0]*lhs[1][1]*lhs[3][2],
			lhs[0][1]*lhs[1][2]*lhs[2][0] -
				lhs[0][2]*lhs[1][1]*lhs[2][0] +
				lhs[0][2]*lhs[1][0]*lhs[2][1] -
				lhs[0][0]*lhs[1][2]*lhs[2][1] -
				lhs[0][1]*lhs[1][0]*lhs[2][2] +
				lhs[0][0]*lhs[1][1]*lhs[2][2],
		},
	}
}

func (lhs Mat4[T]) String() string {
	var sb strings.Builder

	sb.WriteString("Mat4[")
	for row := range lhs {
		if row > 0 {
			sb.WriteString("; ")
		}

		fmt.Fprintf(&sb, "%v %v %v %v", lhs[row][0], lhs[row][1], lhs[row][2], lhs[row][3])
	}
	sb.WriteString("]")

	return sb.String()
}
