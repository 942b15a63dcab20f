package glm

// Matrix is the method set shared by Mat2, Mat3 and Mat4 over the scalar T.
// M is the implementing matrix type itself.
type Matrix[T Numeric, M any] interface {
	Add(rhs M) M
	Sub(rhs M) M
	Mul(rhs M) M
	MulScalar(s T) M
	DivScalar(s T) M
	Neg() M
}

// FloatMatrix is a Matrix over a Float scalar with closed form determinant
// and cofactor expansions.
type FloatMatrix[F Float, M any] interface {
	Matrix[F, M]

	determinant() F
	cofactor() M
}

// Determinant returns the determinant of m.
func Determinant[F Float, M FloatMatrix[F, M]](m M) F {
	return m.determinant()
}

// Cofactor returns the matrix of signed minors of m, already laid out as the
// adjugate: Cofactor(m)[i][j] is the signed minor of m without row j and
// column i. Dividing it by Determinant(m) yields the inverse directly.
func Cofactor[F Float, M FloatMatrix[F, M]](m M) M {
	return m.cofactor()
}

// Inverse returns Cofactor(m) / Determinant(m). There is no singularity
// check, a zero determinant produces infinite and NaN entries.
func Inverse[F Float, M FloatMatrix[F, M]](m M) M {
	return m.cofactor().DivScalar(m.determinant())
}
