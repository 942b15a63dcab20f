package glm

// Vector is the method set shared by Vec2, Vec3 and Vec4 over the scalar T.
// V is the implementing vector type itself.
type Vector[T Numeric, V any] interface {
	Dot(rhs V) T
	Add(rhs V) V
	Sub(rhs V) V
	Mul(rhs V) V
	Div(rhs V) V
	MulScalar(s T) V
	DivScalar(s T) V
	Neg() V
}

// FloatVector is a Vector over a Float scalar.
type FloatVector[F Float, V any] interface {
	Vector[F, V]
}

// Length returns the euclidean length of v.
func Length[F Float, V FloatVector[F, V]](v V) F {
	return Sqrt(v.Dot(v))
}

// Normalize returns v divided by its length. A zero vector yields NaN
// components.
func Normalize[F Float, V FloatVector[F, V]](v V) V {
	return v.DivScalar(Length[F, V](v))
}

// Distance returns the length of lhs - rhs.
func Distance[F Float, V FloatVector[F, V]](lhs, rhs V) F {
	return Length[F, V](lhs.Sub(rhs))
}

type scalable[T Numeric, X any] interface {
	MulScalar(s T) X
}

// Scale multiplies every component of the vector or matrix x by k.
func Scale[T Numeric, X scalable[T, X]](k T, x X) X {
	return x.MulScalar(k)
}
