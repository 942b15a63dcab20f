package calc

import (
	"fmt"

	"github.com/oliverbestmann/glsl/glm"
)

// space bundles the vector and matrix types of one arity, so the
// evaluation can be written once for all of them.
type space[T glm.Numeric, V glm.Vector[T, V], M glm.Matrix[T, M]] struct {
	size int

	vec func(args ...any) (V, error)
	mat func(args ...any) (M, error)

	transform func(m M, v V) V
	mulMat    func(v V, m M) V
	transpose func(m M) M

	// nil if there is no cross product in this arity
	cross func(lhs, rhs V) glm.Vec3[T]
}

func space2[T glm.Numeric]() space[T, glm.Vec2[T], glm.Mat2[T]] {
	return space[T, glm.Vec2[T], glm.Mat2[T]]{
		size: 2,
		vec:  glm.BuildVec2[T],
		mat:  glm.BuildMat2[T],

		transform: func(m glm.Mat2[T], v glm.Vec2[T]) glm.Vec2[T] { return m.Transform(v) },
		mulMat:    func(v glm.Vec2[T], m glm.Mat2[T]) glm.Vec2[T] { return v.MulMat(m) },
		transpose: func(m glm.Mat2[T]) glm.Mat2[T] { m.Transpose(); return m },
		cross:     func(lhs, rhs glm.Vec2[T]) glm.Vec3[T] { return lhs.Cross(rhs) },
	}
}

func space3[T glm.Numeric]() space[T, glm.Vec3[T], glm.Mat3[T]] {
	return space[T, glm.Vec3[T], glm.Mat3[T]]{
		size: 3,
		vec:  glm.BuildVec3[T],
		mat:  glm.BuildMat3[T],

		transform: func(m glm.Mat3[T], v glm.Vec3[T]) glm.Vec3[T] { return m.Transform(v) },
		mulMat:    func(v glm.Vec3[T], m glm.Mat3[T]) glm.Vec3[T] { return v.MulMat(m) },
		transpose: func(m glm.Mat3[T]) glm.Mat3[T] { m.Transpose(); return m },
		cross:     func(lhs, rhs glm.Vec3[T]) glm.Vec3[T] { return lhs.Cross(rhs) },
	}
}

func space4[T glm.Numeric]() space[T, glm.Vec4[T], glm.Mat4[T]] {
	return space[T, glm.Vec4[T], glm.Mat4[T]]{
		size: 4,
		vec:  glm.BuildVec4[T],
		mat:  glm.BuildMat4[T],

		transform: func(m glm.Mat4[T], v glm.Vec4[T]) glm.Vec4[T] { return m.Transform(v) },
		mulMat:    func(v glm.Vec4[T], m glm.Mat4[T]) glm.Vec4[T] { return v.MulMat(m) },
		transpose: func(m glm.Mat4[T]) glm.Mat4[T] { m.Transpose(); return m },
	}
}

func (s space[T, V, M]) isMatrix(values []float64) bool {
	return len(values) == s.size*s.size
}

// vector builds a vector operand from exactly size values or a single
// broadcast value.
func (s space[T, V, M]) vector(name string, values []float64) (V, error) {
	if len(values) != s.size && len(values) != 1 {
		var zero V
		return zero, fmt.Errorf("operand %s: %d values for a vector of size %d: %w",
			name, len(values), s.size, ErrUnsupported)
	}

	v, err := s.vec(args[T](values)...)
	if err != nil {
		return v, operandError(name, err)
	}

	return v, nil
}

// matrix builds a matrix operand from size*size row major values or a
// single value filling every entry.
func (s space[T, V, M]) matrix(name string, values []float64) (M, error) {
	if len(values) != s.size*s.size && len(values) != 1 {
		var zero M
		return zero, fmt.Errorf("operand %s: %d values for a %dx%d matrix: %w",
			name, len(values), s.size, s.size, ErrUnsupported)
	}

	m, err := s.mat(args[T](values)...)
	if err != nil {
		return m, operandError(name, err)
	}

	return m, nil
}

func args[T glm.Numeric](values []float64) []any {
	out := make([]any, len(values))
	for idx, value := range values {
		out[idx] = T(value)
	}

	return out
}
