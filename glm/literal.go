package glm

import (
	"errors"
	"fmt"
)

var (
	// ErrArity is returned when the arguments of a literal do not provide a
	// usable number of components.
	ErrArity = errors.New("glm: wrong number of components")

	// ErrArgument is returned for literal arguments that are neither a
	// scalar nor a vector of the target scalar type.
	ErrArgument = errors.New("glm: unsupported literal argument")
)

// BuildVec2 assembles a Vec2 from scalars and vectors, see BuildVec4.
func BuildVec2[T Numeric](args ...any) (Vec2[T], error) {
	var v Vec2[T]
	err := buildVec(v[:], args)
	return v, err
}

// BuildVec3 assembles a Vec3 from scalars and vectors, see BuildVec4.
func BuildVec3[T Numeric](args ...any) (Vec3[T], error) {
	var v Vec3[T]
	err := buildVec(v[:], args)
	return v, err
}

// BuildVec4 assembles a Vec4 from the concatenated components of args.
// Arguments may be values of T, untyped int or float constants and
// vectors over T. A single component is broadcast to every lane, surplus
// components are dropped, so a larger vector truncates to its leading
// components.
func BuildVec4[T Numeric](args ...any) (Vec4[T], error) {
	var v Vec4[T]
	err := buildVec(v[:], args)
	return v, err
}

// BuildMat2 assembles a Mat2, see BuildMat4.
func BuildMat2[T Numeric](args ...any) (Mat2[T], error) {
	if m, ok := single[Mat2[T]](args); ok {
		return m, nil
	}

	var flat [4]T
	if err := buildMat(flat[:], 2, args); err != nil {
		return Mat2[T]{}, err
	}

	return Mat2[T]{
		{flat[0], flat[1]},
		{flat[2], flat[3]},
	}, nil
}

// BuildMat3 assembles a Mat3, see BuildMat4.
func BuildMat3[T Numeric](args ...any) (Mat3[T], error) {
	if m, ok := single[Mat3[T]](args); ok {
		return m, nil
	}

	var flat [9]T
	if err := buildMat(flat[:], 3, args); err != nil {
		return Mat3[T]{}, err
	}

	return Mat3[T]{
		{flat[0], flat[1], flat[2]},
		{flat[3], flat[4], flat[5]},
		{flat[6], flat[7], flat[8]},
	}, nil
}

// BuildMat4 assembles a Mat4. A single scalar fills every entry and a
// single Mat4 is returned unchanged. Four []any arguments are row
// specifications, each assembled like BuildVec4. Any other argument list
// must flatten to exactly 16 components in row major order.
func BuildMat4[T Numeric](args ...any) (Mat4[T], error) {
	if m, ok := single[Mat4[T]](args); ok {
		return m, nil
	}

	var flat [16]T
	if err := buildMat(flat[:], 4, args); err != nil {
		return Mat4[T]{}, err
	}

	return Mat4[T]{
		{flat[0], flat[1], flat[2], flat[3]},
		{flat[4], flat[5], flat[6], flat[7]},
		{flat[8], flat[9], flat[10], flat[11]},
		{flat[12], flat[13], flat[14], flat[15]},
	}, nil
}

// NewVec2 is like BuildVec2 but panics on invalid arguments.
func NewVec2[T Numeric](args ...any) Vec2[T] {
	return must(BuildVec2[T](args...))
}

// NewVec3 is like BuildVec3 but panics on invalid arguments.
func NewVec3[T Numeric](args ...any) Vec3[T] {
	return must(BuildVec3[T](args...))
}

// NewVec4 is like BuildVec4 but panics on invalid arguments.
func NewVec4[T Numeric](args ...any) Vec4[T] {
	return must(BuildVec4[T](args...))
}

// NewMat2 is like BuildMat2 but panics on invalid arguments.
func NewMat2[T Numeric](args ...any) Mat2[T] {
	return must(BuildMat2[T](args...))
}

// NewMat3 is like BuildMat3 but panics on invalid arguments.
func NewMat3[T Numeric](args ...any) Mat3[T] {
	return must(BuildMat3[T](args...))
}

// NewMat4 is like BuildMat4 but panics on invalid arguments.
func NewMat4[T Numeric](args ...any) Mat4[T] {
	return must(BuildMat4[T](args...))
}

func must[V any](value V, err error) V {
	if err != nil {
		panic(err)
	}

	return value
}

func single[M any](args []any) (M, bool) {
	if len(args) == 1 {
		m, ok := args[0].(M)
		return m, ok
	}

	var zero M
	return zero, false
}

func buildVec[T Numeric](dst []T, args []any) error {
	var buf [16]T

	components, err := flatten(buf[:0], args)
	if err != nil {
		return err
	}

	switch {
	case len(components) == 1:
		for idx := range dst {
			dst[idx] = components[0]
		}

	case len(components) >= len(dst):
		copy(dst, components)

	default:
		return fmt.Errorf("vec%d from %d components: %w", len(dst), len(components), ErrArity)
	}

	return nil
}

func buildMat[T Numeric](dst []T, n int, args []any) error {
	if rows, ok := rowSpecs(args, n); ok {
		for idx, row := range rows {
			if err := buildVec(dst[idx*n:(idx+1)*n], row); err != nil {
				return fmt.Errorf("row %d: %w", idx, err)
			}
		}

		return nil
	}

	var buf [16]T

	components, err := flatten(buf[:0], args)
	if err != nil {
		return err
	}

	switch len(components) {
	case 1:
		for idx := range dst {
			dst[idx] = components[0]
		}

	case len(dst):
		copy(dst, components)

	default:
		return fmt.Errorf("mat%d from %d components: %w", n, len(components), ErrArity)
	}

	return nil
}

func rowSpecs(args []any, n int) ([][]any, bool) {
	if len(args) != n {
		return nil, false
	}

	rows := make([][]any, n)
	for idx, arg := range args {
		row, ok := arg.([]any)
		if !ok {
			return nil, false
		}

		rows[idx] = row
	}

	return rows, true
}

func flatten[T Numeric](dst []T, args []any) ([]T, error) {
	for idx, arg := range args {
		switch value := arg.(type) {
		case T:
			dst = append(dst, value)
		case int:
			dst = append(dst, T(value))
		case float64:
			dst = append(dst, T(value))
		case Vec2[T]:
			dst = append(dst, value[:]...)
		case Vec3[T]:
			dst = append(dst, value[:]...)
		case Vec4[T]:
			dst = append(dst, value[:]...)
		default:
			return nil, fmt.Errorf("argument %d of type %T: %w", idx, arg, ErrArgument)
		}
	}

	return dst, nil
}
