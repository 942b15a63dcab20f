package calc

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/oliverbestmann/glsl/glm"
)

const (
	OpAdd       = "add"
	OpSub       = "sub"
	OpMul       = "mul"
	OpScale     = "scale"
	OpDot       = "dot"
	OpCross     = "cross"
	OpTransform = "transform"
	OpVecMat    = "vecmat"
	OpTranspose = "transpose"
	OpLength    = "length"
	OpNormalize = "normalize"
	OpDistance  = "distance"
	OpDet       = "det"
	OpCofactor  = "cofactor"
	OpInverse   = "inverse"
)

const (
	KindScalar = "scalar"
	KindVector = "vector"
	KindMatrix = "matrix"
)

// Result is the outcome of a single job. Values holds the scalar, the
// vector components or the row major matrix entries.
type Result struct {
	Name   string    `yaml:"name"`
	Op     string    `yaml:"op"`
	Kind   string    `yaml:"kind"`
	Size   int       `yaml:"size"`
	Values []float64 `yaml:"values,flow"`

	// Text is the value formatted by the glm types
	Text string `yaml:"-"`
}

// Run evaluates all jobs of the document in order. It stops at the first
// failing job and returns the results computed so far.
func Run(doc *Document) ([]Result, error) {
	results := make([]Result, 0, len(doc.Jobs))

	for _, job := range doc.Jobs {
		result, err := Evaluate(job)
		if err != nil {
			return results, fmt.Errorf("job %q: %w", job.Name, err)
		}

		results = append(results, result)
	}

	return results, nil
}

// Evaluate runs a single job.
func Evaluate(job Job) (Result, error) {
	if err := job.validate(); err != nil {
		return Result{}, err
	}

	startTime := time.Now()

	var result Result
	var err error

	switch job.Scalar {
	case ScalarFloat32:
		result, err = evalFloat[float32](job)
	case ScalarFloat64:
		result, err = evalFloat[float64](job)
	default:
		result, err = evalInt[int64](job)
	}

	if err != nil {
		return Result{}, err
	}

	slog.Debug("Evaluated job",
		slog.String("name", job.Name),
		slog.String("op", job.Op),
		slog.String("scalar", job.Scalar),
		slog.Int("size", job.Size),
		slog.Duration("duration", time.Since(startTime)),
	)

	return result, nil
}

func evalFloat[F glm.Float](job Job) (Result, error) {
	switch job.Size {
	case 2:
		return evalFloatIn(space2[F](), job)
	case 3:
		return evalFloatIn(space3[F](), job)
	default:
		return evalFloatIn(space4[F](), job)
	}
}

func evalInt[T glm.Numeric](job Job) (Result, error) {
	switch job.Size {
	case 2:
		return evalIn(space2[T](), job)
	case 3:
		return evalIn(space3[T](), job)
	default:
		return evalIn(space4[T](), job)
	}
}

// evalFloatIn handles the operations that need a float scalar and defers
// everything else to evalIn.
func evalFloatIn[F glm.Float, V glm.FloatVector[F, V], M glm.FloatMatrix[F, M]](s space[F, V, M], job Job) (Result, error) {
	switch job.Op {
	case OpLength:
		a, err := s.vector("a", job.A)
		if err != nil {
			return Result{}, err
		}

		return newResult[F](job, KindScalar, glm.Length[F](a)), nil

	case OpNormalize:
		a, err := s.vector("a", job.A)
		if err != nil {
			return Result{}, err
		}

		return newResult[F](job, KindVector, glm.Normalize[F](a)), nil

	case OpDistance:
		a, b, err := vectors(s, job)
		if err != nil {
			return Result{}, err
		}

		return newResult[F](job, KindScalar, glm.Distance[F](a, b)), nil

	case OpDet, OpCofactor, OpInverse:
		a, err := s.matrix("a", job.A)
		if err != nil {
			return Result{}, err
		}

		switch job.Op {
		case OpDet:
			return newResult[F](job, KindScalar, glm.Determinant[F](a)), nil
		case OpCofactor:
			return newResult[F](job, KindMatrix, glm.Cofactor[F](a)), nil
		default:
			return newResult[F](job, KindMatrix, glm.Inverse[F](a)), nil
		}
	}

	return evalIn(s, job)
}

// evalIn handles the operations defined for every scalar type.
func evalIn[T glm.Numeric, V glm.Vector[T, V], M glm.Matrix[T, M]](s space[T, V, M], job Job) (Result, error) {
	switch job.Op {
	case OpAdd, OpSub, OpMul:
		if s.isMatrix(job.A) {
			a, b, err := matrices(s, job)
			if err != nil {
				return Result{}, err
			}

			var m M
			switch job.Op {
			case OpAdd:
				m = a.Add(b)
			case OpSub:
				m = a.Sub(b)
			default:
				m = a.Mul(b)
			}

			return newResult[T](job, KindMatrix, m), nil
		}

		a, b, err := vectors(s, job)
		if err != nil {
			return Result{}, err
		}

		var v V
		switch job.Op {
		case OpAdd:
			v = a.Add(b)
		case OpSub:
			v = a.Sub(b)
		default:
			v = a.Mul(b)
		}

		return newResult[T](job, KindVector, v), nil

	case OpScale:
		k := T(job.K)

		if s.isMatrix(job.A) {
			a, err := s.matrix("a", job.A)
			if err != nil {
				return Result{}, err
			}

			return newResult[T](job, KindMatrix, glm.Scale(k, a)), nil
		}

		a, err := s.vector("a", job.A)
		if err != nil {
			return Result{}, err
		}

		return newResult[T](job, KindVector, glm.Scale(k, a)), nil

	case OpDot:
		a, b, err := vectors(s, job)
		if err != nil {
			return Result{}, err
		}

		return newResult[T](job, KindScalar, a.Dot(b)), nil

	case OpCross:
		if s.cross == nil {
			return Result{}, fmt.Errorf("cross product of size %d: %w", s.size, ErrUnsupported)
		}

		a, b, err := vectors(s, job)
		if err != nil {
			return Result{}, err
		}

		// the 2d cross product embeds into 3d, report it as such
		result := newResult[T](job, KindVector, s.cross(a, b))
		result.Size = 3
		return result, nil

	case OpTransform:
		m, err := s.matrix("a", job.A)
		if err != nil {
			return Result{}, err
		}

		v, err := s.vector("b", job.B)
		if err != nil {
			return Result{}, err
		}

		return newResult[T](job, KindVector, s.transform(m, v)), nil

	case OpVecMat:
		v, err := s.vector("a", job.A)
		if err != nil {
			return Result{}, err
		}

		m, err := s.matrix("b", job.B)
		if err != nil {
			return Result{}, err
		}

		return newResult[T](job, KindVector, s.mulMat(v, m)), nil

	case OpTranspose:
		a, err := s.matrix("a", job.A)
		if err != nil {
			return Result{}, err
		}

		return newResult[T](job, KindMatrix, s.transpose(a)), nil

	case OpLength, OpNormalize, OpDistance, OpDet, OpCofactor, OpInverse:
		return Result{}, fmt.Errorf("%s on %s: %w", job.Op, job.Scalar, ErrFloatOnly)
	}

	return Result{}, fmt.Errorf("%q: %w", job.Op, ErrUnknownOp)
}

func vectors[T glm.Numeric, V glm.Vector[T, V], M glm.Matrix[T, M]](s space[T, V, M], job Job) (a, b V, err error) {
	if a, err = s.vector("a", job.A); err != nil {
		return
	}

	b, err = s.vector("b", job.B)
	return
}

func matrices[T glm.Numeric, V glm.Vector[T, V], M glm.Matrix[T, M]](s space[T, V, M], job Job) (a, b M, err error) {
	if a, err = s.matrix("a", job.A); err != nil {
		return
	}

	b, err = s.matrix("b", job.B)
	return
}

func operandError(name string, err error) error {
	return fmt.Errorf("operand %s: %w", name, err)
}

func newResult[T glm.Numeric](job Job, kind string, value any) Result {
	return Result{
		Name:   job.Name,
		Op:     job.Op,
		Kind:   kind,
		Size:   job.Size,
		Values: components[T](value),
		Text:   fmt.Sprint(value),
	}
}

// components flattens a scalar, vector or matrix over T into float64 values.
func components[T glm.Numeric](value any) []float64 {
	var values []T

	switch value := value.(type) {
	case T:
		values = []T{value}
	case glm.Vec2[T]:
		values = value[:]
	case glm.Vec3[T]:
		values = value[:]
	case glm.Vec4[T]:
		values = value[:]
	case glm.Mat2[T]:
		for _, row := range value {
			values = append(values, row[:]...)
		}
	case glm.Mat3[T]:
		for _, row := range value {
			values = append(values, row[:]...)
		}
	case glm.Mat4[T]:
		for _, row := range value {
			values = append(values, row[:]...)
		}
	default:
		panic(fmt.Sprintf("unexpected value of type %T", value))
	}

	out := make([]float64, len(values))
	for idx, value := range values {
		out[idx] = float64(value)
	}

	return out
}
