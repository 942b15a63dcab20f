package calc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name   string
		job    Job
		kind   string
		values []float64
		text   string
	}{
		{
			name:   "det 2x2",
			job:    Job{Op: OpDet, Size: 2, Scalar: ScalarFloat64, A: []float64{1, 2, 3, 4}},
			kind:   KindScalar,
			values: []float64{-2},
			text:   "-2",
		},
		{
			name:   "inverse 2x2",
			job:    Job{Op: OpInverse, Size: 2, Scalar: ScalarFloat64, A: []float64{4, 7, 2, 6}},
			kind:   KindMatrix,
			values: []float64{0.6, -0.7, -0.2, 0.4},
			text:   "Mat2[0.6 -0.7; -0.2 0.4]",
		},
		{
			name:   "cofactor 2x2",
			job:    Job{Op: OpCofactor, Size: 2, Scalar: ScalarFloat64, A: []float64{4, 7, 2, 6}},
			kind:   KindMatrix,
			values: []float64{6, -7, -2, 4},
		},
		{
			name:   "transpose int",
			job:    Job{Op: OpTranspose, Size: 3, Scalar: ScalarInt64, A: []float64{1, 2, 3, 4, 5, 6, 7, 8, 9}},
			kind:   KindMatrix,
			values: []float64{1, 4, 7, 2, 5, 8, 3, 6, 9},
		},
		{
			name:   "add vectors",
			job:    Job{Op: OpAdd, Size: 3, Scalar: ScalarInt64, A: []float64{1, 2, 3}, B: []float64{4, 5, 6}},
			kind:   KindVector,
			values: []float64{5, 7, 9},
			text:   "Vec3(5, 7, 9)",
		},
		{
			name:   "add broadcast",
			job:    Job{Op: OpAdd, Size: 3, Scalar: ScalarFloat32, A: []float64{1, 2, 3}, B: []float64{10}},
			kind:   KindVector,
			values: []float64{11, 12, 13},
		},
		{
			name:   "sub matrices",
			job:    Job{Op: OpSub, Size: 2, Scalar: ScalarInt64, A: []float64{5, 6, 7, 8}, B: []float64{1, 2, 3, 4}},
			kind:   KindMatrix,
			values: []float64{4, 4, 4, 4},
		},
		{
			name:   "mul matrices",
			job:    Job{Op: OpMul, Size: 2, Scalar: ScalarInt64, A: []float64{1, 2, 3, 4}, B: []float64{5, 6, 7, 8}},
			kind:   KindMatrix,
			values: []float64{19, 22, 43, 50},
		},
		{
			name:   "mul vectors",
			job:    Job{Op: OpMul, Size: 2, Scalar: ScalarInt64, A: []float64{1, 2}, B: []float64{3, 4}},
			kind:   KindVector,
			values: []float64{3, 8},
		},
		{
			name:   "scale vector",
			job:    Job{Op: OpScale, Size: 4, Scalar: ScalarFloat64, A: []float64{1, 2, 3, 4}, K: 2},
			kind:   KindVector,
			values: []float64{2, 4, 6, 8},
		},
		{
			name:   "scale matrix",
			job:    Job{Op: OpScale, Size: 2, Scalar: ScalarInt64, A: []float64{1, 2, 3, 4}, K: 3},
			kind:   KindMatrix,
			values: []float64{3, 6, 9, 12},
		},
		{
			name:   "dot",
			job:    Job{Op: OpDot, Size: 3, Scalar: ScalarInt64, A: []float64{1, 2, 3}, B: []float64{4, 5, 6}},
			kind:   KindScalar,
			values: []float64{32},
		},
		{
			name:   "cross 3d",
			job:    Job{Op: OpCross, Size: 3, Scalar: ScalarFloat64, A: []float64{1, 0, 0}, B: []float64{0, 1, 0}},
			kind:   KindVector,
			values: []float64{0, 0, 1},
		},
		{
			name:   "transform",
			job:    Job{Op: OpTransform, Size: 2, Scalar: ScalarInt64, A: []float64{1, 2, 3, 4}, B: []float64{5, 6}},
			kind:   KindVector,
			values: []float64{17, 39},
		},
		{
			name:   "vecmat",
			job:    Job{Op: OpVecMat, Size: 2, Scalar: ScalarInt64, A: []float64{5, 6}, B: []float64{1, 2, 3, 4}},
			kind:   KindVector,
			values: []float64{23, 34},
		},
		{
			name:   "length",
			job:    Job{Op: OpLength, Size: 2, Scalar: ScalarFloat64, A: []float64{3, 4}},
			kind:   KindScalar,
			values: []float64{5},
		},
		{
			name:   "length float32",
			job:    Job{Op: OpLength, Size: 2, Scalar: ScalarFloat32, A: []float64{3, 4}},
			kind:   KindScalar,
			values: []float64{5},
		},
		{
			name:   "normalize",
			job:    Job{Op: OpNormalize, Size: 2, Scalar: ScalarFloat64, A: []float64{3, 4}},
			kind:   KindVector,
			values: []float64{0.6, 0.8},
			text:   "Vec2(0.6, 0.8)",
		},
		{
			name:   "distance",
			job:    Job{Op: OpDistance, Size: 2, Scalar: ScalarFloat64, A: []float64{1, 1}, B: []float64{4, 5}},
			kind:   KindScalar,
			values: []float64{5},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.job.Name = tc.name

			result, err := Evaluate(tc.job)
			require.NoError(t, err)

			assert.Equal(t, tc.name, result.Name)
			assert.Equal(t, tc.job.Op, result.Op)
			assert.Equal(t, tc.kind, result.Kind)
			assert.Equal(t, tc.values, result.Values)

			if tc.text != "" {
				assert.Equal(t, tc.text, result.Text)
			}
		})
	}
}

func TestEvaluateCross2D(t *testing.T) {
	result, err := Evaluate(Job{Op: OpCross, Size: 2, Scalar: ScalarFloat64, A: []float64{1, 2}, B: []float64{3, 4}})
	require.NoError(t, err)

	assert.Equal(t, 3, result.Size)
	assert.Equal(t, []float64{0, 0, -2}, result.Values)
}

func TestEvaluateInverse4(t *testing.T) {
	job := Job{
		Op:     OpInverse,
		Size:   4,
		Scalar: ScalarFloat64,
		A:      []float64{2, 0, 0, 0, 0, 4, 0, 0, 0, 0, 8, 0, 0, 0, 0, 1},
	}

	result, err := Evaluate(job)
	require.NoError(t, err)

	assert.Equal(t, []float64{0.5, 0, 0, 0, 0, 0.25, 0, 0, 0, 0, 0.125, 0, 0, 0, 0, 1}, result.Values)
}

func TestEvaluateErrors(t *testing.T) {
	tests := []struct {
		name string
		job  Job
		err  error
	}{
		{"float op on int", Job{Op: OpDet, Size: 2, Scalar: ScalarInt64, A: []float64{1, 2, 3, 4}}, ErrFloatOnly},
		{"normalize on int", Job{Op: OpNormalize, Size: 2, Scalar: ScalarInt64, A: []float64{3, 4}}, ErrFloatOnly},
		{"unknown op", Job{Op: "pow", Size: 2, Scalar: ScalarFloat64, A: []float64{1, 2}}, ErrUnknownOp},
		{"cross 4d", Job{Op: OpCross, Size: 4, Scalar: ScalarFloat64, A: []float64{1}, B: []float64{2}}, ErrUnsupported},
		{"short vector", Job{Op: OpAdd, Size: 3, Scalar: ScalarFloat64, A: []float64{1, 2}, B: []float64{1, 2}}, ErrUnsupported},
		{"missing b", Job{Op: OpDot, Size: 2, Scalar: ScalarFloat64, A: []float64{1, 2}}, ErrUnsupported},
		{"det of vector", Job{Op: OpDet, Size: 3, Scalar: ScalarFloat64, A: []float64{1, 2, 3}}, ErrUnsupported},
		{"vector with matrix", Job{Op: OpAdd, Size: 2, Scalar: ScalarFloat64, A: []float64{1, 2, 3, 4}, B: []float64{1, 2}}, ErrUnsupported},
		{"size too large", Job{Op: OpDet, Size: 5, Scalar: ScalarFloat64, A: []float64{1}}, ErrInvalidJob},
		{"unknown scalar", Job{Op: OpDet, Size: 2, Scalar: "int8", A: []float64{1}}, ErrInvalidJob},
		{"missing a", Job{Op: OpDet, Size: 2, Scalar: ScalarFloat64}, ErrInvalidJob},
		{"fractional factor on int", Job{Op: OpScale, Size: 2, Scalar: ScalarInt64, A: []float64{2, 4}, K: 0.5}, ErrInvalidJob},
		{"fractional operand on int", Job{Op: OpAdd, Size: 2, Scalar: ScalarInt64, A: []float64{1.9, 2}, B: []float64{1, 1}}, ErrInvalidJob},
		{"fractional b on int", Job{Op: OpDot, Size: 2, Scalar: ScalarInt64, A: []float64{1, 2}, B: []float64{1, 0.25}}, ErrInvalidJob},
		{"int overflow", Job{Op: OpTranspose, Size: 2, Scalar: ScalarInt64, A: []float64{1e19, 0, 0, 1}}, ErrInvalidJob},
		{"int underflow", Job{Op: OpAdd, Size: 2, Scalar: ScalarInt64, A: []float64{-1e19, 0}, B: []float64{1, 1}}, ErrInvalidJob},
		{"nan on int", Job{Op: OpAdd, Size: 2, Scalar: ScalarInt64, A: []float64{math.NaN(), 0}, B: []float64{1, 1}}, ErrInvalidJob},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Evaluate(tc.job)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestEvaluateIntegralFloatsOnInt(t *testing.T) {
	result, err := Evaluate(Job{Op: OpScale, Size: 2, Scalar: ScalarInt64, A: []float64{2, -4}, K: 3})
	require.NoError(t, err)
	assert.Equal(t, []float64{6, -12}, result.Values)

	// fractional values stay valid for float scalars
	result, err = Evaluate(Job{Op: OpScale, Size: 2, Scalar: ScalarFloat64, A: []float64{2, 4}, K: 0.5})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2}, result.Values)
}

func TestRunStopsAtFirstError(t *testing.T) {
	doc := &Document{
		Jobs: []Job{
			{Name: "first", Op: OpDot, Size: 2, Scalar: ScalarFloat64, A: []float64{1, 2}, B: []float64{3, 4}},
			{Name: "second", Op: OpDet, Size: 2, Scalar: ScalarInt64, A: []float64{1, 2, 3, 4}},
			{Name: "third", Op: OpDot, Size: 2, Scalar: ScalarFloat64, A: []float64{1, 2}, B: []float64{3, 4}},
		},
	}

	results, err := Run(doc)
	require.ErrorIs(t, err, ErrFloatOnly)
	assert.Contains(t, err.Error(), `"second"`)

	require.Len(t, results, 1)
	assert.Equal(t, []float64{11}, results[0].Values)
}
