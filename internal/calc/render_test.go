package calc

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleResults(t *testing.T) []Result {
	t.Helper()

	doc := &Document{
		Jobs: []Job{
			{Name: "dot", Op: OpDot, Size: 2, Scalar: ScalarFloat64, A: []float64{1, 2}, B: []float64{3, 4}},
			{Name: "transpose", Op: OpTranspose, Size: 2, Scalar: ScalarInt64, A: []float64{1, 2, 3, 4}},
		},
	}

	results, err := Run(doc)
	require.NoError(t, err)
	return results
}

func TestRenderText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, sampleResults(t), OutputText))

	expected := "dot (dot): 11\ntranspose (transpose): Mat2[1 3; 2 4]\n"
	assert.Equal(t, expected, buf.String())
}

func TestRenderYAML(t *testing.T) {
	results := sampleResults(t)

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, results, OutputYAML))
	assert.Contains(t, buf.String(), "values: [")

	var decoded []Result
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 2)

	for idx := range results {
		results[idx].Text = ""
	}

	assert.Equal(t, results, decoded)
}

func TestRenderUnknownFormat(t *testing.T) {
	err := Render(&bytes.Buffer{}, nil, "json")
	assert.ErrorIs(t, err, ErrUnknownOutput)
}
