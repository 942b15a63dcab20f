package calc

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const jobDocument = `
defaults:
  scalar: float32
  size: 3

jobs:
  - name: cross
    op: cross
    a: [1, 0, 0]
    b: [0, 1, 0]

  - op: det
    size: 2
    scalar: float64
    a: [1, 2, 3, 4]

  - op: scale
    a: [1, 2, 3]
    k: 0.5
`

func TestParseDocument(t *testing.T) {
	doc, err := ParseDocument([]byte(jobDocument))
	require.NoError(t, err)
	require.Len(t, doc.Jobs, 3)

	cross := doc.Jobs[0]
	assert.Equal(t, "cross", cross.Name)
	assert.Equal(t, ScalarFloat32, cross.Scalar)
	assert.Equal(t, 3, cross.Size)
	assert.Equal(t, []float64{1, 0, 0}, cross.A)
	assert.Equal(t, []float64{0, 1, 0}, cross.B)

	det := doc.Jobs[1]
	assert.Equal(t, "job-2", det.Name)
	assert.Equal(t, ScalarFloat64, det.Scalar)
	assert.Equal(t, 2, det.Size)

	scale := doc.Jobs[2]
	assert.Equal(t, 0.5, scale.K)
}

func TestParseDocumentDefaultScalar(t *testing.T) {
	doc, err := ParseDocument([]byte("jobs:\n  - op: length\n    size: 2\n    a: [3, 4]\n"))
	require.NoError(t, err)
	require.Len(t, doc.Jobs, 1)

	assert.Equal(t, ScalarFloat64, doc.Jobs[0].Scalar)
}

func TestParseDocumentInvalid(t *testing.T) {
	_, err := ParseDocument([]byte("jobs: [1, 2"))
	assert.Error(t, err)
}

func TestLoadDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jobs.yaml")
	require.NoError(t, os.WriteFile(path, []byte(jobDocument), 0o644))

	doc, err := LoadDocument(path)
	require.NoError(t, err)

	results, err := Run(doc)
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, []float64{0, 0, 1}, results[0].Values)
	assert.Equal(t, []float64{-2}, results[1].Values)
	assert.Equal(t, []float64{0.5, 1, 1.5}, results[2].Values)
}

func TestLoadDocumentMissing(t *testing.T) {
	_, err := LoadDocument(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
