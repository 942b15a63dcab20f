package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oliverbestmann/glsl/internal/calc"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer

	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestDetCommand(t *testing.T) {
	out, err := execute(t, "det", "--size", "2", "1", "2", "3", "4")
	require.NoError(t, err)
	assert.Equal(t, "det (det): -2\n", out)
}

func TestTransposeCommandYAML(t *testing.T) {
	out, err := execute(t, "--output", "yaml", "transpose", "--size", "2", "--scalar", "int64", "1", "2", "3", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "values: [1, 3, 2, 4]")
}

func TestInverseCommandRejectsInt(t *testing.T) {
	_, err := execute(t, "inverse", "--size", "2", "--scalar", "int64", "1", "2", "3", "4")
	assert.ErrorIs(t, err, calc.ErrFloatOnly)
}

func TestMatrixCommandInvalidValue(t *testing.T) {
	_, err := execute(t, "det", "--size", "2", "1", "x", "3", "4")
	assert.Error(t, err)
}

func TestEvalCommand(t *testing.T) {
	doc := `
defaults:
  output: yaml

jobs:
  - name: dot
    op: dot
    size: 3
    a: [1, 2, 3]
    b: [4, 5, 6]
`

	path := filepath.Join(t.TempDir(), "jobs.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	out, err := execute(t, "eval", "-f", path)
	require.NoError(t, err)
	assert.Contains(t, out, "name: dot")
	assert.Contains(t, out, "values: [32]")

	// the flag wins over the document defaults
	out, err = execute(t, "--output", "text", "eval", "-f", path)
	require.NoError(t, err)
	assert.Equal(t, "dot (dot): 32\n", out)
}

func TestInvalidLogLevel(t *testing.T) {
	_, err := execute(t, "--log-level", "loud", "det", "--size", "2", "1", "2", "3", "4")
	assert.Error(t, err)
}
