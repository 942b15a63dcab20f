// Package calc evaluates batches of vector and matrix operations described
// in YAML job documents.
package calc

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownOp   = errors.New("calc: unknown operation")
	ErrUnsupported = errors.New("calc: operation not supported for operands")
	ErrFloatOnly   = errors.New("calc: operation requires a float scalar")
	ErrInvalidJob  = errors.New("calc: invalid job")
)

const (
	ScalarFloat32 = "float32"
	ScalarFloat64 = "float64"
	ScalarInt64   = "int64"
)

// Document is the root of a job file.
type Document struct {
	Defaults Defaults `yaml:"defaults"`
	Jobs     []Job    `yaml:"jobs"`
}

// Defaults apply to every job that leaves the corresponding field empty.
type Defaults struct {
	Scalar string `yaml:"scalar"`
	Size   int    `yaml:"size"`
	Output string `yaml:"output"`
}

// Job is a single operation. Operands are flat, row major lists of numbers,
// a list of size entries is a vector, size*size entries a matrix and a
// single entry is broadcast to a vector.
type Job struct {
	Name   string    `yaml:"name"`
	Op     string    `yaml:"op"`
	Size   int       `yaml:"size"`
	Scalar string    `yaml:"scalar"`
	A      []float64 `yaml:"a,flow"`
	B      []float64 `yaml:"b,flow"`
	K      float64   `yaml:"k"`
}

// LoadDocument reads and parses the job file at path.
func LoadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read job file: %w", err)
	}

	return ParseDocument(data)
}

// ParseDocument parses a job document and applies its defaults to all jobs.
func ParseDocument(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse job file: %w", err)
	}

	for idx := range doc.Jobs {
		doc.Jobs[idx] = doc.Defaults.apply(doc.Jobs[idx])

		if doc.Jobs[idx].Name == "" {
			doc.Jobs[idx].Name = fmt.Sprintf("job-%d", idx+1)
		}
	}

	return &doc, nil
}

func (d Defaults) apply(job Job) Job {
	if job.Scalar == "" {
		job.Scalar = d.Scalar
	}

	if job.Scalar == "" {
		job.Scalar = ScalarFloat64
	}

	if job.Size == 0 {
		job.Size = d.Size
	}

	return job
}

func (j Job) validate() error {
	if j.Size < 2 || j.Size > 4 {
		return fmt.Errorf("size %d: %w", j.Size, ErrInvalidJob)
	}

	switch j.Scalar {
	case ScalarFloat32, ScalarFloat64, ScalarInt64:
	default:
		return fmt.Errorf("scalar %q: %w", j.Scalar, ErrInvalidJob)
	}

	if len(j.A) == 0 {
		return fmt.Errorf("missing operand a: %w", ErrInvalidJob)
	}

	if j.Scalar == ScalarInt64 {
		if err := checkIntegral("a", j.A); err != nil {
			return err
		}

		if err := checkIntegral("b", j.B); err != nil {
			return err
		}

		if err := checkIntegral("k", []float64{j.K}); err != nil {
			return err
		}
	}

	return nil
}

// checkIntegral rejects values that an int64 job could only hold truncated.
func checkIntegral(name string, values []float64) error {
	for idx, value := range values {
		if value != math.Trunc(value) || value < math.MinInt64 || value >= math.MaxInt64 {
			return fmt.Errorf("operand %s[%d]: %v is not an int64: %w", name, idx, value, ErrInvalidJob)
		}
	}

	return nil
}
