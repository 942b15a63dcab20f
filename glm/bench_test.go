package glm_test

import (
	"testing"

	"github.com/oliverbestmann/glsl/glm"
)

var (
	sinkMat4 glm.Mat4d
	sinkF64  float64
)

func BenchmarkDeterminantMat4(b *testing.B) {
	m := glm.Mat4d{{1, 0, 1, 2}, {1, 3, 3, 4}, {3, 2, 3, 5}, {1, 2, 3, 4}}

	for b.Loop() {
		sinkF64 = glm.Determinant[float64](m)
	}
}

func BenchmarkInverseMat4(b *testing.B) {
	m := glm.Mat4d{{1, 0, 1, 2}, {1, 3, 3, 4}, {3, 2, 3, 5}, {1, 2, 3, 4}}

	for b.Loop() {
		sinkMat4 = glm.Inverse[float64](m)
	}
}

func BenchmarkMulMat4(b *testing.B) {
	m := glm.Mat4d{{1, 0, 1, 2}, {1, 3, 3, 4}, {3, 2, 3, 5}, {1, 2, 3, 4}}

	for b.Loop() {
		sinkMat4 = m.Mul(m)
	}
}
