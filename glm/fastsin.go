package glm

import (
	"math"
	"unsafe"

	"golang.org/x/mobile/exp/f32"
)

// Rad is an angle in radians.
type Rad float64

func sincos[F Float](r Rad) (s, c F) {
	if unsafe.Sizeof(s) == 4 {
		return F(f32.Sin(float32(r))), F(f32.Cos(float32(r)))
	}

	fs, fc := math.Sincos(float64(r))
	return F(fs), F(fc)
}

func tan[F Float](r Rad) F {
	if unsafe.Sizeof(F(0)) == 4 {
		return F(f32.Tan(float32(r)))
	}

	return F(math.Tan(float64(r)))
}
