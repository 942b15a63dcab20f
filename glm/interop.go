package glm

import (
	imgf32 "golang.org/x/image/math/f32"
	"golang.org/x/mobile/exp/f32"
)

// Conversions to and from the float32 math types of golang.org/x/mobile and
// golang.org/x/image. Both store matrices in row major order, as glm does.

func MobileVec3[F Float](v Vec3[F]) f32.Vec3 {
	return f32.Vec3{float32(v[0]), float32(v[1]), float32(v[2])}
}

func MobileVec4[F Float](v Vec4[F]) f32.Vec4 {
	return f32.Vec4{float32(v[0]), float32(v[1]), float32(v[2]), float32(v[3])}
}

func MobileMat3[F Float](m Mat3[F]) f32.Mat3 {
	var out f32.Mat3
	for row := range m {
		out[row] = MobileVec3(m[row])
	}

	return out
}

func MobileMat4[F Float](m Mat4[F]) f32.Mat4 {
	var out f32.Mat4
	for row := range m {
		out[row] = MobileVec4(m[row])
	}

	return out
}

func Vec3FromMobile[F Float](v f32.Vec3) Vec3[F] {
	return Vec3[F]{F(v[0]), F(v[1]), F(v[2])}
}

func Vec4FromMobile[F Float](v f32.Vec4) Vec4[F] {
	return Vec4[F]{F(v[0]), F(v[1]), F(v[2]), F(v[3])}
}

func Mat3FromMobile[F Float](m f32.Mat3) Mat3[F] {
	var out Mat3[F]
	for row := range m {
		out[row] = Vec3FromMobile[F](m[row])
	}

	return out
}

func Mat4FromMobile[F Float](m f32.Mat4) Mat4[F] {
	var out Mat4[F]
	for row := range m {
		out[row] = Vec4FromMobile[F](m[row])
	}

	return out
}

func ImageVec2[F Float](v Vec2[F]) imgf32.Vec2 {
	return imgf32.Vec2{float32(v[0]), float32(v[1])}
}

func ImageVec3[F Float](v Vec3[F]) imgf32.Vec3 {
	return imgf32.Vec3{float32(v[0]), float32(v[1]), float32(v[2])}
}

func ImageVec4[F Float](v Vec4[F]) imgf32.Vec4 {
	return imgf32.Vec4{float32(v[0]), float32(v[1]), float32(v[2]), float32(v[3])}
}

// ImageMat3 flattens m, element (r, c) ends up at index 3*r + c.
func ImageMat3[F Float](m Mat3[F]) imgf32.Mat3 {
	var out imgf32.Mat3
	for row := range m {
		for col := range m[row] {
			out[3*row+col] = float32(m[row][col])
		}
	}

	return out
}

// ImageMat4 flattens m, element (r, c) ends up at index 4*r + c.
func ImageMat4[F Float](m Mat4[F]) imgf32.Mat4 {
	var out imgf32.Mat4
	for row := range m {
		for col := range m[row] {
			out[4*row+col] = float32(m[row][col])
		}
	}

	return out
}

func Vec2FromImage[F Float](v imgf32.Vec2) Vec2[F] {
	return Vec2[F]{F(v[0]), F(v[1])}
}

func Vec3FromImage[F Float](v imgf32.Vec3) Vec3[F] {
	return Vec3[F]{F(v[0]), F(v[1]), F(v[2])}
}

func Vec4FromImage[F Float](v imgf32.Vec4) Vec4[F] {
	return Vec4[F]{F(v[0]), F(v[1]), F(v[2]), F(v[3])}
}

func Mat3FromImage[F Float](m imgf32.Mat3) Mat3[F] {
	var out Mat3[F]
	for idx, value := range m {
		out[idx/3][idx%3] = F(value)
	}

	return out
}

func Mat4FromImage[F Float](m imgf32.Mat4) Mat4[F] {
	var out Mat4[F]
	for idx, value := range m {
		out[idx/4][idx%4] = F(value)
	}

	return out
}
