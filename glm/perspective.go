package glm

import "math"

// Perspective returns the OpenGL style projection matrix for a vertical
// field of view fovY, mapping the view frustum onto clip space.
func Perspective[F Float](fovY Rad, aspect, near, far F) Mat4[F] {
	f := 1 / tan[F](fovY*0.5)

	return Mat4Of([4][4]F{
		{f / aspect, 0, 0, 0},
		{0, f, 0, 0},
		{0, 0, (far + near) / (near - far), (2 * far * near) / (near - far)},
		{0, 0, -1, 0},
	})
}

// LookAt returns the view matrix of a camera at eye looking at center.
func LookAt[F Float](eye, center, up Vec3[F]) Mat4[F] {
	f := Normalize[F](center.Sub(eye))
	s := Normalize[F](f.Cross(up))
	u := s.Cross(f)

	return Mat4Of([4][4]F{
		{s[0], s[1], s[2], -eye.Dot(s)},
		{u[0], u[1], u[2], -eye.Dot(u)},
		{-f[0], -f[1], -f[2], eye.Dot(f)},
		{0, 0, 0, 1},
	})
}

func DegToRad[T Numeric](deg T) Rad {
	return Rad(float64(deg) * (math.Pi / 180))
}

func RadToDeg[T Numeric](rad Rad) (deg T) {
	return T(rad * (180 / math.Pi))
}
