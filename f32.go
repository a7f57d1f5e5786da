package gfxmath

import "golang.org/x/image/math/f32"

// Conversions to and from the float32 types of golang.org/x/image/math/f32,
// the lingua franca of GPU-facing Go APIs. Each cast converts every
// component and returns an independent value. Note the f32 matrix types
// are row-major, so matrix casts transpose between the layouts.

func (v Vec2) F32() f32.Vec2 {
	return f32.Vec2{float32(v[0]), float32(v[1])}
}

func Vec2FromF32(v f32.Vec2) Vec2 {
	return Vec2{float64(v[0]), float64(v[1])}
}

func (v Vec3) F32() f32.Vec3 {
	return f32.Vec3{float32(v[0]), float32(v[1]), float32(v[2])}
}

func Vec3FromF32(v f32.Vec3) Vec3 {
	return Vec3{float64(v[0]), float64(v[1]), float64(v[2])}
}

func (v Vec4) F32() f32.Vec4 {
	return f32.Vec4{float32(v[0]), float32(v[1]), float32(v[2]), float32(v[3])}
}

func Vec4FromF32(v f32.Vec4) Vec4 {
	return Vec4{float64(v[0]), float64(v[1]), float64(v[2]), float64(v[3])}
}

// F32 converts to the row-major f32.Mat3.
func (m Mat3) F32() f32.Mat3 {
	return f32.Mat3{
		float32(m[0]), float32(m[3]), float32(m[6]),
		float32(m[1]), float32(m[4]), float32(m[7]),
		float32(m[2]), float32(m[5]), float32(m[8]),
	}
}

// Mat3FromF32 converts a row-major f32.Mat3 back to column-major Mat3.
func Mat3FromF32(m f32.Mat3) Mat3 {
	return Mat3Rows(
		float64(m[0]), float64(m[1]), float64(m[2]),
		float64(m[3]), float64(m[4]), float64(m[5]),
		float64(m[6]), float64(m[7]), float64(m[8]),
	)
}

// F32 converts to the row-major f32.Mat4.
func (m Mat4) F32() f32.Mat4 {
	t := m.Transpose()
	var out f32.Mat4
	for i, v := range t {
		out[i] = float32(v)
	}
	return out
}

// Mat4FromF32 converts a row-major f32.Mat4 back to column-major Mat4.
func Mat4FromF32(m f32.Mat4) Mat4 {
	var t Mat4
	for i, v := range m {
		t[i] = float64(v)
	}
	return t.Transpose()
}
