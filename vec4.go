package gfxmath

import "math"

// Vec4 is a 4-component vector (value type, stack-allocated).
type Vec4 [4]float64

// Vec4Point builds a homogeneous point (w=1) from a Vec3.
func Vec4Point(v Vec3) Vec4 {
	return Vec4{v[0], v[1], v[2], 1}
}

// Vec4Dir builds a homogeneous direction (w=0) from a Vec3.
func Vec4Dir(v Vec3) Vec4 {
	return Vec4{v[0], v[1], v[2], 0}
}

// XYZ drops the w component.
func (v Vec4) XYZ() Vec3 {
	return Vec3{v[0], v[1], v[2]}
}

func (a Vec4) Add(b Vec4) Vec4 {
	return Vec4{a[0] + b[0], a[1] + b[1], a[2] + b[2], a[3] + b[3]}
}

func (a Vec4) Sub(b Vec4) Vec4 {
	return Vec4{a[0] - b[0], a[1] - b[1], a[2] - b[2], a[3] - b[3]}
}

func (v Vec4) Neg() Vec4 {
	return Vec4{-v[0], -v[1], -v[2], -v[3]}
}

func (v Vec4) Scale(s float64) Vec4 {
	return Vec4{v[0] * s, v[1] * s, v[2] * s, v[3] * s}
}

func (a Vec4) Dot(b Vec4) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2] + a[3]*b[3]
}

func (v Vec4) Len() float64 {
	return math.Sqrt(v.Dot(v))
}

func (v Vec4) LenSq() float64 {
	return v.Dot(v)
}

func (v Vec4) Normalize() Vec4 {
	l := v.Len()
	if l < 1e-12 {
		return Vec4{}
	}
	return v.Scale(1 / l)
}

func (v Vec4) IsFinite() bool {
	return IsFinite(v[0]) && IsFinite(v[1]) && IsFinite(v[2]) && IsFinite(v[3])
}

func (a Vec4) Close(b Vec4) bool {
	return Close(a[0], b[0]) && Close(a[1], b[1]) && Close(a[2], b[2]) && Close(a[3], b[3])
}
