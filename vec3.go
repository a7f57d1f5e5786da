package gfxmath

import "math"

// Vec3 is a 3-component vector (value type, stack-allocated).
type Vec3 [3]float64

// Unit axes.
func UnitX() Vec3 { return Vec3{1, 0, 0} }
func UnitY() Vec3 { return Vec3{0, 1, 0} }
func UnitZ() Vec3 { return Vec3{0, 0, 1} }

// AttachVec3 reinterprets the first 3 elements of s as a Vec3 without
// copying. Mutations through the view are visible in s. Panics if
// len(s) < 3.
func AttachVec3(s []float64) *Vec3 {
	return (*Vec3)(s)
}

func (a Vec3) Add(b Vec3) Vec3 {
	return Vec3{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

func (a Vec3) Sub(b Vec3) Vec3 {
	return Vec3{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func (v Vec3) Neg() Vec3 {
	return Vec3{-v[0], -v[1], -v[2]}
}

func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v[0] * s, v[1] * s, v[2] * s}
}

// MulElem returns the component-wise product.
func (a Vec3) MulElem(b Vec3) Vec3 {
	return Vec3{a[0] * b[0], a[1] * b[1], a[2] * b[2]}
}

// DivElem returns the component-wise quotient.
func (a Vec3) DivElem(b Vec3) Vec3 {
	return Vec3{a[0] / b[0], a[1] / b[1], a[2] / b[2]}
}

func (a Vec3) Dot(b Vec3) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

func (a Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func (v Vec3) Len() float64 {
	return math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}

func (v Vec3) LenSq() float64 {
	return v[0]*v[0] + v[1]*v[1] + v[2]*v[2]
}

func (a Vec3) Distance(b Vec3) float64 {
	return a.Sub(b).Len()
}

func (v Vec3) Normalize() Vec3 {
	l := v.Len()
	if l < 1e-12 {
		return Vec3{}
	}
	return Vec3{v[0] / l, v[1] / l, v[2] / l}
}

func (v Vec3) IsNormalized() bool {
	return Close(v.LenSq(), 1)
}

// Orthogonal returns an arbitrary vector orthogonal to v, built by
// crossing v with the coordinate axis it is least aligned with.
// The result is not normalized. Orthogonal of the zero vector is zero.
func (v Vec3) Orthogonal() Vec3 {
	ax, ay, az := math.Abs(v[0]), math.Abs(v[1]), math.Abs(v[2])
	switch {
	case ax <= ay && ax <= az:
		return v.Cross(UnitX())
	case ay <= az:
		return v.Cross(UnitY())
	default:
		return v.Cross(UnitZ())
	}
}

func (a Vec3) Lerp(b Vec3, t float64) Vec3 {
	return a.Add(b.Sub(a).Scale(t))
}

func (v Vec3) Abs() Vec3 {
	return Vec3{math.Abs(v[0]), math.Abs(v[1]), math.Abs(v[2])}
}

func (v Vec3) IsFinite() bool {
	return IsFinite(v[0]) && IsFinite(v[1]) && IsFinite(v[2])
}

func (a Vec3) Close(b Vec3) bool {
	return Close(a[0], b[0]) && Close(a[1], b[1]) && Close(a[2], b[2])
}

// CloseEps is Close with an explicit tolerance.
func (a Vec3) CloseEps(b Vec3, eps float64) bool {
	return CloseEps(a[0], b[0], eps) && CloseEps(a[1], b[1], eps) && CloseEps(a[2], b[2], eps)
}
