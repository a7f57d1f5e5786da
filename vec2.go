package gfxmath

import "math"

// Vec2 is a 2-component vector (value type, stack-allocated).
type Vec2 [2]float64

func (a Vec2) Add(b Vec2) Vec2 {
	return Vec2{a[0] + b[0], a[1] + b[1]}
}

func (a Vec2) Sub(b Vec2) Vec2 {
	return Vec2{a[0] - b[0], a[1] - b[1]}
}

func (v Vec2) Neg() Vec2 {
	return Vec2{-v[0], -v[1]}
}

func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v[0] * s, v[1] * s}
}

// MulElem returns the component-wise product.
func (a Vec2) MulElem(b Vec2) Vec2 {
	return Vec2{a[0] * b[0], a[1] * b[1]}
}

func (a Vec2) Dot(b Vec2) float64 {
	return a[0]*b[0] + a[1]*b[1]
}

// Cross returns the scalar 2D cross product a.x*b.y - a.y*b.x.
func (a Vec2) Cross(b Vec2) float64 {
	return a[0]*b[1] - a[1]*b[0]
}

// Perp returns the counter-clockwise perpendicular {-y, x}.
func (v Vec2) Perp() Vec2 {
	return Vec2{-v[1], v[0]}
}

func (v Vec2) Len() float64 {
	return math.Sqrt(v[0]*v[0] + v[1]*v[1])
}

func (v Vec2) LenSq() float64 {
	return v[0]*v[0] + v[1]*v[1]
}

func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l < 1e-12 {
		return Vec2{}
	}
	return Vec2{v[0] / l, v[1] / l}
}

func (v Vec2) IsNormalized() bool {
	return Close(v.LenSq(), 1)
}

func (v Vec2) Abs() Vec2 {
	return Vec2{math.Abs(v[0]), math.Abs(v[1])}
}

func (v Vec2) IsFinite() bool {
	return IsFinite(v[0]) && IsFinite(v[1])
}

func (a Vec2) Close(b Vec2) bool {
	return Close(a[0], b[0]) && Close(a[1], b[1])
}
