package gfxmath

import (
	"math"

	"gfxmath/internal/assert"
)

// Quat is a rotation quaternion stored as (x, y, z, w).
// It must be unit length to represent a rotation.
type Quat [4]float64

// QuatIdentity returns the no-rotation quaternion.
func QuatIdentity() Quat {
	return Quat{0, 0, 0, 1}
}

// QuatAxisAngle builds a rotation of angle radians about a unit axis.
func QuatAxisAngle(axis Vec3, radians float64) Quat {
	assert.Bad(axis.IsNormalized(), "QuatAxisAngle axis should be normalized")
	s, c := math.Sincos(radians / 2)
	return Quat{axis[0] * s, axis[1] * s, axis[2] * s, c}
}

// EulerToQuat converts Euler XYZ angles (radians) to a quaternion.
func EulerToQuat(rx, ry, rz float64) Quat {
	cx, sx := math.Cos(rx*0.5), math.Sin(rx*0.5)
	cy, sy := math.Cos(ry*0.5), math.Sin(ry*0.5)
	cz, sz := math.Cos(rz*0.5), math.Sin(rz*0.5)

	return Quat{
		sx*cy*cz - cx*sy*sz, // x
		cx*sy*cz + sx*cy*sz, // y
		cx*cy*sz - sx*sy*cz, // z
		cx*cy*cz + sx*sy*sz, // w
	}
}

// XYZ returns the vector part.
func (q Quat) XYZ() Vec3 {
	return Vec3{q[0], q[1], q[2]}
}

// Mul returns the Hamilton product q × r: the rotation r followed by q.
func (q Quat) Mul(r Quat) Quat {
	qx, qy, qz, qw := q[0], q[1], q[2], q[3]
	rx, ry, rz, rw := r[0], r[1], r[2], r[3]
	return Quat{
		qw*rx + qx*rw + qy*rz - qz*ry,
		qw*ry - qx*rz + qy*rw + qz*rx,
		qw*rz + qx*ry - qy*rx + qz*rw,
		qw*rw - qx*rx - qy*ry - qz*rz,
	}
}

// Conjugate negates the vector part; for a unit quaternion this is the
// inverse rotation.
func (q Quat) Conjugate() Quat {
	return Quat{-q[0], -q[1], -q[2], q[3]}
}

func (a Quat) Dot(b Quat) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2] + a[3]*b[3]
}

func (q Quat) Len() float64 {
	return math.Sqrt(q.Dot(q))
}

func (q Quat) LenSq() float64 {
	return q.Dot(q)
}

func (q Quat) Normalize() Quat {
	l := q.Len()
	if l < 1e-12 {
		return QuatIdentity()
	}
	return Quat{q[0] / l, q[1] / l, q[2] / l, q[3] / l}
}

func (q Quat) IsNormalized() bool {
	return Close(q.LenSq(), 1)
}

// Rotate applies the rotation to v: q v q*.
func (q Quat) Rotate(v Vec3) Vec3 {
	assert.Bad(q.IsNormalized(), "rotating with a non-normalized quaternion")
	u := q.XYZ()
	t := u.Cross(v).Scale(2)
	return v.Add(t.Scale(q[3])).Add(u.Cross(t))
}

// Slerp spherically interpolates from a to b by t in [0, 1], taking the
// shorter arc. Falls back to normalized linear interpolation when the
// quaternions are nearly parallel.
func (a Quat) Slerp(b Quat, t float64) Quat {
	d := a.Dot(b)
	if d < 0 {
		b = Quat{-b[0], -b[1], -b[2], -b[3]}
		d = -d
	}
	if d > 1-Epsilon {
		return Quat{
			Lerp(a[0], b[0], t),
			Lerp(a[1], b[1], t),
			Lerp(a[2], b[2], t),
			Lerp(a[3], b[3], t),
		}.Normalize()
	}
	theta := math.Acos(Clamp(d, -1, 1))
	sinTheta := math.Sin(theta)
	wa := math.Sin((1-t)*theta) / sinTheta
	wb := math.Sin(t*theta) / sinTheta
	return Quat{
		wa*a[0] + wb*b[0],
		wa*a[1] + wb*b[1],
		wa*a[2] + wb*b[2],
		wa*a[3] + wb*b[3],
	}
}

func (q Quat) IsFinite() bool {
	return IsFinite(q[0]) && IsFinite(q[1]) && IsFinite(q[2]) && IsFinite(q[3])
}

func (a Quat) Close(b Quat) bool {
	return Close(a[0], b[0]) && Close(a[1], b[1]) && Close(a[2], b[2]) && Close(a[3], b[3])
}
