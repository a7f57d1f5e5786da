package gfxmath

import (
	"math"

	"gfxmath/internal/assert"
)

// Mat3ScalingUniform returns a uniform scaling matrix.
func Mat3ScalingUniform(s float64) Mat3 {
	assert.Warn(!Close(s, 0), "scale shouldn't be zero")
	return Mat3Diag(s, s, s)
}

// Mat3Scaling returns a per-axis scaling matrix. A (near-)zero factor
// collapses that dimension.
func Mat3Scaling(x, y, z float64) Mat3 {
	assert.Warn(!Close(x, 0), "scale shouldn't be zero")
	assert.Warn(!Close(y, 0), "scale shouldn't be zero")
	assert.Warn(!Close(z, 0), "scale shouldn't be zero")
	return Mat3Diag(x, y, z)
}

// Mat3ScalingVec is Mat3Scaling with the factors taken from a vector.
func Mat3ScalingVec(s Vec3) Mat3 {
	return Mat3Scaling(s[0], s[1], s[2])
}

// RotX returns a rotation about the X axis. Angle in radians.
func RotX(radians float64) Mat3 {
	s, c := math.Sincos(radians)
	return Mat3Rows(
		1, 0, 0,
		0, c, -s,
		0, s, c,
	)
}

// RotY returns a rotation about the Y axis.
func RotY(radians float64) Mat3 {
	s, c := math.Sincos(radians)
	return Mat3Rows(
		c, 0, s,
		0, 1, 0,
		-s, 0, c,
	)
}

// RotZ returns a rotation about the Z axis.
func RotZ(radians float64) Mat3 {
	s, c := math.Sincos(radians)
	return Mat3Rows(
		c, -s, 0,
		s, c, 0,
		0, 0, 1,
	)
}

// Mat3AxisAngleN returns a rotation about an already-normalized axis,
// by Rodrigues' formula. The axis is not re-normalized; a non-unit axis
// produces a wrong result.
func Mat3AxisAngleN(axis Vec3, radians float64) Mat3 {
	assert.Bad(axis.IsNormalized(), "rotation axis should be normalized")
	s, c := math.Sincos(radians)
	c1 := 1 - c
	x, y, z := axis[0], axis[1], axis[2]

	return Mat3Rows(
		c+c1*x*x, c1*y*x-s*z, c1*z*x+s*y,
		c1*x*y+s*z, c+c1*y*y, c1*z*y-s*x,
		c1*x*z-s*y, c1*y*z+s*x, c+c1*z*z,
	)
}

// Mat3AxisAngle normalizes axis, then rotates about it.
func Mat3AxisAngle(axis Vec3, radians float64) Mat3 {
	return Mat3AxisAngleN(axis.Normalize(), radians)
}

// Mat3RotationBetween returns the shortest-arc rotation mapping unit
// vector src onto unit vector target. Collinear inputs are handled
// specially: equal vectors give the identity, opposite vectors give a
// 180° rotation about an arbitrary axis orthogonal to src.
func Mat3RotationBetween(src, target Vec3) Mat3 {
	assert.Bad(src.IsNormalized(), "source vector should be normalized")
	assert.Bad(target.IsNormalized(), "target vector should be normalized")
	assert.Warn(!src.Close(Vec3{}), "source vector shouldn't be zero")
	assert.Warn(!target.Close(Vec3{}), "target vector shouldn't be zero")

	axis := src.Cross(target)
	axisLen := axis.Len()

	if axisLen > Epsilon { // not collinear
		angle := math.Acos(Clamp(src.Dot(target), -1, 1))
		return Mat3AxisAngleN(axis.Scale(1/axisLen), angle)
	}

	if src.Close(target) {
		return Mat3Identity()
	}

	// Opposite: reflect through the plane orthogonal to src, i.e. rotate
	// 180° about any unit vector o orthogonal to src.
	o := src.Orthogonal().Normalize()
	return Mat3Rows(
		2*o[0]*o[0]-1, 2*o[1]*o[0], 2*o[2]*o[0],
		2*o[0]*o[1], 2*o[1]*o[1]-1, 2*o[2]*o[1],
		2*o[0]*o[2], 2*o[1]*o[2], 2*o[2]*o[2]-1,
	)
}

// QuatToMat3 converts a unit quaternion to a 3×3 rotation matrix.
// A non-unit quaternion still produces a result, just not a rotation.
func QuatToMat3(q Quat) Mat3 {
	assert.Bad(q.IsNormalized(), "rotation with a non-normalized quaternion")
	assert.Warn(!Close(q.LenSq(), 0), "rotating with a broken quaternion")

	x, y, z, w := q[0], q[1], q[2], q[3]
	xx, yy, zz := x*x, y*y, z*z
	xy, xz, yz := x*y, x*z, y*z
	wx, wy, wz := w*x, w*y, w*z

	return Mat3Rows(
		1-2*(yy+zz), 2*(xy-wz), 2*(xz+wy),
		2*(xy+wz), 1-2*(xx+zz), 2*(yz-wx),
		2*(xz-wy), 2*(yz+wx), 1-2*(xx+yy),
	)
}
