package gfxmath_test

import (
	"math"
	"testing"

	"gfxmath"

	"github.com/stretchr/testify/require"
)

func TestQuatIdentityRotatesNothing(t *testing.T) {
	v := gfxmath.Vec3{1, -2, 3}
	require.Equal(t, v, gfxmath.QuatIdentity().Rotate(v))
	require.True(t, gfxmath.QuatIdentity().IsNormalized())
}

func TestQuatAxisAngleRotation(t *testing.T) {
	// 90° about Z maps X onto Y.
	q := gfxmath.QuatAxisAngle(gfxmath.UnitZ(), math.Pi/2)
	require.True(t, q.IsNormalized())
	require.True(t, q.Rotate(gfxmath.UnitX()).Close(gfxmath.UnitY()))

	// Rotation preserves length.
	v := gfxmath.Vec3{2, -3, 5}
	require.InDelta(t, v.Len(), q.Rotate(v).Len(), 1e-12)

	// Conjugate is the inverse rotation.
	require.True(t, q.Conjugate().Rotate(q.Rotate(v)).Close(v))
}

func TestQuatMulComposes(t *testing.T) {
	a := gfxmath.QuatAxisAngle(gfxmath.UnitX(), 0.6)
	b := gfxmath.QuatAxisAngle(gfxmath.Vec3{1, -1, 2}.Normalize(), 1.4)
	v := gfxmath.Vec3{0.3, 1, -2}

	// (a*b) rotates like applying b then a.
	require.True(t, a.Mul(b).Rotate(v).Close(a.Rotate(b.Rotate(v))))

	// Quaternion composition matches matrix composition.
	m := gfxmath.Mat3Mul(gfxmath.QuatToMat3(a), gfxmath.QuatToMat3(b))
	require.True(t, gfxmath.QuatToMat3(a.Mul(b)).Close(m))

	// Identity is the neutral element.
	require.True(t, a.Mul(gfxmath.QuatIdentity()).Close(a))
	require.True(t, gfxmath.QuatIdentity().Mul(a).Close(a))
}

func TestEulerToQuat(t *testing.T) {
	// Single-axis Euler angles must match the axis-angle construction.
	require.True(t, gfxmath.EulerToQuat(0.5, 0, 0).Close(gfxmath.QuatAxisAngle(gfxmath.UnitX(), 0.5)))
	require.True(t, gfxmath.EulerToQuat(0, 0.5, 0).Close(gfxmath.QuatAxisAngle(gfxmath.UnitY(), 0.5)))
	require.True(t, gfxmath.EulerToQuat(0, 0, 0.5).Close(gfxmath.QuatAxisAngle(gfxmath.UnitZ(), 0.5)))
	require.True(t, gfxmath.EulerToQuat(0, 0, 0).Close(gfxmath.QuatIdentity()))

	q := gfxmath.EulerToQuat(0.3, -0.7, 1.2)
	require.True(t, q.IsNormalized())
}

func TestQuatNormalize(t *testing.T) {
	q := gfxmath.Quat{2, 0, 0, 2}
	require.False(t, q.IsNormalized())
	require.True(t, q.Normalize().IsNormalized())

	// A broken (near-zero) quaternion normalizes to identity.
	require.Equal(t, gfxmath.QuatIdentity(), gfxmath.Quat{}.Normalize())
}

func TestQuatSlerp(t *testing.T) {
	a := gfxmath.QuatAxisAngle(gfxmath.UnitZ(), 0)
	b := gfxmath.QuatAxisAngle(gfxmath.UnitZ(), math.Pi/2)

	require.True(t, a.Slerp(b, 0).Close(a))
	require.True(t, a.Slerp(b, 1).Close(b))

	// The midpoint of a 90° turn is a 45° turn.
	mid := a.Slerp(b, 0.5)
	require.True(t, mid.Close(gfxmath.QuatAxisAngle(gfxmath.UnitZ(), math.Pi/4)))
	require.True(t, mid.IsNormalized())

	// Nearly-parallel endpoints take the nlerp path and stay normalized.
	c := gfxmath.QuatAxisAngle(gfxmath.UnitZ(), 1e-12)
	require.True(t, a.Slerp(c, 0.5).IsNormalized())
}
