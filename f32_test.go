package gfxmath_test

import (
	"testing"

	"gfxmath"

	"github.com/stretchr/testify/require"
	"golang.org/x/image/math/f32"
)

func TestMat3F32RoundTrip(t *testing.T) {
	// Exactly float32-representable values survive the round trip unchanged.
	a := gfxmath.Mat3Rows(
		1, 2.5, -3,
		0.25, 5, -6.5,
		7, 0.125, 9,
	)
	require.Equal(t, a, gfxmath.Mat3FromF32(a.F32()))

	// Arbitrary values come back within float32 precision.
	b := gfxmath.RotZ(0.777)
	require.True(t, gfxmath.Mat3FromF32(b.F32()).CloseEps(b, gfxmath.EpsilonF32))
}

func TestMat3F32IsRowMajor(t *testing.T) {
	m := gfxmath.Mat3Rows(
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	)
	// f32.Mat3 is documented row-major: m[3*r+c].
	require.Equal(t, f32.Mat3{1, 2, 3, 4, 5, 6, 7, 8, 9}, m.F32())
}

func TestVecF32RoundTrips(t *testing.T) {
	v2 := gfxmath.Vec2{1.5, -2}
	require.Equal(t, v2, gfxmath.Vec2FromF32(v2.F32()))

	v3 := gfxmath.Vec3{0.25, 3, -7.5}
	require.Equal(t, v3, gfxmath.Vec3FromF32(v3.F32()))

	v4 := gfxmath.Vec4{1, -0.5, 8, 0.125}
	require.Equal(t, v4, gfxmath.Vec4FromF32(v4.F32()))

	odd := gfxmath.Vec3{1.0 / 3, 2.0 / 3, 1.0 / 7}
	require.True(t, gfxmath.Vec3FromF32(odd.F32()).CloseEps(odd, gfxmath.EpsilonF32))
}

func TestMat4F32RoundTrip(t *testing.T) {
	m := gfxmath.Mat4FromMat3(gfxmath.Mat3Diag(1, 2, 4), gfxmath.Vec3{8, 16, 0.5})
	require.Equal(t, m, gfxmath.Mat4FromF32(m.F32()))
	require.Equal(t, float32(8), m.F32()[3]) // row-major: translation in the first row
}
