package gfxmath_test

import (
	"testing"

	"gfxmath"

	"github.com/stretchr/testify/require"
)

func TestVec4Homogeneous(t *testing.T) {
	v := gfxmath.Vec3{1, 2, 3}
	require.Equal(t, gfxmath.Vec4{1, 2, 3, 1}, gfxmath.Vec4Point(v))
	require.Equal(t, gfxmath.Vec4{1, 2, 3, 0}, gfxmath.Vec4Dir(v))
	require.Equal(t, v, gfxmath.Vec4Point(v).XYZ())
}

func TestVec4Arithmetic(t *testing.T) {
	a := gfxmath.Vec4{1, 2, 3, 4}
	b := gfxmath.Vec4{-4, 3, -2, 1}

	require.Equal(t, gfxmath.Vec4{-3, 5, 1, 5}, a.Add(b))
	require.Equal(t, a, a.Add(b).Sub(b))
	require.Equal(t, a.Scale(-1), a.Neg())
	require.InDelta(t, 0.0, a.Dot(b), 1e-12)
	require.InDelta(t, a.LenSq(), a.Dot(a), 1e-12)

	n := a.Normalize()
	require.InDelta(t, 1.0, n.Len(), 1e-12)
	require.Equal(t, gfxmath.Vec4{}, gfxmath.Vec4{}.Normalize())
	require.True(t, a.IsFinite())
	require.True(t, a.Close(a))
}
