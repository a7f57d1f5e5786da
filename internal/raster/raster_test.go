package raster

import (
	"image/color"
	"math"
	"testing"

	"gfxmath"

	"github.com/stretchr/testify/require"
)

func TestFrameBufferClear(t *testing.T) {
	fb := NewFrameBuffer(4, 4)
	fb.Clear(color.NRGBA{10, 20, 30, 255})

	img := fb.Image()
	require.Equal(t, 4, img.Bounds().Dx())
	c := img.NRGBAAt(2, 2)
	require.Equal(t, color.NRGBA{10, 20, 30, 255}, c)
	require.True(t, math.IsInf(fb.Depth[0], -1))
}

func TestFillWritesCoveredPixels(t *testing.T) {
	fb := NewFrameBuffer(16, 16)
	fb.Clear(color.NRGBA{0, 0, 0, 255})
	lt := &Light{Dir: gfxmath.UnitZ(), RimDir: gfxmath.UnitZ(), Ambient: 1, Direct: 0, Rim: 0}

	tri := Triangle{
		P: [3]gfxmath.Vec3{
			{1, 1, 0},
			{14, 1, 0},
			{1, 14, 0},
		},
		Col: color.NRGBA{200, 100, 50, 255},
	}
	fb.Fill(tri, lt)

	// A pixel well inside the triangle takes the flat-shaded color.
	require.Equal(t, color.NRGBA{200, 100, 50, 255}, fb.Image().NRGBAAt(3, 3))
	// A pixel outside it keeps the background.
	require.Equal(t, color.NRGBA{0, 0, 0, 255}, fb.Image().NRGBAAt(14, 14))
}

func TestFillDepthTest(t *testing.T) {
	fb := NewFrameBuffer(8, 8)
	fb.Clear(color.NRGBA{0, 0, 0, 255})
	lt := &Light{Ambient: 1, Dir: gfxmath.UnitZ(), RimDir: gfxmath.UnitZ()}

	far := Triangle{
		P:   [3]gfxmath.Vec3{{0, 0, -5}, {8, 0, -5}, {0, 8, -5}},
		Col: color.NRGBA{255, 0, 0, 255},
	}
	near := Triangle{
		P:   [3]gfxmath.Vec3{{0, 0, 1}, {8, 0, 1}, {0, 8, 1}},
		Col: color.NRGBA{0, 255, 0, 255},
	}

	// Order must not matter: the nearer triangle wins either way.
	fb.Fill(near, lt)
	fb.Fill(far, lt)
	require.Equal(t, color.NRGBA{0, 255, 0, 255}, fb.Image().NRGBAAt(2, 2))
}

func TestFillDegenerateTriangleIsNoop(t *testing.T) {
	fb := NewFrameBuffer(8, 8)
	fb.Clear(color.NRGBA{1, 2, 3, 255})
	lt := DefaultLight()

	collinear := Triangle{
		P:   [3]gfxmath.Vec3{{0, 0, 0}, {4, 4, 0}, {8, 8, 0}},
		Col: color.NRGBA{255, 255, 255, 255},
	}
	fb.Fill(collinear, lt)
	require.Equal(t, color.NRGBA{1, 2, 3, 255}, fb.Image().NRGBAAt(4, 4))
}

func TestDownsample(t *testing.T) {
	fb := NewFrameBuffer(64, 64)
	fb.Clear(color.NRGBA{100, 100, 100, 255})

	small := Downsample(fb.Image(), 16)
	require.Equal(t, 16, small.Bounds().Dx())
	require.Equal(t, 16, small.Bounds().Dy())

	// Already small enough: returned unchanged.
	same := Downsample(small, 32)
	require.Equal(t, small, same)
}

func TestLightShadeRange(t *testing.T) {
	lt := DefaultLight()
	for _, n := range []gfxmath.Vec3{
		gfxmath.UnitX(), gfxmath.UnitY(), gfxmath.UnitZ(),
		gfxmath.Vec3{1, 1, 1}.Normalize(),
	} {
		s := lt.Shade(n)
		require.GreaterOrEqual(t, s, lt.Ambient)
		require.LessOrEqual(t, s, lt.Ambient+lt.Direct+lt.Rim)
	}
}
