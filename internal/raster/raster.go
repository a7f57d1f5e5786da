// Package raster is a minimal z-buffered software rasterizer used by the
// demo command. Flat shading only: one lighting term per face.
package raster

import (
	"image"
	"image/color"
	"math"

	"gfxmath"
)

// FrameBuffer holds the render target as flat slices for cache locality.
type FrameBuffer struct {
	Width  int
	Height int
	Pix    []uint8   // NRGBA interleaved, len = W*H*4
	Depth  []float64 // per-pixel depth, initialized to -inf
}

// NewFrameBuffer allocates a zeroed color buffer and a -inf depth buffer.
func NewFrameBuffer(w, h int) *FrameBuffer {
	n := w * h
	depth := make([]float64, n)
	for i := range depth {
		depth[i] = math.Inf(-1)
	}
	return &FrameBuffer{
		Width:  w,
		Height: h,
		Pix:    make([]uint8, n*4),
		Depth:  depth,
	}
}

// Image wraps the pixel buffer as an *image.NRGBA without copying.
func (fb *FrameBuffer) Image() *image.NRGBA {
	return &image.NRGBA{
		Pix:    fb.Pix,
		Stride: fb.Width * 4,
		Rect:   image.Rect(0, 0, fb.Width, fb.Height),
	}
}

// Clear fills the buffer with a background color and resets depth.
func (fb *FrameBuffer) Clear(c color.NRGBA) {
	for i := 0; i < len(fb.Pix); i += 4 {
		fb.Pix[i] = c.R
		fb.Pix[i+1] = c.G
		fb.Pix[i+2] = c.B
		fb.Pix[i+3] = c.A
	}
	for i := range fb.Depth {
		fb.Depth[i] = math.Inf(-1)
	}
}

// Triangle is one screen-space face: positions carry x, y in pixels and
// z as depth toward the viewer (greater z wins).
type Triangle struct {
	P   [3]gfxmath.Vec3
	UV  [3]gfxmath.Vec2
	Tex *image.NRGBA // nil for untextured faces
	Col color.NRGBA  // base color when Tex is nil
}

// Fill rasterizes t into fb with flat shading from lt.
func (fb *FrameBuffer) Fill(t Triangle, lt *Light) {
	p0, p1, p2 := t.P[0], t.P[1], t.P[2]

	normal := p1.Sub(p0).Cross(p2.Sub(p0))
	nl := normal.Len()
	if nl < 1e-8 {
		return // degenerate
	}
	shade := lt.Shade(normal.Scale(1 / nl))

	minX := int(math.Floor(math.Min(math.Min(p0[0], p1[0]), p2[0])))
	maxX := int(math.Ceil(math.Max(math.Max(p0[0], p1[0]), p2[0])))
	minY := int(math.Floor(math.Min(math.Min(p0[1], p1[1]), p2[1])))
	maxY := int(math.Ceil(math.Max(math.Max(p0[1], p1[1]), p2[1])))
	minX = max(minX, 0)
	minY = max(minY, 0)
	maxX = min(maxX, fb.Width-1)
	maxY = min(maxY, fb.Height-1)
	if minX > maxX || minY > maxY {
		return
	}

	// Barycentric setup
	det := (p1[1]-p2[1])*(p0[0]-p2[0]) + (p2[0]-p1[0])*(p0[1]-p2[1])
	if det > -1e-12 && det < 1e-12 {
		return
	}
	invDet := 1 / det

	for y := minY; y <= maxY; y++ {
		fy := float64(y) + 0.5
		for x := minX; x <= maxX; x++ {
			fx := float64(x) + 0.5
			w0 := ((p1[1]-p2[1])*(fx-p2[0]) + (p2[0]-p1[0])*(fy-p2[1])) * invDet
			w1 := ((p2[1]-p0[1])*(fx-p2[0]) + (p0[0]-p2[0])*(fy-p2[1])) * invDet
			w2 := 1 - w0 - w1
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}

			z := w0*p0[2] + w1*p1[2] + w2*p2[2]
			di := y*fb.Width + x
			if z <= fb.Depth[di] {
				continue
			}
			fb.Depth[di] = z

			r, g, b, a := t.Col.R, t.Col.G, t.Col.B, t.Col.A
			if t.Tex != nil {
				u := w0*t.UV[0][0] + w1*t.UV[1][0] + w2*t.UV[2][0]
				v := w0*t.UV[0][1] + w1*t.UV[1][1] + w2*t.UV[2][1]
				r, g, b, a = sample(t.Tex, u, v)
			}

			pi := di * 4
			fb.Pix[pi] = shadeByte(r, shade)
			fb.Pix[pi+1] = shadeByte(g, shade)
			fb.Pix[pi+2] = shadeByte(b, shade)
			fb.Pix[pi+3] = a
		}
	}
}

// sample does nearest-neighbor texture lookup with wrap-around UVs.
func sample(tex *image.NRGBA, u, v float64) (r, g, b, a uint8) {
	b2 := tex.Bounds()
	u -= math.Floor(u)
	v -= math.Floor(v)
	x := b2.Min.X + int(u*float64(b2.Dx()-1)+0.5)
	y := b2.Min.Y + int(v*float64(b2.Dy()-1)+0.5)
	i := tex.PixOffset(x, y)
	return tex.Pix[i], tex.Pix[i+1], tex.Pix[i+2], tex.Pix[i+3]
}

func shadeByte(c uint8, shade float64) uint8 {
	s := float64(c) * shade
	if s > 255 {
		return 255
	}
	return uint8(s + 0.5)
}
