package raster

import (
	"image"

	"golang.org/x/image/draw"
)

// Downsample scales img down to targetSize×targetSize with CatmullRom
// filtering. Returns img unchanged when it is already small enough.
// The demo renders on an opaque background, so no alpha premultiply
// pass is needed before filtering.
func Downsample(img *image.NRGBA, targetSize int) *image.NRGBA {
	b := img.Bounds()
	if b.Dx() <= targetSize && b.Dy() <= targetSize {
		return img
	}
	dst := image.NewNRGBA(image.Rect(0, 0, targetSize, targetSize))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
