package raster

import (
	"math"

	"gfxmath"
)

// Light holds the flat-shading parameters: a key light, a rim light and
// an ambient floor.
type Light struct {
	Dir     gfxmath.Vec3
	RimDir  gfxmath.Vec3
	Ambient float64
	Direct  float64
	Rim     float64
}

// DefaultLight returns a pleasant three-quarter key light.
func DefaultLight() *Light {
	return &Light{
		Dir:     gfxmath.Vec3{0.4, 0.7, 0.6}.Normalize(),
		RimDir:  gfxmath.Vec3{-0.5, 0.3, -0.8}.Normalize(),
		Ambient: 0.35,
		Direct:  0.75,
		Rim:     0.20,
	}
}

// Shade returns the combined lighting scalar for a unit face normal.
// Lambert terms take the absolute dot so faces are double-sided.
func (lt *Light) Shade(normal gfxmath.Vec3) float64 {
	d := math.Abs(normal.Dot(lt.Dir))
	r := math.Abs(normal.Dot(lt.RimDir))
	return lt.Ambient + d*lt.Direct + r*lt.Rim
}
