// Command spin renders a rotating cube with the gfxmath library and
// writes the result as a WebP image. It exists to exercise the whole
// pipeline: quaternion orientation, matrix conversion, bulk transforms,
// rasterization and supersampled output.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	imdraw "image/draw"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"gfxmath"
	"gfxmath/internal/raster"

	"github.com/HugoSmits86/nativewebp"
	_ "github.com/ftrvxmtrx/tga"
)

// cubeFaces lists each face as 4 corner positions, wound counter-clockwise
// when viewed from outside. UVs are assigned per corner in corner order.
var cubeFaces = [6][4]gfxmath.Vec3{
	{{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1}},     // front
	{{1, -1, -1}, {-1, -1, -1}, {-1, 1, -1}, {1, 1, -1}}, // back
	{{1, -1, 1}, {1, -1, -1}, {1, 1, -1}, {1, 1, 1}},     // right
	{{-1, -1, -1}, {-1, -1, 1}, {-1, 1, 1}, {-1, 1, -1}}, // left
	{{-1, 1, 1}, {1, 1, 1}, {1, 1, -1}, {-1, 1, -1}},     // top
	{{-1, -1, -1}, {1, -1, -1}, {1, -1, 1}, {-1, -1, 1}}, // bottom
}

var faceUV = [4]gfxmath.Vec2{{0, 1}, {1, 1}, {1, 0}, {0, 0}}

var faceColors = [6]color.NRGBA{
	{214, 84, 58, 255},
	{58, 132, 214, 255},
	{84, 186, 96, 255},
	{230, 188, 58, 255},
	{158, 96, 214, 255},
	{96, 200, 200, 255},
}

func main() {
	out := flag.String("out", "spin.webp", "Output WebP file")
	size := flag.Int("size", 512, "Output image size in pixels")
	supersample := flag.Int("supersample", 2, "Supersampling factor")
	yaw := flag.Float64("yaw", 30, "Rotation about Y in degrees")
	pitch := flag.Float64("pitch", 25, "Rotation about X in degrees")
	texPath := flag.String("texture", "", "Optional texture file (TGA/PNG/JPEG)")

	flag.Parse()

	var tex *image.NRGBA
	if *texPath != "" {
		var err error
		tex, err = loadTexture(*texPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading texture: %v\n", err)
			os.Exit(1)
		}
	}

	img := render(*size, *supersample, *yaw, *pitch, tex)

	f, err := os.Create(*out)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	if err := nativewebp.Encode(f, img, nil); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding WebP: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s (%dx%d, yaw %.0f°, pitch %.0f°)\n", *out, *size, *size, *yaw, *pitch)
}

func render(size, supersample int, yawDeg, pitchDeg float64, tex *image.NRGBA) *image.NRGBA {
	renderSize := size * supersample
	fb := raster.NewFrameBuffer(renderSize, renderSize)
	fb.Clear(color.NRGBA{24, 24, 28, 255})
	light := raster.DefaultLight()

	// Orientation as a quaternion, applied as a matrix.
	q := gfxmath.QuatAxisAngle(gfxmath.UnitY(), gfxmath.Deg2Rad(yawDeg)).
		Mul(gfxmath.QuatAxisAngle(gfxmath.UnitX(), gfxmath.Deg2Rad(pitchDeg)))
	rot := gfxmath.QuatToMat3(q)

	// Flatten faces into one vertex slice and rotate in bulk.
	verts := make([]gfxmath.Vec3, 0, 24)
	for _, face := range cubeFaces {
		verts = append(verts, face[:]...)
	}
	world := gfxmath.TransformVec3s(rot, verts)

	// Orthographic fit: the rotated unit cube spans at most 2*sqrt(3).
	center := float64(renderSize) / 2
	scale := float64(renderSize) * 0.26
	screen := make([]gfxmath.Vec3, len(world))
	for i, v := range world {
		screen[i] = gfxmath.Vec3{
			center + v[0]*scale,
			center - v[1]*scale,
			v[2], // depth toward the viewer
		}
	}

	for fi := range cubeFaces {
		base := fi * 4
		quad := [4]int{base, base + 1, base + 2, base + 3}
		for _, t := range [2][3]int{{0, 1, 2}, {0, 2, 3}} {
			tri := raster.Triangle{
				P:   [3]gfxmath.Vec3{screen[quad[t[0]]], screen[quad[t[1]]], screen[quad[t[2]]]},
				UV:  [3]gfxmath.Vec2{faceUV[t[0]], faceUV[t[1]], faceUV[t[2]]},
				Tex: tex,
				Col: faceColors[fi],
			}
			fb.Fill(tri, light)
		}
	}

	return raster.Downsample(fb.Image(), size)
}

// loadTexture decodes any registered image format; the TGA decoder is
// registered by its blank import.
func loadTexture(path string) (*image.NRGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	imdraw.Draw(dst, dst.Bounds(), src, b.Min, imdraw.Src)
	return dst, nil
}
