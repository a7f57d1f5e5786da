package gfxmath

import "github.com/dgravesa/go-parallel/parallel"

// Bulk transform helpers for mesh-sized point sets. Each element is an
// independent pure computation, so the work is spread over all CPUs.

// TransformVec3s applies m to every point and returns a new slice.
func TransformVec3s(m Mat3, pts []Vec3) []Vec3 {
	out := make([]Vec3, len(pts))
	parallel.For(len(pts), func(i, _ int) {
		out[i] = m.MulVec3(pts[i])
	})
	return out
}

// TransformPoints applies the affine transform m to every point.
func TransformPoints(m Mat4, pts []Vec3) []Vec3 {
	out := make([]Vec3, len(pts))
	parallel.For(len(pts), func(i, _ int) {
		out[i] = m.MulPoint(pts[i])
	})
	return out
}

// RotateVec3s rotates every point by the unit quaternion q.
func RotateVec3s(q Quat, pts []Vec3) []Vec3 {
	out := make([]Vec3, len(pts))
	parallel.For(len(pts), func(i, _ int) {
		out[i] = q.Rotate(pts[i])
	})
	return out
}
