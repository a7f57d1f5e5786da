// Package gfxmath provides fixed-size linear-algebra value types for
// graphics and game-style code: Vec2/Vec3/Vec4, a column-major Mat3 (the
// core type), an affine Mat4, and a rotation quaternion Quat.
//
// Every type is a plain array-backed value — copied, compared, and passed
// by value, never heap-bound. Operations are stateless closed-form
// computations with no error returns; precondition violations (non-unit
// rotation axes, singular matrices, zero divisors) are checked only when
// built with the mathdebug tag and otherwise produce whatever the
// arithmetic produces, including Inf and NaN. See internal/assert.
//
// Mat3 storage is column-major: the elements of a column are contiguous,
// so Data, AttachMat3 and the column views interoperate zero-copy with
// graphics APIs that consume flat 9-element arrays.
package gfxmath
