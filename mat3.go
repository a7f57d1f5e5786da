package gfxmath

import (
	"math"

	"gfxmath/internal/assert"
)

// Mat3 is a 3×3 matrix stored column-major:
// [m00, m10, m20, m01, m11, m21, m02, m12, m22], i.e. m[col*3+row].
// Column elements are contiguous, so the flat layout matches what raw
// graphics APIs expect. Value type for zero heap allocation.
type Mat3 [9]float64

// Mat3Columns builds a matrix from values given column by column.
func Mat3Columns(m00, m10, m20, m01, m11, m21, m02, m12, m22 float64) Mat3 {
	return Mat3{
		m00, m10, m20,
		m01, m11, m21,
		m02, m12, m22,
	}
}

// Mat3Rows builds a matrix from values given row by row, the transpose
// arrangement of Mat3Columns.
func Mat3Rows(m00, m01, m02, m10, m11, m12, m20, m21, m22 float64) Mat3 {
	return Mat3{
		m00, m10, m20,
		m01, m11, m21,
		m02, m12, m22,
	}
}

func Mat3Identity() Mat3 {
	return Mat3{1, 0, 0, 0, 1, 0, 0, 0, 1}
}

func Mat3Zero() Mat3 {
	return Mat3{}
}

// Mat3Uniform fills every element with s.
func Mat3Uniform(s float64) Mat3 {
	return Mat3{s, s, s, s, s, s, s, s, s}
}

// Mat3Diag builds a diagonal matrix.
func Mat3Diag(x, y, z float64) Mat3 {
	return Mat3{x, 0, 0, 0, y, 0, 0, 0, z}
}

// Mat3FromSlice copies the first 9 elements of s, interpreted
// column-major. Panics if len(s) < 9.
func Mat3FromSlice(s []float64) Mat3 {
	return Mat3(s)
}

// AttachMat3 reinterprets the first 9 elements of s as a Mat3 without
// copying. The view aliases s: mutations through either side are visible
// in the other, and the caller must keep s alive for the lifetime of the
// view. Panics if len(s) < 9.
func AttachMat3(s []float64) *Mat3 {
	return (*Mat3)(s)
}

// Data exposes the 9 stored values as a flat column-major slice sharing
// the matrix storage.
func (m *Mat3) Data() []float64 {
	return m[:]
}

// Column returns the 3 contiguous values of column i as a slice sharing
// the matrix storage. Panics if i is not 0, 1 or 2.
func (m *Mat3) Column(i int) []float64 {
	return m[3*i : 3*i+3]
}

// ColumnVec returns column i as an aliasing *Vec3 view: writes through
// the view land in the matrix. Panics if i is not 0, 1 or 2.
func (m *Mat3) ColumnVec(i int) *Vec3 {
	return (*Vec3)(m.Column(i))
}

// ColumnVec2 returns two consecutive elements of column col starting at
// offset as an aliasing *Vec2 view, for interop with 2-component types.
// offset must be 0 or 1; out-of-range arguments panic.
func (m *Mat3) ColumnVec2(col, offset int) *Vec2 {
	return (*Vec2)(m.Column(col)[offset:])
}

// RowVec returns row i as a value copy: rows are not contiguous in
// column-major storage, so no view is possible.
func (m Mat3) RowVec(i int) Vec3 {
	return Vec3{m.At(i, 0), m.At(i, 1), m.At(i, 2)}
}

// RowVec2 returns two consecutive elements of row i starting at column
// offset, as a value copy.
func (m Mat3) RowVec2(i, offset int) Vec2 {
	return Vec2{m.At(i, offset), m.At(i, offset+1)}
}

// Diagonal returns a copy of the main diagonal.
func (m Mat3) Diagonal() Vec3 {
	return Vec3{m[0], m[4], m[8]}
}

// Diagonal2 returns two consecutive diagonal elements starting at offset.
func (m Mat3) Diagonal2(offset int) Vec2 {
	return Vec2{m.At(offset, offset), m.At(offset+1, offset+1)}
}

// At returns the element at (row, col).
func (m Mat3) At(row, col int) float64 {
	assert.Crit(uint(row) < 3 && uint(col) < 3, "Mat3 index out of range")
	return m[col*3+row]
}

// Set assigns the element at (row, col).
func (m *Mat3) Set(row, col int, v float64) {
	assert.Crit(uint(row) < 3 && uint(col) < 3, "Mat3 index out of range")
	m[col*3+row] = v
}

func (m Mat3) Neg() Mat3 {
	for i := range m {
		m[i] = -m[i]
	}
	return m
}

func (a Mat3) Add(b Mat3) Mat3 {
	for i := range a {
		a[i] += b[i]
	}
	return a
}

func (a Mat3) Sub(b Mat3) Mat3 {
	for i := range a {
		a[i] -= b[i]
	}
	return a
}

func (m Mat3) Scale(s float64) Mat3 {
	for i := range m {
		m[i] *= s
	}
	return m
}

// DivScalar divides every element by s. A zero divisor is not prevented
// and yields Inf/NaN elements.
func (m Mat3) DivScalar(s float64) Mat3 {
	assert.Warn(s != 0, "Mat3 division by zero")
	for i := range m {
		m[i] /= s
	}
	return m
}

// MulElem returns the Hadamard (element-wise) product. This is not the
// matrix product; see Mat3Mul.
func (a Mat3) MulElem(b Mat3) Mat3 {
	for i := range a {
		a[i] *= b[i]
	}
	return a
}

// DivElem returns the element-wise quotient.
func (a Mat3) DivElem(b Mat3) Mat3 {
	for i := range a {
		a[i] /= b[i]
	}
	return a
}

// Mat3Mul returns the matrix product a × b.
func Mat3Mul(a, b Mat3) Mat3 {
	var m Mat3
	for c := 0; c < 3; c++ {
		for r := 0; r < 3; r++ {
			m[c*3+r] = a[0*3+r]*b[c*3+0] + a[1*3+r]*b[c*3+1] + a[2*3+r]*b[c*3+2]
		}
	}
	return m
}

// MulVec3 returns M × v.
func (m Mat3) MulVec3(v Vec3) Vec3 {
	return Vec3{
		m[0]*v[0] + m[3]*v[1] + m[6]*v[2],
		m[1]*v[0] + m[4]*v[1] + m[7]*v[2],
		m[2]*v[0] + m[5]*v[1] + m[8]*v[2],
	}
}

func (m Mat3) Transpose() Mat3 {
	m[1], m[3] = m[3], m[1]
	m[2], m[6] = m[6], m[2]
	m[5], m[7] = m[7], m[5]
	return m
}

// Det returns the determinant by cofactor expansion along the first row.
func (m Mat3) Det() float64 {
	return m[0]*(m[4]*m[8]-m[7]*m[5]) -
		m[3]*(m[1]*m[8]-m[7]*m[2]) +
		m[6]*(m[1]*m[5]-m[4]*m[2])
}

// Inverse returns the adjugate divided by the determinant. There is no
// singularity guard: a zero or near-zero determinant yields Inf/NaN
// elements rather than an error.
func (m Mat3) Inverse() Mat3 {
	inv, _ := m.InverseDet()
	return inv
}

// InverseDet is Inverse and additionally returns the determinant, which
// the computation produces anyway.
func (m Mat3) InverseDet() (Mat3, float64) {
	det := m.Det()
	assert.Warn(!Close(det, 0), "inverting a near-singular Mat3")
	return Mat3{
		(m[4]*m[8] - m[7]*m[5]) / det,
		(m[7]*m[2] - m[1]*m[8]) / det,
		(m[1]*m[5] - m[4]*m[2]) / det,
		(m[6]*m[5] - m[3]*m[8]) / det,
		(m[0]*m[8] - m[6]*m[2]) / det,
		(m[3]*m[2] - m[0]*m[5]) / det,
		(m[3]*m[7] - m[6]*m[4]) / det,
		(m[6]*m[1] - m[0]*m[7]) / det,
		(m[0]*m[4] - m[3]*m[1]) / det,
	}, det
}

func (m Mat3) Abs() Mat3 {
	for i := range m {
		m[i] = math.Abs(m[i])
	}
	return m
}

func (m Mat3) IsFinite() bool {
	for _, v := range m {
		if !IsFinite(v) {
			return false
		}
	}
	return true
}

func (a Mat3) Close(b Mat3) bool {
	return a.CloseEps(b, Epsilon)
}

// CloseEps reports element-wise approximate equality within eps.
func (a Mat3) CloseEps(b Mat3, eps float64) bool {
	for i := range a {
		if !CloseEps(a[i], b[i], eps) {
			return false
		}
	}
	return true
}
