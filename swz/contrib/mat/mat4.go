// Copyright 2025 go-swizzle Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package mat

import (
	"github.com/ajroetker/go-swizzle/internal/check"
	"github.com/ajroetker/go-swizzle/swz"
)

// Mat4 is a 4×4 matrix of four column vectors.
type Mat4[T swz.Floats] struct {
	cols [4]swz.Vec4[T]
}

// Mat4FromCols returns the matrix with the given columns.
func Mat4FromCols[T swz.Floats](c0, c1, c2, c3 swz.Vec4[T]) Mat4[T] {
	return Mat4[T]{cols: [4]swz.Vec4[T]{c0, c1, c2, c3}}
}

// Mat4From flattens parts column by column into a new matrix. The parts
// must supply exactly sixteen components.
func Mat4From[T swz.Floats](parts ...swz.Operand[T]) Mat4[T] {
	var a [16]T
	flatten(a[:], parts)
	return Mat4FromArray(a)
}

// Mat4FromArray returns the matrix whose columns are consecutive quadruples
// of a.
func Mat4FromArray[T swz.Floats](a [16]T) Mat4[T] {
	var m Mat4[T]
	for j := range 4 {
		m.cols[j] = swz.Vec4FromArray([4]T(a[4*j : 4*j+4]))
	}
	return m
}

// Diag4 returns the matrix with x on the diagonal and zero elsewhere.
func Diag4[T swz.Floats](x T) Mat4[T] {
	var m Mat4[T]
	for j := range 4 {
		m.cols[j].SetAt(j, x)
	}
	return m
}

// Identity4 returns the 4×4 identity matrix.
func Identity4[T swz.Floats]() Mat4[T] {
	return Diag4[T](1)
}

// Array returns the components in column-major order.
func (m Mat4[T]) Array() [16]T {
	var a [16]T
	for j, c := range m.cols {
		ca := c.Array()
		copy(a[4*j:], ca[:])
	}
	return a
}

// Col returns column j.
func (m Mat4[T]) Col(j int) swz.Vec4[T] {
	check.Index(j, 4)
	return m.cols[j]
}

// SetCol replaces column j with the four components of v.
func (m *Mat4[T]) SetCol(j int, v swz.Operand[T]) {
	check.Index(j, 4)
	m.cols[j] = swz.Vec4From[T](v)
}

// Row returns row i gathered across the columns.
func (m Mat4[T]) Row(i int) swz.Vec4[T] {
	return swz.NewVec4(m.cols[0].At(i), m.cols[1].At(i), m.cols[2].At(i), m.cols[3].At(i))
}

// At returns the component in row i of column j.
func (m Mat4[T]) At(i, j int) T {
	check.Index(j, 4)
	return m.cols[j].At(i)
}

// SetAt sets the component in row i of column j.
func (m *Mat4[T]) SetAt(i, j int, x T) {
	check.Index(j, 4)
	m.cols[j].SetAt(i, x)
}

// Mat2 returns the upper-left 2×2 block.
func (m Mat4[T]) Mat2() Mat2[T] {
	var r Mat2[T]
	for j := range 2 {
		r.cols[j] = swz.Truncate2[T](m.cols[j])
	}
	return r
}

// Mat3 returns the upper-left 3×3 block.
func (m Mat4[T]) Mat3() Mat3[T] {
	var r Mat3[T]
	for j := range 3 {
		r.cols[j] = swz.Truncate3[T](m.cols[j])
	}
	return r
}

// Transpose returns m with rows and columns exchanged.
func (m Mat4[T]) Transpose() Mat4[T] {
	return Mat4FromCols(m.Row(0), m.Row(1), m.Row(2), m.Row(3))
}

// minors returns the 2×2 determinants of the top two rows (s) and of the
// bottom two rows (c) for every pair of columns, ordered so that
// s[k] pairs with c[5-k] in the Laplace expansion.
func (m Mat4[T]) minors() (s, c [6]T) {
	e := m.Array()
	a := func(i, j int) T { return e[4*j+i] }

	s[0] = a(0, 0)*a(1, 1) - a(1, 0)*a(0, 1)
	s[1] = a(0, 0)*a(1, 2) - a(1, 0)*a(0, 2)
	s[2] = a(0, 0)*a(1, 3) - a(1, 0)*a(0, 3)
	s[3] = a(0, 1)*a(1, 2) - a(1, 1)*a(0, 2)
	s[4] = a(0, 1)*a(1, 3) - a(1, 1)*a(0, 3)
	s[5] = a(0, 2)*a(1, 3) - a(1, 2)*a(0, 3)

	c[0] = a(2, 0)*a(3, 1) - a(3, 0)*a(2, 1)
	c[1] = a(2, 0)*a(3, 2) - a(3, 0)*a(2, 2)
	c[2] = a(2, 0)*a(3, 3) - a(3, 0)*a(2, 3)
	c[3] = a(2, 1)*a(3, 2) - a(3, 1)*a(2, 2)
	c[4] = a(2, 1)*a(3, 3) - a(3, 1)*a(2, 3)
	c[5] = a(2, 2)*a(3, 3) - a(3, 2)*a(2, 3)
	return s, c
}

// Det returns the determinant.
func (m Mat4[T]) Det() T {
	s, c := m.minors()
	return s[0]*c[5] - s[1]*c[4] + s[2]*c[3] + s[3]*c[2] - s[4]*c[1] + s[5]*c[0]
}

// Inverse returns the inverse of m. A singular m gives non-finite
// components.
func (m Mat4[T]) Inverse() Mat4[T] {
	e := m.Array()
	a := func(i, j int) T { return e[4*j+i] }
	s, c := m.minors()
	det := s[0]*c[5] - s[1]*c[4] + s[2]*c[3] + s[3]*c[2] - s[4]*c[1] + s[5]*c[0]

	// Rows of the adjugate.
	r0 := swz.NewVec4(
		a(1, 1)*c[5] - a(1, 2)*c[4] + a(1, 3)*c[3],
		-a(0, 1)*c[5] + a(0, 2)*c[4] - a(0, 3)*c[3],
		a(3, 1)*s[5] - a(3, 2)*s[4] + a(3, 3)*s[3],
		-a(2, 1)*s[5] + a(2, 2)*s[4] - a(2, 3)*s[3],
	)
	r1 := swz.NewVec4(
		-a(1, 0)*c[5] + a(1, 2)*c[2] - a(1, 3)*c[1],
		a(0, 0)*c[5] - a(0, 2)*c[2] + a(0, 3)*c[1],
		-a(3, 0)*s[5] + a(3, 2)*s[2] - a(3, 3)*s[1],
		a(2, 0)*s[5] - a(2, 2)*s[2] + a(2, 3)*s[1],
	)
	r2 := swz.NewVec4(
		a(1, 0)*c[4] - a(1, 1)*c[2] + a(1, 3)*c[0],
		-a(0, 0)*c[4] + a(0, 1)*c[2] - a(0, 3)*c[0],
		a(3, 0)*s[4] - a(3, 1)*s[2] + a(3, 3)*s[0],
		-a(2, 0)*s[4] + a(2, 1)*s[2] - a(2, 3)*s[0],
	)
	r3 := swz.NewVec4(
		-a(1, 0)*c[3] + a(1, 1)*c[1] - a(1, 2)*c[0],
		a(0, 0)*c[3] - a(0, 1)*c[1] + a(0, 2)*c[0],
		-a(3, 0)*s[3] + a(3, 1)*s[1] - a(3, 2)*s[0],
		a(2, 0)*s[3] - a(2, 1)*s[1] + a(2, 2)*s[0],
	)
	return Mat4FromCols(r0, r1, r2, r3).Transpose().Scale(1 / det)
}

// Invert is Inverse with ErrSingular for a zero determinant.
func (m Mat4[T]) Invert() (Mat4[T], error) {
	if m.Det() == 0 {
		return Mat4[T]{}, ErrSingular
	}
	return m.Inverse(), nil
}

// MulComp returns the componentwise product of m and o.
func (m Mat4[T]) MulComp(o Mat4[T]) Mat4[T] {
	var r Mat4[T]
	for j := range 4 {
		r.cols[j] = m.cols[j].Mul(o.cols[j])
	}
	return r
}

// Mul returns the matrix product m × o.
func (m Mat4[T]) Mul(o Mat4[T]) Mat4[T] {
	var r Mat4[T]
	for j := range 4 {
		r.cols[j] = m.MulVec(o.cols[j])
	}
	return r
}

// MulVec returns m × v for a column vector v.
func (m Mat4[T]) MulVec(v swz.Operand[T]) swz.Vec4[T] {
	checkVec(v, 4)
	var r swz.Vec4[T]
	for j := range 4 {
		r.AddAssign(m.cols[j].Mul(swz.S(v.At(j))))
	}
	return r
}

// VecMul returns v × m for a row vector v.
func (m Mat4[T]) VecMul(v swz.Operand[T]) swz.Vec4[T] {
	checkVec(v, 4)
	return swz.NewVec4(m.cols[0].Dot(v), m.cols[1].Dot(v), m.cols[2].Dot(v), m.cols[3].Dot(v))
}

// Add returns m + o.
func (m Mat4[T]) Add(o Mat4[T]) Mat4[T] {
	var r Mat4[T]
	for j := range 4 {
		r.cols[j] = m.cols[j].Add(o.cols[j])
	}
	return r
}

// Sub returns m - o.
func (m Mat4[T]) Sub(o Mat4[T]) Mat4[T] {
	var r Mat4[T]
	for j := range 4 {
		r.cols[j] = m.cols[j].Sub(o.cols[j])
	}
	return r
}

// Scale returns m with every component multiplied by s.
func (m Mat4[T]) Scale(s T) Mat4[T] {
	var r Mat4[T]
	for j := range 4 {
		r.cols[j] = m.cols[j].Mul(swz.S(s))
	}
	return r
}

// Map returns f applied to every component.
func (m Mat4[T]) Map(f func(T) T) Mat4[T] {
	var r Mat4[T]
	for j := range 4 {
		r.cols[j] = m.cols[j].Map(f)
	}
	return r
}

// Equal reports whether every component of m equals the one in o.
func (m Mat4[T]) Equal(o Mat4[T]) bool {
	for j := range 4 {
		if !m.cols[j].Equal(o.cols[j]) {
			return false
		}
	}
	return true
}

// String formats m column by column as Mat4((c0), (c1), (c2), (c3)).
func (m Mat4[T]) String() string {
	return formatMat[T]("Mat4", m.cols[0], m.cols[1], m.cols[2], m.cols[3])
}
