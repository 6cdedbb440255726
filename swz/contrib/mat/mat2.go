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

// Mat2 is a 2×2 matrix of two column vectors.
type Mat2[T swz.Floats] struct {
	cols [2]swz.Vec2[T]
}

// Mat2FromCols returns the matrix with the given columns.
func Mat2FromCols[T swz.Floats](c0, c1 swz.Vec2[T]) Mat2[T] {
	return Mat2[T]{cols: [2]swz.Vec2[T]{c0, c1}}
}

// Mat2From flattens parts column by column into a new matrix. The parts
// must supply exactly four components.
func Mat2From[T swz.Floats](parts ...swz.Operand[T]) Mat2[T] {
	var a [4]T
	flatten(a[:], parts)
	return Mat2FromArray(a)
}

// Mat2FromArray returns the matrix whose columns are consecutive pairs
// of a.
func Mat2FromArray[T swz.Floats](a [4]T) Mat2[T] {
	var m Mat2[T]
	for j := range 2 {
		m.cols[j] = swz.Vec2FromArray([2]T(a[2*j : 2*j+2]))
	}
	return m
}

// Diag2 returns the matrix with x on the diagonal and zero elsewhere.
func Diag2[T swz.Floats](x T) Mat2[T] {
	var m Mat2[T]
	for j := range 2 {
		m.cols[j].SetAt(j, x)
	}
	return m
}

// Identity2 returns the 2×2 identity matrix.
func Identity2[T swz.Floats]() Mat2[T] {
	return Diag2[T](1)
}

// Array returns the components in column-major order.
func (m Mat2[T]) Array() [4]T {
	var a [4]T
	for j, c := range m.cols {
		ca := c.Array()
		copy(a[2*j:], ca[:])
	}
	return a
}

// Col returns column j.
func (m Mat2[T]) Col(j int) swz.Vec2[T] {
	check.Index(j, 2)
	return m.cols[j]
}

// SetCol replaces column j with the two components of v.
func (m *Mat2[T]) SetCol(j int, v swz.Operand[T]) {
	check.Index(j, 2)
	m.cols[j] = swz.Vec2From[T](v)
}

// Row returns row i gathered across the columns.
func (m Mat2[T]) Row(i int) swz.Vec2[T] {
	return swz.NewVec2(m.cols[0].At(i), m.cols[1].At(i))
}

// At returns the component in row i of column j.
func (m Mat2[T]) At(i, j int) T {
	check.Index(j, 2)
	return m.cols[j].At(i)
}

// SetAt sets the component in row i of column j.
func (m *Mat2[T]) SetAt(i, j int, x T) {
	check.Index(j, 2)
	m.cols[j].SetAt(i, x)
}

// Mat3 embeds m in the upper-left block of the 3×3 identity.
func (m Mat2[T]) Mat3() Mat3[T] {
	r := Identity3[T]()
	for j := range 2 {
		r.cols[j] = swz.Vec3From[T](m.cols[j], swz.S[T](0))
	}
	return r
}

// Mat4 embeds m in the upper-left block of the 4×4 identity.
func (m Mat2[T]) Mat4() Mat4[T] {
	r := Identity4[T]()
	for j := range 2 {
		r.cols[j] = swz.Vec4From[T](m.cols[j], swz.S[T](0), swz.S[T](0))
	}
	return r
}

// Transpose returns m with rows and columns exchanged.
func (m Mat2[T]) Transpose() Mat2[T] {
	return Mat2FromCols(m.Row(0), m.Row(1))
}

// Det returns the determinant.
func (m Mat2[T]) Det() T {
	return m.cols[0].At(0)*m.cols[1].At(1) - m.cols[1].At(0)*m.cols[0].At(1)
}

// Inverse returns the inverse of m. A singular m gives non-finite
// components.
func (m Mat2[T]) Inverse() Mat2[T] {
	a, b := m.cols[0].At(0), m.cols[0].At(1)
	c, d := m.cols[1].At(0), m.cols[1].At(1)
	return Mat2FromCols(swz.NewVec2(d, -b), swz.NewVec2(-c, a)).Scale(1 / m.Det())
}

// Invert is Inverse with ErrSingular for a zero determinant.
func (m Mat2[T]) Invert() (Mat2[T], error) {
	if m.Det() == 0 {
		return Mat2[T]{}, ErrSingular
	}
	return m.Inverse(), nil
}

// MulComp returns the componentwise product of m and o.
func (m Mat2[T]) MulComp(o Mat2[T]) Mat2[T] {
	var r Mat2[T]
	for j := range 2 {
		r.cols[j] = m.cols[j].Mul(o.cols[j])
	}
	return r
}

// Mul returns the matrix product m × o.
func (m Mat2[T]) Mul(o Mat2[T]) Mat2[T] {
	var r Mat2[T]
	for j := range 2 {
		r.cols[j] = m.MulVec(o.cols[j])
	}
	return r
}

// MulVec returns m × v for a column vector v.
func (m Mat2[T]) MulVec(v swz.Operand[T]) swz.Vec2[T] {
	checkVec(v, 2)
	var r swz.Vec2[T]
	for j := range 2 {
		r.AddAssign(m.cols[j].Mul(swz.S(v.At(j))))
	}
	return r
}

// VecMul returns v × m for a row vector v.
func (m Mat2[T]) VecMul(v swz.Operand[T]) swz.Vec2[T] {
	checkVec(v, 2)
	return swz.NewVec2(m.cols[0].Dot(v), m.cols[1].Dot(v))
}

// Add returns m + o.
func (m Mat2[T]) Add(o Mat2[T]) Mat2[T] {
	var r Mat2[T]
	for j := range 2 {
		r.cols[j] = m.cols[j].Add(o.cols[j])
	}
	return r
}

// Sub returns m - o.
func (m Mat2[T]) Sub(o Mat2[T]) Mat2[T] {
	var r Mat2[T]
	for j := range 2 {
		r.cols[j] = m.cols[j].Sub(o.cols[j])
	}
	return r
}

// Scale returns m with every component multiplied by s.
func (m Mat2[T]) Scale(s T) Mat2[T] {
	var r Mat2[T]
	for j := range 2 {
		r.cols[j] = m.cols[j].Mul(swz.S(s))
	}
	return r
}

// Map returns f applied to every component.
func (m Mat2[T]) Map(f func(T) T) Mat2[T] {
	var r Mat2[T]
	for j := range 2 {
		r.cols[j] = m.cols[j].Map(f)
	}
	return r
}

// Equal reports whether every component of m equals the one in o.
func (m Mat2[T]) Equal(o Mat2[T]) bool {
	for j := range 2 {
		if !m.cols[j].Equal(o.cols[j]) {
			return false
		}
	}
	return true
}

// String formats m column by column as Mat2((c0), (c1)).
func (m Mat2[T]) String() string {
	return formatMat[T]("Mat2", m.cols[0], m.cols[1])
}
