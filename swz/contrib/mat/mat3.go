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

// Mat3 is a 3×3 matrix of three column vectors.
type Mat3[T swz.Floats] struct {
	cols [3]swz.Vec3[T]
}

// Mat3FromCols returns the matrix with the given columns.
func Mat3FromCols[T swz.Floats](c0, c1, c2 swz.Vec3[T]) Mat3[T] {
	return Mat3[T]{cols: [3]swz.Vec3[T]{c0, c1, c2}}
}

// Mat3From flattens parts column by column into a new matrix. The parts
// must supply exactly nine components.
func Mat3From[T swz.Floats](parts ...swz.Operand[T]) Mat3[T] {
	var a [9]T
	flatten(a[:], parts)
	return Mat3FromArray(a)
}

// Mat3FromArray returns the matrix whose columns are consecutive triples
// of a.
func Mat3FromArray[T swz.Floats](a [9]T) Mat3[T] {
	var m Mat3[T]
	for j := range 3 {
		m.cols[j] = swz.Vec3FromArray([3]T(a[3*j : 3*j+3]))
	}
	return m
}

// Diag3 returns the matrix with x on the diagonal and zero elsewhere.
func Diag3[T swz.Floats](x T) Mat3[T] {
	var m Mat3[T]
	for j := range 3 {
		m.cols[j].SetAt(j, x)
	}
	return m
}

// Identity3 returns the 3×3 identity matrix.
func Identity3[T swz.Floats]() Mat3[T] {
	return Diag3[T](1)
}

// Array returns the components in column-major order.
func (m Mat3[T]) Array() [9]T {
	var a [9]T
	for j, c := range m.cols {
		ca := c.Array()
		copy(a[3*j:], ca[:])
	}
	return a
}

// Col returns column j.
func (m Mat3[T]) Col(j int) swz.Vec3[T] {
	check.Index(j, 3)
	return m.cols[j]
}

// SetCol replaces column j with the three components of v.
func (m *Mat3[T]) SetCol(j int, v swz.Operand[T]) {
	check.Index(j, 3)
	m.cols[j] = swz.Vec3From[T](v)
}

// Row returns row i gathered across the columns.
func (m Mat3[T]) Row(i int) swz.Vec3[T] {
	return swz.NewVec3(m.cols[0].At(i), m.cols[1].At(i), m.cols[2].At(i))
}

// At returns the component in row i of column j.
func (m Mat3[T]) At(i, j int) T {
	check.Index(j, 3)
	return m.cols[j].At(i)
}

// SetAt sets the component in row i of column j.
func (m *Mat3[T]) SetAt(i, j int, x T) {
	check.Index(j, 3)
	m.cols[j].SetAt(i, x)
}

// Mat2 returns the upper-left 2×2 block.
func (m Mat3[T]) Mat2() Mat2[T] {
	var r Mat2[T]
	for j := range 2 {
		r.cols[j] = swz.Truncate2[T](m.cols[j])
	}
	return r
}

// Mat4 embeds m in the upper-left block of the 4×4 identity.
func (m Mat3[T]) Mat4() Mat4[T] {
	r := Identity4[T]()
	for j := range 3 {
		r.cols[j] = swz.Vec4From[T](m.cols[j], swz.S[T](0))
	}
	return r
}

// Transpose returns m with rows and columns exchanged.
func (m Mat3[T]) Transpose() Mat3[T] {
	return Mat3FromCols(m.Row(0), m.Row(1), m.Row(2))
}

// Det returns the determinant, the scalar triple product of the columns.
func (m Mat3[T]) Det() T {
	return m.cols[0].Dot(m.cols[1].Cross(m.cols[2]))
}

// Inverse returns the inverse of m. A singular m gives non-finite
// components.
func (m Mat3[T]) Inverse() Mat3[T] {
	// The rows of the inverse are the pairwise cross products of the
	// columns over the determinant.
	r0 := m.cols[1].Cross(m.cols[2])
	r1 := m.cols[2].Cross(m.cols[0])
	r2 := m.cols[0].Cross(m.cols[1])
	return Mat3FromCols(r0, r1, r2).Transpose().Scale(1 / m.Det())
}

// Invert is Inverse with ErrSingular for a zero determinant.
func (m Mat3[T]) Invert() (Mat3[T], error) {
	if m.Det() == 0 {
		return Mat3[T]{}, ErrSingular
	}
	return m.Inverse(), nil
}

// MulComp returns the componentwise product of m and o.
func (m Mat3[T]) MulComp(o Mat3[T]) Mat3[T] {
	var r Mat3[T]
	for j := range 3 {
		r.cols[j] = m.cols[j].Mul(o.cols[j])
	}
	return r
}

// Mul returns the matrix product m × o.
func (m Mat3[T]) Mul(o Mat3[T]) Mat3[T] {
	var r Mat3[T]
	for j := range 3 {
		r.cols[j] = m.MulVec(o.cols[j])
	}
	return r
}

// MulVec returns m × v for a column vector v.
func (m Mat3[T]) MulVec(v swz.Operand[T]) swz.Vec3[T] {
	checkVec(v, 3)
	var r swz.Vec3[T]
	for j := range 3 {
		r.AddAssign(m.cols[j].Mul(swz.S(v.At(j))))
	}
	return r
}

// VecMul returns v × m for a row vector v.
func (m Mat3[T]) VecMul(v swz.Operand[T]) swz.Vec3[T] {
	checkVec(v, 3)
	return swz.NewVec3(m.cols[0].Dot(v), m.cols[1].Dot(v), m.cols[2].Dot(v))
}

// Add returns m + o.
func (m Mat3[T]) Add(o Mat3[T]) Mat3[T] {
	var r Mat3[T]
	for j := range 3 {
		r.cols[j] = m.cols[j].Add(o.cols[j])
	}
	return r
}

// Sub returns m - o.
func (m Mat3[T]) Sub(o Mat3[T]) Mat3[T] {
	var r Mat3[T]
	for j := range 3 {
		r.cols[j] = m.cols[j].Sub(o.cols[j])
	}
	return r
}

// Scale returns m with every component multiplied by s.
func (m Mat3[T]) Scale(s T) Mat3[T] {
	var r Mat3[T]
	for j := range 3 {
		r.cols[j] = m.cols[j].Mul(swz.S(s))
	}
	return r
}

// Map returns f applied to every component.
func (m Mat3[T]) Map(f func(T) T) Mat3[T] {
	var r Mat3[T]
	for j := range 3 {
		r.cols[j] = m.cols[j].Map(f)
	}
	return r
}

// Equal reports whether every component of m equals the one in o.
func (m Mat3[T]) Equal(o Mat3[T]) bool {
	for j := range 3 {
		if !m.cols[j].Equal(o.cols[j]) {
			return false
		}
	}
	return true
}

// String formats m column by column as Mat3((c0), (c1), (c2)).
func (m Mat3[T]) String() string {
	return formatMat[T]("Mat3", m.cols[0], m.cols[1], m.cols[2])
}
