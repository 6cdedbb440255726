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

// Package mat provides 2×2, 3×3 and 4×4 float matrices stored as columns
// of swz vectors.
//
// Matrices are column-major throughout: Col(j) is the j-th column,
// At(i, j) is row i of column j, and MatNFrom and Array flatten column
// by column. Products follow the usual linear-algebra convention, so
// m.MulVec(v) transforms a column vector and m.Mul(o) applies o first.
//
//	m := mat.Mat3From[float32](
//		swz.NewVec3[float32](1, 0, 0),
//		swz.NewVec3[float32](0, 1, 0),
//		swz.NewVec3[float32](2, 3, 1),
//	)
//	p := m.MulVec(swz.NewVec3[float32](1, 1, 1))
//
// Inverse uses closed-form cofactor expansions; a singular matrix yields
// IEEE infinities or NaNs. Invert reports ErrSingular instead.
package mat
