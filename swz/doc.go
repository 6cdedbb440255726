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

// Package swz provides small fixed-size vectors in the style of shading
// languages: 1 to 4 components of a boolean, integer or floating-point
// kind, with swizzle views that read or write any selection of components
// as if it were a vector of its own.
//
// Basic usage:
//
//	import "github.com/ajroetker/go-swizzle/swz"
//
//	v := swz.NewVec4[float32](1, 2, 3, 4)
//	v.ZYX().Assign(v.XYZ())            // v = (3, 2, 1, 4)
//	n := v.XYZ().Array()               // [3]float32{3, 2, 1}
//	w := v.Add(swz.S[float32](1))      // broadcast a scalar
//	u := swz.Vec3From[float32](v.XY(), swz.S[float32](9))
//
// # Storage and views
//
// Every vector embeds one StoreN holding its components. All swizzle
// accessors (v.XY(), v.ZYX(), v.RGBA(), ...) return small view values that
// alias that storage through a fixed index list; nothing is copied. A
// swizzle with no repeated component is writable and has type SwizzleN;
// one with repeats (v.XXY()) is read-only and has type ViewN, so writing
// through it does not compile.
//
// Views are non-owning. A view taken from a copy of a vector aliases the
// copy, not the original, and must not be kept past the point where the
// intended owner stops being the one you mean to modify.
//
// # Elementwise dispatch
//
// Vectors, views and scalars wrapped with S all implement Operand. Map1,
// Map2 and Map3 apply a scalar function position by position, broadcasting
// count-1 operands, and write into a Sink; Apply1..Apply3 build a new
// vector, Update1 and Update2 modify their first operand in place. Every
// result is computed before anything is written, so source and destination
// may alias.
//
// # Contract checks
//
// Out-of-range indexes, construction with the wrong component count,
// integer division by zero and similar misuse are programmer errors. They
// panic with a "swz: " message unless the package is built with
// -tags swz_release, which removes the checks.
package swz

//go:generate go run ../cmd/swzgen --output . --package swz --sets xyzw,rgba
