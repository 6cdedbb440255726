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

package swz

import (
	"github.com/ajroetker/go-swizzle/internal/check"
	"github.com/ajroetker/go-swizzle/swz/kernel"
)

// sqrtOf is the correctly rounded square root for float kinds.
func sqrtOf[T Number](x T) T {
	if NumberKind[T]() == Float32 {
		return T(kernel.Sqrt32(float32(x)))
	}
	return T(kernel.Sqrt64(float64(x)))
}

func requireFloat[T Number](op string) {
	check.Assertf(NumberKind[T]().IsFloat(), "%s requires a float kind, have %s", op, NumberKind[T]())
}

// dot sums a[i]*b[i] left to right.
func dot[T Number, A Operand[T], B Operand[T]](a A, b B) T {
	c := a.Len()
	checkCount(b.Len(), c)
	var s T
	for i := 0; i < c; i++ {
		s += a.At(i) * broadcastAt[T](b, i)
	}
	return s
}

func length[T Number, O Operand[T]](o O) T {
	requireFloat[T]("Length")
	return sqrtOf(dot[T](o, o))
}

// reflectBy returns the per-component reflection i - 2*d*n for d = dot(n, i).
func reflectBy[T Number](d T) func(i, n T) T {
	return func(i, n T) T {
		return i - 2*d*n
	}
}

// Cross returns the cross product v × o.
func (v Vec3[T]) Cross(o Vec3[T]) Vec3[T] {
	a, b := v.c, o.c
	return NewVec3(
		a[1]*b[2]-b[1]*a[2],
		a[2]*b[0]-b[2]*a[0],
		a[0]*b[1]-b[0]*a[1],
	)
}
