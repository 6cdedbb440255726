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

// This file is the elementwise dispatch framework. Every vector operator
// lowers to one of the Map functions below.
//
// The result count is the destination's count. Each operand must have that
// count or count 1, which is broadcast. Positions are evaluated left to
// right into a temporary and only then written, so a destination may alias
// any of its operands (v.YX() = v.XY() swaps instead of smearing).

// Map1 sets dst[i] = op(a[i]) for every position of dst.
func Map1[A, R Scalar, OA Operand[A], D Sink[R]](dst D, op func(A) R, a OA) {
	c := dst.Len()
	checkCount(a.Len(), c)
	var tmp [MaxLen]R
	for i := 0; i < c; i++ {
		tmp[i] = op(broadcastAt[A](a, i))
	}
	for i := 0; i < c; i++ {
		dst.SetAt(i, tmp[i])
	}
}

// Map2 sets dst[i] = op(a[i], b[i]) for every position of dst.
func Map2[A, B, R Scalar, OA Operand[A], OB Operand[B], D Sink[R]](dst D, op func(A, B) R, a OA, b OB) {
	c := dst.Len()
	checkCount(a.Len(), c)
	checkCount(b.Len(), c)
	var tmp [MaxLen]R
	for i := 0; i < c; i++ {
		tmp[i] = op(broadcastAt[A](a, i), broadcastAt[B](b, i))
	}
	for i := 0; i < c; i++ {
		dst.SetAt(i, tmp[i])
	}
}

// Map3 sets dst[i] = op(a[i], b[i], c[i]) for every position of dst.
func Map3[A, B, C, R Scalar, OA Operand[A], OB Operand[B], OC Operand[C], D Sink[R]](dst D, op func(A, B, C) R, a OA, b OB, c OC) {
	n := dst.Len()
	checkCount(a.Len(), n)
	checkCount(b.Len(), n)
	checkCount(c.Len(), n)
	var tmp [MaxLen]R
	for i := 0; i < n; i++ {
		tmp[i] = op(broadcastAt[A](a, i), broadcastAt[B](b, i), broadcastAt[C](c, i))
	}
	for i := 0; i < n; i++ {
		dst.SetAt(i, tmp[i])
	}
}

// Apply1 returns a new V holding op(a[i]) at every position.
//
//	abs := swz.Apply1[swz.Vec3[float64]](math.Abs, v)
func Apply1[V any, PV Sized[V, R], A, R Scalar, OA Operand[A]](op func(A) R, a OA) V {
	var out V
	Map1(PV(&out), op, a)
	return out
}

// Apply2 returns a new V holding op(a[i], b[i]) at every position.
func Apply2[V any, PV Sized[V, R], A, B, R Scalar, OA Operand[A], OB Operand[B]](op func(A, B) R, a OA, b OB) V {
	var out V
	Map2(PV(&out), op, a, b)
	return out
}

// Apply3 returns a new V holding op(a[i], b[i], c[i]) at every position.
func Apply3[V any, PV Sized[V, R], A, B, C, R Scalar, OA Operand[A], OB Operand[B], OC Operand[C]](op func(A, B, C) R, a OA, b OB, c OC) V {
	var out V
	Map3(PV(&out), op, a, b, c)
	return out
}

// Update1 replaces every component of dst with op of itself.
func Update1[A Scalar, D Sink[A]](dst D, op func(A) A) {
	Map1(dst, op, dst)
}

// Update2 replaces dst[i] with op(dst[i], b[i]).
func Update2[A, B Scalar, D Sink[A], OB Operand[B]](dst D, op func(A, B) A, b OB) {
	Map2(dst, op, dst, b)
}

// Uniform2 adapts op, written for one common kind C, to operands of kinds
// A and B. Both operands are converted to C before op runs, so mixing
// int32 and float32 operands with C = float64 yields a float64 result.
// CommonKind reports which C the usual promotion picks.
func Uniform2[C, A, B Number](op func(C, C) C) func(A, B) C {
	return func(a A, b B) C {
		return op(C(a), C(b))
	}
}

// Uniform3 is Uniform2 for three operands.
func Uniform3[C, A, B, D Number](op func(C, C, C) C) func(A, B, D) C {
	return func(a A, b B, d D) C {
		return op(C(a), C(b), C(d))
	}
}

// Native2 is the heterogeneous policy: op sees each operand in its own
// kind. It exists so call sites state the policy explicitly; shifts use it
// so the shift count is never promoted to the shifted kind.
func Native2[A, B, R Scalar](op func(A, B) R) func(A, B) R {
	return op
}

// MapUniform2 is Map2 under the uniform policy with common kind C.
func MapUniform2[C, A, B Number](dst Sink[C], op func(C, C) C, a Operand[A], b Operand[B]) {
	Map2(dst, Uniform2[C, A, B](op), a, b)
}

// MapNative2 is Map2 under the heterogeneous policy.
func MapNative2[A, B, R Scalar](dst Sink[R], op func(A, B) R, a Operand[A], b Operand[B]) {
	Map2(dst, Native2(op), a, b)
}
