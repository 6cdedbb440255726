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
	"math"

	"github.com/ajroetker/go-swizzle/internal/check"
)

// Scalar operators used by the vector facade. Each is written once for
// every kind in its constraint. Operators whose meaning depends on the kind
// switch on NumberKind and widen to int64 or uint64, which preserves Go's
// wrap-around results once converted back.

func add[T Number](a, b T) T { return a + b }
func sub[T Number](a, b T) T { return a - b }
func mul[T Number](a, b T) T { return a * b }
func neg[T Number](a T) T    { return -a }
func pos[T Number](a T) T    { return a }
func inc[T Number](a T) T    { return a + 1 }
func dec[T Number](a T) T    { return a - 1 }

func identity[T Scalar](a T) T { return a }

func div[T Number](a, b T) T {
	if !NumberKind[T]().IsFloat() {
		check.Assert(b != 0, "integer division by zero")
	}
	return a / b
}

// mod is truncated remainder: the result has the sign of a. Float kinds
// follow math.Mod, which is exact.
func mod[T Number](a, b T) T {
	switch NumberKind[T]() {
	case Int:
		check.Assert(b != 0, "integer modulus by zero")
		return T(int64(a) % int64(b))
	case Uint:
		check.Assert(b != 0, "integer modulus by zero")
		return T(uint64(a) % uint64(b))
	default:
		return T(math.Mod(float64(a), float64(b)))
	}
}

func complement[T Number](a T) T {
	switch NumberKind[T]() {
	case Int:
		return T(^int64(a))
	case Uint:
		return T(^uint64(a))
	}
	check.Assert(false, "bitwise complement on a float kind")
	return a
}

func and[T Number](a, b T) T {
	switch NumberKind[T]() {
	case Int:
		return T(int64(a) & int64(b))
	case Uint:
		return T(uint64(a) & uint64(b))
	}
	check.Assert(false, "bitwise and on a float kind")
	return a
}

func or[T Number](a, b T) T {
	switch NumberKind[T]() {
	case Int:
		return T(int64(a) | int64(b))
	case Uint:
		return T(uint64(a) | uint64(b))
	}
	check.Assert(false, "bitwise or on a float kind")
	return a
}

func xor[T Number](a, b T) T {
	switch NumberKind[T]() {
	case Int:
		return T(int64(a) ^ int64(b))
	case Uint:
		return T(uint64(a) ^ uint64(b))
	}
	check.Assert(false, "bitwise xor on a float kind")
	return a
}

func shl[T Number](a, b T) T {
	switch NumberKind[T]() {
	case Int:
		check.Assert(b >= 0, "negative shift count")
		return T(int64(a) << uint64(int64(b)))
	case Uint:
		return T(uint64(a) << uint64(b))
	}
	check.Assert(false, "shift on a float kind")
	return a
}

func shr[T Number](a, b T) T {
	switch NumberKind[T]() {
	case Int:
		check.Assert(b >= 0, "negative shift count")
		return T(int64(a) >> uint64(int64(b)))
	case Uint:
		return T(uint64(a) >> uint64(b))
	}
	check.Assert(false, "shift on a float kind")
	return a
}

// shiftLeft and shiftRight keep each operand in its own kind.
func shiftLeft[T, S Integers](a T, n S) T {
	check.Assert(n >= 0, "negative shift count")
	return a << n
}

func shiftRight[T, S Integers](a T, n S) T {
	check.Assert(n >= 0, "negative shift count")
	return a >> n
}

func equal[T Scalar](a, b T) bool    { return a == b }
func notEqual[T Scalar](a, b T) bool { return a != b }

func lessThan[T Number](a, b T) bool     { return a < b }
func lessEqual[T Number](a, b T) bool    { return a <= b }
func greaterThan[T Number](a, b T) bool  { return a > b }
func greaterEqual[T Number](a, b T) bool { return a >= b }

func logicalAnd(a, b bool) bool { return a && b }
func logicalOr(a, b bool) bool  { return a || b }
func logicalXor(a, b bool) bool { return a != b }
func logicalNot(a bool) bool    { return !a }

func convert[R, T Number](a T) R { return R(a) }

// mix returns a + (b-a)*t.
func mix[T Number](a, b, t T) T { return a + (b-a)*t }

// ShiftLeft sets dst[i] = a[i] << n[i]. The shift count keeps its own kind
// and is never promoted to the kind of a. A negative count is a programmer
// error.
//
//	var out swz.Vec3[uint32]
//	swz.ShiftLeft[uint32, int8](&out, v, swz.S[int8](2))
func ShiftLeft[T, S Integers](dst Sink[T], a Operand[T], n Operand[S]) {
	MapNative2(dst, shiftLeft[T, S], a, n)
}

// ShiftRight sets dst[i] = a[i] >> n[i]; arithmetic for signed kinds.
func ShiftRight[T, S Integers](dst Sink[T], a Operand[T], n Operand[S]) {
	MapNative2(dst, shiftRight[T, S], a, n)
}
