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

import "unsafe"

// MaxLen is the largest component count of any vector or view.
const MaxLen = 4

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Number is a constraint for every kind that supports arithmetic.
type Number interface {
	Floats | Integers
}

// Scalar is a constraint for every component kind, booleans included.
type Scalar interface {
	Number | ~bool
}

// Kind classifies a component type.
type Kind uint8

const (
	// Invalid is reported for types KindOf cannot classify.
	Invalid Kind = iota
	Bool
	Int
	Uint
	Float32
	Float64
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case Bool:
		return "bool"
	case Int:
		return "int"
	case Uint:
		return "uint"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	default:
		return "invalid"
	}
}

// IsFloat reports whether k is Float32 or Float64.
func (k Kind) IsFloat() bool {
	return k == Float32 || k == Float64
}

// IsInteger reports whether k is Int or Uint.
func (k Kind) IsInteger() bool {
	return k == Int || k == Uint
}

// KindOf returns the kind of T. Defined types (type Meters float64) are
// classified by NumberKind; KindOf reports Invalid for them.
func KindOf[T Scalar]() Kind {
	var zero T
	switch any(zero).(type) {
	case bool:
		return Bool
	case int, int8, int16, int32, int64:
		return Int
	case uint, uint8, uint16, uint32, uint64:
		return Uint
	case float32:
		return Float32
	case float64:
		return Float64
	default:
		return Invalid
	}
}

// NumberKind returns the kind of any numeric T, defined types included.
// It probes arithmetic instead of switching on the dynamic type.
func NumberKind[T Number]() Kind {
	var zero T
	one := T(1)
	if one/2 != zero {
		if unsafe.Sizeof(zero) == 4 {
			return Float32
		}
		return Float64
	}
	if zero-one < zero {
		return Int
	}
	return Uint
}

// CommonKind returns the kind both operands are promoted to under the
// uniform policy: the wider of the two in the order
// Bool < Int < Uint < Float32 < Float64.
func CommonKind(a, b Kind) Kind {
	return max(a, b)
}
