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

package math

import (
	stdmath "math"

	"github.com/chewxy/math32"

	"github.com/ajroetker/go-swizzle/swz"
)

// unary evaluates x with the function matching its width.
func unary[T swz.Floats](x T, f32 func(float32) float32, f64 func(float64) float64) T {
	if swz.NumberKind[T]() == swz.Float32 {
		return T(f32(float32(x)))
	}
	return T(f64(float64(x)))
}

func binary[T swz.Floats](x, y T, f32 func(float32, float32) float32, f64 func(float64, float64) float64) T {
	if swz.NumberKind[T]() == swz.Float32 {
		return T(f32(float32(x), float32(y)))
	}
	return T(f64(float64(x), float64(y)))
}

// Radians converts degrees to radians.
func Radians[T swz.Floats](deg T) T {
	return deg * T(stdmath.Pi/180)
}

// Degrees converts radians to degrees.
func Degrees[T swz.Floats](rad T) T {
	return rad * T(180/stdmath.Pi)
}

func Sin[T swz.Floats](x T) T  { return unary(x, math32.Sin, stdmath.Sin) }
func Cos[T swz.Floats](x T) T  { return unary(x, math32.Cos, stdmath.Cos) }
func Tan[T swz.Floats](x T) T  { return unary(x, math32.Tan, stdmath.Tan) }
func Asin[T swz.Floats](x T) T { return unary(x, math32.Asin, stdmath.Asin) }
func Acos[T swz.Floats](x T) T { return unary(x, math32.Acos, stdmath.Acos) }
func Atan[T swz.Floats](x T) T { return unary(x, math32.Atan, stdmath.Atan) }

// Atan2 returns the angle of the point (x, y), in [-Pi, Pi].
func Atan2[T swz.Floats](y, x T) T {
	return binary(y, x, math32.Atan2, stdmath.Atan2)
}

func Exp[T swz.Floats](x T) T  { return unary(x, math32.Exp, stdmath.Exp) }
func Exp2[T swz.Floats](x T) T { return unary(x, math32.Exp2, stdmath.Exp2) }
func Log[T swz.Floats](x T) T  { return unary(x, math32.Log, stdmath.Log) }
func Log2[T swz.Floats](x T) T { return unary(x, math32.Log2, stdmath.Log2) }

// Pow returns x**y.
func Pow[T swz.Floats](x, y T) T {
	return binary(x, y, math32.Pow, stdmath.Pow)
}
