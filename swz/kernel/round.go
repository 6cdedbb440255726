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

package kernel

import "math"

// Magnitudes at or above these limits have no fractional bits.
const (
	fracLimit64 = 0x1p52
	fracLimit32 = 0x1p23
)

// oneMinusUlp is the largest float64 below 1.
const oneMinusUlp = 0x1.fffffffffffffp-1

// passthrough reports whether x is returned unchanged by the rounding
// family: NaN, ±Inf, ±0, or already integral by magnitude.
func passthrough(x, limit float64) bool {
	return x != x || x == 0 || math.Abs(x) >= limit
}

func fracLimit[T Floats](x T) float64 {
	if isFloat32(x) {
		return fracLimit32
	}
	return fracLimit64
}

// trunc rounds toward zero and keeps the sign of x, so trunc(-0.5) == -0.
// |x| < 2^52, so the int64 conversion is exact and in range.
func trunc(x float64) float64 {
	return math.Copysign(float64(int64(x)), x)
}

// Trunc returns the integer value of x rounded toward zero.
func Trunc[T Floats](x T) T {
	f := float64(x)
	if passthrough(f, fracLimit(x)) {
		return x
	}
	return T(trunc(f))
}

// Floor returns the greatest integer value less than or equal to x.
func Floor[T Floats](x T) T {
	f := float64(x)
	if passthrough(f, fracLimit(x)) {
		return x
	}
	return T(floor(f))
}

func floor(f float64) float64 {
	t := trunc(f)
	if f < 0 && t != f {
		t--
	}
	return t
}

// Ceil returns the least integer value greater than or equal to x.
func Ceil[T Floats](x T) T {
	f := float64(x)
	if passthrough(f, fracLimit(x)) {
		return x
	}
	t := trunc(f)
	if f > 0 && t != f {
		t++
	}
	return T(t)
}

// Round returns the nearest integer, rounding half away from zero.
func Round[T Floats](x T) T {
	f := float64(x)
	if passthrough(f, fracLimit(x)) {
		return x
	}
	t := trunc(f)
	if math.Abs(f-t) >= 0.5 {
		t += math.Copysign(1, f)
	}
	return T(t)
}

// RoundEven returns the nearest integer, rounding ties to even.
//
// The fractional distance decides first; only an exact half consults the
// parity of the truncated value.
func RoundEven[T Floats](x T) T {
	f := float64(x)
	if passthrough(f, fracLimit(x)) {
		return x
	}
	t := trunc(f)
	d := math.Abs(f - t)
	if d > 0.5 || (d == 0.5 && int64(t)&1 != 0) {
		t += math.Copysign(1, f)
	}
	return T(t)
}

// Fract returns x - Floor(x), in [0, 1).
// Fract(±Inf) = NaN, Fract(NaN) = NaN.
func Fract[T Floats](x T) T {
	f := float64(x)
	if math.IsInf(f, 0) {
		return T(math.NaN())
	}
	r := f - float64(Floor(x))
	if isFloat32(x) {
		// Rounding to float32 could produce 1 for tiny negative inputs.
		if r32 := float32(r); r32 >= 1 {
			return T(math.Nextafter32(1, 0))
		}
		return T(r)
	}
	if r >= 1 {
		r = oneMinusUlp
	}
	return T(r)
}

// Mod returns x - y·Floor(x/y), which has the sign of y.
// Division by zero follows IEEE: Mod(x, 0) = NaN.
func Mod[T Floats](x, y T) T {
	if isFloat32(x) {
		q := Floor(float32(x) / float32(y))
		return T(float32(x) - float32(float32(y)*q))
	}
	q := Floor(float64(x) / float64(y))
	return T(float64(x) - float64(float64(y)*q))
}
