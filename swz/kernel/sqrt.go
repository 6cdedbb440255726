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

import (
	"math"
	"unsafe"
)

const (
	// rsqrtMagic64 seeds 1/sqrt(x) from the bit pattern of x (Lomont's
	// 64-bit variant of the 0x5f3759df constant). Relative error < 3.5%.
	rsqrtMagic64 = 0x5fe6eb50c7b537a9

	// rsqrtSteps Newton steps take the seed from 3.5% to about one ulp.
	rsqrtSteps = 4

	// Inputs outside [2^-600, 2^600] are rescaled by an even power of two
	// so that squares, ulps and their products stay normal and finite.
	scaleLow   = 0x1p-600
	scaleHigh  = 0x1p600
	scaleDown  = 0x1p-600
	scaleUp    = 0x1p600
	unscaleLow = 0x1p-300
	unscaleHi  = 0x1p300
)

// Sqrt returns the correctly rounded square root of x.
func Sqrt[T Floats](x T) T {
	if isFloat32(x) {
		return T(Sqrt32(float32(x)))
	}
	return T(Sqrt64(float64(x)))
}

// RSqrt returns 1/Sqrt(x), each step correctly rounded.
// RSqrt(±0) = ±Inf, RSqrt(+Inf) = 0, RSqrt(x<0) = NaN.
func RSqrt[T Floats](x T) T {
	if isFloat32(x) {
		return T(1 / Sqrt32(float32(x)))
	}
	return T(1 / Sqrt64(float64(x)))
}

// Sqrt32 returns the correctly rounded float32 square root of x.
// Rounding the correctly rounded float64 result again is safe because
// 53 >= 2*24+2.
func Sqrt32(x float32) float32 {
	return float32(Sqrt64(float64(x)))
}

// Sqrt64 returns the correctly rounded square root of x.
//
// Special cases are:
//
//	Sqrt64(+Inf) = +Inf
//	Sqrt64(±0) = ±0
//	Sqrt64(x < 0) = NaN
//	Sqrt64(NaN) = NaN
func Sqrt64(x float64) float64 {
	switch {
	case x != x:
		return x
	case x < 0:
		return math.NaN()
	case x == 0 || x > math.MaxFloat64:
		return x
	}

	unscale := 1.0
	if x < scaleLow {
		x *= scaleUp
		unscale = unscaleLow
	} else if x > scaleHigh {
		x *= scaleDown
		unscale = unscaleHi
	}

	y := rsqrtSeed(x)
	s := float64(x * y)
	z := newtonDD(x, s, y).Float64()
	return midpointRound(x, z) * unscale
}

// rsqrtSeed approximates 1/sqrt(x) for normal positive x.
func rsqrtSeed(x float64) float64 {
	y := math.Float64frombits(rsqrtMagic64 - math.Float64bits(x)>>1)
	h := float64(0.5 * x)
	for range rsqrtSteps {
		y = float64(y * (1.5 - float64(float64(h*y)*y)))
	}
	return y
}

// newtonDD applies one Newton step s + (x - s²)·y/2 in double-double.
// The residual x - s² is formed from the exact square of s; x - p is exact
// because p is within a factor of two of x.
func newtonDD(x, s, y float64) DD {
	p, e := TwoProduct(s, s)
	r := (x - p) - e
	c := float64(float64(r*y) * 0.5)
	hi, lo := FastTwoSum(s, c)
	return DD{hi, lo}
}

// midpointRound moves z to the neighbour that is the correctly rounded
// square root of x. z is at most one ulp away on entry.
//
// z is correct iff (z - d/2)² < x < (z + u/2)², where u and d are the
// gaps to the next float above and below z. Both sides are evaluated
// exactly; an exact square root of a float never falls on a midpoint, so
// the inequalities are strict.
func midpointRound(x, z float64) float64 {
	for range 2 {
		p, e := TwoProduct(z, z)
		diff := p - x
		up := math.Nextafter(z, math.Inf(1))
		u := up - z
		if exactSign(diff, e, float64(z*u), float64(float64(u*u)*0.25)) <= 0 {
			z = up
			continue
		}
		down := math.Nextafter(z, 0)
		d := z - down
		if exactSign(-diff, -e, float64(z*d), -float64(float64(d*d)*0.25)) <= 0 {
			z = down
			continue
		}
		break
	}
	return z
}

func isFloat32[T Floats](x T) bool {
	return unsafe.Sizeof(x) == 4
}
