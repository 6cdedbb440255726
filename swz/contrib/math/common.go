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
	"github.com/ajroetker/go-swizzle/internal/check"
	"github.com/ajroetker/go-swizzle/swz"
	"github.com/ajroetker/go-swizzle/swz/kernel"
)

// Abs returns |x|. For floats the sign bit is cleared, so Abs(-0) is +0.
func Abs[T swz.Number](x T) T {
	switch {
	case x < 0:
		return -x
	case x == 0:
		return 0
	}
	return x
}

// Sign returns -1, 0 or 1 according to the sign of x. NaN is returned
// unchanged.
func Sign[T swz.Number](x T) T {
	one := T(1)
	switch {
	case x > 0:
		return one
	case x < 0:
		return -one
	case x == 0:
		return 0
	}
	return x
}

// Min returns y if y < x and x otherwise.
func Min[T swz.Number](x, y T) T {
	if y < x {
		return y
	}
	return x
}

// Max returns y if x < y and x otherwise.
func Max[T swz.Number](x, y T) T {
	if x < y {
		return y
	}
	return x
}

// Clamp returns Min(Max(x, lo), hi). lo > hi is a programmer error.
func Clamp[T swz.Number](x, lo, hi T) T {
	check.Assert(!(lo > hi), "Clamp with min > max")
	return Min(Max(x, lo), hi)
}

// Mix returns the linear blend x*(1-a) + y*a, exact at a = 0 and a = 1.
func Mix[T swz.Floats](x, y, a T) T {
	return x*(1-a) + y*a
}

// Step returns 0 if x < edge and 1 otherwise.
func Step[T swz.Floats](edge, x T) T {
	if x < edge {
		return 0
	}
	return 1
}

// SmoothStep returns the Hermite interpolation 0..1 of x between e0 and e1.
func SmoothStep[T swz.Floats](e0, e1, x T) T {
	t := Clamp((x-e0)/(e1-e0), 0, 1)
	return t * t * (3 - 2*t)
}

func Floor[T swz.Floats](x T) T     { return kernel.Floor(x) }
func Ceil[T swz.Floats](x T) T      { return kernel.Ceil(x) }
func Trunc[T swz.Floats](x T) T     { return kernel.Trunc(x) }
func Round[T swz.Floats](x T) T     { return kernel.Round(x) }
func RoundEven[T swz.Floats](x T) T { return kernel.RoundEven(x) }
func Fract[T swz.Floats](x T) T     { return kernel.Fract(x) }

// Mod returns x - y*Floor(x/y), which has the sign of y.
func Mod[T swz.Floats](x, y T) T {
	return kernel.Mod(x, y)
}

// Sqrt returns the correctly rounded square root of x.
func Sqrt[T swz.Floats](x T) T {
	return kernel.Sqrt(x)
}

// InverseSqrt returns 1/Sqrt(x).
func InverseSqrt[T swz.Floats](x T) T {
	return kernel.RSqrt(x)
}
