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

// Package math provides the scalar functions of a shading language's
// built-in library, generic over the swz kinds. They compose with vectors
// through the elementwise framework:
//
//	s := v.Map(math.Sin[float32])
//	p := v.Zip(w, math.Pow[float32])
//	c := swz.Apply3[swz.Vec3[float64]](math.Clamp[float64], v, swz.S(0.0), swz.S(1.0))
//
// float32 arguments are evaluated with github.com/chewxy/math32, float64
// arguments with the standard library. Rounding, Mod, Sqrt and InverseSqrt
// come from package kernel and are deterministic on every platform.
//
// Angle and exponential functions:
//   - Radians, Degrees
//   - Sin, Cos, Tan, Asin, Acos, Atan, Atan2
//   - Exp, Exp2, Log, Log2, Pow, Sqrt, InverseSqrt
//
// Common functions:
//   - Abs, Sign, Min, Max, Clamp
//   - Floor, Ceil, Trunc, Round, RoundEven, Fract, Mod
//   - Mix, Step, SmoothStep
package math
