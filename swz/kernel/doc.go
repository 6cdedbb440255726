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

// Package kernel provides deterministic scalar math for go-swizzle:
// rounding, remainder and square-root functions whose results depend only
// on their inputs, never on the CPU, the Go toolchain or whether they run
// inside a generator at build time or in the program at run time.
//
// # Rounding
//
// Floor, Ceil, Trunc, Round, RoundEven, Fract and Mod screen their input
// first. NaN, ±Inf, ±0 and magnitudes too large to carry a fractional part
// (2^52 for float64, 2^23 for float32) are returned unchanged, so the
// integer conversion used internally never overflows.
//
// # Square root
//
// Sqrt64 seeds a reciprocal square root from the float bit pattern, refines
// it with Newton steps, applies one Newton correction in double-double
// arithmetic and finishes with an exact midpoint test. The result is the
// correctly rounded square root, bit-identical to the hardware instruction.
//
// Every product in this package is wrapped in an explicit float64
// conversion. The Go spec allows x*y+z to be fused on some architectures;
// the conversion forces the intermediate rounding so results do not change
// between amd64 and arm64.
//
// # Double-double primitives
//
// TwoSum, FastTwoSum, Split and TwoProduct are exported, together with the
// DD pair type, for callers that need compensated arithmetic of their own.
package kernel

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}
