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

// Package check holds the contract assertions shared by every go-swizzle
// package.
//
// Assertions are on by default. Building with -tags swz_release removes
// them: the condition is still evaluated by the caller, but Enabled is a
// constant false and the compiler drops the panic path.
package check

import "fmt"

// Assert panics with a "swz: " prefixed message when cond is false and
// assertions are enabled. Violations are programmer errors and are never
// meant to be recovered.
func Assert(cond bool, msg string) {
	if Enabled && !cond {
		panic("swz: " + msg)
	}
}

// Assertf is Assert with a formatted message. The arguments are only
// formatted on failure.
func Assertf(cond bool, format string, args ...any) {
	if Enabled && !cond {
		panic("swz: " + fmt.Sprintf(format, args...))
	}
}

// Index asserts 0 <= i < n.
func Index(i, n int) {
	if Enabled && uint(i) >= uint(n) {
		panic(fmt.Sprintf("swz: index %d out of range [0,%d)", i, n))
	}
}
