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
	"os"
	"strconv"
)

// Path identifies how TwoProduct computes the rounding error of a product.
// Both paths are exact, so the choice never changes a result.
type Path int

const (
	// PathDekker splits both factors into 26-bit halves (Veltkamp/Dekker).
	PathDekker Path = iota

	// PathFMA recovers the error with a single fused multiply-add.
	PathFMA
)

// String returns a human-readable name for the path.
func (p Path) String() string {
	switch p {
	case PathDekker:
		return "dekker"
	case PathFMA:
		return "fma"
	default:
		return "unknown"
	}
}

// currentPath is selected by init from hasFMA, which is set per
// architecture in dispatch_*.go.
var currentPath = PathDekker

func init() {
	if NoFMAEnv() {
		return
	}
	if hasFMA {
		currentPath = PathFMA
	}
}

// CurrentPath returns the two-product path in use.
func CurrentPath() Path {
	return currentPath
}

// HasFMA reports whether the CPU has a hardware fused multiply-add.
func HasFMA() bool {
	return hasFMA
}

// NoFMAEnv checks if the SWZ_NO_FMA environment variable is set.
// When set, the kernel uses the Dekker split even on FMA hardware.
// This is useful for testing and debugging.
func NoFMAEnv() bool {
	val := os.Getenv("SWZ_NO_FMA")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}
