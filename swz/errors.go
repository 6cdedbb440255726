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

import "errors"

// Sentinel errors returned by the run-time swizzle entry points (Pick,
// PickIndex and the Dynamic view). Every other entry point treats misuse
// as a programmer error and panics instead.
//
// Callers match with errors.Is; the returned errors wrap these sentinels
// with the offending pattern or index.
var (
	// ErrBadSwizzle reports an empty, too long or unrecognized pattern.
	ErrBadSwizzle = errors.New("swz: invalid swizzle pattern")

	// ErrMixedNameSets reports a pattern mixing xyzw, rgba and stpq letters.
	ErrMixedNameSets = errors.New("swz: swizzle mixes component name sets")

	// ErrIndexOutOfRange reports a component index beyond the storage size
	// or a logical index beyond the view size.
	ErrIndexOutOfRange = errors.New("swz: swizzle index out of range")

	// ErrNotWritable reports a write through a swizzle that repeats a
	// component.
	ErrNotWritable = errors.New("swz: swizzle is not writable")

	// ErrCountMismatch reports an assignment whose source component count
	// is neither the view's count nor 1.
	ErrCountMismatch = errors.New("swz: component count mismatch")
)
