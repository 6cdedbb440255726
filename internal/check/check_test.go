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

//go:build !swz_release

package check

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssert(t *testing.T) {
	assert.NotPanics(t, func() { Assert(true, "unused") })
	assert.PanicsWithValue(t, "swz: boom", func() { Assert(false, "boom") })
}

func TestAssertf(t *testing.T) {
	assert.NotPanics(t, func() { Assertf(true, "%d", 1) })
	assert.PanicsWithValue(t, "swz: got 3", func() { Assertf(false, "got %d", 3) })
}

func TestIndex(t *testing.T) {
	tests := []struct {
		i, n  int
		panic bool
	}{
		{0, 1, false},
		{3, 4, false},
		{4, 4, true},
		{-1, 4, true},
	}
	for _, tt := range tests {
		if tt.panic {
			assert.Panics(t, func() { Index(tt.i, tt.n) }, "Index(%d, %d)", tt.i, tt.n)
		} else {
			assert.NotPanics(t, func() { Index(tt.i, tt.n) }, "Index(%d, %d)", tt.i, tt.n)
		}
	}
}
