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

// Package testutil holds comparison helpers shared by the package tests.
package testutil

import (
	"math"
	"testing"
)

type floats interface {
	~float32 | ~float64
}

// RequireNearlyEqual fails t if got and want differ in length or if any
// element pair differs by more than eps (absolute tolerance). NaN matches
// only NaN.
func RequireNearlyEqual[T floats](t testing.TB, got, want []T, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		g, w := float64(got[i]), float64(want[i])
		if math.IsNaN(g) || math.IsNaN(w) {
			if math.IsNaN(g) != math.IsNaN(w) {
				t.Fatalf("index %d: got %v, want %v", i, g, w)
			}
			continue
		}
		if g == w {
			continue
		}
		if diff := math.Abs(g - w); diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, g, w, diff, eps)
		}
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite[T floats](t testing.TB, data []T) {
	t.Helper()
	for i, v := range data {
		if x := float64(v); math.IsNaN(x) || math.IsInf(x, 0) {
			t.Fatalf("index %d: non-finite value %v", i, x)
		}
	}
}

// MaxAbsDiff returns the largest absolute difference between a and b,
// which must have the same length.
func MaxAbsDiff[T floats](a, b []T) float64 {
	maxDiff := 0.0
	for i := range a {
		if d := math.Abs(float64(a[i]) - float64(b[i])); d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff
}
