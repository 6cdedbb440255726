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
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTwoSumExact(t *testing.T) {
	tests := []struct{ a, b float64 }{
		{1, 0x1p-60},
		{0x1p-60, 1},
		{1e16, 1},
		{-1, 1},
		{0.1, 0.2},
	}
	for _, tt := range tests {
		s, e := TwoSum(tt.a, tt.b)
		require.Equal(t, tt.a+tt.b, s)
		// s - a is exact here, so the error must restore b.
		if tt.a >= tt.b {
			require.Equal(t, tt.b, (s-tt.a)+e, "TwoSum(%v, %v)", tt.a, tt.b)
		}
	}
	s, e := TwoSum(1, 0x1p-60)
	require.Equal(t, 1.0, s)
	require.Equal(t, 0x1p-60, e)
}

func TestSplit(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))
	for i := 0; i < 1000; i++ {
		a := rng.Float64()*1e10 - 5e9
		hi, lo := Split(a)
		require.Equal(t, a, hi+lo)
		// Both halves fit in 26 bits, so their products are exact.
		for _, pair := range [][2]float64{{hi, hi}, {hi, lo}, {lo, lo}} {
			_, e := twoProductFMA(pair[0], pair[1])
			require.Zero(t, e, "Split(%v) halves (%v, %v)", a, hi, lo)
		}
	}
}

func TestTwoProductPathsAgree(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 8))
	for i := 0; i < 100000; i++ {
		a := math.Ldexp(rng.Float64()+0.5, rng.IntN(200)-100)
		b := math.Ldexp(rng.Float64()+0.5, rng.IntN(200)-100)
		if rng.IntN(2) == 0 {
			a = -a
		}
		p1, e1 := twoProductDekker(a, b)
		p2, e2 := twoProductFMA(a, b)
		if p1 != p2 || e1 != e2 {
			t.Fatalf("TwoProduct(%v, %v): dekker (%v, %v), fma (%v, %v)", a, b, p1, e1, p2, e2)
		}
	}
}

func TestDDArithmetic(t *testing.T) {
	third := DD{1.0 / 3, 0}
	// (1/3 rounded) * 3 is 1 - 2^-54 exactly; DD keeps the tail.
	got := third.MulFloat(3)
	require.Equal(t, 1.0, got.Hi)
	require.Equal(t, -0x1p-54, got.Lo)

	sum := DD{1, 0}.AddFloat(0x1p-80)
	require.Equal(t, 1.0, sum.Hi)
	require.Equal(t, 0x1p-80, sum.Lo)
	require.Equal(t, 1.0, sum.Float64())

	prod := DD{1, 0x1p-80}.Mul(DD{1, 0x1p-80})
	require.Equal(t, 1.0, prod.Hi)
	require.Equal(t, 0x1p-79, prod.Lo)

	add := DD{1, 0x1p-80}.Add(DD{-1, 0x1p-80})
	require.Equal(t, 0x1p-79, add.Hi)
}

func TestExactSign(t *testing.T) {
	require.Equal(t, 0, exactSign())
	require.Equal(t, 0, exactSign(1, -1))
	require.Equal(t, 1, exactSign(1e300, -1e300, 0x1p-1074))
	require.Equal(t, -1, exactSign(1, 0x1p-60, -1, -0x1p-59))
	require.Equal(t, 1, exactSign(-1, 1, 0x1p-100, -0x1p-101))
}

func TestPathString(t *testing.T) {
	require.Equal(t, "dekker", PathDekker.String())
	require.Equal(t, "fma", PathFMA.String())
	require.Equal(t, "unknown", Path(9).String())
}

func TestNoFMAEnv(t *testing.T) {
	t.Setenv("SWZ_NO_FMA", "")
	require.False(t, NoFMAEnv())
	t.Setenv("SWZ_NO_FMA", "1")
	require.True(t, NoFMAEnv())
	t.Setenv("SWZ_NO_FMA", "false")
	require.False(t, NoFMAEnv())
	t.Setenv("SWZ_NO_FMA", "yes")
	require.True(t, NoFMAEnv())
}

func TestCurrentPath(t *testing.T) {
	if !HasFMA() {
		require.Equal(t, PathDekker, CurrentPath())
	}
}
