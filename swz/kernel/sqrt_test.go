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

func sqrtEdgeCases() []float64 {
	cases := []float64{
		math.SmallestNonzeroFloat64,
		2 * math.SmallestNonzeroFloat64,
		0x1p-1022,
		0x1.fffffffffffffp-1023, // largest subnormal
		0x1p-600, 0x1.0000000000001p-600, 0x1.fffffffffffffp-601,
		0x1p600, 0x1.0000000000001p600,
		math.MaxFloat64,
		0.5, 1, 2, 3, 4, 5, 9, 10, 16, 1e-300, 1e300,
		math.Nextafter(1, 0), math.Nextafter(1, 2),
		math.Nextafter(2, 0), math.Nextafter(2, 3),
		math.Nextafter(4, 0), math.Nextafter(4, 5),
	}
	for e := -1074; e <= 1023; e += 7 {
		p := math.Ldexp(1, e)
		cases = append(cases, p, math.Nextafter(p, 0), math.Nextafter(p, math.Inf(1)))
	}
	return cases
}

func TestSqrt64EdgeCases(t *testing.T) {
	for _, x := range sqrtEdgeCases() {
		got := Sqrt64(x)
		want := math.Sqrt(x)
		if math.Float64bits(got) != math.Float64bits(want) {
			t.Errorf("Sqrt64(%b): got %b, want %b", x, got, want)
		}
	}
}

func TestSqrt64Random(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 200000; i++ {
		// Uniform bit patterns cover every exponent including subnormals.
		x := math.Float64frombits(rng.Uint64() &^ (1 << 63))
		if math.IsNaN(x) || math.IsInf(x, 0) {
			continue
		}
		got := Sqrt64(x)
		want := math.Sqrt(x)
		if math.Float64bits(got) != math.Float64bits(want) {
			t.Fatalf("Sqrt64(%b): got %b, want %b", x, got, want)
		}
	}
}

func TestSqrt64PerfectSquares(t *testing.T) {
	for i := int64(0); i < 5000; i++ {
		x := float64(i * i)
		require.Equal(t, float64(i), Sqrt64(x), "Sqrt64(%v)", x)
	}
}

func TestSqrt64Special(t *testing.T) {
	require.True(t, math.IsNaN(Sqrt64(math.NaN())))
	require.True(t, math.IsNaN(Sqrt64(-1)))
	require.True(t, math.IsNaN(Sqrt64(math.Inf(-1))))
	require.True(t, math.IsNaN(Sqrt64(-math.SmallestNonzeroFloat64)))
	require.Equal(t, math.Inf(1), Sqrt64(math.Inf(1)))
	require.Equal(t, uint64(0), math.Float64bits(Sqrt64(0)))
	require.Equal(t, math.Float64bits(math.Copysign(0, -1)), math.Float64bits(Sqrt64(math.Copysign(0, -1))))
}

func TestSqrt32Random(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	for i := 0; i < 100000; i++ {
		x := math.Float32frombits(rng.Uint32() &^ (1 << 31))
		if x != x || math.IsInf(float64(x), 0) {
			continue
		}
		got := Sqrt32(x)
		want := float32(math.Sqrt(float64(x)))
		if math.Float32bits(got) != math.Float32bits(want) {
			t.Fatalf("Sqrt32(%b): got %b, want %b", x, got, want)
		}
	}
}

func TestSqrtGeneric(t *testing.T) {
	require.Equal(t, float32(3), Sqrt(float32(9)))
	require.Equal(t, 3.0, Sqrt(9.0))

	type meters float64
	require.Equal(t, meters(5), Sqrt(meters(25)))
}

func TestRSqrt(t *testing.T) {
	require.Equal(t, 0.5, RSqrt(4.0))
	require.Equal(t, float32(0.25), RSqrt(float32(16)))
	require.Equal(t, math.Inf(1), RSqrt(0.0))
	require.Equal(t, math.Inf(-1), RSqrt(math.Copysign(0, -1)))
	require.Equal(t, 0.0, RSqrt(math.Inf(1)))
	require.True(t, math.IsNaN(RSqrt(-4.0)))
}

func BenchmarkSqrt64(b *testing.B) {
	x := 1.0
	var sink float64
	for i := 0; i < b.N; i++ {
		sink += Sqrt64(x)
		x += 0.25
	}
	_ = sink
}

func BenchmarkMathSqrt(b *testing.B) {
	x := 1.0
	var sink float64
	for i := 0; i < b.N; i++ {
		sink += math.Sqrt(x)
		x += 0.25
	}
	_ = sink
}
