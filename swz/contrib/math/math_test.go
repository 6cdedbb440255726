package math_test

import (
	"math"
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"

	"github.com/ajroetker/go-swizzle/internal/testutil"
	"github.com/ajroetker/go-swizzle/swz"
	swzmath "github.com/ajroetker/go-swizzle/swz/contrib/math"
)

var samples = []float64{-3.5, -1, -0.25, 0, 0.3, 0.5, 1, 2.75, 10}

func TestUnaryFloat64(t *testing.T) {
	tests := []struct {
		name string
		got  func(float64) float64
		want func(float64) float64
	}{
		{"Sin", swzmath.Sin[float64], math.Sin},
		{"Cos", swzmath.Cos[float64], math.Cos},
		{"Tan", swzmath.Tan[float64], math.Tan},
		{"Atan", swzmath.Atan[float64], math.Atan},
		{"Exp", swzmath.Exp[float64], math.Exp},
		{"Exp2", swzmath.Exp2[float64], math.Exp2},
		{"Floor", swzmath.Floor[float64], math.Floor},
		{"Ceil", swzmath.Ceil[float64], math.Ceil},
		{"Trunc", swzmath.Trunc[float64], math.Trunc},
		{"Round", swzmath.Round[float64], math.Round},
		{"RoundEven", swzmath.RoundEven[float64], math.RoundToEven},
		{"Abs", swzmath.Abs[float64], math.Abs},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, x := range samples {
				got, want := tt.got(x), tt.want(x)
				if got != want && !(math.IsNaN(got) && math.IsNaN(want)) {
					t.Errorf("%s(%v): got %v, want %v", tt.name, x, got, want)
				}
			}
		})
	}
}

func TestUnaryFloat32(t *testing.T) {
	tests := []struct {
		name string
		got  func(float32) float32
		want func(float32) float32
	}{
		{"Sin", swzmath.Sin[float32], math32.Sin},
		{"Cos", swzmath.Cos[float32], math32.Cos},
		{"Atan", swzmath.Atan[float32], math32.Atan},
		{"Exp", swzmath.Exp[float32], math32.Exp},
		{"Exp2", swzmath.Exp2[float32], math32.Exp2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, x := range samples {
				x := float32(x)
				if got, want := tt.got(x), tt.want(x); got != want {
					t.Errorf("%s(%v): got %v, want %v", tt.name, x, got, want)
				}
			}
		})
	}
}

func TestInverseTrigAndLog(t *testing.T) {
	xs := []float64{-1, -0.5, 0, 0.5, 1}
	for _, x := range xs {
		assert.Equal(t, math.Asin(x), swzmath.Asin(x))
		assert.Equal(t, math.Acos(x), swzmath.Acos(x))
	}
	assert.InDelta(t, math.Pi/6, float64(swzmath.Asin[float32](0.5)), 1e-6)

	assert.Equal(t, 3.0, swzmath.Log2(8.0))
	assert.InDelta(t, 3, swzmath.Log2[float32](8), 1e-6)
	assert.InDelta(t, 1.0, swzmath.Log(math.E), 1e-15)
	assert.Equal(t, 8.0, swzmath.Pow(2.0, 3.0))
	assert.InDelta(t, 8, swzmath.Pow[float32](2, 3), 1e-5)
	assert.Equal(t, math.Pi/2, swzmath.Atan2(1.0, 0.0))
	assert.Equal(t, -math.Pi/2, swzmath.Atan2(-1.0, 0.0))
}

func TestAngles(t *testing.T) {
	assert.InDelta(t, math.Pi, swzmath.Radians(180.0), 1e-15)
	assert.InDelta(t, 90.0, swzmath.Degrees(math.Pi/2), 1e-12)
	assert.InDelta(t, float32(math.Pi/4), swzmath.Radians[float32](45), 1e-6)
}

func TestCommon(t *testing.T) {
	assert.Equal(t, 3, swzmath.Abs(-3))
	assert.False(t, math.Signbit(swzmath.Abs(math.Copysign(0, -1))))
	assert.Equal(t, -1, swzmath.Sign(-7))
	assert.Equal(t, uint8(1), swzmath.Sign[uint8](9))
	assert.Equal(t, 0.0, swzmath.Sign(0.0))
	assert.True(t, math.IsNaN(swzmath.Sign(math.NaN())))

	assert.Equal(t, 2, swzmath.Min(2, 5))
	assert.Equal(t, 5, swzmath.Max(2, 5))
	assert.Equal(t, 1.0, swzmath.Clamp(3.0, 0, 1))
	assert.Equal(t, 0.0, swzmath.Clamp(-3.0, 0, 1))
	assert.Equal(t, 0.5, swzmath.Clamp(0.5, 0, 1))
	assert.Equal(t, int8(-2), swzmath.Clamp[int8](-9, -2, 2))

	assert.Equal(t, 0.0, swzmath.Step(1.0, 0.5))
	assert.Equal(t, 1.0, swzmath.Step(1.0, 1.0))
	assert.Equal(t, 0.0, swzmath.SmoothStep(0.0, 1.0, -1))
	assert.Equal(t, 0.5, swzmath.SmoothStep(0.0, 1.0, 0.5))
	assert.Equal(t, 1.0, swzmath.SmoothStep(0.0, 1.0, 2))

	assert.Equal(t, 10.0, swzmath.Mix(10.0, 20.0, 0))
	assert.Equal(t, 20.0, swzmath.Mix(10.0, 20.0, 1))
	assert.Equal(t, 15.0, swzmath.Mix(10.0, 20.0, 0.5))

	assert.Equal(t, 0.25, swzmath.Fract(-1.75))
	assert.Equal(t, 0.5, swzmath.Mod(-5.5, 2.0))
	assert.Equal(t, -1.5, swzmath.Mod(0.5, -2.0))
	assert.Equal(t, 3.0, swzmath.Sqrt(9.0))
	assert.Equal(t, 0.5, swzmath.InverseSqrt(4.0))
}

func TestWithVectors(t *testing.T) {
	v := swz.NewVec3[float32](0, math32.Pi/2, math32.Pi)
	s := v.Map(swzmath.Sin[float32]).Array()
	testutil.RequireNearlyEqual(t, s[:], []float32{0, 1, 0}, 1e-6)

	w := swz.NewVec3[float64](-1, 0.5, 2)
	c := swz.Apply3[swz.Vec3[float64]](swzmath.Clamp[float64], w, swz.S(0.0), swz.S(1.0))
	assert.Equal(t, [3]float64{0, 0.5, 1}, c.Array())

	p := swz.NewVec2[float64](2, 3).Zip(swz.S(2.0), swzmath.Pow[float64])
	assert.Equal(t, [2]float64{4, 9}, p.Array())

	f := swz.NewVec4[float64](-1.5, -0.5, 0.5, 1.5).Map(swzmath.RoundEven[float64])
	assert.Equal(t, [4]float64{-2, -0, 0, 2}, f.Array())
}
