package swz_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-swizzle/swz"
)

func TestConstruction(t *testing.T) {
	v2 := swz.NewVec2[float32](1, 2)

	assert.Equal(t, [3]float32{1, 2, 9}, swz.Vec3From[float32](v2.XY(), swz.S[float32](9)).Array())
	assert.Equal(t, [3]float32{9, 2, 1}, swz.Vec3From[float32](swz.S[float32](9), v2.YX()).Array())
	assert.Equal(t, [4]float32{1, 2, 3, 4}, swz.Vec4From[float32](swz.S[float32](1), swz.NewVec2[float32](2, 3), swz.S[float32](4)).Array())
	assert.Equal(t, [4]float32{1, 2, 1, 2}, swz.Vec4From[float32](v2, v2).Array())
	assert.Equal(t, [2]float32{1, 2}, swz.Vec2From[float32](v2).Array())
	assert.Equal(t, [4]bool{true, false, false, true}, swz.BVec4From(swz.NewBVec2(true, false), swz.NewBVec2(false, true)).Array())

	assert.Equal(t, [3]int{7, 7, 7}, swz.Splat3(7).Array())
	assert.Equal(t, [1]int{7}, swz.Splat1(7).Array())
	assert.Equal(t, 7, swz.NewVec1(7).Value())

	// Flattening equals componentwise construction.
	a := swz.NewVec4[int](1, 2, 3, 4)
	b := swz.Vec4From[int](swz.NewVec3[int](1, 2, 3), swz.S(4))
	assert.True(t, a.Equal(b))
	assert.Equal(t, a, b)
}

func TestTruncateAndConvert(t *testing.T) {
	v := swz.NewVec4[float32](1, 2, 3, 4)

	assert.Equal(t, [2]float32{1, 2}, swz.Truncate2[float32](v).Array())
	assert.Equal(t, [3]float32{3, 2, 1}, swz.Truncate3[float32](v.ZYX()).Array())
	assert.Equal(t, [4]float32{1, 2, 3, 4}, swz.Truncate4[float32](v).Array())

	assert.Equal(t, [3]float64{1, 2, 3}, swz.Convert3[float64](swz.NewVec3[int32](1, 2, 3)).Array())
	assert.Equal(t, [2]int{1, -1}, swz.Convert2[int](swz.NewVec2(1.7, -1.7)).Array())
	assert.Equal(t, [1]uint8{200}, swz.Convert1[uint8](swz.NewVec1[int](200)).Array())
}

func TestFloatArithmetic(t *testing.T) {
	a := swz.NewVec3[float64](1, 2, 3)
	b := swz.NewVec3[float64](4, 5, 6)

	tests := []struct {
		name string
		got  swz.Vec3[float64]
		want [3]float64
	}{
		{"Add", a.Add(b), [3]float64{5, 7, 9}},
		{"Sub", a.Sub(b), [3]float64{-3, -3, -3}},
		{"Mul", a.Mul(b), [3]float64{4, 10, 18}},
		{"Div", b.Div(swz.S(2.0)), [3]float64{2, 2.5, 3}},
		{"Mod", swz.NewVec3(5.5, -5.5, 6.0).Mod(swz.S(2.0)), [3]float64{1.5, -1.5, 0}},
		{"Neg", a.Neg(), [3]float64{-1, -2, -3}},
		{"Pos", a.Pos(), [3]float64{1, 2, 3}},
		{"AddScalar", a.Add(swz.S(10.0)), [3]float64{11, 12, 13}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got.Array())
		})
	}

	d := swz.NewVec3[float64](1, -1, 0).Div(swz.S(0.0))
	assert.True(t, math.IsInf(d.At(0), 1))
	assert.True(t, math.IsInf(d.At(1), -1))
	assert.True(t, math.IsNaN(d.At(2)))
}

func TestIntegerArithmetic(t *testing.T) {
	a := swz.NewVec3[int32](7, -7, 9)

	assert.Equal(t, [3]int32{3, -3, 4}, a.Div(swz.S[int32](2)).Array())
	assert.Equal(t, [3]int32{1, -1, 1}, a.Mod(swz.S[int32](2)).Array())

	u := swz.NewVec2[uint8](200, 255)
	assert.Equal(t, [2]uint8{44, 99}, u.Add(swz.S[uint8](100)).Array())
	assert.Equal(t, [2]uint8{255, 1}, swz.NewVec2[uint8](1, 255).Neg().Array())
	assert.Equal(t, [2]uint8{0, 55}, u.Mod(swz.S[uint8](100)).Array())
}

func TestBitwise(t *testing.T) {
	i := swz.NewVec2[int8](5, -1)

	assert.Equal(t, [2]int8{1, 3}, i.And(swz.S[int8](3)).Array())
	assert.Equal(t, [2]int8{7, -1}, i.Or(swz.S[int8](3)).Array())
	assert.Equal(t, [2]int8{6, -4}, i.Xor(swz.S[int8](3)).Array())
	assert.Equal(t, [2]int8{-6, 0}, i.Complement().Array())
	assert.Equal(t, [1]uint8{250}, swz.NewVec1[uint8](5).Complement().Array())

	assert.Equal(t, [2]int8{4, 0}, swz.NewVec2[int8](1, 64).Shl(swz.S[int8](2)).Array())
	assert.Equal(t, [2]int8{-4, 4}, swz.NewVec2[int8](-8, 8).Shr(swz.S[int8](1)).Array())
	assert.Equal(t, [1]uint16{1}, swz.NewVec1[uint16](0x8000).Shr(swz.S[uint16](15)).Array())
	assert.Equal(t, [2]uint64{1 << 40, 1 << 63}, swz.NewVec2[uint64](1, 1).Shl(swz.NewVec2[uint64](40, 63)).Array())
}

func TestCompoundAssign(t *testing.T) {
	v := swz.NewVec3[int](1, 2, 3)

	v.AddAssign(swz.S(1))
	assert.Equal(t, [3]int{2, 3, 4}, v.Array())
	v.MulAssign(swz.NewVec3(2, 3, 4))
	assert.Equal(t, [3]int{4, 9, 16}, v.Array())
	v.SubAssign(v.ZYX())
	assert.Equal(t, [3]int{-12, 0, 12}, v.Array())
	v.DivAssign(swz.S(4))
	assert.Equal(t, [3]int{-3, 0, 3}, v.Array())
	v.ModAssign(swz.S(2))
	assert.Equal(t, [3]int{-1, 0, 1}, v.Array())

	w := swz.NewVec2[uint8](0xF0, 0x0F)
	w.AndAssign(swz.S[uint8](0x3C))
	assert.Equal(t, [2]uint8{0x30, 0x0C}, w.Array())
	w.OrAssign(swz.S[uint8](0x01))
	assert.Equal(t, [2]uint8{0x31, 0x0D}, w.Array())
	w.XorAssign(swz.S[uint8](0xFF))
	assert.Equal(t, [2]uint8{0xCE, 0xF2}, w.Array())
	w.ShrAssign(swz.S[uint8](4))
	assert.Equal(t, [2]uint8{0x0C, 0x0F}, w.Array())
	w.ShlAssign(swz.S[uint8](1))
	assert.Equal(t, [2]uint8{0x18, 0x1E}, w.Array())
}

func TestIncDec(t *testing.T) {
	v := swz.NewVec2[int](1, 2)

	got := v.Inc()
	assert.Equal(t, [2]int{2, 3}, got.Array())
	assert.Equal(t, [2]int{2, 3}, v.Array())

	got = v.Dec()
	assert.Equal(t, [2]int{1, 2}, got.Array())
	assert.Equal(t, [2]int{1, 2}, v.Array())
}

func TestComparisons(t *testing.T) {
	nan := math.NaN()
	a := swz.NewVec3(nan, 1, 2)
	b := swz.NewVec3(nan, 1, 3)

	assert.Equal(t, [3]bool{false, true, false}, a.EqualTo(b).Array())
	assert.Equal(t, [3]bool{true, false, true}, a.NotEqualTo(b).Array())
	assert.Equal(t, [3]bool{false, false, true}, a.LessThan(b).Array())
	assert.Equal(t, [3]bool{false, true, true}, a.LessEqual(b).Array())
	assert.Equal(t, [3]bool{false, false, false}, a.GreaterThan(b).Array())
	assert.Equal(t, [3]bool{false, true, false}, a.GreaterEqual(b).Array())

	// NaN makes equality false and inequality true, even against itself.
	assert.False(t, a.Equal(a))
	assert.True(t, a.NotEqual(a))

	c := swz.NewVec3[int](1, 2, 3)
	assert.True(t, c.Equal(swz.NewVec3(1, 2, 3)))
	assert.False(t, c.NotEqual(swz.NewVec3(1, 2, 3)))
	assert.True(t, c.NotEqual(swz.S(1)))
	assert.True(t, swz.Splat3(1).Equal(swz.S(1)))

	// A Vec1 compares against a bare scalar.
	assert.True(t, swz.NewVec1(3.0).Equal(swz.S(3.0)))
	assert.False(t, swz.NewVec1(3.0).Equal(swz.S(4.0)))
}

func TestReductions(t *testing.T) {
	v := swz.NewVec4[int](3, 1, 4, 1)
	assert.Equal(t, 1, v.Min())
	assert.Equal(t, 4, v.Max())
	assert.Equal(t, 9, v.Sum())

	// Ties keep the earlier element.
	negZero := math.Copysign(0, -1)
	assert.False(t, math.Signbit(swz.NewVec2(0.0, negZero).Min()))
	assert.True(t, math.Signbit(swz.NewVec2(negZero, 0.0).Min()))
	assert.False(t, math.Signbit(swz.NewVec2(0.0, negZero).Max()))
	assert.True(t, math.Signbit(swz.NewVec2(negZero, 0.0).Max()))
}

func TestShift(t *testing.T) {
	v := swz.NewVec4[int](1, 2, 3, 4)

	tests := []struct {
		name string
		got  swz.Vec4[int]
		want [4]int
	}{
		{"Shift(0)", v.Shift(0), [4]int{1, 2, 3, 4}},
		{"Shift(1)", v.Shift(1), [4]int{0, 1, 2, 3}},
		{"Shift(-1)", v.Shift(-1), [4]int{2, 3, 4, 0}},
		{"Shift(3)", v.Shift(3), [4]int{0, 0, 0, 1}},
		{"Shift(4)", v.Shift(4), [4]int{0, 0, 0, 0}},
		{"Shift(-9)", v.Shift(-9), [4]int{0, 0, 0, 0}},
		{"CShift(1)", v.CShift(1), [4]int{4, 1, 2, 3}},
		{"CShift(-1)", v.CShift(-1), [4]int{2, 3, 4, 1}},
		{"CShift(5)", v.CShift(5), [4]int{4, 1, 2, 3}},
		{"CShift(-8)", v.CShift(-8), [4]int{1, 2, 3, 4}},
	}
	for _, tt := range tests {
		if got := tt.got.Array(); got != tt.want {
			t.Errorf("%s: got %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestGeometry(t *testing.T) {
	x := swz.NewVec3[float64](1, 0, 0)
	y := swz.NewVec3[float64](0, 1, 0)

	assert.Equal(t, [3]float64{0, 0, 1}, x.Cross(y).Array())
	assert.Equal(t, [3]float64{0, 0, -1}, y.Cross(x).Array())
	assert.Equal(t, 0.0, x.Dot(y))
	assert.Equal(t, 32.0, swz.NewVec3[float64](1, 2, 3).Dot(swz.NewVec3[float64](4, 5, 6)))
	assert.Equal(t, 5.0, swz.NewVec3[float64](3, 4, 0).Length())
	assert.Equal(t, math.Sqrt(2), x.Distance(y))
	assert.Equal(t, float32(5), swz.NewVec2[float32](3, 4).Length())

	// Integer dot products need no float kind.
	assert.Equal(t, 11, swz.NewVec2[int](1, 2).Dot(swz.NewVec2[int](3, 4)))
}

func TestNormalize(t *testing.T) {
	z := swz.Vec3[float64]{}.Normalize()
	for i, x := range z.All() {
		if !math.IsNaN(x) {
			t.Errorf("Normalize(0): lane %d: got %v, want NaN", i, x)
		}
	}

	assert.Equal(t, [3]float64{0, 1, 0}, swz.NewVec3[float64](0, 1, 0).Normalize().Array())
	assert.Equal(t, [3]float64{0.6, 0.8, 0}, swz.NewVec3[float64](3, 4, 0).Normalize().Array())

	n := swz.NewVec4[float32](1, 2, 3, 4).Normalize()
	assert.InDelta(t, 1.0, float64(n.Length()), 1e-6)
}

func TestReflectFaceForwardLerp(t *testing.T) {
	i := swz.NewVec3[float64](1, -1, 0)
	n := swz.NewVec3[float64](0, 1, 0)
	assert.Equal(t, [3]float64{1, 1, 0}, i.Reflect(n).Array())

	assert.Equal(t, [3]float64{0, 1, 0}, n.FaceForward(swz.NewVec3[float64](0, -1, 0), n).Array())
	assert.Equal(t, [3]float64{0, -1, 0}, n.FaceForward(swz.NewVec3[float64](0, 1, 0), n).Array())

	a := swz.NewVec2[float64](0, 0)
	assert.Equal(t, [2]float64{5, 10}, a.Lerp(swz.NewVec2[float64](10, 20), 0.5).Array())
	assert.Equal(t, [2]float64{10, 20}, a.Lerp(swz.NewVec2[float64](10, 20), 1).Array())
}

func TestMapZip(t *testing.T) {
	v := swz.NewVec3[float64](1, -2, 3)

	assert.Equal(t, [3]float64{1, 2, 3}, v.Map(math.Abs).Array())
	assert.Equal(t, [3]float64{2, -4, 6}, v.Map(func(x float64) float64 { return 2 * x }).Array())
	assert.Equal(t, [3]float64{1, 0, 3}, v.Zip(swz.S(0.0), math.Max).Array())
}

func TestBoolVectors(t *testing.T) {
	a := swz.NewBVec3(true, false, true)
	b := swz.NewBVec3(false, true, true)

	assert.Equal(t, [3]bool{false, false, true}, a.And(b).Array())
	assert.Equal(t, [3]bool{true, true, true}, a.Or(b).Array())
	assert.Equal(t, [3]bool{true, true, false}, a.Xor(b).Array())
	assert.Equal(t, [3]bool{false, true, false}, a.Not().Array())
	assert.Equal(t, [3]bool{false, false, false}, a.And(swz.S(false)).Array())

	assert.True(t, a.AnyTrue())
	assert.False(t, a.AllTrue())
	assert.Equal(t, 2, a.CountTrue())
	assert.True(t, swz.NewBVec2(true, true).AllTrue())
	assert.False(t, swz.NewBVec2(false, false).AnyTrue())

	assert.True(t, a.Equal(swz.NewBVec3(true, false, true)))
	assert.True(t, a.NotEqual(b))
	assert.Equal(t, [3]bool{true, true, false}, b.Reverse().Array())

	// Bool vectors have swizzles too.
	a.ZX().Set(false, false)
	require.Equal(t, [3]bool{false, false, false}, a.Array())
}

func BenchmarkVec4Add(b *testing.B) {
	v := swz.NewVec4[float32](1, 2, 3, 4)
	w := swz.NewVec4[float32](5, 6, 7, 8)
	for b.Loop() {
		v = v.Add(w)
	}
	_ = v
}
