package swz_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ajroetker/go-swizzle/swz"
)

func TestMapBroadcast(t *testing.T) {
	v := swz.NewVec3[float32](1, 2, 3)
	swz.Map2(v.XY(), func(a, b float32) float32 { return a * b }, v.YX(), swz.S[float32](2))
	assert.Equal(t, [3]float32{4, 2, 3}, v.Array())

	var out swz.Vec2[float64]
	swz.Map3(&out, func(a, b, c float64) float64 { return a*b + c },
		swz.NewVec2[float64](1, 2), swz.S(3.0), swz.NewVec2[float64](10, 20))
	assert.Equal(t, [2]float64{13, 26}, out.Array())

	got := swz.Apply3[swz.Vec2[float64]](func(a, b, c float64) float64 { return a*b + c },
		swz.S(2.0), swz.NewVec2[float64](1, 2), swz.S(1.0))
	assert.Equal(t, [2]float64{3, 5}, got.Array())
}

func TestMapAliasedDestination(t *testing.T) {
	// Every position is computed before the first write, so a destination
	// that is also a rotated operand still sees the original values.
	v := swz.NewVec4[int](1, 2, 3, 4)
	swz.Map1(&v, func(x int) int { return x * 10 }, v.WXYZ())
	assert.Equal(t, [4]int{40, 10, 20, 30}, v.Array())

	w := swz.NewVec3[int](1, 2, 3)
	swz.Map2(w.ZYX(), func(a, b int) int { return a + b }, w.XYZ(), w.XXX())
	assert.Equal(t, [3]int{4, 3, 2}, w.Array())
}

func TestUpdate(t *testing.T) {
	v := swz.NewVec4[int](1, 2, 3, 4)
	swz.Update1(v.XZ(), func(x int) int { return -x })
	assert.Equal(t, [4]int{-1, 2, -3, 4}, v.Array())

	swz.Update2(v.YW(), func(a, b int) int { return a * b }, swz.NewVec2[int](10, 100))
	assert.Equal(t, [4]int{-1, 20, -3, 400}, v.Array())
}

func TestApplyKinds(t *testing.T) {
	v := swz.NewVec3[float32](1, -2, 3)
	pos := swz.Apply1[swz.BVec3](func(x float32) bool { return x > 0 }, v)
	assert.Equal(t, [3]bool{true, false, true}, pos.Array())

	rounded := swz.Apply1[swz.Vec3[int]](func(x float32) int { return int(x) * 2 }, v)
	assert.Equal(t, [3]int{2, -4, 6}, rounded.Array())
}

func TestUniformPolicy(t *testing.T) {
	add := func(a, b float64) float64 { return a + b }

	f := swz.Uniform2[float64, int32, float32](add)
	assert.Equal(t, 1.5, f(1, 0.5))

	var out swz.Vec3[float64]
	ints := swz.NewVec3[int32](1, 2, 3)
	floats := swz.NewVec3[float32](0.5, 0.25, 0.125)
	swz.MapUniform2[float64, int32, float32](&out, add, ints, floats)
	assert.Equal(t, [3]float64{1.5, 2.25, 3.125}, out.Array())

	g := swz.Uniform3[int64, int8, uint8, int16](func(a, b, c int64) int64 { return a + b + c })
	assert.Equal(t, int64(-128+255+1000), g(-128, 255, 1000))

	assert.Equal(t, swz.Float32, swz.CommonKind(swz.Int, swz.Float32))
	assert.Equal(t, swz.Float64, swz.CommonKind(swz.Float64, swz.Float32))
	assert.Equal(t, swz.Uint, swz.CommonKind(swz.Int, swz.Uint))
	assert.Equal(t, swz.Int, swz.CommonKind(swz.Bool, swz.Int))
}

func TestNativePolicy(t *testing.T) {
	var out swz.Vec3[uint32]
	swz.ShiftLeft[uint32, int8](&out, swz.NewVec3[uint32](1, 2, 3), swz.S[int8](4))
	assert.Equal(t, [3]uint32{16, 32, 48}, out.Array())

	swz.ShiftRight[uint32, uint8](&out, out, swz.NewVec3[uint8](4, 5, 31))
	assert.Equal(t, [3]uint32{1, 1, 0}, out.Array())

	var signed swz.Vec2[int16]
	swz.ShiftRight[int16, uint64](&signed, swz.NewVec2[int16](-256, 256), swz.S[uint64](4))
	assert.Equal(t, [2]int16{-16, 16}, signed.Array())

	var mixed swz.Vec2[float32]
	swz.MapNative2(&mixed, swz.Native2(func(a float32, n int) float32 {
		for range n {
			a *= 2
		}
		return a
	}), swz.NewVec2[float32](1, 3), swz.NewVec2[int](3, 1))
	assert.Equal(t, [2]float32{8, 6}, mixed.Array())
}
