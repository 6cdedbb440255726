package swz_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ajroetker/go-swizzle/swz"
)

func TestSwizzleSetReadBack(t *testing.T) {
	v := swz.NewVec4[float32](1, 2, 3, 4)

	v.ZX().Set(30, 10)
	assert.Equal(t, [4]float32{10, 2, 30, 4}, v.Array())
	assert.Equal(t, [2]float32{30, 10}, v.ZX().Array())

	v.W().Set(40)
	assert.Equal(t, float32(40), v.W().Get())
	assert.Equal(t, float32(40), v.A().Get())

	s := v.BGR()
	s.SetAt(0, 300)
	assert.Equal(t, float32(300), v.At(2))
	assert.Equal(t, [3]float32{300, 2, 10}, s.Array())
}

func TestSwizzleSimultaneousAssign(t *testing.T) {
	v := swz.NewVec2[int](1, 2)
	v.YX().Assign(v.XY())
	assert.Equal(t, [2]int{2, 1}, v.Array())

	w := swz.NewVec4[float32](1, 2, 3, 4)
	w.ZYX().Assign(w.XYZ())
	assert.Equal(t, [4]float32{3, 2, 1, 4}, w.Array())

	u := swz.NewVec4[int](1, 2, 3, 4)
	u.XYZW().Assign(u.WZYX())
	assert.Equal(t, [4]int{4, 3, 2, 1}, u.Array())

	// Reading a repeated component while overwriting it.
	r := swz.NewVec3[int](1, 2, 3)
	r.XYZ().Assign(r.XXX())
	assert.Equal(t, [3]int{1, 1, 1}, r.Array())
}

func TestSwizzleBroadcastAssign(t *testing.T) {
	v := swz.NewVec4[int](1, 2, 3, 4)
	v.XZ().Assign(swz.S(9))
	assert.Equal(t, [4]int{9, 2, 9, 4}, v.Array())

	v.RGBA().Assign(v.Y())
	assert.Equal(t, [4]int{2, 2, 2, 2}, v.Array())
}

func TestViewAliasesStorage(t *testing.T) {
	v := swz.NewVec3[int](1, 2, 3)
	xy := v.XY()
	rep := v.XXZ()

	v.SetAt(0, 7)
	assert.Equal(t, 7, xy.At(0))
	assert.Equal(t, [3]int{7, 7, 3}, rep.Array())

	xy.Set(8, 9)
	assert.Equal(t, [3]int{8, 9, 3}, v.Array())
	assert.Equal(t, [3]int{8, 8, 3}, rep.Array())
}

func TestViewIndices(t *testing.T) {
	v := swz.NewVec4[int](10, 20, 30, 40)

	assert.Equal(t, [1]int{0}, v.X().Indices())
	assert.Equal(t, [2]int{3, 1}, v.WY().Indices())
	assert.Equal(t, [3]int{0, 0, 1}, v.XXY().Indices())
	assert.Equal(t, [4]int{3, 2, 1, 0}, v.ABGR().Indices())
	assert.Equal(t, [4]int{2, 2, 2, 2}, v.ZZZZ().Indices())
}

func TestViewCounts(t *testing.T) {
	v1 := swz.NewVec1[int](5)
	assert.Equal(t, [4]int{5, 5, 5, 5}, v1.XXXX().Array())

	v2 := swz.NewVec2[int](1, 2)
	assert.Equal(t, [3]int{2, 1, 2}, v2.YXY().Array())
	assert.Equal(t, [2]int{2, 1}, v2.GR().Array())

	v3 := swz.NewVec3[int](1, 2, 3)
	assert.Equal(t, 4, v3.ZZYX().Len())
}

func TestViewReverse(t *testing.T) {
	v := swz.NewVec4[int](1, 2, 3, 4)

	assert.Equal(t, [3]int{3, 1, 1}, v.XXZ().Reverse().Array())
	assert.Equal(t, [4]int{4, 3, 2, 1}, v.Reverse().Array())

	// A reversed swizzle is still writable.
	v.XY().Reverse().Set(10, 20)
	assert.Equal(t, [4]int{20, 10, 3, 4}, v.Array())
}

func TestViewIteration(t *testing.T) {
	v := swz.NewVec3[int](1, 2, 3)

	var got []int
	for _, x := range v.ZXY().All() {
		got = append(got, x)
	}
	assert.Equal(t, []int{3, 1, 2}, got)

	got = nil
	for _, x := range v.ZXY().Backward() {
		got = append(got, x)
	}
	assert.Equal(t, []int{2, 1, 3}, got)
}

func TestViewAsOperand(t *testing.T) {
	v := swz.NewVec4[float64](1, 2, 3, 4)
	w := swz.NewVec3[float64](10, 20, 30)

	assert.Equal(t, [3]float64{14, 23, 32}, w.Add(v.WZY()).Array())
	assert.Equal(t, [3]float64{11, 21, 31}, w.Add(v.X()).Array())
	assert.Equal(t, [3]float64{11, 21, 31}, w.Add(v.XXX()).Array())
}

func TestStrings(t *testing.T) {
	v := swz.NewVec3[int](1, 2, 3)

	tests := []struct {
		got  string
		want string
	}{
		{v.String(), "Vec3(1, 2, 3)"},
		{v.ZY().String(), "Swizzle2(3, 2)"},
		{v.XX().String(), "View2(1, 1)"},
		{swz.NewBVec2(true, false).String(), "BVec2(true, false)"},
		{swz.NewVec2[float32](0.5, -1).String(), "Vec2(0.5, -1)"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("String: got %q, want %q", tt.got, tt.want)
		}
	}
}
