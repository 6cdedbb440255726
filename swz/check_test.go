//go:build !swz_release

package swz_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ajroetker/go-swizzle/swz"
)

func TestProgrammerErrors(t *testing.T) {
	v2 := swz.NewVec2[float32](1, 2)
	v3 := swz.NewVec3[float32](1, 2, 3)

	assert.PanicsWithValue(t, "swz: construction part 2 is superfluous: the parts before it already supply 3 components", func() {
		swz.Vec3From[float32](v2, swz.S[float32](3), swz.S[float32](4))
	})
	assert.PanicsWithValue(t, "swz: construction supplies 2 components, want 3", func() {
		swz.Vec3From[float32](v2)
	})
	assert.PanicsWithValue(t, "swz: construction supplies 4 components, want 3", func() {
		swz.Vec3From[float32](v2, v2)
	})
	assert.PanicsWithValue(t, "swz: cannot truncate 2 components to 3", func() {
		swz.Truncate3[float32](v2)
	})
	assert.PanicsWithValue(t, "swz: operand has 2 components, want 3 or 1", func() {
		v3.Add(v2)
	})
	assert.PanicsWithValue(t, "swz: index 3 out of range [0,3)", func() {
		v3.At(3)
	})
	assert.Panics(t, func() { v3.SetAt(-1, 0) })
	assert.Panics(t, func() { v3.XY().At(2) })
	assert.Panics(t, func() { v3.Swap(0, 3) })
}

func TestArithmeticContracts(t *testing.T) {
	f := swz.NewVec2[float64](1, 2)
	i := swz.NewVec2[int](1, 2)

	assert.PanicsWithValue(t, "swz: integer division by zero", func() { i.Div(swz.S(0)) })
	assert.PanicsWithValue(t, "swz: integer modulus by zero", func() { i.Mod(swz.NewVec2(1, 0)) })
	assert.PanicsWithValue(t, "swz: bitwise and on a float kind", func() { f.And(f) })
	assert.PanicsWithValue(t, "swz: shift on a float kind", func() { f.Shl(f) })
	assert.PanicsWithValue(t, "swz: bitwise complement on a float kind", func() { f.Complement() })
	assert.PanicsWithValue(t, "swz: negative shift count", func() { i.Shl(swz.S(-1)) })
	assert.PanicsWithValue(t, "swz: Length requires a float kind, have int", func() { i.Length() })

	var out swz.Vec2[int]
	assert.PanicsWithValue(t, "swz: negative shift count", func() {
		swz.ShiftLeft[int, int](&out, i, swz.S(-2))
	})

	// Float division by zero is IEEE, not a contract violation.
	assert.NotPanics(t, func() { f.Div(swz.S(0.0)) })
}
