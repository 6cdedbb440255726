//go:build !swz_release

package mat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ajroetker/go-swizzle/swz"
	"github.com/ajroetker/go-swizzle/swz/contrib/mat"
)

func TestConstructionChecks(t *testing.T) {
	v := swz.NewVec4[float64](1, 2, 3, 4)

	assert.PanicsWithValue(t, "swz: matrix construction supplies 8 components, want 9", func() {
		mat.Mat3From[float64](v, v)
	})
	assert.PanicsWithValue(t, "swz: matrix part 2 is superfluous: the parts before it already supply 4 components", func() {
		mat.Mat2From[float64](v.XY(), v.ZW(), swz.S(5.0))
	})
	assert.PanicsWithValue(t, "swz: matrix product with a 3-component vector, want 4", func() {
		mat.Identity4[float64]().MulVec(v.XYZ())
	})
	assert.PanicsWithValue(t, "swz: index 3 out of range [0,3)", func() {
		mat.Identity3[float64]().Col(3)
	})
	assert.Panics(t, func() {
		m := mat.Identity2[float64]()
		m.SetCol(0, v)
	})
}
