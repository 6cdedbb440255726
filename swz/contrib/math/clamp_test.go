//go:build !swz_release

package math_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	swzmath "github.com/ajroetker/go-swizzle/swz/contrib/math"
)

func TestClampBounds(t *testing.T) {
	assert.PanicsWithValue(t, "swz: Clamp with min > max", func() {
		swzmath.Clamp(0.5, 1, 0)
	})
	assert.NotPanics(t, func() { swzmath.Clamp(0.5, 1, 1) })
}
