package swz_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-swizzle/swz"
)

func TestPick(t *testing.T) {
	v := swz.NewVec4[int](10, 20, 30, 40)

	tests := []struct {
		pattern  string
		want     []int
		writable bool
	}{
		{"x", []int{10}, true},
		{"zyx", []int{30, 20, 10}, true},
		{"bgra", []int{30, 20, 10, 40}, true},
		{"ts", []int{20, 10}, true},
		{"qqq", []int{40, 40, 40}, false},
		{"xyzx", []int{10, 20, 30, 10}, false},
	}
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			d, err := v.Pick(tt.pattern)
			require.NoError(t, err)
			assert.Equal(t, len(tt.want), d.Len())
			for i, want := range tt.want {
				if got := d.At(i); got != want {
					t.Errorf("Pick(%q): lane %d: got %v, want %v", tt.pattern, i, got, want)
				}
			}
			assert.Equal(t, tt.writable, d.Writable())
		})
	}
}

func TestPickErrors(t *testing.T) {
	v2 := swz.NewVec2[float32](1, 2)

	tests := []struct {
		pattern string
		want    error
	}{
		{"", swz.ErrBadSwizzle},
		{"xyzwx", swz.ErrBadSwizzle},
		{"xk", swz.ErrBadSwizzle},
		{"XY", swz.ErrBadSwizzle},
		{"xg", swz.ErrMixedNameSets},
		{"sx", swz.ErrMixedNameSets},
		{"z", swz.ErrIndexOutOfRange},
		{"ba", swz.ErrIndexOutOfRange},
	}
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			_, err := v2.Pick(tt.pattern)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	_, err := v2.PickIndex(0, 2)
	assert.ErrorIs(t, err, swz.ErrIndexOutOfRange)
	_, err = v2.PickIndex()
	assert.ErrorIs(t, err, swz.ErrBadSwizzle)
	_, err = v2.PickIndex(-1)
	assert.ErrorIs(t, err, swz.ErrIndexOutOfRange)
}

func TestDynamicWrites(t *testing.T) {
	v := swz.NewVec3[int](1, 2, 3)

	d, err := v.Pick("zx")
	require.NoError(t, err)
	require.NoError(t, d.Store(0, 30))
	assert.Equal(t, [3]int{1, 2, 30}, v.Array())

	require.NoError(t, d.Assign(d.Reverse()))
	assert.Equal(t, [3]int{30, 2, 1}, v.Array())

	require.NoError(t, d.Assign(swz.S(0)))
	assert.Equal(t, [3]int{0, 2, 0}, v.Array())

	err = d.Assign(v)
	assert.ErrorIs(t, err, swz.ErrCountMismatch)
	err = d.Store(2, 1)
	assert.ErrorIs(t, err, swz.ErrIndexOutOfRange)

	x, err := d.Lookup(1)
	require.NoError(t, err)
	assert.Equal(t, 0, x)
	_, err = d.Lookup(5)
	assert.True(t, errors.Is(err, swz.ErrIndexOutOfRange))

	r, err := v.PickIndex(1, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1}, r.Indices())
	assert.ErrorIs(t, r.Store(0, 5), swz.ErrNotWritable)
	assert.ErrorIs(t, r.Assign(swz.S(5)), swz.ErrNotWritable)
	assert.Equal(t, "Dynamic(2, 2)", r.String())
}

func TestDynamicAsOperand(t *testing.T) {
	v := swz.NewVec4[float64](1, 2, 3, 4)
	d, err := v.Pick("wzyx")
	require.NoError(t, err)
	assert.Equal(t, [4]float64{5, 5, 5, 5}, v.Add(d).Array())
}
