package mat_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-swizzle/internal/testutil"
	"github.com/ajroetker/go-swizzle/swz"
	"github.com/ajroetker/go-swizzle/swz/contrib/mat"
)

func TestIdentity(t *testing.T) {
	assert.Equal(t, 1.0, mat.Identity2[float64]().Det())
	assert.Equal(t, 1.0, mat.Identity3[float64]().Det())
	assert.Equal(t, 1.0, mat.Identity4[float64]().Det())
	assert.Equal(t, float32(1), mat.Identity4[float32]().Det())

	assert.True(t, mat.Identity2[float64]().Inverse().Equal(mat.Identity2[float64]()))
	assert.True(t, mat.Identity3[float64]().Inverse().Equal(mat.Identity3[float64]()))
	assert.True(t, mat.Identity4[float64]().Inverse().Equal(mat.Identity4[float64]()))
	assert.True(t, mat.Identity3[float32]().Inverse().Equal(mat.Identity3[float32]()))

	assert.Equal(t, [9]float64{1, 0, 0, 0, 1, 0, 0, 0, 1}, mat.Identity3[float64]().Array())
	assert.Equal(t, [4]float32{2, 0, 0, 2}, mat.Diag2[float32](2).Array())
}

func TestConstruction(t *testing.T) {
	a := [9]float64{1, 2, 3, 4, 5, 6, 7, 8, 9}
	m := mat.Mat3FromArray(a)
	assert.Equal(t, a, m.Array())

	// Columns, rows and single components agree on column-major order.
	assert.Equal(t, [3]float64{4, 5, 6}, m.Col(1).Array())
	assert.Equal(t, [3]float64{2, 5, 8}, m.Row(1).Array())
	assert.Equal(t, 8.0, m.At(1, 2))

	v := swz.NewVec4[float64](1, 2, 3, 4)
	f := mat.Mat3From[float64](v, swz.NewVec2[float64](5, 6), v.ZYX())
	assert.Equal(t, [9]float64{1, 2, 3, 4, 5, 6, 3, 2, 1}, f.Array())
	assert.True(t, mat.Mat3From[float64](m.Col(0), m.Col(1), m.Col(2)).Equal(m))

	c := mat.Mat2FromCols(swz.NewVec2[float32](1, 2), swz.NewVec2[float32](3, 4))
	assert.Equal(t, c, mat.Mat2From[float32](swz.NewVec4[float32](1, 2, 3, 4)))

	var arr [16]float64
	for i := range arr {
		arr[i] = float64(i)
	}
	assert.Equal(t, arr, mat.Mat4FromArray(arr).Array())
}

func TestSetters(t *testing.T) {
	m := mat.Identity3[float64]()
	m.SetCol(2, swz.NewVec3[float64](7, 8, 9))
	m.SetAt(0, 1, 5)
	assert.Equal(t, [9]float64{1, 0, 0, 5, 1, 0, 7, 8, 9}, m.Array())

	// A swizzle of another vector can be a column source.
	v := swz.NewVec3[float64](1, 2, 3)
	m.SetCol(0, v.ZYX())
	assert.Equal(t, [3]float64{3, 2, 1}, m.Col(0).Array())
}

func TestTranspose(t *testing.T) {
	m := mat.Mat2FromArray([4]float64{1, 2, 3, 4})
	assert.Equal(t, [4]float64{1, 3, 2, 4}, m.Transpose().Array())

	n := mat.Mat4FromArray([16]float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16})
	assert.Equal(t, [16]float64{1, 5, 9, 13, 2, 6, 10, 14, 3, 7, 11, 15, 4, 8, 12, 16}, n.Transpose().Array())
	assert.True(t, n.Transpose().Transpose().Equal(n))
}

func TestDeterminant(t *testing.T) {
	assert.Equal(t, -2.0, mat.Mat2FromArray([4]float64{1, 2, 3, 4}).Det())

	// Columns (2,0,1), (1,3,2), (1,1,3).
	m3 := mat.Mat3FromArray([9]float64{2, 0, 1, 1, 3, 2, 1, 1, 3})
	assert.Equal(t, 12.0, m3.Det())
	assert.Equal(t, 0.0, mat.Mat3FromArray([9]float64{1, 2, 3, 4, 5, 6, 7, 8, 9}).Det())

	// Upper triangular: the determinant is the product of the diagonal.
	m4 := mat.Mat4FromArray([16]float64{2, 0, 0, 0, 5, 3, 0, 0, 7, 1, 4, 0, 9, 8, 6, 5})
	assert.Equal(t, 120.0, m4.Det())
	assert.Equal(t, m4.Det(), m4.Transpose().Det())
}

func TestInverse(t *testing.T) {
	t.Run("Mat2", func(t *testing.T) {
		m := mat.Mat2FromArray([4]float64{4, 2, 7, 6})
		got := m.Mul(m.Inverse()).Array()
		want := mat.Identity2[float64]().Array()
		testutil.RequireNearlyEqual(t, got[:], want[:], 1e-12)
	})
	t.Run("Mat3", func(t *testing.T) {
		m := mat.Mat3FromArray([9]float64{2, 0, 1, 1, 3, 2, 1, 1, 3})
		inv := m.Inverse()
		got := m.Mul(inv).Array()
		want := mat.Identity3[float64]().Array()
		testutil.RequireNearlyEqual(t, got[:], want[:], 1e-12)
		got = inv.Mul(m).Array()
		testutil.RequireNearlyEqual(t, got[:], want[:], 1e-12)
	})
	t.Run("Mat4", func(t *testing.T) {
		m := mat.Mat4FromArray([16]float64{
			3, 1, 0, 2,
			-1, 4, 1, 0,
			2, 0, 5, 1,
			0, 1, -2, 6,
		})
		got := m.Mul(m.Inverse()).Array()
		want := mat.Identity4[float64]().Array()
		testutil.RequireNearlyEqual(t, got[:], want[:], 1e-12)
	})
	t.Run("Float32", func(t *testing.T) {
		m := mat.Mat4FromArray([16]float32{
			3, 1, 0, 2,
			-1, 4, 1, 0,
			2, 0, 5, 1,
			0, 1, -2, 6,
		})
		got := m.Inverse().Mul(m).Array()
		want := mat.Identity4[float32]().Array()
		testutil.RequireNearlyEqual(t, got[:], want[:], 1e-5)
	})
}

func TestInvertSingular(t *testing.T) {
	singular := mat.Mat3FromArray([9]float64{1, 2, 3, 2, 4, 6, 0, 1, 1})
	_, err := singular.Invert()
	require.ErrorIs(t, err, mat.ErrSingular)

	_, err = mat.Diag2[float32](0).Invert()
	require.ErrorIs(t, err, mat.ErrSingular)
	_, err = mat.Mat4[float64]{}.Invert()
	require.ErrorIs(t, err, mat.ErrSingular)

	// Inverse itself does not check.
	inv := mat.Diag2[float64](0).Inverse().Array()
	assert.True(t, math.IsNaN(inv[1]) || math.IsInf(inv[0], 0))

	m, err := mat.Diag4[float64](2).Invert()
	require.NoError(t, err)
	assert.True(t, m.Equal(mat.Diag4(0.5)))
}

func TestProducts(t *testing.T) {
	m := mat.Mat2FromArray([4]float64{1, 2, 3, 4}) // rows (1 3), (2 4)
	n := mat.Mat2FromArray([4]float64{5, 6, 7, 8}) // rows (5 7), (6 8)

	assert.Equal(t, [4]float64{23, 34, 31, 46}, m.Mul(n).Array())
	assert.Equal(t, [4]float64{5, 12, 21, 32}, m.MulComp(n).Array())
	assert.Equal(t, [4]float64{6, 8, 10, 12}, m.Add(n).Array())
	assert.Equal(t, [4]float64{-4, -4, -4, -4}, m.Sub(n).Array())
	assert.Equal(t, [4]float64{2, 4, 6, 8}, m.Scale(2).Array())

	v := swz.NewVec2[float64](1, 1)
	assert.Equal(t, [2]float64{4, 6}, m.MulVec(v).Array())
	assert.Equal(t, [2]float64{3, 7}, m.VecMul(v).Array())

	// v × m equals transpose(m) × v.
	p := mat.Mat3FromArray([9]float64{2, 0, 1, 1, 3, 2, 1, 1, 3})
	w := swz.NewVec3[float64](1, -2, 3)
	assert.Equal(t, p.Transpose().MulVec(w), p.VecMul(w))
	assert.Equal(t, p.MulVec(w), p.Transpose().VecMul(w))

	// (a × b) × v equals a × (b × v).
	q := mat.Diag3[float64](2)
	assert.Equal(t, p.Mul(q).MulVec(w), p.MulVec(q.MulVec(w)))

	// Transform a point by a translation.
	tr := mat.Identity4[float64]()
	tr.SetCol(3, swz.NewVec4[float64](10, 20, 30, 1))
	pt := tr.MulVec(swz.NewVec4[float64](1, 2, 3, 1))
	assert.Equal(t, [4]float64{11, 22, 33, 1}, pt.Array())
	assert.Equal(t, [3]float64{11, 22, 33}, pt.XYZ().Array())
}

func TestShapeConversion(t *testing.T) {
	m4 := mat.Mat4FromArray([16]float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16})
	assert.Equal(t, [9]float64{1, 2, 3, 5, 6, 7, 9, 10, 11}, m4.Mat3().Array())
	assert.Equal(t, [4]float64{1, 2, 5, 6}, m4.Mat2().Array())
	assert.Equal(t, [4]float64{1, 2, 5, 6}, m4.Mat3().Mat2().Array())

	m2 := mat.Mat2FromArray([4]float64{1, 2, 3, 4})
	assert.Equal(t, [9]float64{1, 2, 0, 3, 4, 0, 0, 0, 1}, m2.Mat3().Array())
	assert.Equal(t, [16]float64{1, 2, 0, 0, 3, 4, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1}, m2.Mat4().Array())
	assert.True(t, m2.Mat4().Equal(m2.Mat3().Mat4()))

	m3 := mat.Mat3FromArray([9]float64{1, 2, 3, 4, 5, 6, 7, 8, 9})
	assert.Equal(t, [16]float64{1, 2, 3, 0, 4, 5, 6, 0, 7, 8, 9, 0, 0, 0, 0, 1}, m3.Mat4().Array())
	assert.True(t, m3.Mat4().Mat3().Equal(m3))
}

func TestMapAndString(t *testing.T) {
	m := mat.Mat2FromArray([4]float64{1, -2, 3, -4})
	assert.Equal(t, [4]float64{1, 2, 3, 4}, m.Map(math.Abs).Array())

	assert.Equal(t, "Mat2((1, -2), (3, -4))", m.String())
	assert.Equal(t, "Mat3((1, 0, 0), (0, 1, 0), (0, 0, 1))", mat.Identity3[float32]().String())
}

func BenchmarkMat4Mul(b *testing.B) {
	m := mat.Mat4FromArray([16]float32{3, 1, 0, 2, -1, 4, 1, 0, 2, 0, 5, 1, 0, 1, -2, 6})
	n := mat.Identity4[float32]()
	for b.Loop() {
		n = n.Mul(m)
	}
	_ = n
}

func BenchmarkMat4Inverse(b *testing.B) {
	m := mat.Mat4FromArray([16]float32{3, 1, 0, 2, -1, 4, 1, 0, 2, 0, 5, 1, 0, 1, -2, 6})
	for b.Loop() {
		_ = m.Inverse()
	}
}
