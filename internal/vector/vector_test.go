package vector_test

import (
	"testing"

	"github.com/born-ml/online/internal/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDense_Dot(t *testing.T) {
	a := vector.Dense{1.0, 2.0}
	b := vector.Dense{3.0, 4.0}

	assert.Equal(t, 11.0, a.Dot(b))
	assert.Equal(t, 11.0, vector.Dot(a, b))
}

func TestDense_ZeroAndSet(t *testing.T) {
	v := vector.Zero(3)
	require.Equal(t, 3, v.Dimension())
	for i := range v.Dimension() {
		assert.Equal(t, 0.0, v.At(i))
	}

	v.Set(1, 4.5)
	assert.Equal(t, 4.5, v.At(1))
	assert.Equal(t, vector.Dense{0, 4.5, 0}, v)
}

func TestDense_OutOfRangePanics(t *testing.T) {
	v := vector.Zero(2)

	assert.Panics(t, func() { v.At(2) })
	assert.Panics(t, func() { v.Set(-1, 1) })
}

func TestDense_DimensionMismatchPanics(t *testing.T) {
	assert.Panics(t, func() {
		vector.Dense{1, 2}.Dot(vector.Dense{1, 2, 3})
	})
}

func TestFixed(t *testing.T) {
	v := vector.Fixed(4, 5.1, 3.5, 1.4, 0.2)
	assert.Equal(t, 4, v.Dimension())
	assert.InDelta(t, 1.4, v.At(2), 1e-12)

	assert.Panics(t, func() { vector.Fixed(4, 1, 2) })
}

func TestScalar(t *testing.T) {
	s := vector.Scalar(3)
	assert.Equal(t, 1, s.Dimension())
	assert.Equal(t, 3.0, s.At(0))
	assert.Equal(t, 6.0, s.Dot(vector.Scalar(2)))
	assert.Equal(t, 6.0, s.Dot(vector.Dense{2}))

	s.Set(0, -1)
	assert.Equal(t, vector.Scalar(-1), s)

	assert.Panics(t, func() { s.At(1) })
	assert.Equal(t, vector.Scalar(0), vector.ZeroScalar(1))
	assert.Panics(t, func() { vector.ZeroScalar(2) })
}

func TestGonum(t *testing.T) {
	a := vector.NewGonum(1, 2, 3)
	b := vector.ZeroGonum(3)
	b.Set(0, 1)
	b.Set(2, 2)

	assert.Equal(t, 3, a.Dimension())
	assert.Equal(t, 7.0, a.Dot(b))
	assert.Equal(t, 7.0, a.Dot(vector.Dense{1, 0, 2}))
	assert.Equal(t, 7.0, vector.Dense{1, 0, 2}.Dot(a))
	assert.Panics(t, func() { a.At(3) })
}

func TestCopyAndEqual(t *testing.T) {
	g := vector.NewGonum(1, 2)
	d := vector.Copy(g)

	assert.True(t, vector.Equal(g, d))
	d.Set(0, 9)
	assert.False(t, vector.Equal(g, d))
	assert.False(t, vector.Equal(vector.Dense{1}, vector.Dense{1, 2}))

	clone := d.Clone()
	clone.Set(1, 0)
	assert.Equal(t, 2.0, d.At(1))
}

func TestZeroDimension(t *testing.T) {
	d := vector.Zero(0)
	g := vector.ZeroGonum(0)

	assert.Equal(t, 0, d.Dimension())
	assert.Equal(t, 0, g.Dimension())
	assert.Equal(t, 0, vector.NewGonum().Dimension())

	assert.Zero(t, g.Dot(vector.ZeroGonum(0)))
	assert.Zero(t, g.Dot(d))
	assert.Zero(t, d.Dot(g))
	assert.True(t, vector.Equal(d, g))
	assert.Empty(t, vector.Copy(g))
	assert.Panics(t, func() { g.At(0) })

	assert.Panics(t, func() { vector.Zero(-1) })
	assert.Panics(t, func() { vector.ZeroGonum(-1) })
}
