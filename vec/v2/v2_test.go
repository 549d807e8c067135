package v2

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVecArithmetic(t *testing.T) {
	a := Vec{X: 1, Y: 2}
	b := Vec{X: 3, Y: -1}

	assert.Equal(t, Vec{X: 4, Y: 1}, a.Add(b))
	assert.Equal(t, Vec{X: -2, Y: 3}, a.Sub(b))
	assert.Equal(t, Vec{X: 2, Y: 4}, a.MulScalar(2))
	assert.Equal(t, Vec{X: 0.5, Y: 1}, a.DivScalar(2))
	assert.InDelta(t, 1, a.Dot(b), 1e-12)
}

func TestVecLength(t *testing.T) {
	v := Vec{X: 3, Y: 4}
	assert.InDelta(t, 25, v.Length2(), 1e-12)
	assert.InDelta(t, 5, v.Length(), 1e-12)
}

func TestVecDist(t *testing.T) {
	a := Vec{X: 0, Y: 0}
	b := Vec{X: 3, Y: 4}
	assert.InDelta(t, 25, a.Dist2(b), 1e-12)
	assert.InDelta(t, 5, a.Dist(b), 1e-12)
}

func TestVecMinMaxCeil(t *testing.T) {
	a := Vec{X: 1, Y: 5}
	b := Vec{X: 3, Y: -2}
	assert.Equal(t, Vec{X: 1, Y: -2}, a.Min(b))
	assert.Equal(t, Vec{X: 3, Y: 5}, a.Max(b))
	assert.Equal(t, Vec{X: 2, Y: 6}, Vec{X: 1.2, Y: 5.0001}.Ceil())
}

func TestSumAndCentroid(t *testing.T) {
	vs := []Vec{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 0, Y: 2}}
	assert.Equal(t, Vec{X: 2, Y: 2}, Sum(vs...))

	c := Centroid(vs...)
	assert.InDelta(t, 2.0/3.0, c.X, 1e-12)
	assert.InDelta(t, 2.0/3.0, c.Y, 1e-12)
}

func TestAddScalar(t *testing.T) {
	a := Vec{X: 1, Y: 2}
	got := a.AddScalar(3)
	assert.Equal(t, Vec{X: 4, Y: 5}, got)
}

func TestLengthOfZeroVector(t *testing.T) {
	var z Vec
	assert.Equal(t, 0.0, z.Length())
	assert.False(t, math.IsNaN(z.Length()))
}
