package sdf

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	v2 "github.com/tomas19/oceanmesh/vec/v2"
)

func TestCircle2D(t *testing.T) {
	c := Circle2D(1.0)
	assert.InDelta(t, -1, c.Evaluate(v2.Vec{}), 1e-12)
	assert.InDelta(t, 0, c.Evaluate(v2.Vec{X: 1, Y: 0}), 1e-12)
	assert.InDelta(t, 1, c.Evaluate(v2.Vec{X: 2, Y: 0}), 1e-12)
}

func TestBox2D(t *testing.T) {
	b := Box2D(v2.Vec{X: 2, Y: 2})
	assert.InDelta(t, -1, b.Evaluate(v2.Vec{}), 1e-12)
	assert.InDelta(t, 0, b.Evaluate(v2.Vec{X: 1, Y: 0}), 1e-12)
	assert.Greater(t, b.Evaluate(v2.Vec{X: 2, Y: 2}), 0.0)
}

func TestUnion2D(t *testing.T) {
	u := Union2D(CircleAt2D(v2.Vec{X: -2}, 1), CircleAt2D(v2.Vec{X: 2}, 1))
	assert.InDelta(t, -1, u.Evaluate(v2.Vec{X: -2}), 1e-12)
	assert.InDelta(t, -1, u.Evaluate(v2.Vec{X: 2}), 1e-12)
	assert.Greater(t, u.Evaluate(v2.Vec{}), 0.0)
}

func TestAnnulus2D(t *testing.T) {
	a := Annulus2D(0.3, 1.0)
	assert.Less(t, a.Evaluate(v2.Vec{X: 0.6}), 0.0)
	assert.Greater(t, a.Evaluate(v2.Vec{}), 0.0)
	assert.Greater(t, a.Evaluate(v2.Vec{X: 2}), 0.0)
}

func TestTranslate2D(t *testing.T) {
	c := Translate2D(Circle2D(1.0), v2.Vec{X: 5, Y: 0})
	assert.InDelta(t, -1, c.Evaluate(v2.Vec{X: 5, Y: 0}), 1e-12)
}

func TestResolveDomain(t *testing.T) {
	bbox := NewBox2(v2.Vec{}, v2.Vec{X: 4, Y: 4})

	d := NewDomain(Circle2D(1), bbox)
	fn, b, err := Resolve(d, Box2{}, false)
	require.NoError(t, err)
	assert.NotNil(t, fn)
	assert.Equal(t, bbox, b)

	fn2, b2, err := Resolve(Circle2D(1), bbox, true)
	require.NoError(t, err)
	assert.NotNil(t, fn2)
	assert.Equal(t, bbox, b2)

	_, _, err = Resolve(Circle2D(1), Box2{}, false)
	assert.Error(t, err)

	_, _, err = Resolve(42, Box2{}, false)
	assert.True(t, errors.Is(err, ErrUnresolvableDomain))
}
