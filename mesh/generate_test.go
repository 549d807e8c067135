package mesh

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomas19/oceanmesh/field"
	"github.com/tomas19/oceanmesh/sdf"
	v2 "github.com/tomas19/oceanmesh/vec/v2"
)

func unitDiscDomain() sdf.Domain {
	return sdf.NewDomain(sdf.Circle2D(1.0), sdf.NewBox2(v2.Vec{}, v2.Vec{X: 2.4, Y: 2.4}))
}

// Scenario 1 (spec.md §8): a uniform-density disc converges to a non-empty
// conforming mesh within its bounding box.
func TestGenerateMeshUnitDisc(t *testing.T) {
	result, err := GenerateMesh(unitDiscDomain(), field.Constant(0.2), WithSeed(1), WithMaxIter(20))
	require.NoError(t, err)
	assert.NotEmpty(t, result.Points)
	assert.NotEmpty(t, result.Triangles)

	for _, p := range result.Points {
		assert.LessOrEqual(t, p.Length(), 1.0+0.05)
	}
}

// Scenario 2 (spec.md §8, §9): fixed points survive every retriangulation
// at their exact caller-supplied coordinates.
func TestGenerateMeshKeepsFixedPointsExact(t *testing.T) {
	fixedPts := []v2.Vec{{X: 0, Y: 0}, {X: 0.5, Y: 0}}
	result, err := GenerateMesh(unitDiscDomain(), field.Constant(0.25),
		WithSeed(2), WithMaxIter(15), WithFixedPoints(fixedPts...))
	require.NoError(t, err)

	for _, fp := range fixedPts {
		found := false
		for _, p := range result.Points {
			if p == fp {
				found = true
				break
			}
		}
		assert.True(t, found, "fixed point %v not present in final mesh", fp)
	}
}

// Scenario 3 (spec.md §8): on an annulus domain no point ends up in the
// inner hole or outside the outer ring.
func TestGenerateMeshAnnulus(t *testing.T) {
	domain := sdf.NewDomain(sdf.Annulus2D(0.3, 1.0), sdf.NewBox2(v2.Vec{}, v2.Vec{X: 2.4, Y: 2.4}))
	result, err := GenerateMesh(domain, field.Constant(0.2), WithSeed(3), WithMaxIter(15))
	require.NoError(t, err)
	assert.NotEmpty(t, result.Points)

	for _, p := range result.Points {
		r := p.Length()
		assert.GreaterOrEqual(t, r, 0.3-0.05)
		assert.LessOrEqual(t, r, 1.0+0.05)
	}
}

func TestGenerateMeshInvalidMinEdgeLength(t *testing.T) {
	_, err := GenerateMesh(unitDiscDomain(), field.Constant(0), WithMaxIter(5))
	assert.True(t, errors.Is(err, ErrInvalidParameter))
}

func TestGenerateMeshInvalidMaxIter(t *testing.T) {
	_, err := GenerateMesh(unitDiscDomain(), field.Constant(0.2), WithMaxIter(0))
	assert.True(t, errors.Is(err, ErrInvalidParameter))
}

func TestGenerateMeshWithLockBoundary(t *testing.T) {
	result, err := GenerateMesh(unitDiscDomain(), field.Constant(0.2),
		WithSeed(4), WithMaxIter(15), WithLockBoundary())
	require.NoError(t, err)
	assert.NotEmpty(t, result.Points)
}

func TestGenerateMeshProgressCallbackFires(t *testing.T) {
	var calls []IterationStats
	_, err := GenerateMesh(unitDiscDomain(), field.Constant(0.25), WithSeed(5), WithMaxIter(5),
		WithProgress(func(s IterationStats) { calls = append(calls, s) }))
	require.NoError(t, err)
	// maxIter-1 non-terminal iterations emit progress; the terminal
	// iteration returns before the progress callback runs.
	assert.Len(t, calls, 4)
}

func TestGenerateMeshRespectsCallerSuppliedPoints(t *testing.T) {
	pts := []v2.Vec{
		{X: 0, Y: 0}, {X: 0.5, Y: 0}, {X: -0.5, Y: 0},
		{X: 0, Y: 0.5}, {X: 0, Y: -0.5}, {X: 0.3, Y: 0.3},
	}
	result, err := GenerateMesh(unitDiscDomain(), field.Constant(0.3),
		WithPoints(pts), WithMaxIter(1))
	require.NoError(t, err)
	assert.NotEmpty(t, result.Triangles)
}
