package fixer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	v2 "github.com/tomas19/oceanmesh/vec/v2"
)

func TestFixRemovesDegenerateTriangles(t *testing.T) {
	p := []v2.Vec{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}
	tris := [][3]int{
		{0, 1, 2}, // valid
		{0, 0, 1}, // repeated index
		{0, 1, 0}, // repeated index, different arrangement
	}

	fp, ft, diag := Fix(p, tris, false)
	assert.Len(t, ft, 1)
	assert.Equal(t, 2, diag.DegenerateTriangles)
	assert.Len(t, fp, 3)
}

func TestFixCompactsUnusedVertices(t *testing.T) {
	p := []v2.Vec{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 9, Y: 9}}
	tris := [][3]int{{0, 1, 2}}

	fp, ft, diag := Fix(p, tris, true)
	assert.Len(t, fp, 3)
	assert.Equal(t, 1, diag.UnusedVertices)
	for _, tri := range ft {
		for _, idx := range tri {
			assert.Less(t, idx, len(fp))
		}
	}
}

func TestFixKeepsUnusedVerticesWhenNotDeleting(t *testing.T) {
	p := []v2.Vec{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 9, Y: 9}}
	tris := [][3]int{{0, 1, 2}}

	fp, _, diag := Fix(p, tris, false)
	assert.Len(t, fp, 4)
	assert.Equal(t, 0, diag.UnusedVertices)
}
