package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"

	v2 "github.com/tomas19/oceanmesh/vec/v2"
)

func unitDiscSDF(p v2.Vec) float64 { return p.Length() - 1 }

func TestProjectBoundaryPullsExteriorPointsIn(t *testing.T) {
	p := []v2.Vec{{X: 2, Y: 0}}
	out := projectBoundary(p, unitDiscSDF, machineEpsSqrt)

	assert.InDelta(t, 1.0, out[0].Length(), 1e-6)
}

func TestProjectBoundaryLeavesInteriorPointsUntouched(t *testing.T) {
	p := []v2.Vec{{X: 0.1, Y: 0.1}}
	out := projectBoundary(p, unitDiscSDF, machineEpsSqrt)

	assert.Equal(t, p[0], out[0])
}
