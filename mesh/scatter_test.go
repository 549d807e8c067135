package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"

	v2 "github.com/tomas19/oceanmesh/vec/v2"
)

func TestScatterAddAccumulatesSignedContributions(t *testing.T) {
	edges := []Edge{{I: 0, J: 1}, {I: 1, J: 2}}
	contributions := []v2.Vec{{X: 1, Y: 0}, {X: 0, Y: 2}}

	ftot := scatterAdd(3, edges, contributions)

	assert.Equal(t, v2.Vec{X: 1, Y: 0}, ftot[0])
	assert.Equal(t, v2.Vec{X: -1, Y: -2}, ftot[1])
	assert.Equal(t, v2.Vec{X: 0, Y: 2}, ftot[2])
}

func TestScatterAddWithNoEdges(t *testing.T) {
	ftot := scatterAdd(2, nil, nil)
	assert.Len(t, ftot, 2)
	assert.Equal(t, v2.Vec{}, ftot[0])
}
