// Package topology implements the "external topology routine" collaborator
// from spec.md §6: given (P,T), return the external boundary as a set of
// vertex positions. A domain can have more than one boundary loop (e.g. the
// annulus in spec.md §8 scenario 3 has an inner and an outer ring), so this
// collects every boundary vertex regardless of which ring it belongs to.
package topology

import (
	"sort"

	v2 "github.com/tomas19/oceanmesh/vec/v2"
)

// ExternalBoundary returns the positions of every vertex lying on the
// external boundary of the triangulation (p,t): the boundary is the set of
// edges that belong to exactly one triangle, per the standard
// triangle-mesh boundary characterization. Positions are returned ordered
// by vertex index, since spec.md §6 leaves boundary order unspecified and
// the sole caller re-identifies each one by nearest position anyway.
func ExternalBoundary(p []v2.Vec, t [][3]int) ([]v2.Vec, error) {
	count := make(map[[2]int]int)
	bump := func(a, b int) {
		if a > b {
			a, b = b, a
		}
		count[[2]int{a, b}]++
	}
	for _, tri := range t {
		bump(tri[0], tri[1])
		bump(tri[1], tri[2])
		bump(tri[2], tri[0])
	}

	boundaryVerts := make(map[int]bool)
	for edge, n := range count {
		if n != 1 {
			continue
		}
		boundaryVerts[edge[0]] = true
		boundaryVerts[edge[1]] = true
	}
	if len(boundaryVerts) == 0 {
		return nil, nil
	}

	ids := make([]int, 0, len(boundaryVerts))
	for id := range boundaryVerts {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	out := make([]v2.Vec, len(ids))
	for i, id := range ids {
		out[i] = p[id]
	}
	return out, nil
}
