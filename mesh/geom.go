package mesh

import v2 "github.com/tomas19/oceanmesh/vec/v2"

// Edge is a canonical undirected mesh edge: I < J, indices into the
// current point set.
type Edge struct {
	I, J int
}

// UniqueEdges extracts the canonicalized edge set from a triangulation: the
// set of unordered vertex pairs appearing on any triangle side, duplicates
// coalesced, per spec.md §4.C1.
func UniqueEdges(t [][3]int) []Edge {
	seen := make(map[Edge]bool, len(t)*3)
	edges := make([]Edge, 0, len(t)*3/2)
	add := func(a, b int) {
		if a > b {
			a, b = b, a
		}
		e := Edge{I: a, J: b}
		if seen[e] {
			return
		}
		seen[e] = true
		edges = append(edges, e)
	}
	for _, tri := range t {
		add(tri[0], tri[1])
		add(tri[1], tri[2])
		add(tri[2], tri[0])
	}
	return edges
}

// ClosestNode returns the index of the point in p minimizing squared
// Euclidean distance to q. Ties are broken by the lowest index, per
// spec.md §4.C1 — this exact tie-break is what makes fixed-point
// re-identification (spec.md §9) reproducible.
func ClosestNode(q v2.Vec, p []v2.Vec) int {
	best := 0
	bestD := q.Dist2(p[0])
	for i := 1; i < len(p); i++ {
		d := q.Dist2(p[i])
		if d < bestD {
			bestD = d
			best = i
		}
	}
	return best
}

// Centroid returns the arithmetic mean of the three vertices of triangle t.
func Centroid(t [3]int, p []v2.Vec) v2.Vec {
	return v2.Centroid(p[t[0]], p[t[1]], p[t[2]])
}
