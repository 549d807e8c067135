// Package fixer implements the "mesh fixer" collaborator from spec.md §6:
// given (P,T,delete_unused) it returns cleaned (P',T',diag); there is no
// dimension argument, since only 2D meshes are handled. This core
// treats mesh post-cleanup as an external concern (spec.md §1) invoked once,
// at the very end of the relaxation loop (spec.md §4.C6 step 5) — this
// package is that single invocation's implementation, not an iterative
// cleanup pass.
//
// The vertex-compaction step mirrors the teacher's vertex-buffer dedup
// idiom (render/finiteelements/mesh/fem.go's buffer.VB: an id-by-position
// lookup table that hands out dense indices), adapted here to compact by
// *usage* rather than by coincident position.
package fixer

import (
	v2 "github.com/tomas19/oceanmesh/vec/v2"
)

// Diagnostics reports what Fix removed.
type Diagnostics struct {
	DegenerateTriangles int
	UnusedVertices      int
}

// Fix removes degenerate triangles (repeated vertex index, zero area) and,
// if deleteUnused is true, compacts the vertex buffer to only the vertices
// referenced by a surviving triangle.
func Fix(p []v2.Vec, t [][3]int, deleteUnused bool) ([]v2.Vec, [][3]int, Diagnostics) {
	var diag Diagnostics

	clean := make([][3]int, 0, len(t))
	for _, tri := range t {
		if tri[0] == tri[1] || tri[1] == tri[2] || tri[0] == tri[2] {
			diag.DegenerateTriangles++
			continue
		}
		if triangleArea2(p[tri[0]], p[tri[1]], p[tri[2]]) == 0 {
			diag.DegenerateTriangles++
			continue
		}
		clean = append(clean, tri)
	}

	if !deleteUnused {
		return p, clean, diag
	}

	used := make([]bool, len(p))
	for _, tri := range clean {
		used[tri[0]] = true
		used[tri[1]] = true
		used[tri[2]] = true
	}

	remap := make([]int, len(p))
	newP := make([]v2.Vec, 0, len(p))
	for i, u := range used {
		if !u {
			diag.UnusedVertices++
			remap[i] = -1
			continue
		}
		remap[i] = len(newP)
		newP = append(newP, p[i])
	}

	newT := make([][3]int, len(clean))
	for i, tri := range clean {
		newT[i] = [3]int{remap[tri[0]], remap[tri[1]], remap[tri[2]]}
	}

	return newP, newT, diag
}

func triangleArea2(a, b, c v2.Vec) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (c.X-a.X)*(b.Y-a.Y)
}
