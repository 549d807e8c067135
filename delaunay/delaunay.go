// Package delaunay adapts a real incremental Delaunay triangulator to the
// "Delaunay triangulator" collaborator interface spec.md §6 requires:
// given a flat sequence of 2D coordinates, build a triangulation and expose
// get_finite_vertices()/get_finite_cells() equivalents. The triangulation
// algorithm itself is out of scope for this core (spec.md §1) — this file
// is a thin translation layer over github.com/fogleman/delaunay.
package delaunay

import (
	"fmt"

	ext "github.com/fogleman/delaunay"

	v2 "github.com/tomas19/oceanmesh/vec/v2"
)

// Triangulate builds a Delaunay triangulation of points. The returned point
// set may be a reordering of the input with duplicates silently removed —
// callers must not assume index stability across a call to Triangulate,
// per spec.md §3's "Vertex identity is NOT stable across iterations"
// invariant and the re-identification discipline in spec.md §9.
func Triangulate(points []v2.Vec) (p []v2.Vec, t [][3]int, err error) {
	if len(points) < 3 {
		return nil, nil, fmt.Errorf("delaunay: need at least 3 points, got %d", len(points))
	}

	// Deduplicate by exact position: the underlying triangulator is not
	// guaranteed to handle coincident points gracefully, and spec.md §6
	// requires silent deduplication from this collaborator.
	seen := make(map[v2.Vec]int, len(points))
	uniq := make([]v2.Vec, 0, len(points))
	for _, pt := range points {
		if _, ok := seen[pt]; ok {
			continue
		}
		seen[pt] = len(uniq)
		uniq = append(uniq, pt)
	}

	pts := make([]ext.Point, len(uniq))
	for i, pt := range uniq {
		pts[i] = ext.Point{X: pt.X, Y: pt.Y}
	}

	tri, err := ext.Triangulate(pts)
	if err != nil {
		return nil, nil, fmt.Errorf("delaunay: triangulate: %w", err)
	}

	cells := make([][3]int, 0, len(tri.Triangles)/3)
	for i := 0; i+2 < len(tri.Triangles); i += 3 {
		a, b, c := tri.Triangles[i], tri.Triangles[i+1], tri.Triangles[i+2]
		if a == b || b == c || a == c {
			continue
		}
		cells = append(cells, [3]int{a, b, c})
	}

	return uniq, cells, nil
}
