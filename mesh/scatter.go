package mesh

import v2 "github.com/tomas19/oceanmesh/vec/v2"

// scatterAdd is the C2 sparse accumulator: given per-edge 2D force
// contributions, it produces a per-vertex force array Ftot of length n such
// that for every edge (i,j), Ftot[i] += f and Ftot[j] -= f.
//
// This is semantically a COO-to-dense scatter-add (the Python source's
// `_dense` helper, built on scipy.sparse.coo_matrix). spec.md §9 explicitly
// calls for a direct accumulator here rather than a sparse-matrix library,
// so unlike the rest of this package's numeric reductions (see force.go)
// this one stays a plain sequential loop — see DESIGN.md.
func scatterAdd(n int, edges []Edge, contributions []v2.Vec) []v2.Vec {
	ftot := make([]v2.Vec, n)
	for k, e := range edges {
		f := contributions[k]
		ftot[e.I] = ftot[e.I].Add(f)
		ftot[e.J] = ftot[e.J].Sub(f)
	}
	return ftot
}
