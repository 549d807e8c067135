package mesh

import (
	"math"
	"runtime"
	"sync"

	"gonum.org/v1/gonum/floats"

	v2 "github.com/tomas19/oceanmesh/vec/v2"
)

// l0mult is the global rescale constant from spec.md §4.C5:
// 1 + 0.4/2^(DIM-1) with DIM=2.
const l0mult = 1 + 0.4/2

// edgeLenEps is the floor length substituted for a zero-length edge so the
// 1/L division in the force law never blows up.
const edgeLenEps = 2.220446049250313e-16

// edgeBatch is sized the same way the teacher's marching-cubes SDF
// evaluation batches work requests (render/march3.go's evalReq/batchSize):
// large enough to amortize channel overhead, small enough to keep worker
// queues balanced.
const edgeBatch = 256

type edgeGeom struct {
	vec v2.Vec
	len float64
	h   float64
}

// computeEdgeGeometry evaluates per-edge vector, length and midpoint target
// length in parallel across runtime.NumCPU() workers, mirroring the
// teacher's evalRoutines/evalProcessCh worker-pool pattern for the one
// place spec.md §5 explicitly allows intra-iteration parallelism: "may
// parallelize internally across independent edges or triangles". The
// scatter-add that follows (scatter.go) stays strictly sequential, so the
// reduction order — and hence determinism — does not depend on worker
// scheduling.
func computeEdgeGeometry(p []v2.Vec, edges []Edge, fh sizeEval) []edgeGeom {
	out := make([]edgeGeom, len(edges))

	type job struct{ lo, hi int }
	jobs := make(chan job, (len(edges)/edgeBatch)+1)
	var wg sync.WaitGroup

	workers := runtime.NumCPU()
	if workers > len(edges) {
		workers = len(edges)
	}
	if workers < 1 {
		workers = 1
	}
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				for k := j.lo; k < j.hi; k++ {
					e := edges[k]
					vec := p[e.I].Sub(p[e.J])
					length := vec.Length()
					if length == 0 {
						length = edgeLenEps
					}
					mid := v2.Centroid(p[e.I], p[e.J])
					out[k] = edgeGeom{vec: vec, len: length, h: fh(mid)}
				}
			}
		}()
	}
	for lo := 0; lo < len(edges); lo += edgeBatch {
		hi := lo + edgeBatch
		if hi > len(edges) {
			hi = len(edges)
		}
		jobs <- job{lo: lo, hi: hi}
	}
	close(jobs)
	wg.Wait()

	return out
}

// computeForces is the C5 Persson-Strang force evaluator: edge lengths and
// target lengths are rescaled by a single global factor so the system's
// total stored "spring" energy tracks its current total length, then each
// compressed edge is given a repulsive force proportional to how
// compressed it is (stretched edges exert none — retriangulation, not the
// force law, handles topology change), per spec.md §4.C5.
func computeForces(n int, p []v2.Vec, edges []Edge, fh sizeEval) []v2.Vec {
	geoms := computeEdgeGeometry(p, edges, fh)

	lengths := make([]float64, len(geoms))
	targets := make([]float64, len(geoms))
	for i, g := range geoms {
		lengths[i] = g.len
		targets[i] = g.h
	}
	sumL2 := floats.Dot(lengths, lengths)
	sumH2 := floats.Dot(targets, targets)
	scale := l0mult * math.Sqrt(sumL2/sumH2)

	contributions := make([]v2.Vec, len(geoms))
	for i, g := range geoms {
		l0 := g.h * scale
		mag := math.Max(l0-g.len, 0)
		contributions[i] = g.vec.MulScalar(mag / g.len)
	}

	return scatterAdd(n, edges, contributions)
}
