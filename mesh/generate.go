// Package mesh implements the core Persson-Strang force-relaxation mesh
// generator: C1 (geometry), C2 (scatter-add), C3 (seeding), C4 (boundary
// projection), C5 (force law) and the C6 relaxation loop that drives them,
// plus the C7 multiscale composer. External collaborators — the Delaunay
// triangulator (a thin wrapper over a third-party library), the
// boundary-extraction routine and the mesh fixer — live in sibling packages
// (delaunay, topology, fixer), kept out of this package so this one never
// depends on their internals, matching spec.md §1's "opaque collaborator"
// boundary.
package mesh

import (
	"errors"
	"fmt"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/tomas19/oceanmesh/delaunay"
	"github.com/tomas19/oceanmesh/fixer"
	sdfpkg "github.com/tomas19/oceanmesh/sdf"
	"github.com/tomas19/oceanmesh/topology"
	v2 "github.com/tomas19/oceanmesh/vec/v2"

	fieldpkg "github.com/tomas19/oceanmesh/field"
)

// Result is what GenerateMesh returns on success: the final point set, the
// triangulation over it, and the fixer's diagnostics from the single
// terminal cleanup pass.
type Result struct {
	Points      []v2.Vec
	Triangles   [][3]int
	Diagnostics fixer.Diagnostics
}

// GenerateMesh runs the C6 relaxation loop to completion: exactly
// cfg.maxIter iterations, the external mesh fixer invoked once on the
// final iteration, per spec.md §4.C6's termination discipline.
//
// domain must be an sdf.SDF2 (with WithBBox supplying its bounding box) or
// an sdf.Domain (which already carries one). edgeLength must be a
// field.SizeField, or a field.Func paired with WithMinEdgeLength.
func GenerateMesh(domain any, edgeLength any, opts ...Option) (Result, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	fdFn, bbox, err := sdfpkg.Resolve(domain, cfg.bbox, cfg.hasBBox)
	if err != nil {
		return Result{}, err
	}
	if !(bbox.Min.X < bbox.Max.X && bbox.Min.Y < bbox.Max.Y) {
		return Result{}, fmt.Errorf("%w: malformed bbox %v", ErrInvalidParameter, bbox)
	}
	fhField, hmin, err := fieldpkg.Resolve(edgeLength, cfg.minEdgeLength, cfg.hasMinEdgeLength)
	if err != nil {
		return Result{}, err
	}
	if hmin <= 0 {
		return Result{}, fmt.Errorf("%w: min_edge_length must be > 0", ErrInvalidParameter)
	}
	if cfg.maxIter <= 0 {
		return Result{}, fmt.Errorf("%w: max_iter must be > 0", ErrInvalidParameter)
	}

	fd := sdfEval(fdFn.Evaluate)
	fh := sizeEval(fhField.Eval)

	geps := 1e-3 * hmin
	deps := machineEpsSqrt

	var p []v2.Vec
	if cfg.hasPoints {
		p = append([]v2.Vec(nil), cfg.points...)
	} else {
		p, err = initialPoints(hmin, geps, bbox, fh, fd, cfg.fixedPoints, cfg.seed)
		if err != nil {
			return Result{}, err
		}
	}
	if len(p) == 0 {
		return Result{}, ErrEmptyInitialization
	}

	var t [][3]int

	for iter := 0; iter < cfg.maxIter; iter++ {
		iterStart := time.Now()
		pPrime, tri, err := delaunay.Triangulate(p)
		if err != nil {
			return Result{}, fmt.Errorf("mesh: triangulate: %w", err)
		}
		p, t = pPrime, tri

		nfix := 0
		ifix := make([]int, 0, len(cfg.fixedPoints)+8)
		if cfg.lockBoundary {
			boundary, err := topology.ExternalBoundary(p, t)
			if err != nil {
				return Result{}, fmt.Errorf("mesh: external boundary: %w", err)
			}
			for _, b := range boundary {
				ifix = append(ifix, ClosestNode(b, p))
			}
			nfix = len(ifix)
		}
		for _, f := range cfg.fixedPoints {
			idx := ClosestNode(f, p)
			ifix = append(ifix, idx)
			p[idx] = f
		}

		interior := make([][3]int, 0, len(t))
		for _, tri := range t {
			if fd(Centroid(tri, p)) < -geps {
				interior = append(interior, tri)
			}
		}
		t = interior

		if iter == cfg.maxIter-1 {
			finalP, finalT, diag := fixer.Fix(p, t, true)
			return Result{Points: finalP, Triangles: finalT, Diagnostics: diag}, nil
		}

		edges := UniqueEdges(t)
		ftot := computeForces(len(p), p, edges, fh)
		for _, idx := range ifix[:nfix] {
			ftot[idx] = v2.Vec{}
		}
		for _, f := range cfg.fixedPoints {
			ftot[ClosestNode(f, p)] = v2.Vec{}
		}

		maxMove := 0.0
		for i := range p {
			p[i] = p[i].Add(ftot[i].MulScalar(cfg.pseudoDT))
			m := ftot[i].Length() * cfg.pseudoDT
			if m > maxMove {
				maxMove = m
			}
		}
		p = projectBoundary(p, fd, deps)

		if cfg.progress != nil && cfg.progressEvery > 0 && iter%cfg.progressEvery == 0 {
			stats := iterationStats(iter, maxMove, p, t, edges)
			stats.Elapsed = time.Since(iterStart)
			cfg.progress(stats)
		}
	}

	return Result{}, errors.New("mesh: unreachable: loop exited without terminal iteration")
}

// iterationStats reports the edge-length spread gonum/stat is built to
// summarize, the same diagnostic role the teacher's progress logging
// serves for its marching-cubes sweep.
func iterationStats(iter int, maxMove float64, p []v2.Vec, t [][3]int, edges []Edge) IterationStats {
	stats := IterationStats{
		Iteration:    iter,
		MaxMovement:  maxMove,
		NumPoints:    len(p),
		NumTriangles: len(t),
	}
	if len(edges) == 0 {
		return stats
	}
	lengths := make([]float64, len(edges))
	for i, e := range edges {
		lengths[i] = p[e.I].Dist(p[e.J])
	}
	stats.MinEdgeLength = floats.Min(lengths)
	stats.MaxEdgeLength = floats.Max(lengths)
	stats.MeanEdgeLength = stat.Mean(lengths, nil)
	return stats
}
