package mesh

import (
	"fmt"
	"math"
	"math/rand"

	sdfpkg "github.com/tomas19/oceanmesh/sdf"
	v2 "github.com/tomas19/oceanmesh/vec/v2"
)

// initialPoints is the C3 seeding procedure: a regular lattice over bbox at
// spacing h0, rejection-sampled by local coarseness, filtered to the
// domain interior, with the fixed points F prepended, per spec.md §4.C3.
//
// The PRNG is seeded deterministically, matching the seeded-rand idiom in
// katalvlaran-lvlath/tsp/rng.go (rand.New(rand.NewSource(seed))) — a fresh
// *rand.Rand per call keeps sampling reproducible without any shared,
// not-goroutine-safe global generator.
func initialPoints(h0, geps float64, bbox sdfpkg.Box2, fh sizeEval, fd sdfEval, fixed []v2.Vec, seed int64) ([]v2.Vec, error) {
	rng := rand.New(rand.NewSource(seed))

	var lattice []v2.Vec
	for x := bbox.Min.X; x <= bbox.Max.X+1e-9; x += h0 {
		for y := bbox.Min.Y; y <= bbox.Max.Y+1e-9; y += h0 {
			lattice = append(lattice, v2.Vec{X: x, Y: y})
		}
	}

	r := make([]float64, len(lattice))
	rMin := math.Inf(1)
	haveFloor := false
	for i, p := range lattice {
		r[i] = fh(p)
		if r[i] >= h0 && r[i] < rMin {
			rMin = r[i]
			haveFloor = true
		}
	}
	if !haveFloor {
		return nil, fmt.Errorf("%w: size field everywhere finer than min_edge_length", ErrInvalidParameter)
	}

	points := make([]v2.Vec, 0, len(fixed)+len(lattice))
	points = append(points, fixed...)
	for i, p := range lattice {
		keep := rng.Float64() < (rMin/r[i])*(rMin/r[i])
		if keep && fd(p) < geps {
			points = append(points, p)
		}
	}

	if len(points) == 0 {
		return nil, ErrEmptyInitialization
	}
	return points, nil
}
