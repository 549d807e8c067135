package mesh

import (
	"fmt"
	"math"

	fieldpkg "github.com/tomas19/oceanmesh/field"
	"github.com/tomas19/oceanmesh/multiscale"
	sdfpkg "github.com/tomas19/oceanmesh/sdf"
	v2 "github.com/tomas19/oceanmesh/vec/v2"
)

// SubDomain is one nested region of a multiscale run: its own domain, its
// own size field, and the per-domain options (besides blend_*) that govern
// its independent C6 pass, per spec.md §4.C7 step 3.
type SubDomain struct {
	Domain     sdfpkg.Domain
	EdgeLength fieldEval
	Options    []Option
}

// fieldEval lets a caller hand SubDomain a raw callable without importing
// package field, mirroring spec.md's "edge_length is callable" shape.
type fieldEval func(v2.Vec) float64

// GenerateMultiscaleMesh runs C7: an independent C6 pass per sub-domain,
// then a single locked-boundary blend pass over their concatenated points
// with a smoothed master size field, per spec.md §4.C7 verbatim.
func GenerateMultiscaleMesh(subs []SubDomain, opts ...Option) (Result, error) {
	if len(subs) < 2 {
		return Result{}, fmt.Errorf("%w: multiscale requires at least 2 sub-domains", ErrInvalidParameter)
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	sdfs := make([]sdfpkg.SDF2, len(subs))
	for k, s := range subs {
		sdfs[k] = s.Domain
	}
	union, nested := multiscale.UnionDomain(sdfs)

	// Step 1: sample each sub-domain's raw size field and build the master
	// and per-domain smoothed fields before any C6 pass runs, so step 3
	// below can mesh every sub-domain against its own smoothed field
	// instead of the raw one, per spec.md §4.C7 steps 1 and 3.
	sampled := make([]multiscale.SampledField, len(subs))
	hmins := make([]float64, len(subs))
	unionBox := nested[0].BoundingBox()
	for k, s := range subs {
		box := nested[k].BoundingBox()
		unionBox = sdfpkg.Box2{Min: unionBox.Min.Min(box.Min), Max: unionBox.Max.Max(box.Max)}
		lattice, values := sampleSizeField(box, s.EdgeLength, 16)
		sampled[k] = multiscale.SampledField{Points: lattice, Values: values}
		hmins[k] = minOf(values)
	}
	master, smoothed := multiscale.SizingFunction(sampled, cfg.blendWidth, cfg.blendNNear, cfg.blendPolynomial)

	var concatenated []v2.Vec
	hmin := math.Inf(1)
	for k, s := range subs {
		domain := nested[k]
		box := domain.BoundingBox()

		result, err := GenerateMesh(sdfpkg.NewDomain(domain, box), fieldpkg.Func(smoothed[k]).WithMin(hmins[k]), s.Options...)
		if err != nil {
			return Result{}, fmt.Errorf("mesh: multiscale sub-domain %d: %w", k, err)
		}
		concatenated = append(concatenated, result.Points...)
		if hmins[k] < hmin {
			hmin = hmins[k]
		}
	}

	// The blend pass's point set, iteration count, min edge length and
	// locked boundary are mandated by spec.md §4.C7 step 4, so they are
	// applied after the caller's opts and cannot be overridden by them.
	blendOpts := append(append([]Option{}, opts...),
		WithPoints(concatenated),
		WithMaxIter(cfg.blendMaxIter),
		WithMinEdgeLength(hmin),
		WithLockBoundary(),
	)

	return GenerateMesh(sdfpkg.NewDomain(union, unionBox), fieldpkg.Func(master).WithMin(hmin), blendOpts...)
}

func minOf(vs []float64) float64 {
	m := math.Inf(1)
	for _, v := range vs {
		if v < m {
			m = v
		}
	}
	return m
}

// sampleSizeField draws an n-by-n lattice over box, evaluating fn at each
// point, to hand multiscale.SizingFunction a representative sample set per
// sub-domain.
func sampleSizeField(box sdfpkg.Box2, fn fieldEval, n int) (points []v2.Vec, values []float64) {
	size := box.Size()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			p := v2.Vec{
				X: box.Min.X + size.X*float64(i)/float64(n-1),
				Y: box.Min.Y + size.Y*float64(j)/float64(n-1),
			}
			points = append(points, p)
			values = append(values, fn(p))
		}
	}
	return points, values
}
