// Package multiscale implements C7's two external helper collaborators:
// multiscale_sizing_function (SizingFunction) and
// multiscale_signed_distance_function (UnionDomain). Both are kept out of
// package mesh so the relaxation loop never depends on how a master field
// or a union domain is actually assembled, matching spec.md §1's
// opaque-collaborator boundary.
package multiscale

import (
	"math"

	"github.com/dhconnelly/rtreego"

	sdfpkg "github.com/tomas19/oceanmesh/sdf"
	v2 "github.com/tomas19/oceanmesh/vec/v2"
)

// pointEps is the degenerate-rectangle half-extent rtreego needs for a
// zero-volume point entry; an exactly zero-size rect is rejected by
// rtreego.NewRect.
const pointEps = 1e-9

type sample struct {
	pos v2.Vec
	h   float64
}

func (s sample) Bounds() rtreego.Rect {
	rect, err := rtreego.NewRect(rtreego.Point{s.pos.X, s.pos.Y}, []float64{pointEps, pointEps})
	if err != nil {
		panic(err)
	}
	return rect
}

// idwField answers spatial queries by inverse-distance-weighted
// interpolation over the K nearest samples within radius width, falling
// off as 1/dist^p, per spec.md §4.C7 step 1.
type idwField struct {
	tree    *rtreego.Rtree
	width   float64
	nnear   int
	power   int
	hmin    float64
	samples []sample
}

func newIdwField(samples []sample, width float64, nnear, power int) *idwField {
	tree := rtreego.NewTree(2, 1, 8)
	hmin := math.Inf(1)
	for _, s := range samples {
		tree.Insert(s)
		if s.h < hmin {
			hmin = s.h
		}
	}
	return &idwField{tree: tree, width: width, nnear: nnear, power: power, hmin: hmin, samples: samples}
}

func (f *idwField) Eval(p v2.Vec) float64 {
	neighbors := f.tree.NearestNeighbors(f.nnear, rtreego.Point{p.X, p.Y})
	var wsum, hsum float64
	for _, n := range neighbors {
		s := n.(sample)
		d := p.Dist(s.pos)
		if d > f.width {
			continue
		}
		if d < pointEps {
			return s.h
		}
		w := 1 / math.Pow(d, float64(f.power))
		wsum += w
		hsum += w * s.h
	}
	if wsum == 0 {
		// No sample within band: fall back to the nearest one regardless
		// of width, so the field stays defined everywhere.
		if len(neighbors) == 0 {
			return f.hmin
		}
		return neighbors[0].(sample).h
	}
	return hsum / wsum
}

func (f *idwField) Hmin() float64 { return f.hmin }

// SizingFunction builds the master size field (an IDW blend of every
// sub-domain's samples) and one smoothed field per sub-domain (an IDW
// blend restricted to that sub-domain's own samples plus any other
// sub-domain's samples falling within width of its own extent),
// mirroring spec.md §4.C7 step 1's "master + per-domain smoothed" output
// and original_source's multiscale_sizing_function, which builds each
// per-domain field from that domain's neighborhood rather than the pooled
// set.
// fields supplies, for each sub-domain k, a representative set of sample
// points (typically that sub-domain's own bounding-box lattice or its own
// mesh points) paired with the field's value there.
func SizingFunction(fields []SampledField, width float64, nnear, power int) (master func(v2.Vec) float64, smoothed []func(v2.Vec) float64) {
	perField := make([][]sample, len(fields))
	var all []sample
	for k, sf := range fields {
		for i, p := range sf.Points {
			s := sample{pos: p, h: sf.Values[i]}
			all = append(all, s)
			perField[k] = append(perField[k], s)
		}
	}
	masterField := newIdwField(all, width, nnear, power)
	master = masterField.Eval

	smoothed = make([]func(v2.Vec) float64, len(fields))
	for k := range fields {
		own := perField[k]
		bounds := expandedBounds(own, width)

		neighborhood := append([]sample(nil), own...)
		for j, other := range perField {
			if j == k {
				continue
			}
			for _, s := range other {
				if bounds.contains(s.pos) {
					neighborhood = append(neighborhood, s)
				}
			}
		}
		f := newIdwField(neighborhood, width, nnear, power)
		smoothed[k] = f.Eval
	}
	return master, smoothed
}

// rect2 is the axis-aligned extent a sub-domain's own samples span,
// grown by width so a neighboring sub-domain's samples within blending
// range are pulled into its own smoothed field.
type rect2 struct {
	min, max v2.Vec
}

func expandedBounds(samples []sample, width float64) rect2 {
	r := rect2{min: v2.Vec{X: math.Inf(1), Y: math.Inf(1)}, max: v2.Vec{X: math.Inf(-1), Y: math.Inf(-1)}}
	for _, s := range samples {
		r.min = r.min.Min(s.pos)
		r.max = r.max.Max(s.pos)
	}
	pad := v2.Vec{X: width, Y: width}
	r.min = r.min.Sub(pad)
	r.max = r.max.Add(pad)
	return r
}

func (r rect2) contains(p v2.Vec) bool {
	return p.X >= r.min.X && p.X <= r.max.X && p.Y >= r.min.Y && p.Y <= r.max.Y
}

// SampledField pairs a sub-domain's sample points with its target edge
// length at each of them, the input SizingFunction needs per sub-domain.
type SampledField struct {
	Points []v2.Vec
	Values []float64
}

// UnionDomain builds the union SDF over domains and returns it alongside
// the domains unchanged as the "nested" list, matching
// multiscale_signed_distance_function's behavior per spec.md §4.C7 step 2.
func UnionDomain(domains []sdfpkg.SDF2) (union sdfpkg.SDF2, nested []sdfpkg.SDF2) {
	nested = append([]sdfpkg.SDF2(nil), domains...)
	return sdfpkg.Union2D(domains...), nested
}
