// Package field implements the target edge-length ("size") field the mesh
// generator samples every iteration. Like sdf.SDF2, a SizeField is treated
// by the core as an opaque collaborator; this package supplies the handful
// of concrete instances needed to exercise and test it end to end.
package field

import (
	"errors"
	"math"

	v2 "github.com/tomas19/oceanmesh/vec/v2"
)

// ErrUnresolvableSizing is returned when a value passed where a size field
// is expected is neither a SizeField nor a Func. A Func passed without an
// explicit min-edge-length yields a separate error.
var ErrUnresolvableSizing = errors.New("field: edge_length must be a SizeField or a Func with min_edge_length")

// SizeField maps points to strictly positive target edge lengths.
type SizeField interface {
	// Eval returns the target edge length at p.
	Eval(p v2.Vec) float64
	// Hmin returns the field's scalar minimum target edge length.
	Hmin() float64
}

// Func adapts a plain callable to SizeField when paired with an explicit
// min-edge-length; mirrors the Python "edge_length is callable" branch of
// _unpack_sizing.
type Func func(p v2.Vec) float64

type funcField struct {
	fn   Func
	hmin float64
}

// WithMin pairs fn with an explicit minimum edge length, since a bare
// callable carries no Hmin() of its own.
func (fn Func) WithMin(hmin float64) SizeField {
	return funcField{fn: fn, hmin: hmin}
}

func (f funcField) Eval(p v2.Vec) float64 { return f.fn(p) }
func (f funcField) Hmin() float64         { return f.hmin }

// Constant is a spatially uniform size field.
type Constant float64

// Eval implements SizeField.
func (c Constant) Eval(v2.Vec) float64 { return float64(c) }

// Hmin implements SizeField.
func (c Constant) Hmin() float64 { return float64(c) }

//-----------------------------------------------------------------------------

// Grid is a size field sampled on a regular lattice, mirroring the Python
// `Grid` class `generate_mesh` special-cases (`edge_length.eval`,
// `edge_length.hmin`) instead of falling back to the bare-callable path.
type Grid struct {
	bbox     sdf2BBox
	nx, ny   int
	dx, dy   float64
	values   []float64 // row-major, nx*ny
	hmin     float64
	hminOnce bool
}

// sdf2BBox avoids importing the sdf package (which would create an import
// cycle if sdf ever needed a default field) while still giving Grid a
// bounding box to index into.
type sdf2BBox struct {
	Min, Max v2.Vec
}

// NewGrid builds a Grid over [min,max] with nx by ny samples (inclusive of
// both ends), evaluating fn once per lattice point.
func NewGrid(min, max v2.Vec, nx, ny int, fn func(v2.Vec) float64) *Grid {
	g := &Grid{
		bbox: sdf2BBox{Min: min, Max: max},
		nx:   nx,
		ny:   ny,
	}
	if nx > 1 {
		g.dx = (max.X - min.X) / float64(nx-1)
	}
	if ny > 1 {
		g.dy = (max.Y - min.Y) / float64(ny-1)
	}
	g.values = make([]float64, nx*ny)
	hmin := math.Inf(1)
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			p := v2.Vec{X: min.X + float64(i)*g.dx, Y: min.Y + float64(j)*g.dy}
			h := fn(p)
			g.values[j*nx+i] = h
			if h < hmin {
				hmin = h
			}
		}
	}
	g.hmin = hmin
	g.hminOnce = true
	return g
}

// Eval implements SizeField with bilinear interpolation, clamped to the
// grid extents.
func (g *Grid) Eval(p v2.Vec) float64 {
	fx := (p.X - g.bbox.Min.X) / g.dx
	fy := (p.Y - g.bbox.Min.Y) / g.dy
	fx = math.Max(0, math.Min(float64(g.nx-1), fx))
	fy = math.Max(0, math.Min(float64(g.ny-1), fy))
	i0, j0 := int(fx), int(fy)
	i1, j1 := i0, j0
	if i0 < g.nx-1 {
		i1 = i0 + 1
	}
	if j0 < g.ny-1 {
		j1 = j0 + 1
	}
	tx, ty := fx-float64(i0), fy-float64(j0)
	v00 := g.values[j0*g.nx+i0]
	v10 := g.values[j0*g.nx+i1]
	v01 := g.values[j1*g.nx+i0]
	v11 := g.values[j1*g.nx+i1]
	v0 := v00*(1-tx) + v10*tx
	v1 := v01*(1-tx) + v11*tx
	return v0*(1-ty) + v1*ty
}

// Hmin implements SizeField.
func (g *Grid) Hmin() float64 { return g.hmin }

// Resolve unpacks edgeLength into an evaluable SizeField and the
// min-edge-length to use, implementing spec.md §6's "edge_length is either
// a gridded field or callable" resolution.
func Resolve(edgeLength any, explicitMin float64, hasExplicitMin bool) (SizeField, float64, error) {
	switch f := edgeLength.(type) {
	case SizeField:
		return f, f.Hmin(), nil
	case Func:
		if !hasExplicitMin {
			return nil, 0, errors.New("field: min_edge_length is required when edge_length is a bare Func")
		}
		return f.WithMin(explicitMin), explicitMin, nil
	default:
		return nil, 0, ErrUnresolvableSizing
	}
}
