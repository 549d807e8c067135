// Package sdf defines the 2D signed-distance-function domain model that
// the mesh generator treats as an opaque collaborator: the core only ever
// calls Evaluate and BoundingBox, never inspects how a shape is built.
package sdf

import (
	"errors"

	v2 "github.com/tomas19/oceanmesh/vec/v2"
)

// ErrUnresolvableDomain is returned when a value passed where a domain is
// expected is neither an SDF2 nor a Domain.
var ErrUnresolvableDomain = errors.New("sdf: domain must be an SDF2 or a Domain")

// SDF2 is a signed distance function over the plane. Negative inside the
// domain, zero on the boundary, positive outside.
type SDF2 interface {
	// Evaluate returns the signed distance from p to the domain boundary.
	Evaluate(p v2.Vec) float64
	// BoundingBox returns an axis-aligned box guaranteed to contain the domain.
	BoundingBox() Box2
}

// Box2 is an axis-aligned bounding rectangle.
type Box2 struct {
	Min, Max v2.Vec
}

// NewBox2 returns the box centered on c with the given size.
func NewBox2(c, size v2.Vec) Box2 {
	half := size.DivScalar(2)
	return Box2{Min: c.Sub(half), Max: c.Add(half)}
}

// Size returns the width/height of the box.
func (b Box2) Size() v2.Vec {
	return b.Max.Sub(b.Min)
}

// Center returns the box's center point.
func (b Box2) Center() v2.Vec {
	return v2.Centroid(b.Min, b.Max)
}

// Domain bundles a signed distance function with its bounding box, mirroring
// the Python `Domain` wrapper the core can unpack in a single step instead of
// requiring a separate `bbox` option.
type Domain struct {
	BBox Box2
	Fn   SDF2
}

// Evaluate implements SDF2 by delegating to the wrapped function.
func (d Domain) Evaluate(p v2.Vec) float64 {
	return d.Fn.Evaluate(p)
}

// BoundingBox implements SDF2, returning the domain's declared box rather
// than the wrapped function's own (the two are expected to agree, but the
// explicit box lets a caller widen it, e.g. to pad a multiscale union).
func (d Domain) BoundingBox() Box2 {
	return d.BBox
}

// NewDomain bundles fn with an explicit bounding box.
func NewDomain(fn SDF2, bbox Box2) Domain {
	return Domain{BBox: bbox, Fn: fn}
}

// Resolve unpacks domain into an evaluable SDF2 and its bounding box,
// implementing the "domain is either a bundled Domain or a bare SDF2"
// resolution spec.md §6 describes. An explicit bbox always wins if hasBBox
// is true, matching the Python `_unpack_domain`'s opts["bbox"] override for
// bare callables.
func Resolve(domain any, explicitBBox Box2, hasExplicitBBox bool) (SDF2, Box2, error) {
	switch d := domain.(type) {
	case Domain:
		if hasExplicitBBox {
			return d.Fn, explicitBBox, nil
		}
		return d.Fn, d.BBox, nil
	case SDF2:
		if !hasExplicitBBox {
			return nil, Box2{}, errors.New("sdf: bbox is required when domain is a bare SDF2")
		}
		return d, explicitBBox, nil
	default:
		return nil, Box2{}, ErrUnresolvableDomain
	}
}
