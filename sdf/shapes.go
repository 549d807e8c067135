package sdf

import (
	"math"

	v2 "github.com/tomas19/oceanmesh/vec/v2"
)

//-----------------------------------------------------------------------------

type circleSDF struct {
	center v2.Vec
	radius float64
}

// Circle2D returns a disc of the given radius centered at the origin.
func Circle2D(radius float64) SDF2 {
	return CircleAt2D(v2.Vec{}, radius)
}

// CircleAt2D returns a disc of the given radius centered at c.
func CircleAt2D(c v2.Vec, radius float64) SDF2 {
	return circleSDF{center: c, radius: radius}
}

func (s circleSDF) Evaluate(p v2.Vec) float64 {
	return p.Dist(s.center) - s.radius
}

func (s circleSDF) BoundingBox() Box2 {
	return NewBox2(s.center, v2.Vec{X: 2 * s.radius, Y: 2 * s.radius})
}

//-----------------------------------------------------------------------------

type boxSDF struct {
	center v2.Vec
	b      v2.Vec // half-extents
}

// Box2D returns an axis-aligned square/rectangle of the given full size
// centered at the origin: Euclidean distance to the box outside it, minus
// the distance to the nearest side inside it.
func Box2D(size v2.Vec) SDF2 {
	return boxSDF{b: size.DivScalar(2)}
}

func (s boxSDF) Evaluate(p v2.Vec) float64 {
	d := p.Sub(s.center)
	qx := math.Abs(d.X) - s.b.X
	qy := math.Abs(d.Y) - s.b.Y
	outsideX, outsideY := math.Max(qx, 0), math.Max(qy, 0)
	outside := math.Hypot(outsideX, outsideY)
	inside := math.Min(math.Max(qx, qy), 0)
	return outside + inside
}

func (s boxSDF) BoundingBox() Box2 {
	return NewBox2(s.center, s.b.MulScalar(2))
}

//-----------------------------------------------------------------------------

type unionSDF struct {
	parts []SDF2
}

// Union2D returns the SDF of the union of parts: min of the per-part
// distances. This is exact outside the union; inside a region where parts
// overlap it can understate the depth, giving a bound rather than an exact
// distance.
func Union2D(parts ...SDF2) SDF2 {
	return unionSDF{parts: parts}
}

func (s unionSDF) Evaluate(p v2.Vec) float64 {
	d := math.Inf(1)
	for _, part := range s.parts {
		d = math.Min(d, part.Evaluate(p))
	}
	return d
}

func (s unionSDF) BoundingBox() Box2 {
	bb := s.parts[0].BoundingBox()
	for _, part := range s.parts[1:] {
		pb := part.BoundingBox()
		bb = Box2{Min: bb.Min.Min(pb.Min), Max: bb.Max.Max(pb.Max)}
	}
	return bb
}

//-----------------------------------------------------------------------------

type differenceSDF struct {
	a, b SDF2
}

// Difference2D returns the SDF of a with b subtracted out.
func Difference2D(a, b SDF2) SDF2 {
	return differenceSDF{a: a, b: b}
}

func (s differenceSDF) Evaluate(p v2.Vec) float64 {
	return math.Max(s.a.Evaluate(p), -s.b.Evaluate(p))
}

func (s differenceSDF) BoundingBox() Box2 {
	return s.a.BoundingBox()
}

//-----------------------------------------------------------------------------

// Annulus2D returns a ring between innerRadius and outerRadius centered at
// the origin, built as the difference of two discs — this is how
// scenario 3's "annulus" domain (`fd(p)=max(0.3-|p|, |p|-1)`) is expressed
// here.
func Annulus2D(innerRadius, outerRadius float64) SDF2 {
	return Difference2D(Circle2D(outerRadius), Circle2D(innerRadius))
}

//-----------------------------------------------------------------------------

type translateSDF struct {
	s SDF2
	t v2.Vec
}

// Translate2D shifts s by t.
func Translate2D(s SDF2, t v2.Vec) SDF2 {
	return translateSDF{s: s, t: t}
}

func (s translateSDF) Evaluate(p v2.Vec) float64 {
	return s.s.Evaluate(p.Sub(s.t))
}

func (s translateSDF) BoundingBox() Box2 {
	bb := s.s.BoundingBox()
	return Box2{Min: bb.Min.Add(s.t), Max: bb.Max.Add(s.t)}
}
