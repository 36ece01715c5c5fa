package geometry

import "math"

// effectivePadding is added to the longest scaled vertex distance when
// computing a shape's effective length. It widens the coarse bounds so
// screen-wrap transitions are not abrupt.
const effectivePadding = 20.0

// Shape is a closed polygon in 2D space, defined by local-space vertices
// plus a pose (position, rotation in degrees, uniform scale).
//
// Collision testing is exact for convex polygons: a bounding-circle
// rejection followed by the separating axis theorem. Concave shapes can
// report false positives.
type Shape struct {
	verts []Vector

	Pos   Vector
	Rot   float64
	Scale float64

	effectiveLength float64
	lengthScale     float64 // scale at which effectiveLength was computed
}

// NewShape creates a shape from a flat list of local-space coordinates
// (pairs of x, y). At least three vertices are required; fewer is a
// programming error and panics.
func NewShape(coords []float64, pos Vector, rot, scale float64) *Shape {
	if len(coords)%2 != 0 {
		panic("geometry: odd coordinate count")
	}
	if len(coords) < 6 {
		panic("geometry: shape needs at least 3 vertices")
	}

	verts := make([]Vector, 0, len(coords)/2)
	for i := 0; i < len(coords); i += 2 {
		verts = append(verts, Vector{X: coords[i], Y: coords[i+1]})
	}

	s := &Shape{
		verts: verts,
		Pos:   pos,
		Rot:   rot,
		Scale: scale,
	}
	s.effectiveLength = s.computeEffectiveLength()
	s.lengthScale = scale
	return s
}

// SetPose updates the shape's position, rotation and scale.
func (s *Shape) SetPose(pos Vector, rot, scale float64) {
	s.Pos = pos
	s.Rot = rot
	s.Scale = scale
}

// VertexCount returns the number of vertices defining the shape.
func (s *Shape) VertexCount() int {
	return len(s.verts)
}

// TransformedVertices returns the world-space vertices of the shape:
// each local vertex scaled, then rotated, then translated.
func (s *Shape) TransformedVertices() []Vector {
	sin, cos := math.Sincos(s.Rot * math.Pi / 180)

	out := make([]Vector, len(s.verts))
	for i, v := range s.verts {
		x := v.X * s.Scale
		y := v.Y * s.Scale
		out[i] = Vector{
			X: x*cos - y*sin + s.Pos.X,
			Y: x*sin + y*cos + s.Pos.Y,
		}
	}
	return out
}

// EffectiveLength returns a heuristic radius for the shape: the longest
// scaled vertex distance from the origin plus a fixed padding. Rotation
// and translation are ignored. The value is cached and recomputed only
// when the scale changes.
func (s *Shape) EffectiveLength() float64 {
	if s.Scale != s.lengthScale {
		s.effectiveLength = s.computeEffectiveLength()
		s.lengthScale = s.Scale
	}
	return s.effectiveLength
}

func (s *Shape) computeEffectiveLength() float64 {
	var longest float64
	for _, v := range s.verts {
		if l := v.Scale(s.Scale).Length(); l > longest {
			longest = l
		}
	}
	return effectivePadding + longest
}

// Collides reports whether this shape overlaps another.
//
// The test runs in two phases: a cheap bounding-circle rejection using
// the shapes' effective lengths, then the separating axis theorem over
// the edge normals of both polygons.
func (s *Shape) Collides(other *Shape) bool {
	if s.Pos.Distance(other.Pos) > s.EffectiveLength()+other.EffectiveLength() {
		return false
	}

	verts1 := s.TransformedVertices()
	verts2 := other.TransformedVertices()

	for _, axis := range separatingAxes(verts1) {
		if !project(verts1, axis).Overlaps(project(verts2, axis)) {
			return false
		}
	}
	for _, axis := range separatingAxes(verts2) {
		if !project(verts1, axis).Overlaps(project(verts2, axis)) {
			return false
		}
	}

	// No separating axis found on either polygon.
	return true
}

// Projection is a 1D interval resulting from projecting a vertex set
// onto an axis.
type Projection struct {
	Min, Max float64
}

// Overlaps reports whether two projection intervals intersect.
func (p Projection) Overlaps(other Projection) bool {
	return p.Min <= other.Max && other.Min <= p.Max
}

// project projects a vertex set onto an axis, producing the interval
// [min, max] of the dot products.
func project(verts []Vector, axis Vector) Projection {
	min := axis.Dot(verts[0])
	max := min
	for _, v := range verts[1:] {
		p := axis.Dot(v)
		if p < min {
			min = p
		} else if p > max {
			max = p
		}
	}
	return Projection{Min: min, Max: max}
}

// separatingAxes returns one candidate separating axis per polygon edge:
// the normalized perpendicular of each edge vector.
func separatingAxes(verts []Vector) []Vector {
	axes := make([]Vector, len(verts))
	for i, v := range verts {
		next := verts[(i+1)%len(verts)]
		axes[i] = v.Sub(next).Perpendicular().Normalize()
	}
	return axes
}
