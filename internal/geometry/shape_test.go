package geometry

import (
	"math"
	"testing"
)

// unitSquare is an axis-aligned square of side 2 centered on the origin.
var unitSquare = []float64{1, 1, 1, -1, -1, -1, -1, 1}

func TestNewShapeInvariants(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for a 2-vertex shape")
		}
	}()
	NewShape([]float64{0, 0, 1, 1}, Zero(), 0, 1)
}

func TestTransformedVerticesTranslation(t *testing.T) {
	s := NewShape(unitSquare, Vector{X: 10, Y: 20}, 0, 1)
	verts := s.TransformedVertices()
	want := []Vector{{11, 21}, {11, 19}, {9, 19}, {9, 21}}
	for i, v := range verts {
		if !almostEqual(v.X, want[i].X) || !almostEqual(v.Y, want[i].Y) {
			t.Errorf("vertex %d = %v, want %v", i, v, want[i])
		}
	}
}

func TestTransformedVerticesScaleThenRotate(t *testing.T) {
	// Scale applies before rotation: a vertex at (1,0) scaled by 2 and
	// rotated 90 degrees lands at (0,2), not (2,0) rotated then scaled
	// differently.
	s := NewShape([]float64{1, 0, -1, 1, -1, -1}, Zero(), 90, 2)
	v := s.TransformedVertices()[0]
	if !almostEqual(v.X, 0) || !almostEqual(v.Y, 2) {
		t.Errorf("vertex = %v, want (0,2)", v)
	}
}

func TestEffectiveLength(t *testing.T) {
	s := NewShape(unitSquare, Zero(), 0, 1)
	want := 20 + math.Sqrt2
	if got := s.EffectiveLength(); !almostEqual(got, want) {
		t.Errorf("EffectiveLength = %v, want %v", got, want)
	}

	// Rotation and position must not affect it.
	s.SetPose(Vector{X: 500, Y: 500}, 45, 1)
	if got := s.EffectiveLength(); !almostEqual(got, want) {
		t.Errorf("EffectiveLength after move = %v, want %v", got, want)
	}

	// Scale changes must be picked up.
	s.SetPose(Zero(), 0, 3)
	want = 20 + 3*math.Sqrt2
	if got := s.EffectiveLength(); !almostEqual(got, want) {
		t.Errorf("EffectiveLength after rescale = %v, want %v", got, want)
	}
}

func TestCollidesIdenticalSquares(t *testing.T) {
	a := NewShape(unitSquare, Vector{X: 100, Y: 100}, 0, 1)
	b := NewShape(unitSquare, Vector{X: 100, Y: 100}, 0, 1)
	if !a.Collides(b) {
		t.Error("identical overlapping squares should collide")
	}
}

func TestCollidesSeparatedSquares(t *testing.T) {
	// Two side-2 squares moved apart by more than their combined
	// half-diagonal on both axes cannot overlap.
	a := NewShape(unitSquare, Vector{X: 0, Y: 0}, 0, 1)
	b := NewShape(unitSquare, Vector{X: 3, Y: 3}, 0, 1)
	if a.Collides(b) {
		t.Error("separated squares should not collide")
	}
}

func TestCollidesEdgeTouch(t *testing.T) {
	// Squares sharing an edge project to touching intervals, which the
	// overlap rule (min <= max, inclusive) counts as a collision.
	a := NewShape(unitSquare, Vector{X: 0, Y: 0}, 0, 1)
	b := NewShape(unitSquare, Vector{X: 2, Y: 0}, 0, 1)
	if !a.Collides(b) {
		t.Error("edge-touching squares should collide")
	}
}

func TestCollidesRotatedOverlap(t *testing.T) {
	a := NewShape(unitSquare, Vector{X: 0, Y: 0}, 0, 1)
	b := NewShape(unitSquare, Vector{X: 2.2, Y: 0}, 45, 1)
	// The rotated square's corner reaches sqrt(2) toward a, whose edge
	// reaches 1: 1 + 1.414 > 2.2, so they overlap.
	if !a.Collides(b) {
		t.Error("rotated square corner should reach into neighbor")
	}
}

func TestCollidesBoundingCircleFastPath(t *testing.T) {
	// With disjoint bounding circles, the pre-filter must reject the
	// pair without consulting SAT.
	a := NewShape(unitSquare, Vector{X: 0, Y: 0}, 0, 1)
	b := NewShape(unitSquare, Vector{X: 1000, Y: 0}, 0, 1)
	if a.Pos.Distance(b.Pos) <= a.EffectiveLength()+b.EffectiveLength() {
		t.Fatal("test setup: bounding circles not disjoint")
	}
	if a.Collides(b) {
		t.Error("shapes with disjoint bounding circles should not collide")
	}
}

func TestProjectionOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b Projection
		want bool
	}{
		{"disjoint", Projection{0, 1}, Projection{2, 3}, false},
		{"touching", Projection{0, 1}, Projection{1, 2}, true},
		{"nested", Projection{0, 10}, Projection{2, 3}, true},
		{"partial", Projection{0, 5}, Projection{4, 9}, true},
		{"reversed disjoint", Projection{2, 3}, Projection{0, 1}, false},
	}
	for _, tt := range tests {
		if got := tt.a.Overlaps(tt.b); got != tt.want {
			t.Errorf("%s: Overlaps = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestSeparatingAxesAreUnitNormals(t *testing.T) {
	s := NewShape(unitSquare, Zero(), 0, 1)
	verts := s.TransformedVertices()
	axes := separatingAxes(verts)
	if len(axes) != len(verts) {
		t.Fatalf("got %d axes, want %d", len(axes), len(verts))
	}
	for i, axis := range axes {
		if !almostEqual(axis.Length(), 1) {
			t.Errorf("axis %d not normalized: length %v", i, axis.Length())
		}
		edge := verts[i].Sub(verts[(i+1)%len(verts)])
		if !almostEqual(axis.Dot(edge), 0) {
			t.Errorf("axis %d not perpendicular to its edge", i)
		}
	}
}
