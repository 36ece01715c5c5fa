package geometry

// Bounds describes the playfield dimensions in logical units.
type Bounds struct {
	Width, Height float64
}

// Contains reports whether a point lies within the bounds.
func (b Bounds) Contains(p Vector) bool {
	return p.X >= 0 && p.X <= b.Width && p.Y >= 0 && p.Y <= b.Height
}

// Center returns the middle of the playfield.
func (b Bounds) Center() Vector {
	return Vector{X: b.Width / 2, Y: b.Height / 2}
}
