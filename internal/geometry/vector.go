// Package geometry provides 2D vector math and the polygon collision engine.
package geometry

import "math"

// Vector represents a point or direction in 2D space.
// All operations return new values; a Vector is never mutated in place.
type Vector struct {
	X, Y float64
}

// Zero returns the zero vector (0, 0).
func Zero() Vector {
	return Vector{}
}

// FromAngle returns the unit vector pointing at the given angle in degrees.
func FromAngle(degrees float64) Vector {
	rad := degrees * math.Pi / 180
	return Vector{X: math.Cos(rad), Y: math.Sin(rad)}
}

// Add returns the component-wise sum v + other.
func (v Vector) Add(other Vector) Vector {
	return Vector{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns the component-wise difference v - other.
func (v Vector) Sub(other Vector) Vector {
	return Vector{X: v.X - other.X, Y: v.Y - other.Y}
}

// Scale returns the vector multiplied by scalar k.
func (v Vector) Scale(k float64) Vector {
	return Vector{X: v.X * k, Y: v.Y * k}
}

// Dot returns the dot product of the two vectors.
func (v Vector) Dot(other Vector) float64 {
	return v.X*other.X + v.Y*other.Y
}

// Length returns the magnitude of the vector.
func (v Vector) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// LengthSquared returns the squared magnitude, avoiding the sqrt cost
// when only comparing distances.
func (v Vector) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Normalize returns the unit vector pointing in the same direction.
// The zero vector normalizes to itself.
func (v Vector) Normalize() Vector {
	length := v.Length()
	if length == 0 {
		return v
	}
	return Vector{X: v.X / length, Y: v.Y / length}
}

// Distance returns the Euclidean distance between two points.
func (v Vector) Distance(other Vector) float64 {
	return other.Sub(v).Length()
}

// Perpendicular returns the vector rotated 90 degrees clockwise.
// Used to derive separating-axis candidates from polygon edges.
func (v Vector) Perpendicular() Vector {
	return Vector{X: v.Y, Y: -v.X}
}

// Clamp restricts a value to the interval [low, high].
func Clamp(x, low, high float64) float64 {
	if x < low {
		return low
	}
	if x > high {
		return high
	}
	return x
}
