package motion

import "math"

// Vector is a 2D value in the caller's coordinate space.
type Vector struct {
	X float64
	Y float64
}

// Add returns v + o.
func (v Vector) Add(o Vector) Vector {
	return Vector{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vector) Sub(o Vector) Vector {
	return Vector{v.X - o.X, v.Y - o.Y}
}

// Scale returns v scaled by f.
func (v Vector) Scale(f float64) Vector {
	return Vector{v.X * f, v.Y * f}
}

// Length returns the Euclidean magnitude of v.
func (v Vector) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Distance returns the Euclidean distance between v and o.
func (v Vector) Distance(o Vector) float64 {
	return v.Sub(o).Length()
}
