// Package geometry provides the vector algebra used by the truss model.
package geometry

import (
	"fmt"
	"math"
)

// Vec3 is a point or direction in 3D space. Planar trusses only ever set
// X and Y; Z stays zero. Vec3 is a value type: every operation returns a
// new value and equality is the exact comparison of all three components.
type Vec3 struct {
	X, Y, Z float64
}

// New creates a vector from its components.
func New(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Add returns the component-wise sum v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns the component-wise difference v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Scale returns v scaled by k.
func (v Vec3) Scale(k float64) Vec3 {
	return Vec3{v.X * k, v.Y * k, v.Z * k}
}

// Mul returns the component-wise (Hadamard) product of v and o.
func (v Vec3) Mul(o Vec3) Vec3 {
	return Vec3{v.X * o.X, v.Y * o.Y, v.Z * o.Z}
}

// Div returns v divided by k.
func (v Vec3) Div(k float64) Vec3 {
	return Vec3{v.X / k, v.Y / k, v.Z / k}
}

// Dot returns the dot product of v and o.
func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Mag returns the Euclidean magnitude of v.
func (v Vec3) Mag() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalized returns the unit vector in the direction of v. A vector with
// non-positive magnitude is returned unchanged.
func (v Vec3) Normalized() Vec3 {
	l := v.Mag()
	if l <= 0 {
		return v
	}
	return v.Div(l)
}

// AngleRad returns the orientation of v in the x-y plane, measured from the
// positive x axis in the range [0, 2π). A vector with non-positive
// magnitude has angle 0.
func (v Vec3) AngleRad() float64 {
	l := v.Mag()
	if l <= 0 {
		return 0
	}
	if v.Y >= 0 {
		return math.Acos(v.X / l)
	}
	return 2*math.Pi - math.Acos(v.X/l)
}

// AngleDeg returns AngleRad converted to degrees.
func (v Vec3) AngleDeg() float64 {
	return 180.0 / math.Pi * v.AngleRad()
}

// String formats the components to three decimal places.
func (v Vec3) String() string {
	return fmt.Sprintf("%.3f, %.3f, %.3f", v.X, v.Y, v.Z)
}
