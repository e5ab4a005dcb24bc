// Package manifold defines the geometric capabilities the optimizer needs:
// a point-dependent inner product (the metric tensor), geodesic curves, and
// parallel transport of tangent vectors along them.
package manifold

import "gonum.org/v1/gonum/floats"

// Point is an element of a manifold.
type Point []float64

// Vector is a tangent vector at some point of a manifold. Tangent vectors
// at different points are only comparable after parallel transport.
type Vector []float64

// Clone returns an independent copy of v.
func (v Vector) Clone() Vector {
	out := make(Vector, len(v))
	copy(out, v)
	return out
}

// Scale returns a*v as a new vector.
func (v Vector) Scale(a float64) Vector {
	out := make(Vector, len(v))
	floats.ScaleTo(out, a, v)
	return out
}

// Neg returns -v as a new vector.
func (v Vector) Neg() Vector {
	return v.Scale(-1)
}

// Add returns v+w as a new vector.
func (v Vector) Add(w Vector) Vector {
	out := make(Vector, len(v))
	floats.AddTo(out, v, w)
	return out
}

// AddScaled returns v + a*w as a new vector.
func (v Vector) AddScaled(a float64, w Vector) Vector {
	out := make(Vector, len(v))
	floats.AddScaledTo(out, v, a, w)
	return out
}

// Clone returns an independent copy of p.
func (p Point) Clone() Point {
	out := make(Point, len(p))
	copy(out, p)
	return out
}

// InnerProduct is the metric tensor evaluated at a fixed point. It must be
// symmetric and bilinear, and Norm2(v) must equal Inner(v, v). Both tangent
// vectors must belong to the tangent space of the bound point.
type InnerProduct interface {
	Inner(u, v Vector) float64
	Norm2(v Vector) float64
}

// Metric produces the inner product valid at a given point.
type Metric interface {
	At(p Point) InnerProduct
}

// Geodesic is a curve bound to a (point, initial velocity) pair via Set.
// At(0) is the point the curve was set with, Transport(v, 0) is the
// identity, and Transport preserves lengths under the metric along the
// curve. Velocity reports the initial tangent from the last Set.
type Geodesic interface {
	Set(p Point, v Vector)
	At(t float64) Point
	Transport(v Vector, t float64) Vector
	Velocity() Vector
}

// Manifold bundles a metric with a factory for geodesics on the same space.
type Manifold interface {
	Metric
	NewGeodesic() Geodesic
}
