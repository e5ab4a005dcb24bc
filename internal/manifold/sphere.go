package manifold

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Sphere is the unit sphere S^{n-1} embedded in n-space, with the ambient
// dot product restricted to tangent spaces. Points must have unit norm and
// tangent vectors at p must satisfy p.v = 0; callers are responsible for
// supplying Riemannian (projected) gradients.
type Sphere struct{}

func (Sphere) At(Point) InnerProduct { return dotProduct{} }

// NewGeodesic returns an unbound great-circle geodesic.
func (Sphere) NewGeodesic() Geodesic { return &GreatCircle{} }

// GreatCircle is a geodesic on the unit sphere. For speed s = |v| and
// direction u = v/s it evaluates to
//
//	At(t) = cos(s t) p + sin(s t) u
//
// which traverses the great circle through p in direction u at speed s.
type GreatCircle struct {
	p     Point
	v     Vector
	u     Vector // unit direction, nil when v = 0
	speed float64
}

// Set rebinds the curve to start at p with velocity v. A zero velocity
// yields the constant curve at p.
func (g *GreatCircle) Set(p Point, v Vector) {
	g.p = p.Clone()
	g.v = v.Clone()
	g.speed = math.Sqrt(floats.Dot(v, v))
	if g.speed > 0 {
		g.u = v.Scale(1 / g.speed)
	} else {
		g.u = nil
	}
}

func (g *GreatCircle) At(t float64) Point {
	if g.speed == 0 {
		return g.p.Clone()
	}
	th := g.speed * t
	sin, cos := math.Sincos(th)
	out := make(Point, len(g.p))
	for i := range out {
		out[i] = cos*g.p[i] + sin*g.u[i]
	}
	return out
}

// Transport carries a tangent vector at the curve's start to the tangent
// space at parameter t. The component of w along the travel direction
// rotates with the curve while the orthogonal component is unchanged, so
// lengths and angles under the metric are preserved.
func (g *GreatCircle) Transport(w Vector, t float64) Vector {
	if g.speed == 0 {
		return w.Clone()
	}
	th := g.speed * t
	sin, cos := math.Sincos(th)
	a := floats.Dot(w, g.u)
	out := make(Vector, len(w))
	for i := range out {
		out[i] = w[i] + (cos-1)*a*g.u[i] - sin*a*g.p[i]
	}
	return out
}

func (g *GreatCircle) Velocity() Vector { return g.v }
