package manifold

import "gonum.org/v1/gonum/floats"

// Euclidean is flat n-space with the dot-product metric. Geodesics are
// straight lines and parallel transport is the identity.
type Euclidean struct{}

// At returns the dot-product inner product, which is the same at every point.
func (Euclidean) At(Point) InnerProduct { return dotProduct{} }

// NewGeodesic returns an unbound straight line.
func (Euclidean) NewGeodesic() Geodesic { return &Line{} }

type dotProduct struct{}

func (dotProduct) Inner(u, v Vector) float64 { return floats.Dot(u, v) }
func (dotProduct) Norm2(v Vector) float64    { return floats.Dot(v, v) }

// Line is a straight-line geodesic: At(t) = p + t*v.
type Line struct {
	p Point
	v Vector
}

// Set rebinds the line to start at p with velocity v.
func (l *Line) Set(p Point, v Vector) {
	l.p = p.Clone()
	l.v = v.Clone()
}

// At returns the point reached after parameter t.
func (l *Line) At(t float64) Point {
	out := make(Point, len(l.p))
	floats.AddScaledTo(out, l.p, t, l.v)
	return out
}

// Transport is the identity: flat space has trivial parallel transport.
func (l *Line) Transport(v Vector, _ float64) Vector { return v.Clone() }

// Velocity returns the initial tangent from the last Set.
func (l *Line) Velocity() Vector { return l.v }

// WeightedEuclidean is flat n-space with a constant diagonal metric
// Inner(u, v) = sum_i w_i u_i v_i. The weights must be positive. Because
// the metric does not vary from point to point, geodesics are still
// straight lines and identity transport is an isometry.
type WeightedEuclidean struct {
	Weights []float64
}

func (m WeightedEuclidean) At(Point) InnerProduct { return diagProduct{w: m.Weights} }

func (WeightedEuclidean) NewGeodesic() Geodesic { return &Line{} }

type diagProduct struct {
	w []float64
}

func (d diagProduct) Inner(u, v Vector) float64 {
	var sum float64
	for i, wi := range d.w {
		sum += wi * u[i] * v[i]
	}
	return sum
}

func (d diagProduct) Norm2(v Vector) float64 { return d.Inner(v, v) }
