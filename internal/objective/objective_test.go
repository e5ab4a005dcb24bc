package objective

import (
	"testing"

	"github.com/stretchr/testify/require"

	"gonum.org/v1/gonum/floats"

	"github.com/riemopt/riemopt/internal/manifold"
)

// numGrad central-differences a cost function for gradient checks.
func numGrad(f func(manifold.Point) float64, p manifold.Point) manifold.Vector {
	const h = 1e-6
	g := make(manifold.Vector, len(p))
	for i := range p {
		pp := p.Clone()
		pm := p.Clone()
		pp[i] += h
		pm[i] -= h
		g[i] = (f(pp) - f(pm)) / (2 * h)
	}
	return g
}

func TestSumSquares(t *testing.T) {
	obj := SumSquares{}
	require.Equal(t, 25.0, obj.Cost(manifold.Point{3, 4}))
	require.Equal(t, manifold.Vector{6, 8}, obj.Grad(manifold.Point{3, 4}))
}

func TestRosenbrockMinimum(t *testing.T) {
	obj := Rosenbrock{}
	one := manifold.Point{1, 1, 1}
	require.Equal(t, 0.0, obj.Cost(one))
	require.Equal(t, manifold.Vector{0, 0, 0}, obj.Grad(one))
}

func TestRosenbrockGradMatchesFiniteDifferences(t *testing.T) {
	obj := Rosenbrock{}
	p := manifold.Point{-1.2, 1, 0.5}
	got := obj.Grad(p)
	want := numGrad(obj.Cost, p)
	for i := range p {
		require.InDelta(t, want[i], got[i], 1e-3)
	}
}

func TestQuadratic(t *testing.T) {
	// DiagSPD(3, 10) = diag(1, 5.5, 10)
	obj := Quadratic{A: DiagSPD(3, 10)}
	p := manifold.Point{1, 1, 1}

	require.InDelta(t, 16.5, obj.Cost(p), 1e-12)

	g := obj.Grad(p)
	require.InDelta(t, 2, g[0], 1e-12)
	require.InDelta(t, 11, g[1], 1e-12)
	require.InDelta(t, 20, g[2], 1e-12)
}

func TestRayleighValueAndTangency(t *testing.T) {
	// DiagSPD(3, 5) = diag(1, 3, 5); p = (1,2,2)/3 is a unit vector.
	obj := Rayleigh{A: DiagSPD(3, 5)}
	p := manifold.Point{1.0 / 3, 2.0 / 3, 2.0 / 3}

	// -(1*1 + 3*4 + 5*4)/9
	require.InDelta(t, -33.0/9, obj.Cost(p), 1e-12)

	// The Riemannian gradient lies in the tangent space at p.
	g := obj.Grad(p)
	require.InDelta(t, 0, floats.Dot(g, p), 1e-12)
}

func TestDiagSPD(t *testing.T) {
	a := DiagSPD(4, 7)
	for i, want := range []float64{1, 3, 5, 7} {
		require.Equal(t, want, a.At(i, i))
	}
	require.Equal(t, 0.0, a.At(0, 3))
}
