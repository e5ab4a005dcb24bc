// Package objective provides benchmark cost functions with analytic
// gradients for exercising the optimizers.
package objective

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/riemopt/riemopt/internal/manifold"
)

// Objective is a smooth scalar cost with its gradient. Grad returns the
// Riemannian gradient for the manifold the objective is meant to live on:
// the plain Euclidean gradient for flat objectives, the tangent-projected
// one for sphere-constrained objectives.
type Objective interface {
	Name() string
	Cost(p manifold.Point) float64
	Grad(p manifold.Point) manifold.Vector
}

// SumSquares is f(x) = sum_i x_i^2, minimized at the origin.
type SumSquares struct{}

func (SumSquares) Name() string { return "sum-squares" }

func (SumSquares) Cost(p manifold.Point) float64 {
	return floats.Dot(p, p)
}

func (SumSquares) Grad(p manifold.Point) manifold.Vector {
	return manifold.Vector(p).Scale(2)
}

// Rosenbrock is the classic banana valley
//
//	f(x) = sum_{i<n-1} 100 (x_{i+1} - x_i^2)^2 + (1 - x_i)^2
//
// minimized at (1, ..., 1).
type Rosenbrock struct{}

func (Rosenbrock) Name() string { return "rosenbrock" }

func (Rosenbrock) Cost(p manifold.Point) float64 {
	var sum float64
	for i := 0; i+1 < len(p); i++ {
		d := p[i+1] - p[i]*p[i]
		e := 1 - p[i]
		sum += 100*d*d + e*e
	}
	return sum
}

func (Rosenbrock) Grad(p manifold.Point) manifold.Vector {
	g := make(manifold.Vector, len(p))
	for i := 0; i+1 < len(p); i++ {
		d := p[i+1] - p[i]*p[i]
		g[i] += -400*p[i]*d - 2*(1-p[i])
		g[i+1] += 200 * d
	}
	return g
}

// Quadratic is f(x) = x^T A x for a symmetric positive-definite A, with
// gradient 2 A x and unique minimum at the origin.
type Quadratic struct {
	A *mat.SymDense
}

func (Quadratic) Name() string { return "quadratic" }

func (q Quadratic) Cost(p manifold.Point) float64 {
	x := mat.NewVecDense(len(p), p)
	var ax mat.VecDense
	ax.MulVec(q.A, x)
	return mat.Dot(x, &ax)
}

func (q Quadratic) Grad(p manifold.Point) manifold.Vector {
	x := mat.NewVecDense(len(p), p)
	var ax mat.VecDense
	ax.MulVec(q.A, x)
	return manifold.Vector(ax.RawVector().Data).Scale(2)
}

// Rayleigh is the dominant-eigenvector problem on the unit sphere:
// minimizing f(x) = -x^T A x over |x| = 1 drives x to the eigenvector of
// the largest eigenvalue of A. Grad returns the Riemannian gradient, the
// ambient gradient projected onto the tangent space at x.
type Rayleigh struct {
	A *mat.SymDense
}

func (Rayleigh) Name() string { return "rayleigh" }

func (r Rayleigh) Cost(p manifold.Point) float64 {
	x := mat.NewVecDense(len(p), p)
	var ax mat.VecDense
	ax.MulVec(r.A, x)
	return -mat.Dot(x, &ax)
}

func (r Rayleigh) Grad(p manifold.Point) manifold.Vector {
	x := mat.NewVecDense(len(p), p)
	var ax mat.VecDense
	ax.MulVec(r.A, x)
	ambient := manifold.Vector(ax.RawVector().Data).Scale(-2)
	// Project out the normal component to stay tangent to the sphere.
	return ambient.AddScaled(-floats.Dot(ambient, p), manifold.Vector(p))
}

// DiagSPD builds the diagonal SPD matrix with entries spread linearly from
// 1 to cond, giving a quadratic or Rayleigh problem of known conditioning.
func DiagSPD(dim int, cond float64) *mat.SymDense {
	a := mat.NewSymDense(dim, nil)
	for i := 0; i < dim; i++ {
		v := 1.0
		if dim > 1 {
			v = 1 + (cond-1)*float64(i)/float64(dim-1)
		}
		a.SetSym(i, i, v)
	}
	return a
}
