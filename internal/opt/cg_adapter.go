package opt

import (
	"github.com/riemopt/riemopt/internal/cg"
	"github.com/riemopt/riemopt/internal/manifold"
)

// CGAdapter runs the Riemannian conjugate gradient core on the Euclidean
// manifold, which reduces it to classical nonlinear CG over flat vectors.
type CGAdapter struct {
	scheme   cg.Scheme
	maxSteps int
}

// NewCG creates a conjugate gradient optimizer adapter. A nil scheme
// selects the Hestenes-Stiefel default.
func NewCG(scheme cg.Scheme, maxSteps int) Optimizer {
	return &CGAdapter{scheme: scheme, maxSteps: maxSteps}
}

// Run executes the optimization. The problem must supply a gradient.
func (c *CGAdapter) Run(p Problem, initial []float64) ([]float64, float64) {
	solver := cg.New(manifold.Euclidean{}, cg.Config{
		Scheme:   c.scheme,
		MaxSteps: c.maxSteps,
	})
	best := solver.Optimize(manifold.Point(initial),
		func(x manifold.Point) float64 { return p.Cost(x) },
		func(x manifold.Point) manifold.Vector { return p.Grad(x) },
	)
	return best, p.Cost(best)
}
