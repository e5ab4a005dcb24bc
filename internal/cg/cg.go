// Package cg implements nonlinear conjugate gradient optimization on
// Riemannian manifolds. The driver steps along geodesics in directions that
// blend the negative gradient with the parallel-transported previous
// direction, scaled by a pluggable scheme coefficient, and picks step sizes
// with a derivative-aware line search.
package cg

import (
	"log/slog"

	"github.com/riemopt/riemopt/internal/manifold"
)

// Cost maps a manifold point to a scalar cost. It must be side-effect-free
// and evaluable at arbitrary points: the line search probes many trial
// points per step.
type Cost func(p manifold.Point) float64

// Gradient maps a point to the Riemannian gradient of the cost at that
// point, as a tangent vector there.
type Gradient func(p manifold.Point) manifold.Vector

// Config configures a ConjugateGradient. Zero fields take defaults:
// HestenesStiefel, a fresh WolfeSearch, and 1000 steps.
type Config struct {
	Scheme     Scheme
	LineSearch LineSearch
	MaxSteps   int
}

// ConjugateGradient drives one optimization run. It exclusively owns its
// geodesic, line search, and run-state vectors; a single instance must not
// be shared across concurrent runs.
type ConjugateGradient struct {
	metric manifold.Metric
	geo    manifold.Geodesic
	ls     LineSearch
	scheme Scheme

	maxSteps int
	n        int

	x, lastX manifold.Point
	grad, lastGrad,
	velocity, ptLastVel manifold.Vector
}

// New creates an optimizer on the given manifold.
func New(m manifold.Manifold, cfg Config) *ConjugateGradient {
	if cfg.Scheme == nil {
		cfg.Scheme = HestenesStiefel{}
	}
	if cfg.LineSearch == nil {
		cfg.LineSearch = NewWolfeSearch()
	}
	if cfg.MaxSteps == 0 {
		cfg.MaxSteps = 1000
	}
	return &ConjugateGradient{
		metric:   m,
		geo:      m.NewGeodesic(),
		ls:       cfg.LineSearch,
		scheme:   cfg.Scheme,
		maxSteps: cfg.MaxSteps,
	}
}

// Step performs one iteration: evaluate the gradient, form the conjugate
// direction, line-search along the geodesic it defines, and advance the
// current point. It returns false when the line search finds no improving
// step, which leaves the current point unchanged and ends the run.
func (o *ConjugateGradient) Step(cost Cost, gradient Gradient) bool {
	o.lastGrad = o.grad
	o.grad = gradient(o.x)

	// The conjugate velocity is the negative gradient modified by the
	// transported previous velocity. On the first iteration there is no
	// previous direction and the step is plain steepest descent.
	o.velocity = o.grad.Neg()
	if o.n > 0 {
		alpha := o.ls.Alpha()
		o.ptLastVel = o.geo.Transport(o.geo.Velocity(), alpha)
		ptLastGrad := o.geo.Transport(o.lastGrad, alpha)
		beta := o.scheme.Beta(o.grad, o.lastGrad, ptLastGrad, o.ptLastVel,
			o.metric.At(o.x), o.metric.At(o.lastX))
		o.velocity = o.velocity.AddScaled(beta, o.ptLastVel)
	}

	o.geo.Set(o.x, o.velocity)

	alpha := o.ls.Search(
		func(t float64) float64 {
			return cost(o.geo.At(t))
		},
		func(t float64) float64 {
			xt := o.geo.At(t)
			return o.metric.At(xt).Inner(gradient(xt), o.geo.Transport(o.geo.Velocity(), t))
		},
	)
	if alpha <= 0 {
		return false
	}

	o.lastX = o.x
	o.x = o.geo.At(alpha)
	return true
}

// Optimize runs Step from the initial point until the line search reports
// no improving step or MaxSteps iterations have elapsed, and returns the
// final point. There is no cost or gradient convergence test of its own;
// the step cap is a hard bound. All run state is reset, so repeated calls
// with the same inputs produce identical trajectories.
func (o *ConjugateGradient) Optimize(initial manifold.Point, cost Cost, gradient Gradient) manifold.Point {
	o.x = initial.Clone()
	o.lastX = nil
	o.grad, o.lastGrad = nil, nil
	o.velocity, o.ptLastVel = nil, nil
	o.ls.Reset()
	for o.n = 0; o.n < o.maxSteps; o.n++ {
		if !o.Step(cost, gradient) {
			break
		}
		slog.Debug("cg step", "iter", o.n, "alpha", o.ls.Alpha())
	}
	return o.x
}

// X returns the current point of the run.
func (o *ConjugateGradient) X() manifold.Point { return o.x }

// Steps returns the number of successful steps of the last run.
func (o *ConjugateGradient) Steps() int { return o.n }
