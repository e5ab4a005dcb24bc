package cg

import "math"

// LineSearch is a 1-D derivative-aware search along the current geodesic.
// Search receives the cost restricted to the curve and its derivative and
// returns a step size, or a value <= 0 when no improving step exists; that
// sentinel is the optimizer's sole termination signal. Reset clears state
// carried between searches and must be called once per optimization run.
// Alpha reports the step returned by the most recent Search.
type LineSearch interface {
	Reset()
	Search(value, derivative func(float64) float64) float64
	Alpha() float64
}

// WolfeSearch finds a step satisfying the strong Wolfe conditions by
// bracket expansion followed by a secant/bisection zoom on the derivative.
// For cost functions that are quadratic along the curve the derivative is
// linear in t and the first secant iterate is the exact minimizer.
//
// The previous accepted step seeds the next search's first trial, so a run
// over similarly scaled steps warms up quickly. Reset clears that memory.
type WolfeSearch struct {
	// Decrease is the sufficient-decrease (Armijo) constant c1 in (0, 1).
	// Defaults to 1e-4.
	Decrease float64
	// Curvature is the strong Wolfe constant c2 in (c1, 1). Smaller values
	// give a more exact search. Defaults to 0.1.
	Curvature float64
	// InitialStep is the first trial step of a fresh run. Defaults to 1.
	InitialStep float64
	// MaxBracket bounds the expansion phase, MaxZoom the zoom phase.
	// Default to 20 and 32.
	MaxBracket int
	MaxZoom    int

	alpha float64
}

// NewWolfeSearch returns a search with default constants.
func NewWolfeSearch() *WolfeSearch { return &WolfeSearch{} }

func (w *WolfeSearch) Reset() { w.alpha = 0 }

func (w *WolfeSearch) Alpha() float64 { return w.alpha }

// Search returns a step size satisfying the strong Wolfe conditions for
// value, or 0 when the directional derivative at 0 is non-negative or no
// tested step strictly decreases the cost.
func (w *WolfeSearch) Search(value, derivative func(float64) float64) float64 {
	c1 := w.Decrease
	if c1 == 0 {
		c1 = 1e-4
	}
	c2 := w.Curvature
	if c2 == 0 {
		c2 = 0.1
	}
	maxBracket := w.MaxBracket
	if maxBracket == 0 {
		maxBracket = 20
	}
	maxZoom := w.MaxZoom
	if maxZoom == 0 {
		maxZoom = 32
	}

	f0 := value(0)
	g0 := derivative(0)
	if !(g0 < 0) {
		// Not a descent direction (or non-finite): no improving step.
		w.alpha = 0
		return 0
	}

	step := w.InitialStep
	if step == 0 {
		step = 1
	}
	if w.alpha > 0 {
		step = w.alpha
	}

	var alpha, fAlpha float64
	a, fa, ga := 0.0, f0, g0
	bracketed := false
	for i := 0; i < maxBracket; i++ {
		fb := value(step)
		gb := derivative(step)
		if fb > f0+c1*step*g0 || (fb >= fa && i > 0) {
			alpha, fAlpha = w.zoom(a, fa, ga, step, fb, gb, f0, g0, c1, c2, maxZoom, value, derivative)
			bracketed = true
			break
		}
		if math.Abs(gb) <= -c2*g0 {
			alpha, fAlpha = step, fb
			bracketed = true
			break
		}
		if gb >= 0 {
			alpha, fAlpha = w.zoom(step, fb, gb, a, fa, ga, f0, g0, c1, c2, maxZoom, value, derivative)
			bracketed = true
			break
		}
		a, fa, ga = step, fb, gb
		step *= 2
	}
	if !bracketed {
		// The derivative stayed negative for every tested step: take the
		// furthest expansion point if it improves the cost.
		alpha, fAlpha = a, fa
	}

	if !(alpha > 0) || !(fAlpha < f0) {
		w.alpha = 0
		return 0
	}
	w.alpha = alpha
	return alpha
}

// zoom narrows a bracket [lo, hi] known to contain a Wolfe point, where lo
// always carries the lower function value. The next trial is the secant
// root of the derivative, falling back to bisection when the secant step
// is not finite or leaves the bracket.
func (w *WolfeSearch) zoom(lo, flo, glo, hi, fhi, ghi, f0, g0, c1, c2 float64, maxZoom int, value, derivative func(float64) float64) (float64, float64) {
	for i := 0; i < maxZoom; i++ {
		t := lo - glo*(hi-lo)/(ghi-glo)
		left, right := math.Min(lo, hi), math.Max(lo, hi)
		if math.IsNaN(t) || math.IsInf(t, 0) || t <= left || t >= right {
			t = 0.5 * (lo + hi)
		}
		ft := value(t)
		gt := derivative(t)
		if ft > f0+c1*t*g0 || ft >= flo {
			hi, fhi, ghi = t, ft, gt
		} else {
			if math.Abs(gt) <= -c2*g0 {
				return t, ft
			}
			if gt*(hi-lo) >= 0 {
				hi, fhi, ghi = lo, flo, glo
			}
			lo, flo, glo = t, ft, gt
		}
		if math.Abs(hi-lo) <= 1e-14*math.Max(1, math.Abs(lo)) {
			break
		}
	}
	return lo, flo
}
