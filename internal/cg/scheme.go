package cg

import (
	"fmt"

	"github.com/riemopt/riemopt/internal/manifold"
)

// Scheme computes the coefficient beta that blends the transported previous
// search direction into the new conjugate direction. All quantities are
// evaluated with the metric's inner product: at is bound to the current
// point, atLast to the previous one. ptLastGrad and ptLastVel are the
// previous gradient and velocity parallel-transported into the current
// tangent space by the previous step size.
//
// The formulas are applied verbatim. A degenerate denominator produces a
// non-finite beta, which propagates into a non-finite velocity and makes
// the next line search fail safely; no restart or sign safeguard is
// applied here.
type Scheme interface {
	Beta(grad, lastGrad, ptLastGrad, ptLastVel manifold.Vector, at, atLast manifold.InnerProduct) float64
	Name() string
}

// FletcherReeves: |g|^2 / |g_prev|^2, the previous norm taken under the
// metric at the previous point.
type FletcherReeves struct{}

func (FletcherReeves) Beta(grad, lastGrad, _, _ manifold.Vector, at, atLast manifold.InnerProduct) float64 {
	return at.Norm2(grad) / atLast.Norm2(lastGrad)
}

func (FletcherReeves) Name() string { return "fletcher-reeves" }

// PolakRibiere: <g, g - g_prev> / |g_prev|^2.
type PolakRibiere struct{}

func (PolakRibiere) Beta(grad, _, ptLastGrad, _ manifold.Vector, at, _ manifold.InnerProduct) float64 {
	diff := grad.AddScaled(-1, ptLastGrad)
	return at.Inner(grad, diff) / at.Norm2(ptLastGrad)
}

func (PolakRibiere) Name() string { return "polak-ribiere" }

// HestenesStiefel: <g, g - g_prev> / <d_prev, g - g_prev>. The default.
type HestenesStiefel struct{}

func (HestenesStiefel) Beta(grad, _, ptLastGrad, ptLastVel manifold.Vector, at, _ manifold.InnerProduct) float64 {
	diff := grad.AddScaled(-1, ptLastGrad)
	return at.Inner(grad, diff) / at.Inner(ptLastVel, diff)
}

func (HestenesStiefel) Name() string { return "hestenes-stiefel" }

// ConjugateDescent: -|g|^2 / <d_prev, g_prev>.
type ConjugateDescent struct{}

func (ConjugateDescent) Beta(grad, _, ptLastGrad, ptLastVel manifold.Vector, at, _ manifold.InnerProduct) float64 {
	return -at.Norm2(grad) / at.Inner(ptLastVel, ptLastGrad)
}

func (ConjugateDescent) Name() string { return "conjugate-descent" }

// DaiYuan: |g|^2 / <d_prev, g - g_prev>.
type DaiYuan struct{}

func (DaiYuan) Beta(grad, _, ptLastGrad, ptLastVel manifold.Vector, at, _ manifold.InnerProduct) float64 {
	diff := grad.AddScaled(-1, ptLastGrad)
	return at.Norm2(grad) / at.Inner(ptLastVel, diff)
}

func (DaiYuan) Name() string { return "dai-yuan" }

// SchemeByName resolves a scheme from its full or short name.
func SchemeByName(name string) (Scheme, error) {
	switch name {
	case "hestenes-stiefel", "hs":
		return HestenesStiefel{}, nil
	case "fletcher-reeves", "fr":
		return FletcherReeves{}, nil
	case "polak-ribiere", "pr":
		return PolakRibiere{}, nil
	case "conjugate-descent", "cd":
		return ConjugateDescent{}, nil
	case "dai-yuan", "dy":
		return DaiYuan{}, nil
	}
	return nil, fmt.Errorf("unknown CG scheme: %s", name)
}
