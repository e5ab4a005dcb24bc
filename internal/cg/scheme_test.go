package cg

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/riemopt/riemopt/internal/manifold"
)

func TestSchemeFormulas(t *testing.T) {
	// Euclidean inner products with hand-computed values:
	//   g = (1,2), lg = (3,4), ptg = (2,1), ptv = (1,2)
	//   diff = g - ptg = (-1,1)
	//   |g|^2 = 5, |lg|^2 = 25, |ptg|^2 = 5
	//   <g,diff> = 1, <ptv,diff> = 1, <ptv,ptg> = 4
	ip := manifold.Euclidean{}.At(nil)
	g := manifold.Vector{1, 2}
	lg := manifold.Vector{3, 4}
	ptg := manifold.Vector{2, 1}
	ptv := manifold.Vector{1, 2}

	require.Equal(t, 0.2, FletcherReeves{}.Beta(g, lg, ptg, ptv, ip, ip))
	require.Equal(t, 0.2, PolakRibiere{}.Beta(g, lg, ptg, ptv, ip, ip))
	require.Equal(t, 1.0, HestenesStiefel{}.Beta(g, lg, ptg, ptv, ip, ip))
	require.Equal(t, -1.25, ConjugateDescent{}.Beta(g, lg, ptg, ptv, ip, ip))
	require.Equal(t, 5.0, DaiYuan{}.Beta(g, lg, ptg, ptv, ip, ip))
}

func TestSchemeDegenerateDenominator(t *testing.T) {
	// ptv orthogonal to diff under the metric: the formulas divide by zero
	// and must propagate a non-finite beta rather than guard it.
	ip := manifold.Euclidean{}.At(nil)
	g := manifold.Vector{1, 2}
	lg := manifold.Vector{3, 4}
	ptg := manifold.Vector{2, 1}
	ptv := manifold.Vector{1, 1} // <ptv, g-ptg> = 0

	beta := HestenesStiefel{}.Beta(g, lg, ptg, ptv, ip, ip)
	require.True(t, math.IsInf(beta, 1), "expected +Inf, got %v", beta)
}

func TestSchemeByName(t *testing.T) {
	for name, want := range map[string]string{
		"hs":                "hestenes-stiefel",
		"hestenes-stiefel":  "hestenes-stiefel",
		"fr":                "fletcher-reeves",
		"fletcher-reeves":   "fletcher-reeves",
		"pr":                "polak-ribiere",
		"polak-ribiere":     "polak-ribiere",
		"cd":                "conjugate-descent",
		"conjugate-descent": "conjugate-descent",
		"dy":                "dai-yuan",
		"dai-yuan":          "dai-yuan",
	} {
		s, err := SchemeByName(name)
		require.NoError(t, err)
		require.Equal(t, want, s.Name())
	}

	_, err := SchemeByName("steepest")
	require.Error(t, err)
}
