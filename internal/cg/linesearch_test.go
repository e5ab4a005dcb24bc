package cg

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWolfeQuadraticExact(t *testing.T) {
	// phi(t) = 25(1-2t)^2, the cost of x^2+y^2 along the first steepest
	// descent direction from (3, 4). The derivative is linear, so the
	// secant zoom lands on the exact minimizer 0.5.
	value := func(t float64) float64 { return 25 * (1 - 2*t) * (1 - 2*t) }
	derivative := func(t float64) float64 { return -100 + 200*t }

	ls := NewWolfeSearch()
	ls.Reset()
	alpha := ls.Search(value, derivative)

	require.Equal(t, 0.5, alpha)
	require.Equal(t, 0.5, ls.Alpha())
}

func TestWolfeShiftedQuadratic(t *testing.T) {
	value := func(t float64) float64 { return (t - 0.3) * (t - 0.3) }
	derivative := func(t float64) float64 { return 2 * (t - 0.3) }

	ls := NewWolfeSearch()
	alpha := ls.Search(value, derivative)

	require.InDelta(t, 0.3, alpha, 1e-12)
}

func TestWolfeNonDescent(t *testing.T) {
	ls := NewWolfeSearch()

	// Increasing cost: the directional derivative at 0 is positive.
	alpha := ls.Search(
		func(t float64) float64 { return 1 + t },
		func(t float64) float64 { return 1 },
	)
	require.Equal(t, 0.0, alpha)
	require.Equal(t, 0.0, ls.Alpha())
}

func TestWolfeConstantCost(t *testing.T) {
	ls := NewWolfeSearch()

	alpha := ls.Search(
		func(t float64) float64 { return 7 },
		func(t float64) float64 { return 0 },
	)
	require.Equal(t, 0.0, alpha)
}

func TestWolfeUnboundedDescent(t *testing.T) {
	// No minimum along the ray: the search still returns some improving
	// step rather than hanging.
	ls := NewWolfeSearch()
	alpha := ls.Search(
		func(t float64) float64 { return -t },
		func(t float64) float64 { return -1 },
	)
	require.Greater(t, alpha, 0.0)
}

func TestWolfeNonFiniteCost(t *testing.T) {
	// A non-finite velocity poisons the cost along the curve; the search
	// must fail safely instead of accepting garbage.
	nan := func(t float64) float64 {
		if t == 0 {
			return 1
		}
		return nan64()
	}
	ls := NewWolfeSearch()
	alpha := ls.Search(nan, func(t float64) float64 { return -1 })
	require.Equal(t, 0.0, alpha)
}

func nan64() float64 {
	zero := 0.0
	return zero / zero
}

func TestWolfeResetClearsAlpha(t *testing.T) {
	ls := NewWolfeSearch()
	ls.Search(
		func(t float64) float64 { return 25 * (1 - 2*t) * (1 - 2*t) },
		func(t float64) float64 { return -100 + 200*t },
	)
	require.Equal(t, 0.5, ls.Alpha())

	ls.Reset()
	require.Equal(t, 0.0, ls.Alpha())
}
