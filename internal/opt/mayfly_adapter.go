package opt

import (
	"math/rand"

	"github.com/cwbudde/mayfly"
)

// MayflyAdapter wraps the external Mayfly library to conform to our Optimizer
// interface. It is derivative-free and serves as a baseline for the gradient
// methods on the same problems.
type MayflyAdapter struct {
	maxIters int
	popSize  int
	seed     int64
}

// NewMayfly creates a new Mayfly optimizer adapter
func NewMayfly(maxIters, popSize int, seed int64) Optimizer {
	return &MayflyAdapter{
		maxIters: maxIters,
		popSize:  popSize,
		seed:     seed,
	}
}

// Run executes the Mayfly optimization using the external library
func (m *MayflyAdapter) Run(p Problem, initial []float64) ([]float64, float64) {
	config := mayfly.NewDefaultConfig()

	config.ObjectiveFunc = p.Cost
	config.ProblemSize = p.Dim
	config.MaxIterations = m.maxIters
	config.NPop = m.popSize

	// The external library uses scalar bounds; assume all dimensions share
	// the first dimension's bounds.
	config.LowerBound = p.Lower[0]
	config.UpperBound = p.Upper[0]

	// Set random seed for reproducibility
	config.Rand = rand.New(rand.NewSource(m.seed))

	result, err := mayfly.Optimize(config)
	if err != nil {
		// Fall back to the start point if optimization fails.
		start := append([]float64(nil), initial...)
		return start, p.Cost(start)
	}

	return result.GlobalBest.Position, result.GlobalBest.Cost
}
