package opt

// Problem is a minimization task over flat parameter vectors.
type Problem struct {
	// Cost is the objective to minimize.
	Cost func([]float64) float64
	// Grad is the gradient of Cost. Derivative-free optimizers ignore it
	// and accept nil.
	Grad func([]float64) []float64
	// Lower and Upper are box bounds used by population optimizers.
	Lower, Upper []float64
	// Dim is the dimensionality of the parameter space.
	Dim int
}

// Optimizer defines an optimization algorithm interface
type Optimizer interface {
	// Run executes the optimization from the given start point.
	// Returns: best parameters and best cost
	Run(p Problem, initial []float64) ([]float64, float64)
}
