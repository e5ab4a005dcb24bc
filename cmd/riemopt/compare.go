package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/riemopt/riemopt/internal/objective"
	"github.com/riemopt/riemopt/internal/opt"
)

var (
	cmpDim   int
	cmpIters int
	popSize  int
	seed     int64
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare CG against the derivative-free mayfly baseline",
	Long:  `Runs conjugate gradient and the mayfly swarm optimizer on the Rosenbrock function.`,
	RunE:  runComparison,
}

func init() {
	compareCmd.Flags().IntVar(&cmpDim, "dim", 4, "Problem dimension")
	compareCmd.Flags().IntVar(&cmpIters, "iters", 500, "Max iterations for each optimizer")
	compareCmd.Flags().IntVar(&popSize, "pop", 30, "Mayfly population size")
	compareCmd.Flags().Int64Var(&seed, "seed", 42, "Mayfly random seed")

	rootCmd.AddCommand(compareCmd)
}

func runComparison(cmd *cobra.Command, args []string) error {
	obj := objective.Rosenbrock{}

	lower := make([]float64, cmpDim)
	upper := make([]float64, cmpDim)
	initial := make([]float64, cmpDim)
	for i := 0; i < cmpDim; i++ {
		lower[i] = -5
		upper[i] = 5
		initial[i] = -1.2
	}

	problem := opt.Problem{
		Cost:  func(x []float64) float64 { return obj.Cost(x) },
		Grad:  func(x []float64) []float64 { return obj.Grad(x) },
		Lower: lower,
		Upper: upper,
		Dim:   cmpDim,
	}

	optimizers := []struct {
		name string
		o    opt.Optimizer
	}{
		{"conjugate-gradient", opt.NewCG(nil, cmpIters)},
		{"mayfly", opt.NewMayfly(cmpIters, popSize, seed)},
	}

	slog.Info("Starting comparison", "objective", obj.Name(), "dim", cmpDim, "iters", cmpIters)

	for _, entry := range optimizers {
		begin := time.Now()
		best, cost := entry.o.Run(problem, initial)
		elapsed := time.Since(begin)

		slog.Info("Optimizer finished", "optimizer", entry.name, "cost", cost, "elapsed", elapsed)
		fmt.Printf("%-20s cost=%-12.6g x=%v (%s)\n", entry.name, cost, best, elapsed)
	}

	return nil
}
