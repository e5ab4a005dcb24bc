package main

import (
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/riemopt/riemopt/internal/cg"
	"github.com/riemopt/riemopt/internal/manifold"
	"github.com/riemopt/riemopt/internal/objective"
)

var (
	objName    string
	schemeName string
	dim        int
	maxSteps   int
	cond       float64
	startSpec  string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a single minimization",
	Long:  `Minimizes a benchmark objective with the selected CG scheme and manifold.`,
	RunE:  runMinimization,
}

func init() {
	runCmd.Flags().StringVar(&objName, "objective", "rosenbrock", "Objective: sum-squares, rosenbrock, quadratic, rayleigh")
	runCmd.Flags().StringVar(&schemeName, "scheme", "hs", "CG scheme: hs, fr, pr, cd, dy")
	runCmd.Flags().IntVar(&dim, "dim", 2, "Problem dimension")
	runCmd.Flags().IntVar(&maxSteps, "max-steps", 1000, "Max CG iterations")
	runCmd.Flags().Float64Var(&cond, "cond", 10, "Condition number for quadratic/rayleigh matrices")
	runCmd.Flags().StringVar(&startSpec, "start", "", "Start point as comma-separated floats (defaults per objective)")

	rootCmd.AddCommand(runCmd)
}

func runMinimization(cmd *cobra.Command, args []string) error {
	scheme, err := cg.SchemeByName(schemeName)
	if err != nil {
		return err
	}

	obj, man, err := buildObjective(objName, dim, cond)
	if err != nil {
		return err
	}

	start, err := buildStart(startSpec, objName, dim)
	if err != nil {
		return err
	}

	slog.Info("Starting minimization",
		"objective", obj.Name(), "scheme", scheme.Name(), "dim", dim, "max_steps", maxSteps)

	solver := cg.New(man, cg.Config{Scheme: scheme, MaxSteps: maxSteps})

	begin := time.Now()
	best := solver.Optimize(start, obj.Cost, obj.Grad)
	elapsed := time.Since(begin)

	slog.Info("Minimization complete",
		"elapsed", elapsed,
		"steps", solver.Steps(),
		"initial_cost", obj.Cost(start),
		"final_cost", obj.Cost(best),
	)

	fmt.Printf("x = %v\ncost = %g (%d steps, %s)\n", []float64(best), obj.Cost(best), solver.Steps(), elapsed)
	return nil
}

func buildObjective(name string, dim int, cond float64) (objective.Objective, manifold.Manifold, error) {
	switch name {
	case "sum-squares":
		return objective.SumSquares{}, manifold.Euclidean{}, nil
	case "rosenbrock":
		return objective.Rosenbrock{}, manifold.Euclidean{}, nil
	case "quadratic":
		return objective.Quadratic{A: objective.DiagSPD(dim, cond)}, manifold.Euclidean{}, nil
	case "rayleigh":
		return objective.Rayleigh{A: objective.DiagSPD(dim, cond)}, manifold.Sphere{}, nil
	}
	return nil, nil, fmt.Errorf("unknown objective: %s", name)
}

func buildStart(raw, objName string, dim int) (manifold.Point, error) {
	var start manifold.Point
	if raw == "" {
		start = make(manifold.Point, dim)
		for i := range start {
			start[i] = -1.2
		}
		if objName == "rayleigh" {
			for i := range start {
				start[i] = 1
			}
		}
	} else {
		parts := strings.Split(raw, ",")
		start = make(manifold.Point, len(parts))
		for i, s := range parts {
			v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
			if err != nil {
				return nil, fmt.Errorf("invalid start point %q: %w", raw, err)
			}
			start[i] = v
		}
		if len(start) != dim {
			return nil, fmt.Errorf("start point has %d entries, want %d", len(start), dim)
		}
	}
	if objName == "rayleigh" {
		// Sphere points must have unit norm.
		var n2 float64
		for _, v := range start {
			n2 += v * v
		}
		if n2 == 0 {
			return nil, fmt.Errorf("start point for rayleigh must be nonzero")
		}
		inv := 1 / math.Sqrt(n2)
		for i := range start {
			start[i] *= inv
		}
	}
	return start, nil
}
