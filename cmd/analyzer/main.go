package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/lintang-b-s/assignx/pkg"
	"github.com/lintang-b-s/assignx/pkg/datastructure"
	"github.com/lintang-b-s/assignx/pkg/engine"
	"github.com/lintang-b-s/assignx/pkg/engine/sensitivity"
	"github.com/lintang-b-s/assignx/pkg/logger"
	"golang.org/x/exp/rand"
)

var (
	problemFile = flag.String("problem", "", "json problem file holding matrix, method, epsilon and delta")
	matrixFile  = flag.String("matrix", "", "bzip2 matrix file to analyze (see cmd/generator)")
	dim         = flag.Int("dim", 5, "dimension of the random cost matrix when -matrix is not set")
	seed        = flag.Int64("seed", 0, "random seed, 0 uses the current time")
	method      = flag.String("method", "all_methods", "basic, dual_based, auction_based, geometric_bounds, reduced_cost, perturbation_theory or all_methods")
	epsilon     = flag.Float64("epsilon", pkg.DEFAULT_AUCTION_EPSILON, "auction bid slack")
	delta       = flag.Float64("delta", pkg.DEFAULT_PERTURBATION_DELTA, "perturbation step")
)

func main() {
	flag.Parse()
	log, err := logger.New()
	if err != nil {
		panic(err)
	}

	cost, err := loadMatrix()
	if err != nil {
		panic(err)
	}

	m := pkg.ParseSensitivityMethod(*method)
	if m == pkg.UNKNOWN_METHOD {
		panic(fmt.Sprintf("unknown sensitivity method %q", *method))
	}

	analysisEngine := engine.NewEngine(log)
	params := sensitivity.NewParams(*epsilon, *delta)

	if m == pkg.ALL_METHODS {
		result, err := analysisEngine.CompareAllMethods(cost, params)
		if err != nil {
			panic(err)
		}

		printProblem(cost, result.GetAssignment())
		for _, r := range result.GetResults() {
			fmt.Printf("\n%s (%s), %.3f ms:\n", r.GetDisplayName(), r.GetMethod(), r.GetElapsedMs())
			printMatrix(r.GetSensitivity(), nil)
		}
		fmt.Printf("\nanalysis id: %s\n", result.GetID())
		return
	}

	result, err := analysisEngine.Analyze(cost, m, params)
	if err != nil {
		panic(err)
	}

	printProblem(cost, result.GetAssignment())
	fmt.Printf("\n%s sensitivity:\n", m.DisplayName())
	printMatrix(result.GetSensitivity(), nil)
	if duals := result.GetDuals(); duals != nil {
		fmt.Printf("\nrow potentials u: %v\n", duals.U())
		fmt.Printf("column potentials v: %v\n", duals.V())
	}
	fmt.Printf("\nanalysis id: %s\n", result.GetID())
}

// loadMatrix prefers the problem file, then the bzip2 matrix file, then
// a random matrix. a problem file also overrides the method and tunable
// flags for any field it sets.
func loadMatrix() (*datastructure.Matrix, error) {
	if *problemFile != "" {
		problem, err := datastructure.ReadProblemFile(*problemFile)
		if err != nil {
			return nil, err
		}
		if problem.Method != "" {
			*method = problem.Method
		}
		if problem.Epsilon > 0 {
			*epsilon = problem.Epsilon
		}
		if problem.Delta > 0 {
			*delta = problem.Delta
		}
		return datastructure.NewMatrixFromRows(problem.Matrix)
	}

	if *matrixFile != "" {
		return datastructure.ReadMatrixFile(*matrixFile)
	}

	s := *seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	rd := rand.New(rand.NewSource(uint64(s)))
	return datastructure.NewRandomMatrix(*dim, rd), nil
}

// printProblem prints the cost matrix with the assigned cells marked by
// a star, then the matching and its total cost.
func printProblem(cost *datastructure.Matrix, assignment *datastructure.Assignment) {
	fmt.Printf("cost matrix (%dx%d):\n", cost.Dim(), cost.Dim())
	printMatrix(cost, assignment)

	fmt.Printf("\nassignment:")
	for k := 0; k < assignment.Len(); k++ {
		i, j := assignment.Pair(k)
		fmt.Printf(" (%d,%d)", i, j)
	}
	fmt.Printf("\ntotal cost: %v\n", assignment.TotalCost())
}

func printMatrix(m *datastructure.Matrix, assignment *datastructure.Assignment) {
	for i := 0; i < m.Dim(); i++ {
		for j := 0; j < m.Dim(); j++ {
			marker := " "
			if assignment != nil && assignment.ColumnOf(i) == j {
				marker = "*"
			}
			fmt.Printf("%10.3f%s", m.At(i, j), marker)
		}
		fmt.Printf("\n")
	}
}
