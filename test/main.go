package main

import (
	"fmt"
	"log"
	"math"

	"github.com/lintang-b-s/assignx/pkg/datastructure"
	"github.com/lintang-b-s/assignx/pkg/engine"
	"github.com/lintang-b-s/assignx/pkg/engine/sensitivity"
	"github.com/lintang-b-s/assignx/pkg/logger"
	"github.com/lintang-b-s/assignx/pkg/solver"

	"golang.org/x/exp/rand"
)

func main() {
	// known instance: optimal pairing (0,1),(1,0),(2,2) with total cost 5
	cost, err := datastructure.NewMatrixFromRows([][]float64{
		{4, 1, 3},
		{2, 0, 5},
		{3, 2, 2},
	})
	if err != nil {
		panic(err)
	}

	logger, err := logger.New()
	if err != nil {
		panic(err)
	}

	analysisEngine := engine.NewEngine(logger)

	assignment, err := analysisEngine.Solve(cost)
	if err != nil {
		panic(err)
	}

	log.Printf("optimal total cost: %v\n", assignment.TotalCost())
	rowInd := assignment.RowIndices()
	colInd := assignment.ColIndices()
	for k := 0; k < len(rowInd); k++ {
		fmt.Printf("row %v -> col %v, cost %v\n", rowInd[k], colInd[k],
			cost.At(rowInd[k], colInd[k]))
	}

	comparison, err := analysisEngine.CompareAllMethods(cost, sensitivity.DefaultParams())
	if err != nil {
		panic(err)
	}

	for _, result := range comparison.GetResults() {
		fmt.Printf("\n%s (%.3f ms):\n", result.GetDisplayName(), result.GetElapsedMs())
		sens := result.GetSensitivity()
		for i := 0; i < sens.Dim(); i++ {
			for j := 0; j < sens.Dim(); j++ {
				fmt.Printf("%10.3f ", sens.At(i, j))
			}
			fmt.Printf("\n")
		}
	}

	// cross-check the solver against brute force on random instances
	h := solver.NewHungarian()
	rd := rand.New(rand.NewSource(42))
	for trial := 0; trial < 20; trial++ {
		random := datastructure.NewRandomMatrix(6, rd)

		got, err := h.Solve(random)
		if err != nil {
			panic(err)
		}

		want := bruteForce(random)
		if math.Abs(got.TotalCost()-want) > 1e-9 {
			log.Fatalf("trial %v: hungarian found %v, brute force found %v",
				trial, got.TotalCost(), want)
		}
	}
	log.Printf("solver matches brute force on all trials\n")
}

// bruteForce tries every permutation of column indices.
func bruteForce(cost *datastructure.Matrix) float64 {
	n := cost.Dim()
	cols := make([]int, n)
	for j := 0; j < n; j++ {
		cols[j] = j
	}

	best := math.Inf(1)
	var permute func(k int)
	permute = func(k int) {
		if k == n {
			total := 0.0
			for i := 0; i < n; i++ {
				total += cost.At(i, cols[i])
			}
			if total < best {
				best = total
			}
			return
		}
		for i := k; i < n; i++ {
			cols[k], cols[i] = cols[i], cols[k]
			permute(k + 1)
			cols[k], cols[i] = cols[i], cols[k]
		}
	}
	permute(0)
	return best
}
