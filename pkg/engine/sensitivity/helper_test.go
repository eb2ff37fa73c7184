package sensitivity

import (
	"testing"

	da "github.com/lintang-b-s/assignx/pkg/datastructure"
	"github.com/lintang-b-s/assignx/pkg/solver"
)

func mustMatrix(t *testing.T, rows [][]float64) *da.Matrix {
	t.Helper()
	m, err := da.NewMatrixFromRows(rows)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	return m
}

func mustSolve(t *testing.T, cost *da.Matrix) *da.Assignment {
	t.Helper()
	assignment, err := solver.NewHungarian().Solve(cost)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	return assignment
}

func assertMatrixEqual(t *testing.T, want [][]float64, got *da.Matrix) {
	t.Helper()
	if got.Dim() != len(want) {
		t.Fatalf("expected dimension %v, got %v", len(want), got.Dim())
	}
	for i := range want {
		for j := range want[i] {
			if !da.Eq(want[i][j], got.At(i, j)) {
				t.Fatalf("cell (%v, %v): expected %v, got %v", i, j, want[i][j], got.At(i, j))
			}
		}
	}
}
