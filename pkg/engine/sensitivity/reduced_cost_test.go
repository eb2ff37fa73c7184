package sensitivity

import (
	"testing"

	da "github.com/lintang-b-s/assignx/pkg/datastructure"
	"golang.org/x/exp/rand"
)

func TestReducedCostEstimate(t *testing.T) {
	testCases := []struct {
		name string
		rows [][]float64
		want [][]float64
	}{
		{
			// optimum is the anti-diagonal (cost 5). assigned cells carry
			// their cheapest two-swap cycle, unassigned their reduced cost.
			name: "two by two",
			rows: [][]float64{{1, 2}, {3, 5}},
			want: [][]float64{{0, 1}, {1, 3}},
		},
		{
			name: "three by three",
			rows: [][]float64{{4, 1, 3}, {2, 0, 5}, {3, 2, 2}},
			want: [][]float64{{2, 0, 1}, {1, 0, 3}, {1, 1, 2}},
		},
		{
			// a single assignment has no alternating cycle at all
			name: "single cell falls back",
			rows: [][]float64{{3}},
			want: [][]float64{{5}},
		},
	}

	reduced := NewReducedCost()
	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			cost := mustMatrix(t, tt.rows)
			assignment := mustSolve(t, cost)

			got, err := reduced.Estimate(cost, assignment)
			if err != nil {
				t.Fatalf("err: %v", err)
			}
			assertMatrixEqual(t, tt.want, got)
		})
	}
}

func TestReducedCostUnassignedNonNegative(t *testing.T) {
	rd := rand.New(rand.NewSource(47))
	reduced := NewReducedCost()

	for trial := 0; trial < 20; trial++ {
		cost := da.NewRandomMatrix(5, rd)
		assignment := mustSolve(t, cost)

		got, err := reduced.Estimate(cost, assignment)
		if err != nil {
			t.Fatalf("err: %v", err)
		}

		for i := 0; i < got.Dim(); i++ {
			for j := 0; j < got.Dim(); j++ {
				if got.At(i, j) < 0 {
					t.Fatalf("sensitivity must be non-negative, got %v at (%v, %v)", got.At(i, j), i, j)
				}
			}
		}
	}
}

func TestReducedCostRequiresAssignment(t *testing.T) {
	cost := mustMatrix(t, [][]float64{{1, 2}, {3, 4}})
	reduced := NewReducedCost()

	if _, err := reduced.Estimate(cost, nil); err == nil {
		t.Fatal("expected error for missing assignment")
	}
}
