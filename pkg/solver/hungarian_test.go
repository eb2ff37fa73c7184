package solver

import (
	"math"
	"testing"

	da "github.com/lintang-b-s/assignx/pkg/datastructure"
	"golang.org/x/exp/rand"
)

// evaluates every permutation, only usable for small n
func bruteForceBestCost(cost *da.Matrix) float64 {
	n := cost.Dim()
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	best := math.Inf(1)
	var permute func(k int)
	permute = func(k int) {
		if k == n {
			var total float64
			for i, j := range perm {
				total += cost.At(i, j)
			}
			if total < best {
				best = total
			}
			return
		}
		for i := k; i < n; i++ {
			perm[k], perm[i] = perm[i], perm[k]
			permute(k + 1)
			perm[k], perm[i] = perm[i], perm[k]
		}
	}
	permute(0)
	return best
}

func TestSolveSmallMatrices(t *testing.T) {
	testCases := []struct {
		name       string
		rows       [][]float64
		wantColInd []int
		wantCost   float64
	}{
		{
			name:       "three workers three tasks",
			rows:       [][]float64{{4, 1, 3}, {2, 0, 5}, {3, 2, 2}},
			wantColInd: []int{1, 0, 2},
			wantCost:   5,
		},
		{
			name:       "two by two diagonal optimum",
			rows:       [][]float64{{0, 5}, {5, 0}},
			wantColInd: []int{0, 1},
			wantCost:   0,
		},
		{
			name:       "single cell",
			rows:       [][]float64{{7}},
			wantColInd: []int{0},
			wantCost:   7,
		},
		{
			name:       "negative costs",
			rows:       [][]float64{{-1, 2}, {3, -4}},
			wantColInd: []int{0, 1},
			wantCost:   -5,
		},
	}

	h := NewHungarian()
	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			m, err := da.NewMatrixFromRows(tt.rows)
			if err != nil {
				t.Fatalf("err: %v", err)
			}
			got, err := h.Solve(m)
			if err != nil {
				t.Fatalf("err: %v", err)
			}
			if !da.Eq(got.TotalCost(), tt.wantCost) {
				t.Fatalf("expected total cost %v, got %v", tt.wantCost, got.TotalCost())
			}
			for i, wantCol := range tt.wantColInd {
				if got.ColIndices()[i] != wantCol {
					t.Fatalf("row %v: expected column %v, got %v", i, wantCol, got.ColIndices()[i])
				}
			}
		})
	}
}

func TestSolveMatchesBruteForce(t *testing.T) {
	rd := rand.New(rand.NewSource(42))
	h := NewHungarian()

	for n := 1; n <= 5; n++ {
		for trial := 0; trial < 50; trial++ {
			m := da.NewRandomMatrix(n, rd)
			got, err := h.Solve(m)
			if err != nil {
				t.Fatalf("err: %v", err)
			}

			seen := make([]bool, n)
			for k := 0; k < n; k++ {
				row, col := got.Pair(k)
				if row != k {
					t.Fatalf("row indices must be 0..n-1 in order, got %v at position %v", row, k)
				}
				if col < 0 || col >= n || seen[col] {
					t.Fatalf("column %v out of range or assigned twice", col)
				}
				seen[col] = true
			}

			want := bruteForceBestCost(m)
			if !da.Eq(got.TotalCost(), want) {
				t.Fatalf("n=%v trial=%v: expected optimal cost %v, got %v", n, trial, want, got.TotalCost())
			}
		}
	}
}

func TestSolveBijectionLargeRandom(t *testing.T) {
	rd := rand.New(rand.NewSource(7))
	h := NewHungarian()

	for trial := 0; trial < 10; trial++ {
		m := da.NewRandomMatrix(20, rd)
		got, err := h.Solve(m)
		if err != nil {
			t.Fatalf("err: %v", err)
		}

		seen := make([]bool, 20)
		var total float64
		for k := 0; k < got.Len(); k++ {
			row, col := got.Pair(k)
			if seen[col] {
				t.Fatalf("column %v assigned twice", col)
			}
			seen[col] = true
			total += m.At(row, col)
		}
		if !da.Eq(total, got.TotalCost()) {
			t.Fatalf("reported total cost %v does not match pair sum %v", got.TotalCost(), total)
		}
	}
}

func TestSolveRejectsInvalidMatrix(t *testing.T) {
	h := NewHungarian()

	if _, err := da.NewMatrixFromRows([][]float64{}); err == nil {
		t.Fatal("expected error for empty matrix")
	}
	if _, err := da.NewMatrixFromRows([][]float64{{1, 2}, {3}}); err == nil {
		t.Fatal("expected error for ragged matrix")
	}
	if _, err := da.NewMatrixFromRows([][]float64{{1, math.NaN()}, {3, 4}}); err == nil {
		t.Fatal("expected error for NaN cost")
	}

	m := da.NewMatrix(2)
	m.Set(0, 0, math.Inf(1))
	if _, err := h.Solve(m); err == nil {
		t.Fatal("expected error for non-finite cost")
	}
}
