package solver

import (
	"math"

	da "github.com/lintang-b-s/assignx/pkg/datastructure"
	"github.com/lintang-b-s/assignx/pkg/util"
)

const inf = math.MaxFloat64 / 2

type Hungarian struct {
}

func NewHungarian() *Hungarian {
	return &Hungarian{}
}

/*
Solve finds a minimum-cost perfect matching between the rows and columns
of a square cost matrix. O(n^3).

references:
1. Kuhn, H.W. (1955) "The Hungarian method for the assignment problem,"
Naval Research Logistics Quarterly, 2(1-2), pp. 83-97. Available at:
https://doi.org/10.1002/nav.3800020109.
2. Munkres, J. (1957) "Algorithms for the Assignment and Transportation
Problems," Journal of the Society for Industrial and Applied Mathematics,
5(1), pp. 32-38. Available at: https://doi.org/10.1137/0105003.
3. Jonker, R. and Volgenant, A. (1987) "A shortest augmenting path
algorithm for dense and sparse linear assignment problems," Computing,
38(4), pp. 325-340. Available at: https://doi.org/10.1007/BF02278710.

this is the potentials (dual variables) formulation: rows are inserted one
at a time and each insertion grows an alternating tree of tight edges
(reduced cost zero) from a virtual column 0 until it reaches a free
column, updating u/v by the minimum slack delta along the way. arrays are
1-indexed internally, p[j] is the row matched to column j.
*/
func (h *Hungarian) Solve(cost *da.Matrix) (*da.Assignment, error) {
	if err := cost.Validate(); err != nil {
		return nil, err
	}
	n := cost.Dim()

	u := make([]float64, n+1)
	v := make([]float64, n+1)
	p := make([]int, n+1)
	way := make([]int, n+1)
	minv := make([]float64, n+1)
	used := make([]bool, n+1)

	for i := 1; i <= n; i++ {
		p[0] = i
		j0 := 0

		for j := 1; j <= n; j++ {
			minv[j] = inf
			used[j] = false
		}

		for {
			used[j0] = true
			i0 := p[j0]
			delta := inf
			j1 := -1

			for j := 1; j <= n; j++ {
				if used[j] {
					continue
				}
				cur := cost.At(i0-1, j-1) - u[i0] - v[j]
				if cur < minv[j] {
					minv[j] = cur
					way[j] = j0
				}
				if minv[j] < delta {
					delta = minv[j]
					j1 = j
				}
			}

			if j1 < 0 {
				break
			}

			for j := 0; j <= n; j++ {
				if used[j] {
					u[p[j]] += delta
					v[j] -= delta
				} else {
					minv[j] -= delta
				}
			}

			j0 = j1
			if p[j0] == 0 {
				break
			}
		}

		// augment along the alternating path back to the virtual column
		for j0 != 0 {
			p[j0] = p[way[j0]]
			j0 = way[j0]
		}
	}

	rowInd := make([]int, n)
	colInd := make([]int, n)
	for i := 0; i < n; i++ {
		rowInd[i] = i
		colInd[i] = -1
	}
	for j := 1; j <= n; j++ {
		if p[j] > 0 {
			colInd[p[j]-1] = j - 1
		}
	}

	var totalCost float64
	for i := 0; i < n; i++ {
		util.AssertPanic(colInd[i] >= 0, "every row must be matched after the augmentation phase!")
		totalCost += cost.At(i, colInd[i])
	}

	return da.NewAssignment(rowInd, colInd, totalCost), nil
}
