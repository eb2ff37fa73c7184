package sensitivity

import (
	"math"

	"github.com/lintang-b-s/assignx/pkg"
	da "github.com/lintang-b-s/assignx/pkg/datastructure"
)

type ReducedCost struct {
}

func NewReducedCost() *ReducedCost {
	return &ReducedCost{}
}

func (r *ReducedCost) Method() pkg.SensitivityMethod {
	return pkg.REDUCED_COST
}

/*
Estimate models the assignment as a min-cost flow on the bipartite
row/column graph and reads sensitivity off the residual structure. node
potentials are pinned from the optimal matching (u = 0 everywhere,
v[j] = c[i,j] - u[i] for the row i assigned to j), so an unassigned cell
scores its clamped reduced cost max(0, c[i,j] - u[i] - v[j]): how much
cheaper it must get before the edge turns profitable. an assigned cell
scores the cheapest two-swap alternating cycle through it, the cost of
rerouting both affected rows if that assignment were forbidden. O(n^3)
from the per-assigned-cell cycle scan.
*/
func (r *ReducedCost) Estimate(cost *da.Matrix, assignment *da.Assignment) (*da.Matrix, error) {
	if err := cost.Validate(); err != nil {
		return nil, err
	}
	if err := checkAssignment(cost, assignment); err != nil {
		return nil, err
	}
	n := cost.Dim()

	u := make([]float64, n)
	v := make([]float64, n)
	colOf := make([]int, n) // row -> assigned column
	for i := 0; i < n; i++ {
		colOf[i] = -1
	}
	for k := 0; k < assignment.Len(); k++ {
		i, j := assignment.Pair(k)
		v[j] = cost.At(i, j) - u[i]
		colOf[i] = j
	}

	sensitivity := da.NewMatrix(n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if colOf[i] == j {
				sensitivity.Set(i, j, r.minCostCycle(cost, i, j, colOf))
			} else {
				reducedCost := cost.At(i, j) - u[i] - v[j]
				sensitivity.Set(i, j, math.Max(0, reducedCost))
			}
		}
	}

	return sensitivity, nil
}

// minCostCycle scans the two-swap alternating cycles that reroute row
// excludeI away from its assigned column excludeJ: row excludeI takes
// altJ, row altI takes excludeJ, and altI releases its current column.
// returns the smallest absolute cycle cost, or a fixed fallback when no
// alternative row or column exists (1x1 problems).
func (r *ReducedCost) minCostCycle(cost *da.Matrix, excludeI, excludeJ int, colOf []int) float64 {
	n := cost.Dim()
	minCycleCost := math.Inf(1)

	for altJ := 0; altJ < n; altJ++ {
		if altJ == excludeJ {
			continue
		}
		for altI := 0; altI < n; altI++ {
			if altI == excludeI {
				continue
			}
			currentAltJ := colOf[altI]
			cycleCost := cost.At(excludeI, altJ) + cost.At(altI, excludeJ) -
				cost.At(excludeI, excludeJ) - cost.At(altI, currentAltJ)
			minCycleCost = math.Min(minCycleCost, math.Abs(cycleCost))
		}
	}

	if math.IsInf(minCycleCost, 1) {
		return pkg.CYCLE_FALLBACK_COST
	}
	return minCycleCost
}
