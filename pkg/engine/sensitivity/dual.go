package sensitivity

import (
	"math"

	"github.com/lintang-b-s/assignx/pkg"
	da "github.com/lintang-b-s/assignx/pkg/datastructure"
)

type Dual struct {
}

func NewDual() *Dual {
	return &Dual{}
}

func (d *Dual) Method() pkg.SensitivityMethod {
	return pkg.DUAL_BASED
}

func (d *Dual) Estimate(cost *da.Matrix, assignment *da.Assignment) (*da.Matrix, error) {
	sensitivity, _, err := d.EstimateWithDuals(cost, assignment)
	return sensitivity, err
}

/*
EstimateWithDuals derives shadow prices from the optimal assignment by
complementary slackness (u[i] + v[j] = c[i,j] on every assigned pair),
normalized by pinning the dual of row 0 to zero, then scores every cell
with its clamped reduced cost max(0, c[i,j] - u[i] - v[j]).

the construction is a single normalized walk over the assigned pairs:
only the column assigned to row 0 carries a nonzero price, every other
row absorbs its assigned cost into u. assigned cells always score zero
by construction; unassigned scores read as how far the cell is from
entering the optimal basis under this particular dual normalization.
*/
func (d *Dual) EstimateWithDuals(cost *da.Matrix, assignment *da.Assignment) (*da.Matrix, *da.DualVariables, error) {
	if err := cost.Validate(); err != nil {
		return nil, nil, err
	}
	if err := checkAssignment(cost, assignment); err != nil {
		return nil, nil, err
	}
	n := cost.Dim()

	u := make([]float64, n)
	v := make([]float64, n)

	for k := 0; k < assignment.Len(); k++ {
		i, j := assignment.Pair(k)
		if i == 0 {
			u[i] = 0
			v[j] = cost.At(i, j)
		} else {
			u[i] = cost.At(i, j) - v[j]
		}
	}

	sensitivity := da.NewMatrix(n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			reducedCost := cost.At(i, j) - u[i] - v[j]
			sensitivity.Set(i, j, math.Max(0, reducedCost))
		}
	}

	return sensitivity, da.NewDualVariables(u, v), nil
}
