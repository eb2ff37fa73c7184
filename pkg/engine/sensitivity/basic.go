package sensitivity

import (
	"math"

	"github.com/lintang-b-s/assignx/pkg"
	da "github.com/lintang-b-s/assignx/pkg/datastructure"
)

type Basic struct {
}

func NewBasic() *Basic {
	return &Basic{}
}

func (b *Basic) Method() pkg.SensitivityMethod {
	return pkg.BASIC
}

/*
Estimate scores each cell with its distance to the cheapest alternative
in its own row and column. the row score is max(0, c[i,j] - rowMin) with
rowMin taken over the row excluding j, the column score is the symmetric
quantity, and the cell keeps the smaller of the two as the limiting
constraint. cells that already are the strict minimum of both lines score
zero. ignores the assignment structure entirely, which keeps it O(n^2)
with per-line (min, argmin, second-min) precomputation.
*/
func (b *Basic) Estimate(cost *da.Matrix, _ *da.Assignment) (*da.Matrix, error) {
	if err := cost.Validate(); err != nil {
		return nil, err
	}
	n := cost.Dim()
	sensitivity := da.NewMatrix(n)
	if n == 1 {
		// no alternative in a 1x1 problem
		return sensitivity, nil
	}

	rowMin := make([]float64, n)
	rowArgMin := make([]int, n)
	rowSecondMin := make([]float64, n)
	colMin := make([]float64, n)
	colArgMin := make([]int, n)
	colSecondMin := make([]float64, n)
	for i := 0; i < n; i++ {
		rowMin[i] = math.Inf(1)
		rowSecondMin[i] = math.Inf(1)
		colMin[i] = math.Inf(1)
		colSecondMin[i] = math.Inf(1)
	}

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := cost.At(i, j)

			if v < rowMin[i] {
				rowSecondMin[i] = rowMin[i]
				rowMin[i] = v
				rowArgMin[i] = j
			} else if v < rowSecondMin[i] {
				rowSecondMin[i] = v
			}

			if v < colMin[j] {
				colSecondMin[j] = colMin[j]
				colMin[j] = v
				colArgMin[j] = i
			} else if v < colSecondMin[j] {
				colSecondMin[j] = v
			}
		}
	}

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := cost.At(i, j)

			rowMinExcl := rowMin[i]
			if j == rowArgMin[i] {
				rowMinExcl = rowSecondMin[i]
			}
			colMinExcl := colMin[j]
			if i == colArgMin[j] {
				colMinExcl = colSecondMin[j]
			}

			rowSensitivity := math.Max(0, v-rowMinExcl)
			colSensitivity := math.Max(0, v-colMinExcl)

			sensitivity.Set(i, j, math.Min(rowSensitivity, colSensitivity))
		}
	}

	return sensitivity, nil
}
