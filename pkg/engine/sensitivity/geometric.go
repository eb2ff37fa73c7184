package sensitivity

import (
	"math"
	"sort"

	"github.com/lintang-b-s/assignx/pkg"
	da "github.com/lintang-b-s/assignx/pkg/datastructure"
)

type Geometric struct {
}

func NewGeometric() *Geometric {
	return &Geometric{}
}

func (g *Geometric) Method() pkg.SensitivityMethod {
	return pkg.GEOMETRIC_BOUNDS
}

/*
Estimate treats every cell as a competitor inside its row and its column
and scores it with the gap to the next strictly greater competitor value.
duplicates share a rank, so the gap skips over equal values instead of
collapsing to zero. a cell that is the maximum of its row (column) has an
infinite row (column) gap, and when both gaps are infinite the cell gets
a fixed fallback bound. rows and columns are sorted once, then each cell
binary-searches its next competitor, O(n^2 log n).
*/
func (g *Geometric) Estimate(cost *da.Matrix, _ *da.Assignment) (*da.Matrix, error) {
	if err := cost.Validate(); err != nil {
		return nil, err
	}
	n := cost.Dim()

	rowSorted := make([][]float64, n)
	colSorted := make([][]float64, n)
	for i := 0; i < n; i++ {
		rowSorted[i] = make([]float64, n)
		colSorted[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := cost.At(i, j)
			rowSorted[i][j] = v
			colSorted[j][i] = v
		}
	}
	for i := 0; i < n; i++ {
		sort.Float64s(rowSorted[i])
		sort.Float64s(colSorted[i])
	}

	sensitivity := da.NewMatrix(n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := cost.At(i, j)
			rowGap := nextGreaterGap(rowSorted[i], v)
			colGap := nextGreaterGap(colSorted[j], v)

			minGap := math.Min(rowGap, colGap)
			if math.IsInf(minGap, 1) {
				minGap = pkg.GEOMETRIC_FALLBACK_GAP
			}
			sensitivity.Set(i, j, minGap)
		}
	}

	return sensitivity, nil
}

// nextGreaterGap returns the distance from v to the smallest value in the
// sorted slice strictly greater than v, or +Inf when v is the maximum.
func nextGreaterGap(sorted []float64, v float64) float64 {
	idx := sort.Search(len(sorted), func(k int) bool {
		return sorted[k] > v
	})
	if idx == len(sorted) {
		return math.Inf(1)
	}
	return sorted[idx] - v
}
