package datastructure

/*
Assignment is an optimal row->column matching. rowInd and colInd are
paired positionally: row rowInd[k] is assigned to column colInd[k].
solvers emit rowInd = 0..n-1 in order, so colInd alone is the
permutation, but consumers should pair through the two slices rather
than assume the ordering.
*/
type Assignment struct {
	rowInd    []int
	colInd    []int
	totalCost float64
}

func NewAssignment(rowInd, colInd []int, totalCost float64) *Assignment {
	return &Assignment{
		rowInd:    rowInd,
		colInd:    colInd,
		totalCost: totalCost,
	}
}

func (a *Assignment) Len() int {
	return len(a.rowInd)
}

// Pair returns the k-th assigned (row, col).
func (a *Assignment) Pair(k int) (int, int) {
	return a.rowInd[k], a.colInd[k]
}

func (a *Assignment) RowIndices() []int {
	return a.rowInd
}

func (a *Assignment) ColIndices() []int {
	return a.colInd
}

func (a *Assignment) TotalCost() float64 {
	return a.totalCost
}

// ColumnOf returns the column assigned to row, or -1 if the row is not
// part of the matching.
func (a *Assignment) ColumnOf(row int) int {
	if row >= 0 && row < len(a.rowInd) && a.rowInd[row] == row {
		return a.colInd[row]
	}
	for k, r := range a.rowInd {
		if r == row {
			return a.colInd[k]
		}
	}
	return -1
}

// DualVariables are the LP dual values (row potentials u, column
// potentials v) attached to an assignment.
type DualVariables struct {
	u []float64
	v []float64
}

func NewDualVariables(u, v []float64) *DualVariables {
	return &DualVariables{u: u, v: v}
}

func (d *DualVariables) U() []float64 {
	return d.u
}

func (d *DualVariables) V() []float64 {
	return d.v
}
