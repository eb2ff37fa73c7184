package datastructure

import "testing"

func TestAssignmentPairsAndCost(t *testing.T) {
	a := NewAssignment([]int{0, 1, 2}, []int{1, 0, 2}, 5)

	if a.Len() != 3 {
		t.Fatalf("want len 3, got %d", a.Len())
	}
	if !Eq(a.TotalCost(), 5) {
		t.Fatalf("want total cost 5, got %v", a.TotalCost())
	}

	wantCols := []int{1, 0, 2}
	for k := 0; k < a.Len(); k++ {
		i, j := a.Pair(k)
		if i != k {
			t.Fatalf("pair %d: want row %d, got %d", k, k, i)
		}
		if j != wantCols[k] {
			t.Fatalf("pair %d: want col %d, got %d", k, wantCols[k], j)
		}
	}
}

func TestAssignmentColumnOf(t *testing.T) {
	// rows in identity order, the fast path.
	a := NewAssignment([]int{0, 1, 2}, []int{2, 0, 1}, 0)
	for row, want := range []int{2, 0, 1} {
		if got := a.ColumnOf(row); got != want {
			t.Fatalf("row %d: want col %d, got %d", row, want, got)
		}
	}

	// rows out of order exercise the scan fallback.
	b := NewAssignment([]int{2, 0, 1}, []int{1, 2, 0}, 0)
	if got := b.ColumnOf(2); got != 1 {
		t.Fatalf("row 2: want col 1, got %d", got)
	}
	if got := b.ColumnOf(5); got != -1 {
		t.Fatalf("missing row: want -1, got %d", got)
	}
}

func TestAssignmentIndices(t *testing.T) {
	a := NewAssignment([]int{0, 1}, []int{1, 0}, 3)

	rows := a.RowIndices()
	cols := a.ColIndices()
	if len(rows) != 2 || len(cols) != 2 {
		t.Fatalf("want 2 pairs, got %d rows and %d cols", len(rows), len(cols))
	}
	if rows[0] != 0 || cols[0] != 1 || rows[1] != 1 || cols[1] != 0 {
		t.Fatalf("indices mismatch: rows=%v cols=%v", rows, cols)
	}
}

func TestDualVariablesAccessors(t *testing.T) {
	d := NewDualVariables([]float64{0, 2}, []float64{1, -1})
	if len(d.U()) != 2 || len(d.V()) != 2 {
		t.Fatalf("want 2 duals per side, got %d and %d", len(d.U()), len(d.V()))
	}
	if !Eq(d.U()[1], 2) || !Eq(d.V()[1], -1) {
		t.Fatalf("dual values mismatch: u=%v v=%v", d.U(), d.V())
	}
}
