package datastructure

import (
	"errors"
	"math"
	"testing"
)

func TestNewMatrixFromRows(t *testing.T) {
	cases := []struct {
		name    string
		rows    [][]float64
		wantErr error
	}{
		{
			name: "square matrix",
			rows: [][]float64{{1, 2}, {3, 4}},
		},
		{
			name: "single element",
			rows: [][]float64{{7}},
		},
		{
			name:    "empty",
			rows:    [][]float64{},
			wantErr: ErrEmptyMatrix,
		},
		{
			name:    "ragged rows",
			rows:    [][]float64{{1, 2}, {3}},
			wantErr: ErrNonSquareMatrix,
		},
		{
			name:    "rectangular",
			rows:    [][]float64{{1, 2, 3}, {4, 5, 6}},
			wantErr: ErrNonSquareMatrix,
		},
		{
			name:    "nan entry",
			rows:    [][]float64{{1, math.NaN()}, {3, 4}},
			wantErr: ErrNonFiniteValue,
		},
		{
			name:    "inf entry",
			rows:    [][]float64{{1, 2}, {math.Inf(-1), 4}},
			wantErr: ErrNonFiniteValue,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			m, err := NewMatrixFromRows(c.rows)
			if c.wantErr != nil {
				if !errors.Is(err, c.wantErr) {
					t.Fatalf("want error %v, got %v", c.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("err: %v", err)
			}
			if m.Dim() != len(c.rows) {
				t.Fatalf("want dim %d, got %d", len(c.rows), m.Dim())
			}
			for i := 0; i < m.Dim(); i++ {
				for j := 0; j < m.Dim(); j++ {
					if m.At(i, j) != c.rows[i][j] {
						t.Fatalf("cell (%d,%d): want %v, got %v", i, j, c.rows[i][j], m.At(i, j))
					}
				}
			}
		})
	}
}

func TestMatrixCloneIsIndependent(t *testing.T) {
	m, err := NewMatrixFromRows([][]float64{{1, 2}, {3, 4}})
	if err != nil {
		t.Fatalf("err: %v", err)
	}

	clone := m.Clone()
	clone.Set(0, 0, 99)

	if m.At(0, 0) != 1 {
		t.Fatalf("clone write leaked into original: got %v", m.At(0, 0))
	}
	if clone.At(0, 0) != 99 {
		t.Fatalf("clone write lost: got %v", clone.At(0, 0))
	}
}

func TestMatrixRowsCopy(t *testing.T) {
	m, err := NewMatrixFromRows([][]float64{{1, 2}, {3, 4}})
	if err != nil {
		t.Fatalf("err: %v", err)
	}

	rows := m.Rows()
	rows[1][1] = -5

	if m.At(1, 1) != 4 {
		t.Fatalf("Rows() must copy, original mutated to %v", m.At(1, 1))
	}
}

func TestMatrixTrace(t *testing.T) {
	m, err := NewMatrixFromRows([][]float64{{2, 9, 9}, {9, 3, 9}, {9, 9, 4}})
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if !Eq(m.Trace(), 9) {
		t.Fatalf("want trace 9, got %v", m.Trace())
	}
}

func TestMatrixValidate(t *testing.T) {
	var nilMatrix *Matrix
	if err := nilMatrix.Validate(); !errors.Is(err, ErrNilMatrix) {
		t.Fatalf("want %v, got %v", ErrNilMatrix, err)
	}

	m := NewMatrix(2)
	if err := m.Validate(); err != nil {
		t.Fatalf("err: %v", err)
	}

	m.Set(1, 0, math.Inf(1))
	if err := m.Validate(); !errors.Is(err, ErrNonFiniteValue) {
		t.Fatalf("want %v, got %v", ErrNonFiniteValue, err)
	}
}
