package datastructure

import (
	"errors"

	"github.com/lintang-b-s/assignx/pkg/util"
)

var (
	ErrNilMatrix       = errors.New("cost matrix is nil")
	ErrEmptyMatrix     = errors.New("cost matrix must have at least one row")
	ErrNonSquareMatrix = errors.New("cost matrix must be square")
	ErrNonFiniteValue  = errors.New("cost matrix contains a non-finite value")
)

/*
Matrix is a dense row-major square float64 matrix. entry (i,j) lives at
data[i*n+j]. used both for assignment cost inputs and for per-cell
sensitivity outputs, so every producer allocates a fresh Matrix and never
aliases its input.
*/
type Matrix struct {
	n    int
	data []float64
}

func NewMatrix(n int) *Matrix {
	return &Matrix{
		n:    n,
		data: make([]float64, n*n),
	}
}

// NewMatrixFromRows copies rows into a fresh Matrix, rejecting ragged,
// empty, or non-finite input before any computation can see it.
func NewMatrixFromRows(rows [][]float64) (*Matrix, error) {
	if len(rows) == 0 {
		return nil, util.WrapErrorf(ErrEmptyMatrix, util.ErrBadParamInput,
			"cost matrix must have at least one row")
	}
	n := len(rows)
	m := NewMatrix(n)
	for i, row := range rows {
		if len(row) != n {
			return nil, util.WrapErrorf(ErrNonSquareMatrix, util.ErrBadParamInput,
				"row %d has %d columns, want %d", i, len(row), n)
		}
		for j, v := range row {
			if !isFinite(v) {
				return nil, util.WrapErrorf(ErrNonFiniteValue, util.ErrBadParamInput,
					"non-finite cost at (%d, %d)", i, j)
			}
			m.data[i*n+j] = v
		}
	}
	return m, nil
}

func (m *Matrix) Dim() int {
	return m.n
}

func (m *Matrix) At(i, j int) float64 {
	return m.data[i*m.n+j]
}

func (m *Matrix) Set(i, j int, v float64) {
	m.data[i*m.n+j] = v
}

func (m *Matrix) Clone() *Matrix {
	c := NewMatrix(m.n)
	copy(c.data, m.data)
	return c
}

func (m *Matrix) Trace() float64 {
	var tr float64
	for i := 0; i < m.n; i++ {
		tr += m.data[i*m.n+i]
	}
	return tr
}

// Rows returns a fresh [][]float64 copy, safe to hand to encoders.
func (m *Matrix) Rows() [][]float64 {
	rows := make([][]float64, m.n)
	for i := 0; i < m.n; i++ {
		rows[i] = make([]float64, m.n)
		copy(rows[i], m.data[i*m.n:(i+1)*m.n])
	}
	return rows
}

func (m *Matrix) Validate() error {
	if m == nil {
		return util.WrapErrorf(ErrNilMatrix, util.ErrBadParamInput, "cost matrix is nil")
	}
	if m.n <= 0 {
		return util.WrapErrorf(ErrEmptyMatrix, util.ErrBadParamInput,
			"cost matrix must have at least one row")
	}
	if len(m.data) != m.n*m.n {
		return util.WrapErrorf(ErrNonSquareMatrix, util.ErrBadParamInput,
			"matrix storage has %d entries, want %d", len(m.data), m.n*m.n)
	}
	for i := 0; i < m.n; i++ {
		for j := 0; j < m.n; j++ {
			if !isFinite(m.data[i*m.n+j]) {
				return util.WrapErrorf(ErrNonFiniteValue, util.ErrBadParamInput,
					"non-finite cost at (%d, %d)", i, j)
			}
		}
	}
	return nil
}
