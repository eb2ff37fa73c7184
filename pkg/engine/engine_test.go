package engine

import (
	"errors"
	"math"
	"testing"

	"github.com/lintang-b-s/assignx/pkg"
	"github.com/lintang-b-s/assignx/pkg/datastructure"
	"github.com/lintang-b-s/assignx/pkg/engine/sensitivity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestEngine() *Engine {
	return NewEngine(zap.NewNop())
}

func costMatrix(t *testing.T, rows [][]float64) *datastructure.Matrix {
	t.Helper()
	m, err := datastructure.NewMatrixFromRows(rows)
	require.NoError(t, err)
	return m
}

func TestAnalyzeBasic(t *testing.T) {
	e := newTestEngine()
	cost := costMatrix(t, [][]float64{
		{4, 1, 3},
		{2, 0, 5},
		{3, 2, 2},
	})

	result, err := e.Analyze(cost, pkg.BASIC, sensitivity.DefaultParams())
	require.NoError(t, err)

	assert.NotEmpty(t, result.GetID())
	assert.Equal(t, pkg.BASIC, result.GetMethod())
	assert.InDelta(t, 5.0, result.GetAssignment().TotalCost(), 1e-9)
	assert.Equal(t, []int{1, 0, 2}, result.GetAssignment().ColIndices())
	assert.Equal(t, 3, result.GetSensitivity().Dim())
	assert.Nil(t, result.GetDuals())
}

func TestAnalyzeDualCarriesDuals(t *testing.T) {
	e := newTestEngine()
	cost := costMatrix(t, [][]float64{
		{4, 1, 3},
		{2, 0, 5},
		{3, 2, 2},
	})

	result, err := e.Analyze(cost, pkg.DUAL_BASED, sensitivity.DefaultParams())
	require.NoError(t, err)

	duals := result.GetDuals()
	require.NotNil(t, duals)

	assignment := result.GetAssignment()
	for k := 0; k < assignment.Len(); k++ {
		i, j := assignment.Pair(k)
		slack := math.Abs(duals.U()[i] + duals.V()[j] - cost.At(i, j))
		assert.Less(t, slack, 1e-9)
	}
}

func TestAnalyzeRejectsComparisonMethod(t *testing.T) {
	e := newTestEngine()
	cost := costMatrix(t, [][]float64{{1, 2}, {3, 4}})

	_, err := e.Analyze(cost, pkg.ALL_METHODS, sensitivity.DefaultParams())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrComparisonMethod))
}

func TestAnalyzeRejectsUnknownMethod(t *testing.T) {
	e := newTestEngine()
	cost := costMatrix(t, [][]float64{{1, 2}, {3, 4}})

	_, err := e.Analyze(cost, pkg.UNKNOWN_METHOD, sensitivity.DefaultParams())
	require.Error(t, err)
	assert.True(t, errors.Is(err, sensitivity.ErrUnknownMethod))
}

func TestAnalyzeRejectsNonFiniteMatrix(t *testing.T) {
	e := newTestEngine()
	cost := datastructure.NewMatrix(2)
	cost.Set(0, 0, math.Inf(1))

	_, err := e.Analyze(cost, pkg.BASIC, sensitivity.DefaultParams())
	require.Error(t, err)
	assert.True(t, errors.Is(err, datastructure.ErrNonFiniteValue))
}

func TestCompareAllMethods(t *testing.T) {
	e := newTestEngine()
	cost := costMatrix(t, [][]float64{
		{4, 1, 3},
		{2, 0, 5},
		{3, 2, 2},
	})

	result, err := e.CompareAllMethods(cost, sensitivity.DefaultParams())
	require.NoError(t, err)

	assert.NotEmpty(t, result.GetID())
	assert.InDelta(t, 5.0, result.GetAssignment().TotalCost(), 1e-9)

	results := result.GetResults()
	require.Len(t, results, 6)
	wantOrder := []string{
		"Basic", "Dual-based", "Auction", "Geometric", "Reduced Cost", "Perturbation",
	}
	for k, want := range wantOrder {
		assert.Equal(t, want, results[k].GetDisplayName())
		assert.Equal(t, 3, results[k].GetSensitivity().Dim())
	}
}

func TestSolveDelegatesToSolver(t *testing.T) {
	e := newTestEngine()
	cost := costMatrix(t, [][]float64{{0, 5}, {5, 0}})

	assignment, err := e.Solve(cost)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, assignment.ColIndices())
	assert.InDelta(t, 0.0, assignment.TotalCost(), 1e-9)
}
