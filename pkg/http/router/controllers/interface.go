package controllers

import (
	"github.com/lintang-b-s/assignx/pkg/datastructure"
	"github.com/lintang-b-s/assignx/pkg/engine"
)

type AnalysisService interface {
	Solve(rows [][]float64) (*datastructure.Assignment, error)
	Analyze(rows [][]float64, method string, epsilon, delta float64) (*engine.AnalysisResult, error)
	CompareAllMethods(rows [][]float64, epsilon, delta float64) (*engine.ComparisonResult, error)
	RandomMatrix(dim int) (*datastructure.Matrix, error)
}

type ComparisonStreamer interface {
	StreamCompare(rows [][]float64, epsilon, delta float64,
		emit func(result datastructure.MethodResult) error) (*datastructure.Assignment, string, error)
}
