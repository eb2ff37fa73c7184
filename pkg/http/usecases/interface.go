package usecases

import (
	"github.com/lintang-b-s/assignx/pkg"
	"github.com/lintang-b-s/assignx/pkg/datastructure"
	"github.com/lintang-b-s/assignx/pkg/engine"
	"github.com/lintang-b-s/assignx/pkg/engine/sensitivity"
)

type AnalysisEngine interface {
	Solve(cost *datastructure.Matrix) (*datastructure.Assignment, error)
	Analyze(cost *datastructure.Matrix, method pkg.SensitivityMethod,
		params sensitivity.Params) (*engine.AnalysisResult, error)
	CompareAllMethods(cost *datastructure.Matrix,
		params sensitivity.Params) (*engine.ComparisonResult, error)
}
