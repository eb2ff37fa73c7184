package usecases

import (
	"errors"
	"time"

	"github.com/lintang-b-s/assignx/pkg"
	"github.com/lintang-b-s/assignx/pkg/datastructure"
	"github.com/lintang-b-s/assignx/pkg/engine"
	"github.com/lintang-b-s/assignx/pkg/engine/sensitivity"
	"github.com/lintang-b-s/assignx/pkg/util"

	"github.com/google/uuid"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/exp/rand"
)

var ErrMatrixTooLarge = errors.New("matrix dimension exceeds the configured maximum")

type AnalysisService struct {
	log    *zap.Logger
	engine AnalysisEngine
}

func NewAnalysisService(log *zap.Logger, engine AnalysisEngine) *AnalysisService {
	return &AnalysisService{
		log:    log,
		engine: engine,
	}
}

func maxMatrixDim() int {
	if dim := viper.GetInt("MAX_MATRIX_DIM"); dim > 0 {
		return dim
	}
	return pkg.MAX_MATRIX_DIM
}

// estimatorParams fills unset request tunables from the config before the
// estimator constructors apply their own compiled fallbacks.
func estimatorParams(epsilon, delta float64) sensitivity.Params {
	if epsilon <= 0 {
		epsilon = viper.GetFloat64("AUCTION_EPSILON")
	}
	if delta <= 0 {
		delta = viper.GetFloat64("PERTURBATION_DELTA")
	}
	return sensitivity.NewParams(epsilon, delta)
}

func (s *AnalysisService) buildMatrix(rows [][]float64) (*datastructure.Matrix, error) {
	if len(rows) > maxMatrixDim() {
		return nil, util.WrapErrorf(ErrMatrixTooLarge, util.ErrBadParamInput,
			"matrix dimension %d exceeds the maximum of %d", len(rows), maxMatrixDim())
	}
	return datastructure.NewMatrixFromRows(rows)
}

func (s *AnalysisService) Solve(rows [][]float64) (*datastructure.Assignment, error) {
	cost, err := s.buildMatrix(rows)
	if err != nil {
		return nil, err
	}
	return s.engine.Solve(cost)
}

func (s *AnalysisService) Analyze(rows [][]float64, method string,
	epsilon, delta float64) (*engine.AnalysisResult, error) {
	cost, err := s.buildMatrix(rows)
	if err != nil {
		return nil, err
	}

	m := pkg.ParseSensitivityMethod(method)
	if m == pkg.UNKNOWN_METHOD {
		return nil, util.WrapErrorf(sensitivity.ErrUnknownMethod, util.ErrBadParamInput,
			"unknown sensitivity method %q", method)
	}

	return s.engine.Analyze(cost, m, estimatorParams(epsilon, delta))
}

func (s *AnalysisService) CompareAllMethods(rows [][]float64,
	epsilon, delta float64) (*engine.ComparisonResult, error) {
	cost, err := s.buildMatrix(rows)
	if err != nil {
		return nil, err
	}
	return s.engine.CompareAllMethods(cost, estimatorParams(epsilon, delta))
}

func (s *AnalysisService) RandomMatrix(dim int) (*datastructure.Matrix, error) {
	if dim <= 0 {
		return nil, util.WrapErrorf(datastructure.ErrEmptyMatrix, util.ErrBadParamInput,
			"dim must be positive, got %d", dim)
	}
	if dim > maxMatrixDim() {
		return nil, util.WrapErrorf(ErrMatrixTooLarge, util.ErrBadParamInput,
			"dim must be at most %d, got %d", maxMatrixDim(), dim)
	}

	rd := rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	return datastructure.NewRandomMatrix(dim, rd), nil
}

// StreamCompare runs the estimators one by one in the comparison order,
// handing each finished result to emit before starting the next. the
// returned assignment and analysis id feed the closing summary frame.
func (s *AnalysisService) StreamCompare(rows [][]float64, epsilon, delta float64,
	emit func(result datastructure.MethodResult) error) (*datastructure.Assignment, string, error) {

	cost, err := s.buildMatrix(rows)
	if err != nil {
		return nil, "", err
	}

	assignment, err := s.engine.Solve(cost)
	if err != nil {
		return nil, "", err
	}

	start := time.Now()
	for _, estimator := range sensitivity.NewEstimators(estimatorParams(epsilon, delta)) {
		methodStart := time.Now()
		sens, err := estimator.Estimate(cost, assignment)
		if err != nil {
			return nil, "", err
		}
		elapsedMs := float64(time.Since(methodStart).Microseconds()) / 1000.0

		method := estimator.Method()
		result := datastructure.NewMethodResult(method.String(), method.DisplayName(), sens, elapsedMs)
		if err := emit(result); err != nil {
			return nil, "", err
		}
	}

	id := uuid.New().String()
	s.log.Info("streamed method comparison completed",
		zap.String("analysisId", id),
		zap.Int("dim", cost.Dim()),
		zap.Float64("totalCost", assignment.TotalCost()),
		zap.Duration("duration", time.Since(start)))

	return assignment, id, nil
}
