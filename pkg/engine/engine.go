package engine

import (
	"errors"
	"time"

	"github.com/lintang-b-s/assignx/pkg"
	"github.com/lintang-b-s/assignx/pkg/datastructure"
	"github.com/lintang-b-s/assignx/pkg/engine/sensitivity"
	"github.com/lintang-b-s/assignx/pkg/solver"
	"github.com/lintang-b-s/assignx/pkg/util"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
)

var ErrComparisonMethod = errors.New("all_methods is a comparison, not a single analysis")

var analysesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "assignx",
		Subsystem: "engine",
		Name:      "analyses_total",
		Help:      "Completed analyses by sensitivity method",
	},
	[]string{"method"},
)

// Engine is the analysis facade: it validates a cost matrix once, solves
// it once, and hands the shared optimal assignment to the estimators.
type Engine struct {
	log    *zap.Logger
	solver *solver.Hungarian
}

func NewEngine(log *zap.Logger) *Engine {
	return &Engine{
		log:    log,
		solver: solver.NewHungarian(),
	}
}

func (e *Engine) GetSolver() *solver.Hungarian {
	return e.solver
}

type AnalysisResult struct {
	id          string
	method      pkg.SensitivityMethod
	assignment  *datastructure.Assignment
	sensitivity *datastructure.Matrix
	duals       *datastructure.DualVariables
}

func (r *AnalysisResult) GetID() string {
	return r.id
}

func (r *AnalysisResult) GetMethod() pkg.SensitivityMethod {
	return r.method
}

func (r *AnalysisResult) GetAssignment() *datastructure.Assignment {
	return r.assignment
}

func (r *AnalysisResult) GetSensitivity() *datastructure.Matrix {
	return r.sensitivity
}

// GetDuals is nil for every method except dual_based.
func (r *AnalysisResult) GetDuals() *datastructure.DualVariables {
	return r.duals
}

type ComparisonResult struct {
	id         string
	assignment *datastructure.Assignment
	results    datastructure.MethodResults
}

func (r *ComparisonResult) GetID() string {
	return r.id
}

func (r *ComparisonResult) GetAssignment() *datastructure.Assignment {
	return r.assignment
}

func (r *ComparisonResult) GetResults() datastructure.MethodResults {
	return r.results
}

func (e *Engine) Solve(cost *datastructure.Matrix) (*datastructure.Assignment, error) {
	return e.solver.Solve(cost)
}

// Analyze runs a single sensitivity method. structural matrix errors
// short-circuit before any solving or estimation happens.
func (e *Engine) Analyze(cost *datastructure.Matrix, method pkg.SensitivityMethod,
	params sensitivity.Params) (*AnalysisResult, error) {

	if method == pkg.ALL_METHODS {
		return nil, util.WrapErrorf(ErrComparisonMethod, util.ErrBadParamInput,
			"all_methods runs through CompareAllMethods")
	}

	start := time.Now()
	if err := cost.Validate(); err != nil {
		return nil, err
	}

	assignment, err := e.solver.Solve(cost)
	if err != nil {
		return nil, err
	}

	estimator, err := sensitivity.NewEstimator(method, params)
	if err != nil {
		return nil, err
	}

	var (
		sens  *datastructure.Matrix
		duals *datastructure.DualVariables
	)
	if dual, ok := estimator.(*sensitivity.Dual); ok {
		sens, duals, err = dual.EstimateWithDuals(cost, assignment)
	} else {
		sens, err = estimator.Estimate(cost, assignment)
	}
	if err != nil {
		return nil, err
	}

	id := uuid.New().String()
	analysesTotal.WithLabelValues(method.String()).Inc()
	e.log.Info("sensitivity analysis completed",
		zap.String("analysisId", id),
		zap.Int("dim", cost.Dim()),
		zap.String("method", method.String()),
		zap.Float64("totalCost", assignment.TotalCost()),
		zap.Duration("duration", time.Since(start)))

	return &AnalysisResult{
		id:          id,
		method:      method,
		assignment:  assignment,
		sensitivity: sens,
		duals:       duals,
	}, nil
}

// CompareAllMethods solves once and fans the shared assignment out to
// every estimator concurrently.
func (e *Engine) CompareAllMethods(cost *datastructure.Matrix,
	params sensitivity.Params) (*ComparisonResult, error) {

	start := time.Now()
	if err := cost.Validate(); err != nil {
		return nil, err
	}

	assignment, err := e.solver.Solve(cost)
	if err != nil {
		return nil, err
	}

	comparator := sensitivity.NewComparator(params)
	results, err := comparator.CompareAll(cost, assignment)
	if err != nil {
		return nil, err
	}

	id := uuid.New().String()
	analysesTotal.WithLabelValues(pkg.ALL_METHODS.String()).Inc()
	e.log.Info("method comparison completed",
		zap.String("analysisId", id),
		zap.Int("dim", cost.Dim()),
		zap.Float64("totalCost", assignment.TotalCost()),
		zap.Duration("duration", time.Since(start)))

	return &ComparisonResult{
		id:         id,
		assignment: assignment,
		results:    results,
	}, nil
}
