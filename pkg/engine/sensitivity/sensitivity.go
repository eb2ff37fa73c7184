package sensitivity

import (
	"errors"

	"github.com/lintang-b-s/assignx/pkg"
	da "github.com/lintang-b-s/assignx/pkg/datastructure"
	"github.com/lintang-b-s/assignx/pkg/util"
)

var (
	ErrUnknownMethod      = errors.New("unknown sensitivity method")
	ErrAssignmentMismatch = errors.New("assignment does not match cost matrix dimension")
)

/*
Estimator scores every cell of a cost matrix with how much that cell can
change before the structure of the optimal assignment is threatened.
implementations are pure: they never mutate the cost matrix or the
assignment and always return a freshly allocated matrix, so a single
estimator value is safe to share across goroutines.

the assignment argument is the optimal matching of the cost matrix,
computed once by the caller and shared between estimators. methods that
derive their score without it (basic, auction, geometric, perturbation)
accept nil.
*/
type Estimator interface {
	Method() pkg.SensitivityMethod
	Estimate(cost *da.Matrix, assignment *da.Assignment) (*da.Matrix, error)
}

// Params are the estimator tunables. non-positive values fall back to
// the package defaults at construction time.
type Params struct {
	epsilon float64 // auction bid slack
	delta   float64 // perturbation step
}

func NewParams(epsilon, delta float64) Params {
	return Params{epsilon: epsilon, delta: delta}
}

func DefaultParams() Params {
	return NewParams(pkg.DEFAULT_AUCTION_EPSILON, pkg.DEFAULT_PERTURBATION_DELTA)
}

func (p Params) GetEpsilon() float64 {
	return p.epsilon
}

func (p Params) GetDelta() float64 {
	return p.delta
}

// NewEstimators builds one estimator per method, in comparison order.
func NewEstimators(params Params) []Estimator {
	return []Estimator{
		NewBasic(),
		NewDual(),
		NewAuction(params.GetEpsilon()),
		NewGeometric(),
		NewReducedCost(),
		NewPerturbation(params.GetDelta()),
	}
}

// NewEstimator builds the estimator for a single method.
func NewEstimator(method pkg.SensitivityMethod, params Params) (Estimator, error) {
	switch method {
	case pkg.BASIC:
		return NewBasic(), nil
	case pkg.DUAL_BASED:
		return NewDual(), nil
	case pkg.AUCTION_BASED:
		return NewAuction(params.GetEpsilon()), nil
	case pkg.GEOMETRIC_BOUNDS:
		return NewGeometric(), nil
	case pkg.REDUCED_COST:
		return NewReducedCost(), nil
	case pkg.PERTURBATION_THEORY:
		return NewPerturbation(params.GetDelta()), nil
	default:
		return nil, util.WrapErrorf(ErrUnknownMethod, util.ErrBadParamInput,
			"unknown sensitivity method %q", method.String())
	}
}

func checkAssignment(cost *da.Matrix, assignment *da.Assignment) error {
	if assignment == nil || assignment.Len() != cost.Dim() {
		return util.WrapErrorf(ErrAssignmentMismatch, util.ErrInternalServerError,
			"estimator needs an assignment of length %d", cost.Dim())
	}
	return nil
}
