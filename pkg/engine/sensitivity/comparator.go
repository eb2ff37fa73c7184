package sensitivity

import (
	"time"

	da "github.com/lintang-b-s/assignx/pkg/datastructure"
	"github.com/lintang-b-s/assignx/pkg/util"

	"golang.org/x/sync/errgroup"
)

// Comparator runs every estimator against the same cost matrix and the
// same shared optimal assignment.
type Comparator struct {
	estimators []Estimator
}

func NewComparator(params Params) *Comparator {
	return &Comparator{estimators: NewEstimators(params)}
}

/*
CompareAll fans the estimators out concurrently, one goroutine per method
writing only its own result slot, and assembles the output in the fixed
comparison order (Basic, Dual-based, Auction, Geometric, Reduced Cost,
Perturbation) regardless of completion order. estimators are pure and the
inputs are read-only, so no synchronization beyond the errgroup join is
needed. the first estimator error cancels the comparison.
*/
func (c *Comparator) CompareAll(cost *da.Matrix, assignment *da.Assignment) (da.MethodResults, error) {
	if err := cost.Validate(); err != nil {
		return nil, err
	}

	results := make([]da.MethodResult, len(c.estimators))

	g := errgroup.Group{}
	for slot, estimator := range c.estimators {
		g.Go(func() error {
			start := time.Now()
			sens, err := estimator.Estimate(cost, assignment)
			if err != nil {
				return err
			}
			elapsedMs := util.RoundFloat(float64(time.Since(start).Microseconds())/1000.0, 3)
			results[slot] = da.NewMethodResult(estimator.Method().String(),
				estimator.Method().DisplayName(), sens, elapsedMs)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return da.MethodResults(results), nil
}
