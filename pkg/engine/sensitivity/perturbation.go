package sensitivity

import (
	"math"

	"github.com/lintang-b-s/assignx/pkg"
	da "github.com/lintang-b-s/assignx/pkg/datastructure"

	"gonum.org/v1/gonum/mat"
)

type Perturbation struct {
	delta float64
}

func NewPerturbation(delta float64) *Perturbation {
	if delta <= 0 {
		delta = pkg.DEFAULT_PERTURBATION_DELTA
	}
	return &Perturbation{delta: delta}
}

func (p *Perturbation) Method() pkg.SensitivityMethod {
	return pkg.PERTURBATION_THEORY
}

/*
Estimate nudges every cell by delta and measures how much the matrix as a
whole reacts, via four norm-based terms each divided by delta:

 1. trace change |tr(C') - tr(C)|, nonzero only on the diagonal
 2. Frobenius norm of the difference matrix ||C' - C||_F
 3. spectral norm of the difference matrix, the largest singular value
 4. condition number change |cond(C') - cond(C)| with cond = s_max/s_min

the combined score is (0.3*frobenius + 0.3*spectral + 0.2*trace +
0.2*cond) * 100. whenever either condition number is non-finite (singular
matrices, failed factorizations) the condition term contributes zero
instead of poisoning the score; the same applies to a failed SVD in the
spectral term. the most expensive estimator here: every cell pays for a
fresh SVD of the perturbed matrix.
*/
func (p *Perturbation) Estimate(cost *da.Matrix, _ *da.Assignment) (*da.Matrix, error) {
	if err := cost.Validate(); err != nil {
		return nil, err
	}
	n := cost.Dim()

	originalTrace := cost.Trace()
	originalCond := conditionNumber(toDense(cost))

	sensitivity := da.NewMatrix(n)
	diff := mat.NewDense(n, n, nil)

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			pert := cost.Clone()
			pert.Set(i, j, pert.At(i, j)+p.delta)

			traceSensitivity := math.Abs(pert.Trace()-originalTrace) / p.delta

			diff.Zero()
			diff.Set(i, j, p.delta)

			frobeniusSensitivity := mat.Norm(diff, 2) / p.delta

			spectralSensitivity := 0.0
			var svd mat.SVD
			if ok := svd.Factorize(diff, mat.SVDThin); ok {
				spectralSensitivity = svd.Values(nil)[0] / p.delta
			}

			condSensitivity := 0.0
			perturbedCond := conditionNumber(toDense(pert))
			if finite(originalCond) && finite(perturbedCond) {
				condSensitivity = math.Abs(perturbedCond-originalCond) / p.delta
			}

			combined := (0.3*frobeniusSensitivity +
				0.3*spectralSensitivity +
				0.2*traceSensitivity +
				0.2*condSensitivity) * 100

			sensitivity.Set(i, j, combined)
		}
	}

	return sensitivity, nil
}

// conditionNumber returns s_max/s_min from a thin SVD, or +Inf when the
// matrix is numerically singular or the factorization does not converge.
func conditionNumber(a *mat.Dense) float64 {
	var svd mat.SVD
	ok := svd.Factorize(a, mat.SVDThin)
	if !ok {
		return math.Inf(1)
	}
	values := svd.Values(nil)
	sigmaMax := values[0]
	sigmaMin := values[len(values)-1]
	// an exactly singular matrix rarely factorizes to an exact zero, so
	// rank-deficiency is read off a relative threshold
	if sigmaMin <= sigmaMax*1e-12 {
		return math.Inf(1)
	}
	return sigmaMax / sigmaMin
}

func toDense(m *da.Matrix) *mat.Dense {
	n := m.Dim()
	d := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			d.Set(i, j, m.At(i, j))
		}
	}
	return d
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
