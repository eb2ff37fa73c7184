package sensitivity

import (
	"testing"

	"github.com/lintang-b-s/assignx/pkg"
)

func TestCompareAllFixedOrder(t *testing.T) {
	cost := mustMatrix(t, [][]float64{{4, 1, 3}, {2, 0, 5}, {3, 2, 2}})
	assignment := mustSolve(t, cost)

	comparator := NewComparator(DefaultParams())
	results, err := comparator.CompareAll(cost, assignment)
	if err != nil {
		t.Fatalf("err: %v", err)
	}

	wantOrder := []string{"Basic", "Dual-based", "Auction", "Geometric", "Reduced Cost", "Perturbation"}
	if len(results) != len(wantOrder) {
		t.Fatalf("expected %v results, got %v", len(wantOrder), len(results))
	}

	for k, want := range wantOrder {
		if results[k].GetDisplayName() != want {
			t.Fatalf("slot %v: expected %q, got %q", k, want, results[k].GetDisplayName())
		}
		sens := results[k].GetSensitivity()
		if sens == nil || sens.Dim() != cost.Dim() {
			t.Fatalf("%v: sensitivity matrix missing or wrong shape", want)
		}
	}

	if _, ok := results.Get("Reduced Cost"); !ok {
		t.Fatal("lookup by display name failed")
	}
}

func TestCompareAllPropagatesEstimatorError(t *testing.T) {
	cost := mustMatrix(t, [][]float64{{1, 2}, {3, 4}})

	comparator := NewComparator(DefaultParams())
	if _, err := comparator.CompareAll(cost, nil); err == nil {
		t.Fatal("expected error when the shared assignment is missing")
	}
}

func TestNewEstimator(t *testing.T) {
	methods := []pkg.SensitivityMethod{
		pkg.BASIC, pkg.DUAL_BASED, pkg.AUCTION_BASED,
		pkg.GEOMETRIC_BOUNDS, pkg.REDUCED_COST, pkg.PERTURBATION_THEORY,
	}

	for _, method := range methods {
		estimator, err := NewEstimator(method, DefaultParams())
		if err != nil {
			t.Fatalf("%v: err: %v", method, err)
		}
		if estimator.Method() != method {
			t.Fatalf("expected method %v, got %v", method, estimator.Method())
		}
	}

	if _, err := NewEstimator(pkg.ALL_METHODS, DefaultParams()); err == nil {
		t.Fatal("all_methods is not a single estimator, expected error")
	}
	if _, err := NewEstimator(pkg.UNKNOWN_METHOD, DefaultParams()); err == nil {
		t.Fatal("expected error for unknown method")
	}
}
