package sensitivity

import (
	"testing"

	da "github.com/lintang-b-s/assignx/pkg/datastructure"
	"golang.org/x/exp/rand"
)

func TestAuctionBidIncrements(t *testing.T) {
	cost := mustMatrix(t, [][]float64{{1, 2}, {3, 4}})

	auction := NewAuction(1.0)
	got, err := auction.Estimate(cost, nil)
	if err != nil {
		t.Fatalf("err: %v", err)
	}

	// person 0 bids on object 0 with gap (2-1)+eps, person 1 then bids on
	// object 1 with gap (5-4)+eps against the raised price of object 0.
	// the cells that never won a bid stay zero.
	assertMatrixEqual(t, [][]float64{{2, 0}, {0, 2}}, got)
}

func TestAuctionSingleCell(t *testing.T) {
	cost := mustMatrix(t, [][]float64{{9}})

	auction := NewAuction(1.0)
	got, err := auction.Estimate(cost, nil)
	if err != nil {
		t.Fatalf("err: %v", err)
	}

	// with one object the second-best collapses to the best, the bid is eps
	assertMatrixEqual(t, [][]float64{{1.0}}, got)
}

func TestAuctionAssignsSeparatedPreferences(t *testing.T) {
	auction := NewAuction(1.0)

	// person i is strictly cheapest on object i by a margin no price rise
	// can close, so every person wins its own object without a bidding war
	for n := 1; n <= 20; n++ {
		cost := da.NewMatrix(n)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				d := i - j
				if d < 0 {
					d = -d
				}
				cost.Set(i, j, 1+5*float64(d))
			}
		}

		_, assignment, rounds := auction.run(cost)
		if rounds != n {
			t.Fatalf("n=%v: expected %v bidding rounds, got %v", n, n, rounds)
		}
		for person, obj := range assignment {
			if obj != person {
				t.Fatalf("n=%v: person %v got object %v, want %v", n, person, obj, person)
			}
		}
	}
}

func TestAuctionNeverSharesObjects(t *testing.T) {
	rd := rand.New(rand.NewSource(31))
	auction := NewAuction(1.0)

	for n := 1; n <= 20; n++ {
		cost := da.NewRandomMatrix(n, rd)

		_, assignment, rounds := auction.run(cost)
		if rounds > n*n {
			t.Fatalf("n=%v: auction used %v rounds, cap is %v", n, rounds, n*n)
		}

		seen := make([]bool, n)
		for person, obj := range assignment {
			if obj == -1 {
				continue
			}
			if seen[obj] {
				t.Fatalf("n=%v: object %v assigned to two persons", n, obj)
			}
			seen[obj] = true
		}
	}
}

func TestAuctionEpsilonFallback(t *testing.T) {
	auction := NewAuction(-3.0)
	if auction.epsilon != 1.0 {
		t.Fatalf("non-positive epsilon must fall back to the default, got %v", auction.epsilon)
	}
}
