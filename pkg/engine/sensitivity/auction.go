package sensitivity

import (
	"math"

	"github.com/lintang-b-s/assignx/pkg"
	da "github.com/lintang-b-s/assignx/pkg/datastructure"
)

type Auction struct {
	epsilon float64
}

func NewAuction(epsilon float64) *Auction {
	if epsilon <= 0 {
		epsilon = pkg.DEFAULT_AUCTION_EPSILON
	}
	return &Auction{epsilon: epsilon}
}

func (a *Auction) Method() pkg.SensitivityMethod {
	return pkg.AUCTION_BASED
}

/*
Estimate runs a forward auction over the cost matrix and records each
winning bid increment as the sensitivity of the won cell. persons bid for
objects with benefit -(c[person,obj] + price[obj]); the increment
(best - secondBest) + epsilon is the competitive gap the assignment can
absorb before the person would switch objects. prices only grow, each bid
grows the winning object's price by at least epsilon, and the loop is
capped at n^2 bidding rounds. cells that never win a bid stay zero, so
the output is sparse on purpose: the auction only prices the pairs it
actually fought over.

references:
1. Bertsekas, D.P. (1988) "The auction algorithm: A distributed relaxation
method for the assignment problem," Annals of Operations Research, 14(1),
pp. 105-123. Available at: https://doi.org/10.1007/BF02186476.
*/
func (a *Auction) Estimate(cost *da.Matrix, _ *da.Assignment) (*da.Matrix, error) {
	if err := cost.Validate(); err != nil {
		return nil, err
	}
	sensitivity, _, _ := a.run(cost)
	return sensitivity, nil
}

// run executes the bidding loop and also reports the final person->object
// assignment and the number of bidding rounds spent.
func (a *Auction) run(cost *da.Matrix) (*da.Matrix, []int, int) {
	n := cost.Dim()

	prices := make([]float64, n)
	assignment := make([]int, n)        // person -> object
	reverseAssignment := make([]int, n) // object -> person
	for i := 0; i < n; i++ {
		assignment[i] = -1
		reverseAssignment[i] = -1
	}

	sensitivity := da.NewMatrix(n)
	maxIterations := n * n
	rounds := 0

	for iteration := 0; iteration < maxIterations; iteration++ {
		person := -1
		for i := 0; i < n; i++ {
			if assignment[i] == -1 {
				person = i
				break
			}
		}
		if person == -1 {
			break
		}
		rounds++

		// minimizing cost, so the benefit is the negated price-adjusted cost.
		// ties keep the first best object; a duplicated best value makes the
		// second-best equal to the best, collapsing the bid to epsilon.
		bestObj := 0
		bestBenefit := math.Inf(-1)
		secondBestBenefit := math.Inf(-1)
		for j := 0; j < n; j++ {
			benefit := -(cost.At(person, j) + prices[j])
			if benefit > bestBenefit {
				secondBestBenefit = bestBenefit
				bestBenefit = benefit
				bestObj = j
			} else if benefit > secondBestBenefit {
				secondBestBenefit = benefit
			}
		}
		if n == 1 {
			secondBestBenefit = bestBenefit
		}

		bidIncrement := bestBenefit - secondBestBenefit + a.epsilon
		sensitivity.Set(person, bestObj, bidIncrement)

		if prev := reverseAssignment[bestObj]; prev != -1 {
			assignment[prev] = -1
		}
		assignment[person] = bestObj
		reverseAssignment[bestObj] = person
		prices[bestObj] += bidIncrement
	}

	return sensitivity, assignment, rounds
}
