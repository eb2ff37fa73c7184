package datastructure

import (
	"github.com/lintang-b-s/assignx/pkg"

	"golang.org/x/exp/rand"
)

// NewRandomMatrix builds an n x n cost matrix with integer-valued costs
// drawn uniformly from [RANDOM_COST_MIN, RANDOM_COST_MAX].
func NewRandomMatrix(n int, rd *rand.Rand) *Matrix {
	m := NewMatrix(n)
	span := pkg.RANDOM_COST_MAX - pkg.RANDOM_COST_MIN + 1
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			m.data[i*n+j] = float64(pkg.RANDOM_COST_MIN + rd.Intn(span))
		}
	}
	return m
}
