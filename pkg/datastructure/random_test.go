package datastructure

import (
	"math"
	"testing"

	"github.com/lintang-b-s/assignx/pkg"

	"golang.org/x/exp/rand"
)

func TestNewRandomMatrixBounds(t *testing.T) {
	rd := rand.New(rand.NewSource(42))

	for trial := 0; trial < 10; trial++ {
		m := NewRandomMatrix(9, rd)
		if m.Dim() != 9 {
			t.Fatalf("want dim 9, got %d", m.Dim())
		}
		for i := 0; i < m.Dim(); i++ {
			for j := 0; j < m.Dim(); j++ {
				v := m.At(i, j)
				if v < float64(pkg.RANDOM_COST_MIN) || v > float64(pkg.RANDOM_COST_MAX) {
					t.Fatalf("cost %v at (%d,%d) out of [%d, %d]",
						v, i, j, pkg.RANDOM_COST_MIN, pkg.RANDOM_COST_MAX)
				}
				if v != math.Trunc(v) {
					t.Fatalf("cost %v at (%d,%d) is not integral", v, i, j)
				}
			}
		}
	}
}

func TestNewRandomMatrixSeeded(t *testing.T) {
	a := NewRandomMatrix(5, rand.New(rand.NewSource(7)))
	b := NewRandomMatrix(5, rand.New(rand.NewSource(7)))

	for i := 0; i < 5; i++ {
		for j := 0; j < 5; j++ {
			if a.At(i, j) != b.At(i, j) {
				t.Fatalf("same seed diverged at (%d,%d): %v vs %v", i, j, a.At(i, j), b.At(i, j))
			}
		}
	}
}
