package sensitivity

import (
	"testing"

	da "github.com/lintang-b-s/assignx/pkg/datastructure"
	"golang.org/x/exp/rand"
)

func TestBasicEstimate(t *testing.T) {
	testCases := []struct {
		name string
		rows [][]float64
		want [][]float64
	}{
		{
			name: "symmetric two by two",
			rows: [][]float64{{0, 5}, {5, 0}},
			want: [][]float64{{0, 5}, {5, 0}},
		},
		{
			name: "duplicate row minima share the rank",
			rows: [][]float64{{1, 1}, {2, 3}},
			want: [][]float64{{0, 0}, {0, 1}},
		},
		{
			name: "single cell has no alternative",
			rows: [][]float64{{42}},
			want: [][]float64{{0}},
		},
	}

	basic := NewBasic()
	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			got, err := basic.Estimate(mustMatrix(t, tt.rows), nil)
			if err != nil {
				t.Fatalf("err: %v", err)
			}
			assertMatrixEqual(t, tt.want, got)
		})
	}
}

func TestBasicNonNegative(t *testing.T) {
	rd := rand.New(rand.NewSource(11))
	basic := NewBasic()

	for trial := 0; trial < 20; trial++ {
		m := da.NewRandomMatrix(6, rd)
		got, err := basic.Estimate(m, nil)
		if err != nil {
			t.Fatalf("err: %v", err)
		}
		for i := 0; i < got.Dim(); i++ {
			for j := 0; j < got.Dim(); j++ {
				if got.At(i, j) < 0 {
					t.Fatalf("sensitivity must be non-negative, got %v at (%v, %v)", got.At(i, j), i, j)
				}
			}
		}
	}
}
