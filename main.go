package main

import (
	"time"

	"github.com/lintang-b-s/assignx/pkg/datastructure"
	"golang.org/x/exp/rand"
)

func main() {
	rd := rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	m := datastructure.NewRandomMatrix(16, rd)
	err := m.WriteMatrixFile("./data/sample_cost_16x16.bz2")
	if err != nil {
		panic(err)
	}
	_, err = datastructure.ReadMatrixFile("./data/sample_cost_16x16.bz2")
	if err != nil {
		panic(err)
	}

}
