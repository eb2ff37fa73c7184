package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/lintang-b-s/assignx/pkg/concurrent"
	da "github.com/lintang-b-s/assignx/pkg/datastructure"
	"github.com/lintang-b-s/assignx/pkg/engine/sensitivity"
	log "github.com/lintang-b-s/assignx/pkg/logger"
	"github.com/lintang-b-s/assignx/pkg/solver"
	"github.com/lintang-b-s/assignx/pkg/util"
	"golang.org/x/exp/rand"
)

var (
	trials     = flag.Int("trials", 50, "number of random matrices per dimension")
	maxDim     = flag.Int("max_dim", 30, "largest matrix dimension to benchmark")
	step       = flag.Int("step", 5, "dimension step between benchmark rounds")
	numWorkers = flag.Int("workers", 8, "number of concurrent benchmark workers")
)

func main() {
	flag.Parse()
	logger, err := log.New()
	if err != nil {
		panic(err)
	}

	h := solver.NewHungarian()
	params := sensitivity.DefaultParams()
	numMethods := len(sensitivity.NewEstimators(params))

	type benchParam struct {
		dim   int
		trial int
	}
	newBenchParam := func(dim, trial int) benchParam {
		return benchParam{dim, trial}
	}

	fout, err := os.Create("allmethods_benchmark.csv")
	if err != nil {
		panic(err)
	}
	defer fout.Close()

	lock := sync.Mutex{}
	sums := make(map[int][]float64)
	counts := make(map[int]int)

	runBench := func(p benchParam) any {
		rd := rand.New(rand.NewSource(uint64(time.Now().UnixNano()) + uint64(p.dim*10000+p.trial)))
		cost := da.NewRandomMatrix(p.dim, rd)

		assignment, err := h.Solve(cost)
		if err != nil {
			panic(err)
		}

		elapsed := make([]float64, 0, numMethods)
		for _, estimator := range sensitivity.NewEstimators(params) {
			start := time.Now()
			if _, err := estimator.Estimate(cost, assignment); err != nil {
				panic(err)
			}
			elapsed = append(elapsed, float64(time.Since(start).Microseconds())/1000.0)
		}

		lock.Lock()
		if _, ok := sums[p.dim]; !ok {
			sums[p.dim] = make([]float64, numMethods)
		}
		for k, ms := range elapsed {
			sums[p.dim][k] += ms
		}
		counts[p.dim]++
		lock.Unlock()

		logger.Sugar().Infof("done benchmark trial, dim: %v, trial: %v", p.dim, p.trial)

		return nil
	}

	totalJobs := 0
	for dim := *step; dim <= *maxDim; dim += *step {
		totalJobs += *trials
	}

	workers := concurrent.NewWorkerPool[benchParam, any](util.MinInt(*numWorkers, totalJobs), totalJobs)

	for dim := *step; dim <= *maxDim; dim += *step {
		for trial := 0; trial < *trials; trial++ {
			workers.AddJob(newBenchParam(dim, trial))
		}
	}

	workers.Close()
	workers.Start(runBench)
	workers.Wait()

	writer := csv.NewWriter(fout)
	defer writer.Flush()

	header := []string{"dim"}
	for _, estimator := range sensitivity.NewEstimators(params) {
		header = append(header, estimator.Method().DisplayName())
	}
	if err := writer.Write(header); err != nil {
		panic(err)
	}

	for dim := *step; dim <= *maxDim; dim += *step {
		if counts[dim] == 0 {
			panic(fmt.Errorf("no benchmark results for dim %v", dim))
		}
		rec := []string{strconv.Itoa(dim)}
		for _, total := range sums[dim] {
			rec = append(rec, strconv.FormatFloat(total/float64(counts[dim]), 'f', 4, 64))
		}
		if err := writer.Write(rec); err != nil {
			panic(err)
		}
	}

	logger.Sugar().Infof("wrote allmethods_benchmark.csv, %v trials per dimension", *trials)
}
