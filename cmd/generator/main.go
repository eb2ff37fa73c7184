package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	da "github.com/lintang-b-s/assignx/pkg/datastructure"
	"github.com/lintang-b-s/assignx/pkg/logger"
	"go.uber.org/zap"
	"golang.org/x/exp/rand"
)

var (
	dim   = flag.Int("dim", 10, "dimension of each generated cost matrix")
	count = flag.Int("count", 1, "number of matrix files to generate")
	out   = flag.String("out", "./data", "output directory for the generated .bz2 files")
	seed  = flag.Int64("seed", 0, "random seed, 0 uses the current time")
)

func main() {
	flag.Parse()
	logger, err := logger.New()
	if err != nil {
		panic(err)
	}

	if err := os.MkdirAll(*out, 0o755); err != nil {
		panic(err)
	}

	s := *seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	rd := rand.New(rand.NewSource(uint64(s)))

	for i := 0; i < *count; i++ {
		m := da.NewRandomMatrix(*dim, rd)

		filename := filepath.Join(*out, fmt.Sprintf("cost_%dx%d_%03d.bz2", *dim, *dim, i))
		if err := m.WriteMatrixFile(filename); err != nil {
			panic(err)
		}

		if _, err := da.ReadMatrixFile(filename); err != nil {
			panic(err)
		}

		logger.Info("generated cost matrix", zap.String("file", filename),
			zap.Int("dim", *dim))
	}
}
