package main

import (
	"context"
	"flag"

	"github.com/lintang-b-s/assignx/pkg/engine"
	"github.com/lintang-b-s/assignx/pkg/http"
	"github.com/lintang-b-s/assignx/pkg/http/usecases"
	"github.com/lintang-b-s/assignx/pkg/logger"
	"github.com/lintang-b-s/assignx/pkg/util"
	"go.uber.org/zap"
)

var (
	useRateLimit = flag.Bool("rate_limit", false, "enable per client rate limiting on the rest api")
)

func main() {
	flag.Parse()
	logger, err := logger.New()
	if err != nil {
		panic(err)
	}

	if err := util.ReadConfig(); err != nil {
		logger.Info("no config file found, using defaults", zap.Error(err))
	}

	analysisEngine := engine.NewEngine(logger)

	api := http.NewServer(logger)

	analysisService := usecases.NewAnalysisService(logger, analysisEngine)

	ctx, cleanup, err := NewContext()
	if err != nil {
		panic(err)
	}
	api.Use(ctx,
		logger, *useRateLimit, analysisService, analysisService)

	signal := http.GracefulShutdown()

	logger.Info("assignx Analysis Server Stopped", zap.String("signal", signal.String()))
	cleanup()
}

func NewContext() (context.Context, func(), error) {
	ctx, cancel := context.WithCancel(context.Background())
	cb := func() {
		cancel()
	}

	return ctx, cb, nil
}
