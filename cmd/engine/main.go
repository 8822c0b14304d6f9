package main

import (
	"context"
	"flag"

	"github.com/lintang-b-s/bimatch/pkg/http"
	"github.com/lintang-b-s/bimatch/pkg/http/usecases"
	"github.com/lintang-b-s/bimatch/pkg/logger"
	"github.com/lintang-b-s/bimatch/pkg/util"
	"go.uber.org/zap"
)

var (
	batchNumWorkers = flag.Int("batch_num_workers", 8, "number of workers used to solve batch matching requests")
	useRateLimit    = flag.Bool("use_rate_limit", false, "rate limit the http api")
)

func main() {
	flag.Parse()
	logger, err := logger.New()
	if err != nil {
		panic(err)
	}

	if err := util.ReadConfig(); err != nil {
		logger.Warn("no config file found, using defaults", zap.Error(err))
	}

	matcherService := usecases.NewMatcherService(logger, *batchNumWorkers)

	api := http.NewServer(logger)

	ctx, cleanup, err := NewContext()
	if err != nil {
		panic(err)
	}
	api.Use(ctx,
		logger, *useRateLimit, matcherService)

	signal := http.GracefulShutdown()

	logger.Info("bimatch Matching Engine Server Stopped", zap.String("signal", signal.String()))
	cleanup()
}

func NewContext() (context.Context, func(), error) {
	ctx, cancel := context.WithCancel(context.Background())
	cb := func() {
		cancel()
	}

	return ctx, cb, nil
}
