package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"cinema/config"
	"cinema/registry"
	"cinema/service"
	"cinema/tracing"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load(os.Args[1:], ".env")
	if err != nil {
		logrus.WithError(err).Fatal("Could not load config")
	}

	log.Init(cfg.Level())

	traceProvider, err := tracing.ConfigureTraceProvider(cfg.JaegerEndpoint)
	if err != nil {
		panic(err)
	}
	defer func() {
		if err := traceProvider.Shutdown(context.Background()); err != nil {
			logrus.WithError(err).Error("Could not shut down trace provider")
		}
	}()

	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr: cfg.RedisAddr,
		})
		defer redisClient.Close()
	}

	opts := service.Options{
		HTTPAddr:    cfg.HTTPAddr,
		RedisClient: redisClient,
	}
	if cfg.Simulate {
		opts.SimulationOutput = os.Stdout
	}

	svc, err := service.New(registry.InitShared(cfg.Capacity), opts)
	if err != nil {
		panic(err)
	}

	err = svc.Run(ctx)
	if err != nil {
		panic(err)
	}

	if err := svc.Summary(os.Stdout); err != nil {
		logrus.WithError(err).Error("Could not print summary")
	}
}
