package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/katiamach/weather-facade-api/internal/api"
	"github.com/katiamach/weather-facade-api/internal/config"
	"github.com/katiamach/weather-facade-api/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal(fmt.Errorf("failed to load config: %v", err))
	}

	if err := logger.SetLevel(cfg.LogLevel); err != nil {
		logger.Fatal(fmt.Errorf("failed to set log level: %v", err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err = api.RunAPI(ctx, cfg)
	if err != nil {
		logger.Fatal(fmt.Errorf("failed to run weather api: %v", err))
	}
}
