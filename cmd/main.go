package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"solarhub/internal/app"
	"solarhub/internal/config"
	"solarhub/internal/logger"
)

func main() {
	cfg := config.Load()
	logger.SetLevel(cfg.LogLevel)

	application := app.NewApp(cfg)
	if err := application.Initialize(); err != nil {
		logger.Error("Init error: %v", err)
		os.Exit(1)
	}

	if err := application.Start(); err != nil {
		logger.Error("Start error: %v", err)
		os.Exit(1)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := application.Stop(ctx); err != nil {
		logger.Error("Stop error: %v", err)
		os.Exit(1)
	}
}
