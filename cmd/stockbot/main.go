package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/robfig/cron/v3"

	"github.com/Danypoz1986/StockBot/internal/logger"
	"github.com/Danypoz1986/StockBot/internal/trace"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to configuration file")
	once := flag.Bool("once", false, "run a single cycle and exit")
	flag.Parse()

	if err := initializeSystem(); err != nil {
		fmt.Fprintf(os.Stderr, "startup failed: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	defer func() { _ = trace.Shutdown(context.Background()) }()

	cfg, err := loadConfig(ctx, *configPath)
	if err != nil {
		os.Exit(1)
	}

	compressOldLogs(ctx)

	orch, closeStore, err := buildOrchestrator(ctx, cfg)
	if err != nil {
		logger.ErrorWithErr(ctx, "Failed to build orchestrator", err)
		os.Exit(1)
	}
	if closeStore != nil {
		defer func() { _ = closeStore() }()
	}

	if *once {
		if _, err := orch.Run(ctx); err != nil {
			logger.ErrorWithErr(ctx, "Run failed", err)
			os.Exit(1)
		}
		return
	}

	c := cron.New()
	_, err = c.AddFunc(cfg.Schedule.Cron, func() {
		if _, err := orch.Run(ctx); err != nil {
			logger.ErrorWithErr(ctx, "Scheduled run failed", err)
		}
	})
	if err != nil {
		logger.ErrorWithErr(ctx, "Invalid cron schedule", err, "cron", cfg.Schedule.Cron)
		os.Exit(1)
	}
	c.Start()
	logger.Info(ctx, "Bot started", "schedule", cfg.Schedule.Cron, "policy", cfg.Policy.Mode)

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	<-sigc

	logger.Info(ctx, "Shutting down...")
	stopCtx := c.Stop()
	<-stopCtx.Done()
}
