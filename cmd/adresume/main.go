package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/holeops/adpause/internal/app"
	"github.com/holeops/adpause/internal/config"
	"github.com/holeops/adpause/internal/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "adresume failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.Init(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Close()

	log.InfoObj("adresume starting", "config", map[string]any{
		"pihole_url":   cfg.PiholeURL,
		"journal_type": cfg.JournalType,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg, log)
	if err != nil {
		log.ErrorObj("failed to initialize adresume", "error", err)
		return err
	}
	defer a.Close()

	if err := a.Resume(ctx); err != nil {
		return fmt.Errorf("resume: %w", err)
	}

	return nil
}
