package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"keyglow/config"
)

func main() {
	// Setup logging
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	configPath, err := config.ConfigPath()
	if err != nil {
		slog.Error("Failed to resolve config path", "error", err)
		os.Exit(1)
	}

	agent, err := NewAgent(configPath)
	if err != nil {
		slog.Error("Failed to create agent", "error", err)
		os.Exit(1)
	}

	// Setup signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := agent.Run(ctx); err != nil {
		slog.Error("Agent error", "error", err)
		os.Exit(1)
	}

	slog.Info("keyglow stopped")
}
