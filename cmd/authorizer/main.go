package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/kevinwkt/authenticator/internal/authorizer"
	"github.com/kevinwkt/authenticator/internal/config"
	"github.com/kevinwkt/authenticator/internal/logging"
	"github.com/kevinwkt/authenticator/internal/stream"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, relying on system env variables")
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.Logging)

	engine := authorizer.NewEngine()
	for _, rule := range buildRules(cfg.Rules) {
		engine.AddRule(rule)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	processor := stream.New(engine, logger)
	if err := processor.Run(ctx, os.Stdin, os.Stdout); err != nil {
		if errors.Is(err, context.Canceled) {
			logger.Info("interrupted, stopping")
			return
		}
		logger.Error("request stream failed", "error", err)
		os.Exit(1)
	}
}

func buildRules(cfg config.RulesConfig) []authorizer.Rule {
	return []authorizer.Rule{
		authorizer.ActiveCardRule{},
		authorizer.AvailableLimitRule{},
		authorizer.NewFrequencyRule(cfg.FrequencyWindow, cfg.MaxFrequency),
		authorizer.NewDoubledRule(cfg.RepeatWindow, cfg.MaxRepetition),
	}
}
