package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"commabot/internal/config"
	"commabot/internal/examples"
	"commabot/internal/health"
	"commabot/internal/logger"
	"commabot/internal/quiz"
	"commabot/internal/storage"
	"commabot/internal/telegram"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	if err := logger.Init(cfg.Environment, cfg.Debug); err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()
	zl := logger.Get()

	store := storage.Open(cfg.DataFile, zl)
	bank := examples.LoadFile(cfg.ExamplesFile)
	engine := quiz.New(store, bank, zl, cfg.AvoidImmediateRepeat)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go store.AutoSave(ctx, cfg.SaveInterval)
	go health.New(engine, zl).Run(ctx, cfg.HealthPort)

	bot, err := telegram.NewBot(cfg.Token, engine, bank, zl, cfg.Debug, cfg.PollTimeout)
	if err != nil {
		zl.Fatal("cannot create bot", zap.Error(err))
	}

	zl.Info("bot starting",
		zap.String("environment", cfg.Environment),
		zap.Int("examples", bank.Count()),
		zap.Int("users", store.Len()))

	bot.Run(ctx)

	// Final flush on normal termination; in-memory state is authoritative
	// until this succeeds.
	store.Flush()
	zl.Info("bot stopped")
}
