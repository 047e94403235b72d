package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/mariam168/smart-shop-sub001/config"
	"github.com/mariam168/smart-shop-sub001/logger"
	"github.com/mariam168/smart-shop-sub001/server"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ %v", err)
	}

	zlog, err := logger.New(cfg.Production())
	if err != nil {
		log.Fatalf("❌ logger: %v", err)
	}
	defer zlog.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	zlog.Info("starting application", zap.String("env", cfg.Env), zap.String("port", cfg.Port))
	if err := server.Run(ctx, cfg, zlog); err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}
