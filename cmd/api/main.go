package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"

	"github.com/octobees/prompt-relay/api/internal/config"
	"github.com/octobees/prompt-relay/api/internal/handler"
	"github.com/octobees/prompt-relay/api/internal/logger"
	"github.com/octobees/prompt-relay/api/internal/model"
	"github.com/octobees/prompt-relay/api/internal/router"
	"github.com/octobees/prompt-relay/api/internal/search"
	"github.com/octobees/prompt-relay/api/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zl, err := logger.NewLogger(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer zl.Sync() //nolint:errcheck

	provider, err := search.NewProvider(cfg.Search, nil)
	if err != nil {
		zl.Fatal("failed to create search provider", zap.Error(err))
	}
	runner, err := model.NewCommandRunner(cfg.ModelCommand)
	if err != nil {
		zl.Fatal("failed to create model runner", zap.Error(err))
	}
	relayService, err := service.NewRelayService(provider, runner)
	if err != nil {
		zl.Fatal("failed to create relay service", zap.Error(err))
	}

	e := router.New(cfg, zl, router.Handlers{
		Ask:    handler.NewAskHandler(relayService),
		Health: handler.NewHealthHandler(cfg.Search.Provider),
	})

	zl.Info("starting prompt relay",
		zap.String("port", cfg.Port),
		zap.String("search_provider", cfg.Search.Provider),
		zap.Strings("model_command", cfg.ModelCommand),
		zap.String("allowed_origin", cfg.AllowedOrigin),
	)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- e.Start(":" + cfg.Port)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		zl.Info("shutting down", zap.String("signal", sig.String()))
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Fatal("server error", zap.Error(err))
		}
		return
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		zl.Error("graceful shutdown failed", zap.Error(err))
	}
}
