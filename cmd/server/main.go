package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"boxy-backend/internal/config"
	"boxy-backend/internal/handlers"
	"boxy-backend/internal/logging"
	"boxy-backend/internal/router"
	"boxy-backend/internal/services"
	"boxy-backend/internal/web"
)

func main() {
	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()

	// ──── Step 2: Logger ────
	logger, err := logging.New(cfg.IsProduction(), cfg.LogLevel)
	if err != nil {
		log.Fatalf("✗ Logger initialization failed: %v", err)
	}

	logger.Info("🚀 Starting Boxy.ai", zap.String("env", cfg.Env))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = run(ctx, cfg, logger)
	stop()

	if err != nil {
		logger.Error("Server error", zap.Error(err))
	}
	logger.Sync()
	if err != nil {
		os.Exit(1)
	}
}

// run serves until ctx is cancelled or the listener fails. Deferred cleanup
// always runs before it returns.
func run(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	// ──── Step 3: Initialize Gemini Client ────
	var chatHandler *handlers.ChatHandler
	if cfg.GeminiAPIKey == "" {
		logger.Warn("✗ GEMINI_API_KEY not set, chat requests will fail until it is configured")
		chatHandler = handlers.NewChatHandler(nil, logger)
	} else {
		geminiService, err := services.NewGeminiService(cfg.GeminiAPIKey, services.GeminiOptions{
			Model:       cfg.GeminiModel,
			Temperature: cfg.GeminiTemperature,
			Timeout:     cfg.GeminiTimeout,
		}, logger)
		if err != nil {
			return fmt.Errorf("gemini client initialization failed: %w", err)
		}
		defer geminiService.Close()
		chatHandler = handlers.NewChatHandler(geminiService, logger)
		logger.Info("✓ Gemini client initialized", zap.String("model", cfg.GeminiModel))
	}

	// ──── Step 4: Templates & Handlers ────
	renderer, err := web.NewRenderer()
	if err != nil {
		return fmt.Errorf("template parsing failed: %w", err)
	}

	r := router.New(
		logger,
		handlers.NewPageHandler(renderer, logger),
		chatHandler,
		handlers.NewGameHandler(),
		handlers.NewThemeHandler(),
		cfg.GeminiAPIKey != "",
		cfg.AllowedOrigin,
	)

	// ──── Step 5: Start HTTP Server ────
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.GeminiTimeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("✓ Boxy.ai ready", zap.String("url", "http://localhost:"+cfg.Port))
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	// Graceful shutdown
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
