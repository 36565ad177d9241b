package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	httpadapter "github.com/EdenDigitalUK/ai-spin-wheel-public/internal/adapters/http"
	"github.com/EdenDigitalUK/ai-spin-wheel-public/internal/adapters/llm/gemini"
	"github.com/EdenDigitalUK/ai-spin-wheel-public/internal/adapters/llm/groq"
	"github.com/EdenDigitalUK/ai-spin-wheel-public/internal/app"
	"github.com/EdenDigitalUK/ai-spin-wheel-public/internal/config"
	"github.com/EdenDigitalUK/ai-spin-wheel-public/internal/lib/logger/sl"
	"github.com/EdenDigitalUK/ai-spin-wheel-public/internal/ports"
)

func main() {
	cfg, err := config.LoadServer()
	if err != nil {
		slog.Error("failed to load config", sl.Err(err))
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	completer, closeCompleter, err := newCompleter(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to init llm client", sl.Err(err))
		os.Exit(1)
	}
	defer closeCompleter()

	svc := app.NewOptionService(completer)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(httpadapter.RequestIDMiddleware())
	e.Use(httpadapter.LoggingMiddleware(logger))

	handler := httpadapter.NewHandler(svc, logger)
	handler.Register(e)

	go func() {
		logger.Info("starting server", "addr", cfg.HTTPAddr, "provider", completer.Provider())
		if err := e.Start(cfg.HTTPAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", sl.Err(err))
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", sl.Err(err))
	}
}

func newCompleter(ctx context.Context, cfg config.Server, logger *slog.Logger) (ports.Completer, func(), error) {
	switch cfg.LLMProvider {
	case gemini.ProviderName:
		c, err := gemini.NewClient(ctx, cfg.GeminiAPIKey, cfg.LLMModel, logger)
		if err != nil {
			return nil, nil, err
		}
		return c, func() { _ = c.Close() }, nil
	default:
		c := groq.NewClient(
			&http.Client{Timeout: cfg.LLMTimeout},
			cfg.GroqAPIKey,
			cfg.GroqBaseURL,
			cfg.LLMModel,
			logger,
		)
		return c, func() {}, nil
	}
}
