package main

import (
	"context"
	"log/slog"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/csebille-ai/opanoma-prod/internal/adapters/decks"
	httpadapter "github.com/csebille-ai/opanoma-prod/internal/adapters/http"
	"github.com/csebille-ai/opanoma-prod/internal/adapters/llm/openai"
	"github.com/csebille-ai/opanoma-prod/internal/adapters/mailing/mailerlite"
	"github.com/csebille-ai/opanoma-prod/internal/app"
	"github.com/csebille-ai/opanoma-prod/internal/config"
)

// stdRNG delegates to math/rand (auto-seeded, safe for concurrent use).
type stdRNG struct{}

func (stdRNG) Intn(n int) int { return rand.Intn(n) }

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	if cfg.MailerLiteAPIKey == "" {
		logger.Warn("MAILERLITE_API_KEY is not set, subscriptions will be rejected upstream")
	}

	completer := openai.NewClient(
		&http.Client{Timeout: cfg.LLMTimeout},
		cfg.OpenAIAPIKey,
		cfg.OpenAIBaseURL,
		logger,
	)
	mailingList := mailerlite.NewClient(
		&http.Client{Timeout: cfg.MailingTimeout},
		cfg.MailerLiteAPIKey,
		cfg.MailerLiteBaseURL,
		logger,
	)

	handler := httpadapter.NewHandler(
		app.NewInterpretService(completer, cfg.OpenAIModel, cfg.OpenAIMaxTokens, logger),
		app.NewSubscribeService(mailingList, cfg.MailerLiteGroupID, logger),
		app.NewDeckService(decks.NewEmbeddedStore(), stdRNG{}),
	)
	e := httpadapter.NewServer(handler, logger)

	// Graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("starting server", "addr", cfg.HTTPAddr, "model", cfg.OpenAIModel)
		if err := e.Start(cfg.HTTPAddr); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
}
