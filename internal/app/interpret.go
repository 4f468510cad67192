package app

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/csebille-ai/opanoma-prod/internal/domain"
	"github.com/csebille-ai/opanoma-prod/internal/ports"
)

const (
	upstreamErrorPrefix  = "Erreur OpenAI : "
	unknownUpstreamError = "inconnue"
	// ConnectionErrorMessage is reported when the completion API could not
	// be reached or its answer could not be read.
	ConnectionErrorMessage = "Erreur lors de la connexion à OpenAI."
)

// InterpretService turns a draw into an interpretation through a Completer.
// It holds no mutable state and is safe for concurrent use.
type InterpretService struct {
	completer ports.Completer
	model     string
	maxTokens int
	logger    *slog.Logger
}

func NewInterpretService(c ports.Completer, model string, maxTokens int, logger *slog.Logger) *InterpretService {
	return &InterpretService{
		completer: c,
		model:     model,
		maxTokens: maxTokens,
		logger:    logger,
	}
}

// CompletionRequest builds the single-message request sent for a draw.
func (s *InterpretService) CompletionRequest(d domain.DrawRequest) ports.CompletionRequest {
	return ports.CompletionRequest{
		Model:     s.model,
		Messages:  []ports.Message{{Role: "user", Content: domain.BuildPrompt(d)}},
		MaxTokens: s.maxTokens,
	}
}

// Interpret makes exactly one completion call for the draw. The returned
// error is non-nil only when the draw is invalid, in which case nothing was
// sent. Upstream and transport failures come back inside the result.
func (s *InterpretService) Interpret(ctx context.Context, d domain.DrawRequest) (domain.InterpretationResult, error) {
	if err := d.Validate(); err != nil {
		return domain.InterpretationResult{}, err
	}

	start := time.Now()
	text, err := s.completer.Complete(ctx, s.CompletionRequest(d))
	latency := time.Since(start).Milliseconds()

	if err == nil {
		s.logger.InfoContext(ctx, "interpretation ready",
			"cards", len(d.Cards), "theme", d.Theme, "latency_ms", latency)
		return domain.InterpretationResult{Text: text}, nil
	}

	var upstream *domain.UpstreamError
	if errors.As(err, &upstream) {
		msg := upstream.Message
		if msg == "" {
			msg = unknownUpstreamError
		}
		s.logger.ErrorContext(ctx, "completion API rejected request",
			"status", upstream.Status, "error", err, "latency_ms", latency)
		return domain.InterpretationResult{Err: &domain.InterpretationError{
			Message:        upstreamErrorPrefix + msg,
			UpstreamStatus: upstream.Status,
		}}, nil
	}

	s.logger.ErrorContext(ctx, "completion API unreachable", "error", err, "latency_ms", latency)
	return domain.InterpretationResult{Err: &domain.InterpretationError{
		Message: ConnectionErrorMessage,
	}}, nil
}
