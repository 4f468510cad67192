package app

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"

	"github.com/csebille-ai/opanoma-prod/internal/domain"
	"github.com/csebille-ai/opanoma-prod/internal/ports"
)

const (
	subscribedMessage      = "Inscription réussie !"
	subscribeFailedMessage = "Erreur lors de l'inscription."
)

var unreachablePayload = json.RawMessage(`{"message":"mailing provider unreachable"}`)

// SubscribeService forwards newsletter signups to a mailing list group.
type SubscribeService struct {
	list    ports.MailingList
	groupID string
	logger  *slog.Logger
}

func NewSubscribeService(list ports.MailingList, groupID string, logger *slog.Logger) *SubscribeService {
	return &SubscribeService{list: list, groupID: groupID, logger: logger}
}

// Subscribe upserts email as an active member of the configured group.
// The returned error is non-nil only for a missing email.
func (s *SubscribeService) Subscribe(ctx context.Context, email string) (domain.SubscriptionResult, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return domain.SubscriptionResult{}, domain.ErrEmailRequired
	}

	var groups []string
	if s.groupID != "" {
		groups = []string{s.groupID}
	}

	s.logger.InfoContext(ctx, "subscribing", "group", s.groupID)
	err := s.list.CreateOrUpdateSubscriber(ctx, ports.Subscriber{
		Email:  email,
		Groups: groups,
		Status: "active",
	})
	if err == nil {
		return domain.SubscriptionResult{Success: true, Message: subscribedMessage}, nil
	}

	var provErr *domain.ProviderError
	if errors.As(err, &provErr) {
		s.logger.ErrorContext(ctx, "mailing provider rejected subscriber",
			"status", provErr.Status, "payload", string(provErr.Payload))
		return domain.SubscriptionResult{
			Message:        subscribeFailedMessage,
			Payload:        provErr.Payload,
			ProviderStatus: provErr.Status,
		}, nil
	}

	s.logger.ErrorContext(ctx, "mailing provider unreachable", "error", err)
	return domain.SubscriptionResult{
		Message: subscribeFailedMessage,
		Payload: unreachablePayload,
	}, nil
}
