package mailerlite

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/csebille-ai/opanoma-prod/internal/domain"
	"github.com/csebille-ai/opanoma-prod/internal/ports"
)

// Client implements ports.MailingList via the MailerLite subscribers API.
type Client struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
	logger     *slog.Logger
}

func NewClient(httpClient *http.Client, apiKey, baseURL string, logger *slog.Logger) *Client {
	return &Client{
		httpClient: httpClient,
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		logger:     logger,
	}
}

type subscriberRequest struct {
	Email  string   `json:"email"`
	Groups []string `json:"groups,omitempty"`
	Status string   `json:"status,omitempty"`
}

// CreateOrUpdateSubscriber upserts a subscriber. MailerLite answers 200 for
// an update and 201 for a creation.
func (c *Client) CreateOrUpdateSubscriber(ctx context.Context, s ports.Subscriber) error {
	body, err := json.Marshal(subscriberRequest{Email: s.Email, Groups: s.Groups, Status: s.Status})
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/subscribers", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: http call: %w", domain.ErrTransport, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read response: %w", domain.ErrTransport, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &domain.ProviderError{Status: resp.StatusCode, Payload: payloadOf(respBody)}
	}

	c.logger.DebugContext(ctx, "subscriber upserted", "status", resp.StatusCode, "groups", s.Groups)
	return nil
}

// payloadOf keeps a JSON body as-is and wraps anything else in a JSON
// string so it can be embedded in a response.
func payloadOf(body []byte) json.RawMessage {
	if json.Valid(body) {
		return json.RawMessage(body)
	}
	quoted, _ := json.Marshal(string(body))
	return quoted
}
