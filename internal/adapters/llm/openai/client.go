package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/csebille-ai/opanoma-prod/internal/domain"
	"github.com/csebille-ai/opanoma-prod/internal/ports"
)

// FallbackText is returned as the interpretation when the API answers
// successfully but without any message to show.
const FallbackText = "Erreur d'interprétation."

// Client implements ports.Completer against an OpenAI-compatible
// chat completions endpoint.
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

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model               string        `json:"model"`
	Messages            []chatMessage `json:"messages"`
	MaxCompletionTokens int           `json:"max_completion_tokens,omitempty"`
}

// Message is kept raw so it can be echoed back when content is missing.
type chatResponse struct {
	Choices []struct {
		Message json.RawMessage `json:"message"`
	} `json:"choices"`
}

type errorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (c *Client) Complete(ctx context.Context, in ports.CompletionRequest) (string, error) {
	reqBody := chatRequest{
		Model:               in.Model,
		Messages:            make([]chatMessage, len(in.Messages)),
		MaxCompletionTokens: in.MaxTokens,
	}
	for i, m := range in.Messages {
		reqBody.Messages[i] = chatMessage{Role: m.Role, Content: m.Content}
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := c.baseURL + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	c.logger.DebugContext(ctx, "sending completion request", "model", in.Model, "max_tokens", in.MaxTokens)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: http call: %w", domain.ErrTransport, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: read response: %w", domain.ErrTransport, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var e errorResponse
		if err := json.Unmarshal(respBody, &e); err != nil {
			c.logger.WarnContext(ctx, "unparseable error payload", "status", resp.StatusCode, "error", err)
		}
		return "", &domain.UpstreamError{Status: resp.StatusCode, Message: e.Error.Message}
	}

	var chatResp chatResponse
	if err := json.Unmarshal(respBody, &chatResp); err != nil {
		return "", fmt.Errorf("%w: decode response: %w", domain.ErrTransport, err)
	}

	return c.extractText(ctx, chatResp), nil
}

// extractText returns the first choice's content, the serialized message
// when content is missing, or FallbackText when there is no message.
func (c *Client) extractText(ctx context.Context, r chatResponse) string {
	if len(r.Choices) == 0 {
		c.logger.WarnContext(ctx, "completion has no choices")
		return FallbackText
	}
	raw := r.Choices[0].Message
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		c.logger.WarnContext(ctx, "completion choice has no message")
		return FallbackText
	}

	var msg struct {
		Content *string `json:"content"`
	}
	err := json.Unmarshal(raw, &msg)
	if err == nil && msg.Content != nil && *msg.Content != "" {
		return *msg.Content
	}
	if err == nil {
		err = errors.New("content missing or empty")
	}

	var compact bytes.Buffer
	if cerr := json.Compact(&compact, raw); cerr != nil {
		c.logger.WarnContext(ctx, "completion message is not serializable", "error", cerr)
		return FallbackText
	}
	c.logger.WarnContext(ctx, "completion content unusable, returning raw message", "error", err)
	return compact.String()
}
