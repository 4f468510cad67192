package ports

import "context"

// Message is one chat turn sent to the completion API.
type Message struct {
	Role    string
	Content string
}

// CompletionRequest is the provider-neutral shape of one completion call.
type CompletionRequest struct {
	Model     string
	Messages  []Message
	MaxTokens int
}

// Completer sends a single completion request and returns the text to show.
//
// Errors wrap domain.ErrTransport when the API could not be reached or its
// answer could not be read, and are a *domain.UpstreamError when it
// answered with a non-success status.
type Completer interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}
