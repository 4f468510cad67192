package domain

import (
	"encoding/json"
	"fmt"
)

// UpstreamError is a non-success answer from the completion API.
// Message is the API's own error message, empty when it sent none.
type UpstreamError struct {
	Status  int
	Message string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream status %d: %s", e.Status, e.Message)
}

func (e *UpstreamError) Unwrap() error { return ErrUpstream }

// ProviderError is a non-success answer from the mailing list provider.
type ProviderError struct {
	Status  int
	Payload json.RawMessage
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider status %d: %s", e.Status, string(e.Payload))
}

func (e *ProviderError) Unwrap() error { return ErrUpstream }
