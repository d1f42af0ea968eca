package ai

import (
	"context"
	"errors"
	"fmt"
)

// Provider is the interface every generative model backend satisfies.
// The research, analysis, chat and image services only ever need one
// synchronous round trip per operation.
type Provider interface {
	// SendMessage sends a chat request to the provider and returns the
	// completed response. Returns an error if the provider call fails,
	// the context is cancelled, or the response cannot be decoded.
	SendMessage(ctx context.Context, request ChatRequest) (*ChatResponse, error)
}

// ErrBlocked is returned when the provider refused to answer the prompt.
var ErrBlocked = errors.New("prompt blocked by provider")

// StatusError is returned for non-2xx HTTP responses.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("non-2xx status %d: %s", e.StatusCode, e.Body)
}
