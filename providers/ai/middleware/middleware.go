package middleware

import (
	"context"

	"github.com/leofalp/serpsim/providers/ai"
)

// SendFunc sends one request. It is the unit threaded through the chain.
type SendFunc func(ctx context.Context, request ai.ChatRequest) (*ai.ChatResponse, error)

// Middleware wraps the next SendFunc in the chain.
type Middleware func(next SendFunc) SendFunc

type chained struct {
	send SendFunc
}

func (c chained) SendMessage(ctx context.Context, request ai.ChatRequest) (*ai.ChatResponse, error) {
	return c.send(ctx, request)
}

// Chain returns a provider that runs middlewares around provider. The first
// middleware is the outermost wrapper. Nil entries are skipped.
func Chain(provider ai.Provider, middlewares ...Middleware) ai.Provider {
	send := SendFunc(provider.SendMessage)
	for i := len(middlewares) - 1; i >= 0; i-- {
		if middlewares[i] != nil {
			send = middlewares[i](send)
		}
	}
	return chained{send: send}
}
