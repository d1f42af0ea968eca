package middleware

import (
	"context"
	"time"

	"github.com/leofalp/serpsim/providers/ai"
)

// Timeout bounds each call with a deadline. A shorter caller deadline wins.
// A non-positive timeout returns nil, which [Chain] skips.
func Timeout(timeout time.Duration) Middleware {
	if timeout <= 0 {
		return nil
	}
	return func(next SendFunc) SendFunc {
		return func(ctx context.Context, request ai.ChatRequest) (*ai.ChatResponse, error) {
			ctx, cancel := context.WithTimeout(ctx, timeout)
			defer cancel()
			return next(ctx, request)
		}
	}
}
