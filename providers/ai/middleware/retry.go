package middleware

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"net/http"
	"time"

	"github.com/leofalp/serpsim/providers/ai"
	"github.com/leofalp/serpsim/providers/observability"
)

// ErrRetryExhausted wraps the last provider error once every attempt failed.
var ErrRetryExhausted = errors.New("all retry attempts exhausted")

// RetryConfig tunes [Retry]. Zero fields take the defaults noted per field.
type RetryConfig struct {
	// MaxRetries is the number of attempts after the first. Default 3.
	MaxRetries int
	// InitialBackoff defaults to 1s and grows by BackoffFactor (default 2).
	InitialBackoff time.Duration
	BackoffFactor  float64
	// MaxBackoff caps a single wait. Default 30s.
	MaxBackoff time.Duration
	// JitterFraction adds up to this share of the backoff at random. Default 0.1.
	JitterFraction float64
	// Retryable decides whether err is transient. Default: [IsTransient].
	Retryable func(error) bool
}

func (c *RetryConfig) applyDefaults() {
	if c.MaxRetries == 0 {
		c.MaxRetries = 3
	}
	if c.InitialBackoff == 0 {
		c.InitialBackoff = time.Second
	}
	if c.BackoffFactor == 0 {
		c.BackoffFactor = 2
	}
	if c.MaxBackoff == 0 {
		c.MaxBackoff = 30 * time.Second
	}
	if c.JitterFraction == 0 {
		c.JitterFraction = 0.1
	}
	if c.Retryable == nil {
		c.Retryable = IsTransient
	}
}

// backoff returns the wait before retry number attempt (0-indexed).
func (c RetryConfig) backoff(attempt int) time.Duration {
	base := min(float64(c.InitialBackoff)*math.Pow(c.BackoffFactor, float64(attempt)), float64(c.MaxBackoff))
	jitter := base * c.JitterFraction * rand.Float64() //nolint:gosec // jitter only
	return time.Duration(base + jitter)
}

// IsTransient reports whether err is a provider status worth retrying:
// 429, 500, 502, 503 or 504.
func IsTransient(err error) bool {
	var statusErr *ai.StatusError
	if !errors.As(err, &statusErr) {
		return false
	}
	switch statusErr.StatusCode {
	case http.StatusTooManyRequests, http.StatusInternalServerError, http.StatusBadGateway,
		http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return true
	}
	return false
}

// Retry retries transient failures with exponential backoff. A negative
// MaxRetries disables retrying.
func Retry(config RetryConfig) Middleware {
	config.applyDefaults()

	return func(next SendFunc) SendFunc {
		return func(ctx context.Context, request ai.ChatRequest) (*ai.ChatResponse, error) {
			var lastErr error
			retries := max(config.MaxRetries, 0)
			for attempt := 0; attempt <= retries; attempt++ {
				if attempt > 0 {
					wait := config.backoff(attempt - 1)
					if observer := observability.ObserverFromContext(ctx); observer != nil {
						observer.Debug(ctx, "retrying provider request",
							observability.Int("retry.attempt", attempt),
							observability.Duration("retry.backoff", wait),
							observability.Error(lastErr),
						)
					}
					select {
					case <-ctx.Done():
						return nil, ctx.Err()
					case <-time.After(wait):
					}
				}

				response, err := next(ctx, request)
				if err == nil {
					return response, nil
				}
				lastErr = err
				if !config.Retryable(err) {
					return response, err
				}
			}

			return nil, fmt.Errorf("%w after %d retries: %w", ErrRetryExhausted, retries, lastErr)
		}
	}
}
