package middleware

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/leofalp/serpsim/core/cost"
	"github.com/leofalp/serpsim/providers/ai"
)

type providerFunc func(ctx context.Context, request ai.ChatRequest) (*ai.ChatResponse, error)

func (f providerFunc) SendMessage(ctx context.Context, request ai.ChatRequest) (*ai.ChatResponse, error) {
	return f(ctx, request)
}

func TestChain_Order(t *testing.T) {
	var order []string
	tag := func(name string) Middleware {
		return func(next SendFunc) SendFunc {
			return func(ctx context.Context, request ai.ChatRequest) (*ai.ChatResponse, error) {
				order = append(order, name)
				return next(ctx, request)
			}
		}
	}

	provider := Chain(providerFunc(func(context.Context, ai.ChatRequest) (*ai.ChatResponse, error) {
		order = append(order, "provider")
		return &ai.ChatResponse{}, nil
	}), tag("outer"), nil, tag("inner"))

	if _, err := provider.SendMessage(context.Background(), ai.ChatRequest{}); err != nil {
		t.Fatal(err)
	}
	want := []string{"outer", "inner", "provider"}
	if len(order) != len(want) {
		t.Fatalf("order = %v", order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("order = %v, want %v", order, want)
		}
	}
}

func TestRetry(t *testing.T) {
	fast := RetryConfig{MaxRetries: 2, InitialBackoff: time.Millisecond, MaxBackoff: time.Millisecond}

	tests := []struct {
		name      string
		errs      []error
		wantCalls int
		wantErr   error
	}{
		{name: "success after transient", errs: []error{&ai.StatusError{StatusCode: http.StatusServiceUnavailable}, nil}, wantCalls: 2},
		{name: "permanent error not retried", errs: []error{&ai.StatusError{StatusCode: http.StatusBadRequest}}, wantCalls: 1},
		{name: "exhausted", errs: []error{
			&ai.StatusError{StatusCode: http.StatusTooManyRequests},
			&ai.StatusError{StatusCode: http.StatusTooManyRequests},
			&ai.StatusError{StatusCode: http.StatusTooManyRequests},
		}, wantCalls: 3, wantErr: ErrRetryExhausted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			provider := Chain(providerFunc(func(context.Context, ai.ChatRequest) (*ai.ChatResponse, error) {
				err := tt.errs[calls]
				calls++
				if err != nil {
					return nil, err
				}
				return &ai.ChatResponse{Content: "ok"}, nil
			}), Retry(fast))

			_, err := provider.SendMessage(context.Background(), ai.ChatRequest{})
			if calls != tt.wantCalls {
				t.Errorf("calls = %d, want %d", calls, tt.wantCalls)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestTimeout(t *testing.T) {
	if Timeout(0) != nil {
		t.Error("Timeout(0) should be disabled")
	}

	provider := Chain(providerFunc(func(ctx context.Context, _ ai.ChatRequest) (*ai.ChatResponse, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	}), Timeout(5*time.Millisecond))

	_, err := provider.SendMessage(context.Background(), ai.ChatRequest{})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expected deadline exceeded, got %v", err)
	}
}

func TestCost(t *testing.T) {
	if Cost(nil) != nil {
		t.Error("Cost(nil) should be disabled")
	}

	tracker := cost.NewTracker(cost.Pricing{"gemini-2.5-flash": {InputCostPerMillion: 1, OutputCostPerMillion: 2}})
	fail := false
	provider := Chain(providerFunc(func(_ context.Context, request ai.ChatRequest) (*ai.ChatResponse, error) {
		if fail {
			return nil, errors.New("boom")
		}
		return &ai.ChatResponse{Usage: &ai.Usage{PromptTokens: 1_000_000, CompletionTokens: 1_000_000}}, nil
	}), Cost(tracker))

	if _, err := provider.SendMessage(context.Background(), ai.ChatRequest{Model: "gemini-2.5-flash"}); err != nil {
		t.Fatal(err)
	}
	fail = true
	if _, err := provider.SendMessage(context.Background(), ai.ChatRequest{Model: "gemini-2.5-flash"}); err == nil {
		t.Fatal("expected error")
	}

	s := tracker.Summary()
	if s.Calls != 1 || s.TotalUSD != 3 {
		t.Errorf("summary = %+v, want one call costing 3", s)
	}
}

func TestRetry_DefaultAttempts(t *testing.T) {
	tests := []struct {
		name       string
		maxRetries int
		wantCalls  int
	}{
		{name: "zero uses the default of three retries", maxRetries: 0, wantCalls: 4},
		{name: "negative disables retrying", maxRetries: -1, wantCalls: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			provider := Chain(providerFunc(func(context.Context, ai.ChatRequest) (*ai.ChatResponse, error) {
				calls++
				return nil, &ai.StatusError{StatusCode: http.StatusServiceUnavailable}
			}), Retry(RetryConfig{MaxRetries: tt.maxRetries, InitialBackoff: time.Millisecond, MaxBackoff: time.Millisecond}))

			if _, err := provider.SendMessage(context.Background(), ai.ChatRequest{}); err == nil {
				t.Fatal("expected an error")
			}
			if calls != tt.wantCalls {
				t.Errorf("calls = %d, want %d", calls, tt.wantCalls)
			}
		})
	}
}
