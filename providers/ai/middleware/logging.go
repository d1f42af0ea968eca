package middleware

import (
	"context"
	"time"

	"github.com/leofalp/serpsim/providers/ai"
	"github.com/leofalp/serpsim/providers/observability"
)

// Logging logs every call through the observer carried in the context.
// Calls made without an observer pass straight through.
func Logging() Middleware {
	return func(next SendFunc) SendFunc {
		return func(ctx context.Context, request ai.ChatRequest) (*ai.ChatResponse, error) {
			observer := observability.ObserverFromContext(ctx)
			if observer == nil {
				return next(ctx, request)
			}

			observer.Debug(ctx, "llm send",
				observability.String(observability.AttrLLMModel, request.Model),
				observability.Int(observability.AttrRequestMessagesCount, len(request.Messages)),
			)

			start := time.Now()
			response, err := next(ctx, request)
			elapsed := time.Since(start)

			if err != nil {
				observer.Warn(ctx, "llm send failed",
					observability.String(observability.AttrLLMModel, request.Model),
					observability.Duration(observability.AttrHTTPDuration, elapsed),
					observability.Error(err),
				)
				return response, err
			}

			attrs := []observability.Attribute{
				observability.String(observability.AttrLLMModel, response.Model),
				observability.Duration(observability.AttrHTTPDuration, elapsed),
				observability.String(observability.AttrLLMFinishReason, response.FinishReason),
			}
			if response.Usage != nil {
				attrs = append(attrs, observability.Int(observability.AttrLLMTokensTotal, response.Usage.TotalTokens))
			}
			observer.Info(ctx, "llm send completed", attrs...)
			return response, nil
		}
	}
}
