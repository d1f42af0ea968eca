package middleware

import (
	"context"

	"github.com/leofalp/serpsim/core/cost"
	"github.com/leofalp/serpsim/providers/ai"
	"github.com/leofalp/serpsim/providers/observability"
)

// Cost adds the estimated price of every successful response to tracker and
// records it on the observer carried in the context. Usage is priced by the
// model the response reports, falling back to the requested one.
func Cost(tracker *cost.Tracker) Middleware {
	if tracker == nil {
		return nil
	}
	return func(next SendFunc) SendFunc {
		return func(ctx context.Context, request ai.ChatRequest) (*ai.ChatResponse, error) {
			response, err := next(ctx, request)
			if err != nil || response == nil {
				return response, err
			}

			model := response.Model
			if model == "" {
				model = request.Model
			}
			usd, priced := tracker.Add(model, response.Usage)

			if observer := observability.ObserverFromContext(ctx); observer != nil {
				if !priced {
					observer.Debug(ctx, "no price for model", observability.String(observability.AttrLLMModel, model))
					return response, nil
				}
				observer.Histogram(observability.MetricLLMCost).Record(ctx, usd,
					observability.String(observability.AttrLLMModel, model))
				if span := observability.SpanFromContext(ctx); span != nil {
					span.SetAttributes(observability.Float64(observability.AttrLLMCostUSD, usd))
				}
			}
			return response, nil
		}
	}
}
