package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"golang.org/x/time/rate"

	"github.com/leofalp/serpsim/internal/utils"
	"github.com/leofalp/serpsim/providers/ai"
	"github.com/leofalp/serpsim/providers/observability"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	defaultModel   = "gemini-2.5-flash"
)

// ErrMissingAPIKey is returned by SendMessage when no API key is configured.
var ErrMissingAPIKey = errors.New("gemini: GEMINI_API_KEY is not set")

// GeminiProvider implements the ai.Provider interface for Google's Gemini API.
type GeminiProvider struct {
	apiKey  string
	baseURL string
	client  *http.Client
	limiter *rate.Limiter
}

var _ ai.Provider = (*GeminiProvider)(nil)

// New creates a new Gemini provider instance with default values from environment.
// Environment variables:
//   - GEMINI_API_KEY: API key for authentication
//   - GEMINI_API_BASE_URL: Base URL for API (optional, defaults to Google's API)
func New() *GeminiProvider {
	baseURL := os.Getenv("GEMINI_API_BASE_URL")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &GeminiProvider{
		apiKey:  os.Getenv("GEMINI_API_KEY"),
		baseURL: baseURL,
		client:  &http.Client{},
	}
}

// WithAPIKey sets the API key for the provider.
func (p *GeminiProvider) WithAPIKey(apiKey string) *GeminiProvider {
	p.apiKey = apiKey
	return p
}

// WithBaseURL sets the base URL for the API.
func (p *GeminiProvider) WithBaseURL(baseURL string) *GeminiProvider {
	if baseURL != "" {
		p.baseURL = baseURL
	}
	return p
}

// WithHttpClient sets a custom HTTP client.
func (p *GeminiProvider) WithHttpClient(httpClient *http.Client) *GeminiProvider {
	p.client = httpClient
	return p
}

// WithRateLimit throttles outgoing requests to perSecond with the given
// burst. A non-positive rate removes the limit.
func (p *GeminiProvider) WithRateLimit(perSecond float64, burst int) *GeminiProvider {
	if perSecond <= 0 {
		p.limiter = nil
		return p
	}
	p.limiter = rate.NewLimiter(rate.Limit(perSecond), max(burst, 1))
	return p
}

// SendMessage sends one generateContent request and maps the first candidate
// back to an ai.ChatResponse.
func (p *GeminiProvider) SendMessage(ctx context.Context, request ai.ChatRequest) (*ai.ChatResponse, error) {
	span := observability.SpanFromContext(ctx)
	observer := observability.ObserverFromContext(ctx)

	model := request.Model
	if model == "" {
		model = defaultModel
	}

	if span != nil {
		span.AddEvent(observability.EventLLMRequestStart)
		span.SetAttributes(
			observability.String(observability.AttrLLMProvider, "gemini"),
			observability.String(observability.AttrLLMEndpoint, p.baseURL),
			observability.String(observability.AttrLLMModel, model),
		)
		defer span.AddEvent(observability.EventLLMRequestEnd)
	}

	if observer != nil {
		observer.Trace(ctx, "Gemini provider preparing request",
			observability.String(observability.AttrLLMModel, model),
			observability.Int(observability.AttrRequestMessagesCount, len(request.Messages)),
		)
	}

	if p.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	if p.limiter != nil {
		if err := p.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("gemini: rate limiter: %w", err)
		}
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", p.baseURL, model)

	start := time.Now()
	httpResponse, resp, err := utils.DoPostSync[generateContentResponse](
		ctx,
		p.client,
		url,
		"",
		requestToGemini(request),
		utils.HeaderOption{Key: "x-goog-api-key", Value: p.apiKey},
	)
	if observer != nil {
		observer.Histogram(observability.MetricLLMDuration).Record(ctx, float64(time.Since(start).Milliseconds()),
			observability.String(observability.AttrLLMModel, model))
	}
	if err != nil {
		if observer != nil {
			observer.Debug(ctx, "Gemini request failed", observability.Error(err))
		}
		return nil, fmt.Errorf("gemini: %w", err)
	}
	if resp == nil {
		return nil, fmt.Errorf("gemini: empty response: %s", httpResponse.Status)
	}

	result := geminiToGeneric(*resp)
	if result.Model == "" {
		result.Model = model
	}

	if span != nil {
		attrs := []observability.Attribute{
			observability.String(observability.AttrLLMResponseID, result.Id),
			observability.String(observability.AttrLLMFinishReason, result.FinishReason),
		}
		if result.Usage != nil {
			attrs = append(attrs, observability.Int(observability.AttrLLMTokensTotal, result.Usage.TotalTokens))
		}
		if result.Grounding != nil {
			attrs = append(attrs,
				observability.Int(observability.AttrGroundingSources, len(result.Grounding.Sources)),
				observability.Strings(observability.AttrGroundingQueries, result.Grounding.SearchQueries),
			)
		}
		span.SetAttributes(attrs...)
	}

	if result.Refusal != "" {
		return result, fmt.Errorf("gemini: %w: %s", ai.ErrBlocked, result.Refusal)
	}

	return result, nil
}
