package main

import (
	"net/http"
	"os"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/leofalp/serpsim/core/chat"
	"github.com/leofalp/serpsim/core/cost"
	"github.com/leofalp/serpsim/core/research"
	"github.com/leofalp/serpsim/core/serp"
	"github.com/leofalp/serpsim/internal/config"
	"github.com/leofalp/serpsim/providers/ai"
	"github.com/leofalp/serpsim/providers/ai/gemini"
	"github.com/leofalp/serpsim/providers/ai/middleware"
	"github.com/leofalp/serpsim/providers/memory"
	"github.com/leofalp/serpsim/providers/memory/inmemory"
	"github.com/leofalp/serpsim/providers/observability/slogobs"
)

// app holds everything a command needs, built once from the configuration.
type app struct {
	cfg      *config.Config
	observer *slogobs.Observer
	provider ai.Provider
	costs    *cost.Tracker
}

func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	observer := slogobs.New(
		slogobs.WithOutput(os.Stderr),
		slogobs.WithFormat(slogobs.ParseFormat(cfg.Log.Format)),
		slogobs.WithLevel(slogobs.ParseLevel(cfg.Log.Level)),
	)

	client := &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)}
	backend := gemini.New().
		WithAPIKey(cfg.APIKey).
		WithBaseURL(cfg.BaseURL).
		WithHttpClient(client).
		WithRateLimit(cfg.RateLimit, 1)

	retries := cfg.MaxRetries
	if retries == 0 {
		retries = -1 // zero would select the middleware default
	}
	costs := cost.NewTracker(nil)
	provider := middleware.Chain(backend,
		middleware.Logging(),
		middleware.Cost(costs),
		middleware.Retry(middleware.RetryConfig{MaxRetries: retries}),
		middleware.Timeout(cfg.Timeout),
	)

	return &app{cfg: cfg, observer: observer, provider: provider, costs: costs}, nil
}

func (a *app) parseOptions() []serp.Option {
	if a.cfg.RepairJSON {
		return []serp.Option{serp.WithPayloadRepair()}
	}
	return nil
}

func (a *app) research() *research.Service {
	return research.NewService(a.provider,
		research.WithModels(a.cfg.Models),
		research.WithObserver(a.observer),
		research.WithParseOptions(a.parseOptions()...),
	)
}

func (a *app) chat() *chat.Service {
	limit := a.cfg.ChatHistory
	store := chat.NewSessionStore(func() memory.Provider { return inmemory.NewBounded(limit) })
	return chat.NewService(a.provider, store, a.cfg.ChatModel, a.observer)
}
