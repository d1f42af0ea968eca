package research

import (
	"context"
	"fmt"
	"strings"

	"github.com/leofalp/serpsim/core/serp"
	"github.com/leofalp/serpsim/providers/ai"
	"github.com/leofalp/serpsim/providers/observability"
)

// Models names the model used by each operation.
type Models struct {
	Search   string `yaml:"search"`
	Analysis string `yaml:"analysis"`
	Image    string `yaml:"image"`
}

// DefaultModels returns the Gemini models the simulator was tuned for.
func DefaultModels() Models {
	return Models{
		Search:   "gemini-2.5-flash",
		Analysis: "gemini-2.5-pro",
		Image:    "gemini-2.5-flash-image",
	}
}

// Service runs simulations, analyses and image edits through one provider.
type Service struct {
	provider     ai.Provider
	models       Models
	observer     observability.Provider
	parseOptions []serp.Option
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithModels overrides the models. Empty fields keep their defaults.
func WithModels(m Models) ServiceOption {
	return func(s *Service) {
		if m.Search != "" {
			s.models.Search = m.Search
		}
		if m.Analysis != "" {
			s.models.Analysis = m.Analysis
		}
		if m.Image != "" {
			s.models.Image = m.Image
		}
	}
}

// WithObserver sets the observability provider used for spans and logs.
func WithObserver(o observability.Provider) ServiceOption {
	return func(s *Service) {
		s.observer = o
	}
}

// WithParseOptions passes options through to serp.Parse.
func WithParseOptions(opts ...serp.Option) ServiceOption {
	return func(s *Service) {
		s.parseOptions = append(s.parseOptions, opts...)
	}
}

// NewService creates a Service.
func NewService(provider ai.Provider, opts ...ServiceOption) *Service {
	s := &Service{provider: provider, models: DefaultModels()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Models reports the models in use.
func (s *Service) Models() Models { return s.models }

// start opens a span and attaches the observer to ctx. With no observer it
// returns ctx unchanged and a nil span.
func (s *Service) start(ctx context.Context, name string, attrs ...observability.Attribute) (context.Context, observability.Span) {
	if s.observer == nil {
		return ctx, nil
	}
	ctx = observability.ContextWithObserver(ctx, s.observer)
	return s.observer.StartSpan(ctx, name, attrs...)
}

func finish(span observability.Span, err error) {
	if span == nil {
		return
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(observability.StatusError, err.Error())
	} else {
		span.SetStatus(observability.StatusOK, "")
	}
	span.End()
}

// Simulate asks the search model for a simulated results page and parses it.
// loc may be nil. Parse problems never fail the call; they are reported in
// the result's Issues and logged at debug level.
func (s *Service) Simulate(ctx context.Context, params SearchParameters, loc *UserLocation) (result serp.ParsedResult, err error) {
	ctx, span := s.start(ctx, observability.SpanResearchSimulate,
		observability.String(observability.AttrResearchQuery, params.Query),
		observability.String(observability.AttrResearchMarket, params.Country),
		observability.String(observability.AttrResearchDevice, params.Device),
	)
	defer func() { finish(span, err) }()

	if err := params.Validate(); err != nil {
		return serp.ParsedResult{}, err
	}

	prompt, err := searchPrompt(params)
	if err != nil {
		return serp.ParsedResult{}, fmt.Errorf("render search prompt: %w", err)
	}

	grounding := &ai.GroundingConfig{GoogleSearch: true, GoogleMaps: true}
	if loc != nil {
		grounding.Location = &ai.LatLng{Latitude: loc.Latitude, Longitude: loc.Longitude}
	}

	resp, err := s.provider.SendMessage(ctx, ai.ChatRequest{
		Model:     s.models.Search,
		Messages:  []ai.Message{ai.NewTextMessage(ai.RoleUser, prompt)},
		Grounding: grounding,
	})
	if err != nil {
		return serp.ParsedResult{}, fmt.Errorf("%w: %w", ErrSearchFailed, err)
	}

	result = serp.Parse(resp.Content, groundingReferences(resp.Grounding), s.parseOptions...)
	s.report(ctx, span, result)
	return result, nil
}

// groundingReferences keeps provider order and drops nothing; a source of an
// unknown kind becomes an empty reference.
func groundingReferences(g *ai.GroundingMetadata) []serp.GroundingReference {
	if g == nil {
		return nil
	}
	refs := make([]serp.GroundingReference, 0, len(g.Sources))
	for _, src := range g.Sources {
		link := &serp.Link{URI: src.URI, Title: src.Title}
		switch src.Kind {
		case ai.SourceWeb:
			refs = append(refs, serp.GroundingReference{Web: link})
		case ai.SourceMaps:
			refs = append(refs, serp.GroundingReference{Maps: link})
		default:
			refs = append(refs, serp.GroundingReference{})
		}
	}
	return refs
}

func (s *Service) report(ctx context.Context, span observability.Span, r serp.ParsedResult) {
	if s.observer == nil {
		return
	}

	ads, organic := 0, 0
	if block, ok := r.Serp.Get(); ok {
		ads, organic = len(block.Ads), len(block.Organic)
	}
	if span != nil {
		span.AddEvent(observability.EventSerpParsed,
			observability.Int(observability.AttrSerpAds, ads),
			observability.Int(observability.AttrSerpOrganic, organic),
			observability.String(observability.AttrSerpTrendState, r.HistoricalData.Presence().String()),
			observability.Int(observability.AttrGroundingSources, len(r.Sources)),
		)
	}

	for _, issue := range r.Issues {
		s.observer.Debug(ctx, "serp parse issue",
			observability.String(observability.AttrIssueKind, string(issue.Kind)),
			observability.String(observability.AttrIssueSection, issue.Section),
			observability.Int(observability.AttrIssueLine, issue.Line),
			observability.String(observability.AttrIssueDetail, issue.Detail),
		)
		s.observer.Counter(observability.MetricSerpIssues).Add(ctx, 1,
			observability.String(observability.AttrIssueKind, string(issue.Kind)))
	}
	if dropped := serp.CountIssues(r.Issues, serp.MalformedRow); dropped > 0 {
		s.observer.Counter(observability.MetricSerpRowsDropped).Add(ctx, int64(dropped))
	}
}

// Analyze asks the analysis model for a Markdown SEO analysis of a summary.
func (s *Service) Analyze(ctx context.Context, query, summary string) (analysis string, err error) {
	ctx, span := s.start(ctx, observability.SpanResearchAnalyze,
		observability.String(observability.AttrResearchQuery, query))
	defer func() { finish(span, err) }()

	if strings.TrimSpace(query) == "" {
		return "", fmt.Errorf("%w: empty query", ErrInvalidParameters)
	}

	prompt, err := analysisPrompt(query, summary)
	if err != nil {
		return "", fmt.Errorf("render analysis prompt: %w", err)
	}

	resp, err := s.provider.SendMessage(ctx, ai.ChatRequest{
		Model:    s.models.Analysis,
		Messages: []ai.Message{ai.NewTextMessage(ai.RoleUser, prompt)},
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrAnalysisFailed, err)
	}
	return resp.Content, nil
}
