package serp

import (
	"slices"
	"sync"

	"github.com/leofalp/serpsim/core/parse"
)

// Option configures a single [Parse] call.
type Option func(*options)

type options struct {
	payloadMode parse.Mode
	concurrent  bool
}

// WithPayloadRepair lets the historical data parser repair malformed JSON
// before giving up on it. By default the payload must be valid as written.
func WithPayloadRepair() Option {
	return func(o *options) {
		o.payloadMode = parse.Repair
	}
}

// WithConcurrentParsing runs the header, SERP and historical data parsers in
// separate goroutines. The result is identical to a sequential parse.
func WithConcurrentParsing() Option {
	return func(o *options) {
		o.concurrent = true
	}
}

// regions holds the slices of the raw text each parser works on.
type regions struct {
	header       string
	serp         string
	serpFound    bool
	summary      string
	summaryFound bool
}

func splitRegions(text string) regions {
	var r regions
	r.header = headerRegion(text)
	r.serp, r.serpFound = extractSection(text, serpStartMarker, serpEndMarker)
	r.summary, r.summaryFound = extractSection(text, summaryStartMarker, summaryEndMarker)
	return r
}

// partial collects the output of the independent region parsers.
type partial struct {
	searchVolume  string
	volumeIssues  []Issue
	cpc           CpcEstimate
	cpcIssues     []Issue
	serp          Field[SerpBlock]
	serpIssues    []Issue
	history       Field[[]HistoricalPoint]
	historyIssues []Issue
}

// Parse extracts a [ParsedResult] from the text generated for a market
// research query. sources are copied into the result unchanged.
//
// Parse never fails: every problem degrades the affected field to its
// fallback and is listed in the returned Issues.
func Parse(text string, sources []GroundingReference, opts ...Option) ParsedResult {
	o := options{payloadMode: parse.Strict}
	for _, opt := range opts {
		opt(&o)
	}

	r := splitRegions(text)

	var p partial
	parseHeader := func() {
		p.searchVolume, p.volumeIssues = parseSearchVolume(r.header)
		p.cpc, p.cpcIssues = parseCPC(r.header)
	}
	parseSerp := func() {
		if !r.serpFound {
			p.serp = AbsentField[SerpBlock]()
			p.serpIssues = []Issue{{Kind: AbsentSection, Section: SectionSerp, Detail: "markers not found"}}
			return
		}
		var block SerpBlock
		block, p.serpIssues = parseListings(r.serp)
		p.serp = PresentField(block)
	}
	parseTrend := func() {
		p.history, p.historyIssues = parseHistory(text, o.payloadMode)
	}

	if o.concurrent {
		var wg sync.WaitGroup
		wg.Go(parseHeader)
		wg.Go(parseSerp)
		wg.Go(parseTrend)
		wg.Wait()
	} else {
		parseHeader()
		parseSerp()
		parseTrend()
	}

	return assemble(r, p, sources)
}

// assemble merges the parser outputs and applies the summary fallback.
func assemble(r regions, p partial, sources []GroundingReference) ParsedResult {
	result := ParsedResult{
		SearchVolume:   p.searchVolume,
		CPC:            p.cpc,
		Serp:           p.serp,
		HistoricalData: p.history,
		Sources:        slices.Clone(sources),
	}
	if result.Sources == nil {
		result.Sources = []GroundingReference{}
	}

	var issues []Issue
	issues = append(issues, p.volumeIssues...)
	issues = append(issues, p.cpcIssues...)
	issues = append(issues, p.serpIssues...)

	switch {
	case r.summaryFound:
		result.Summary = r.summary
	case !result.HasListings():
		result.Summary = NoSummary
		issues = append(issues, Issue{Kind: AbsentSection, Section: SectionSummary, Detail: "markers not found, no listings"})
	default:
		issues = append(issues, Issue{Kind: AbsentSection, Section: SectionSummary, Detail: "markers not found"})
	}

	issues = append(issues, p.historyIssues...)
	result.Issues = issues
	return result
}
