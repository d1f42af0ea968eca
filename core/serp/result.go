package serp

const (
	// Unavailable is shown when the search volume or CPC line is missing.
	Unavailable = "Indisponível"

	// NoSummary replaces the summary when neither a summary region nor any
	// SERP row could be extracted.
	NoSummary = "Não foi possível gerar um resumo dos resultados."
)

// ListingEntry is one paid or organic search result row.
type ListingEntry struct {
	Title          string `json:"title"`
	DisplayURL     string `json:"displayUrl"`
	DestinationURL string `json:"destinationUrl"`
	Description    string `json:"description"`
}

// SerpBlock holds the simulated result page in ranking order.
// Ads and Organic are never nil once a block has been parsed.
type SerpBlock struct {
	Ads     []ListingEntry `json:"ads"`
	Organic []ListingEntry `json:"organic"`
}

// Empty reports whether the block has neither ads nor organic results.
func (b SerpBlock) Empty() bool {
	return len(b.Ads) == 0 && len(b.Organic) == 0
}

// CpcEstimate is the cost-per-click estimate in the market currency and in USD.
// USD is empty when the model did not provide a two-part value.
type CpcEstimate struct {
	Local string `json:"local"`
	USD   string `json:"usd"`
}

// HistoricalPoint is one sample of the search interest trend.
type HistoricalPoint struct {
	Date  string  `json:"date"` // YYYY-MM-DD
	Value float64 `json:"value"`
}

// Link is a titled URI cited by the model.
type Link struct {
	URI   string `json:"uri"`
	Title string `json:"title"`
}

// GroundingReference is a citation supplied by the transport layer. The
// parser passes it through untouched.
type GroundingReference struct {
	Web  *Link `json:"web,omitempty"`
	Maps *Link `json:"maps,omitempty"`
}

// ParsedResult is the structured form of one generated answer.
type ParsedResult struct {
	Summary        string                   `json:"summary"`
	SearchVolume   string                   `json:"searchVolume"`
	CPC            CpcEstimate              `json:"cpc"`
	Serp           Field[SerpBlock]         `json:"serp,omitzero"`
	HistoricalData Field[[]HistoricalPoint] `json:"historicalData,omitzero"`
	Sources        []GroundingReference     `json:"sources"`

	// Issues lists every fallback the parser applied, in the order the
	// regions were processed.
	Issues []Issue `json:"issues,omitempty"`
}

// HasListings reports whether at least one ad or organic row was parsed.
func (r ParsedResult) HasListings() bool {
	block, ok := r.Serp.Get()
	return ok && !block.Empty()
}

// HasTrend reports whether the result carries at least one trend point.
func (r ParsedResult) HasTrend() bool {
	points, _ := r.HistoricalData.Get()
	return len(points) > 0
}
