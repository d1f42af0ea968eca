package observability

// Semantic conventions for observability attributes.
// These constants define standard attribute names to ensure consistency
// across different components of the system.

// --- LLM Provider Attributes ---

const (
	AttrLLMProvider     = "llm.provider"
	AttrLLMModel        = "llm.model"
	AttrLLMEndpoint     = "llm.endpoint"
	AttrLLMResponseID   = "llm.response.id"
	AttrLLMFinishReason = "llm.finish_reason"

	// AttrLLMTokensTotal is the total number of tokens
	AttrLLMTokensTotal = "llm.tokens.total" // #nosec G101 -- Not a credential, token refers to LLM tokens

	// AttrLLMCostUSD is the estimated price of one call
	AttrLLMCostUSD = "llm.cost.usd"

	AttrRequestMessagesCount = "request.messages_count"
	AttrGroundingSources     = "grounding.sources"
	AttrGroundingQueries     = "grounding.search_queries"
)

// --- HTTP Attributes ---

const (
	AttrHTTPMethod           = "http.method"
	AttrHTTPStatusCode       = "http.status_code"
	AttrHTTPURL              = "http.url"
	AttrHTTPRequestBodySize  = "http.request.body.size"
	AttrHTTPResponseBodySize = "http.response.body.size"
	AttrHTTPDuration         = "http.request.duration"
)

// --- Research Attributes ---

const (
	// AttrResearchQuery is the search term being simulated
	AttrResearchQuery = "research.query"

	// AttrResearchMarket is the target market (country code)
	AttrResearchMarket = "research.market"

	// AttrResearchDevice is the simulated device
	AttrResearchDevice = "research.device"

	AttrSerpAds        = "serp.ads"
	AttrSerpOrganic    = "serp.organic"
	AttrSerpTrendState = "serp.trend.presence"
	AttrIssueKind      = "serp.issue.kind"
	AttrIssueSection   = "serp.issue.section"
	AttrIssueLine      = "serp.issue.line"
	AttrIssueDetail    = "serp.issue.detail"
)

// --- Chat Attributes ---

const (
	AttrChatLanguage      = "chat.language"
	AttrChatSessionID     = "chat.session.id"
	AttrMemoryMessageRole = "memory.message.role"
	AttrMemoryTotal       = "memory.total_messages"
)

// --- General Attributes ---

const (
	AttrError             = "error"
	AttrStatus            = "status"
	AttrStatusDescription = "status_description"
)

// --- Span Names ---

const (
	SpanResearchSimulate = "research.simulate"
	SpanResearchAnalyze  = "research.analyze"
	SpanResearchImage    = "research.edit_image"
	SpanChatSend         = "chat.send"
)

// --- Event Names ---

const (
	EventLLMRequestStart      = "llm.request.start"
	EventLLMRequestEnd        = "llm.request.end"
	EventHTTPRequestPrepared  = "http.request.prepared"
	EventHTTPRequestError     = "http.request.error"
	EventHTTPResponseReceived = "http.response.received"
	EventSerpParsed           = "serp.parsed"
	EventMemoryAppend         = "memory.append"
	EventMemoryClear          = "memory.clear"
)

// --- Metric Names ---

const (
	MetricSerpIssues      = "serp.issues"
	MetricSerpRowsDropped = "serp.rows.dropped"
	MetricLLMDuration     = "llm.request.duration_ms"
	MetricLLMCost         = "llm.cost.usd"
)
