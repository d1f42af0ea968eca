package cost

import (
	"fmt"
	"strings"
	"sync"

	"github.com/leofalp/serpsim/providers/ai"
)

// ModelCost represents the pricing structure for a language model.
// Costs are expressed in USD per million tokens.
type ModelCost struct {
	// InputCostPerMillion is the cost in USD per 1 million prompt tokens
	InputCostPerMillion float64 `json:"input_cost_per_million" yaml:"input_cost_per_million"`

	// OutputCostPerMillion is the cost in USD per 1 million generated tokens,
	// images included
	OutputCostPerMillion float64 `json:"output_cost_per_million" yaml:"output_cost_per_million"`

	// ReasoningCostPerMillion prices thinking tokens. Zero bills them at the
	// output rate.
	ReasoningCostPerMillion float64 `json:"reasoning_cost_per_million,omitempty" yaml:"reasoning_cost_per_million,omitempty"`
}

func perMillion(tokens int, rate float64) float64 {
	return float64(tokens) / 1_000_000.0 * rate
}

// CalculateInputCost calculates the cost for the given number of input tokens.
func (mc ModelCost) CalculateInputCost(tokens int) float64 {
	return perMillion(tokens, mc.InputCostPerMillion)
}

// CalculateOutputCost calculates the cost for the given number of output tokens.
func (mc ModelCost) CalculateOutputCost(tokens int) float64 {
	return perMillion(tokens, mc.OutputCostPerMillion)
}

// CalculateReasoningCost calculates the cost for the given number of reasoning tokens.
func (mc ModelCost) CalculateReasoningCost(tokens int) float64 {
	rate := mc.ReasoningCostPerMillion
	if rate == 0 {
		rate = mc.OutputCostPerMillion
	}
	return perMillion(tokens, rate)
}

// CalculateUsageCost prices one response's usage. A nil usage costs nothing.
func (mc ModelCost) CalculateUsageCost(u *ai.Usage) float64 {
	if u == nil {
		return 0
	}
	return mc.CalculateInputCost(u.PromptTokens) +
		mc.CalculateOutputCost(u.CompletionTokens) +
		mc.CalculateReasoningCost(u.ReasoningTokens)
}

// String returns a formatted string representation of the model costs.
func (mc ModelCost) String() string {
	return fmt.Sprintf("Input: $%.2f/M, Output: $%.2f/M", mc.InputCostPerMillion, mc.OutputCostPerMillion)
}

// Pricing maps a model name, or a prefix of one, to its rates.
type Pricing map[string]ModelCost

// DefaultPricing returns list prices for the models serpsim uses by default.
func DefaultPricing() Pricing {
	return Pricing{
		"gemini-2.5-flash":       {InputCostPerMillion: 0.30, OutputCostPerMillion: 2.50},
		"gemini-2.5-flash-lite":  {InputCostPerMillion: 0.10, OutputCostPerMillion: 0.40},
		"gemini-2.5-flash-image": {InputCostPerMillion: 0.30, OutputCostPerMillion: 30.00},
		"gemini-2.5-pro":         {InputCostPerMillion: 1.25, OutputCostPerMillion: 10.00},
	}
}

// Lookup returns the rates for model. An exact name wins; otherwise the
// longest key that prefixes model is used.
func (p Pricing) Lookup(model string) (ModelCost, bool) {
	model = strings.TrimPrefix(model, "models/")
	if mc, ok := p[model]; ok {
		return mc, true
	}
	best := ""
	for name := range p {
		if strings.HasPrefix(model, name) && len(name) > len(best) {
			best = name
		}
	}
	if best == "" {
		return ModelCost{}, false
	}
	return p[best], true
}

// Estimate prices usage for model. ok is false when the model is unknown.
func (p Pricing) Estimate(model string, u *ai.Usage) (usd float64, ok bool) {
	mc, ok := p.Lookup(model)
	if !ok {
		return 0, false
	}
	return mc.CalculateUsageCost(u), true
}

// Summary is the accumulated spend of a run.
type Summary struct {
	Calls        int     `json:"calls"`
	Unpriced     int     `json:"unpriced,omitempty"`
	PromptTokens int     `json:"prompt_tokens"`
	OutputTokens int     `json:"output_tokens"`
	TotalUSD     float64 `json:"total_usd"`
}

func (s Summary) String() string {
	out := fmt.Sprintf("$%.4f em %d chamada(s), %d tokens de entrada e %d de saída",
		s.TotalUSD, s.Calls, s.PromptTokens, s.OutputTokens)
	if s.Unpriced > 0 {
		out += fmt.Sprintf(" (%d sem preço conhecido)", s.Unpriced)
	}
	return out
}

// Tracker accumulates costs across calls. It is safe for concurrent use.
type Tracker struct {
	pricing Pricing

	mu      sync.Mutex
	summary Summary
}

// NewTracker creates a Tracker. A nil pricing uses DefaultPricing.
func NewTracker(pricing Pricing) *Tracker {
	if pricing == nil {
		pricing = DefaultPricing()
	}
	return &Tracker{pricing: pricing}
}

// Add records one response and returns its estimated cost.
func (t *Tracker) Add(model string, u *ai.Usage) (float64, bool) {
	usd, ok := t.pricing.Estimate(model, u)

	t.mu.Lock()
	defer t.mu.Unlock()
	t.summary.Calls++
	if !ok {
		t.summary.Unpriced++
	}
	if u != nil {
		t.summary.PromptTokens += u.PromptTokens
		t.summary.OutputTokens += u.CompletionTokens + u.ReasoningTokens
	}
	t.summary.TotalUSD += usd
	return usd, ok
}

// Summary returns a snapshot of the totals so far.
func (t *Tracker) Summary() Summary {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.summary
}
