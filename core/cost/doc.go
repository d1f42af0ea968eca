// Package cost prices model calls from their token usage.
//
// [ModelCost] holds per-million-token rates for one model and [Pricing] maps
// model names to rates, matching versioned names such as
// "gemini-2.5-flash-preview-05-20" by their longest known prefix. A [Tracker]
// accumulates the estimated spend of a whole run so the CLI can report it.
package cost
