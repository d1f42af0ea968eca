// Package parse decodes JSON fragments embedded in raw LLM text output.
// Because language models frequently damage JSON (single quotes, trailing
// commas, truncated brackets) or echo schema-style {"type","value"}
// envelopes, the package offers a [Repair] mode that applies automatic JSON
// repair and schema unwrapping before giving up, next to a [Strict] mode that
// decodes the text exactly as written.
//
// The main entry point is the generic [DecodeJSON] function.
package parse
