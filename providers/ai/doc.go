// Package ai defines the provider-agnostic request and response model used to
// talk to generative language backends, and the [Provider] interface that
// backends implement.
//
// Requests carry a system prompt, text or image messages, generation settings
// and an optional [GroundingConfig] that switches on the backend's search and
// maps retrieval tools. Responses expose the generated text, any generated
// images, and the [GroundingMetadata] (cited sources, search queries, search
// suggestions) that callers pass through to their users.
package ai
