// Package gemini implements [ai.Provider] for Google's Gemini generative
// language API.
//
// It converts the generic [ai.ChatRequest] into the generateContent wire
// format, including the Google Search and Google Maps grounding tools and the
// retrieval location, and maps the reply back to [ai.ChatResponse]. Grounding
// chunks become ordered sources; the rendered search entry point is converted
// to Markdown and its suggestion chips are extracted.
//
// [New] reads GEMINI_API_KEY and GEMINI_API_BASE_URL from the environment.
// [GeminiProvider.WithAPIKey], [GeminiProvider.WithBaseURL],
// [GeminiProvider.WithHttpClient] and [GeminiProvider.WithRateLimit] adjust it.
package gemini
