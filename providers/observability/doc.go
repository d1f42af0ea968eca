// Package observability is the telemetry contract shared by the research
// service, the chat service and the model transport.
//
// Services receive a [Provider] and attach it to the request context with
// [ContextWithObserver]; the spans they open travel the same way
// ([ContextWithSpan]). Lower layers such as the Gemini provider and the
// middleware chain look both up with [ObserverFromContext] and
// [SpanFromContext], so they emit nothing when the caller did not ask for it.
//
// Attribute keys and span, event and metric names live in semconv.go. The
// slogobs subpackage is the implementation the CLI uses.
package observability
