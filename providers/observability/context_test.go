package observability

import (
	"context"
	"testing"
)

type stubSpan struct{ name string }

func (s *stubSpan) End()                          {}
func (s *stubSpan) SetAttributes(...Attribute)    {}
func (s *stubSpan) SetStatus(StatusCode, string)  {}
func (s *stubSpan) RecordError(error)             {}
func (s *stubSpan) AddEvent(string, ...Attribute) {}

type stubProvider struct{}

func (stubProvider) StartSpan(ctx context.Context, name string, _ ...Attribute) (context.Context, Span) {
	return ctx, &stubSpan{name: name}
}
func (stubProvider) Counter(string) Counter                      { return nil }
func (stubProvider) Histogram(string) Histogram                  { return nil }
func (stubProvider) Trace(context.Context, string, ...Attribute) {}
func (stubProvider) Debug(context.Context, string, ...Attribute) {}
func (stubProvider) Info(context.Context, string, ...Attribute)  {}
func (stubProvider) Warn(context.Context, string, ...Attribute)  {}
func (stubProvider) Error(context.Context, string, ...Attribute) {}

func TestSpanContext(t *testing.T) {
	ctx := context.Background()
	if SpanFromContext(ctx) != nil {
		t.Fatal("empty context should carry no span")
	}

	first := &stubSpan{name: "first"}
	second := &stubSpan{name: "second"}
	ctx = ContextWithSpan(ctx, first)
	if got := SpanFromContext(ctx); got != first {
		t.Errorf("SpanFromContext() = %v, want first", got)
	}
	ctx = ContextWithSpan(ctx, second)
	if got := SpanFromContext(ctx); got != second {
		t.Errorf("SpanFromContext() after overwrite = %v, want second", got)
	}
}

func TestObserverContext(t *testing.T) {
	ctx := context.Background()
	if ObserverFromContext(ctx) != nil {
		t.Fatal("empty context should carry no observer")
	}

	var observer Provider = stubProvider{}
	ctx = ContextWithObserver(ctx, observer)
	if ObserverFromContext(ctx) == nil {
		t.Fatal("ObserverFromContext() = nil after ContextWithObserver")
	}

	// Span and observer keys must not collide.
	if SpanFromContext(ctx) != nil {
		t.Error("observer must not be returned as a span")
	}
}

//nolint:staticcheck // nil context is part of the contract
func TestNilContext(t *testing.T) {
	if SpanFromContext(nil) != nil || ObserverFromContext(nil) != nil {
		t.Error("nil context should yield nil values")
	}
	if ContextWithSpan(nil, &stubSpan{}) == nil {
		t.Error("ContextWithSpan(nil) returned nil context")
	}
	if ContextWithObserver(nil, stubProvider{}) == nil {
		t.Error("ContextWithObserver(nil) returned nil context")
	}
}
