package inmemory

import (
	"context"
	"slices"
	"sync"

	"github.com/leofalp/serpsim/providers/ai"
	"github.com/leofalp/serpsim/providers/memory"
	"github.com/leofalp/serpsim/providers/observability"
)

// ArrayMemory keeps a transcript in a slice guarded by a RWMutex.
// A positive limit caps the transcript; the oldest messages are evicted first.
type ArrayMemory struct {
	mu       sync.RWMutex
	messages []ai.Message
	limit    int
}

// New returns an empty, unbounded transcript.
func New() *ArrayMemory {
	return &ArrayMemory{messages: []ai.Message{}}
}

// NewBounded returns an empty transcript holding at most limit messages.
// A limit of zero or less means unbounded.
func NewBounded(limit int) *ArrayMemory {
	m := New()
	m.limit = max(limit, 0)
	return m
}

var _ memory.Provider = (*ArrayMemory)(nil)

// AppendMessage stores a copy of message. Nil messages are ignored.
// When ctx carries a span the append is recorded on it.
func (m *ArrayMemory) AppendMessage(ctx context.Context, message *ai.Message) {
	if message == nil {
		return
	}

	m.mu.Lock()
	m.messages = append(m.messages, *message)
	if m.limit > 0 && len(m.messages) > m.limit {
		m.messages = slices.Delete(m.messages, 0, len(m.messages)-m.limit)
	}
	total := len(m.messages)
	m.mu.Unlock()

	if span := observability.SpanFromContext(ctx); span != nil {
		span.AddEvent(observability.EventMemoryAppend,
			observability.String(observability.AttrMemoryMessageRole, string(message.Role)),
			observability.Int(observability.AttrMemoryTotal, total),
		)
	}
}

// Count returns the number of stored messages.
func (m *ArrayMemory) Count(_ context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.messages), nil
}

// AllMessages returns a copy of the transcript.
func (m *ArrayMemory) AllMessages(_ context.Context) ([]ai.Message, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]ai.Message{}, m.messages...), nil
}

// LastMessages returns up to the last n messages as an independent slice.
func (m *ArrayMemory) LastMessages(_ context.Context, n int) ([]ai.Message, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	n = min(max(n, 0), len(m.messages))
	return append([]ai.Message{}, m.messages[len(m.messages)-n:]...), nil
}

// PopLastMessage removes and returns the newest message, or nil if empty.
func (m *ArrayMemory) PopLastMessage(_ context.Context) (*ai.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.messages) == 0 {
		return nil, nil
	}
	last := m.messages[len(m.messages)-1]
	m.messages = m.messages[:len(m.messages)-1]
	return &last, nil
}

// ClearMessages empties the transcript, keeping its capacity.
func (m *ArrayMemory) ClearMessages(ctx context.Context) {
	if span := observability.SpanFromContext(ctx); span != nil {
		span.AddEvent(observability.EventMemoryClear)
	}

	m.mu.Lock()
	m.messages = m.messages[:0]
	m.mu.Unlock()
}
