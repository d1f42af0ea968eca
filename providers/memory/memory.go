package memory

import (
	"context"

	"github.com/leofalp/serpsim/providers/ai"
)

// Provider stores the transcript of a single chat session.
type Provider interface {
	AppendMessage(ctx context.Context, message *ai.Message)
	AllMessages(ctx context.Context) ([]ai.Message, error)
	LastMessages(ctx context.Context, n int) ([]ai.Message, error)
	PopLastMessage(ctx context.Context) (*ai.Message, error)
	Count(ctx context.Context) (int, error)
	ClearMessages(ctx context.Context)
}
