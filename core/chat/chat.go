package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/leofalp/serpsim/providers/ai"
	"github.com/leofalp/serpsim/providers/observability"
)

// DefaultModel is the chat model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// Service sends chat messages through a provider.
type Service struct {
	provider ai.Provider
	store    *SessionStore
	model    string
	observer observability.Provider
}

// NewService creates a chat Service. An empty model uses DefaultModel and a
// nil store gets a fresh one.
func NewService(provider ai.Provider, store *SessionStore, model string, observer observability.Provider) *Service {
	if store == nil {
		store = NewSessionStore(nil)
	}
	if model == "" {
		model = DefaultModel
	}
	return &Service{provider: provider, store: store, model: model, observer: observer}
}

// Store exposes the session store.
func (s *Service) Store() *SessionStore { return s.store }

// Send appends message to the lang session, sends the whole transcript with
// the language's system instruction and returns the reply. On failure the
// session is dropped and ErrChatFailed is returned.
func (s *Service) Send(ctx context.Context, lang Language, message string) (reply string, err error) {
	if strings.TrimSpace(message) == "" {
		return "", ErrEmptyMessage
	}
	if _, err := ParseLanguage(string(lang)); err != nil {
		return "", err
	}

	sess := s.store.Session(lang)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	var span observability.Span
	if s.observer != nil {
		ctx = observability.ContextWithObserver(ctx, s.observer)
		ctx, span = s.observer.StartSpan(ctx, observability.SpanChatSend,
			observability.String(observability.AttrChatLanguage, string(lang)),
			observability.String(observability.AttrChatSessionID, sess.ID),
		)
		defer func() {
			if err != nil {
				span.RecordError(err)
				span.SetStatus(observability.StatusError, err.Error())
			} else {
				span.SetStatus(observability.StatusOK, "")
			}
			span.End()
		}()
	}

	reply, err = s.exchange(ctx, sess, message)
	if err != nil {
		s.store.reset(lang, sess)
		return "", fmt.Errorf("%w: %w", ErrChatFailed, err)
	}
	return reply, nil
}

func (s *Service) exchange(ctx context.Context, sess *Session, message string) (string, error) {
	userMsg := ai.NewTextMessage(ai.RoleUser, message)
	sess.memory.AppendMessage(ctx, &userMsg)

	history, err := sess.memory.AllMessages(ctx)
	if err != nil {
		return "", err
	}

	resp, err := s.provider.SendMessage(ctx, ai.ChatRequest{
		Model:        s.model,
		SystemPrompt: sess.Language.SystemInstruction(),
		Messages:     history,
	})
	if err != nil {
		// leave the transcript as it was before this turn
		if popErr := sess.discardLast(ctx, ai.RoleUser); popErr != nil {
			return "", errors.Join(err, popErr)
		}
		return "", err
	}

	assistantMsg := ai.NewTextMessage(ai.RoleAssistant, resp.Content)
	sess.memory.AppendMessage(ctx, &assistantMsg)
	return resp.Content, nil
}

// History returns up to n of the latest messages of the lang session and the
// total number stored. With no live session it returns nothing.
func (s *Service) History(ctx context.Context, lang Language, n int) ([]ai.Message, int, error) {
	sess, ok := s.store.Lookup(lang)
	if !ok {
		return nil, 0, nil
	}
	return sess.Recent(ctx, n)
}
