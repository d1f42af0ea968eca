package chat

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/leofalp/serpsim/providers/ai"
	"github.com/leofalp/serpsim/providers/memory"
	"github.com/leofalp/serpsim/providers/memory/inmemory"
)

// Session is one conversation in a fixed language.
type Session struct {
	ID       string
	Language Language
	memory   memory.Provider

	// mu serialises exchanges so turns never interleave.
	mu sync.Mutex
}

// Transcript returns the messages exchanged so far, greeting excluded.
func (s *Session) Transcript(ctx context.Context) ([]ai.Message, error) {
	return s.memory.AllMessages(ctx)
}

// Recent returns the last n messages and the transcript length. A
// non-positive n returns the whole transcript.
func (s *Session) Recent(ctx context.Context, n int) ([]ai.Message, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	total, err := s.memory.Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	var msgs []ai.Message
	if n <= 0 {
		msgs, err = s.Transcript(ctx)
	} else {
		msgs, err = s.memory.LastMessages(ctx, n)
	}
	return msgs, total, err
}

// discardLast removes the newest message if it has role. Callers hold mu.
func (s *Session) discardLast(ctx context.Context, role ai.MessageRole) error {
	last, err := s.memory.LastMessages(ctx, 1)
	if err != nil || len(last) == 0 || last[0].Role != role {
		return err
	}
	_, err = s.memory.PopLastMessage(ctx)
	return err
}

// MemoryFactory builds the transcript store of a new session.
type MemoryFactory func() memory.Provider

// SessionStore owns at most one live session per language.
type SessionStore struct {
	mu        sync.Mutex
	sessions  map[Language]*Session
	newMemory MemoryFactory
}

// NewSessionStore creates an empty store. A nil factory uses unbounded
// in-memory transcripts.
func NewSessionStore(factory MemoryFactory) *SessionStore {
	if factory == nil {
		factory = func() memory.Provider { return inmemory.New() }
	}
	return &SessionStore{sessions: make(map[Language]*Session), newMemory: factory}
}

// Session returns the live session for lang, creating it when missing.
func (s *SessionStore) Session(lang Language) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok := s.sessions[lang]; ok {
		return sess
	}
	sess := &Session{ID: uuid.NewString(), Language: lang, memory: s.newMemory()}
	s.sessions[lang] = sess
	return sess
}

// Lookup returns the live session for lang without creating one.
func (s *SessionStore) Lookup(lang Language) (*Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[lang]
	return sess, ok
}

// reset drops sess only while it is still the live session for lang.
func (s *SessionStore) reset(lang Language, sess *Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sessions[lang] == sess {
		delete(s.sessions, lang)
	}
}

// Reset clears the transcript of the session for lang, if any, and
// discards it so the next message starts a new session.
func (s *SessionStore) Reset(ctx context.Context, lang Language) {
	s.mu.Lock()
	sess, ok := s.sessions[lang]
	delete(s.sessions, lang)
	s.mu.Unlock()
	if !ok {
		return
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.memory.ClearMessages(ctx)
}
