package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[uuid.UUID]*Session)}
}

func (s *MemoryStore) Create() (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	token := uuid.New()
	for s.sessions[token] != nil {
		token = uuid.New()
	}

	sess := &Session{Token: token, CreatedAt: time.Now().UTC()}
	s.sessions[token] = sess
	return copySession(sess), nil
}

func (s *MemoryStore) Get(token uuid.UUID) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[token]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return copySession(sess), nil
}

func (s *MemoryStore) Delete(token uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[token]; !ok {
		return ErrSessionNotFound
	}
	delete(s.sessions, token)
	return nil
}

func (s *MemoryStore) AppendTurn(token uuid.UUID, turn Turn) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[token]
	if !ok {
		return ErrSessionNotFound
	}
	sess.Turns = append(sess.Turns, turn)
	return nil
}

func (s *MemoryStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// copySession returns a snapshot so callers cannot mutate shared state
// outside the store's lock.
func copySession(sess *Session) *Session {
	out := &Session{Token: sess.Token, CreatedAt: sess.CreatedAt}
	if len(sess.Turns) > 0 {
		out.Turns = make([]Turn, len(sess.Turns))
		copy(out.Turns, sess.Turns)
	}
	return out
}
