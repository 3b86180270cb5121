package sessions

import (
	"context"
	"sync"
	"time"

	"github.com/esportshub/backend/internal/common"
	"github.com/esportshub/backend/internal/server/models"
)

// MemoryStore keeps sessions in a mutex-guarded map. Expired entries are
// dropped lazily on read.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]models.Session
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]models.Session)}
}

func (s *MemoryStore) Save(_ context.Context, session *models.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.Token] = *session
	return nil
}

func (s *MemoryStore) Get(_ context.Context, token string) (*models.Session, error) {
	s.mu.RLock()
	session, ok := s.sessions[token]
	s.mu.RUnlock()

	if !ok {
		return nil, common.ErrNotFound
	}

	if time.Now().After(session.Expires) {
		s.mu.Lock()
		delete(s.sessions, token)
		s.mu.Unlock()
		return nil, common.ErrNotFound
	}

	return &session, nil
}

func (s *MemoryStore) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}
