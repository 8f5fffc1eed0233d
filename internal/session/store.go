package session

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// Store guarda sessões por id opaco. Get de um id desconhecido
// devolve uma sessão vazia, nunca erro de "não encontrado".
type Store interface {
	Get(ctx context.Context, id string) (*Session, error)
	Save(ctx context.Context, id string, s *Session) error
	Delete(ctx context.Context, id string) error
}

// NewID gera o id opaco de uma nova sessão.
func NewID() string {
	return uuid.NewString()
}

// --------------------------------------------------
// Memory store (dev / testes)
// --------------------------------------------------

type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]Session
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]Session),
	}
}

func (m *MemoryStore) Get(ctx context.Context, id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if s, ok := m.sessions[id]; ok {
		copied := s
		return &copied, nil
	}
	return New(), nil
}

func (m *MemoryStore) Save(ctx context.Context, id string, s *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sessions[id] = *s
	return nil
}

func (m *MemoryStore) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, id)
	return nil
}

var _ Store = (*MemoryStore)(nil)
