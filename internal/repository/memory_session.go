package repository

import (
	"context"
	"sync"

	"github.com/lk16/checkers/internal/checkers"
	"github.com/lk16/checkers/internal/config"
	"github.com/lk16/checkers/internal/models"
)

// MemorySessionStore keeps sessions in process memory. It is used when no Redis is configured.
type MemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]models.Session
	history  map[string][]checkers.Snapshot
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{
		sessions: make(map[string]models.Session),
		history:  make(map[string][]checkers.Snapshot),
	}
}

func (m *MemorySessionStore) Create(_ context.Context, session models.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.sessions[session.ID]; exists {
		return ErrGameExists
	}

	m.sessions[session.ID] = session
	return nil
}

func (m *MemorySessionStore) Load(_ context.Context, id string) (models.Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	session, exists := m.sessions[id]
	if !exists {
		return models.Session{}, ErrGameNotFound
	}

	return session, nil
}

func (m *MemorySessionStore) Save(_ context.Context, session models.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sessions[session.ID] = session
	return nil
}

func (m *MemorySessionStore) PushHistory(_ context.Context, id string, snapshot checkers.Snapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stack := append(m.history[id], snapshot)
	if len(stack) > config.MaxUndoDepth {
		stack = stack[len(stack)-config.MaxUndoDepth:]
	}
	m.history[id] = stack
	return nil
}

func (m *MemorySessionStore) PopHistory(_ context.Context, id string) (checkers.Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stack := m.history[id]
	if len(stack) == 0 {
		return checkers.Snapshot{}, ErrHistoryEmpty
	}

	snapshot := stack[len(stack)-1]
	m.history[id] = stack[:len(stack)-1]
	return snapshot, nil
}

func (m *MemorySessionStore) ClearHistory(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.history, id)
	return nil
}
