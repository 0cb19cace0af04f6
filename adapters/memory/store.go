package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"triagelock/domain/schema"
	"triagelock/internal/errors"
	"triagelock/models"
	"triagelock/ports"
)

// Store keeps sessions and their history in process memory. This is the
// default backing when DATABASE_URL is unset; state does not survive a
// restart, which is acceptable for demo sessions.
type Store struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]models.Session
	history  map[uuid.UUID][]models.HistoryEntry
}

// NewStore creates an empty in-memory store
func NewStore() *Store {
	return &Store{
		sessions: make(map[uuid.UUID]models.Session),
		history:  make(map[uuid.UUID][]models.HistoryEntry),
	}
}

var (
	_ ports.SessionRepository = (*Store)(nil)
	_ ports.HistoryRepository = (*Store)(nil)
)

func (s *Store) CreateSession(_ context.Context, startingCredits int) (*models.Session, error) {
	session := models.NewSession(startingCredits)
	s.mu.Lock()
	s.sessions[session.ID] = *session
	s.mu.Unlock()
	return session, nil
}

func (s *Store) GetSession(_ context.Context, id uuid.UUID) (*models.Session, error) {
	s.mu.RLock()
	session, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, errors.NotFound("session")
	}
	return &session, nil
}

func (s *Store) SaveSession(_ context.Context, session *models.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[session.ID]; !ok {
		return errors.NotFound("session")
	}
	s.sessions[session.ID] = *session
	return nil
}

func (s *Store) Append(_ context.Context, sessionID uuid.UUID, entry models.HistoryEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[sessionID]; !ok {
		return errors.NotFound("session")
	}
	s.history[sessionID] = append(s.history[sessionID], entry)
	return nil
}

func (s *Store) List(_ context.Context, sessionID uuid.UUID) ([]models.HistoryEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entries := s.history[sessionID]
	out := make([]models.HistoryEntry, len(entries))
	copy(out, entries)
	return out, nil
}

func (s *Store) Latest(_ context.Context, sessionID uuid.UUID, domain schema.Domain) (*models.HistoryEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entries := s.history[sessionID]
	for i := len(entries) - 1; i >= 0; i-- {
		if entries[i].Domain == domain {
			entry := entries[i]
			return &entry, nil
		}
	}
	return nil, errors.NotFound("analysis for domain")
}
