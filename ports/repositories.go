package ports

import (
	"context"

	"github.com/google/uuid"

	"triagelock/domain/schema"
	"triagelock/models"
)

// SessionRepository stores per-session quota state
type SessionRepository interface {
	CreateSession(ctx context.Context, startingCredits int) (*models.Session, error)
	GetSession(ctx context.Context, id uuid.UUID) (*models.Session, error)
	SaveSession(ctx context.Context, session *models.Session) error
}

// HistoryRepository stores completed analyses for session-level aggregate
// display and export
type HistoryRepository interface {
	Append(ctx context.Context, sessionID uuid.UUID, entry models.HistoryEntry) error
	List(ctx context.Context, sessionID uuid.UUID) ([]models.HistoryEntry, error)
	// Latest returns the most recent entry for a domain, or NotFound
	Latest(ctx context.Context, sessionID uuid.UUID, domain schema.Domain) (*models.HistoryEntry, error)
}
