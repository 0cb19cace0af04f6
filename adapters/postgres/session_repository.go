package postgres

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"triagelock/internal/errors"
	"triagelock/models"
	"triagelock/ports"
)

// SessionRepositoryImpl implements SessionRepository for PostgreSQL
type SessionRepositoryImpl struct {
	db *sqlx.DB
}

// NewSessionRepository creates a new PostgreSQL session repository
func NewSessionRepository(db *sqlx.DB) ports.SessionRepository {
	return &SessionRepositoryImpl{db: db}
}

// CreateSession creates a session with its full credit allowance
func (r *SessionRepositoryImpl) CreateSession(ctx context.Context, startingCredits int) (*models.Session, error) {
	session := models.NewSession(startingCredits)

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO sessions (id, credits, starting_credits, started_at)
		VALUES ($1, $2, $3, $4)
	`, session.ID, session.Credits, session.StartingCredits, session.StartedAt)
	if err != nil {
		return nil, errors.DatabaseError(err)
	}
	return session, nil
}

// GetSession retrieves a session by ID
func (r *SessionRepositoryImpl) GetSession(ctx context.Context, id uuid.UUID) (*models.Session, error) {
	var session models.Session
	err := r.db.GetContext(ctx, &session, `
		SELECT id, credits, starting_credits, started_at
		FROM sessions
		WHERE id = $1
	`, id)
	if err == sql.ErrNoRows {
		return nil, errors.NotFound("session")
	}
	if err != nil {
		return nil, errors.DatabaseError(err)
	}
	return &session, nil
}

// SaveSession persists the session's current credit count
func (r *SessionRepositoryImpl) SaveSession(ctx context.Context, session *models.Session) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE sessions
		SET credits = $2
		WHERE id = $1
	`, session.ID, session.Credits)
	if err != nil {
		return errors.DatabaseError(err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return errors.NotFound("session")
	}
	return nil
}
