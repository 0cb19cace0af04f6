package postgres

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"triagelock/domain/schema"
	"triagelock/internal/errors"
	"triagelock/models"
	"triagelock/ports"
)

// HistoryRepositoryImpl implements HistoryRepository for PostgreSQL
type HistoryRepositoryImpl struct {
	db *sqlx.DB
}

// NewHistoryRepository creates a new PostgreSQL history repository
func NewHistoryRepository(db *sqlx.DB) ports.HistoryRepository {
	return &HistoryRepositoryImpl{db: db}
}

// Append records one completed analysis
func (r *HistoryRepositoryImpl) Append(ctx context.Context, sessionID uuid.UUID, entry models.HistoryEntry) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO analyses (session_id, run, at, domain, latency_seconds, manual_minutes, top_field, top_value, record_json)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, sessionID, entry.Run, entry.At, entry.Domain, entry.LatencySeconds,
		entry.ManualMinutes, entry.TopField, entry.TopValue, entry.RecordJSON)
	if err != nil {
		return errors.DatabaseError(err)
	}
	return nil
}

// List returns a session's analyses in run order
func (r *HistoryRepositoryImpl) List(ctx context.Context, sessionID uuid.UUID) ([]models.HistoryEntry, error) {
	entries := []models.HistoryEntry{}
	err := r.db.SelectContext(ctx, &entries, `
		SELECT run, at, domain, latency_seconds, manual_minutes, top_field, top_value, record_json
		FROM analyses
		WHERE session_id = $1
		ORDER BY run ASC
	`, sessionID)
	if err != nil {
		return nil, errors.DatabaseError(err)
	}
	return entries, nil
}

// Latest returns the most recent analysis for a domain within a session
func (r *HistoryRepositoryImpl) Latest(ctx context.Context, sessionID uuid.UUID, domain schema.Domain) (*models.HistoryEntry, error) {
	var entry models.HistoryEntry
	err := r.db.GetContext(ctx, &entry, `
		SELECT run, at, domain, latency_seconds, manual_minutes, top_field, top_value, record_json
		FROM analyses
		WHERE session_id = $1 AND domain = $2
		ORDER BY run DESC
		LIMIT 1
	`, sessionID, domain)
	if err == sql.ErrNoRows {
		return nil, errors.NotFound("analysis for domain")
	}
	if err != nil {
		return nil, errors.DatabaseError(err)
	}
	return &entry, nil
}
