package models

import (
	"time"

	"github.com/google/uuid"

	"triagelock/domain/schema"
)

// Session owns the per-session quota. Credits start at a fixed constant,
// are decremented only on a fully validated success, and are never
// replenished within the session.
type Session struct {
	ID              uuid.UUID `db:"id" json:"id"`
	Credits         int       `db:"credits" json:"credits"`
	StartingCredits int       `db:"starting_credits" json:"starting_credits"`
	StartedAt       time.Time `db:"started_at" json:"started_at"`
}

// NewSession creates a session with its full credit allowance
func NewSession(startingCredits int) *Session {
	return &Session{
		ID:              uuid.New(),
		Credits:         startingCredits,
		StartingCredits: startingCredits,
		StartedAt:       time.Now().UTC(),
	}
}

// HistoryEntry records one completed (validated) analysis for
// session-level aggregate display and export. RecordJSON holds the
// validated record serialized in schema order, so the latest entry per
// domain doubles as the session's exportable last result.
type HistoryEntry struct {
	Run            int           `db:"run" json:"run"`
	At             time.Time     `db:"at" json:"at"`
	Domain         schema.Domain `db:"domain" json:"domain"`
	LatencySeconds float64       `db:"latency_seconds" json:"latency_seconds"`
	ManualMinutes  int           `db:"manual_minutes" json:"manual_minutes"`
	TopField       string        `db:"top_field" json:"top_field"`
	TopValue       string        `db:"top_value" json:"top_value"`
	RecordJSON     []byte        `db:"record_json" json:"-"`
}
