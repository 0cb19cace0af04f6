package postgres

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"triagelock/internal/errors"
)

const bootstrapSQL = `
CREATE TABLE IF NOT EXISTS sessions (
	id UUID PRIMARY KEY,
	credits INT NOT NULL,
	starting_credits INT NOT NULL,
	started_at TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS analyses (
	session_id UUID NOT NULL REFERENCES sessions(id) ON DELETE CASCADE,
	run INT NOT NULL,
	at TIMESTAMPTZ NOT NULL,
	domain TEXT NOT NULL,
	latency_seconds DOUBLE PRECISION NOT NULL,
	manual_minutes INT NOT NULL,
	top_field TEXT NOT NULL,
	top_value TEXT NOT NULL,
	record_json JSONB NOT NULL,
	PRIMARY KEY (session_id, run)
);

CREATE INDEX IF NOT EXISTS analyses_session_domain_idx ON analyses (session_id, domain, run DESC);
`

// Connect opens the database, verifies connectivity and applies the
// bootstrap DDL
func Connect(ctx context.Context, url string) (*sqlx.DB, error) {
	db, err := sqlx.Open("postgres", url)
	if err != nil {
		return nil, errors.DatabaseError(err)
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, errors.DatabaseError(err)
	}
	if _, err := db.ExecContext(ctx, bootstrapSQL); err != nil {
		db.Close()
		return nil, errors.DatabaseError(err)
	}
	return db, nil
}
