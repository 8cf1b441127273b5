package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrNotFound       = errors.New("record not found")
	ErrDuplicateEmail = errors.New("email already registered")
)

// Querier is the subset of pgxpool.Pool the repositories need. Narrowing
// to an interface lets tests substitute a fake without a live database.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const schema = `
CREATE TABLE IF NOT EXISTS users (
    email         TEXT PRIMARY KEY,
    password_hash TEXT NOT NULL,
    full_name     TEXT NOT NULL DEFAULT '',
    is_admin      BOOLEAN NOT NULL DEFAULT FALSE,
    is_active     BOOLEAN NOT NULL DEFAULT TRUE,
    created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
    last_login    TIMESTAMPTZ
);

CREATE TABLE IF NOT EXISTS predictions (
    id              UUID PRIMARY KEY,
    user_email      TEXT NOT NULL REFERENCES users(email),
    kind            TEXT NOT NULL,
    prediction      TEXT NOT NULL,
    risk_level      TEXT NOT NULL,
    risk_percentage DOUBLE PRECISION NOT NULL,
    confidence      DOUBLE PRECISION NOT NULL,
    model_used      TEXT NOT NULL,
    details         JSONB,
    created_at      TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS idx_predictions_user ON predictions (user_email, created_at DESC);

CREATE TABLE IF NOT EXISTS chat_history (
    id         UUID PRIMARY KEY,
    user_email TEXT NOT NULL REFERENCES users(email),
    message    TEXT NOT NULL,
    reply      TEXT NOT NULL,
    condition  TEXT NOT NULL DEFAULT '',
    urgency    TEXT NOT NULL DEFAULT 'normal',
    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS idx_chat_history_user ON chat_history (user_email, created_at DESC);
`

// EnsureSchema creates the tables on startup if they do not exist yet.
func EnsureSchema(ctx context.Context, q Querier) error {
	_, err := q.Exec(ctx, schema)
	return err
}

// isUniqueViolation reports whether err is a Postgres duplicate-key error.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
