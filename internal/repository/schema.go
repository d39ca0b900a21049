package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// EnsureSchema creates the two tables on startup when they do not exist yet.
// Dates are stored as ISO-8601 text so ordering comparisons stay lexical.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	const bookings = `
		CREATE TABLE IF NOT EXISTS bookings (
			id         BIGSERIAL PRIMARY KEY,
			name       TEXT NOT NULL,
			email      TEXT NOT NULL,
			check_in   TEXT NOT NULL,
			check_out  TEXT NOT NULL,
			guests     INTEGER,
			room_type  TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`

	const contacts = `
		CREATE TABLE IF NOT EXISTS contacts (
			id         BIGSERIAL PRIMARY KEY,
			name       TEXT NOT NULL,
			email      TEXT NOT NULL,
			subject    TEXT NOT NULL,
			message    TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`

	if _, err := pool.Exec(ctx, bookings); err != nil {
		return err
	}
	_, err := pool.Exec(ctx, contacts)
	return err
}
