package db

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// seq is assigned by the database on insert and is the listing order, so
// petals sharing a created_at keep the order they were written in.
var postgresSchema = []string{`
CREATE TABLE IF NOT EXISTS petals (
    seq BIGSERIAL PRIMARY KEY,
    id TEXT NOT NULL UNIQUE,
    text TEXT NOT NULL,
    day_of_week TEXT NOT NULL,
    time_of_day TEXT NOT NULL,
    current_emotion TEXT NOT NULL,
    desired_emotion TEXT NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`,
}

var sqliteSchema = []string{`
CREATE TABLE IF NOT EXISTS petals (
    seq INTEGER PRIMARY KEY AUTOINCREMENT,
    id TEXT NOT NULL UNIQUE,
    text TEXT NOT NULL,
    day_of_week TEXT NOT NULL,
    time_of_day TEXT NOT NULL,
    current_emotion TEXT NOT NULL,
    desired_emotion TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
)`,
}

// RunMigrations creates the petals table if it is missing.
func RunMigrations(ctx context.Context, db *sqlx.DB, dialect Dialect) error {
	schema := postgresSchema
	if dialect == SQLite {
		schema = sqliteSchema
	}

	for i, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i+1, err)
		}
	}
	return nil
}
