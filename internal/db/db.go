package db

import (
	"context"
	"fmt"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// Dialect identifies the SQL flavour behind a connection.
type Dialect string

const (
	Postgres Dialect = "postgres"
	SQLite   Dialect = "sqlite"
)

func init() {
	// modernc registers itself as "sqlite", which sqlx does not know yet.
	sqlx.BindDriver("sqlite", sqlx.QUESTION)
}

// DriverFor resolves the database/sql driver name and DSN for a DATABASE_URL.
// postgres:// and postgresql:// URLs go to pgx; sqlite:, file: and
// :memory: go to modernc sqlite.
func DriverFor(databaseURL string) (driver, dsn string, dialect Dialect, err error) {
	switch {
	case strings.HasPrefix(databaseURL, "postgres://"), strings.HasPrefix(databaseURL, "postgresql://"):
		return "pgx", databaseURL, Postgres, nil
	case strings.HasPrefix(databaseURL, "sqlite://"):
		return "sqlite", strings.TrimPrefix(databaseURL, "sqlite://"), SQLite, nil
	case strings.HasPrefix(databaseURL, "sqlite:"):
		return "sqlite", strings.TrimPrefix(databaseURL, "sqlite:"), SQLite, nil
	case strings.HasPrefix(databaseURL, "file:"), databaseURL == ":memory:":
		return "sqlite", databaseURL, SQLite, nil
	default:
		return "", "", "", fmt.Errorf("unsupported DATABASE_URL scheme: %q", databaseURL)
	}
}

// Open connects, tunes the pool for the dialect and pings.
func Open(ctx context.Context, databaseURL string) (*sqlx.DB, Dialect, error) {
	driver, dsn, dialect, err := DriverFor(databaseURL)
	if err != nil {
		return nil, "", err
	}

	conn, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, "", fmt.Errorf("open %s: %w", dialect, err)
	}

	switch dialect {
	case SQLite:
		// One connection: an in-memory database lives and dies with its connection,
		// and SQLite serializes writers anyway.
		conn.SetMaxOpenConns(1)
	default:
		conn.SetMaxOpenConns(10)
		conn.SetConnMaxLifetime(2 * time.Hour)
	}

	if err := conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return nil, "", fmt.Errorf("ping %s: %w", dialect, err)
	}
	return conn, dialect, nil
}
