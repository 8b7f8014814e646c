// Package migrations holds the embedded database schema of the notes service
// and applies it with goose.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"sync"

	"github.com/pressly/goose/v3"
	"github.com/rs/zerolog"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

// ErrNilDB is returned when Migrate is called without a database handle.
var ErrNilDB = errors.New("db is nil")

// goose keeps dialect and base FS in package state
var mu sync.Mutex

// Migrate applies all pending migrations for driver ("pgx", "postgres" or
// "sqlite3"). Goose output goes to the zerolog logger stored in ctx.
func Migrate(ctx context.Context, db *sql.DB, driver string) error {
	if db == nil {
		return fmt.Errorf("migration error: %w", ErrNilDB)
	}

	dialect, dir, err := dialectFor(driver)
	if err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	mu.Lock()
	defer mu.Unlock()

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(gooseLogger{log: zerolog.Ctx(ctx)})

	if err = goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err = goose.UpContext(ctx, db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

func dialectFor(driver string) (dialect, dir string, err error) {
	switch driver {
	case "pgx", "postgres":
		return "pgx", "postgres", nil
	case "sqlite3", "sqlite":
		return "sqlite3", "sqlite", nil
	default:
		return "", "", fmt.Errorf("unsupported driver %q", driver)
	}
}

// gooseLogger routes goose's printf-style output through zerolog.
type gooseLogger struct {
	log *zerolog.Logger
}

func (l gooseLogger) Fatalf(format string, v ...any) {
	l.log.Error().Str("func", "goose").Msgf(format, v...)
}

func (l gooseLogger) Printf(format string, v ...any) {
	l.log.Info().Str("func", "goose").Msgf(format, v...)
}
