package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-route-handler/internal/config"
	"github.com/MKhiriev/go-route-handler/internal/logger"
)

// Storages bundles the repositories of the notes service over one database.
type Storages struct {
	UserRepository UserRepository
	NoteRepository NoteRepository

	db *DB
}

// NewStorages connects to the configured database, applies migrations and
// builds the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to %s database: %w", cfg.DB.Driver, err)
	}

	if err = db.Migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}

	return &Storages{
		UserRepository: NewUserRepository(db, log),
		NoteRepository: NewNoteRepository(db, log),
		db:             db,
	}, nil
}

// Close releases the database connection.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
