package store

import (
	"context"
	"fmt"

	"github.com/cosplitz/cosplitz-client/internal/config"
	"github.com/cosplitz/cosplitz-client/internal/logger"
)

// NewSessionStore initialises the persistence backend selected by cfg.Driver:
//
//   - config.StorageDriverNone:   a no-op store, nothing survives the process;
//   - config.StorageDriverFile:   a JSON file at cfg.Path;
//   - config.StorageDriverSQLite: an SQLite database at cfg.Path, migrated to
//     the current schema on startup.
//
// The configuration has already been validated, so an unknown driver here is
// a programming error and is reported as such.
func NewSessionStore(cfg config.Storage, log *logger.Logger) (SessionStore, error) {
	switch cfg.Driver {
	case config.StorageDriverNone:
		return NewNoopStore(), nil

	case config.StorageDriverFile:
		s, err := NewFileStore(cfg.Path, log)
		if err != nil {
			return nil, fmt.Errorf("file session store: %w", err)
		}
		return s, nil

	case config.StorageDriverSQLite:
		db, err := NewConnectSQLite(context.Background(), cfg.Path, log)
		if err != nil {
			return nil, fmt.Errorf("sqlite session store: %w", err)
		}
		if err = db.Migrate(); err != nil {
			return nil, fmt.Errorf("sqlite session store migration: %w", err)
		}
		return NewSQLiteStore(db, log), nil

	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}
