package store

import (
	"context"
	"fmt"

	"github.com/snapsift/snapsift/internal/config"
	"github.com/snapsift/snapsift/internal/logger"
)

// Storages aggregates all local repositories behind one constructor.
type Storages struct {
	Settings SettingsRepository

	db *DB
}

// NewStorages opens the local sqlite database described by cfg, applies
// migrations, and wires the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectSQLite(ctx, cfg.DB.DSN, log)
	if err != nil {
		return nil, fmt.Errorf("connect local database: %w", err)
	}

	if err = db.Migrate(); err != nil {
		return nil, fmt.Errorf("migrate local database: %w", err)
	}

	return &Storages{
		Settings: NewSettingsRepository(db, log),
		db:       db,
	}, nil
}

// Close releases the underlying database connection.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
