package store

import (
	"database/sql"

	"github.com/snapsift/snapsift/internal/logger"
	"github.com/snapsift/snapsift/migrations"
)

type DB struct {
	*sql.DB
	logger *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
