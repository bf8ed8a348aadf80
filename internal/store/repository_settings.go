package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	sq "github.com/Masterminds/squirrel"

	"github.com/snapsift/snapsift/internal/logger"
)

type settingsRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewSettingsRepository constructs the sqlite-backed [SettingsRepository].
func NewSettingsRepository(db *DB, log *logger.Logger) SettingsRepository {
	return &settingsRepository{db: db, logger: log}
}

// GetBool implements [SettingsRepository]. A key that was never written
// reads as false, not as an error.
func (r *settingsRepository) GetBool(ctx context.Context, key string) (bool, error) {
	query, args, err := sq.Select("value").
		From("settings").
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build select setting query: %w", err)
	}

	var raw string
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("query setting %s: %w", key, err)
	}

	value, err := strconv.ParseBool(raw)
	if err != nil {
		r.logger.Warn().Str("key", key).Str("value", raw).Msg("setting holds a non-boolean value, treating as false")
		return false, nil
	}

	return value, nil
}

// SetBool implements [SettingsRepository] with an upsert.
func (r *settingsRepository) SetBool(ctx context.Context, key string, value bool) error {
	query, args, err := sq.Insert("settings").
		Columns("key", "value").
		Values(key, strconv.FormatBool(value)).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP").
		ToSql()
	if err != nil {
		return fmt.Errorf("build upsert setting query: %w", err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert setting %s: %w", key, err)
	}

	return nil
}
