package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	sq "github.com/Masterminds/squirrel"

	"github.com/clipvault/clipvault/internal/logger"
)

type settingsRepository struct {
	*DB
	logger *logger.Logger
}

func NewSettingsRepository(db *DB, logger *logger.Logger) SettingsRepository {
	return &settingsRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *settingsRepository) GetBool(ctx context.Context, key string) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Select("value").
		From("settings").
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var raw string
	if err := r.DB.QueryRowContext(ctx, query, args...).Scan(&raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// Never set: default off.
			return false, nil
		}
		log.Err(err).
			Str("func", "settingsRepository.GetBool").
			Str("key", key).
			Msg("failed to read setting")
		return false, fmt.Errorf("failed to read setting %q: %w", key, err)
	}

	value, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("setting %q holds a non-boolean value %q: %w", key, raw, err)
	}
	return value, nil
}

func (r *settingsRepository) SetBool(ctx context.Context, key string, value bool) error {
	log := logger.FromContext(ctx)

	query, args, err := sq.Insert("settings").
		Options("OR REPLACE").
		Columns("key", "value").
		Values(key, strconv.FormatBool(value)).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "settingsRepository.SetBool").
			Str("key", key).
			Msg("failed to persist setting")
		return fmt.Errorf("failed to persist setting %q: %w", key, err)
	}

	return nil
}
