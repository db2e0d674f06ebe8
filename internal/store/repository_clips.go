package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/clipvault/clipvault/internal/logger"
	"github.com/clipvault/clipvault/models"
)

var clipColumns = []string{
	"id", "kind", "payload", "preview",
	"created_at", "updated_at", "version", "dirty", "deleted",
}

type clipRepository struct {
	*DB
	logger *logger.Logger
}

func NewClipRepository(db *DB, logger *logger.Logger) ClipRepository {
	return &clipRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *clipRepository) SaveClips(ctx context.Context, entries ...models.ClipEntry) error {
	log := logger.FromContext(ctx)

	for _, entry := range entries {
		query, args, err := sq.Insert("clips").
			Options("OR REPLACE").
			Columns(clipColumns...).
			Values(
				entry.ID,
				entry.Kind,
				entry.Payload,
				entry.Preview,
				entry.CreatedAt,
				entry.UpdatedAt,
				entry.Version,
				entry.Dirty,
				entry.Deleted,
			).
			ToSql()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		if _, err := r.DB.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).
				Str("func", "clipRepository.SaveClips").
				Str("clip_id", entry.ID).
				Msg("failed to execute upsert for clip entry")
			return fmt.Errorf("failed to save clip entry (id=%s): %w", entry.ID, err)
		}
	}

	return nil
}

func (r *clipRepository) GetClip(ctx context.Context, id string) (models.ClipEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Select(clipColumns...).
		From("clips").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.ClipEntry{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var entry models.ClipEntry
	row := r.DB.QueryRowContext(ctx, query, args...)
	if err := scanClip(row.Scan, &entry); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.ClipEntry{}, ErrClipNotFound
		}
		log.Err(err).
			Str("func", "clipRepository.GetClip").
			Str("clip_id", id).
			Msg("failed to scan clip entry row")
		return models.ClipEntry{}, fmt.Errorf("failed to scan clip entry row: %w", err)
	}

	return entry, nil
}

func (r *clipRepository) GetAllClips(ctx context.Context) ([]models.ClipEntry, error) {
	return r.queryClips(ctx, "clipRepository.GetAllClips", sq.Eq{"deleted": false})
}

func (r *clipRepository) DirtyClips(ctx context.Context) ([]models.ClipEntry, error) {
	return r.queryClips(ctx, "clipRepository.DirtyClips", sq.Eq{"dirty": true})
}

func (r *clipRepository) MarkClean(ctx context.Context, ids ...string) error {
	if len(ids) == 0 {
		return nil
	}
	log := logger.FromContext(ctx)

	query, args, err := sq.Update("clips").
		Set("dirty", false).
		Where(sq.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "clipRepository.MarkClean").
			Int("ids", len(ids)).
			Msg("failed to clear dirty flag")
		return fmt.Errorf("failed to mark clips clean: %w", err)
	}

	return nil
}

func (r *clipRepository) SoftDeleteClip(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := sq.Update("clips").
		Set("deleted", true).
		Set("dirty", true).
		Set("version", sq.Expr("version + 1")).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "clipRepository.SoftDeleteClip").
			Str("clip_id", id).
			Msg("failed to execute soft delete for clip entry")
		return fmt.Errorf("failed to delete clip entry (id=%s): %w", id, err)
	}

	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return ErrClipNotFound
	}

	return nil
}

func (r *clipRepository) queryClips(ctx context.Context, funcName string, pred any) ([]models.ClipEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Select(clipColumns...).
		From("clips").
		Where(pred).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to execute query for clip entries")
		return nil, fmt.Errorf("failed to query clip entries: %w", err)
	}
	defer rows.Close()

	var entries []models.ClipEntry
	for rows.Next() {
		var entry models.ClipEntry
		if err := scanClip(rows.Scan, &entry); err != nil {
			log.Err(err).Str("func", funcName).Msg("failed to scan clip entry row")
			return nil, fmt.Errorf("failed to scan clip entry row: %w", err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", funcName).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating clip entry rows: %w", err)
	}

	return entries, nil
}

func scanClip(scan func(dest ...any) error, entry *models.ClipEntry) error {
	return scan(
		&entry.ID,
		&entry.Kind,
		&entry.Payload,
		&entry.Preview,
		&entry.CreatedAt,
		&entry.UpdatedAt,
		&entry.Version,
		&entry.Dirty,
		&entry.Deleted,
	)
}
