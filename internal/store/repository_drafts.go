package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mikevskater/sheet-todo/internal/logger"
	"github.com/mikevskater/sheet-todo/models"
)

type draftRepository struct {
	*DB
	logger *logger.Logger
}

// NewDraftRepository constructs the SQLite-backed [DraftRepository].
func NewDraftRepository(db *DB, logger *logger.Logger) DraftRepository {
	return &draftRepository{
		DB:     db,
		logger: logger,
	}
}

// SaveDraft implements [DraftRepository].
func (r *draftRepository) SaveDraft(ctx context.Context, draft models.Draft) error {
	query, args, err := buildUpsertDraftQuery(draft)
	if err != nil {
		return fmt.Errorf("build upsert draft query: %w", err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).
			Str("func", "draftRepository.SaveDraft").
			Str("basket", draft.Basket).
			Str("name", draft.Name).
			Msg("failed to upsert draft")
		return fmt.Errorf("failed to save draft (basket=%s, name=%s): %w", draft.Basket, draft.Name, err)
	}

	return nil
}

// GetDraft implements [DraftRepository].
func (r *draftRepository) GetDraft(ctx context.Context, basket, name string) (models.Draft, error) {
	query, args, err := buildSelectDraftQuery(basket, name)
	if err != nil {
		return models.Draft{}, fmt.Errorf("build select draft query: %w", err)
	}

	var draft models.Draft
	row := r.DB.QueryRowContext(ctx, query, args...)
	scanErr := row.Scan(
		&draft.Basket,
		&draft.Name,
		&draft.Content,
		&draft.Cursor.Line,
		&draft.Cursor.Col,
		&draft.SavedAt,
	)
	if scanErr != nil {
		if errors.Is(scanErr, sql.ErrNoRows) {
			return models.Draft{}, ErrDraftNotFound
		}
		r.logger.Err(scanErr).
			Str("func", "draftRepository.GetDraft").
			Str("basket", basket).
			Str("name", name).
			Msg("failed to scan draft row")
		return models.Draft{}, fmt.Errorf("failed to get draft (basket=%s, name=%s): %w", basket, name, scanErr)
	}

	return draft, nil
}

// DeleteDraft implements [DraftRepository].
func (r *draftRepository) DeleteDraft(ctx context.Context, basket, name string) error {
	query, args, err := buildDeleteDraftQuery(basket, name)
	if err != nil {
		return fmt.Errorf("build delete draft query: %w", err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).
			Str("func", "draftRepository.DeleteDraft").
			Str("basket", basket).
			Str("name", name).
			Msg("failed to delete draft")
		return fmt.Errorf("failed to delete draft (basket=%s, name=%s): %w", basket, name, err)
	}

	return nil
}
