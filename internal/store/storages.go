package store

import (
	"context"
	"fmt"

	"github.com/mikevskater/sheet-todo/internal/config"
	"github.com/mikevskater/sheet-todo/internal/logger"
)

// ClientStorages groups the client-side repositories into a single value
// passed to the service layer. Currently only drafts live here.
type ClientStorages struct {
	// Drafts is the SQLite-backed repository for unsaved-draft snapshots.
	Drafts DraftRepository
}

// NewClientStorages opens the drafts database under cfg.DraftsPath, runs
// pending migrations, and wires a fresh [DraftRepository].
func NewClientStorages(cfg config.Storage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating client storages...")

	db, err := NewConnectSQLite(context.Background(), cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		Drafts: NewDraftRepository(db, logger),
	}, nil
}
