// SPDX-License-Identifier: Apache-2.0

// Package store persists unsaved-draft snapshots in a local SQLite database,
// so a dirty document survives the editing surface being torn down and can
// be rehydrated on the next open.
package store

import (
	"context"

	"github.com/mikevskater/sheet-todo/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/draft_repository_mock.go -package=mock

// DraftRepository stores at most one draft per basket entry.
type DraftRepository interface {
	// SaveDraft upserts the draft for its basket entry.
	SaveDraft(ctx context.Context, draft models.Draft) error

	// GetDraft returns the draft for the basket entry, or [ErrDraftNotFound].
	GetDraft(ctx context.Context, basket, name string) (models.Draft, error)

	// DeleteDraft removes the draft for the basket entry. Deleting a
	// non-existent draft is a no-op.
	DeleteDraft(ctx context.Context, basket, name string) error
}
