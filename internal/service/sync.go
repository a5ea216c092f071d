// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"errors"
	"time"

	"github.com/mikevskater/sheet-todo/internal/adapter"
	"github.com/mikevskater/sheet-todo/internal/logger"
	"github.com/mikevskater/sheet-todo/internal/store"
	"github.com/mikevskater/sheet-todo/models"
)

type basketSyncService struct {
	docs   DocumentService
	remote adapter.BasketAdapter
	drafts store.DraftRepository

	basket string
	name   string

	now    func() time.Time
	logger *logger.Logger
}

// NewSyncService wires the document state machine to the remote basket and
// the local draft store. drafts may be nil when draft persistence is
// disabled.
func NewSyncService(docs DocumentService, remote adapter.BasketAdapter, drafts store.DraftRepository, basket, name string, log *logger.Logger) SyncService {
	return &basketSyncService{
		docs:   docs,
		remote: remote,
		drafts: drafts,
		basket: basket,
		name:   name,
		now:    time.Now,
		logger: log,
	}
}

// Open fetches the basket entry and loads it as the saved baseline, then
// rehydrates a persisted draft on top when one exists. When the remote is
// not configured the document is still opened (empty baseline, draft
// restored) and [adapter.ErrNotConfigured] is returned so the caller can
// report it once.
func (s *basketSyncService) Open(ctx context.Context) (bool, error) {
	doc, err := s.remote.Fetch(ctx)
	if err != nil {
		if !errors.Is(err, adapter.ErrNotConfigured) {
			s.logger.Error().Str("func", "basketSyncService.Open").Err(err).Msg("initial fetch failed")
			return false, err
		}
		doc = models.EmptyBasketDocument()
	}

	s.docs.Load(doc.Content, doc.Cursor)

	restored, restoreErr := s.restoreDraft(ctx)
	if restoreErr != nil {
		s.logger.Error().Str("func", "basketSyncService.Open").Err(restoreErr).Msg("draft restore failed")
	}

	return restored, err
}

func (s *basketSyncService) restoreDraft(ctx context.Context) (bool, error) {
	if s.drafts == nil {
		return false, nil
	}

	draft, err := s.drafts.GetDraft(ctx, s.basket, s.name)
	if err != nil {
		if errors.Is(err, store.ErrDraftNotFound) {
			return false, nil
		}
		return false, err
	}

	s.docs.RestoreDraft(draft.Content, draft.Cursor)
	return true, nil
}

// Save pushes current content and cursor, then commits the baseline and
// drops the persisted draft. The commit happens only after a successful
// push: a failed push leaves the document dirty.
func (s *basketSyncService) Save(ctx context.Context) error {
	content := s.docs.Current()
	cursor := s.docs.CaptureCursor()

	if err := s.remote.Push(ctx, content, cursor); err != nil {
		s.logger.Error().Str("func", "basketSyncService.Save").Err(err).Msg("push failed")
		return err
	}

	s.docs.Commit()
	s.dropDraft(ctx, "basketSyncService.Save")
	return nil
}

func (s *basketSyncService) SaveIfDirty(ctx context.Context) (bool, error) {
	if !s.docs.Dirty() {
		return false, nil
	}
	return true, s.Save(ctx)
}

// Revert restores the saved baseline and drops the persisted draft. The
// draft is dropped even on a revert to empty saved content: reverting is an
// explicit statement that the unsaved work is unwanted.
func (s *basketSyncService) Revert(ctx context.Context) (string, error) {
	content, err := s.docs.Revert()
	if err != nil {
		return "", err
	}

	s.dropDraft(ctx, "basketSyncService.Revert")
	return content, nil
}

// Close persists a dirty document as a draft. A clean document deliberately
// leaves the stored draft alone; Save and Revert are the paths that drop it.
func (s *basketSyncService) Close(ctx context.Context) error {
	content, captured := s.docs.SnapshotOnClose()
	if !captured || s.drafts == nil {
		return nil
	}

	draft := models.Draft{
		Basket:  s.basket,
		Name:    s.name,
		Content: content,
		Cursor:  s.docs.CaptureCursor(),
		SavedAt: s.now(),
	}
	if err := s.drafts.SaveDraft(ctx, draft); err != nil {
		s.logger.Error().Str("func", "basketSyncService.Close").Err(err).Msg("draft save failed")
		return err
	}
	return nil
}

// dropDraft is best-effort: a delete failure never fails the save or revert
// that triggered it.
func (s *basketSyncService) dropDraft(ctx context.Context, caller string) {
	if s.drafts == nil {
		return
	}
	if err := s.drafts.DeleteDraft(ctx, s.basket, s.name); err != nil && !errors.Is(err, store.ErrDraftNotFound) {
		s.logger.Warn().Str("func", caller).Err(err).Msg("draft delete failed")
	}
}
