// SPDX-License-Identifier: Apache-2.0

// Package service holds the content-synchronization engine: the document
// state machine tracking saved vs. unsaved content, the change observer that
// separates genuine edits from programmatic writes, and the sync service
// reconciling local and remote state across open/save/revert/close cycles.
package service

import (
	"context"
	"time"

	"github.com/mikevskater/sheet-todo/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// Surface is the editing surface seen from the engine: a provider of the
// current text and cursor, and a sink for confirmed content pushed back in.
// Implementations must not call back into the engine synchronously from
// SetText/SetCursor; edit notifications arrive through [Observer.Notify]
// from the event loop instead.
type Surface interface {
	Text() string
	Cursor() models.Cursor
	SetText(text string)
	SetCursor(cursor models.Cursor)
}

// DocumentService owns the [models.Document] and its dirty-state invariant:
// dirty == (current != saved) once saved content exists, otherwise
// dirty == (len(current) > 0). Multi-field updates are atomic with respect
// to concurrent edit notifications.
type DocumentService interface {
	// Load replaces the document with freshly fetched content: saved and
	// current both become text, dirty becomes false. The mutation is
	// performed under the observer's programmatic window so it is never
	// mistaken for a user edit.
	Load(text string, cursor models.Cursor)

	// Current returns the surface's current text.
	Current() string

	// Dirty returns the current dirty flag.
	Dirty() bool

	// Document returns a copy of the document state.
	Document() models.Document

	// SetCursor stores the cursor, clamping the line into [1, lineCount].
	// An out-of-range column is passed through uncorrected.
	SetCursor(line, col int)

	// Cursor returns the stored cursor.
	Cursor() models.Cursor

	// CaptureCursor reads the surface's live cursor, stores it (clamped),
	// and returns it.
	CaptureCursor() models.Cursor

	// RecomputeDirty re-evaluates the dirty invariant and reports whether
	// the flag's value changed (edge-triggered).
	RecomputeDirty() bool

	// Revert overwrites current content with the saved baseline. Returns
	// [ErrNoSavedContent] when nothing has been saved yet; the document is
	// left untouched in that case. On success the restored content is
	// returned, the draft snapshot is cleared, and dirty becomes false.
	Revert() (string, error)

	// Commit marks the current content as saved: saved := current, the
	// draft snapshot is cleared, dirty becomes false. Returns the committed
	// content.
	Commit() string

	// SnapshotOnClose captures current content into the draft snapshot if
	// dirty, reporting what was captured. A clean document is left alone so
	// closing never manufactures stale drafts.
	SnapshotOnClose() (string, bool)

	// RestoreDraft loads text as current content and explicitly marks the
	// document dirty: a rehydrated draft is unsaved by definition.
	RestoreDraft(text string, cursor models.Cursor)
}

// SyncService reconciles the document against the remote basket and the
// local draft store.
type SyncService interface {
	// Open performs the initial fetch, loads the result, and rehydrates a
	// persisted draft when one exists. Reports whether a draft was restored.
	Open(ctx context.Context) (restoredDraft bool, err error)

	// Save pushes current content and cursor to the basket, commits the
	// baseline, and drops any persisted draft. No retry: a failed push
	// leaves the document dirty and the error is surfaced verbatim.
	Save(ctx context.Context) error

	// SaveIfDirty is Save guarded by the dirty flag; reports whether a save
	// was attempted.
	SaveIfDirty(ctx context.Context) (bool, error)

	// Revert restores the saved baseline and drops any persisted draft.
	// Returns the restored content.
	Revert(ctx context.Context) (string, error)

	// Close snapshots a dirty document into the draft store so it can be
	// rehydrated on the next open.
	Close(ctx context.Context) error
}

// AutoSaveJob periodically pushes a dirty document to the basket. Races
// between an autosave tick and a manual save are resolved by the store
// (last writer wins).
type AutoSaveJob interface {
	// Start launches the job with the given interval, stopping any previous
	// run first. Non-positive intervals disable the job.
	Start(ctx context.Context, interval time.Duration)

	// Stop cancels the job and waits for it to exit. Safe to call when the
	// job is not running.
	Stop()
}
