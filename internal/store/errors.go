package store

import "errors"

// ErrDraftNotFound is returned by [DraftRepository.GetDraft] when no draft
// exists for the basket entry.
var ErrDraftNotFound = errors.New("draft not found")
