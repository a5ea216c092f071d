package service

import "errors"

// ErrNoSavedContent is returned by Revert when no saved baseline exists to
// revert to. Non-fatal: the document is left unchanged and the caller
// reports it as a warning.
var ErrNoSavedContent = errors.New("no saved content to revert to")
