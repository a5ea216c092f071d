package adapter

import (
	"errors"
	"fmt"
)

// ErrNotConfigured is returned when no basket identifier has been
// configured. Operations no-op without attempting a network call; the
// orchestrator reports the condition once and carries on.
var ErrNotConfigured = errors.New("basket not configured")

// ProtocolError reports an unexpected basket-store response: a status code
// outside the tolerated set, or a payload that cannot be decoded.
type ProtocolError struct {
	Status int
	Body   string
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("unexpected basket response: status %d: %s", e.Status, e.Body)
}
