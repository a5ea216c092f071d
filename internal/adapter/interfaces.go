// SPDX-License-Identifier: Apache-2.0

// Package adapter translates document operations to and from basket-store
// wire payloads over a [transport.Executor].
//
// The primary abstraction is [BasketAdapter]. The store conflates a missing
// basket with a generic client error, so a fetch answered with 400 or 404 is
// translated into a fresh empty document rather than surfaced as an error;
// every other non-2xx status becomes a [*ProtocolError]. Both operations
// short-circuit with [ErrNotConfigured] when no basket identifier is set,
// without touching the network.
package adapter

import (
	"context"

	"github.com/mikevskater/sheet-todo/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/basket_adapter_mock.go -package=mock

// BasketAdapter is the remote side of the document: one basket entry,
// fetched and upserted as a whole. There is no retry and no partial-write
// rollback; a push is a single idempotent upsert and overlapping pushes race
// at the store (last writer wins).
type BasketAdapter interface {
	// Fetch reads the basket entry and returns its decoded document. A
	// missing basket yields an empty document, not an error.
	Fetch(ctx context.Context) (models.BasketDocument, error)

	// Push upserts the basket entry with content and cursor, stamping the
	// payload with the current time. Creation and update use the same verb.
	Push(ctx context.Context, content string, cursor models.Cursor) error
}
