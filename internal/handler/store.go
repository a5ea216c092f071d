// SPDX-License-Identifier: Apache-2.0

package handler

import (
	"sync"

	"github.com/mikevskater/sheet-todo/models"
)

// BasketStore keeps basket entries in memory. Baskets are created implicitly
// on first write; there is no listing or deletion, matching the subset of
// the hosted store the client uses.
type BasketStore struct {
	mu      sync.RWMutex
	baskets map[string]map[string]models.BasketPayload
}

func NewBasketStore() *BasketStore {
	return &BasketStore{baskets: make(map[string]map[string]models.BasketPayload)}
}

func (s *BasketStore) Get(basket, name string) (models.BasketPayload, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, ok := s.baskets[basket]
	if !ok {
		return models.BasketPayload{}, false
	}
	payload, ok := entries[name]
	return payload, ok
}

// Set stores the payload unconditionally: concurrent writers race and the
// last one wins, same as the hosted store.
func (s *BasketStore) Set(basket, name string, payload models.BasketPayload) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, ok := s.baskets[basket]
	if !ok {
		entries = make(map[string]models.BasketPayload)
		s.baskets[basket] = entries
	}
	entries[name] = payload
}
