// SPDX-License-Identifier: Apache-2.0

package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mikevskater/sheet-todo/internal/logger"
	"github.com/mikevskater/sheet-todo/models"
)

func (h *Handler) getEntry(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	basket := chi.URLParam(r, "basket")
	name := chi.URLParam(r, "name")

	payload, ok := h.store.Get(basket, name)
	if !ok {
		log.Debug().Str("basket", basket).Str("name", name).Msg("entry not found")
		writeError(w, http.StatusNotFound, "entry not found")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Err(err).Msg("encode payload")
	}
}

func (h *Handler) postEntry(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	basket := chi.URLParam(r, "basket")
	name := chi.URLParam(r, "name")

	var payload models.BasketPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Err(err).Str("basket", basket).Str("name", name).Msg("undecodable payload")
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}

	h.store.Set(basket, name, payload)
	log.Debug().Str("basket", basket).Str("name", name).Int("content_len", len(payload.Content)).Msg("entry stored")

	w.WriteHeader(http.StatusOK)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
