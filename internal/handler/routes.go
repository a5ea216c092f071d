// SPDX-License-Identifier: Apache-2.0

package handler

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withRequestID)
	router.Use(h.withLogging)

	router.Get("/{basket}/{name}", h.getEntry)
	router.Post("/{basket}/{name}", h.postEntry)

	return router
}
