// SPDX-License-Identifier: Apache-2.0

// Package handler implements the development basket server: a small HTTP
// facade over an in-memory store, speaking the same wire protocol as the
// hosted basket service the client normally talks to.
package handler

import (
	"github.com/mikevskater/sheet-todo/internal/logger"
)

type Handler struct {
	store *BasketStore

	logger *logger.Logger
}

func NewHandler(store *BasketStore, logger *logger.Logger) *Handler {
	return &Handler{
		store:  store,
		logger: logger,
	}
}
