// SPDX-License-Identifier: Apache-2.0

// Package server runs the basketd HTTP server: startup, signal handling and
// graceful shutdown.
package server

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/mikevskater/sheet-todo/internal/config"
	"github.com/mikevskater/sheet-todo/internal/logger"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	httpServer *http.Server
	logger     *logger.Logger
}

func NewServer(router http.Handler, cfg config.Server, logger *logger.Logger) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:    cfg.HTTPAddress,
			Handler: router,
		},
		logger: logger,
	}
}

// RunServer serves until a stop signal arrives, then shuts down gracefully.
func (s *Server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	idleConnectionsClosed := make(chan struct{})
	go func() {
		<-ctx.Done()
		s.Shutdown()
		close(idleConnectionsClosed)
	}()

	s.logger.Info().Str("address", s.httpServer.Addr).Msg("launching HTTP server")
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		s.logger.Err(err).Msg("HTTP server ListenAndServe")
		return
	}

	<-idleConnectionsClosed
	s.logger.Info().Msg("server shut down gracefully")
}

// Shutdown stops accepting new connections and waits for in-flight requests
// up to the shutdown timeout.
func (s *Server) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		s.logger.Err(err).Msg("HTTP server Shutdown")
	}
}
