// SPDX-License-Identifier: Apache-2.0

// Package client wires configuration, transport, storage, the sync engine
// and the terminal UI into a single process lifecycle.
package client

import (
	"context"
	"fmt"

	"github.com/mikevskater/sheet-todo/internal/adapter"
	"github.com/mikevskater/sheet-todo/internal/config"
	"github.com/mikevskater/sheet-todo/internal/logger"
	"github.com/mikevskater/sheet-todo/internal/service"
	"github.com/mikevskater/sheet-todo/internal/store"
	"github.com/mikevskater/sheet-todo/internal/transport"
	"github.com/mikevskater/sheet-todo/internal/tui"
)

type App struct {
	cfg      *config.ClientConfig
	services *service.ClientServices
	tui      *tui.TUI
	logger   *logger.Logger
}

func NewApp(cfg *config.ClientConfig, log *logger.Logger) (*App, error) {
	executor, err := newExecutor(cfg.Transport, log)
	if err != nil {
		return nil, err
	}

	remote, err := adapter.NewBasketAdapter(cfg.Basket, cfg.Transport, executor, log)
	if err != nil {
		return nil, fmt.Errorf("create basket adapter: %w", err)
	}

	storages, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create client storages: %w", err)
	}

	surface := service.NewBufferSurface()
	svcs := service.NewClientServices(cfg, surface, remote, storages.Drafts, nil, log)

	ui, err := tui.New(svcs, surface)
	if err != nil {
		return nil, fmt.Errorf("create tui: %w", err)
	}

	return &App{cfg: cfg, services: svcs, tui: ui, logger: log}, nil
}

func newExecutor(cfg config.Transport, log *logger.Logger) (transport.Executor, error) {
	switch cfg.Kind {
	case config.TransportCurl:
		return transport.NewCurlExecutor(cfg, log), nil
	case config.TransportNative:
		return transport.NewRestyExecutor(cfg, log), nil
	default:
		return nil, fmt.Errorf("unknown transport kind %q", cfg.Kind)
	}
}

// Run drives the editor session: autosave in the background, the TUI in the
// foreground, and a draft snapshot on the way out.
func (a *App) Run() error {
	ctx := context.Background()

	a.services.AutoSave.Start(ctx, a.cfg.Workers.AutoSaveInterval)
	defer a.services.AutoSave.Stop()

	runErr := a.tui.Run(ctx)

	if err := a.services.Sync.Close(ctx); err != nil {
		a.logger.Err(err).Str("func", "App.Run").Msg("draft snapshot on close failed")
	}

	return runErr
}
