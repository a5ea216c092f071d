package service

import (
	"github.com/mikevskater/sheet-todo/internal/adapter"
	"github.com/mikevskater/sheet-todo/internal/config"
	"github.com/mikevskater/sheet-todo/internal/logger"
	"github.com/mikevskater/sheet-todo/internal/store"
)

type ClientServices struct {
	Documents DocumentService
	Observer  *Observer
	Sync      SyncService
	AutoSave  AutoSaveJob
}

// NewClientServices assembles the engine around an editing surface. onDirty
// (nil allowed) is invoked whenever the dirty flag changes value.
func NewClientServices(cfg *config.ClientConfig, surface Surface, remote adapter.BasketAdapter, drafts store.DraftRepository, onDirty func(dirty bool), log *logger.Logger) *ClientServices {
	docs := NewDocumentService(surface)
	obs := NewObserver(docs, onDirty)
	docs.AttachObserver(obs)

	syncSvc := NewSyncService(docs, remote, drafts, cfg.Basket.ID, cfg.Basket.Name, log)

	return &ClientServices{
		Documents: docs,
		Observer:  obs,
		Sync:      syncSvc,
		AutoSave:  NewAutoSaveJob(syncSvc, log),
	}
}
