// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"sync"
	"time"

	"github.com/mikevskater/sheet-todo/internal/logger"
)

type autoSaveJob struct {
	syncer SyncService
	logger *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewAutoSaveJob returns a stopped autosave job over the sync service.
func NewAutoSaveJob(syncSvc SyncService, log *logger.Logger) AutoSaveJob {
	return &autoSaveJob{syncer: syncSvc, logger: log}
}

// Start launches the periodic save loop, replacing any previous run.
// Non-positive intervals leave the job stopped.
func (j *autoSaveJob) Start(ctx context.Context, interval time.Duration) {
	j.Stop()

	if interval <= 0 {
		return
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	ctx, cancel := context.WithCancel(ctx)
	j.cancel = cancel

	j.wg.Add(1)
	go j.run(ctx, interval)
}

func (j *autoSaveJob) run(ctx context.Context, interval time.Duration) {
	defer j.wg.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			saved, err := j.syncer.SaveIfDirty(ctx)
			if err != nil {
				j.logger.Warn().Str("func", "autoSaveJob.run").Err(err).Msg("autosave failed")
				continue
			}
			if saved {
				j.logger.Debug().Str("func", "autoSaveJob.run").Msg("autosaved")
			}
		}
	}
}

// Stop cancels the running loop and waits for it to exit.
func (j *autoSaveJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
