package service

import (
	"context"
	"sync"
	"time"

	"github.com/masrouf-app/masrouf/internal/logger"
)

type syncJob struct {
	syncService SyncService
	debounce    time.Duration
	log         *logger.Logger

	trigger chan struct{}

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSyncJob creates a syncJob that runs syncService.Sync on a ticker and on
// debounced edit triggers. The job is idle until Start is called.
func NewSyncJob(syncService SyncService, debounce time.Duration, log *logger.Logger) SyncJob {
	return &syncJob{
		syncService: syncService,
		debounce:    debounce,
		log:         log,
		trigger:     make(chan struct{}, 1),
	}
}

// Start implements SyncJob. It stops any previously running job, then launches
// a background goroutine that syncs every interval and, after a Trigger, once
// the debounce window has passed with no further triggers. If interval is zero
// or negative it defaults to 5 minutes. The goroutine exits when ctx is
// cancelled or Stop is called.
func (j *syncJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 5 * time.Minute
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		// Lazily armed on the first trigger; a nil channel never fires.
		var debounceTimer *time.Timer
		var debounceC <-chan time.Time

		runSync := func() {
			if _, err := j.syncService.Sync(jobCtx); err != nil {
				j.log.Warn().Err(err).Msg("background sync failed")
			}
		}

		for {
			select {
			case <-jobCtx.Done():
				if debounceTimer != nil {
					debounceTimer.Stop()
				}
				return
			case <-j.trigger:
				// Each trigger restarts the window, so a burst of edits
				// collapses into one sync after the burst ends.
				if debounceTimer == nil {
					debounceTimer = time.NewTimer(j.debounce)
					debounceC = debounceTimer.C
				} else {
					if !debounceTimer.Stop() {
						select {
						case <-debounceC:
						default:
						}
					}
					debounceTimer.Reset(j.debounce)
				}
			case <-debounceC:
				runSync()
			case <-t.C:
				runSync()
			}
		}
	}()
}

// Trigger implements SyncJob. It requests a debounced sync; coalesces with any
// trigger already pending. Safe to call when the job is not running.
func (j *syncJob) Trigger() {
	select {
	case j.trigger <- struct{}{}:
	default:
	}
}

// Stop implements SyncJob. It cancels the background goroutine's context and
// blocks until the goroutine has fully exited. Safe to call when the job is not
// running (no-op in that case).
func (j *syncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
