// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/masrouf-app/masrouf/internal/adapter"
	"github.com/masrouf-app/masrouf/internal/logger"
	"github.com/masrouf-app/masrouf/internal/store"
	"github.com/masrouf-app/masrouf/models"
)

// SyncOptions tunes orchestrator behavior.
type SyncOptions struct {
	// PreserveRemoteOnFirstSync suppresses the remote push during the first
	// cycle (no checkpoint yet) when the backup sheet already holds rows.
	// Remote data is merged and persisted locally as usual; local-only
	// records upload on the following cycle, once a checkpoint exists to
	// make the push safe.
	PreserveRemoteOnFirstSync bool
}

type syncService struct {
	records     store.RecordStore
	checkpoints store.CheckpointStore
	state       store.SyncStateRepository
	backend     adapter.SheetsBackend
	opts        SyncOptions
	log         *logger.Logger
	now         func() time.Time

	mu       sync.Mutex
	inFlight *inFlightCycle
}

// inFlightCycle lets late callers of Sync await the running cycle and share
// its outcome instead of racing a second merge against the same checkpoint.
type inFlightCycle struct {
	done   chan struct{}
	result models.SyncResult
	err    error
}

// NewSyncService wires the sync orchestrator from its collaborators. All
// dependencies are injected; the orchestrator holds no hidden global state.
func NewSyncService(
	records store.RecordStore,
	checkpoints store.CheckpointStore,
	state store.SyncStateRepository,
	backend adapter.SheetsBackend,
	opts SyncOptions,
	log *logger.Logger,
) SyncService {
	return &syncService{
		records:     records,
		checkpoints: checkpoints,
		state:       state,
		backend:     backend,
		opts:        opts,
		log:         log,
		now:         time.Now,
	}
}

// Sync implements SyncService.
func (s *syncService) Sync(ctx context.Context) (models.SyncResult, error) {
	s.mu.Lock()
	if cycle := s.inFlight; cycle != nil {
		s.mu.Unlock()
		select {
		case <-cycle.done:
			return cycle.result, cycle.err
		case <-ctx.Done():
			return models.SyncResult{}, ctx.Err()
		}
	}

	cycle := &inFlightCycle{done: make(chan struct{})}
	s.inFlight = cycle
	s.mu.Unlock()

	cycle.result, cycle.err = s.runCycle(ctx)

	s.mu.Lock()
	s.inFlight = nil
	s.mu.Unlock()
	close(cycle.done)

	return cycle.result, cycle.err
}

// ResetSyncState implements SyncService.
func (s *syncService) ResetSyncState(ctx context.Context) error {
	if err := s.checkpoints.ClearCheckpoints(ctx); err != nil {
		return fmt.Errorf("reset sync state: %w", err)
	}
	s.log.Info().Msg("sync checkpoints cleared; next cycle resolves by timestamp only")

	return nil
}

// runCycle executes one full synchronization pass across all collections.
// Collections are merged independently, but any failure aborts the whole
// cycle: the tabular backend offers no cross-collection transaction, so the
// simplest correct behavior is to commit nothing partially and let the next
// cycle recompute from current state.
func (s *syncService) runCycle(ctx context.Context) (models.SyncResult, error) {
	started := s.now()

	if _, err := s.backend.EnsureReady(ctx); err != nil {
		return models.SyncResult{}, fmt.Errorf("ensure remote ready: %w", err)
	}

	var total models.MergeStats
	var pushedAny bool

	expenseStats, pushed, err := syncCollection(ctx, s, expenseSchema, s.records.GetExpenses, s.records.ReplaceExpenses)
	if err != nil {
		return models.SyncResult{}, fmt.Errorf("sync expenses: %w", err)
	}
	total.Add(expenseStats)
	pushedAny = pushedAny || pushed

	loanStats, pushed, err := syncCollection(ctx, s, loanSchema, s.records.GetLoans, s.records.ReplaceLoans)
	if err != nil {
		return models.SyncResult{}, fmt.Errorf("sync loans: %w", err)
	}
	total.Add(loanStats)
	pushedAny = pushedAny || pushed

	categoryStats, pushed, err := syncCollection(ctx, s, categorySchema, s.records.GetCategories, s.records.ReplaceCategories)
	if err != nil {
		return models.SyncResult{}, fmt.Errorf("sync categories: %w", err)
	}
	total.Add(categoryStats)
	pushedAny = pushedAny || pushed

	finished := s.now()
	if err = s.state.SaveLastSyncTime(ctx, finished); err != nil {
		return models.SyncResult{}, fmt.Errorf("save last sync time: %w", err)
	}
	if pushedAny {
		// Freshness marker inside the spreadsheet; losing it costs nothing,
		// the next push rewrites it.
		if err = s.backend.WriteLastSync(ctx, finished); err != nil {
			s.log.Warn().Err(err).Msg("could not update last-sync cell in spreadsheet")
		}
	}

	result := models.SyncResult{
		Uploaded:   total.Uploaded,
		Downloaded: total.Downloaded,
		Conflicts:  total.Conflicts,
		Message:    summaryMessage(total),
		FinishedAt: finished,
	}

	s.log.Info().
		Int("uploaded", result.Uploaded).
		Int("downloaded", result.Downloaded).
		Int("conflicts", result.Conflicts).
		Dur("took", finished.Sub(started)).
		Msg("sync cycle finished")

	return result, nil
}

// syncCollection runs one collection's merge cycle: fetch both sides, merge
// against the checkpoint, persist locally, conditionally push, and save the
// new checkpoint — strictly in that order, so a crash between steps leaves a
// stale (recomputable) checkpoint rather than a corrupt one.
func syncCollection[T any](
	ctx context.Context,
	s *syncService,
	sc collectionSchema[T],
	getLocal func(context.Context) ([]T, error),
	replaceLocal func(context.Context, []T) error,
) (models.MergeStats, bool, error) {
	// Local read and remote fetch are independent; overlap them.
	type fetchResult struct {
		rows [][]string
		err  error
	}
	remoteCh := make(chan fetchResult, 1)
	go func() {
		rows, err := s.backend.FetchRows(ctx, sc.collection)
		remoteCh <- fetchResult{rows: rows, err: err}
	}()

	local, err := getLocal(ctx)
	if err != nil {
		<-remoteCh
		return models.MergeStats{}, false, fmt.Errorf("load local records: %w", err)
	}

	fetched := <-remoteCh
	if fetched.err != nil {
		// Fail fast before any mutation; local data and checkpoint stay
		// untouched.
		return models.MergeStats{}, false, fmt.Errorf("fetch remote rows: %w", fetched.err)
	}
	remote := sc.decodeRows(fetched.rows)

	checkpoint := s.checkpoints.LoadCheckpoint(ctx, sc.collection)
	firstSync := len(checkpoint) == 0

	merged := mergeRecords(sc, local, remote, checkpoint)

	if err = replaceLocal(ctx, merged.merged); err != nil {
		return models.MergeStats{}, false, fmt.Errorf("persist merged records: %w", err)
	}

	push := merged.stats.Uploaded > 0
	if push && firstSync && s.opts.PreserveRemoteOnFirstSync && len(remote) > 0 {
		s.log.Info().
			Str("collection", string(sc.collection)).
			Msg("first sync against a populated sheet; deferring push to next cycle")
		push = false
	}
	if push {
		if err = s.backend.ReplaceRows(ctx, sc.collection, sc.encodeRows(merged.merged)); err != nil {
			return models.MergeStats{}, false, fmt.Errorf("push merged records: %w", err)
		}
	}

	if err = s.checkpoints.SaveCheckpoint(ctx, sc.collection, merged.checkpoint); err != nil {
		return models.MergeStats{}, false, fmt.Errorf("save checkpoint: %w", err)
	}

	return merged.stats, push, nil
}

func summaryMessage(stats models.MergeStats) string {
	if stats.Empty() {
		return "Everything is up to date"
	}

	message := fmt.Sprintf("Synced: %d uploaded, %d downloaded", stats.Uploaded, stats.Downloaded)
	if stats.Conflicts > 0 {
		message += fmt.Sprintf(", %d conflicts resolved", stats.Conflicts)
	}

	return message
}
