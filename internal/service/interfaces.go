// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"time"

	"github.com/masrouf-app/masrouf/models"
)

// SyncService drives full reconciliation cycles between the local store and
// the backup spreadsheet. This is the only sync surface exposed outside the
// service layer; merge internals stay private.
type SyncService interface {
	// Sync runs one full cycle over all collections: ensure the remote is
	// provisioned, fetch local and remote records, merge with the last
	// checkpoint, persist the merged set locally, push it remotely when
	// local-origin changes exist, and write a fresh checkpoint.
	//
	// Concurrent calls are serialized: a caller arriving while a cycle is in
	// flight waits for that cycle and receives its result instead of
	// starting a redundant one. A cycle that fails leaves local records,
	// remote rows, and checkpoints exactly as they were.
	Sync(ctx context.Context) (models.SyncResult, error)

	// ResetSyncState clears every saved checkpoint. The next cycle then
	// resolves all differences by timestamp alone, as on a first sync.
	// Recovery tool for suspected sync-state corruption.
	ResetSyncState(ctx context.Context) error
}

// SyncJob is a background worker that runs Sync periodically and on demand.
type SyncJob interface {
	// Start launches the background goroutine. It syncs every interval and
	// additionally after Trigger calls, debounced by the configured quiet
	// window. Any previously running job is stopped first.
	Start(ctx context.Context, interval time.Duration)

	// Trigger requests an out-of-band sync. Rapid successive triggers
	// coalesce into a single cycle.
	Trigger()

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated. Safe to call when the job is not running.
	Stop()
}

// TrackerService is the local CRUD surface the UI layer calls. Every
// successful mutation stamps bookkeeping fields (id, timestamp, pending sync
// status) and nudges the background sync job.
type TrackerService interface {
	ListExpenses(ctx context.Context) ([]models.Expense, error)
	AddExpense(ctx context.Context, expense models.Expense) (models.Expense, error)
	UpdateExpense(ctx context.Context, expense models.Expense) (models.Expense, error)
	DeleteExpense(ctx context.Context, id string) error

	ListLoans(ctx context.Context) ([]models.Loan, error)
	AddLoan(ctx context.Context, loan models.Loan) (models.Loan, error)
	// UpdateLoan stamps DateFulfilled when the status transitions to
	// fulfilled and no fulfillment date is set yet.
	UpdateLoan(ctx context.Context, loan models.Loan) (models.Loan, error)
	DeleteLoan(ctx context.Context, id string) error

	ListCategories(ctx context.Context) ([]models.Category, error)
	SaveCategory(ctx context.Context, category models.Category) (models.Category, error)
	DeleteCategory(ctx context.Context, id string) error

	// EnsureDefaultCategories seeds the starter category set on first run.
	// A store that already holds categories is left untouched.
	EnsureDefaultCategories(ctx context.Context) error
}
