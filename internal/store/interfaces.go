package store

import (
	"context"
	"time"

	"github.com/masrouf-app/masrouf/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// RecordStore is the local persistence surface the sync engine relies on:
// whole-collection reads and whole-collection replacement. The merge engine
// always produces a complete record set, so no finer-grained write operation
// is needed by the core.
type RecordStore interface {
	GetExpenses(ctx context.Context) ([]models.Expense, error)
	ReplaceExpenses(ctx context.Context, expenses []models.Expense) error

	GetLoans(ctx context.Context) ([]models.Loan, error)
	ReplaceLoans(ctx context.Context, loans []models.Loan) error

	GetCategories(ctx context.Context) ([]models.Category, error)
	ReplaceCategories(ctx context.Context, categories []models.Category) error
}

// CheckpointStore persists, per collection, the fingerprint observed for each
// record id at the end of the last successful merge. It is the sync engine's
// only durable memory of prior state.
type CheckpointStore interface {
	// LoadCheckpoint returns the saved fingerprint map for the collection.
	// A missing or unreadable checkpoint degrades to an empty map, never an
	// error: the next merge then falls back to timestamp-only resolution.
	LoadCheckpoint(ctx context.Context, collection models.Collection) map[string]string

	// SaveCheckpoint atomically replaces the collection's checkpoint with a
	// complete new snapshot.
	SaveCheckpoint(ctx context.Context, collection models.Collection, checkpoint map[string]string) error

	// ClearCheckpoints removes every saved checkpoint. Recovery tool for
	// suspected sync-state corruption.
	ClearCheckpoints(ctx context.Context) error
}

// SyncStateRepository keeps small sync bookkeeping values: the spreadsheet
// binding and the time of the last successful cycle.
type SyncStateRepository interface {
	LoadSheetBinding(ctx context.Context) (models.SheetInfo, bool, error)
	SaveSheetBinding(ctx context.Context, info models.SheetInfo) error

	LastSyncTime(ctx context.Context) (time.Time, bool, error)
	SaveLastSyncTime(ctx context.Context, t time.Time) error
}
