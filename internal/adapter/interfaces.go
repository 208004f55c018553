// SPDX-License-Identifier: Apache-2.0

// Package adapter provides transport-layer access to the Google Sheets
// backup backend.
//
// The primary abstraction is [SheetsBackend], which decouples the sync
// service from the Sheets/Drive REST surface. The package ships an
// HTTP implementation ([NewSheetsAdapter]) built on resty, authenticated by a
// [TokenSource] that exchanges service-account JWT assertions for OAuth2
// access tokens.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrRateLimited] for 429, [ErrUnauthorized] for 401).
package adapter

import (
	"context"
	"time"

	"github.com/masrouf-app/masrouf/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// SheetsBackend defines the operations the sync engine needs from the remote
// tabular store. Rows are fixed-order string slices matching the
// per-collection column layout; the service layer owns row↔record
// marshaling.
//
// The backend offers no row-level transactions, no native timestamps, and no
// change notifications; the sync engine compensates with content fingerprints
// and a local checkpoint.
type SheetsBackend interface {
	// EnsureReady binds the adapter to a backup spreadsheet: it reuses the
	// locally saved binding, falls back to discovery by title, and finally
	// creates a fresh spreadsheet with one sheet per collection plus a
	// Metadata sheet. Must be called once before any row operation of a sync
	// cycle. Failures wrap [ErrSetup] and never touch local record data.
	EnsureReady(ctx context.Context) (models.SheetInfo, error)

	// FetchRows reads every data row of the collection's sheet (the header
	// row is skipped). An out-of-range read on a fresh sheet yields an empty
	// slice, not an error.
	FetchRows(ctx context.Context, collection models.Collection) ([][]string, error)

	// ReplaceRows clears the collection's data range and writes rows in its
	// place. The two steps are not atomic; the orchestrator orders writes so
	// that a failure between them is repaired by the next cycle.
	ReplaceRows(ctx context.Context, collection models.Collection, rows [][]string) error

	// WriteLastSync mirrors the time of the last successful push into the
	// Metadata sheet, so a user looking at the spreadsheet can see backup
	// freshness. Best-effort bookkeeping.
	WriteLastSync(ctx context.Context, t time.Time) error
}

// TokenSource supplies a valid OAuth2 bearer token for Google API calls,
// refreshing it when expired. Implementations must be safe for concurrent
// use.
type TokenSource interface {
	// Token returns a non-expired access token, fetching a fresh one from
	// the OAuth endpoint when needed.
	Token(ctx context.Context) (string, error)
}

// SheetBindingStore persists the spreadsheet binding between runs. Implemented
// by the store package on top of the sync_state table.
type SheetBindingStore interface {
	// LoadSheetBinding returns the saved binding and whether one exists.
	LoadSheetBinding(ctx context.Context) (models.SheetInfo, bool, error)
	// SaveSheetBinding replaces the saved binding.
	SaveSheetBinding(ctx context.Context, info models.SheetInfo) error
}
