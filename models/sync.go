package models

import "time"

// SyncStatus marks a record's relation to the last completed sync cycle.
type SyncStatus string

const (
	// SyncStatusPending marks a record created or modified locally and not
	// yet reconciled with the backup sheet.
	SyncStatusPending SyncStatus = "pending"
	// SyncStatusSynced marks a record whose content matched or was adopted
	// cleanly during the last merge.
	SyncStatusSynced SyncStatus = "synced"
	// SyncStatusConflict marks a record whose local and remote versions both
	// changed since the last checkpoint; the stored value is the winner of
	// timestamp resolution.
	SyncStatusConflict SyncStatus = "conflict"
)

// Collection names one of the synced record sets. The values double as sheet
// titles inside the backup spreadsheet.
type Collection string

const (
	CollectionExpenses   Collection = "Expenses"
	CollectionLoans      Collection = "Loans"
	CollectionCategories Collection = "Categories"
)

// Collections lists every synced collection in the order the orchestrator
// processes them.
var Collections = []Collection{CollectionExpenses, CollectionLoans, CollectionCategories}

// MergeStats counts the outcome of one collection's merge cycle.
type MergeStats struct {
	Uploaded   int `json:"uploaded"`
	Downloaded int `json:"downloaded"`
	Conflicts  int `json:"conflicts"`
}

// Add accumulates another collection's stats into s.
func (s *MergeStats) Add(other MergeStats) {
	s.Uploaded += other.Uploaded
	s.Downloaded += other.Downloaded
	s.Conflicts += other.Conflicts
}

// Empty reports whether the merge moved nothing in either direction.
func (s MergeStats) Empty() bool {
	return s.Uploaded == 0 && s.Downloaded == 0 && s.Conflicts == 0
}

// SyncResult is the summary returned to callers of a full sync cycle.
// It is the only sync surface exposed outside the service layer.
type SyncResult struct {
	Uploaded   int       `json:"uploaded"`
	Downloaded int       `json:"downloaded"`
	Conflicts  int       `json:"conflicts"`
	Message    string    `json:"message"`
	FinishedAt time.Time `json:"finished_at"`
}

// SheetInfo identifies the backup spreadsheet bound to this device.
type SheetInfo struct {
	SpreadsheetID  string    `json:"spreadsheet_id"`
	SpreadsheetURL string    `json:"spreadsheet_url"`
	CreatedAt      time.Time `json:"created_at"`
}
