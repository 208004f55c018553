package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is a single spending record.
//
// Amount, Category, Subcategory, Description and Date are business fields:
// they carry user intent and are the only fields covered by the content
// fingerprint. ID, Timestamp and SyncStatus are bookkeeping fields owned by
// the sync engine.
type Expense struct {
	ID          string          `json:"id"`
	Amount      decimal.Decimal `json:"amount" validate:"required"`
	Currency    Currency        `json:"currency,omitempty"`
	Category    string          `json:"category" validate:"required"`
	Subcategory string          `json:"subcategory,omitempty"`
	Description string          `json:"description,omitempty"`
	// Date is the calendar day of the expense in YYYY-MM-DD form.
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
	// Timestamp is the moment of the last local modification.
	Timestamp  time.Time  `json:"timestamp"`
	SyncStatus SyncStatus `json:"sync_status"`
}
