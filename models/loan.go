package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LoanStatus tracks whether a loan has been paid back.
type LoanStatus string

const (
	LoanStatusPending   LoanStatus = "pending"
	LoanStatusFulfilled LoanStatus = "fulfilled"
)

// Loan records money lent or borrowed between the user and another person.
// Giver and Receiver are free-form names; one of them is usually the user.
type Loan struct {
	ID          string          `json:"id"`
	Amount      decimal.Decimal `json:"amount" validate:"required"`
	Currency    Currency        `json:"currency,omitempty"`
	Description string          `json:"description,omitempty"`
	Giver       string          `json:"giver" validate:"required"`
	Receiver    string          `json:"receiver" validate:"required"`
	Status      LoanStatus      `json:"status" validate:"required,oneof=pending fulfilled"`
	Category    string          `json:"category,omitempty"`
	// DateCreated is the calendar day the loan was made, YYYY-MM-DD.
	DateCreated string `json:"date_created" validate:"required,datetime=2006-01-02"`
	// DateFulfilled is set once the loan is paid back; empty while pending.
	DateFulfilled string     `json:"date_fulfilled,omitempty"`
	Timestamp     time.Time  `json:"timestamp"`
	SyncStatus    SyncStatus `json:"sync_status"`
}
