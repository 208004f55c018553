// SPDX-License-Identifier: Apache-2.0

package service

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"github.com/masrouf-app/masrouf/internal/adapter"
	"github.com/masrouf-app/masrouf/models"
)

// rowTimestampFormat is used for the Timestamp sheet column. RFC3339Nano
// parses plain RFC3339 as well, so rows written by older builds stay
// readable.
const rowTimestampFormat = time.RFC3339Nano

// collectionSchema parameterizes the merge engine and the row codecs for one
// record type. Three instances (expenses, loans, categories) drive the same
// generic merge instead of three bespoke ones.
//
// businessFields returns the ordered user-meaningful values covered by the
// content fingerprint; bookkeeping fields (id, timestamp, sync status) are
// deliberately excluded. toRow/fromRow translate to the sheet column layout
// declared in the adapter package — cell order must match the adapter's
// header order.
type collectionSchema[T any] struct {
	collection     models.Collection
	id             func(T) string
	timestamp      func(T) time.Time
	businessFields func(T) []string
	setSyncStatus  func(*T, models.SyncStatus)
	toRow          func(T) []string
	fromRow        func([]string) T
}

// fingerprint computes the content fingerprint of one record under this
// schema.
func (s collectionSchema[T]) fingerprint(record T) string {
	return fingerprintFields(s.businessFields(record))
}

// encodeRows marshals records into sheet rows in order.
func (s collectionSchema[T]) encodeRows(records []T) [][]string {
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, s.toRow(record))
	}
	return rows
}

// decodeRows unmarshals sheet rows, skipping rows with an empty id cell
// (blank padding rows Sheets returns around manual edits). Malformed cells
// default in place; one bad row never aborts the fetch.
func (s collectionSchema[T]) decodeRows(rows [][]string) []T {
	records := make([]T, 0, len(rows))
	for _, row := range rows {
		padded := padRow(row, adapter.ColumnCount(s.collection))
		if padded[0] == "" {
			continue
		}
		records = append(records, s.fromRow(padded))
	}
	return records
}

// padRow extends row with empty cells up to width. The Sheets API trims
// trailing empty cells from fetched rows, so short rows are routine, not
// errors.
func padRow(row []string, width int) []string {
	if len(row) >= width {
		return row[:width]
	}
	padded := make([]string, width)
	copy(padded, row)
	return padded
}

var expenseSchema = collectionSchema[models.Expense]{
	collection: models.CollectionExpenses,
	id:         func(e models.Expense) string { return e.ID },
	timestamp:  func(e models.Expense) time.Time { return e.Timestamp },
	businessFields: func(e models.Expense) []string {
		return []string{e.Amount.String(), e.Category, e.Subcategory, e.Description, e.Date}
	},
	setSyncStatus: func(e *models.Expense, status models.SyncStatus) { e.SyncStatus = status },
	toRow: func(e models.Expense) []string {
		return []string{
			e.ID,
			e.Date,
			e.Amount.String(),
			e.Category,
			e.Subcategory,
			e.Description,
			string(e.Currency.OrDefault()),
			e.Timestamp.UTC().Format(rowTimestampFormat),
			string(e.SyncStatus),
		}
	},
	fromRow: func(row []string) models.Expense {
		return models.Expense{
			ID:          row[0],
			Date:        row[1],
			Amount:      parseRowAmount(row[2]),
			Category:    row[3],
			Subcategory: row[4],
			Description: row[5],
			Currency:    models.Currency(row[6]).OrDefault(),
			Timestamp:   parseRowTimestamp(row[7]),
			SyncStatus:  parseRowSyncStatus(row[8]),
		}
	},
}

var loanSchema = collectionSchema[models.Loan]{
	collection: models.CollectionLoans,
	id:         func(l models.Loan) string { return l.ID },
	timestamp:  func(l models.Loan) time.Time { return l.Timestamp },
	businessFields: func(l models.Loan) []string {
		return []string{
			l.Amount.String(),
			l.Description,
			l.Giver,
			l.Receiver,
			string(l.Status),
			l.Category,
			l.DateCreated,
			l.DateFulfilled,
		}
	},
	setSyncStatus: func(l *models.Loan, status models.SyncStatus) { l.SyncStatus = status },
	toRow: func(l models.Loan) []string {
		return []string{
			l.ID,
			l.Amount.String(),
			l.Description,
			l.Giver,
			l.Receiver,
			string(l.Status),
			l.Category,
			l.DateCreated,
			l.DateFulfilled,
			string(l.Currency.OrDefault()),
			l.Timestamp.UTC().Format(rowTimestampFormat),
			string(l.SyncStatus),
		}
	},
	fromRow: func(row []string) models.Loan {
		status := models.LoanStatus(row[5])
		if status != models.LoanStatusFulfilled {
			status = models.LoanStatusPending
		}
		return models.Loan{
			ID:            row[0],
			Amount:        parseRowAmount(row[1]),
			Description:   row[2],
			Giver:         row[3],
			Receiver:      row[4],
			Status:        status,
			Category:      row[6],
			DateCreated:   row[7],
			DateFulfilled: row[8],
			Currency:      models.Currency(row[9]).OrDefault(),
			Timestamp:     parseRowTimestamp(row[10]),
			SyncStatus:    parseRowSyncStatus(row[11]),
		}
	},
}

var categorySchema = collectionSchema[models.Category]{
	collection: models.CollectionCategories,
	id:         func(c models.Category) string { return c.ID },
	timestamp:  func(c models.Category) time.Time { return c.Timestamp },
	businessFields: func(c models.Category) []string {
		return []string{c.Name, c.Icon, c.Color, encodeSubcategories(c.Subcategories)}
	},
	setSyncStatus: func(c *models.Category, status models.SyncStatus) { c.SyncStatus = status },
	toRow: func(c models.Category) []string {
		return []string{
			c.ID,
			c.Name,
			c.Icon,
			c.Color,
			encodeSubcategories(c.Subcategories),
			c.Timestamp.UTC().Format(rowTimestampFormat),
			string(c.SyncStatus),
		}
	},
	fromRow: func(row []string) models.Category {
		return models.Category{
			ID:            row[0],
			Name:          row[1],
			Icon:          row[2],
			Color:         row[3],
			Subcategories: decodeSubcategories(row[4]),
			Timestamp:     parseRowTimestamp(row[5]),
			SyncStatus:    parseRowSyncStatus(row[6]),
		}
	},
}

// encodeSubcategories serializes subcategories into the single sheet cell
// that carries them. An empty list serializes to "[]" so absence is stable
// across round trips.
func encodeSubcategories(subcategories []models.Subcategory) string {
	if len(subcategories) == 0 {
		return "[]"
	}
	raw, err := json.Marshal(subcategories)
	if err != nil {
		return "[]"
	}
	return string(raw)
}

func decodeSubcategories(raw string) []models.Subcategory {
	if raw == "" || raw == "[]" {
		return nil
	}
	var subcategories []models.Subcategory
	if err := json.Unmarshal([]byte(raw), &subcategories); err != nil {
		return nil
	}
	return subcategories
}

func parseRowAmount(raw string) decimal.Decimal {
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero
	}
	return amount
}

func parseRowTimestamp(raw string) time.Time {
	t, err := time.Parse(rowTimestampFormat, raw)
	if err != nil {
		// A row edited by hand in the spreadsheet often loses its
		// timestamp; treating it as freshly modified lets the edit win
		// timestamp resolution.
		return time.Now().UTC()
	}
	return t
}

func parseRowSyncStatus(raw string) models.SyncStatus {
	switch models.SyncStatus(raw) {
	case models.SyncStatusPending, models.SyncStatusSynced, models.SyncStatusConflict:
		return models.SyncStatus(raw)
	}
	return models.SyncStatusSynced
}
