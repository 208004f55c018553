// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"

	"github.com/masrouf-app/masrouf/models"
)

const (
	tableExpenses   = "expenses"
	tableLoans      = "loans"
	tableCategories = "categories"
)

var expenseColumns = []string{"id", "amount", "currency", "category", "subcategory", "description", "date", "timestamp", "sync_status"}
var loanColumns = []string{"id", "amount", "currency", "description", "giver", "receiver", "status", "category", "date_created", "date_fulfilled", "timestamp", "sync_status"}
var categoryColumns = []string{"id", "name", "icon", "color", "subcategories", "timestamp", "sync_status"}

// GetExpenses implements RecordStore.
func (s *Storage) GetExpenses(ctx context.Context) ([]models.Expense, error) {
	query, args, err := sq.Select(expenseColumns...).From(tableExpenses).OrderBy("date", "id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build expenses query: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query expenses: %w", err)
	}
	defer rows.Close()

	var expenses []models.Expense
	for rows.Next() {
		var e models.Expense
		var amount, timestamp, syncStatus, currency string
		if err = rows.Scan(&e.ID, &amount, &currency, &e.Category, &e.Subcategory, &e.Description, &e.Date, &timestamp, &syncStatus); err != nil {
			return nil, fmt.Errorf("scan expense row: %w", err)
		}
		e.Amount = parseAmount(amount)
		e.Currency = models.Currency(currency)
		e.Timestamp = parseTimestamp(timestamp)
		e.SyncStatus = models.SyncStatus(syncStatus)
		expenses = append(expenses, e)
	}

	return expenses, rows.Err()
}

// ReplaceExpenses implements RecordStore. The whole collection is swapped in
// one transaction so a crash can never leave a half-written record set.
func (s *Storage) ReplaceExpenses(ctx context.Context, expenses []models.Expense) error {
	return s.replaceAll(ctx, tableExpenses, func(tx *sql.Tx) error {
		for _, e := range expenses {
			insert := sq.Insert(tableExpenses).Columns(expenseColumns...).Values(
				e.ID,
				e.Amount.String(),
				string(e.Currency.OrDefault()),
				e.Category,
				e.Subcategory,
				e.Description,
				e.Date,
				formatTimestamp(e.Timestamp),
				string(e.SyncStatus),
			)
			if err := execInsert(ctx, tx, insert); err != nil {
				return fmt.Errorf("insert expense %s: %w", e.ID, err)
			}
		}
		return nil
	})
}

// GetLoans implements RecordStore.
func (s *Storage) GetLoans(ctx context.Context) ([]models.Loan, error) {
	query, args, err := sq.Select(loanColumns...).From(tableLoans).OrderBy("date_created", "id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build loans query: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query loans: %w", err)
	}
	defer rows.Close()

	var loans []models.Loan
	for rows.Next() {
		var l models.Loan
		var amount, currency, status, timestamp, syncStatus string
		if err = rows.Scan(&l.ID, &amount, &currency, &l.Description, &l.Giver, &l.Receiver, &status, &l.Category, &l.DateCreated, &l.DateFulfilled, &timestamp, &syncStatus); err != nil {
			return nil, fmt.Errorf("scan loan row: %w", err)
		}
		l.Amount = parseAmount(amount)
		l.Currency = models.Currency(currency)
		l.Status = models.LoanStatus(status)
		l.Timestamp = parseTimestamp(timestamp)
		l.SyncStatus = models.SyncStatus(syncStatus)
		loans = append(loans, l)
	}

	return loans, rows.Err()
}

// ReplaceLoans implements RecordStore.
func (s *Storage) ReplaceLoans(ctx context.Context, loans []models.Loan) error {
	return s.replaceAll(ctx, tableLoans, func(tx *sql.Tx) error {
		for _, l := range loans {
			insert := sq.Insert(tableLoans).Columns(loanColumns...).Values(
				l.ID,
				l.Amount.String(),
				string(l.Currency.OrDefault()),
				l.Description,
				l.Giver,
				l.Receiver,
				string(l.Status),
				l.Category,
				l.DateCreated,
				l.DateFulfilled,
				formatTimestamp(l.Timestamp),
				string(l.SyncStatus),
			)
			if err := execInsert(ctx, tx, insert); err != nil {
				return fmt.Errorf("insert loan %s: %w", l.ID, err)
			}
		}
		return nil
	})
}

// GetCategories implements RecordStore.
func (s *Storage) GetCategories(ctx context.Context) ([]models.Category, error) {
	query, args, err := sq.Select(categoryColumns...).From(tableCategories).OrderBy("name", "id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build categories query: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		var c models.Category
		var subcategories, timestamp, syncStatus string
		if err = rows.Scan(&c.ID, &c.Name, &c.Icon, &c.Color, &subcategories, &timestamp, &syncStatus); err != nil {
			return nil, fmt.Errorf("scan category row: %w", err)
		}
		if subcategories != "" {
			if err = json.Unmarshal([]byte(subcategories), &c.Subcategories); err != nil {
				s.log.Warn().Err(err).Str("category_id", c.ID).Msg("dropping unreadable subcategories blob")
				c.Subcategories = nil
			}
		}
		c.Timestamp = parseTimestamp(timestamp)
		c.SyncStatus = models.SyncStatus(syncStatus)
		categories = append(categories, c)
	}

	return categories, rows.Err()
}

// ReplaceCategories implements RecordStore.
func (s *Storage) ReplaceCategories(ctx context.Context, categories []models.Category) error {
	return s.replaceAll(ctx, tableCategories, func(tx *sql.Tx) error {
		for _, c := range categories {
			subcategories, err := json.Marshal(c.Subcategories)
			if err != nil {
				return fmt.Errorf("encode subcategories of %s: %w", c.ID, err)
			}
			insert := sq.Insert(tableCategories).Columns(categoryColumns...).Values(
				c.ID,
				c.Name,
				c.Icon,
				c.Color,
				string(subcategories),
				formatTimestamp(c.Timestamp),
				string(c.SyncStatus),
			)
			if err = execInsert(ctx, tx, insert); err != nil {
				return fmt.Errorf("insert category %s: %w", c.ID, err)
			}
		}
		return nil
	})
}

// replaceAll deletes every row of table and lets insert repopulate it inside
// a single transaction.
func (s *Storage) replaceAll(ctx context.Context, table string, insert func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin replace of %s: %w", table, err)
	}
	defer tx.Rollback()

	query, args, err := sq.Delete(table).ToSql()
	if err != nil {
		return fmt.Errorf("build delete of %s: %w", table, err)
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("clear %s: %w", table, err)
	}

	if err = insert(tx); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit replace of %s: %w", table, err)
	}

	return nil
}

func execInsert(ctx context.Context, tx *sql.Tx, insert sq.InsertBuilder) error {
	query, args, err := insert.ToSql()
	if err != nil {
		return err
	}
	_, err = tx.ExecContext(ctx, query, args...)
	return err
}

// parseAmount falls back to zero on an unreadable stored amount instead of
// failing the whole collection read.
func parseAmount(raw string) decimal.Decimal {
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero
	}
	return amount
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTimestamp(raw string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}
	}
	return t
}
