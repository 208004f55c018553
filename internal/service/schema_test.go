package service

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/masrouf-app/masrouf/internal/adapter"
	"github.com/masrouf-app/masrouf/models"
)

// ── row codecs ───────────────────────────────────────────────────────────────

func TestExpenseSchema_RowRoundTrip(t *testing.T) {
	expense := models.Expense{
		ID:          "e1",
		Amount:      decimal.RequireFromString("1250.5"),
		Currency:    models.CurrencyEUR,
		Category:    "personal",
		Subcategory: "food",
		Description: "weekly groceries",
		Date:        "2026-03-10",
		Timestamp:   time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC),
		SyncStatus:  models.SyncStatusSynced,
	}

	rows := expenseSchema.encodeRows([]models.Expense{expense})
	require.Len(t, rows, 1)
	assert.Len(t, rows[0], adapter.ColumnCount(models.CollectionExpenses))

	decoded := expenseSchema.decodeRows(rows)
	require.Len(t, decoded, 1)
	assert.Equal(t, expense, decoded[0])
}

func TestLoanSchema_RowRoundTrip(t *testing.T) {
	loan := models.Loan{
		ID:            "l1",
		Amount:        decimal.NewFromInt(5000),
		Currency:      models.CurrencyDZD,
		Description:   "car repair",
		Giver:         "Me",
		Receiver:      "Amine",
		Status:        models.LoanStatusFulfilled,
		Category:      "personal",
		DateCreated:   "2026-01-15",
		DateFulfilled: "2026-03-01",
		Timestamp:     time.Date(2026, 3, 1, 18, 0, 0, 0, time.UTC),
		SyncStatus:    models.SyncStatusSynced,
	}

	decoded := loanSchema.decodeRows(loanSchema.encodeRows([]models.Loan{loan}))
	require.Len(t, decoded, 1)
	assert.Equal(t, loan, decoded[0])
}

func TestCategorySchema_RowRoundTrip_WithSubcategories(t *testing.T) {
	category := models.Category{
		ID:    "personal",
		Name:  "Personal",
		Color: "#667EEA",
		Subcategories: []models.Subcategory{
			{ID: "food", Name: "Food", CategoryID: "personal"},
			{ID: "transport", Name: "Transport", CategoryID: "personal"},
		},
		Timestamp:  time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC),
		SyncStatus: models.SyncStatusSynced,
	}

	decoded := categorySchema.decodeRows(categorySchema.encodeRows([]models.Category{category}))
	require.Len(t, decoded, 1)
	assert.Equal(t, category, decoded[0])
}

// ── устойчивость к кривым строкам из таблицы ─────────────────────────────────

func TestDecodeRows_SkipsRowsWithEmptyID(t *testing.T) {
	rows := [][]string{
		{"", "2026-03-10", "100"},
		{"e1", "2026-03-10", "100", "personal", "", "", "DZD", "2026-03-10T09:30:00Z", "synced"},
		{},
	}

	decoded := expenseSchema.decodeRows(rows)

	require.Len(t, decoded, 1)
	assert.Equal(t, "e1", decoded[0].ID)
}

func TestDecodeRows_ShortRowPadded(t *testing.T) {
	// Sheets обрезает пустые хвостовые ячейки — короткая строка не ошибка
	rows := [][]string{{"e1", "2026-03-10", "75.5"}}

	decoded := expenseSchema.decodeRows(rows)

	require.Len(t, decoded, 1)
	assert.Equal(t, "e1", decoded[0].ID)
	assert.True(t, decoded[0].Amount.Equal(decimal.RequireFromString("75.5")))
	// пустая валюта схлопывается в дефолтную
	assert.Equal(t, models.DefaultCurrency, decoded[0].Currency)
}

func TestDecodeRows_MalformedAmount_DefaultsToZero(t *testing.T) {
	rows := [][]string{{"e1", "2026-03-10", "not-a-number", "personal", "", "", "DZD", "2026-03-10T09:30:00Z", "synced"}}

	decoded := expenseSchema.decodeRows(rows)

	require.Len(t, decoded, 1)
	assert.True(t, decoded[0].Amount.IsZero())
}

func TestDecodeRows_MalformedTimestamp_TreatedAsFreshEdit(t *testing.T) {
	// Строка, правленная руками, часто теряет timestamp; считаем её свежей
	before := time.Now().UTC()
	rows := [][]string{{"e1", "2026-03-10", "100", "personal", "", "", "DZD", "yesterday", "synced"}}

	decoded := expenseSchema.decodeRows(rows)

	require.Len(t, decoded, 1)
	assert.False(t, decoded[0].Timestamp.Before(before))
}

func TestDecodeRows_UnknownSyncStatus_DefaultsToSynced(t *testing.T) {
	rows := [][]string{{"e1", "2026-03-10", "100", "personal", "", "", "DZD", "2026-03-10T09:30:00Z", "???"}}

	decoded := expenseSchema.decodeRows(rows)

	require.Len(t, decoded, 1)
	assert.Equal(t, models.SyncStatusSynced, decoded[0].SyncStatus)
}

func TestDecodeRows_UnknownLoanStatus_DefaultsToPending(t *testing.T) {
	rows := [][]string{{"l1", "5000", "", "Me", "Amine", "paid??", "", "2026-01-15", "", "DZD", "2026-03-01T18:00:00Z", "synced"}}

	decoded := loanSchema.decodeRows(rows)

	require.Len(t, decoded, 1)
	assert.Equal(t, models.LoanStatusPending, decoded[0].Status)
}

func TestPadRow(t *testing.T) {
	assert.Equal(t, []string{"a", "", ""}, padRow([]string{"a"}, 3))
	assert.Equal(t, []string{"a", "b"}, padRow([]string{"a", "b", "c"}, 2))
	assert.Equal(t, []string{"a", "b"}, padRow([]string{"a", "b"}, 2))
}
