// SPDX-License-Identifier: Apache-2.0

package service

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/masrouf-app/masrouf/models"
)

var (
	baseTime  = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	laterTime = baseTime.Add(1 * time.Hour)
)

// testExpense — хелпер для создания расхода с заданным содержимым.
func testExpense(id, description string, ts time.Time) models.Expense {
	return models.Expense{
		ID:          id,
		Amount:      decimal.NewFromInt(100),
		Currency:    models.CurrencyDZD,
		Category:    "personal",
		Description: description,
		Date:        "2026-03-10",
		Timestamp:   ts,
		SyncStatus:  models.SyncStatusSynced,
	}
}

// checkpointOf строит чекпоинт из переданных записей (срез «последней
// успешной синхронизации»).
func checkpointOf(records ...models.Expense) map[string]string {
	checkpoint := make(map[string]string, len(records))
	for _, r := range records {
		checkpoint[r.ID] = expenseSchema.fingerprint(r)
	}
	return checkpoint
}

func findMerged(t *testing.T, merged []models.Expense, id string) models.Expense {
	t.Helper()
	for _, r := range merged {
		if r.ID == id {
			return r
		}
	}
	t.Fatalf("record %q not found in merged set", id)
	return models.Expense{}
}

// ── mergeRecords: односторонние изменения ────────────────────────────────────

func TestMergeRecords_LocalOnly_Uploaded(t *testing.T) {
	// Сценарий: запись добавлена локально в офлайне, в таблице её нет
	local := []models.Expense{testExpense("e1", "coffee", baseTime)}

	res := mergeRecords(expenseSchema, local, nil, map[string]string{})

	require.Len(t, res.merged, 1)
	assert.Equal(t, models.MergeStats{Uploaded: 1}, res.stats)
	assert.Equal(t, models.SyncStatusSynced, res.merged[0].SyncStatus)
}

func TestMergeRecords_RemoteOnly_Downloaded(t *testing.T) {
	// Сценарий: строка добавлена руками прямо в таблицу
	remote := []models.Expense{testExpense("e1", "rent", baseTime)}

	res := mergeRecords(expenseSchema, nil, remote, map[string]string{})

	require.Len(t, res.merged, 1)
	assert.Equal(t, models.MergeStats{Downloaded: 1}, res.stats)
	assert.Equal(t, "rent", res.merged[0].Description)
}

func TestMergeRecords_RemoteEdit_AdoptedWithoutConflict(t *testing.T) {
	// Сценарий: ячейка отредактирована в таблице, локально запись не трогали.
	// Чекпоинт совпадает с локальным отпечатком → изменилась только удалённая
	// сторона, конфликта нет.
	local := []models.Expense{testExpense("e1", "groceries", baseTime)}
	remote := []models.Expense{testExpense("e1", "groceries (edited)", baseTime)}
	checkpoint := checkpointOf(local[0])

	res := mergeRecords(expenseSchema, local, remote, checkpoint)

	require.Len(t, res.merged, 1)
	assert.Equal(t, models.MergeStats{Downloaded: 1}, res.stats)
	assert.Equal(t, "groceries (edited)", res.merged[0].Description)
	assert.Equal(t, models.SyncStatusSynced, res.merged[0].SyncStatus)
}

func TestMergeRecords_LocalEdit_AdoptedWithoutConflict(t *testing.T) {
	// Зеркальный случай: локальная правка, таблица совпадает с чекпоинтом
	remote := []models.Expense{testExpense("e1", "groceries", baseTime)}
	local := []models.Expense{testExpense("e1", "groceries (edited)", laterTime)}
	checkpoint := checkpointOf(remote[0])

	res := mergeRecords(expenseSchema, local, remote, checkpoint)

	require.Len(t, res.merged, 1)
	assert.Equal(t, models.MergeStats{Uploaded: 1}, res.stats)
	assert.Equal(t, "groceries (edited)", res.merged[0].Description)
}

func TestMergeRecords_EqualFingerprints_NoChanges(t *testing.T) {
	// Одинаковое содержимое при разных метаданных ничего не двигает
	local := []models.Expense{testExpense("e1", "taxi", baseTime)}
	remote := []models.Expense{testExpense("e1", "taxi", laterTime)}
	remote[0].SyncStatus = models.SyncStatusPending

	res := mergeRecords(expenseSchema, local, remote, map[string]string{})

	assert.True(t, res.stats.Empty())
	require.Len(t, res.merged, 1)
	// принимается локальная копия
	assert.Equal(t, baseTime, res.merged[0].Timestamp)
}

// ── mergeRecords: конфликты ──────────────────────────────────────────────────

func TestMergeRecords_BothChanged_NewerLocalWins(t *testing.T) {
	// Обе стороны правили одну запись; локальная правка свежее
	base := testExpense("e1", "original", baseTime)
	local := []models.Expense{testExpense("e1", "local edit", laterTime)}
	remote := []models.Expense{testExpense("e1", "remote edit", baseTime.Add(time.Minute))}
	checkpoint := checkpointOf(base)

	res := mergeRecords(expenseSchema, local, remote, checkpoint)

	require.Len(t, res.merged, 1)
	assert.Equal(t, models.MergeStats{Uploaded: 1, Conflicts: 1}, res.stats)
	assert.Equal(t, "local edit", res.merged[0].Description)
	assert.Equal(t, models.SyncStatusConflict, res.merged[0].SyncStatus)
}

func TestMergeRecords_BothChanged_NewerRemoteWins(t *testing.T) {
	base := testExpense("e1", "original", baseTime)
	local := []models.Expense{testExpense("e1", "local edit", baseTime.Add(time.Minute))}
	remote := []models.Expense{testExpense("e1", "remote edit", laterTime)}
	checkpoint := checkpointOf(base)

	res := mergeRecords(expenseSchema, local, remote, checkpoint)

	require.Len(t, res.merged, 1)
	assert.Equal(t, models.MergeStats{Downloaded: 1, Conflicts: 1}, res.stats)
	assert.Equal(t, "remote edit", res.merged[0].Description)
	assert.Equal(t, models.SyncStatusConflict, res.merged[0].SyncStatus)
}

func TestMergeRecords_TimestampTie_RemoteWins(t *testing.T) {
	// Точное равенство timestamp → побеждает удалённая версия: правки руками
	// в таблице не несут надёжного локального времени
	local := []models.Expense{testExpense("e1", "local edit", baseTime)}
	remote := []models.Expense{testExpense("e1", "remote edit", baseTime)}

	res := mergeRecords(expenseSchema, local, remote, map[string]string{})

	require.Len(t, res.merged, 1)
	assert.Equal(t, "remote edit", res.merged[0].Description)
	assert.Equal(t, models.MergeStats{Downloaded: 1, Conflicts: 1}, res.stats)
}

func TestMergeRecords_NoCheckpointEntry_DiffResolvedByTimestamp(t *testing.T) {
	// Чекпоинт пуст (первый запуск или сброс) → чистое разрешение по времени
	local := []models.Expense{testExpense("e1", "local", laterTime)}
	remote := []models.Expense{testExpense("e1", "remote", baseTime)}

	res := mergeRecords(expenseSchema, local, remote, map[string]string{})

	require.Len(t, res.merged, 1)
	assert.Equal(t, "local", res.merged[0].Description)
	assert.Equal(t, models.MergeStats{Uploaded: 1, Conflicts: 1}, res.stats)
}

// ── mergeRecords: свойства результата ────────────────────────────────────────

func TestMergeRecords_UnionCompleteness(t *testing.T) {
	// Результат содержит ровно объединение id без дубликатов
	local := []models.Expense{
		testExpense("a", "a", baseTime),
		testExpense("b", "b-local", laterTime),
	}
	remote := []models.Expense{
		testExpense("b", "b-remote", baseTime),
		testExpense("c", "c", baseTime),
	}

	res := mergeRecords(expenseSchema, local, remote, map[string]string{})

	require.Len(t, res.merged, 3)
	seen := make(map[string]int)
	for _, r := range res.merged {
		seen[r.ID]++
	}
	assert.Equal(t, map[string]int{"a": 1, "b": 1, "c": 1}, seen)
}

func TestMergeRecords_CheckpointCoversEveryMergedRecord(t *testing.T) {
	local := []models.Expense{testExpense("a", "a", baseTime)}
	remote := []models.Expense{testExpense("b", "b", baseTime)}

	res := mergeRecords(expenseSchema, local, remote, map[string]string{})

	require.Len(t, res.checkpoint, 2)
	for _, r := range res.merged {
		assert.Equal(t, expenseSchema.fingerprint(r), res.checkpoint[r.ID])
	}
}

func TestMergeRecords_Idempotent_SecondPassIsNoop(t *testing.T) {
	// Повторный merge поверх результата первого и его чекпоинта ничего не
	// меняет: счётчики нулевые, набор тот же
	base := testExpense("shared", "original", baseTime)
	local := []models.Expense{
		testExpense("shared", "local edit", laterTime),
		testExpense("local-only", "cash", baseTime),
	}
	remote := []models.Expense{
		base,
		testExpense("remote-only", "manual row", baseTime),
	}
	checkpoint := checkpointOf(base)

	first := mergeRecords(expenseSchema, local, remote, checkpoint)
	require.False(t, first.stats.Empty())

	// после первого цикла обе стороны держат merged, чекпоинт сохранён
	second := mergeRecords(expenseSchema, first.merged, first.merged, first.checkpoint)

	assert.True(t, second.stats.Empty(), "второй цикл должен быть пустым, получено: %+v", second.stats)
	assert.ElementsMatch(t, first.merged, second.merged)
	assert.Equal(t, first.checkpoint, second.checkpoint)
}

func TestMergeRecords_DeterministicOrder(t *testing.T) {
	// Локальный порядок сохраняется, remote-only дописываются в порядке fetch
	local := []models.Expense{
		testExpense("l1", "1", baseTime),
		testExpense("l2", "2", baseTime),
	}
	remote := []models.Expense{
		testExpense("r1", "3", baseTime),
		testExpense("l1", "1", baseTime),
		testExpense("r2", "4", baseTime),
	}

	res := mergeRecords(expenseSchema, local, remote, map[string]string{})

	ids := make([]string, 0, len(res.merged))
	for _, r := range res.merged {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []string{"l1", "l2", "r1", "r2"}, ids)
}

func TestMergeRecords_MixedCollections_LoanSchema(t *testing.T) {
	// Движок один на все коллекции; займ с правкой статуса проходит тот же путь
	baseLoan := models.Loan{
		ID: "loan1", Amount: decimal.NewFromInt(5000), Currency: models.CurrencyDZD,
		Giver: "Me", Receiver: "Amine", Status: models.LoanStatusPending,
		DateCreated: "2026-01-15", Timestamp: baseTime, SyncStatus: models.SyncStatusSynced,
	}
	fulfilled := baseLoan
	fulfilled.Status = models.LoanStatusFulfilled
	fulfilled.DateFulfilled = "2026-03-10"
	fulfilled.Timestamp = laterTime

	checkpoint := map[string]string{"loan1": loanSchema.fingerprint(baseLoan)}

	res := mergeRecords(loanSchema, []models.Loan{fulfilled}, []models.Loan{baseLoan}, checkpoint)

	require.Len(t, res.merged, 1)
	assert.Equal(t, models.MergeStats{Uploaded: 1}, res.stats)
	assert.Equal(t, models.LoanStatusFulfilled, res.merged[0].Status)
	assert.Equal(t, "2026-03-10", res.merged[0].DateFulfilled)
}

func TestMergeRecords_ConflictDoesNotLeakIntoOtherRecords(t *testing.T) {
	// Конфликт одной записи не влияет на классификацию соседних
	base := testExpense("conflicted", "original", baseTime)
	local := []models.Expense{
		testExpense("conflicted", "local edit", laterTime),
		testExpense("untouched", "same", baseTime),
	}
	remote := []models.Expense{
		testExpense("conflicted", "remote edit", baseTime.Add(time.Minute)),
		testExpense("untouched", "same", baseTime),
	}
	checkpoint := checkpointOf(base, local[1])

	res := mergeRecords(expenseSchema, local, remote, checkpoint)

	assert.Equal(t, models.MergeStats{Uploaded: 1, Conflicts: 1}, res.stats)
	assert.Equal(t, models.SyncStatusConflict, findMerged(t, res.merged, "conflicted").SyncStatus)
	assert.Equal(t, models.SyncStatusSynced, findMerged(t, res.merged, "untouched").SyncStatus)
}
