// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/masrouf-app/masrouf/models"
)

// Keys inside the sync_state table. Checkpoints get one key per collection so
// one collection's save never rewrites another's snapshot.
const (
	keySheetBinding       = "sheet_binding"
	keyLastSyncTime       = "last_sync_time"
	keyCheckpointTemplate = "checkpoint:%s"
)

func checkpointKey(collection models.Collection) string {
	return fmt.Sprintf(keyCheckpointTemplate, collection)
}

// LoadCheckpoint implements CheckpointStore. Absence and corruption both
// degrade to an empty map: the merge then resolves every difference by
// timestamp for one cycle and writes a fresh checkpoint afterwards.
func (s *Storage) LoadCheckpoint(ctx context.Context, collection models.Collection) map[string]string {
	raw, ok, err := s.loadValue(ctx, checkpointKey(collection))
	if err != nil {
		s.log.Warn().Err(err).Str("collection", string(collection)).Msg("checkpoint unreadable, treating as empty")
		return map[string]string{}
	}
	if !ok {
		return map[string]string{}
	}

	var checkpoint map[string]string
	if err = json.Unmarshal([]byte(raw), &checkpoint); err != nil {
		s.log.Warn().Err(err).Str("collection", string(collection)).Msg("checkpoint corrupt, treating as empty")
		return map[string]string{}
	}
	if checkpoint == nil {
		checkpoint = map[string]string{}
	}

	return checkpoint
}

// SaveCheckpoint implements CheckpointStore.
func (s *Storage) SaveCheckpoint(ctx context.Context, collection models.Collection, checkpoint map[string]string) error {
	raw, err := json.Marshal(checkpoint)
	if err != nil {
		return fmt.Errorf("encode checkpoint for %s: %w", collection, err)
	}

	if err = s.saveValue(ctx, checkpointKey(collection), string(raw)); err != nil {
		return fmt.Errorf("save checkpoint for %s: %w", collection, err)
	}

	return nil
}

// ClearCheckpoints implements CheckpointStore.
func (s *Storage) ClearCheckpoints(ctx context.Context) error {
	query, args, err := sq.Delete("sync_state").Where(sq.Like{"key": "checkpoint:%"}).ToSql()
	if err != nil {
		return fmt.Errorf("build checkpoint clear: %w", err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("clear checkpoints: %w", err)
	}

	return nil
}

// LoadSheetBinding implements SyncStateRepository.
func (s *Storage) LoadSheetBinding(ctx context.Context) (models.SheetInfo, bool, error) {
	raw, ok, err := s.loadValue(ctx, keySheetBinding)
	if err != nil {
		return models.SheetInfo{}, false, fmt.Errorf("load sheet binding: %w", err)
	}
	if !ok {
		return models.SheetInfo{}, false, nil
	}

	var info models.SheetInfo
	if err = json.Unmarshal([]byte(raw), &info); err != nil {
		return models.SheetInfo{}, false, fmt.Errorf("decode sheet binding: %w", err)
	}

	return info, info.SpreadsheetID != "", nil
}

// SaveSheetBinding implements SyncStateRepository.
func (s *Storage) SaveSheetBinding(ctx context.Context, info models.SheetInfo) error {
	raw, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("encode sheet binding: %w", err)
	}

	if err = s.saveValue(ctx, keySheetBinding, string(raw)); err != nil {
		return fmt.Errorf("save sheet binding: %w", err)
	}

	return nil
}

// LastSyncTime implements SyncStateRepository.
func (s *Storage) LastSyncTime(ctx context.Context) (time.Time, bool, error) {
	raw, ok, err := s.loadValue(ctx, keyLastSyncTime)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("load last sync time: %w", err)
	}
	if !ok {
		return time.Time{}, false, nil
	}

	t, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("decode last sync time: %w", err)
	}

	return t, true, nil
}

// SaveLastSyncTime implements SyncStateRepository.
func (s *Storage) SaveLastSyncTime(ctx context.Context, t time.Time) error {
	if err := s.saveValue(ctx, keyLastSyncTime, t.UTC().Format(time.RFC3339Nano)); err != nil {
		return fmt.Errorf("save last sync time: %w", err)
	}

	return nil
}

func (s *Storage) loadValue(ctx context.Context, key string) (string, bool, error) {
	query, args, err := sq.Select("value").From("sync_state").Where(sq.Eq{"key": key}).ToSql()
	if err != nil {
		return "", false, err
	}

	var value string
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}

	return value, true, nil
}

func (s *Storage) saveValue(ctx context.Context, key, value string) error {
	// SQLite upsert; sync_state rows are full replacements by design.
	query := `INSERT INTO sync_state (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value;`

	_, err := s.db.ExecContext(ctx, query, key, value)
	return err
}
