package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/masrouf-app/masrouf/internal/config"
	"github.com/masrouf-app/masrouf/internal/logger"
	"github.com/masrouf-app/masrouf/migrations"
)

// Storage is the SQLite-backed implementation of RecordStore,
// CheckpointStore and SyncStateRepository.
type Storage struct {
	db  *sql.DB
	log *logger.Logger
}

// New opens (creating if needed) the local SQLite database at cfg.DSN,
// applies pending migrations, and returns the ready Storage.
func New(ctx context.Context, cfg config.DB, log *logger.Logger) (*Storage, error) {
	if err := createLocalDBFileIfNotExists(cfg.DSN); err != nil {
		log.Err(err).Str("dsn", cfg.DSN).Msg("error creating database file")
		return nil, fmt.Errorf("%w: %w", ErrOpenDatabase, err)
	}

	conn, err := sql.Open("sqlite3", cfg.DSN)
	if err != nil {
		log.Err(err).Str("dsn", cfg.DSN).Msg("error opening database")
		return nil, fmt.Errorf("%w: %w", ErrOpenDatabase, err)
	}

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("dsn", cfg.DSN).Msg("error connecting database (ping)")
		return nil, fmt.Errorf("%w: %w", ErrOpenDatabase, err)
	}

	if err = migrations.Migrate(conn); err != nil {
		return nil, fmt.Errorf("migrate local database: %w", err)
	}
	log.Debug().Str("dsn", cfg.DSN).Msg("connected to local database")

	return &Storage{db: conn, log: log}, nil
}

// Close releases the underlying database handle.
func (s *Storage) Close() error {
	return s.db.Close()
}

func createLocalDBFileIfNotExists(dbFile string) error {
	// URI-style and in-memory DSNs manage their own backing storage.
	if dbFile == ":memory:" || strings.HasPrefix(dbFile, "file:") {
		return nil
	}

	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		if dir := filepath.Dir(dbFile); dir != "." {
			if err = os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("error creating DB directory: %w", err)
			}
		}
		f, err := os.Create(dbFile)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		f.Close()
	}

	return nil
}
