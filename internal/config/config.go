// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"time"
)

// StructuredConfig is the top-level configuration container for masrouf. It
// aggregates all sub-configurations and is populated by merging values from
// environment variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings.
	App App `envPrefix:"APP_"`

	// Google holds credentials and addresses for the Google Sheets backup
	// backend.
	Google Google `envPrefix:"GOOGLE_"`

	// Storage holds the local persistence settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds background sync job settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file. When
	// non-empty, the file is parsed and merged on top of the values already
	// loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// DefaultCurrency is the currency code assigned to records created
	// without one (e.g. "DZD").
	// Env: APP_DEFAULT_CURRENCY
	DefaultCurrency string `env:"DEFAULT_CURRENCY"`

	// LogFile is an optional path for JSON log output. Empty means stdout.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Google holds the settings needed to reach the Sheets and Drive APIs with a
// service account.
type Google struct {
	// CredentialsFile is the path to a service-account JSON key file
	// (client_email + private_key). Required for any remote operation.
	// Env: GOOGLE_CREDENTIALS_FILE
	CredentialsFile string `env:"CREDENTIALS_FILE"`

	// SpreadsheetID pins the backup spreadsheet explicitly. When empty the
	// adapter discovers a spreadsheet by title or creates a new one.
	// Env: GOOGLE_SPREADSHEET_ID
	SpreadsheetID string `env:"SPREADSHEET_ID"`

	// SpreadsheetTitle is the title used for discovery and creation of the
	// backup spreadsheet.
	// Env: GOOGLE_SPREADSHEET_TITLE
	SpreadsheetTitle string `env:"SPREADSHEET_TITLE"`

	// RequestTimeout is the per-request timeout for outbound Sheets/Drive
	// calls (e.g. "15s").
	// Env: GOOGLE_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups local persistence settings.
type Storage struct {
	// DB holds the local SQLite settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the SQLite file path (e.g. "masrouf.db").
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Workers holds background sync job settings.
type Workers struct {
	// SyncInterval defines how often the background job runs a full sync
	// cycle (e.g. "5m").
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`

	// SyncDebounce is the quiet window after a local mutation before an
	// automatic sync fires; rapid successive mutations coalesce into one
	// cycle (e.g. "10s").
	// Env: WORKERS_SYNC_DEBOUNCE
	SyncDebounce time.Duration `env:"SYNC_DEBOUNCE"`

	// PreserveRemoteOnFirstSync suppresses the remote push on the very first
	// sync cycle when the backup sheet already contains rows, so a fresh
	// install never clobbers an existing backup.
	// Env: WORKERS_PRESERVE_REMOTE_ON_FIRST_SYNC
	PreserveRemoteOnFirstSync bool `env:"PRESERVE_REMOTE_ON_FIRST_SYNC"`
}

// Defaults applied by GetConfig when the merged sources leave a field empty.
const (
	defaultDSN              = "masrouf.db"
	defaultSpreadsheetTitle = "Masrouf_Backup"
	defaultRequestTimeout   = 15 * time.Second
	defaultSyncInterval     = 5 * time.Minute
	defaultSyncDebounce     = 10 * time.Second
	defaultCurrency         = "DZD"
)

// GetConfig assembles the runtime configuration: env vars first, then flags,
// then the optional JSON file, merged in order and validated.
func GetConfig() (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
	if err != nil {
		return nil, fmt.Errorf("error building config: %w", err)
	}

	cfg.applyDefaults()

	if err = cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = defaultDSN
	}
	if cfg.Google.SpreadsheetTitle == "" {
		cfg.Google.SpreadsheetTitle = defaultSpreadsheetTitle
	}
	if cfg.Google.RequestTimeout <= 0 {
		cfg.Google.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Workers.SyncInterval <= 0 {
		cfg.Workers.SyncInterval = defaultSyncInterval
	}
	if cfg.Workers.SyncDebounce <= 0 {
		cfg.Workers.SyncDebounce = defaultSyncDebounce
	}
	if cfg.App.DefaultCurrency == "" {
		cfg.App.DefaultCurrency = defaultCurrency
	}
}
