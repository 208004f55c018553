// SPDX-License-Identifier: Apache-2.0

package config

import "strings"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// The local database must live in a file: sync checkpoints have to survive
// process restarts, so an in-memory DSN would silently break incremental
// merges.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Google.RequestTimeout <= 0 || cfg.Google.SpreadsheetTitle == "" {
		return ErrInvalidGoogleConfigs
	}

	if cfg.Workers.SyncInterval <= 0 || cfg.Workers.SyncDebounce <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
