package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-d local database path (SQLite file)
//	-credentials google service-account key file path
//	-spreadsheet-id explicit backup spreadsheet id
//	-spreadsheet-title backup spreadsheet title used for discovery/creation
//	-request-timeout outbound request timeout (e.g., "15s")
//	-sync-interval background sync period (e.g., "5m")
//	-sync-debounce quiet window before an auto-sync fires (e.g., "10s")
//	-preserve-remote keep remote rows on the very first sync
//	-currency default currency code for new records
//	-log-file log output path (empty = stdout)
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var databaseDSN string
	var credentialsFile string
	var spreadsheetID string
	var spreadsheetTitle string
	var requestTimeout time.Duration
	var syncInterval time.Duration
	var syncDebounce time.Duration
	var preserveRemote bool
	var defaultCurrencyCode string
	var logFile string
	var jsonConfigPath string

	flag.StringVar(&databaseDSN, "d", "", "Local database path")
	flag.StringVar(&credentialsFile, "credentials", "", "Google service-account key file")
	flag.StringVar(&spreadsheetID, "spreadsheet-id", "", "Backup spreadsheet id")
	flag.StringVar(&spreadsheetTitle, "spreadsheet-title", "", "Backup spreadsheet title")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s)")
	flag.DurationVar(&syncInterval, "sync-interval", 0, "Background sync period (e.g., 5m)")
	flag.DurationVar(&syncDebounce, "sync-debounce", 0, "Auto-sync debounce window (e.g., 10s)")
	flag.BoolVar(&preserveRemote, "preserve-remote", false, "Keep remote rows on first sync")
	flag.StringVar(&defaultCurrencyCode, "currency", "", "Default currency code")
	flag.StringVar(&logFile, "log-file", "", "Log output path")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			DefaultCurrency: defaultCurrencyCode,
			LogFile:         logFile,
		},
		Google: Google{
			CredentialsFile:  credentialsFile,
			SpreadsheetID:    spreadsheetID,
			SpreadsheetTitle: spreadsheetTitle,
			RequestTimeout:   requestTimeout,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		Workers: Workers{
			SyncInterval:              syncInterval,
			SyncDebounce:              syncDebounce,
			PreserveRemoteOnFirstSync: preserveRemote,
		},
		JSONFilePath: jsonConfigPath,
	}
}
