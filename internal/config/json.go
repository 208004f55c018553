package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and
// string-friendly duration fields so that config files can write durations as
// "5m" or "15s".
type StructuredJSONConfig struct {
	App struct {
		DefaultCurrency string `json:"default_currency"`
		LogFile         string `json:"log_file"`
	} `json:"app,omitempty"`

	Google struct {
		CredentialsFile  string   `json:"credentials_file"`
		SpreadsheetID    string   `json:"spreadsheet_id"`
		SpreadsheetTitle string   `json:"spreadsheet_title"`
		RequestTimeout   Duration `json:"request_timeout"`
	} `json:"google,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Workers struct {
		SyncInterval              Duration `json:"sync_interval"`
		SyncDebounce              Duration `json:"sync_debounce"`
		PreserveRemoteOnFirstSync bool     `json:"preserve_remote_on_first_sync"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			DefaultCurrency: jsonCfg.App.DefaultCurrency,
			LogFile:         jsonCfg.App.LogFile,
		},
		Google: Google{
			CredentialsFile:  jsonCfg.Google.CredentialsFile,
			SpreadsheetID:    jsonCfg.Google.SpreadsheetID,
			SpreadsheetTitle: jsonCfg.Google.SpreadsheetTitle,
			RequestTimeout:   time.Duration(jsonCfg.Google.RequestTimeout),
		},
		Storage: Storage{
			DB: DB{DSN: jsonCfg.Storage.DB.DSN},
		},
		Workers: Workers{
			SyncInterval:              time.Duration(jsonCfg.Workers.SyncInterval),
			SyncDebounce:              time.Duration(jsonCfg.Workers.SyncDebounce),
			PreserveRemoteOnFirstSync: jsonCfg.Workers.PreserveRemoteOnFirstSync,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s".
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}
