// SPDX-License-Identifier: Apache-2.0

package adapter

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/masrouf-app/masrouf/internal/logger"
	"github.com/masrouf-app/masrouf/models"
)

const (
	defaultSheetsBaseURL = "https://sheets.googleapis.com/v4/spreadsheets"
	defaultDriveBaseURL  = "https://www.googleapis.com/drive/v3/files"

	metadataSheetTitle = "Metadata"
	lastSyncCell       = "Metadata!B2"
)

// sheetLayout fixes the tabular shape of one collection inside the backup
// spreadsheet. Column order here is the wire contract; the service layer's
// row codecs must emit cells in exactly this order.
type sheetLayout struct {
	sheetID int64
	headers []string
}

var sheetLayouts = map[models.Collection]sheetLayout{
	models.CollectionExpenses: {
		sheetID: 0,
		headers: []string{"ID", "Date", "Amount", "Category", "Subcategory", "Description", "Currency", "Timestamp", "SyncStatus"},
	},
	models.CollectionLoans: {
		sheetID: 1,
		headers: []string{"ID", "Amount", "Description", "Giver", "Receiver", "Status", "Category", "DateCreated", "DateFulfilled", "Currency", "Timestamp", "SyncStatus"},
	},
	models.CollectionCategories: {
		sheetID: 2,
		headers: []string{"ID", "Name", "Icon", "Color", "Subcategories", "Timestamp", "SyncStatus"},
	},
}

// ColumnCount returns the number of sheet columns backing the collection.
// Used by the service layer to pad or truncate malformed rows safely.
func ColumnCount(collection models.Collection) int {
	return len(sheetLayouts[collection].headers)
}

// SheetsConfig configures the Sheets adapter.
type SheetsConfig struct {
	// SpreadsheetID pins an existing spreadsheet; discovery and creation are
	// skipped when set.
	SpreadsheetID string
	// SpreadsheetTitle names the spreadsheet for discovery and creation.
	SpreadsheetTitle string
	// Timeout bounds every outbound request.
	Timeout time.Duration
	// SheetsBaseURL and DriveBaseURL override the Google endpoints in tests.
	SheetsBaseURL string
	DriveBaseURL  string
}

type sheetsAdapter struct {
	client   *resty.Client
	tokens   TokenSource
	bindings SheetBindingStore
	log      *logger.Logger

	sheetsBaseURL string
	driveBaseURL  string
	explicitID    string
	title         string

	mu   sync.Mutex
	info *models.SheetInfo
}

// NewSheetsAdapter builds the production SheetsBackend over the Sheets v4 and
// Drive v3 REST APIs.
func NewSheetsAdapter(cfg SheetsConfig, tokens TokenSource, bindings SheetBindingStore, log *logger.Logger) SheetsBackend {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	if cfg.SheetsBaseURL == "" {
		cfg.SheetsBaseURL = defaultSheetsBaseURL
	}
	if cfg.DriveBaseURL == "" {
		cfg.DriveBaseURL = defaultDriveBaseURL
	}

	return &sheetsAdapter{
		client:        resty.New().SetTimeout(cfg.Timeout),
		tokens:        tokens,
		bindings:      bindings,
		log:           log,
		sheetsBaseURL: strings.TrimRight(cfg.SheetsBaseURL, "/"),
		driveBaseURL:  strings.TrimRight(cfg.DriveBaseURL, "/"),
		explicitID:    cfg.SpreadsheetID,
		title:         cfg.SpreadsheetTitle,
	}
}

func (a *sheetsAdapter) authedRequest(ctx context.Context) (*resty.Request, error) {
	token, err := a.tokens.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("get access token: %w", err)
	}

	return a.client.R().SetContext(ctx).SetAuthToken(token), nil
}

// EnsureReady implements SheetsBackend.
//
// Resolution order: in-process cache → explicit configured id → locally
// saved binding → Drive discovery by title → create a new spreadsheet with
// headers. Whatever resolves is saved back to the binding store so the next
// run skips straight to it.
func (a *sheetsAdapter) EnsureReady(ctx context.Context) (models.SheetInfo, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.info != nil {
		return *a.info, nil
	}

	info, err := a.resolveSpreadsheet(ctx)
	if err != nil {
		return models.SheetInfo{}, fmt.Errorf("%w: %w", ErrSetup, err)
	}

	if err = a.bindings.SaveSheetBinding(ctx, info); err != nil {
		return models.SheetInfo{}, fmt.Errorf("%w: save sheet binding: %w", ErrSetup, err)
	}

	a.info = &info
	return info, nil
}

func (a *sheetsAdapter) resolveSpreadsheet(ctx context.Context) (models.SheetInfo, error) {
	if a.explicitID != "" {
		return models.SheetInfo{
			SpreadsheetID:  a.explicitID,
			SpreadsheetURL: fmt.Sprintf("https://docs.google.com/spreadsheets/d/%s", a.explicitID),
			CreatedAt:      time.Now().UTC(),
		}, nil
	}

	saved, ok, err := a.bindings.LoadSheetBinding(ctx)
	if err != nil {
		return models.SheetInfo{}, fmt.Errorf("load sheet binding: %w", err)
	}
	if ok {
		return saved, nil
	}

	found, ok, err := a.discoverSpreadsheet(ctx)
	if err != nil {
		return models.SheetInfo{}, err
	}
	if ok {
		a.log.Info().Str("spreadsheet_id", found.SpreadsheetID).Msg("bound to existing backup spreadsheet")
		return found, nil
	}

	created, err := a.createSpreadsheet(ctx)
	if err != nil {
		return models.SheetInfo{}, err
	}
	a.log.Info().Str("spreadsheet_id", created.SpreadsheetID).Msg("created backup spreadsheet")

	return created, nil
}

// discoverSpreadsheet looks for a pre-existing spreadsheet with the
// configured title via the Drive files API.
func (a *sheetsAdapter) discoverSpreadsheet(ctx context.Context) (models.SheetInfo, bool, error) {
	req, err := a.authedRequest(ctx)
	if err != nil {
		return models.SheetInfo{}, false, err
	}

	var result struct {
		Files []struct {
			ID          string    `json:"id"`
			Name        string    `json:"name"`
			CreatedTime time.Time `json:"createdTime"`
		} `json:"files"`
	}

	query := fmt.Sprintf("name = '%s' and mimeType = 'application/vnd.google-apps.spreadsheet' and trashed = false", a.title)
	resp, err := req.
		SetQueryParam("q", query).
		SetQueryParam("fields", "files(id,name,createdTime)").
		SetResult(&result).
		Get(a.driveBaseURL)
	if err != nil {
		return models.SheetInfo{}, false, fmt.Errorf("%w: drive search: %w", ErrBackend, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SheetInfo{}, false, fmt.Errorf("drive search: %w", err)
	}

	if len(result.Files) == 0 {
		return models.SheetInfo{}, false, nil
	}

	file := result.Files[0]
	return models.SheetInfo{
		SpreadsheetID:  file.ID,
		SpreadsheetURL: fmt.Sprintf("https://docs.google.com/spreadsheets/d/%s", file.ID),
		CreatedAt:      file.CreatedTime,
	}, true, nil
}

func (a *sheetsAdapter) createSpreadsheet(ctx context.Context) (models.SheetInfo, error) {
	req, err := a.authedRequest(ctx)
	if err != nil {
		return models.SheetInfo{}, err
	}

	type gridProperties struct {
		RowCount    int `json:"rowCount"`
		ColumnCount int `json:"columnCount"`
	}
	type sheetProperties struct {
		SheetID        int64          `json:"sheetId"`
		Title          string         `json:"title"`
		GridProperties gridProperties `json:"gridProperties"`
	}
	type sheet struct {
		Properties sheetProperties `json:"properties"`
	}

	sheets := make([]sheet, 0, len(models.Collections)+1)
	for _, collection := range models.Collections {
		layout := sheetLayouts[collection]
		sheets = append(sheets, sheet{Properties: sheetProperties{
			SheetID: layout.sheetID,
			Title:   string(collection),
			GridProperties: gridProperties{
				RowCount:    1000,
				ColumnCount: len(layout.headers),
			},
		}})
	}
	sheets = append(sheets, sheet{Properties: sheetProperties{
		SheetID: int64(len(models.Collections)),
		Title:   metadataSheetTitle,
		GridProperties: gridProperties{
			RowCount:    10,
			ColumnCount: 2,
		},
	}})

	var created struct {
		SpreadsheetID  string `json:"spreadsheetId"`
		SpreadsheetURL string `json:"spreadsheetUrl"`
	}

	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]any{
			"properties": map[string]any{"title": a.title},
			"sheets":     sheets,
		}).
		SetResult(&created).
		Post(a.sheetsBaseURL)
	if err != nil {
		return models.SheetInfo{}, fmt.Errorf("%w: create spreadsheet: %w", ErrBackend, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SheetInfo{}, fmt.Errorf("create spreadsheet: %w", err)
	}

	info := models.SheetInfo{
		SpreadsheetID:  created.SpreadsheetID,
		SpreadsheetURL: created.SpreadsheetURL,
		CreatedAt:      time.Now().UTC(),
	}

	if err = a.writeHeaders(ctx, info.SpreadsheetID); err != nil {
		return models.SheetInfo{}, err
	}

	return info, nil
}

// writeHeaders fills row 1 of every collection sheet plus the Metadata keys.
func (a *sheetsAdapter) writeHeaders(ctx context.Context, spreadsheetID string) error {
	for _, collection := range models.Collections {
		layout := sheetLayouts[collection]
		headerRange := fmt.Sprintf("%s!A1:%s1", collection, columnLetter(len(layout.headers)))
		if err := a.writeRange(ctx, spreadsheetID, headerRange, [][]string{layout.headers}); err != nil {
			return fmt.Errorf("write %s headers: %w", collection, err)
		}
	}

	metadataRows := [][]string{
		{"Key", "Value"},
		{"LastSync", ""},
	}
	if err := a.writeRange(ctx, spreadsheetID, metadataSheetTitle+"!A1:B2", metadataRows); err != nil {
		return fmt.Errorf("write metadata headers: %w", err)
	}

	return nil
}

// FetchRows implements SheetsBackend.
func (a *sheetsAdapter) FetchRows(ctx context.Context, collection models.Collection) ([][]string, error) {
	info, err := a.EnsureReady(ctx)
	if err != nil {
		return nil, err
	}

	req, err := a.authedRequest(ctx)
	if err != nil {
		return nil, err
	}

	var result struct {
		Values [][]string `json:"values"`
	}

	resp, err := req.
		SetResult(&result).
		Get(fmt.Sprintf("%s/%s/values/%s", a.sheetsBaseURL, info.SpreadsheetID, dataRange(collection)))
	if err != nil {
		return nil, fmt.Errorf("%w: fetch %s rows: %w", ErrBackend, collection, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, fmt.Errorf("fetch %s rows: %w", collection, err)
	}

	return result.Values, nil
}

// ReplaceRows implements SheetsBackend.
func (a *sheetsAdapter) ReplaceRows(ctx context.Context, collection models.Collection, rows [][]string) error {
	info, err := a.EnsureReady(ctx)
	if err != nil {
		return err
	}

	req, err := a.authedRequest(ctx)
	if err != nil {
		return err
	}

	resp, err := req.Post(fmt.Sprintf("%s/%s/values/%s:clear", a.sheetsBaseURL, info.SpreadsheetID, dataRange(collection)))
	if err != nil {
		return fmt.Errorf("%w: clear %s rows: %w", ErrBackend, collection, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return fmt.Errorf("clear %s rows: %w", collection, err)
	}

	if len(rows) == 0 {
		return nil
	}

	if err = a.writeRange(ctx, info.SpreadsheetID, dataRange(collection), rows); err != nil {
		return fmt.Errorf("write %s rows: %w", collection, err)
	}

	return nil
}

// WriteLastSync implements SheetsBackend.
func (a *sheetsAdapter) WriteLastSync(ctx context.Context, t time.Time) error {
	info, err := a.EnsureReady(ctx)
	if err != nil {
		return err
	}

	if err = a.writeRange(ctx, info.SpreadsheetID, lastSyncCell, [][]string{{t.UTC().Format(time.RFC3339)}}); err != nil {
		return fmt.Errorf("write last sync time: %w", err)
	}

	return nil
}

func (a *sheetsAdapter) writeRange(ctx context.Context, spreadsheetID, valueRange string, rows [][]string) error {
	req, err := a.authedRequest(ctx)
	if err != nil {
		return err
	}

	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetQueryParam("valueInputOption", "RAW").
		SetBody(map[string]any{"values": rows}).
		Put(fmt.Sprintf("%s/%s/values/%s", a.sheetsBaseURL, spreadsheetID, valueRange))
	if err != nil {
		return fmt.Errorf("%w: update values: %w", ErrBackend, err)
	}

	return mapHTTPError(resp)
}

// dataRange is the open-ended range holding the collection's data rows,
// e.g. "Expenses!A2:I".
func dataRange(collection models.Collection) string {
	layout := sheetLayouts[collection]
	return fmt.Sprintf("%s!A2:%s", collection, columnLetter(len(layout.headers)))
}

// columnLetter converts a 1-based column count to its A1-notation letter.
// Collections here never exceed 26 columns.
func columnLetter(n int) string {
	return string(rune('A' + n - 1))
}
