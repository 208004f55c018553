package adapter

import "errors"

// Sentinel errors mapped from Google API responses. Callers match them with
// errors.Is to tell transient network/auth failures apart from setup
// problems.
var (
	// ErrUnauthorized covers 401 responses: expired or invalid access token.
	ErrUnauthorized = errors.New("google api unauthorized")
	// ErrForbidden covers 403 responses other than rate limiting: the
	// service account lacks access to the spreadsheet.
	ErrForbidden = errors.New("google api forbidden")
	// ErrRateLimited covers 429 responses from the Sheets quota.
	ErrRateLimited = errors.New("google api rate limited")
	// ErrNotFound covers 404 responses: the saved spreadsheet id no longer
	// resolves.
	ErrNotFound = errors.New("google api resource not found")
	// ErrBackend covers 5xx responses and transport-level failures.
	ErrBackend = errors.New("google api backend failure")
	// ErrSetup marks failures while provisioning or discovering the backup
	// spreadsheet. Distinct from sync-time failures so callers can surface
	// "setup failed" instead of "sync failed".
	ErrSetup = errors.New("remote setup failed")
	// ErrNoCredentials indicates the service-account key is missing or
	// unreadable.
	ErrNoCredentials = errors.New("no google credentials configured")
)
