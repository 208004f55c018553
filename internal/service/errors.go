package service

import "errors"

var (
	// ErrInvalidRecord indicates a local mutation carried data that failed
	// validation (missing category, malformed date, non-positive amount).
	ErrInvalidRecord = errors.New("invalid record provided")
	// ErrRecordNotFound indicates an update or delete referenced an id that
	// does not exist in the local store.
	ErrRecordNotFound = errors.New("record not found")
)
