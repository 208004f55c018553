package store

import "errors"

var (
	// ErrOpenDatabase indicates the local SQLite database could not be
	// opened or created.
	ErrOpenDatabase = errors.New("error opening local database")
)
