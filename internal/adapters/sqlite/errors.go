package sqlite

import "errors"

// Sentinel kinds for snapshot storage errors.
var (
	ErrPathRequired  = errors.New("snapshot path is required")
	ErrNotConfigured = errors.New("snapshot storage is not configured")
)
