package rowstore

import "errors"

// Sentinel kinds for summary row store errors.
var (
	ErrNotFound = errors.New("summary row not found")
)
