package aggregate

import "errors"

// Sentinel kinds for aggregation errors.
var (
	ErrNoEvents = errors.New("no play events to aggregate")
)
