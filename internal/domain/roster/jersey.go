package roster

import (
	"regexp"
	"strconv"
	"strings"
)

// jerseyPattern accepts a whole number optionally written with a trailing
// fractional-zero suffix ("12", "12.0", "12.00"), as produced by
// spreadsheet-to-text conversion.
var jerseyPattern = regexp.MustCompile(`^([0-9]+)(?:\.0+)?$`)

// NormalizeJersey converts the raw jersey text stored on a roster
// assignment to a whole-number jersey value. The second return is false
// for anything that is not a plain integer (letters, blank, non-zero
// fractional part); a malformed jersey never aborts aggregation.
func NormalizeJersey(raw string) (int, bool) {
	m := jerseyPattern.FindStringSubmatch(strings.TrimSpace(raw))
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}
