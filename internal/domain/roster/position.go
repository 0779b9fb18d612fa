package roster

import "strings"

// FormatPositions joins up to three raw position slots into a single
// display string. Slots are trimmed, empties dropped, and the rest joined
// in slot order with ", ". All-empty slots yield "", not an error.
func FormatPositions(slots [3]string) string {
	parts := make([]string, 0, len(slots))
	for _, s := range slots {
		if t := strings.TrimSpace(s); t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, ", ")
}
