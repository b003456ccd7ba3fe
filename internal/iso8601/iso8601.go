// Package iso8601 parses the timestamp format carried by authorization
// requests, e.g. "2019-02-13T10:00:00.000Z". Instants are second-resolution
// UTC; fractional seconds are accepted and discarded.
package iso8601

import (
	"fmt"
	"time"
)

// Parse converts an ISO 8601 timestamp string into a UTC instant truncated to
// whole seconds. Returns an error for anything that does not match the format.
func Parse(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse timestamp %q: %w", s, err)
	}
	return t.UTC().Truncate(time.Second), nil
}
