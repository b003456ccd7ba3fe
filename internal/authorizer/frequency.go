package authorizer

import (
	"context"
	"time"
)

// Default limits for the high-frequency-small-interval rule.
const (
	FrequencyWindow = 120 * time.Second
	MaxFrequency    = 3
)

// FrequencyRule flags transactions that would exceed Allowed accepted
// transactions inside the trailing Window.
type FrequencyRule struct {
	Window  time.Duration
	Allowed int
}

// NewFrequencyRule creates a FrequencyRule with the given window and allowance.
func NewFrequencyRule(window time.Duration, allowed int) FrequencyRule {
	return FrequencyRule{
		Window:  window,
		Allowed: allowed,
	}
}

func (r FrequencyRule) Check(_ context.Context, _ *Account, history *History, incoming Transaction) error {
	if IsFrequent(history.Sequence(), incoming, r.Window, r.Allowed) {
		return ErrHighFrequency
	}
	return nil
}

// IsFrequent reports whether accepting incoming would put more than allowed
// transactions inside the trailing window. history must be chronological.
//
// The incoming transaction is compared against history[n-allowed], the oldest
// transaction that would share the window with it. A gap of exactly window
// does not count. When a transaction strictly before that boundary carries the
// same timestamp, the window edge is ambiguous and the transaction is not
// flagged, so simultaneous arrivals are not penalized twice.
func IsFrequent(history []Transaction, incoming Transaction, window time.Duration, allowed int) bool {
	boundary := len(history) - allowed
	if boundary < 0 {
		return false
	}

	boundaryTime := history[boundary].Time
	if incoming.Time.Sub(boundaryTime) >= window {
		return false
	}
	return !timestampPresent(history, 0, boundary-1, boundaryTime)
}

// timestampPresent binary-searches history[left..right] (inclusive) for an
// exact timestamp match. O(log n) over the chronological sequence.
func timestampPresent(history []Transaction, left, right int, target time.Time) bool {
	if left < 0 || right >= len(history) || left > right {
		return false
	}

	mid := left + (right-left)/2
	midTime := history[mid].Time

	if midTime.Equal(target) {
		return true
	}
	if midTime.After(target) {
		return timestampPresent(history, left, mid-1, target)
	}
	return timestampPresent(history, mid+1, right, target)
}
