package authorizer

import (
	"context"
	"time"
)

// Default limits for the doubled-transaction rule.
const (
	RepeatWindow  = 120 * time.Second
	MaxRepetition = 1
)

// DoubledRule flags transactions that repeat a similar transaction (same
// fingerprint) more than Allowed times inside the trailing Window.
type DoubledRule struct {
	Window  time.Duration
	Allowed int
}

// NewDoubledRule creates a DoubledRule with the given window and allowance.
func NewDoubledRule(window time.Duration, allowed int) DoubledRule {
	return DoubledRule{
		Window:  window,
		Allowed: allowed,
	}
}

func (r DoubledRule) Check(_ context.Context, _ *Account, history *History, incoming Transaction) error {
	if IsDoubled(history, incoming, r.Window, r.Allowed) {
		return ErrDoubledTransaction
	}
	return nil
}

// IsDoubled reports whether incoming repeats transactions of its own
// fingerprint beyond the allowance inside the window. Transactions with no
// accepted fingerprint twin are never doubled; otherwise the group's
// chronological sub-sequence feeds the frequency check.
func IsDoubled(history *History, incoming Transaction, window time.Duration, allowed int) bool {
	group := history.Group(incoming.Fingerprint())
	if group == nil {
		return false
	}
	return IsFrequent(group, incoming, window, allowed)
}
