package authorizer

import "github.com/shopspring/decimal"

// Account is the single account tracked by the engine. ActiveCard is fixed at
// creation; AvailableLimit is debited by every accepted transaction.
type Account struct {
	ActiveCard     bool
	AvailableLimit decimal.Decimal
}

// History holds the accepted transactions of an account in two views over the
// same logical set: a chronological sequence, and a grouping by fingerprint.
// Both are append-only; nothing is ever pruned or reordered.
type History struct {
	sequence      []Transaction
	byFingerprint map[string][]Transaction
}

// Append records an accepted transaction in both views.
func (h *History) Append(tx Transaction) {
	h.sequence = append(h.sequence, tx)
	if h.byFingerprint == nil {
		h.byFingerprint = make(map[string][]Transaction)
	}
	key := tx.Fingerprint()
	h.byFingerprint[key] = append(h.byFingerprint[key], tx)
}

// Sequence returns the chronological view. Callers must not mutate it.
func (h *History) Sequence() []Transaction {
	return h.sequence
}

// Group returns the chronological sub-sequence sharing the given fingerprint,
// or nil if no accepted transaction carries it.
func (h *History) Group(fingerprint string) []Transaction {
	return h.byFingerprint[fingerprint]
}

// Len reports how many transactions have been accepted.
func (h *History) Len() int {
	return len(h.sequence)
}
