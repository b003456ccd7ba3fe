package authorizer

import "errors"

// Violation reason codes emitted on decisions.
const (
	ViolationAccountAlreadyInitialized = "account-already-initialized"
	ViolationAccountNotInitialized     = "account-not-initialized"
	ViolationCardNotActive             = "card-not-active"
	ViolationInsufficientLimit         = "insufficient-limit"
	ViolationHighFrequency             = "high-frequency-small-interval"
	ViolationDoubledTransaction        = "doubled-transaction"
	ViolationDefault                   = "default-violation"
)

// ViolationFor maps a domain error to its reason code. Unrecognized errors
// fall back to the generic code rather than leaking internals onto the wire.
func ViolationFor(err error) string {
	switch {
	case errors.Is(err, ErrAccountAlreadyInitialized):
		return ViolationAccountAlreadyInitialized
	case errors.Is(err, ErrAccountNotInitialized):
		return ViolationAccountNotInitialized
	case errors.Is(err, ErrCardNotActive):
		return ViolationCardNotActive
	case errors.Is(err, ErrInsufficientLimit):
		return ViolationInsufficientLimit
	case errors.Is(err, ErrHighFrequency):
		return ViolationHighFrequency
	case errors.Is(err, ErrDoubledTransaction):
		return ViolationDoubledTransaction
	default:
		return ViolationDefault
	}
}
