package authorizer

import "errors"

// Domain errors. These are business violations, not failures: the engine
// accumulates them into a decision instead of returning them to the caller.
var (
	// ErrAccountAlreadyInitialized rejects a second account creation.
	ErrAccountAlreadyInitialized = errors.New("account already initialized")

	// ErrAccountNotInitialized rejects a transaction before any account exists.
	ErrAccountNotInitialized = errors.New("account not initialized")

	// ErrCardNotActive rejects transactions against an inactive card.
	ErrCardNotActive = errors.New("card not active")

	// ErrInsufficientLimit rejects amounts above the available limit.
	ErrInsufficientLimit = errors.New("insufficient limit")

	// ErrHighFrequency rejects transactions exceeding the allowed count inside
	// the trailing frequency window.
	ErrHighFrequency = errors.New("high frequency small interval")

	// ErrDoubledTransaction rejects repeats of a similar transaction inside
	// the repetition window.
	ErrDoubledTransaction = errors.New("doubled transaction")
)
