package authorizer

import (
	"context"
	"sync"
)

// Decision is the outcome of one request: the accumulated violation reason
// codes (empty on acceptance, never nil) and a snapshot of the tracked
// account. Account is nil when no account has been created yet.
type Decision struct {
	Violations []string
	Account    *Account
}

// Engine owns the single account and its history and applies the rule chain
// to incoming transactions. A mutex serializes every operation so the
// read-decide-mutate step stays atomic under concurrent callers; processing
// is otherwise strictly sequential.
type Engine struct {
	mu      sync.Mutex
	rules   []Rule
	account *Account
	history History
}

// NewEngine creates an Engine with an empty rule chain.
func NewEngine() *Engine {
	return &Engine{rules: make([]Rule, 0)}
}

// AddRule appends a rule to the chain. Rules run in registration order, which
// fixes the order violations are emitted in.
func (e *Engine) AddRule(rule Rule) {
	e.rules = append(e.rules, rule)
}

// CreateAccount creates the single tracked account. A second call is rejected
// with account-already-initialized and echoes the existing account untouched.
func (e *Engine) CreateAccount(_ context.Context, account Account) Decision {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.account != nil {
		return Decision{
			Violations: []string{ViolationFor(ErrAccountAlreadyInitialized)},
			Account:    e.snapshot(),
		}
	}

	created := account
	e.account = &created
	return Decision{Violations: make([]string, 0), Account: e.snapshot()}
}

// Authorize evaluates one transaction against the account. Every rule runs
// regardless of earlier violations; the transaction is accepted (history
// append plus limit debit, atomically) only when none fires. Rejection leaves
// all state untouched.
func (e *Engine) Authorize(ctx context.Context, incoming Transaction) Decision {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.account == nil {
		return Decision{
			Violations: []string{ViolationFor(ErrAccountNotInitialized)},
		}
	}

	violations := make([]string, 0)
	for _, rule := range e.rules {
		if err := rule.Check(ctx, e.account, &e.history, incoming); err != nil {
			violations = append(violations, ViolationFor(err))
		}
	}

	if len(violations) == 0 {
		e.history.Append(incoming)
		e.account.AvailableLimit = e.account.AvailableLimit.Sub(incoming.Amount)
	}

	return Decision{Violations: violations, Account: e.snapshot()}
}

// snapshot copies the account so callers cannot reach internal state.
// Callers must hold e.mu.
func (e *Engine) snapshot() *Account {
	if e.account == nil {
		return nil
	}
	cp := *e.account
	return &cp
}
