package authorizer

import "context"

// Rule is one business check applied to an incoming transaction. A nil return
// passes; a domain error names the violation. Rules never mutate state.
type Rule interface {
	Check(ctx context.Context, account *Account, history *History, incoming Transaction) error
}

// DefaultRules returns the rule chain with the documented default limits, in
// the fixed evaluation order: card activity, available limit, frequency,
// doubled transaction.
func DefaultRules() []Rule {
	return []Rule{
		ActiveCardRule{},
		AvailableLimitRule{},
		NewFrequencyRule(FrequencyWindow, MaxFrequency),
		NewDoubledRule(RepeatWindow, MaxRepetition),
	}
}
