package authorizer

import "context"

// AvailableLimitRule rejects transactions whose amount exceeds the account's
// available limit.
type AvailableLimitRule struct{}

func (AvailableLimitRule) Check(_ context.Context, account *Account, _ *History, incoming Transaction) error {
	if account.AvailableLimit.LessThan(incoming.Amount) {
		return ErrInsufficientLimit
	}
	return nil
}
