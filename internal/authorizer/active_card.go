package authorizer

import "context"

// ActiveCardRule rejects every transaction while the account's card is
// inactive.
type ActiveCardRule struct{}

func (ActiveCardRule) Check(_ context.Context, account *Account, _ *History, _ Transaction) error {
	if !account.ActiveCard {
		return ErrCardNotActive
	}
	return nil
}
