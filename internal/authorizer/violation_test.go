package authorizer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestViolationFor(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{ErrAccountAlreadyInitialized, "account-already-initialized"},
		{ErrAccountNotInitialized, "account-not-initialized"},
		{ErrCardNotActive, "card-not-active"},
		{ErrInsufficientLimit, "insufficient-limit"},
		{ErrHighFrequency, "high-frequency-small-interval"},
		{ErrDoubledTransaction, "doubled-transaction"},
		{errors.New("unexpected"), "default-violation"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ViolationFor(tt.err))
	}
}
