package authorizer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var testBase = time.Date(2019, 2, 13, 10, 0, 0, 0, time.UTC)

// txAt builds a merchant/amount transaction stamped offset past the shared
// base instant.
func txAt(t *testing.T, merchant string, amount int64, offset time.Duration) Transaction {
	t.Helper()
	tx, err := NewTransaction(map[string]any{
		"merchant": merchant,
		"amount":   amount,
		"time":     testBase.Add(offset).Format(time.RFC3339),
	})
	require.NoError(t, err)
	return tx
}

func newTestEngine() *Engine {
	engine := NewEngine()
	for _, rule := range DefaultRules() {
		engine.AddRule(rule)
	}
	return engine
}
