package authorizer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransaction_Fingerprint(t *testing.T) {
	t.Run("time does not participate", func(t *testing.T) {
		a := txAt(t, "x", 30, 0)
		b := txAt(t, "x", 30, 45*time.Second)
		assert.Equal(t, a.Fingerprint(), b.Fingerprint())
	})

	t.Run("amount participates", func(t *testing.T) {
		a := txAt(t, "x", 30, 0)
		b := txAt(t, "x", 31, 0)
		assert.NotEqual(t, a.Fingerprint(), b.Fingerprint())
	})

	t.Run("merchant participates", func(t *testing.T) {
		a := txAt(t, "x", 30, 0)
		b := txAt(t, "y", 30, 0)
		assert.NotEqual(t, a.Fingerprint(), b.Fingerprint())
	})

	t.Run("fields concatenate in sorted key order", func(t *testing.T) {
		tx := txAt(t, "x", 30, 0)
		assert.Equal(t, "amount:30:merchant:x:", tx.Fingerprint())
	})

	t.Run("extra fields participate", func(t *testing.T) {
		tx, err := NewTransaction(map[string]any{
			"merchant": "x",
			"amount":   int64(30),
			"channel":  "pos",
			"time":     testBase.Format(time.RFC3339),
		})
		require.NoError(t, err)
		assert.Equal(t, "amount:30:channel:pos:merchant:x:", tx.Fingerprint())
	})
}

func TestNewTransaction(t *testing.T) {
	t.Run("parses time and amount", func(t *testing.T) {
		tx, err := NewTransaction(map[string]any{
			"merchant": "x",
			"amount":   int64(30),
			"time":     "2019-02-13T10:00:00.000Z",
		})
		require.NoError(t, err)
		assert.True(t, tx.Time.Equal(time.Date(2019, 2, 13, 10, 0, 0, 0, time.UTC)))
		assert.Equal(t, "30", tx.Amount.String())
	})

	t.Run("rejects missing time", func(t *testing.T) {
		_, err := NewTransaction(map[string]any{"merchant": "x", "amount": int64(30)})
		assert.Error(t, err)
	})

	t.Run("rejects malformed time", func(t *testing.T) {
		_, err := NewTransaction(map[string]any{
			"merchant": "x",
			"amount":   int64(30),
			"time":     "yesterday",
		})
		assert.Error(t, err)
	})

	t.Run("rejects missing amount", func(t *testing.T) {
		_, err := NewTransaction(map[string]any{
			"merchant": "x",
			"time":     "2019-02-13T10:00:00Z",
		})
		assert.Error(t, err)
	})

	t.Run("rejects negative amount", func(t *testing.T) {
		_, err := NewTransaction(map[string]any{
			"merchant": "x",
			"amount":   int64(-5),
			"time":     "2019-02-13T10:00:00Z",
		})
		assert.Error(t, err)
	})
}
