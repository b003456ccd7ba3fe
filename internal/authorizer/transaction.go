package authorizer

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kevinwkt/authenticator/internal/iso8601"
)

// Field is one named attribute of a transaction in canonical string form.
type Field struct {
	Key   string
	Value string
}

// Transaction is an immutable authorization request. Fields holds every
// attribute (including time and amount) sorted by key, so that fingerprints
// are stable regardless of the order the wire delivered them in.
type Transaction struct {
	Fields []Field
	Time   time.Time
	Amount decimal.Decimal
}

// NewTransaction builds a Transaction from a decoded JSON object. The "time"
// field must be an ISO 8601 string and "amount" a non-negative number; any
// other fields are carried through for fingerprinting.
func NewTransaction(raw map[string]any) (Transaction, error) {
	var tx Transaction

	rawTime, ok := raw["time"].(string)
	if !ok {
		return Transaction{}, fmt.Errorf("transaction is missing a time string")
	}
	parsed, err := iso8601.Parse(rawTime)
	if err != nil {
		return Transaction{}, err
	}
	tx.Time = parsed

	rawAmount, ok := raw["amount"]
	if !ok {
		return Transaction{}, fmt.Errorf("transaction is missing an amount")
	}
	amount, err := parseAmount(rawAmount)
	if err != nil {
		return Transaction{}, err
	}
	if amount.IsNegative() {
		return Transaction{}, fmt.Errorf("transaction amount %s is negative", amount)
	}
	tx.Amount = amount

	tx.Fields = make([]Field, 0, len(raw))
	for key, value := range raw {
		tx.Fields = append(tx.Fields, Field{Key: key, Value: fieldString(value)})
	}
	sort.Slice(tx.Fields, func(i, j int) bool {
		return tx.Fields[i].Key < tx.Fields[j].Key
	})

	return tx, nil
}

// Fingerprint derives the identity key used to group similar transactions:
// every field except time, concatenated as "key:value:" in sorted key order.
// Two transactions differing only in time share a fingerprint.
func (t Transaction) Fingerprint() string {
	var sb strings.Builder
	for _, f := range t.Fields {
		if f.Key == "time" {
			continue
		}
		sb.WriteString(f.Key)
		sb.WriteByte(':')
		sb.WriteString(f.Value)
		sb.WriteByte(':')
	}
	return sb.String()
}

func parseAmount(v any) (decimal.Decimal, error) {
	switch n := v.(type) {
	case json.Number:
		return decimal.NewFromString(n.String())
	case float64:
		return decimal.NewFromFloat(n), nil
	case int:
		return decimal.NewFromInt(int64(n)), nil
	case int64:
		return decimal.NewFromInt(n), nil
	case decimal.Decimal:
		return n, nil
	default:
		return decimal.Decimal{}, fmt.Errorf("transaction amount has unsupported type %T", v)
	}
}

// fieldString renders a decoded JSON value deterministically. Equal values
// always render equally, which is all the fingerprint needs.
func fieldString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case json.Number:
		return s.String()
	case bool:
		return strconv.FormatBool(s)
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case int:
		return strconv.Itoa(s)
	case int64:
		return strconv.FormatInt(s, 10)
	case decimal.Decimal:
		return s.String()
	case nil:
		return "null"
	default:
		return fmt.Sprint(s)
	}
}
