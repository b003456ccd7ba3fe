// Package stream adapts the authorizer engine to a line-delimited JSON
// request stream: one request per input line, one decision per output line.
package stream

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kevinwkt/authenticator/internal/authorizer"
)

// Processor drives an Engine from a request stream.
type Processor struct {
	engine *authorizer.Engine
	log    *slog.Logger
}

// New creates a Processor around the given engine.
func New(engine *authorizer.Engine, log *slog.Logger) *Processor {
	return &Processor{engine: engine, log: log}
}

// request is the per-line envelope. Exactly one of the two keys is expected.
type request struct {
	Account     json.RawMessage `json:"account"`
	Transaction json.RawMessage `json:"transaction"`
}

type wireAccount struct {
	ActiveCard     bool        `json:"active-card"`
	AvailableLimit json.Number `json:"available-limit"`
}

type wireDecision struct {
	Violations []string     `json:"violations"`
	Account    *wireAccount `json:"account,omitempty"`
}

// Run reads requests line by line until EOF, writing one decision per line.
// Malformed lines abort with a line-numbered error; a rejected request is not
// malformed and never stops the stream. Context cancellation stops the loop
// between lines.
func (p *Processor) Run(ctx context.Context, r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	out := bufio.NewWriter(w)
	defer out.Flush()
	enc := json.NewEncoder(out)

	line := 0
	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line++
		raw := bytes.TrimSpace(scanner.Bytes())
		if len(raw) == 0 {
			continue
		}

		decision, err := p.handle(ctx, raw)
		if err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}

		if err := enc.Encode(encodeDecision(decision)); err != nil {
			return fmt.Errorf("line %d: encode decision: %w", line, err)
		}
		if err := out.Flush(); err != nil {
			return fmt.Errorf("line %d: flush decision: %w", line, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read request stream: %w", err)
	}

	p.log.Info("request stream drained", "lines", line)
	return nil
}

func (p *Processor) handle(ctx context.Context, raw []byte) (authorizer.Decision, error) {
	var req request
	if err := json.Unmarshal(raw, &req); err != nil {
		return authorizer.Decision{}, fmt.Errorf("decode request: %w", err)
	}

	requestID := uuid.NewString()

	switch {
	case req.Account != nil:
		account, err := decodeAccount(req.Account)
		if err != nil {
			return authorizer.Decision{}, err
		}
		decision := p.engine.CreateAccount(ctx, account)
		p.log.Debug("account creation decided",
			"request_id", requestID,
			"violations", len(decision.Violations),
		)
		return decision, nil

	case req.Transaction != nil:
		tx, err := decodeTransaction(req.Transaction)
		if err != nil {
			return authorizer.Decision{}, err
		}
		decision := p.engine.Authorize(ctx, tx)
		p.log.Debug("transaction decided",
			"request_id", requestID,
			"violations", len(decision.Violations),
		)
		return decision, nil

	default:
		return authorizer.Decision{}, fmt.Errorf("request is neither an account nor a transaction")
	}
}

func decodeAccount(raw json.RawMessage) (authorizer.Account, error) {
	var wire wireAccount
	if err := json.Unmarshal(raw, &wire); err != nil {
		return authorizer.Account{}, fmt.Errorf("decode account: %w", err)
	}
	limit, err := decimalFromNumber(wire.AvailableLimit)
	if err != nil {
		return authorizer.Account{}, fmt.Errorf("decode account limit: %w", err)
	}
	return authorizer.Account{ActiveCard: wire.ActiveCard, AvailableLimit: limit}, nil
}

func decodeTransaction(raw json.RawMessage) (authorizer.Transaction, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var fields map[string]any
	if err := dec.Decode(&fields); err != nil {
		return authorizer.Transaction{}, fmt.Errorf("decode transaction: %w", err)
	}
	tx, err := authorizer.NewTransaction(fields)
	if err != nil {
		return authorizer.Transaction{}, fmt.Errorf("decode transaction: %w", err)
	}
	return tx, nil
}

func decimalFromNumber(n json.Number) (decimal.Decimal, error) {
	return decimal.NewFromString(n.String())
}

func encodeDecision(decision authorizer.Decision) wireDecision {
	wire := wireDecision{Violations: decision.Violations}
	if decision.Account != nil {
		wire.Account = &wireAccount{
			ActiveCard:     decision.Account.ActiveCard,
			AvailableLimit: json.Number(decision.Account.AvailableLimit.String()),
		}
	}
	return wire
}
