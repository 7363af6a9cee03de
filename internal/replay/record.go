package replay

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/KretovDmitry/payments-engine/internal/ledger"
	"github.com/shopspring/decimal"
)

// action is the normalized transaction tag of an input row.
type action string

const (
	actionDeposit    action = "deposit"
	actionWithdraw   action = "withdraw"
	actionDispute    action = "dispute"
	actionResolve    action = "resolve"
	actionChargeback action = "chargeback"
)

// record is one parsed input row: what to do, to whom and with what.
// The amount is set for deposits and withdrawals only.
type record struct {
	action action
	client ledger.ClientID
	txid   ledger.TxID
	amount decimal.Decimal
}

// parseRecord turns a raw CSV row into a record. The field order is
// fixed: type, client, tx, amount. The amount field is required for
// deposits and withdrawals and ignored otherwise. Rows that do not fit
// come back with a reason, so the caller can log the skip.
func parseRecord(fields []string) (record, error) {
	if len(fields) < 3 {
		return record{}, fmt.Errorf("want at least 3 fields, got %d", len(fields))
	}

	act, err := parseAction(fields[0])
	if err != nil {
		return record{}, err
	}

	client, err := strconv.ParseUint(strings.TrimSpace(fields[1]), 10, 16)
	if err != nil {
		return record{}, fmt.Errorf("client %q: %w", fields[1], err)
	}

	txid, err := strconv.ParseUint(strings.TrimSpace(fields[2]), 10, 32)
	if err != nil {
		return record{}, fmt.Errorf("tx %q: %w", fields[2], err)
	}

	rec := record{
		action: act,
		client: ledger.ClientID(client),
		txid:   ledger.TxID(txid),
	}

	if act != actionDeposit && act != actionWithdraw {
		return rec, nil
	}

	if len(fields) < 4 || strings.TrimSpace(fields[3]) == "" {
		return record{}, fmt.Errorf("%s without an amount", act)
	}
	amount, err := decimal.NewFromString(strings.TrimSpace(fields[3]))
	if err != nil {
		return record{}, fmt.Errorf("amount %q: %w", fields[3], err)
	}
	// Negative amounts never reach the ledger: it treats them as a
	// broken caller, not as bad input.
	if amount.IsNegative() {
		return record{}, fmt.Errorf("negative amount %s", amount)
	}
	rec.amount = amount

	return rec, nil
}

// parseAction maps an input tag to an action. Tags are matched case
// insensitively; "withdrawal" is accepted as an alias for "withdraw".
func parseAction(s string) (action, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "deposit":
		return actionDeposit, nil
	case "withdraw", "withdrawal":
		return actionWithdraw, nil
	case "dispute":
		return actionDispute, nil
	case "resolve":
		return actionResolve, nil
	case "chargeback":
		return actionChargeback, nil
	}
	return "", fmt.Errorf("unknown transaction type %q", s)
}
