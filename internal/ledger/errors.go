package ledger

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Common sentinel errors. The typed errors below unwrap to these, so
// callers can branch with errors.Is and dig details out with errors.As.
var (
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrTxNotFound        = errors.New("transaction not found")
	ErrTxWrongState      = errors.New("transaction in wrong state")
)

// Reports an action the client has too little available funds for.
type InsufficientFundsError struct {
	Available decimal.Decimal
	Required  decimal.Decimal
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds: %s available, %s required", e.Available, e.Required)
}

func (e *InsufficientFundsError) Unwrap() error { return ErrInsufficientFunds }

// Reports a reference to a transaction the ledger has never recorded.
type TxNotFoundError struct {
	TxID TxID
}

func (e *TxNotFoundError) Error() string {
	return fmt.Sprintf("transaction %d not found", e.TxID)
}

func (e *TxNotFoundError) Unwrap() error { return ErrTxNotFound }

// Reports an action applied to a transaction whose dispute state does
// not allow it, e.g. a resolve on a transaction never disputed.
type TxStateError struct {
	TxID   TxID
	Action TxType
	State  DisputeState
}

func (e *TxStateError) Error() string {
	return fmt.Sprintf("transaction %d is %s: %s not allowed", e.TxID, e.State, e.Action)
}

func (e *TxStateError) Unwrap() error { return ErrTxWrongState }
