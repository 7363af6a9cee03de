package ledger

import "github.com/shopspring/decimal"

// TxID identifies a single transaction.
type TxID uint32

// ClientID identifies a client account.
type ClientID uint16

// TxType is the kind of action a transaction performs.
type TxType string

const (
	DEPOSIT    TxType = "DEPOSIT"
	WITHDRAWAL TxType = "WITHDRAWAL"
	DISPUTE    TxType = "DISPUTE"
	RESOLVE    TxType = "RESOLVE"
	CHARGEBACK TxType = "CHARGEBACK"
)

// DisputeState is where a recorded transaction stands in the dispute
// lifecycle. Transactions start NORMAL; a dispute makes them DISPUTED;
// a resolve or chargeback settles them into one of the two terminal
// states. No action leaves a terminal state.
type DisputeState string

const (
	NORMAL      DisputeState = "NORMAL"
	DISPUTED    DisputeState = "DISPUTED"
	RESOLVED    DisputeState = "RESOLVED"
	CHARGEDBACK DisputeState = "CHARGEDBACK"
)

// Transaction is a single history entry. Only deposits and withdrawals
// are recorded; disputes, resolves and chargebacks mutate the State of
// an existing entry instead of creating entries of their own.
type Transaction struct {
	ID     TxID
	Type   TxType
	Client ClientID
	Amount decimal.Decimal
	State  DisputeState
}

func newTransaction(id TxID, t TxType, client ClientID, amount decimal.Decimal) *Transaction {
	return &Transaction{
		ID:     id,
		Type:   t,
		Client: client,
		Amount: amount,
		State:  NORMAL,
	}
}
