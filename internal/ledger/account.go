package ledger

import "github.com/shopspring/decimal"

// account is a per-client balance record. Accounts are created lazily
// on first reference and never deleted.
type account struct {
	id        ClientID
	available decimal.Decimal
	held      decimal.Decimal
	locked    bool
}

func newAccount(id ClientID) *account {
	return &account{id: id}
}

// summary derives the externally visible view of the account.
// The total is never stored, always computed.
func (a *account) summary() AccountSummary {
	return AccountSummary{
		Client:    a.id,
		Available: a.available,
		Held:      a.held,
		Total:     a.available.Add(a.held),
		Locked:    a.locked,
	}
}

// requireAvailable fails with InsufficientFundsError when the account
// holds less than the required amount. It never mutates the account.
func (a *account) requireAvailable(required decimal.Decimal) error {
	if a.available.LessThan(required) {
		return &InsufficientFundsError{
			Available: a.available,
			Required:  required,
		}
	}
	return nil
}

// AccountSummary is the reported projection of an account: one summary
// per applied transaction in stream mode, one per account in the final
// dump.
type AccountSummary struct {
	Client    ClientID        `json:"client"`
	Available decimal.Decimal `json:"available"`
	Held      decimal.Decimal `json:"held"`
	Total     decimal.Decimal `json:"total"`
	Locked    bool            `json:"locked"`
}
