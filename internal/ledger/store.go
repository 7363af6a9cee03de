// Package ledger implements the in-memory payments engine: accounts
// keyed by client id and a history of deposits and withdrawals keyed
// by transaction id, tied together by the dispute lifecycle.
//
// Every operation either fully applies and returns the resulting
// account summary, or fails and leaves the store untouched. Domain
// failures (insufficient funds, unknown transaction, wrong dispute
// state) come back as typed errors; a caller feeding garbage that the
// API contract rules out, such as a negative amount, gets a panic.
package ledger

import (
	"fmt"
	"iter"
	"slices"
	"sync"

	"github.com/shopspring/decimal"
)

// Store owns every account and the transaction history. An internal
// mutex serializes all operations; the engine itself is sequential,
// the lock only keeps occasional concurrent readers safe.
type Store struct {
	mu       sync.Mutex
	accounts map[ClientID]*account
	history  map[TxID]*Transaction
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		accounts: make(map[ClientID]*account),
		history:  make(map[TxID]*Transaction),
	}
}

// getAccount returns the client's account, creating it on first
// reference. Callers must hold mu.
func (s *Store) getAccount(id ClientID) *account {
	a, ok := s.accounts[id]
	if !ok {
		a = newAccount(id)
		s.accounts[id] = a
	}
	return a
}

// getTx looks up a history entry. Callers must hold mu.
func (s *Store) getTx(txid TxID) (*Transaction, error) {
	tx, ok := s.history[txid]
	if !ok {
		return nil, &TxNotFoundError{TxID: txid}
	}
	return tx, nil
}

// Deposit credits the amount to the client's available funds and
// records the transaction. A deposit always succeeds; reusing a
// transaction id overwrites the previous history entry.
func (s *Store) Deposit(txid TxID, client ClientID, amount decimal.Decimal) (AccountSummary, error) {
	mustBeNonNegative(DEPOSIT, txid, amount)

	s.mu.Lock()
	defer s.mu.Unlock()

	a := s.getAccount(client)
	a.available = a.available.Add(amount)

	s.history[txid] = newTransaction(txid, DEPOSIT, client, amount)

	return a.summary(), nil
}

// Withdraw debits the amount from the client's available funds and
// records the transaction. It fails with InsufficientFundsError when
// the account holds less than the requested amount.
func (s *Store) Withdraw(txid TxID, client ClientID, amount decimal.Decimal) (AccountSummary, error) {
	mustBeNonNegative(WITHDRAWAL, txid, amount)

	s.mu.Lock()
	defer s.mu.Unlock()

	a := s.getAccount(client)
	if err := a.requireAvailable(amount); err != nil {
		return AccountSummary{}, err
	}
	a.available = a.available.Sub(amount)

	s.history[txid] = newTransaction(txid, WITHDRAWAL, client, amount)

	return a.summary(), nil
}

// Dispute freezes the disputed transaction's amount: the funds move
// from available to held until a resolve or chargeback settles the
// claim. Only transactions in the NORMAL state can be disputed, and
// the client must have the full amount available; a failed dispute
// leaves the transaction undisputed.
//
// The client names the account to hold the funds on. It is taken as
// given and is not checked against the recorded owner of the
// transaction.
func (s *Store) Dispute(client ClientID, txid TxID) (AccountSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.getTx(txid)
	if err != nil {
		return AccountSummary{}, err
	}
	if tx.State != NORMAL {
		return AccountSummary{}, &TxStateError{TxID: txid, Action: DISPUTE, State: tx.State}
	}

	// Only deposits and withdrawals ever make it into the history.
	if tx.Type != DEPOSIT && tx.Type != WITHDRAWAL {
		panic(fmt.Sprintf("ledger: transaction %d has impossible type %s", txid, tx.Type))
	}

	// The hold math treats every disputed transaction like a deposit.
	// A disputed withdrawal gets the same treatment even though those
	// funds already left the account.
	a := s.getAccount(client)
	if err := a.requireAvailable(tx.Amount); err != nil {
		return AccountSummary{}, err
	}

	tx.State = DISPUTED
	a.available = a.available.Sub(tx.Amount)
	a.held = a.held.Add(tx.Amount)

	return a.summary(), nil
}

// Resolve settles a dispute in the client's favor, releasing the held
// funds back to available. It exactly reverses the matching Dispute.
func (s *Store) Resolve(client ClientID, txid TxID) (AccountSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.getTx(txid)
	if err != nil {
		return AccountSummary{}, err
	}
	if tx.State != DISPUTED {
		return AccountSummary{}, &TxStateError{TxID: txid, Action: RESOLVE, State: tx.State}
	}

	a := s.getAccount(client)
	mustHold(a, tx.Amount)

	tx.State = RESOLVED
	a.held = a.held.Sub(tx.Amount)
	a.available = a.available.Add(tx.Amount)

	return a.summary(), nil
}

// Chargeback settles a dispute against the client: the held funds are
// withdrawn and the account is locked. Nothing unlocks an account, but
// a locked account still accepts every operation.
func (s *Store) Chargeback(client ClientID, txid TxID) (AccountSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.getTx(txid)
	if err != nil {
		return AccountSummary{}, err
	}
	if tx.State != DISPUTED {
		return AccountSummary{}, &TxStateError{TxID: txid, Action: CHARGEBACK, State: tx.State}
	}

	a := s.getAccount(client)
	mustHold(a, tx.Amount)

	tx.State = CHARGEDBACK
	a.held = a.held.Sub(tx.Amount)
	a.locked = true

	return a.summary(), nil
}

// Summary returns the current view of a client's account without
// creating one.
func (s *Store) Summary(client ClientID) (AccountSummary, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.accounts[client]
	if !ok {
		return AccountSummary{}, false
	}
	return a.summary(), true
}

// Summaries returns a restartable iterator over every known account,
// ordered by client id so repeated runs produce identical output. The
// iteration reads each account at yield time and does not hold the
// store lock between yields.
func (s *Store) Summaries() iter.Seq[AccountSummary] {
	return func(yield func(AccountSummary) bool) {
		s.mu.Lock()
		ids := make([]ClientID, 0, len(s.accounts))
		for id := range s.accounts {
			ids = append(ids, id)
		}
		s.mu.Unlock()

		slices.Sort(ids)

		for _, id := range ids {
			summary, ok := s.Summary(id)
			if !ok {
				continue
			}
			if !yield(summary) {
				return
			}
		}
	}
}

// mustBeNonNegative guards the deposit and withdraw precondition. A
// negative amount here is a caller bug, not adversarial input: the
// feeder drops such rows before they reach the store.
func mustBeNonNegative(action TxType, txid TxID, amount decimal.Decimal) {
	if amount.IsNegative() {
		panic(fmt.Sprintf("ledger: negative %s amount %s for transaction %d", action, amount, txid))
	}
}

// mustHold guards the held balance against underflow. Dispute moved
// the disputed amount into held, so holding less than that here means
// the store itself is inconsistent.
func mustHold(a *account, amount decimal.Decimal) {
	if a.held.LessThan(amount) {
		panic(fmt.Sprintf("ledger: held balance %s below disputed amount %s for client %d", a.held, amount, a.id))
	}
}
