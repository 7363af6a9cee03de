// Package replay feeds an ordered stream of transaction records into
// the ledger, turning CSV rows into account summaries. Rows it cannot
// use go to the log.
package replay

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/KretovDmitry/payments-engine/internal/config"
	"github.com/KretovDmitry/payments-engine/internal/ledger"
	"github.com/KretovDmitry/payments-engine/pkg/logger"
)

type Service struct {
	store  *ledger.Store
	logger logger.Logger
	mode   string
}

func NewService(store *ledger.Store, logger logger.Logger, cfg *config.Config) (*Service, error) {
	if store == nil {
		return nil, errors.New("nil dependency: store")
	}
	if logger == nil {
		return nil, errors.New("nil dependency: logger")
	}
	if cfg == nil {
		return nil, errors.New("nil dependency: config")
	}
	switch cfg.Mode {
	case config.ModeStream, config.ModeAccounts:
	default:
		return nil, fmt.Errorf("unknown output mode %q", cfg.Mode)
	}
	return &Service{store: store, logger: logger, mode: cfg.Mode}, nil
}

// Run folds the input into the store one row at a time, in file order,
// and writes the summary CSV. Rows the engine cannot use are skipped,
// transactions the ledger refuses are rejected; neither fails the run.
// Both are counted and logged, nothing more.
func (s *Service) Run(ctx context.Context, in io.Reader, out io.Writer) (err error) {
	r := csv.NewReader(in)
	// Rows vary between 3 and 4 fields, padded with spaces.
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	w := newSummaryWriter(out)
	defer func() {
		if ferr := w.flush(); ferr != nil && err == nil {
			err = fmt.Errorf("flush summary: %w", ferr)
		}
	}()

	var processed, applied, rejected, skipped int

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fields, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		processed++

		// A row the CSV layer cannot even tokenize is skipped like
		// any other unusable row.
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			skipped++
			s.logger.Debugf("skipping row %d: %s", processed, err)
			continue
		}
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}

		// A header row dies here too: "type" is not a known tag.
		rec, err := parseRecord(fields)
		if err != nil {
			skipped++
			s.logger.Debugf("skipping row %d: %s", processed, err)
			continue
		}

		summary, err := s.apply(rec)
		if err != nil {
			rejected++
			s.logger.Debugf("rejecting %s tx %d for client %d: %s",
				rec.action, rec.txid, rec.client, err)
			continue
		}

		applied++
		if s.mode == config.ModeStream {
			if err := w.write(summary); err != nil {
				return fmt.Errorf("write summary: %w", err)
			}
		}
	}

	if s.mode == config.ModeAccounts {
		if err := w.writeAll(s.store.Summaries()); err != nil {
			return fmt.Errorf("write summary: %w", err)
		}
	}

	s.logger.With(ctx,
		"processed", processed,
		"applied", applied,
		"rejected", rejected,
		"skipped", skipped,
	).Info("replay finished")

	return nil
}

// apply dispatches one record to the matching store operation.
func (s *Service) apply(rec record) (ledger.AccountSummary, error) {
	switch rec.action {
	case actionDeposit:
		return s.store.Deposit(rec.txid, rec.client, rec.amount)
	case actionWithdraw:
		return s.store.Withdraw(rec.txid, rec.client, rec.amount)
	case actionDispute:
		return s.store.Dispute(rec.client, rec.txid)
	case actionResolve:
		return s.store.Resolve(rec.client, rec.txid)
	case actionChargeback:
		return s.store.Chargeback(rec.client, rec.txid)
	}
	panic(fmt.Sprintf("replay: unhandled action %q", rec.action))
}
