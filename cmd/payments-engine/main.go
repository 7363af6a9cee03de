package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/KretovDmitry/payments-engine/internal/config"
	"github.com/KretovDmitry/payments-engine/internal/ledger"
	"github.com/KretovDmitry/payments-engine/internal/replay"
	"github.com/KretovDmitry/payments-engine/internal/report"
	"github.com/KretovDmitry/payments-engine/pkg/logger"
	"github.com/KretovDmitry/payments-engine/pkg/unzip"
	"github.com/google/uuid"
)

// Version indicates the current version of the application.
var Version = "1.0.0"

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	// Stop the replay on interrupt. A truncated summary beats a hung
	// process; partially written output is not flushed as complete.
	ctx, stop := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load application configurations.
	cfg := config.MustLoad()

	// Create root logger tagged with the version and a run id.
	logger := logger.New(cfg).With(ctx, "version", Version, "run_id", uuid.NewString())
	defer func() {
		_ = logger.Sync()
	}()

	file, err := os.Open(cfg.Input)
	if err != nil {
		return fmt.Errorf("failed to open the transactions file: %w", err)
	}

	// Transaction exports often arrive gzip-compressed; sniff and
	// decompress transparently.
	in, err := unzip.Reader(file)
	if err != nil {
		_ = file.Close()
		return fmt.Errorf("failed to read the transactions file: %w", err)
	}
	defer func() {
		if err = in.Close(); err != nil {
			logger.Error(err)
		}
	}()

	// The summary goes to stdout unless a file is configured. Logs
	// never land here.
	out := os.Stdout
	if cfg.Output != "" {
		out, err = os.Create(cfg.Output)
		if err != nil {
			return fmt.Errorf("failed to create the output file: %w", err)
		}
		defer func() {
			if err = out.Close(); err != nil {
				logger.Error(err)
			}
		}()
	}

	store := ledger.NewStore()

	service, err := replay.NewService(store, logger, cfg)
	if err != nil {
		return fmt.Errorf("failed to init replay service: %w", err)
	}

	logger.With(ctx, "mode", cfg.Mode).
		Infof("Replaying transactions from %s", cfg.Input)

	if err = service.Run(ctx, in, out); err != nil {
		if errors.Is(err, context.Canceled) {
			return errors.New("replay interrupted")
		}
		return fmt.Errorf("replay failed: %w", err)
	}

	if cfg.Report {
		report.Accounts(os.Stderr, store.Summaries())
	}

	return nil
}
