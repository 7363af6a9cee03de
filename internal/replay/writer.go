package replay

import (
	"encoding/csv"
	"io"
	"iter"
	"strconv"

	"github.com/KretovDmitry/payments-engine/internal/ledger"
)

// summaryHeader is the first row of every non-empty summary CSV.
var summaryHeader = []string{"client", "available", "held", "total", "locked"}

// summaryWriter serializes account summaries as CSV rows. The header
// is written lazily before the first row, so an output with no rows
// stays empty.
type summaryWriter struct {
	w           *csv.Writer
	wroteHeader bool
}

func newSummaryWriter(w io.Writer) *summaryWriter {
	return &summaryWriter{w: csv.NewWriter(w)}
}

// write emits one summary row. Decimal amounts keep the scale they
// accumulated in the ledger.
func (sw *summaryWriter) write(s ledger.AccountSummary) error {
	if !sw.wroteHeader {
		if err := sw.w.Write(summaryHeader); err != nil {
			return err
		}
		sw.wroteHeader = true
	}
	return sw.w.Write([]string{
		strconv.FormatUint(uint64(s.Client), 10),
		s.Available.String(),
		s.Held.String(),
		s.Total.String(),
		strconv.FormatBool(s.Locked),
	})
}

// writeAll emits one row per summary in sequence order.
func (sw *summaryWriter) writeAll(summaries iter.Seq[ledger.AccountSummary]) error {
	for s := range summaries {
		if err := sw.write(s); err != nil {
			return err
		}
	}
	return nil
}

// flush forces buffered rows out and reports any write error.
func (sw *summaryWriter) flush() error {
	sw.w.Flush()
	return sw.w.Error()
}
