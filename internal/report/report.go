// Package report renders account state for humans. The CSV output is
// the machine interface; this one goes to the terminal.
package report

import (
	"io"
	"iter"
	"strconv"

	"github.com/KretovDmitry/payments-engine/internal/ledger"
	"github.com/olekukonko/tablewriter"
)

// Accounts renders a table with one row per account summary, in
// sequence order.
func Accounts(w io.Writer, summaries iter.Seq[ledger.AccountSummary]) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Client", "Available", "Held", "Total", "Locked"})

	for s := range summaries {
		table.Append([]string{
			strconv.FormatUint(uint64(s.Client), 10),
			s.Available.String(),
			s.Held.String(),
			s.Total.String(),
			strconv.FormatBool(s.Locked),
		})
	}

	table.Render()
}
