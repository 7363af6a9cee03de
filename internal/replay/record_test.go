package replay

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// d builds a decimal from its string form, failing loudly on a typo.
func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestParseRecord(t *testing.T) {
	tests := []struct {
		name    string
		fields  []string
		want    record
		wantErr string
	}{
		{
			name:   "deposit",
			fields: []string{"deposit", "1", "10", "5.12345"},
			want:   record{action: actionDeposit, client: 1, txid: 10, amount: d("5.12345")},
		},
		{
			name:   "withdraw",
			fields: []string{"withdraw", "2", "11", "3"},
			want:   record{action: actionWithdraw, client: 2, txid: 11, amount: d("3")},
		},
		{
			name:   "withdrawal alias",
			fields: []string{"withdrawal", "2", "11", "3"},
			want:   record{action: actionWithdraw, client: 2, txid: 11, amount: d("3")},
		},
		{
			name:   "tags are case insensitive",
			fields: []string{"Deposit", "1", "1", "2"},
			want:   record{action: actionDeposit, client: 1, txid: 1, amount: d("2")},
		},
		{
			name:   "surrounding whitespace",
			fields: []string{"deposit ", "1 ", "2 ", " 3.5 "},
			want:   record{action: actionDeposit, client: 1, txid: 2, amount: d("3.5")},
		},
		{
			name:   "dispute with three fields",
			fields: []string{"dispute", "1", "10"},
			want:   record{action: actionDispute, client: 1, txid: 10},
		},
		{
			name:   "dispute ignores the amount",
			fields: []string{"dispute", "1", "10", "99"},
			want:   record{action: actionDispute, client: 1, txid: 10},
		},
		{
			name:   "resolve",
			fields: []string{"resolve", "1", "10", ""},
			want:   record{action: actionResolve, client: 1, txid: 10},
		},
		{
			name:   "chargeback",
			fields: []string{"chargeback", "1", "10"},
			want:   record{action: actionChargeback, client: 1, txid: 10},
		},
		{
			name:   "client id upper bound",
			fields: []string{"deposit", "65535", "1", "1"},
			want:   record{action: actionDeposit, client: 65535, txid: 1, amount: d("1")},
		},
		{
			name:    "too few fields",
			fields:  []string{"deposit", "1"},
			wantErr: "want at least 3 fields",
		},
		{
			name:    "unknown transaction type",
			fields:  []string{"teleport", "1", "2", "3"},
			wantErr: `unknown transaction type "teleport"`,
		},
		{
			name:    "header row",
			fields:  []string{"type", "client", "tx", "amount"},
			wantErr: "unknown transaction type",
		},
		{
			name:    "client out of range",
			fields:  []string{"deposit", "65536", "1", "2"},
			wantErr: "client",
		},
		{
			name:    "client not a number",
			fields:  []string{"deposit", "abc", "1", "2"},
			wantErr: "client",
		},
		{
			name:    "tx out of range",
			fields:  []string{"deposit", "1", "4294967296", "2"},
			wantErr: "tx",
		},
		{
			name:    "deposit without an amount field",
			fields:  []string{"deposit", "1", "2"},
			wantErr: "deposit without an amount",
		},
		{
			name:    "withdraw with a blank amount",
			fields:  []string{"withdraw", "1", "2", "   "},
			wantErr: "withdraw without an amount",
		},
		{
			name:    "amount not a number",
			fields:  []string{"deposit", "1", "2", "1.2.3"},
			wantErr: "amount",
		},
		{
			name:    "negative amount",
			fields:  []string{"withdraw", "1", "2", "-3"},
			wantErr: "negative amount",
		},
	}
	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := parseRecord(tt.fields)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want.action, got.action, "action mismatch")
			assert.Equal(t, tt.want.client, got.client, "client mismatch")
			assert.Equal(t, tt.want.txid, got.txid, "txid mismatch")
			assert.Truef(t, got.amount.Equal(tt.want.amount),
				"amount mismatch: want %s, got %s", tt.want.amount, got.amount)
		})
	}
}
