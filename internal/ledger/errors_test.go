package ledger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "insufficient funds",
			err:  &InsufficientFundsError{Available: d("5.12345"), Required: d("6")},
			want: "insufficient funds: 5.12345 available, 6 required",
		},
		{
			name: "transaction not found",
			err:  &TxNotFoundError{TxID: 7},
			want: "transaction 7 not found",
		},
		{
			name: "wrong state",
			err:  &TxStateError{TxID: 3, Action: DISPUTE, State: DISPUTED},
			want: "transaction 3 is DISPUTED: DISPUTE not allowed",
		},
	}
	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestErrorsUnwrapToSentinels(t *testing.T) {
	assert.True(t, errors.Is(&InsufficientFundsError{}, ErrInsufficientFunds))
	assert.True(t, errors.Is(&TxNotFoundError{TxID: 1}, ErrTxNotFound))
	assert.True(t, errors.Is(&TxStateError{TxID: 1, Action: RESOLVE, State: NORMAL}, ErrTxWrongState))
}
