package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collectClients(s *Store) []ClientID {
	var ids []ClientID
	for summary := range s.Summaries() {
		ids = append(ids, summary.Client)
	}
	return ids
}

func TestSummariesSortedByClient(t *testing.T) {
	s := NewStore()

	for i, client := range []ClientID{30, 10, 20} {
		_, err := s.Deposit(TxID(i+1), client, d("1"))
		require.NoError(t, err)
	}

	assert.Equal(t, []ClientID{10, 20, 30}, collectClients(s))
}

func TestSummariesRestartable(t *testing.T) {
	s := NewStore()

	for i, client := range []ClientID{5, 3, 8} {
		_, err := s.Deposit(TxID(i+1), client, d("2.5"))
		require.NoError(t, err)
	}

	// The sequence can be ranged over any number of times.
	first := collectClients(s)
	second := collectClients(s)

	assert.Equal(t, []ClientID{3, 5, 8}, first)
	assert.Equal(t, first, second, "a second pass must see the same accounts")
}

func TestSummariesEarlyStop(t *testing.T) {
	s := NewStore()

	for i, client := range []ClientID{2, 1, 3} {
		_, err := s.Deposit(TxID(i+1), client, d("1"))
		require.NoError(t, err)
	}

	var got []ClientID
	for summary := range s.Summaries() {
		got = append(got, summary.Client)
		break
	}

	assert.Equal(t, []ClientID{1}, got, "a broken loop stops after the lowest client id")
}

func TestSummariesEmptyStore(t *testing.T) {
	s := NewStore()

	assert.Empty(t, collectClients(s))
}

func TestSummariesSeeLiveState(t *testing.T) {
	s := NewStore()

	_, err := s.Deposit(1, 9, d("4"))
	require.NoError(t, err)

	seq := s.Summaries()

	// Mutations between creating the sequence and ranging over it are
	// visible: the iterator reads at yield time.
	_, err = s.Deposit(2, 9, d("6"))
	require.NoError(t, err)

	for summary := range seq {
		assertSummary(t, expect(9, "10", "0", false), summary)
	}
}
