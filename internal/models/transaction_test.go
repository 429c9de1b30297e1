package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNewTransaction(t *testing.T) {
	walletID := uuid.New()
	txn := NewTransaction(walletID, TypeDeposit, d("100.00"), "stripe_cs_1", StatusPending, nil)

	assert.Equal(t, walletID, txn.WalletID)
	assert.Equal(t, TypeDeposit, txn.Type)
	assert.Equal(t, "stripe_cs_1", txn.Reference)
	assert.NotNil(t, txn.Metadata)
	assert.True(t, txn.IsPending())
}

func TestTransaction_StatusPredicates(t *testing.T) {
	tests := []struct {
		status    string
		pending   bool
		completed bool
		cancelled bool
		failed    bool
	}{
		{StatusPending, true, false, false, false},
		{StatusCompleted, false, true, false, false},
		{StatusCancelled, false, false, true, false},
		{StatusFailed, false, false, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			txn := Transaction{Status: tt.status}
			assert.Equal(t, tt.pending, txn.IsPending())
			assert.Equal(t, tt.completed, txn.IsCompleted())
			assert.Equal(t, tt.cancelled, txn.IsCancelled())
			assert.Equal(t, tt.failed, txn.IsFailed())
		})
	}
}

func TestMetadata_ValueAndScan(t *testing.T) {
	var m Metadata
	v, err := m.Value()
	assert.NoError(t, err)
	assert.Equal(t, []byte("{}"), v)

	var out Metadata
	assert.NoError(t, out.Scan([]byte(`{"charge_id":"ch_1","attempt":2}`)))
	assert.Equal(t, "ch_1", out.String("charge_id"))
	assert.Equal(t, "", out.String("attempt"))
	assert.Equal(t, "", out.String("missing"))

	assert.NoError(t, out.Scan(nil))
	assert.Empty(t, out)

	assert.Error(t, out.Scan(42))
}
