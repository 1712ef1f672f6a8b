package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTransaction_Direction(t *testing.T) {
	tests := []struct {
		name   string
		tx     Transaction
		credit bool
		debit  bool
		before string
	}{
		{
			name:   "deposit",
			tx:     Transaction{Applied: decimal.NewFromInt(50), BalanceAfter: decimal.NewFromInt(150)},
			credit: true,
			before: "100",
		},
		{
			name:   "loan payment",
			tx:     Transaction{Amount: decimal.NewFromInt(-500), Applied: decimal.NewFromInt(-400), Interest: decimal.NewFromInt(100), BalanceAfter: decimal.NewFromInt(9600)},
			debit:  true,
			before: "10000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.credit, tt.tx.IsCredit())
			assert.Equal(t, tt.debit, tt.tx.IsDebit())
			assert.Equal(t, tt.before, tt.tx.BalanceBefore().String())
		})
	}
}

func TestIsValidTransactionKind(t *testing.T) {
	for _, kind := range []string{
		TransactionKindOpening, TransactionKindDeposit, TransactionKindWithdrawal,
		TransactionKindPayment, TransactionKindInterestCredit, TransactionKindInterestCharge,
	} {
		assert.True(t, IsValidTransactionKind(kind), kind)
	}
	assert.False(t, IsValidTransactionKind("transfer"))
}
