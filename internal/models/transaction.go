package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	TransactionKindOpening        = "opening"
	TransactionKindDeposit        = "deposit"
	TransactionKindWithdrawal     = "withdrawal"
	TransactionKindPayment        = "payment"
	TransactionKindInterestCredit = "interest_credit"
	TransactionKindInterestCharge = "interest_charge"
)

// Transaction is an immutable record of one balance-affecting event.
//
// Amount is the gross signed amount as the customer sees it. Applied is the
// part of Amount that moved the balance; the two differ only for loan
// payments, where Interest holds the portion that went to interest.
type Transaction struct {
	ID           uuid.UUID       `json:"id"`
	Timestamp    time.Time       `json:"timestamp"`
	AccountLabel string          `json:"account"`
	Kind         string          `json:"kind"`
	Amount       decimal.Decimal `json:"amount"`
	Applied      decimal.Decimal `json:"applied"`
	Interest     decimal.Decimal `json:"interest"`
	BalanceAfter decimal.Decimal `json:"balance_after"`
	Description  string          `json:"description"`
}

// BalanceBefore returns the account balance immediately before this transaction
func (t Transaction) BalanceBefore() decimal.Decimal {
	return t.BalanceAfter.Sub(t.Applied)
}

// IsCredit reports whether the transaction increased the account balance
func (t Transaction) IsCredit() bool {
	return t.Applied.IsPositive()
}

// IsDebit reports whether the transaction decreased the account balance
func (t Transaction) IsDebit() bool {
	return t.Applied.IsNegative()
}

// Row formats the transaction as one tab-separated ledger line
func (t Transaction) Row() string {
	return fmt.Sprintf("%s\t%s\t\t%s\t\t%s",
		t.Timestamp.Format(DateTimeLayout), t.AccountLabel, FormatMoney(t.Amount), t.Description)
}

// IsValidTransactionKind checks if the transaction kind is known
func IsValidTransactionKind(kind string) bool {
	switch kind {
	case TransactionKindOpening, TransactionKindDeposit, TransactionKindWithdrawal,
		TransactionKindPayment, TransactionKindInterestCredit, TransactionKindInterestCharge:
		return true
	default:
		return false
	}
}
