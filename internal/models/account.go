package models

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	AccountLabelChecking = "Checking"
	AccountLabelSavings  = "Savings"
	AccountLabelLoan     = "Loan"
)

var (
	ErrInvalidAmount     = errors.New("transaction amount must be positive")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrInvalidBalance    = errors.New("balance cannot be negative")
	ErrInvalidRate       = errors.New("interest rate cannot be negative")
)

// Account is the ledger capability shared by checking, savings and loan accounts
type Account interface {
	Label() string
	Balance() decimal.Decimal
	Transactions() []Transaction
	DisplayTransactions(w io.Writer) error
}

// ledger holds the balance and the append-only transaction list.
// balance always equals the sum of Applied over transactions.
type ledger struct {
	label        string
	balance      decimal.Decimal
	transactions []Transaction
	clock        Clock
}

func newLedger(label string, clock Clock) ledger {
	return ledger{
		label:   label,
		balance: decimal.Zero,
		clock:   clock,
	}
}

// Label returns the account label used on statements
func (l *ledger) Label() string {
	return l.label
}

// Balance returns the current balance
func (l *ledger) Balance() decimal.Decimal {
	return l.balance
}

// Transactions returns a copy of the ledger, oldest first
func (l *ledger) Transactions() []Transaction {
	return slices.Clone(l.transactions)
}

// DisplayTransactions writes one row per transaction, oldest first
func (l *ledger) DisplayTransactions(w io.Writer) error {
	for _, tx := range l.transactions {
		if _, err := fmt.Fprintln(w, tx.Row()); err != nil {
			return err
		}
	}
	return nil
}

func (l *ledger) record(kind string, amount, applied, interest decimal.Decimal, description string) Transaction {
	l.balance = l.balance.Add(applied)
	tx := Transaction{
		ID:           uuid.New(),
		Timestamp:    l.clock(),
		AccountLabel: l.label,
		Kind:         kind,
		Amount:       amount,
		Applied:      applied,
		Interest:     interest,
		BalanceAfter: l.balance,
		Description:  description,
	}
	l.transactions = append(l.transactions, tx)
	return tx
}

// cashAccount implements deposit and withdrawal for checking and savings
type cashAccount struct {
	ledger
	minimumBalance decimal.Decimal
}

func newCashAccount(label string, opening, minimum decimal.Decimal, clock Clock) (cashAccount, error) {
	if opening.IsNegative() || minimum.IsNegative() {
		return cashAccount{}, ErrInvalidBalance
	}
	a := cashAccount{
		ledger:         newLedger(label, clock),
		minimumBalance: minimum,
	}
	if opening.IsPositive() {
		a.record(TransactionKindOpening, opening, opening, decimal.Zero, "Opening balance")
	}
	return a, nil
}

// Deposit credits a positive amount to the account
func (a *cashAccount) Deposit(amount decimal.Decimal) (Transaction, error) {
	if !amount.IsPositive() {
		return Transaction{}, ErrInvalidAmount
	}
	return a.record(TransactionKindDeposit, amount, amount, decimal.Zero, "Deposit"), nil
}

// Withdraw debits a positive amount if the balance stays at or above the minimum
func (a *cashAccount) Withdraw(amount decimal.Decimal) (Transaction, error) {
	if !amount.IsPositive() {
		return Transaction{}, ErrInvalidAmount
	}
	if amount.GreaterThan(a.Available()) {
		return Transaction{}, ErrInsufficientFunds
	}
	return a.record(TransactionKindWithdrawal, amount.Neg(), amount.Neg(), decimal.Zero, "Withdrawal"), nil
}

// Available returns the amount that can be withdrawn
func (a *cashAccount) Available() decimal.Decimal {
	available := a.balance.Sub(a.minimumBalance)
	if available.IsNegative() {
		return decimal.Zero
	}
	return available
}

// MinimumBalance returns the balance a withdrawal may not cross
func (a *cashAccount) MinimumBalance() decimal.Decimal {
	return a.minimumBalance
}
