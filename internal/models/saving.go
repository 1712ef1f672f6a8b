package models

import "github.com/shopspring/decimal"

// Saving is a deposit account that accrues monthly interest
type Saving struct {
	cashAccount
	interestRate decimal.Decimal
}

// NewSaving opens a savings account paying annualRate, compounded monthly
func NewSaving(opening, annualRate decimal.Decimal, clock Clock) (*Saving, error) {
	if annualRate.IsNegative() {
		return nil, ErrInvalidRate
	}
	cash, err := newCashAccount(AccountLabelSavings, opening, decimal.Zero, clock)
	if err != nil {
		return nil, err
	}
	return &Saving{cashAccount: cash, interestRate: annualRate}, nil
}

// InterestRate returns the annual interest rate as a fraction
func (s *Saving) InterestRate() decimal.Decimal {
	return s.interestRate
}

// EndOfMonth credits one month of interest on the current balance.
// It is not idempotent: every call credits again. No transaction is
// recorded when the interest rounds to zero.
func (s *Saving) EndOfMonth() (Transaction, bool) {
	interest := roundCents(s.balance.Mul(s.interestRate).Div(monthsPerYear))
	if !interest.IsPositive() {
		return Transaction{}, false
	}
	return s.record(TransactionKindInterestCredit, interest, interest, decimal.Zero, "Monthly interest"), true
}
