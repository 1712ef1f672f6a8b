package models

import "github.com/shopspring/decimal"

// Checking is a deposit account that earns no interest
type Checking struct {
	cashAccount
}

// NewChecking opens a checking account with an opening balance and a
// minimum balance that withdrawals may not cross
func NewChecking(opening, minimum decimal.Decimal, clock Clock) (*Checking, error) {
	cash, err := newCashAccount(AccountLabelChecking, opening, minimum, clock)
	if err != nil {
		return nil, err
	}
	return &Checking{cashAccount: cash}, nil
}
