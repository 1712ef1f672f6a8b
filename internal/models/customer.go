package models

import (
	"cmp"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrNameRequired = errors.New("first and last name are required")

// AccountTerms are the opening conditions for a new customer's accounts
type AccountTerms struct {
	CheckingOpening decimal.Decimal
	CheckingMinimum decimal.Decimal
	SavingOpening   decimal.Decimal
	SavingRate      decimal.Decimal
	LoanPrincipal   decimal.Decimal
	LoanRate        decimal.Decimal
	LoanTermMonths  int
	LoanPolicy      LoanInterestPolicy
}

// Customer owns exactly one checking, one savings and one loan account
type Customer struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	CreatedAt time.Time `json:"created_at"`

	checking *Checking
	saving   *Saving
	loan     *Loan
}

// NewCustomer creates a customer and opens their three accounts
func NewCustomer(firstName, lastName string, terms AccountTerms, clock Clock) (*Customer, error) {
	if strings.TrimSpace(firstName) == "" || strings.TrimSpace(lastName) == "" {
		return nil, ErrNameRequired
	}

	checking, err := NewChecking(terms.CheckingOpening, terms.CheckingMinimum, clock)
	if err != nil {
		return nil, fmt.Errorf("failed to open checking account: %w", err)
	}
	saving, err := NewSaving(terms.SavingOpening, terms.SavingRate, clock)
	if err != nil {
		return nil, fmt.Errorf("failed to open savings account: %w", err)
	}
	loan, err := NewLoan(terms.LoanPrincipal, terms.LoanRate, terms.LoanTermMonths, terms.LoanPolicy, clock)
	if err != nil {
		return nil, fmt.Errorf("failed to open loan account: %w", err)
	}

	return &Customer{
		ID:        uuid.New(),
		FirstName: firstName,
		LastName:  lastName,
		CreatedAt: clock(),
		checking:  checking,
		saving:    saving,
		loan:      loan,
	}, nil
}

func (c *Customer) Checking() *Checking {
	return c.checking
}

func (c *Customer) Saving() *Saving {
	return c.saving
}

func (c *Customer) Loan() *Loan {
	return c.loan
}

// Accounts returns the three accounts in statement order
func (c *Customer) Accounts() []Account {
	return []Account{c.checking, c.saving, c.loan}
}

// FullName returns "First Last"
func (c *Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}

// Rename changes the customer's name
func (c *Customer) Rename(firstName, lastName string) error {
	if strings.TrimSpace(firstName) == "" || strings.TrimSpace(lastName) == "" {
		return ErrNameRequired
	}
	c.FirstName = firstName
	c.LastName = lastName
	return nil
}

// CompareCustomers orders by last name then first name, case-sensitive
func CompareCustomers(a, b *Customer) int {
	if c := cmp.Compare(a.LastName, b.LastName); c != 0 {
		return c
	}
	return cmp.Compare(a.FirstName, b.FirstName)
}

// String renders the customer's identity and balances. verbose adds the loan terms.
func (c *Customer) String(verbose bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "\nCustomer: %s (since %s)\n", c.FullName(), c.CreatedAt.Format(DateTimeLayout))
	fmt.Fprintf(&b, "  %-10s %16s\n", AccountLabelChecking, FormatMoney(c.checking.Balance()))
	fmt.Fprintf(&b, "  %-10s %16s  at %s\n", AccountLabelSavings, FormatMoney(c.saving.Balance()), FormatRate(c.saving.InterestRate()))
	fmt.Fprintf(&b, "  %-10s %16s  owed\n", AccountLabelLoan, FormatMoney(c.loan.Balance()))
	fmt.Fprintf(&b, "  Monthly loan payment: %s\n", FormatMoney(c.loan.MonthlyPayment()))
	if verbose {
		fmt.Fprintf(&b, "  Loan terms: %s at %s for %d months (%s)\n",
			FormatMoney(c.loan.OriginalPrincipal()), FormatRate(c.loan.AnnualRate()),
			c.loan.TermMonths(), c.loan.Policy())
	}
	return b.String()
}
