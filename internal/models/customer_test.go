package models

import (
	"slices"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTerms() AccountTerms {
	return AccountTerms{
		CheckingOpening: decimal.NewFromInt(100),
		CheckingMinimum: decimal.Zero,
		SavingOpening:   decimal.NewFromInt(1000),
		SavingRate:      decimal.NewFromFloat(0.06),
		LoanPrincipal:   decimal.NewFromInt(10000),
		LoanRate:        decimal.NewFromFloat(0.12),
		LoanTermMonths:  12,
		LoanPolicy:      AccrueSeparately,
	}
}

func TestNewCustomer(t *testing.T) {
	c, err := NewCustomer("Mark", "Grace", testTerms(), fixedClock())

	require.NoError(t, err)
	assert.Equal(t, "Mark Grace", c.FullName())
	assert.NotEmpty(t, c.ID)
	assert.Len(t, c.Accounts(), 3)
	assert.Equal(t, AccountLabelChecking, c.Accounts()[0].Label())
	assert.Equal(t, AccountLabelSavings, c.Accounts()[1].Label())
	assert.Equal(t, AccountLabelLoan, c.Accounts()[2].Label())
	assert.True(t, c.Checking().Balance().Equal(decimal.NewFromInt(100)))
	assert.True(t, c.Loan().Balance().Equal(decimal.NewFromInt(10000)))
}

func TestNewCustomer_Errors(t *testing.T) {
	_, err := NewCustomer(" ", "Grace", testTerms(), fixedClock())
	assert.ErrorIs(t, err, ErrNameRequired)

	terms := testTerms()
	terms.LoanTermMonths = 0
	_, err = NewCustomer("Mark", "Grace", terms, fixedClock())
	assert.ErrorIs(t, err, ErrInvalidLoanTerms)
	assert.Contains(t, err.Error(), "failed to open loan account")
}

func TestCustomer_Rename(t *testing.T) {
	c, err := NewCustomer("Mark", "Grace", testTerms(), fixedClock())
	require.NoError(t, err)

	require.NoError(t, c.Rename("Curt", "Schilling"))
	assert.Equal(t, "Curt Schilling", c.FullName())

	assert.ErrorIs(t, c.Rename("", "Schilling"), ErrNameRequired)
	assert.Equal(t, "Curt Schilling", c.FullName())
}

func TestCompareCustomers(t *testing.T) {
	names := [][2]string{
		{"Tony", "Womack"},
		{"Steve", "Finley"},
		{"Craig", "Counsell"},
		{"Alan", "Finley"},
		{"luis", "gonzales"},
	}
	var customers []*Customer
	for _, n := range names {
		c, err := NewCustomer(n[0], n[1], testTerms(), fixedClock())
		require.NoError(t, err)
		customers = append(customers, c)
	}

	slices.SortFunc(customers, CompareCustomers)

	var got []string
	for _, c := range customers {
		got = append(got, c.FullName())
	}
	// uppercase sorts before lowercase
	assert.Equal(t, []string{"Craig Counsell", "Alan Finley", "Steve Finley", "Tony Womack", "luis gonzales"}, got)
}

func TestCustomer_String(t *testing.T) {
	c, err := NewCustomer("Mark", "Grace", testTerms(), fixedClock())
	require.NoError(t, err)

	brief := c.String(false)
	assert.Contains(t, brief, "Mark Grace")
	assert.Contains(t, brief, "$1,000.00")
	assert.Contains(t, brief, "6.00%")
	assert.Contains(t, brief, "$888.49")
	assert.NotContains(t, brief, "Loan terms")

	verbose := c.String(true)
	assert.Contains(t, verbose, "Loan terms: $10,000.00 at 12.00% for 12 months (accrue-separately)")
}
