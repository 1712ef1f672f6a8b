package models

import (
	"errors"
	"iter"
	"slices"

	"github.com/shopspring/decimal"
)

// LoanInterestPolicy decides how month-end interest interacts with payments
type LoanInterestPolicy string

const (
	// AccrueSeparately charges month-end interest regardless of payments made
	// in the cycle, so a cycle with a payment pays interest twice
	AccrueSeparately LoanInterestPolicy = "accrue-separately"
	// AccrueOnPayment charges month-end interest only for cycles without a payment
	AccrueOnPayment LoanInterestPolicy = "accrue-on-payment"
)

// intermediate precision for (1+r)^n
const amortizationPrecision = 20

var (
	ErrInvalidLoanTerms    = errors.New("loan principal and term must be positive")
	ErrInvalidLoanPolicy   = errors.New("invalid loan interest policy")
	ErrInsufficientPayment = errors.New("payment does not cover accrued interest")
	ErrLoanPaidOff         = errors.New("loan is already paid off")
)

// AmortizationRow is one projected period of the repayment schedule
type AmortizationRow struct {
	Period    int             `json:"period"`
	Payment   decimal.Decimal `json:"payment"`
	Interest  decimal.Decimal `json:"interest"`
	Principal decimal.Decimal `json:"principal"`
	Remaining decimal.Decimal `json:"remaining"`
}

// Loan is a fixed-principal amortizing loan. Its balance is the outstanding principal.
type Loan struct {
	ledger
	originalPrincipal decimal.Decimal
	annualRate        decimal.Decimal
	termMonths        int
	monthlyPayment    decimal.Decimal
	policy            LoanInterestPolicy
	paidThisCycle     bool
}

// NewLoan disburses a loan and fixes its monthly payment for the life of the loan
func NewLoan(principal, annualRate decimal.Decimal, termMonths int, policy LoanInterestPolicy, clock Clock) (*Loan, error) {
	if !principal.IsPositive() || termMonths <= 0 {
		return nil, ErrInvalidLoanTerms
	}
	if annualRate.IsNegative() {
		return nil, ErrInvalidRate
	}
	if !IsValidLoanPolicy(policy) {
		return nil, ErrInvalidLoanPolicy
	}

	l := &Loan{
		ledger:            newLedger(AccountLabelLoan, clock),
		originalPrincipal: principal,
		annualRate:        annualRate,
		termMonths:        termMonths,
		monthlyPayment:    MonthlyPaymentFor(principal, annualRate, termMonths),
		policy:            policy,
	}
	l.record(TransactionKindOpening, principal, principal, decimal.Zero, "Loan disbursement")
	return l, nil
}

// MonthlyPaymentFor returns P*r*(1+r)^n / ((1+r)^n - 1) rounded to cents,
// or P/n when the rate is zero
func MonthlyPaymentFor(principal, annualRate decimal.Decimal, termMonths int) decimal.Decimal {
	n := decimal.NewFromInt(int64(termMonths))
	if annualRate.IsZero() {
		return roundCents(principal.Div(n))
	}

	r := annualRate.Div(monthsPerYear)
	growth := decimal.NewFromInt(1).Add(r).Pow(n).Round(amortizationPrecision)
	payment := principal.Mul(r).Mul(growth).Div(growth.Sub(decimal.NewFromInt(1)))
	return roundCents(payment)
}

// OriginalPrincipal returns the amount disbursed
func (l *Loan) OriginalPrincipal() decimal.Decimal {
	return l.originalPrincipal
}

// AnnualRate returns the annual interest rate as a fraction
func (l *Loan) AnnualRate() decimal.Decimal {
	return l.annualRate
}

// TermMonths returns the number of scheduled payments
func (l *Loan) TermMonths() int {
	return l.termMonths
}

// MonthlyPayment returns the scheduled payment fixed at origination
func (l *Loan) MonthlyPayment() decimal.Decimal {
	return l.monthlyPayment
}

// Policy returns the month-end interest policy
func (l *Loan) Policy() LoanInterestPolicy {
	return l.policy
}

func (l *Loan) monthlyRate() decimal.Decimal {
	return l.annualRate.Div(monthsPerYear)
}

// Pay applies a payment. Interest on the outstanding balance is taken first
// and the remainder reduces principal. Principal beyond the outstanding
// balance is not applied or refunded.
func (l *Loan) Pay(amount decimal.Decimal) (Transaction, error) {
	if !amount.IsPositive() {
		return Transaction{}, ErrInvalidAmount
	}
	if !l.balance.IsPositive() {
		return Transaction{}, ErrLoanPaidOff
	}

	interest := roundCents(l.balance.Mul(l.monthlyRate()))
	principal := amount.Sub(interest)
	if !principal.IsPositive() {
		return Transaction{}, ErrInsufficientPayment
	}
	if principal.GreaterThan(l.balance) {
		principal = l.balance
	}

	l.paidThisCycle = true
	return l.record(TransactionKindPayment, amount.Neg(), principal.Neg(), interest, "Loan payment"), nil
}

// EndOfMonth charges one month of interest on the outstanding balance,
// subject to the loan's interest policy, and starts a new payment cycle
func (l *Loan) EndOfMonth() (Transaction, bool) {
	paid := l.paidThisCycle
	l.paidThisCycle = false

	if l.policy == AccrueOnPayment && paid {
		return Transaction{}, false
	}
	interest := roundCents(l.balance.Mul(l.monthlyRate()))
	if !interest.IsPositive() {
		return Transaction{}, false
	}
	return l.record(TransactionKindInterestCharge, interest, interest, decimal.Zero, "Monthly loan interest"), true
}

// Amortization projects the repayment schedule from the original principal.
// It does not read or change the account's actual balance. The last row
// always leaves a remaining balance of exactly zero.
func (l *Loan) Amortization() iter.Seq[AmortizationRow] {
	rate := l.monthlyRate()
	payment := l.monthlyPayment
	term := l.termMonths
	principal := l.originalPrincipal

	return func(yield func(AmortizationRow) bool) {
		remaining := principal
		for period := 1; period <= term && remaining.IsPositive(); period++ {
			interest := roundCents(remaining.Mul(rate))
			toPrincipal := payment.Sub(interest)
			if period == term || toPrincipal.GreaterThan(remaining) {
				toPrincipal = remaining
			}
			remaining = remaining.Sub(toPrincipal)

			row := AmortizationRow{
				Period:    period,
				Payment:   interest.Add(toPrincipal),
				Interest:  interest,
				Principal: toPrincipal,
				Remaining: remaining,
			}
			if !yield(row) {
				return
			}
		}
	}
}

// Schedule collects the full amortization projection
func (l *Loan) Schedule() []AmortizationRow {
	return slices.Collect(l.Amortization())
}

// IsValidLoanPolicy checks if the interest policy is known
func IsValidLoanPolicy(policy LoanInterestPolicy) bool {
	switch policy {
	case AccrueSeparately, AccrueOnPayment:
		return true
	default:
		return false
	}
}
