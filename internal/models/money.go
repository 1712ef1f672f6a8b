package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	// DateTimeLayout matches the MM/dd/yyyy hh:mm:ss format printed on statements
	DateTimeLayout = "01/02/2006 03:04:05"

	centsPlaces = 2
)

var monthsPerYear = decimal.NewFromInt(12)

// Clock supplies the current time for transaction timestamps
type Clock func() time.Time

// roundCents rounds half away from zero to two decimal places
func roundCents(d decimal.Decimal) decimal.Decimal {
	return d.Round(centsPlaces)
}

// FormatMoney renders an amount as $#,##0.00 with negatives in parentheses
func FormatMoney(d decimal.Decimal) string {
	fixed := d.Abs().StringFixed(centsPlaces)
	whole, frac, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	if d.IsNegative() {
		b.WriteByte('(')
	}
	b.WriteByte('$')
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	b.WriteByte('.')
	b.WriteString(frac)
	if d.IsNegative() {
		b.WriteByte(')')
	}
	return b.String()
}

// FormatRate renders an annual rate fraction as a percentage, e.g. 0.06 -> 6.00%
func FormatRate(rate decimal.Decimal) string {
	return rate.Mul(decimal.NewFromInt(100)).StringFixed(centsPlaces) + "%"
}
