package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		name   string
		amount decimal.Decimal
		want   string
	}{
		{name: "zero", amount: decimal.Zero, want: "$0.00"},
		{name: "small", amount: decimal.NewFromFloat(5), want: "$5.00"},
		{name: "three digits", amount: decimal.NewFromInt(100), want: "$100.00"},
		{name: "thousands", amount: decimal.NewFromFloat(1234.5), want: "$1,234.50"},
		{name: "millions", amount: decimal.RequireFromString("1234567.891"), want: "$1,234,567.89"},
		{name: "negative", amount: decimal.NewFromFloat(-888.49), want: "($888.49)"},
		{name: "negative thousands", amount: decimal.NewFromFloat(-10000), want: "($10,000.00)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatMoney(tt.amount))
		})
	}
}

func TestFormatRate(t *testing.T) {
	assert.Equal(t, "6.00%", FormatRate(decimal.NewFromFloat(0.06)))
	assert.Equal(t, "12.50%", FormatRate(decimal.NewFromFloat(0.125)))
	assert.Equal(t, "0.00%", FormatRate(decimal.Zero))
}
