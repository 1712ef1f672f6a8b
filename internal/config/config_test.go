package config

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bank-console/internal/models"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "GCU BANK", cfg.App.BankName)
	assert.True(t, cfg.App.SeedDemoCustomers)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, models.AccrueSeparately, cfg.Accounts.LoanInterestPolicy)
	assert.False(t, cfg.Accounts.EndOfMonthGuard)
	assert.Equal(t, 12, cfg.Accounts.LoanTermMonths)
	assert.True(t, cfg.Accounts.SavingRate.Equal(decimal.RequireFromString("0.06")))
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "file::memory:?cache=shared", cfg.Database.DSN)
	assert.False(t, cfg.Security.TellerAuthEnabled())
	assert.NoError(t, cfg.Validate())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("BANK_NAME", "Diamondbacks Credit Union")
	t.Setenv("LOAN_PRINCIPAL", "25000.50")
	t.Setenv("LOAN_INTEREST_POLICY", "accrue-on-payment")
	t.Setenv("EOM_GUARD", "true")
	t.Setenv("LOCKOUT_WINDOW", "2m")
	t.Setenv("RANDOM_CUSTOMERS", "5")
	t.Setenv("TELLER_PIN_HASH", "$2a$04$abcdefghijklmnopqrstuv")

	cfg := Load()

	assert.Equal(t, "Diamondbacks Credit Union", cfg.App.BankName)
	assert.Equal(t, "25000.5", cfg.Accounts.LoanPrincipal.String())
	assert.Equal(t, models.AccrueOnPayment, cfg.Accounts.LoanInterestPolicy)
	assert.True(t, cfg.Accounts.EndOfMonthGuard)
	assert.Equal(t, 2*time.Minute, cfg.Security.LockoutWindow)
	assert.Equal(t, 5, cfg.App.RandomCustomers)
	assert.True(t, cfg.Security.TellerAuthEnabled())
	require.NoError(t, cfg.Validate())

	terms := cfg.Accounts.Terms()
	assert.True(t, terms.LoanPrincipal.Equal(cfg.Accounts.LoanPrincipal))
	assert.Equal(t, models.AccrueOnPayment, terms.LoanPolicy)
}

func TestLoad_MalformedValuesFallBack(t *testing.T) {
	t.Setenv("LOAN_TERM_MONTHS", "twelve")
	t.Setenv("SAVINGS_INTEREST_RATE", "six percent")
	t.Setenv("EOM_GUARD", "maybe")

	cfg := Load()

	assert.Equal(t, 12, cfg.Accounts.LoanTermMonths)
	assert.Equal(t, "0.06", cfg.Accounts.SavingRate.String())
	assert.False(t, cfg.Accounts.EndOfMonthGuard)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{
			name:    "unknown loan policy",
			mutate:  func(c *Config) { c.Accounts.LoanInterestPolicy = "daily" },
			wantErr: "LOAN_INTEREST_POLICY",
		},
		{
			name:    "zero loan term",
			mutate:  func(c *Config) { c.Accounts.LoanTermMonths = 0 },
			wantErr: "LOAN_TERM_MONTHS",
		},
		{
			name:    "negative savings rate",
			mutate:  func(c *Config) { c.Accounts.SavingRate = decimal.NewFromFloat(-0.01) },
			wantErr: "SAVINGS_INTEREST_RATE",
		},
		{
			name:    "unknown log level",
			mutate:  func(c *Config) { c.Logging.Level = "verbose" },
			wantErr: "LOG_LEVEL",
		},
		{
			name: "limits inverted",
			mutate: func(c *Config) {
				c.Limits.MinTransaction = decimal.NewFromInt(100)
				c.Limits.MaxTransaction = decimal.NewFromInt(10)
			},
			wantErr: "MAX_TRANSACTION",
		},
		{
			name:    "opening below minimum",
			mutate:  func(c *Config) { c.Accounts.CheckingMinimum = decimal.NewFromInt(10000) },
			wantErr: "CHECKING_OPENING_BALANCE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Load()
			tt.mutate(cfg)

			err := cfg.Validate()

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
