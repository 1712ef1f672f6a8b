package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"bank-console/internal/models"
	"bank-console/internal/validation"
)

type Config struct {
	App      AppConfig
	Accounts AccountsConfig
	Limits   LimitsConfig
	Database DatabaseConfig
	Logging  LoggingConfig
	Security SecurityConfig
}

type AppConfig struct {
	BankName          string `env:"BANK_NAME" validate:"required,max=40"`
	Environment       string `env:"APP_ENV" validate:"oneof=development testing production"`
	SeedDemoCustomers bool   `env:"SEED_DEMO_CUSTOMERS"`
	RandomCustomers   int    `env:"RANDOM_CUSTOMERS" validate:"gte=0,lte=500"`
}

// AccountsConfig holds the opening terms given to every new customer
type AccountsConfig struct {
	CheckingOpening    decimal.Decimal           `env:"CHECKING_OPENING_BALANCE" validate:"non_negative_amount"`
	CheckingMinimum    decimal.Decimal           `env:"CHECKING_MINIMUM_BALANCE" validate:"non_negative_amount"`
	SavingOpening      decimal.Decimal           `env:"SAVINGS_OPENING_BALANCE" validate:"non_negative_amount"`
	SavingRate         decimal.Decimal           `env:"SAVINGS_INTEREST_RATE" validate:"non_negative_amount,lte=1"`
	LoanPrincipal      decimal.Decimal           `env:"LOAN_PRINCIPAL" validate:"positive_amount"`
	LoanRate           decimal.Decimal           `env:"LOAN_INTEREST_RATE" validate:"non_negative_amount,lte=1"`
	LoanTermMonths     int                       `env:"LOAN_TERM_MONTHS" validate:"positive_amount,lte=600"`
	LoanInterestPolicy models.LoanInterestPolicy `env:"LOAN_INTEREST_POLICY" validate:"loan_policy"`
	EndOfMonthGuard    bool                      `env:"EOM_GUARD"`
}

type LimitsConfig struct {
	MinTransaction decimal.Decimal `env:"MIN_TRANSACTION" validate:"positive_amount"`
	MaxTransaction decimal.Decimal `env:"MAX_TRANSACTION" validate:"positive_amount"`
}

type DatabaseConfig struct {
	DSN      string `env:"AUDIT_DB_DSN" validate:"required"`
	LogLevel string `env:"AUDIT_DB_LOG_LEVEL" validate:"oneof=silent error warn info"`
}

type LoggingConfig struct {
	Level string `env:"LOG_LEVEL" validate:"oneof=debug info warn error"`
	File  string `env:"LOG_FILE"`
}

type SecurityConfig struct {
	TellerPINHash     string        `env:"TELLER_PIN_HASH"`
	BCryptCost        int           `env:"BCRYPT_COST" validate:"gte=4,lte=31"`
	MaxFailedAttempts int           `env:"MAX_FAILED_ATTEMPTS" validate:"positive_amount"`
	LockoutWindow     time.Duration `env:"LOCKOUT_WINDOW" validate:"positive_amount"`
}

func Load() *Config {
	return &Config{
		App: AppConfig{
			BankName:          getEnv("BANK_NAME", "GCU BANK"),
			Environment:       getEnv("APP_ENV", "development"),
			SeedDemoCustomers: getBoolEnv("SEED_DEMO_CUSTOMERS", true),
			RandomCustomers:   getIntEnv("RANDOM_CUSTOMERS", 0),
		},
		Accounts: AccountsConfig{
			CheckingOpening:    getDecimalEnv("CHECKING_OPENING_BALANCE", decimal.NewFromInt(5000)),
			CheckingMinimum:    getDecimalEnv("CHECKING_MINIMUM_BALANCE", decimal.Zero),
			SavingOpening:      getDecimalEnv("SAVINGS_OPENING_BALANCE", decimal.NewFromInt(50000)),
			SavingRate:         getDecimalEnv("SAVINGS_INTEREST_RATE", decimal.RequireFromString("0.06")),
			LoanPrincipal:      getDecimalEnv("LOAN_PRINCIPAL", decimal.NewFromInt(10000)),
			LoanRate:           getDecimalEnv("LOAN_INTEREST_RATE", decimal.RequireFromString("0.12")),
			LoanTermMonths:     getIntEnv("LOAN_TERM_MONTHS", 12),
			LoanInterestPolicy: models.LoanInterestPolicy(getEnv("LOAN_INTEREST_POLICY", string(models.AccrueSeparately))),
			EndOfMonthGuard:    getBoolEnv("EOM_GUARD", false),
		},
		Limits: LimitsConfig{
			MinTransaction: getDecimalEnv("MIN_TRANSACTION", decimal.RequireFromString("0.01")),
			MaxTransaction: getDecimalEnv("MAX_TRANSACTION", decimal.NewFromInt(1000000)),
		},
		Database: DatabaseConfig{
			DSN:      getEnv("AUDIT_DB_DSN", "file::memory:?cache=shared"),
			LogLevel: getEnv("AUDIT_DB_LOG_LEVEL", "silent"),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "warn"),
			File:  getEnv("LOG_FILE", ""),
		},
		Security: SecurityConfig{
			TellerPINHash:     getEnv("TELLER_PIN_HASH", ""),
			BCryptCost:        getIntEnv("BCRYPT_COST", 12),
			MaxFailedAttempts: getIntEnv("MAX_FAILED_ATTEMPTS", 3),
			LockoutWindow:     getDurationEnv("LOCKOUT_WINDOW", 30*time.Second),
		},
	}
}

// Validate checks every section and reports all problems at once
func (c *Config) Validate() error {
	v := validation.GetValidator()
	for _, section := range []interface{}{c.App, c.Accounts, c.Limits, c.Database, c.Logging, c.Security} {
		if err := v.Struct(section); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}
	}
	if c.Limits.MaxTransaction.LessThan(c.Limits.MinTransaction) {
		return fmt.Errorf("invalid configuration: MAX_TRANSACTION %s is below MIN_TRANSACTION %s",
			c.Limits.MaxTransaction, c.Limits.MinTransaction)
	}
	if c.Accounts.CheckingOpening.LessThan(c.Accounts.CheckingMinimum) {
		return fmt.Errorf("invalid configuration: CHECKING_OPENING_BALANCE %s is below CHECKING_MINIMUM_BALANCE %s",
			c.Accounts.CheckingOpening, c.Accounts.CheckingMinimum)
	}
	return nil
}

// Terms returns the opening terms for a new customer's accounts
func (c *AccountsConfig) Terms() models.AccountTerms {
	return models.AccountTerms{
		CheckingOpening: c.CheckingOpening,
		CheckingMinimum: c.CheckingMinimum,
		SavingOpening:   c.SavingOpening,
		SavingRate:      c.SavingRate,
		LoanPrincipal:   c.LoanPrincipal,
		LoanRate:        c.LoanRate,
		LoanTermMonths:  c.LoanTermMonths,
		LoanPolicy:      c.LoanInterestPolicy,
	}
}

// TellerAuthEnabled reports whether Customer Management requires a PIN
func (c *SecurityConfig) TellerAuthEnabled() bool {
	return c.TellerPINHash != ""
}

func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

func (c *Config) IsTesting() bool {
	return c.App.Environment == "testing"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getDecimalEnv(key string, defaultValue decimal.Decimal) decimal.Decimal {
	if value := os.Getenv(key); value != "" {
		if d, err := decimal.NewFromString(value); err == nil {
			return d
		}
	}
	return defaultValue
}
