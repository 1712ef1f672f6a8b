package services

import (
	"context"
	"iter"
	"time"

	"bank-console/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BankServiceInterface performs teller and customer operations against the customer directory
type BankServiceInterface interface {
	CreateCustomer(ctx context.Context, firstName, lastName string) (*models.Customer, error)
	RenameCustomer(ctx context.Context, customerID uuid.UUID, firstName, lastName string) error
	ListCustomers() []*models.Customer
	CustomerAt(index int) (*models.Customer, error)
	Deposit(ctx context.Context, customerID uuid.UUID, kind AccountKind, amount decimal.Decimal) (models.Transaction, error)
	Withdraw(ctx context.Context, customerID uuid.UUID, kind AccountKind, amount decimal.Decimal) (models.Transaction, error)
	PayLoan(ctx context.Context, customerID uuid.UUID, amount decimal.Decimal) (models.Transaction, error)
	Amortization(ctx context.Context, customerID uuid.UUID) (iter.Seq[models.AmortizationRow], error)
	Balances(ctx context.Context, customerID uuid.UUID) (string, error)
}

// StatementServiceInterface runs month-end processing and produces the statement
type StatementServiceInterface interface {
	RunEndOfMonth(ctx context.Context, customerID uuid.UUID, now time.Time) (*models.Statement, error)
}

// AuditServiceInterface defines the contract for audit logging operations
type AuditServiceInterface interface {
	CreateAuditLog(ctx context.Context, log *models.AuditLog) error
	LogCustomerCreated(ctx context.Context, customer *models.Customer)
	LogCustomerRenamed(ctx context.Context, customer *models.Customer, oldName string)
	LogTransaction(ctx context.Context, customerID uuid.UUID, tx models.Transaction)
	LogEndOfMonth(ctx context.Context, customerID uuid.UUID, period string, charges []models.Transaction)
	LogTellerLogin(ctx context.Context, success bool)
	GetCustomerActivity(customerID uuid.UUID, offset, limit int) ([]*models.AuditLog, int64, error)
	GetRecentActivity(limit int) ([]*models.AuditLog, error)
}

// ActivityLoggerInterface writes structured operational logs
type ActivityLoggerInterface interface {
	LogCustomerCreated(ctx context.Context, customerID uuid.UUID, name string)
	LogCustomerRenamed(ctx context.Context, customerID uuid.UUID, oldName, newName string)
	LogTransaction(ctx context.Context, customerID uuid.UUID, tx models.Transaction)
	LogOperationFailed(ctx context.Context, operation string, customerID uuid.UUID, err error)
	LogEndOfMonth(ctx context.Context, customerID uuid.UUID, period string, postings int)
	LogTellerAuth(ctx context.Context, success bool, remainingAttempts int)
	LogAuditWriteFailed(ctx context.Context, action string, err error)
	LogCircuitBreakerStateChange(ctx context.Context, service string, oldState, newState string)
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

// TellerAuthInterface guards Customer Management behind a teller PIN
type TellerAuthInterface interface {
	Enabled() bool
	Authenticate(ctx context.Context, pin string) error
}

// CustomerSeederInterface fills an empty directory for demonstrations
type CustomerSeederInterface interface {
	Seed(ctx context.Context, demo bool, random int) (int, error)
}

type CircuitBreakerInterface interface {
	IsOpen() bool
	RecordSuccess()
	RecordFailure()
	GetState() CircuitBreakerState
	Reset()
	GetFailureCount() int
}
